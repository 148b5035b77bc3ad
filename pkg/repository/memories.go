package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dskvich/jarvis-assistant/pkg/domain"
)

type memoriesRepository struct {
	db *sql.DB
}

func NewMemoriesRepository(db *sql.DB) *memoriesRepository {
	return &memoriesRepository{db: db}
}

func (r *memoriesRepository) Save(ctx context.Context, memory domain.Memory) error {
	const query = `
		INSERT INTO memories (content, embedding, category)
		VALUES ($1, $2, $3)
	`

	embedding, err := json.Marshal(memory.Embedding)
	if err != nil {
		return fmt.Errorf("marshaling embedding: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, memory.Content, embedding, memory.Category); err != nil {
		return fmt.Errorf("saving memory: %w", err)
	}

	return nil
}

func (r *memoriesRepository) GetByCategory(ctx context.Context, category string) ([]domain.Memory, error) {
	const query = `
		SELECT id, content, embedding, category, created_at
		FROM memories
		WHERE category = $1
	`

	rows, err := r.db.QueryContext(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("fetching memories: %w", err)
	}
	defer rows.Close()

	var memories []domain.Memory
	for rows.Next() {
		var (
			m         domain.Memory
			embedding []byte
		)
		if err := rows.Scan(&m.ID, &m.Content, &embedding, &m.Category, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning memory: %w", err)
		}
		if err := json.Unmarshal(embedding, &m.Embedding); err != nil {
			return nil, fmt.Errorf("unmarshaling embedding: %w", err)
		}
		memories = append(memories, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating memories: %w", err)
	}
	return memories, nil
}
