package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dskvich/jarvis-assistant/pkg/domain"
)

type interactionsRepository struct {
	db *sql.DB
}

func NewInteractionsRepository(db *sql.DB) *interactionsRepository {
	return &interactionsRepository{db: db}
}

func (r *interactionsRepository) Save(ctx context.Context, userMessage, assistantResponse string) error {
	const query = `
		INSERT INTO interactions (user_message, assistant_response)
		VALUES ($1, $2)
	`

	if _, err := r.db.ExecContext(ctx, query, userMessage, assistantResponse); err != nil {
		return fmt.Errorf("saving interaction: %w", err)
	}

	return nil
}

// Recent returns the latest interactions in chronological order.
func (r *interactionsRepository) Recent(ctx context.Context, limit int) ([]domain.Interaction, error) {
	const query = `
		SELECT id, user_message, assistant_response, created_at
		FROM (
			SELECT id, user_message, assistant_response, created_at
			FROM interactions
			ORDER BY id DESC
			LIMIT $1
		) latest
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching recent interactions: %w", err)
	}
	defer rows.Close()

	return scanInteractions(rows)
}

func (r *interactionsRepository) Search(ctx context.Context, text string, limit int) ([]domain.Interaction, error) {
	const query = `
		SELECT id, user_message, assistant_response, created_at
		FROM interactions
		WHERE user_message ILIKE $1 OR assistant_response ILIKE $1
		ORDER BY id DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, "%"+text+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("searching interactions: %w", err)
	}
	defer rows.Close()

	return scanInteractions(rows)
}

func scanInteractions(rows *sql.Rows) ([]domain.Interaction, error) {
	var interactions []domain.Interaction
	for rows.Next() {
		var in domain.Interaction
		if err := rows.Scan(&in.ID, &in.UserMessage, &in.AssistantResponse, &in.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning interaction: %w", err)
		}
		interactions = append(interactions, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating interactions: %w", err)
	}
	return interactions, nil
}
