package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/dskvich/jarvis-assistant/pkg/domain"
	"github.com/dskvich/jarvis-assistant/pkg/logger"
)

const (
	memoryRecallLimit   = 5
	memoryMinSimilarity = 0.5
)

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type MemoryRepository interface {
	Save(ctx context.Context, memory domain.Memory) error
	GetByCategory(ctx context.Context, category string) ([]domain.Memory, error)
}

// memoryService stores exchanges with their embeddings and recalls the ones
// semantically closest to a query.
type memoryService struct {
	embedder Embedder
	repo     MemoryRepository
}

func NewMemoryService(embedder Embedder, repo MemoryRepository) *memoryService {
	return &memoryService{
		embedder: embedder,
		repo:     repo,
	}
}

// Remember is best-effort: a failed embedding or insert is logged, never
// surfaced to the caller.
func (m *memoryService) Remember(ctx context.Context, userMessage, assistantResponse string) {
	content := fmt.Sprintf("User: %s\nAssistant: %s", userMessage, assistantResponse)

	embedding, err := m.embedder.Embed(ctx, content)
	if err != nil {
		slog.WarnContext(ctx, "embedding interaction", logger.Err(err))
		return
	}

	memory := domain.Memory{
		Content:   content,
		Embedding: embedding,
		Category:  domain.MemoryCategoryGeneral,
	}
	if err := m.repo.Save(ctx, memory); err != nil {
		slog.WarnContext(ctx, "saving memory", logger.Err(err))
	}
}

// Recall returns up to memoryRecallLimit memories above the similarity
// threshold, most similar first.
func (m *memoryService) Recall(ctx context.Context, query string) ([]domain.Memory, error) {
	queryEmbedding, err := m.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	memories, err := m.repo.GetByCategory(ctx, domain.MemoryCategoryGeneral)
	if err != nil {
		return nil, fmt.Errorf("fetching memories: %w", err)
	}

	for i := range memories {
		memories[i].Similarity = cosineSimilarity(queryEmbedding, memories[i].Embedding)
	}

	relevant := lo.Filter(memories, func(m domain.Memory, _ int) bool {
		return m.Similarity >= memoryMinSimilarity
	})

	sort.Slice(relevant, func(i, j int) bool {
		return relevant[i].Similarity > relevant[j].Similarity
	})

	if len(relevant) > memoryRecallLimit {
		relevant = relevant[:memoryRecallLimit]
	}
	return relevant, nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
