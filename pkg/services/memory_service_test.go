package services

import (
	"context"
	"math"
	"testing"

	"github.com/dskvich/jarvis-assistant/pkg/domain"
)

type fixedEmbedder struct{ vector []float32 }

func (f *fixedEmbedder) Embed(context.Context, string) ([]float32, error) {
	return f.vector, nil
}

type memoryStore struct{ memories []domain.Memory }

func (s *memoryStore) Save(_ context.Context, m domain.Memory) error {
	s.memories = append(s.memories, m)
	return nil
}

func (s *memoryStore) GetByCategory(context.Context, string) ([]domain.Memory, error) {
	out := make([]domain.Memory, len(s.memories))
	copy(out, s.memories)
	return out, nil
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float64
	}{
		{"identical", []float32{1, 0}, []float32{1, 0}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"length mismatch", []float32{1, 0}, []float32{1}, 0},
		{"zero vector", []float32{0, 0}, []float32{1, 0}, 0},
	}

	for _, test := range tests {
		if got := cosineSimilarity(test.a, test.b); math.Abs(got-test.expected) > 1e-9 {
			t.Errorf("%s: got %v, want %v", test.name, got, test.expected)
		}
	}
}

func TestRecallFiltersAndOrders(t *testing.T) {
	store := &memoryStore{memories: []domain.Memory{
		{Content: "close", Embedding: []float32{0.9, 0.1}},
		{Content: "closest", Embedding: []float32{1, 0}},
		{Content: "unrelated", Embedding: []float32{0, 1}},
	}}
	svc := NewMemoryService(&fixedEmbedder{vector: []float32{1, 0}}, store)

	got, err := svc.Recall(context.Background(), "query")
	if err != nil {
		t.Fatalf("recall: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 memories above threshold, got %d", len(got))
	}
	if got[0].Content != "closest" || got[1].Content != "close" {
		t.Errorf("unexpected order: %q, %q", got[0].Content, got[1].Content)
	}
}

func TestRememberStoresEmbedding(t *testing.T) {
	store := &memoryStore{}
	svc := NewMemoryService(&fixedEmbedder{vector: []float32{1, 2, 3}}, store)

	svc.Remember(context.Background(), "I prefer tea", "Noted.")

	if len(store.memories) != 1 {
		t.Fatalf("expected one stored memory, got %d", len(store.memories))
	}
	m := store.memories[0]
	if m.Category != domain.MemoryCategoryGeneral {
		t.Errorf("unexpected category %q", m.Category)
	}
	if len(m.Embedding) != 3 {
		t.Errorf("embedding not stored: %+v", m.Embedding)
	}
}
