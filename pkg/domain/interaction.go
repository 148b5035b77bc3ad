package domain

import "time"

// Interaction is one persisted user/assistant exchange.
type Interaction struct {
	ID                int64     `json:"id"`
	UserMessage       string    `json:"user_message"`
	AssistantResponse string    `json:"assistant_response"`
	CreatedAt         time.Time `json:"created_at"`
}

// Memory is a stored fact with its semantic embedding.
type Memory struct {
	ID        int64
	Content   string
	Embedding []float32
	Category  string
	CreatedAt time.Time

	// Similarity is populated on recall.
	Similarity float64
}

const MemoryCategoryGeneral = "general"
