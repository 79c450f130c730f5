package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one user message + AI response pair, the unit of persistence.
// Immutable after creation.
type ChatMessage struct {
	ID          string    `json:"id"            bson:"id"`
	SessionID   string    `json:"session_id"    bson:"session_id"`
	UserMessage string    `json:"user_message"  bson:"user_message"`
	AIResponse  string    `json:"ai_response"   bson:"ai_response"`
	Subject     string    `json:"subject"       bson:"subject"`
	AIModelUsed string    `json:"ai_model_used" bson:"ai_model_used"`
	Sources     []Source  `json:"sources"       bson:"sources"`
	Timestamp   time.Time `json:"timestamp"     bson:"timestamp"`
}

// ChatSession groups exchanges sharing a client-chosen identifier.
type ChatSession struct {
	ID            string    `json:"id"             bson:"id"`
	CreatedAt     time.Time `json:"created_at"     bson:"created_at"`
	LastActive    time.Time `json:"last_active"    bson:"last_active"`
	TotalMessages int       `json:"total_messages" bson:"total_messages"`
}

// NewChatSession returns a session with a fresh id and zeroed counters.
func NewChatSession() *ChatSession {
	now := time.Now().UTC()
	return &ChatSession{
		ID:         uuid.New().String(),
		CreatedAt:  now,
		LastActive: now,
	}
}

// Source is a curated university reference attached to a response.
type Source struct {
	Name       string `json:"name"       bson:"name"`
	URL        string `json:"url"        bson:"url"`
	Department string `json:"department" bson:"department"`
}

// UniversityResource is a Source annotated with the subject it was queried under.
type UniversityResource struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	Department string `json:"department"`
	Subject    string `json:"subject"`
}
