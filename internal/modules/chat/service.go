package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/study-space/core/internal/config"
	"github.com/study-space/core/internal/models"
	"github.com/study-space/core/internal/modules/subject"
	"github.com/study-space/core/internal/pkg/llm"
	"go.uber.org/zap"
)

// ErrNotConfigured signals a missing provider credential. Raised before any
// external call is attempted.
var ErrNotConfigured = errors.New("API key not configured")

// Store is the narrow persistence contract the orchestration depends on.
// The MongoDB implementation lives in internal/database.
type Store interface {
	InsertExchange(ctx context.Context, msg *models.ChatMessage) error
	InsertSession(ctx context.Context, session *models.ChatSession) error
	TouchSession(ctx context.Context, sessionID string, at time.Time) error
	ExchangesBySession(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
}

type Service struct {
	store  Store
	client llm.Client
	ai     config.AIRuntimeConfig
	logger *zap.Logger
}

func NewService(store Store, client llm.Client, ai config.AIRuntimeConfig, logger *zap.Logger) *Service {
	return &Service{store: store, client: client, ai: ai, logger: logger}
}

// Process runs one chat turn: subject resolution, model/source lookup, prompt
// construction, provider call, then persistence. The exchange is only stored
// after a successful response; a storage failure afterwards surfaces as a
// processing error and the generated response is lost to the caller.
func (s *Service) Process(ctx context.Context, dto *ChatRequestDTO) (*models.ChatMessage, error) {
	subj := subject.Normalize(dto.Subject)
	if subj == "" {
		subj = subject.Detect(dto.Message)
	}

	descriptor := subject.ModelFor(subj)
	sources := subject.SourcesFor(subj)
	systemPrompt := subject.BuildSystemPrompt(subj, sources)

	apiKey := s.ai.KeyFor(descriptor.Provider)
	if apiKey == "" {
		return nil, ErrNotConfigured
	}

	responseText, err := s.client.Send(ctx, llm.SendOptions{
		APIKey:       apiKey,
		SessionID:    dto.SessionID,
		SystemPrompt: systemPrompt,
		Provider:     descriptor.Provider,
		Model:        descriptor.Model,
		UserText:     dto.Message,
	})
	if err != nil {
		s.logger.Error("provider call failed",
			zap.String("provider", descriptor.Provider),
			zap.String("model", descriptor.Model),
			zap.Error(err))
		return nil, fmt.Errorf("chat processing failed: %w", err)
	}

	msg := &models.ChatMessage{
		ID:          uuid.New().String(),
		SessionID:   dto.SessionID,
		UserMessage: dto.Message,
		AIResponse:  responseText,
		Subject:     subj.String(),
		AIModelUsed: descriptor.Name(),
		Sources:     sources,
		Timestamp:   time.Now().UTC(),
	}

	if err := s.store.InsertExchange(ctx, msg); err != nil {
		s.logger.Error("exchange persistence failed", zap.String("session_id", dto.SessionID), zap.Error(err))
		return nil, fmt.Errorf("chat processing failed: %w", err)
	}
	if err := s.store.TouchSession(ctx, dto.SessionID, msg.Timestamp); err != nil {
		s.logger.Error("session upsert failed", zap.String("session_id", dto.SessionID), zap.Error(err))
		return nil, fmt.Errorf("chat processing failed: %w", err)
	}

	return msg, nil
}

// StartSession creates and persists a fresh session record.
func (s *Service) StartSession(ctx context.Context) (*models.ChatSession, error) {
	session := models.NewChatSession()
	if err := s.store.InsertSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SessionMessages returns a session's exchanges, oldest first.
func (s *Service) SessionMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	return s.store.ExchangesBySession(ctx, sessionID)
}
