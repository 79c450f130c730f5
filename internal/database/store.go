package database

import (
	"context"
	"fmt"
	"time"

	"github.com/study-space/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collExchanges = "chat_messages"
	collSessions  = "chat_sessions"
)

// Store persists chat exchanges and session bookkeeping in MongoDB.
type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store { return &Store{db: db} }

func (s *Store) InsertExchange(ctx context.Context, msg *models.ChatMessage) error {
	if _, err := s.db.Collection(collExchanges).InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("insert exchange: %w", err)
	}
	return nil
}

func (s *Store) InsertSession(ctx context.Context, session *models.ChatSession) error {
	if _, err := s.db.Collection(collSessions).InsertOne(ctx, session); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// TouchSession bumps last_active and the message counter in one atomic upsert,
// creating the session record when it does not exist yet.
func (s *Store) TouchSession(ctx context.Context, sessionID string, at time.Time) error {
	_, err := s.db.Collection(collSessions).UpdateOne(ctx,
		bson.M{"id": sessionID},
		bson.M{
			"$set":         bson.M{"last_active": at},
			"$inc":         bson.M{"total_messages": 1},
			"$setOnInsert": bson.M{"created_at": at},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

// ExchangesBySession returns all exchanges for a session, oldest first.
func (s *Store) ExchangesBySession(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	cursor, err := s.db.Collection(collExchanges).Find(ctx,
		bson.M{"session_id": sessionID},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("find exchanges: %w", err)
	}
	defer cursor.Close(ctx)

	out := []models.ChatMessage{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode exchanges: %w", err)
	}
	return out, nil
}

// Ping reports storage reachability for the health endpoint.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}
