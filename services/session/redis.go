// File: services/session/redis.go
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"yachtmatch/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const sessionPrefix = "chat:sess:"

// RedisStore implements Store on a dedicated Redis database.
type RedisStore struct {
	client      *redis.Client
	appName     string
	companyName string
	ttl         time.Duration
}

func NewRedisStore(client *redis.Client, appName, companyName string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, appName: appName, companyName: companyName, ttl: ttl}
}

func (s *RedisStore) key(userID string) string {
	return sessionPrefix + s.appName + ":" + userID
}

// Get returns the latest session for the user, or (nil, nil) if none exists.
func (s *RedisStore) Get(ctx context.Context, userID string) (*models.Session, error) {
	data, err := s.client.Get(ctx, s.key(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session store unavailable: %w", err)
	}
	var sess models.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to parse stored session: %w", err)
	}
	return &sess, nil
}

// Create initializes a fresh session with the company-name seed state.
func (s *RedisStore) Create(ctx context.Context, userID string) (*models.Session, error) {
	sess := &models.Session{
		SessionID: uuid.New().String(),
		AppName:   s.appName,
		UserID:    userID,
		State:     map[string]string{"company_name": s.companyName},
		UpdatedAt: time.Now(),
	}
	if err := s.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Save marshals the session and refreshes its TTL.
func (s *RedisStore) Save(ctx context.Context, sess *models.Session) error {
	sess.UpdatedAt = time.Now()
	b, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sess.UserID), b, s.ttl).Err(); err != nil {
		return fmt.Errorf("session store unavailable: %w", err)
	}
	return nil
}

// Clear drops the user's session.
func (s *RedisStore) Clear(ctx context.Context, userID string) error {
	return s.client.Del(ctx, s.key(userID)).Err()
}
