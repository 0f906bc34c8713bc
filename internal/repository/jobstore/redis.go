package jobstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/model"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/repository"
)

const keyPrefix = "notification:"

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient parses url and checks the server is reachable.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// NewRedisStore shares notification jobs between instances through redis.
func NewRedisStore(client *redis.Client, ttl time.Duration) repository.NotificationRepository {
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) Create(ctx context.Context, notification *model.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+notification.ID.String(), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}
	return nil
}

func (s *redisStore) Update(ctx context.Context, notification *model.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	// XX: only overwrite a job that is still there.
	ok, err := s.client.SetXX(ctx, keyPrefix+notification.ID.String(), payload, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}
	if !ok {
		return repository.ErrNotificationNotFound
	}
	return nil
}

func (s *redisStore) Get(ctx context.Context, id uuid.UUID) (*model.Notification, error) {
	payload, err := s.client.Get(ctx, keyPrefix+id.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrNotificationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	var n model.Notification
	if err := json.Unmarshal(payload, &n); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notification: %w", err)
	}
	return &n, nil
}
