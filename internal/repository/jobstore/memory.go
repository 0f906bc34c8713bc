package jobstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/model"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/repository"
)

type memoryStore struct {
	cache *cache.Cache
	ttl   time.Duration
}

// NewMemoryStore keeps notification jobs in process for ttl after their
// last update.
func NewMemoryStore(ttl time.Duration) repository.NotificationRepository {
	return &memoryStore{
		cache: cache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

func (s *memoryStore) Create(ctx context.Context, notification *model.Notification) error {
	s.cache.Set(notification.ID.String(), *notification, s.ttl)
	return nil
}

func (s *memoryStore) Update(ctx context.Context, notification *model.Notification) error {
	if _, found := s.cache.Get(notification.ID.String()); !found {
		return repository.ErrNotificationNotFound
	}
	s.cache.Set(notification.ID.String(), *notification, s.ttl)
	return nil
}

func (s *memoryStore) Get(ctx context.Context, id uuid.UUID) (*model.Notification, error) {
	v, found := s.cache.Get(id.String())
	if !found {
		return nil, repository.ErrNotificationNotFound
	}
	n := v.(model.Notification)
	return &n, nil
}
