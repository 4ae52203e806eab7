// Package sessions implements CRUD over idea sessions, scoped to the owning
// user on every operation.
package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrEmptyTitle is returned when the title is empty after trimming
var ErrEmptyTitle = errors.New("title is required")

const listCacheTTL = 2 * time.Minute

// Service handles business logic for idea sessions with optional caching
type Service struct {
	store Store
	cache *redis.Client
}

// NewService creates a sessions service without caching
func NewService(store Store) *Service {
	return &Service{store: store}
}

// NewServiceWithCache creates a sessions service backed by a Redis cache for
// list reads. If Redis is unreachable the cache is disabled and the service
// degrades to plain store access.
func NewServiceWithCache(store Store, redisAddr, redisPassword string, redisDB int) *Service {
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis connection failed, caching disabled", "error", err)
		rdb = nil
	} else {
		slog.Info("Redis cache connected for sessions service")
	}

	return &Service{store: store, cache: rdb}
}

// List returns all sessions owned by ownerID, most recently updated first
func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]Session, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, listCacheKey(ownerID)).Result()
		if err == nil {
			var sessions []Session
			if err := json.Unmarshal([]byte(cached), &sessions); err == nil {
				return sessions, nil
			}
		}
	}

	sessions, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(sessions); err == nil {
			s.cache.Set(ctx, listCacheKey(ownerID), data, listCacheTTL)
		}
	}

	return sessions, nil
}

// Create validates and normalizes the input, then persists a new session
// owned by ownerID.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, req SessionRequest) (*Session, error) {
	title, description, ideas, err := normalize(req)
	if err != nil {
		return nil, err
	}

	session, err := s.store.Create(ctx, &Session{
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Ideas:       ideas,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateList(ctx, ownerID)

	return session, nil
}

// Update replaces title, description and ideas of the session matching
// (id, ownerID). Validation failures leave the stored session untouched.
func (s *Service) Update(ctx context.Context, ownerID, id uuid.UUID, req SessionRequest) (*Session, error) {
	title, description, ideas, err := normalize(req)
	if err != nil {
		return nil, err
	}

	session, err := s.store.Update(ctx, id, ownerID, title, description, ideas)
	if err != nil {
		return nil, err
	}

	s.invalidateList(ctx, ownerID)

	return session, nil
}

// Delete removes the session matching (id, ownerID)
func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	s.invalidateList(ctx, ownerID)

	return nil
}

// normalize trims the title and description and cleans the idea list:
// each idea is trimmed, empties are dropped, relative order is preserved and
// duplicates are kept. Whitespace-only ideas are a cleanliness concern, not a
// validation failure; only an empty title rejects the request.
func normalize(req SessionRequest) (title, description string, ideas []string, err error) {
	title = strings.TrimSpace(req.Title)
	if title == "" {
		return "", "", nil, ErrEmptyTitle
	}

	description = strings.TrimSpace(req.Description)

	ideas = make([]string, 0, len(req.Ideas))
	for _, idea := range req.Ideas {
		if trimmed := strings.TrimSpace(idea); trimmed != "" {
			ideas = append(ideas, trimmed)
		}
	}

	return title, description, ideas, nil
}

func (s *Service) invalidateList(ctx context.Context, ownerID uuid.UUID) {
	if s.cache != nil {
		if err := s.cache.Del(ctx, listCacheKey(ownerID)).Err(); err != nil {
			slog.Warn("Failed to invalidate session list cache", "owner_id", ownerID, "error", err)
		}
	}
}

func listCacheKey(ownerID uuid.UUID) string {
	return fmt.Sprintf("sessions:user:%s", ownerID)
}
