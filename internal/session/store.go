// Package session implements the Redis-backed session store.
//
// Sessions are keyed by a random UUID and carry a minimal snapshot of the
// authenticated user. Authorization data (the admin flag) is read from this
// snapshot, never from the client.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"atelier/internal/middleware"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// CookieName is the name of the session cookie issued to browsers.
const CookieName = "atelier_session"

// ErrNotFound is returned when no session exists for the given ID.
var ErrNotFound = errors.New("session not found")

// Session is the server-side session payload. It holds only what request
// handling needs; the password hash never enters the store.
type Session struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists sessions in Redis with a sliding expiry set at creation.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore creates a session store backed by the given Redis client.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Create stores a new session for the user and returns it. The session ID is
// a freshly generated UUID; collisions are not a practical concern.
func (s *Store) Create(ctx context.Context, userID uint, username string, isAdmin bool) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Username:  username,
		IsAdmin:   isAdmin,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(sess)
	if err != nil {
		middleware.SessionOperations.WithLabelValues("create", "error").Inc()
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.rdb.Set(ctx, keyPrefix+sess.ID, data, s.ttl).Err(); err != nil {
		middleware.SessionOperations.WithLabelValues("create", "error").Inc()
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	middleware.SessionOperations.WithLabelValues("create", "ok").Inc()
	return sess, nil
}

// Get looks up a session by ID. Returns ErrNotFound for missing or expired
// sessions.
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrNotFound
	}

	data, err := s.rdb.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		middleware.SessionOperations.WithLabelValues("get", "miss").Inc()
		return nil, ErrNotFound
	}
	if err != nil {
		middleware.SessionOperations.WithLabelValues("get", "error").Inc()
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		middleware.SessionOperations.WithLabelValues("get", "error").Inc()
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	middleware.SessionOperations.WithLabelValues("get", "ok").Inc()
	return &sess, nil
}

// Destroy removes a session from the store. An absent session reports
// ErrNotFound so callers can tell a miss from a store failure.
func (s *Store) Destroy(ctx context.Context, id string) error {
	if id == "" {
		return ErrNotFound
	}

	deleted, err := s.rdb.Del(ctx, keyPrefix+id).Result()
	if err != nil {
		middleware.SessionOperations.WithLabelValues("destroy", "error").Inc()
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	if deleted == 0 {
		middleware.SessionOperations.WithLabelValues("destroy", "miss").Inc()
		return ErrNotFound
	}

	middleware.SessionOperations.WithLabelValues("destroy", "ok").Inc()
	return nil
}
