// Package session implements server-side sessions over Redis for the two
// independent identity domains: client users and admins. A session in one
// domain grants nothing in the other.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Domain names one of the two identity spaces.
type Domain string

const (
	DomainClient Domain = "client"
	DomainAdmin  Domain = "admin"
)

// Cookie names per domain. Distinct names keep the two session contexts
// fully disjoint at the transport level too.
const (
	ClientCookie = "hireflow_session"
	AdminCookie  = "hireflow_admin_session"
)

// DefaultTTL is the sliding session lifetime.
const DefaultTTL = 24 * time.Hour

// ErrNotFound is returned when a session ID has no live server-side state.
var ErrNotFound = errors.New("session not found")

// Identity is the payload stored against a session ID.
type Identity struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
}

// Manager creates, resolves and destroys sessions in Redis.
type Manager struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewManager returns a session manager with the default sliding TTL.
func NewManager(rdb *redis.Client) *Manager {
	return &Manager{redis: rdb, ttl: DefaultTTL}
}

// NewManagerTTL returns a session manager with a custom TTL (used in tests).
func NewManagerTTL(rdb *redis.Client, ttl time.Duration) *Manager {
	return &Manager{redis: rdb, ttl: ttl}
}

func sessionKey(domain Domain, id string) string {
	return fmt.Sprintf("session:%s:%s", domain, id)
}

// Create stores a new session for the identity and returns its opaque ID.
func (m *Manager) Create(ctx context.Context, domain Domain, ident Identity) (string, error) {
	if m.redis == nil {
		return "", errors.New("session store unavailable")
	}

	payload, err := json.Marshal(ident)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	if err := m.redis.Set(ctx, sessionKey(domain, id), payload, m.ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

// Get resolves a session ID to its identity and slides the TTL forward.
// Returns ErrNotFound for unknown, expired, or cross-domain IDs.
func (m *Manager) Get(ctx context.Context, domain Domain, id string) (*Identity, error) {
	if m.redis == nil || id == "" {
		return nil, ErrNotFound
	}

	key := sessionKey(domain, id)
	payload, err := m.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var ident Identity
	if err := json.Unmarshal([]byte(payload), &ident); err != nil {
		return nil, err
	}

	// Sliding window: every authenticated request extends the session.
	m.redis.Expire(ctx, key, m.ttl)

	return &ident, nil
}

// Destroy removes a session. Destroying an unknown session is not an error.
func (m *Manager) Destroy(ctx context.Context, domain Domain, id string) error {
	if m.redis == nil || id == "" {
		return nil
	}
	return m.redis.Del(ctx, sessionKey(domain, id)).Err()
}
