package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, rdb
}

func TestSessionLifecycle(t *testing.T) {
	_, rdb := setupTestRedis(t)
	m := NewManager(rdb)
	ctx := context.Background()

	ident := Identity{ID: 7, Email: "client@example.com", Name: "Client"}
	id, err := m.Create(ctx, DomainClient, ident)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := m.Get(ctx, DomainClient, id)
	require.NoError(t, err)
	assert.Equal(t, ident, *got)

	require.NoError(t, m.Destroy(ctx, DomainClient, id))

	_, err = m.Get(ctx, DomainClient, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionDomainsAreDisjoint(t *testing.T) {
	_, rdb := setupTestRedis(t)
	m := NewManager(rdb)
	ctx := context.Background()

	adminID, err := m.Create(ctx, DomainAdmin, Identity{ID: 1, Email: "admin@example.com", Name: "Admin", Role: "admin"})
	require.NoError(t, err)

	// An admin session ID must not resolve in the client domain.
	_, err = m.Get(ctx, DomainClient, adminID)
	assert.ErrorIs(t, err, ErrNotFound)

	clientID, err := m.Create(ctx, DomainClient, Identity{ID: 2, Email: "user@example.com", Name: "User"})
	require.NoError(t, err)

	_, err = m.Get(ctx, DomainAdmin, clientID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionExpiry(t *testing.T) {
	mr, rdb := setupTestRedis(t)
	m := NewManagerTTL(rdb, time.Minute)
	ctx := context.Background()

	id, err := m.Create(ctx, DomainClient, Identity{ID: 3, Email: "u@example.com", Name: "U"})
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = m.Get(ctx, DomainClient, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResetTokenSingleUse(t *testing.T) {
	_, rdb := setupTestRedis(t)
	m := NewManager(rdb)
	ctx := context.Background()

	token, err := m.IssueResetToken(ctx, "user@example.com")
	require.NoError(t, err)

	// Wrong email rejected without burning the token.
	assert.ErrorIs(t, m.ConsumeResetToken(ctx, token, "other@example.com"), ErrInvalidResetToken)

	require.NoError(t, m.ConsumeResetToken(ctx, token, "user@example.com"))

	// Second use fails.
	assert.ErrorIs(t, m.ConsumeResetToken(ctx, token, "user@example.com"), ErrInvalidResetToken)
}

func TestResetTokenExpiry(t *testing.T) {
	mr, rdb := setupTestRedis(t)
	m := NewManager(rdb)
	ctx := context.Background()

	token, err := m.IssueResetToken(ctx, "user@example.com")
	require.NoError(t, err)

	mr.FastForward(ResetTokenTTL + time.Minute)

	assert.ErrorIs(t, m.ConsumeResetToken(ctx, token, "user@example.com"), ErrInvalidResetToken)
}
