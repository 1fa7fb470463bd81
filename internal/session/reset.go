package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ResetTokenTTL bounds how long a password-reset token stays valid.
const ResetTokenTTL = 15 * time.Minute

// ErrInvalidResetToken is returned when a token is unknown, expired,
// already used, or bound to a different email.
var ErrInvalidResetToken = errors.New("invalid or expired reset token")

func resetKey(token string) string {
	return fmt.Sprintf("reset:%s", token)
}

// IssueResetToken creates a single-use, time-boxed password-reset token
// bound to the given email.
func (m *Manager) IssueResetToken(ctx context.Context, email string) (string, error) {
	if m.redis == nil {
		return "", errors.New("session store unavailable")
	}

	token := uuid.New().String()
	if err := m.redis.Set(ctx, resetKey(token), email, ResetTokenTTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// ConsumeResetToken validates a token against an email and burns it.
// A token can be consumed exactly once.
func (m *Manager) ConsumeResetToken(ctx context.Context, token, email string) error {
	if m.redis == nil || token == "" {
		return ErrInvalidResetToken
	}

	key := resetKey(token)
	stored, err := m.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrInvalidResetToken
		}
		return err
	}
	if stored != email {
		return ErrInvalidResetToken
	}

	// Delete before reporting success so the token is single-use even if
	// the caller's follow-up write fails.
	m.redis.Del(ctx, key)
	return nil
}
