package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequiresPortAndSecret(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())

	cfg.Port = "5000"
	assert.Error(t, cfg.Validate())

	cfg.SessionSecret = "short-dev-secret"
	assert.NoError(t, cfg.Validate())
}

func TestValidateProductionStrictness(t *testing.T) {
	cfg := &Config{
		Port:          "5000",
		SessionSecret: "dev-session-secret-change-in-production",
		DBPassword:    "password",
		Env:           "production",
	}
	assert.Error(t, cfg.Validate(), "default secret must be rejected in production")

	cfg.SessionSecret = "too-short"
	assert.Error(t, cfg.Validate(), "short secret must be rejected in production")

	cfg.SessionSecret = "a-very-long-production-session-secret-value"
	assert.Error(t, cfg.Validate(), "weak DB password must be rejected in production")

	cfg.DBPassword = "s3cure-db-password"
	assert.NoError(t, cfg.Validate())
}
