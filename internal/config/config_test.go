package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.MongoDB.Timeout)
	assert.Equal(t, "Asia/Taipei", cfg.Campaign.Timezone)
	assert.Equal(t, 24*60*60, cfg.JWT.ExpiresIn)
}

func TestLoad_NestedKeysReachableFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("ADMIN_EMAIL", "ops@example.com")
	t.Setenv("ADMIN_PASSWORDHASH", "$2a$10$abcdefghijklmnopqrstuv")
	t.Setenv("SERVER_PORT", "5000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, "ops@example.com", cfg.Admin.Email)
	assert.Equal(t, "$2a$10$abcdefghijklmnopqrstuv", cfg.Admin.PasswordHash)
	assert.Equal(t, "5000", cfg.Server.Port)
}
