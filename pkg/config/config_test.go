package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "JWT_ISSUER", "JWT_TTL_MINUTES", "LOG_LEVEL", "LOG_FORMAT", "REQUEST_TIMEOUT_SECONDS", "ADMIN_EMAIL", "SKILL_CATEGORY_ALIASES", "DB_MAX_CONNS"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "folio", cfg.JWTIssuer)
	assert.Equal(t, time.Hour, cfg.JWTTTL())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout())
	assert.Equal(t, 10, cfg.DBMaxConns)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_TTL_MINUTES", "15")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("SKILL_CATEGORY_ALIASES", "/etc/folio/aliases.yaml")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWTTTL())
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout())
	assert.Equal(t, "admin@example.com", cfg.AdminEmail)
	assert.Equal(t, "/etc/folio/aliases.yaml", cfg.SkillCategoryAliases)
}
