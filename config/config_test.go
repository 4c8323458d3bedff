package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("API_NAMESPACE", "")
	t.Setenv("FIELD_STORE", "")
	t.Setenv("PORTFOLIO_HIDE_GALLERY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "kerigansolutions", cfg.Server.Namespace)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, FieldStorePostgres, cfg.Portfolio.FieldStore)
	assert.False(t, cfg.Portfolio.HideGallery)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_NAMESPACE", "acme")
	t.Setenv("PORTFOLIO_HIDE_GALLERY", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("FIELD_STORE", "redis")
	t.Setenv("DB_PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "acme", cfg.Server.Namespace)
	assert.True(t, cfg.Portfolio.HideGallery)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, FieldStoreRedis, cfg.Portfolio.FieldStore)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestValidate_RejectsUnknownFieldStore(t *testing.T) {
	cfg := &Config{
		Server:    ServerConfig{Port: "8080", Namespace: "kerigansolutions"},
		Database:  DatabaseConfig{Host: "localhost"},
		Portfolio: PortfolioConfig{FieldStore: "memcached"},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FIELD_STORE")
}

func TestValidate_RequiresNamespace(t *testing.T) {
	cfg := &Config{
		Server:    ServerConfig{Port: "8080", Namespace: "/"},
		Database:  DatabaseConfig{Host: "localhost"},
		Portfolio: PortfolioConfig{FieldStore: FieldStorePostgres},
	}

	require.Error(t, cfg.Validate())
}
