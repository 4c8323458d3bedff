package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kerigansolutions/kma-portfolio/config"
)

func TestDSN(t *testing.T) {
	cfg := &config.DatabaseConfig{Host: "db", Port: 5433, User: "wp", Password: "secret", Name: "portfolio"}
	assert.Equal(t, "host=db port=5433 user=wp password=secret dbname=portfolio sslmode=disable", DSN(cfg))

	cfg.SSLMode = "require"
	assert.Contains(t, DSN(cfg), "sslmode=require")
}
