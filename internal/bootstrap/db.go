package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kerigansolutions/kma-portfolio/config"
	"github.com/kerigansolutions/kma-portfolio/internal/storage/postgres"
)

type DBOptions struct {
	Config    config.DatabaseConfig
	ConnectTO time.Duration
}

func OpenDB(ctx context.Context, opt DBOptions) (*sql.DB, error) {
	if opt.Config.Host == "" {
		return nil, fmt.Errorf("DB_HOST is not set")
	}
	if opt.ConnectTO == 0 {
		opt.ConnectTO = 5 * time.Second
	}

	cctx, cancel := context.WithTimeout(ctx, opt.ConnectTO)
	defer cancel()

	db, err := postgres.NewConnection(cctx, &opt.Config)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}
	return db, nil
}
