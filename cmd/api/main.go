package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/kerigansolutions/kma-portfolio/config"
	"github.com/kerigansolutions/kma-portfolio/internal/bootstrap"
	"github.com/kerigansolutions/kma-portfolio/internal/logger"
)

const serviceName = "kma-portfolio"

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("load config", zap.Error(err))
	}

	log := logger.Must(cfg.App.LogLevel, cfg.App.LogFormat).With(zap.String("service", serviceName))
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("service stopped", zap.Error(err))
	}
}

// run performs startup in order: content type, database, registration,
// field backend, router, then serves until a signal arrives.
func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bootstrap.SetGinMode(cfg.App.Environment)

	ct, err := bootstrap.ContentType(cfg.Portfolio)
	if err != nil {
		return err
	}

	db, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{Config: cfg.Database})
	if err != nil {
		return err
	}
	defer db.Close()

	if err := bootstrap.RegisterContentType(ctx, db, ct, log.Named("registration")); err != nil {
		return err
	}

	fields, closeFields, err := bootstrap.FieldReader(ctx, cfg, db)
	if err != nil {
		return err
	}
	defer closeFields()

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		Namespace:      cfg.Server.Namespace,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		DB:             db,
		Listing:        bootstrap.ListingService(db, fields, ct, cfg.Portfolio.SiteURL, log),
		Log:            log.Named("http"),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening",
			zap.String("addr", srv.Addr),
			zap.String("namespace", cfg.Server.Namespace),
			zap.String("field_store", cfg.Portfolio.FieldStore),
			zap.Bool("gallery", ct.GalleryEnabled()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
