package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/kerigansolutions/kma-portfolio/config"
	"github.com/kerigansolutions/kma-portfolio/internal/portfolio/domain"
	"github.com/kerigansolutions/kma-portfolio/internal/portfolio/registration"
	"github.com/kerigansolutions/kma-portfolio/internal/portfolio/repository"
	"github.com/kerigansolutions/kma-portfolio/internal/portfolio/service"
)

// ContentType freezes the content type configuration from env settings.
func ContentType(cfg config.PortfolioConfig) (domain.ContentTypeConfig, error) {
	return domain.NewContentType(domain.Options{
		MenuName:     cfg.MenuName,
		MenuIcon:     cfg.MenuIcon,
		SingularName: cfg.SingularName,
		PluralName:   cfg.PluralName,
		HideGallery:  cfg.HideGallery,
	})
}

// RegisterContentType publishes the post type and field group definitions.
func RegisterContentType(ctx context.Context, db *sql.DB, ct domain.ContentTypeConfig, log *zap.Logger) error {
	return registration.Register(ctx, repository.NewContentTypeRepository(db), ct, log)
}

// FieldReader picks the custom field backend. The returned close func
// releases whatever connection the backend opened.
func FieldReader(ctx context.Context, cfg *config.Config, db *sql.DB) (service.FieldReader, func() error, error) {
	switch cfg.Portfolio.FieldStore {
	case config.FieldStoreRedis:
		client, err := OpenRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRedisFieldRepository(client), client.Close, nil
	case config.FieldStorePostgres, "":
		return repository.NewFieldRepository(db), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown field store %q", cfg.Portfolio.FieldStore)
	}
}

// ListingService wires the store, projector and collaborators together.
func ListingService(db *sql.DB, fields service.FieldReader, ct domain.ContentTypeConfig, siteURL string, log *zap.Logger) *service.ListingService {
	projector := service.NewProjector(
		ct,
		fields,
		repository.NewTermRepository(db),
		repository.NewPermalinkRepository(db, siteURL),
		log.Named("projector"),
	)
	return service.NewListingService(repository.NewProjectRepository(db), projector, log.Named("listing"))
}
