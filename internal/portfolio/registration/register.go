package registration

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kerigansolutions/kma-portfolio/internal/portfolio/domain"
)

// Registrar is the host side of content type registration. Implementations
// must de-duplicate by key so registering twice is harmless.
type Registrar interface {
	RegisterPostType(ctx context.Context, def PostTypeDefinition) error
	RegisterFieldGroup(ctx context.Context, def FieldGroupDefinition) error
}

// Register hands the content type and then its field group to r.
func Register(ctx context.Context, r Registrar, cfg domain.ContentTypeConfig, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	pt := PostType(cfg)
	if err := r.RegisterPostType(ctx, pt); err != nil {
		return fmt.Errorf("register post type %s: %w", pt.Key, err)
	}
	log.Info("post type registered", zap.String("key", pt.Key), zap.String("menu_name", cfg.MenuName()))

	fg := FieldGroup(cfg)
	if err := r.RegisterFieldGroup(ctx, fg); err != nil {
		return fmt.Errorf("register field group %s: %w", fg.Key, err)
	}
	log.Info("field group registered", zap.String("key", fg.Key), zap.Int("fields", len(fg.Fields)))

	return nil
}
