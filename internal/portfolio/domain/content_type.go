package domain

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	DefaultMenuName     = "Portfolio"
	DefaultMenuIcon     = "portfolio"
	DefaultSingularName = "Project"
	DefaultPluralName   = "Portfolio"
)

var iconPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Options holds the overridable content type settings. Zero values fall back
// to the defaults.
type Options struct {
	MenuName     string
	MenuIcon     string
	SingularName string
	PluralName   string
	HideGallery  bool
}

// ContentTypeConfig is the frozen configuration of the project content type.
// It is built once at startup and only read afterwards.
type ContentTypeConfig struct {
	menuName     string
	menuIcon     string
	singularName string
	pluralName   string
	hideGallery  bool
}

// DefaultContentType returns the configuration with every default applied.
func DefaultContentType() ContentTypeConfig {
	cfg, _ := NewContentType(Options{})
	return cfg
}

// NewContentType applies defaults to opts, validates the result and freezes it.
func NewContentType(opts Options) (ContentTypeConfig, error) {
	cfg := ContentTypeConfig{
		menuName:     withDefault(opts.MenuName, DefaultMenuName),
		menuIcon:     withDefault(opts.MenuIcon, DefaultMenuIcon),
		singularName: withDefault(opts.SingularName, DefaultSingularName),
		pluralName:   withDefault(opts.PluralName, DefaultPluralName),
		hideGallery:  opts.HideGallery,
	}

	if !iconPattern.MatchString(cfg.menuIcon) {
		return ContentTypeConfig{}, fmt.Errorf("%w: menu icon %q is not a dashicon slug", ErrInvalidConfig, cfg.menuIcon)
	}

	return cfg, nil
}

func (c ContentTypeConfig) MenuName() string     { return c.menuName }
func (c ContentTypeConfig) MenuIcon() string     { return c.menuIcon }
func (c ContentTypeConfig) SingularName() string { return c.singularName }
func (c ContentTypeConfig) PluralName() string   { return c.pluralName }
func (c ContentTypeConfig) HideGallery() bool    { return c.hideGallery }

// GalleryEnabled reports whether the gallery field exists for this content type.
func (c ContentTypeConfig) GalleryEnabled() bool { return !c.hideGallery }

func withDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
