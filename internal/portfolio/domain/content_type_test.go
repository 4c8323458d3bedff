package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContentType_Defaults(t *testing.T) {
	cfg := DefaultContentType()

	assert.Equal(t, "Portfolio", cfg.MenuName())
	assert.Equal(t, "portfolio", cfg.MenuIcon())
	assert.Equal(t, "Project", cfg.SingularName())
	assert.Equal(t, "Portfolio", cfg.PluralName())
	assert.False(t, cfg.HideGallery())
	assert.True(t, cfg.GalleryEnabled())
}

func TestNewContentType_Overrides(t *testing.T) {
	cfg, err := NewContentType(Options{
		MenuName:     "Our Work",
		MenuIcon:     "building",
		SingularName: "Home",
		PluralName:   "Homes",
		HideGallery:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Our Work", cfg.MenuName())
	assert.Equal(t, "building", cfg.MenuIcon())
	assert.Equal(t, "Home", cfg.SingularName())
	assert.Equal(t, "Homes", cfg.PluralName())
	assert.False(t, cfg.GalleryEnabled())
}

func TestNewContentType_BlankNamesFallBack(t *testing.T) {
	cfg, err := NewContentType(Options{MenuName: "   ", SingularName: "\t"})
	require.NoError(t, err)
	assert.Equal(t, DefaultMenuName, cfg.MenuName())
	assert.Equal(t, DefaultSingularName, cfg.SingularName())
}

func TestNewContentType_RejectsBadIcon(t *testing.T) {
	_, err := NewContentType(Options{MenuIcon: "Dashicons Portfolio!"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func strPtr(s string) *string { return &s }

func TestResponseItem_MarshalJSON(t *testing.T) {
	item := ResponseItem{
		ID:      42,
		Slug:    strPtr("lake-house"),
		Photo:   json.RawMessage(`{"url":"https://cdn.example/a.jpg"}`),
		Gallery: json.RawMessage(`[{"id":1}]`),
		Link:    strPtr("https://example.com/project/lake-house/"),
		BuildLocation: []TermDescriptor{
			{ID: 3, Name: "Lakefront", Slug: "lakefront"},
		},
	}

	t.Run("gallery omitted when disabled", func(t *testing.T) {
		raw, err := json.Marshal(item)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.NotContains(t, got, "gallery")
		for _, key := range []string{"id", "name", "slug", "photo", "link", "build_location", "construction_type"} {
			assert.Contains(t, got, key)
		}
		assert.Nil(t, got["name"])
		assert.Nil(t, got["construction_type"])
		assert.EqualValues(t, 42, got["id"])
	})

	t.Run("gallery present when enabled", func(t *testing.T) {
		enabled := item
		enabled.GalleryEnabled = true
		raw, err := json.Marshal(enabled)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Contains(t, got, "gallery")
		assert.NotNil(t, got["gallery"])
	})

	t.Run("enabled gallery with no value is null", func(t *testing.T) {
		empty := ResponseItem{ID: 1, GalleryEnabled: true, Gallery: json.RawMessage{}}
		raw, err := json.Marshal(empty)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Contains(t, got, "gallery")
		assert.Nil(t, got["gallery"])
		assert.Nil(t, got["photo"])
	})
}
