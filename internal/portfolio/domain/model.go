package domain

import "encoding/json"

const (
	PostTypeProject   = "project"
	StatusPublished   = "publish"
	TaxonomyLocation  = "build-location"
	TaxonomyBuildType = "construction-type"

	FieldImage   = "image"
	FieldGallery = "gallery"
)

// ProjectRecord is a point-in-time snapshot of a project row as returned by
// the store. Title and Slug may be missing on partially populated rows.
type ProjectRecord struct {
	ID    int64
	Title *string
	Slug  *string
}

// TermDescriptor identifies one taxonomy term assigned to a project.
type TermDescriptor struct {
	ID   int64  `json:"term_id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ResponseItem is the public shape of a listed project.
//
// Gallery is serialized only when GalleryEnabled is set; the key is absent
// otherwise, regardless of whether Gallery holds data.
type ResponseItem struct {
	ID               int64
	Name             *string
	Slug             *string
	Photo            json.RawMessage
	Gallery          json.RawMessage
	GalleryEnabled   bool
	Link             *string
	BuildLocation    []TermDescriptor
	ConstructionType []TermDescriptor
}

type responseItemJSON struct {
	ID               int64            `json:"id"`
	Name             *string          `json:"name"`
	Slug             *string          `json:"slug"`
	Photo            json.RawMessage  `json:"photo"`
	Link             *string          `json:"link"`
	BuildLocation    []TermDescriptor `json:"build_location"`
	ConstructionType []TermDescriptor `json:"construction_type"`
}

type responseItemWithGalleryJSON struct {
	responseItemJSON
	Gallery json.RawMessage `json:"gallery"`
}

func (i ResponseItem) MarshalJSON() ([]byte, error) {
	base := responseItemJSON{
		ID:               i.ID,
		Name:             i.Name,
		Slug:             i.Slug,
		Photo:            nullIfEmpty(i.Photo),
		Link:             i.Link,
		BuildLocation:    i.BuildLocation,
		ConstructionType: i.ConstructionType,
	}
	if !i.GalleryEnabled {
		return json.Marshal(base)
	}
	return json.Marshal(responseItemWithGalleryJSON{
		responseItemJSON: base,
		Gallery:          nullIfEmpty(i.Gallery),
	})
}

// An empty, non-nil RawMessage is not valid JSON.
func nullIfEmpty(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	return raw
}
