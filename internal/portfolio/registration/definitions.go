package registration

import "github.com/kerigansolutions/kma-portfolio/internal/portfolio/domain"

const (
	FieldGroupKey   = "group_project_details"
	galleryMaxItems = 20
	galleryMaxSize  = "10"
	galleryMIMEs    = "jpg,jpeg,png,tiff,tif,svg,swf,pdf,webp"
)

// PostTypeDefinition is the content type payload handed to the host.
type PostTypeDefinition struct {
	Key            string            `json:"key"`
	Labels         map[string]string `json:"labels"`
	Public         bool              `json:"public"`
	Hierarchical   bool              `json:"hierarchical"`
	ShowUI         bool              `json:"show_ui"`
	ShowInNavMenus bool              `json:"show_in_nav_menus"`
	Supports       []string          `json:"supports"`
	HasArchive     bool              `json:"has_archive"`
	Rewrite        bool              `json:"rewrite"`
	QueryVar       bool              `json:"query_var"`
	MenuIcon       string            `json:"menu_icon"`
	ShowInREST     bool              `json:"show_in_rest"`
	RESTBase       string            `json:"rest_base"`
	RESTController string            `json:"rest_controller_class"`
}

type LocationRule struct {
	Param    string `json:"param"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

type FieldDefinition struct {
	Key          string `json:"key"`
	Label        string `json:"label"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Required     bool   `json:"required"`
	ReturnFormat string `json:"return_format,omitempty"`
	PreviewSize  string `json:"preview_size"`
	Library      string `json:"library,omitempty"`
	Max          int    `json:"max,omitempty"`
	MaxSize      string `json:"max_size,omitempty"`
	MIMETypes    string `json:"mime_types,omitempty"`
}

// FieldGroupDefinition is the field schema payload handed to the host's
// field subsystem.
type FieldGroupDefinition struct {
	Key                  string            `json:"key"`
	Title                string            `json:"title"`
	Location             [][]LocationRule  `json:"location"`
	MenuOrder            int               `json:"menu_order"`
	Position             string            `json:"position"`
	Style                string            `json:"style"`
	LabelPlacement       string            `json:"label_placement"`
	InstructionPlacement string            `json:"instruction_placement"`
	Fields               []FieldDefinition `json:"fields"`
}

// PostType builds the project content type definition for cfg.
func PostType(cfg domain.ContentTypeConfig) PostTypeDefinition {
	menu, one := cfg.MenuName(), cfg.SingularName()
	return PostTypeDefinition{
		Key: domain.PostTypeProject,
		Labels: map[string]string{
			"name":                  menu,
			"singular_name":         one,
			"all_items":             menu,
			"archives":              menu + " Archives",
			"attributes":            one + " Attributes",
			"insert_into_item":      "Insert into " + one,
			"uploaded_to_this_item": "Uploaded to this " + one,
			"featured_image":        "Featured Image",
			"set_featured_image":    "Set featured image",
			"remove_featured_image": "Remove featured image",
			"use_featured_image":    "Use as featured image",
			"filter_items_list":     "Filter " + cfg.PluralName() + " list",
			"items_list_navigation": menu + " list navigation",
			"items_list":            menu + " list",
			"new_item":              "New " + one,
			"add_new":               "Add New",
			"add_new_item":          "Add New " + one,
			"edit_item":             "Edit " + one,
			"view_item":             "View " + one,
			"view_items":            "View " + menu,
			"search_items":          "Search " + menu,
			"not_found":             "No " + cfg.PluralName() + " found",
			"not_found_in_trash":    "No " + cfg.PluralName() + " found in trash",
			"parent_item_colon":     "Parent " + one + ":",
			"menu_name":             menu,
		},
		Public:         true,
		ShowUI:         true,
		ShowInNavMenus: true,
		Supports:       []string{"title", "editor"},
		HasArchive:     true,
		Rewrite:        true,
		QueryVar:       true,
		MenuIcon:       "dashicons-" + cfg.MenuIcon(),
		ShowInREST:     true,
		RESTBase:       domain.PostTypeProject,
		RESTController: "WP_REST_Posts_Controller",
	}
}

// FieldGroup builds the project details field group. The gallery field is
// only part of the group when the gallery is enabled.
func FieldGroup(cfg domain.ContentTypeConfig) FieldGroupDefinition {
	fields := []FieldDefinition{{
		Key:          "featured_image",
		Label:        "Featured Image",
		Name:         domain.FieldImage,
		Type:         "image",
		ReturnFormat: "array",
		PreviewSize:  "large",
		Library:      "all",
	}}

	if cfg.GalleryEnabled() {
		fields = append(fields, FieldDefinition{
			Key:         domain.FieldGallery,
			Label:       "Additional Photos",
			Name:        domain.FieldGallery,
			Type:        "gallery",
			PreviewSize: "thumbnail",
			Max:         galleryMaxItems,
			MaxSize:     galleryMaxSize,
			MIMETypes:   galleryMIMEs,
		})
	}

	return FieldGroupDefinition{
		Key:   FieldGroupKey,
		Title: cfg.SingularName() + " Details",
		Location: [][]LocationRule{{
			{Param: "post_type", Operator: "==", Value: domain.PostTypeProject},
		}},
		Position:             "normal",
		Style:                "default",
		LabelPlacement:       "top",
		InstructionPlacement: "label",
		Fields:               fields,
	}
}
