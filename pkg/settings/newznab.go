package settings

import (
	"github.com/ThiRaBrTNK/Radarr/pkg/clientschema"
	"github.com/ThiRaBrTNK/Radarr/pkg/model"
)

// DefaultNewznabCategories are the movie categories requested when none are
// configured.
var DefaultNewznabCategories = []int{2000, 2010, 2020, 2030, 2035, 2040, 2045, 2050, 2060}

// Newznab configures a usenet indexer speaking the newznab API.
type Newznab struct {
	BaseURL              string
	APIPath              string
	APIKey               string
	Categories           []int
	AnimeCategories      []int
	AdditionalParameters string
}

// NewNewznab returns Newznab settings with the stock defaults.
func NewNewznab() Newznab {
	return Newznab{
		APIPath:         "/api",
		Categories:      append([]int(nil), DefaultNewznabCategories...),
		AnimeCategories: []int{},
	}
}

// NewznabSchema exposes Newznab settings.
var NewznabSchema = clientschema.NewSchema(
	clientschema.String("BaseUrl", func(s *Newznab) *string { return &s.BaseURL }, clientschema.FieldMeta{
		Label: "URL", Order: 0, Type: model.FieldTypeURL,
	}),
	clientschema.String("ApiPath", func(s *Newznab) *string { return &s.APIPath }, clientschema.FieldMeta{
		Label:    "API Path",
		HelpText: "Path to the api, usually /api",
		Order:    1,
		Advanced: true,
		Type:     model.FieldTypeTextbox,
	}),
	clientschema.String("ApiKey", func(s *Newznab) *string { return &s.APIKey }, clientschema.FieldMeta{
		Label: "API Key", Order: 2, Type: model.FieldTypeTextbox,
	}),
	clientschema.IntSlice("Categories", func(s *Newznab) *[]int { return &s.Categories }, clientschema.FieldMeta{
		Label:    "Categories",
		HelpText: "Comma Separated list, leave blank to disable all categories",
		Order:    3,
		Advanced: true,
		Type:     model.FieldTypeTextbox,
	}),
	clientschema.IntSlice("AnimeCategories", func(s *Newznab) *[]int { return &s.AnimeCategories }, clientschema.FieldMeta{
		Label:    "Anime Categories",
		HelpText: "Comma Separated list, leave blank to disable anime",
		Order:    3,
		Advanced: true,
		Type:     model.FieldTypeTextbox,
	}),
	clientschema.String("AdditionalParameters", func(s *Newznab) *string { return &s.AdditionalParameters }, clientschema.FieldMeta{
		Label:    "Additional Parameters",
		HelpText: "Additional Newznab parameters",
		Order:    4,
		Advanced: true,
		Type:     model.FieldTypeTextbox,
	}),
).WithDefaults(NewNewznab)
