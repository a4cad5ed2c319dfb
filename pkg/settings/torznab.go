package settings

import (
	"github.com/ThiRaBrTNK/Radarr/pkg/clientschema"
	"github.com/ThiRaBrTNK/Radarr/pkg/model"
)

// Torznab configures a torrent indexer speaking the torznab API. It extends
// the newznab settings with seeding rules.
type Torznab struct {
	Newznab

	MinimumSeeders int
	SeedRatio      float64
	SeedTime       *int
	MaximumSize    int64
	UploadLimit    *int64
	RequiredFlags  []string
}

// DefaultMinimumSeeders is the seeder floor applied to new torznab indexers.
const DefaultMinimumSeeders = 1

// NewTorznab returns Torznab settings with the stock defaults.
func NewTorznab() Torznab {
	return Torznab{
		Newznab:        NewNewznab(),
		MinimumSeeders: DefaultMinimumSeeders,
	}
}

// TorznabSchema exposes Torznab settings.
var TorznabSchema = clientschema.NewSchema(
	clientschema.String("BaseUrl", func(s *Torznab) *string { return &s.BaseURL }, clientschema.FieldMeta{
		Label: "URL", Order: 0, Type: model.FieldTypeURL,
	}),
	clientschema.String("ApiPath", func(s *Torznab) *string { return &s.APIPath }, clientschema.FieldMeta{
		Label:    "API Path",
		HelpText: "Path to the api, usually /api",
		Order:    1,
		Advanced: true,
		Type:     model.FieldTypeTextbox,
	}),
	clientschema.String("ApiKey", func(s *Torznab) *string { return &s.APIKey }, clientschema.FieldMeta{
		Label: "API Key", Order: 2, Type: model.FieldTypeTextbox,
	}),
	clientschema.IntSlice("Categories", func(s *Torznab) *[]int { return &s.Categories }, clientschema.FieldMeta{
		Label:    "Categories",
		HelpText: "Comma Separated list, leave blank to disable all categories",
		Order:    3,
		Advanced: true,
		Type:     model.FieldTypeTextbox,
	}),
	clientschema.IntSlice("AnimeCategories", func(s *Torznab) *[]int { return &s.AnimeCategories }, clientschema.FieldMeta{
		Label:    "Anime Categories",
		HelpText: "Comma Separated list, leave blank to disable anime",
		Order:    3,
		Advanced: true,
		Type:     model.FieldTypeTextbox,
	}),
	clientschema.String("AdditionalParameters", func(s *Torznab) *string { return &s.AdditionalParameters }, clientschema.FieldMeta{
		Label:    "Additional Parameters",
		HelpText: "Additional Torznab parameters",
		Order:    4,
		Advanced: true,
		Type:     model.FieldTypeTextbox,
	}),
	clientschema.Int("MinimumSeeders", func(s *Torznab) *int { return &s.MinimumSeeders }, clientschema.FieldMeta{
		Label:    "Minimum Seeders",
		HelpText: "Minimum number of seeders required.",
		Order:    5,
		Advanced: true,
		Type:     model.FieldTypeNumber,
	}),
	clientschema.Float("SeedRatio", func(s *Torznab) *float64 { return &s.SeedRatio }, clientschema.FieldMeta{
		Label:    "Seed Ratio",
		HelpText: "The ratio a torrent should reach before stopping, 0 uses the client's default",
		Order:    6,
		Advanced: true,
		Type:     model.FieldTypeNumber,
	}),
	clientschema.OptionalInt("SeedTime", func(s *Torznab) **int { return &s.SeedTime }, clientschema.FieldMeta{
		Label:    "Seed Time",
		HelpText: "Minutes a torrent should be seeded before stopping, empty uses the client's default",
		Order:    7,
		Advanced: true,
		Type:     model.FieldTypeNumber,
	}),
	clientschema.Int64("MaximumSize", func(s *Torznab) *int64 { return &s.MaximumSize }, clientschema.FieldMeta{
		Label:    "Maximum Size",
		HelpText: "Releases larger than this many bytes are rejected, 0 for no limit",
		Order:    8,
		Advanced: true,
		Type:     model.FieldTypeNumber,
	}),
	clientschema.OptionalInt64("UploadLimit", func(s *Torznab) **int64 { return &s.UploadLimit }, clientschema.FieldMeta{
		Label:    "Upload Limit",
		HelpText: "Bytes to upload before stopping, empty for no limit",
		Order:    9,
		Advanced: true,
		Type:     model.FieldTypeNumber,
	}),
	clientschema.StringSlice("RequiredFlags", func(s *Torznab) *[]string { return &s.RequiredFlags }, clientschema.FieldMeta{
		Label:    "Required Flags",
		HelpText: "Indexer flags a release must carry, such as freeleech",
		Order:    10,
		Advanced: true,
		Type:     model.FieldTypeTag,
	}),
).WithDefaults(NewTorznab)
