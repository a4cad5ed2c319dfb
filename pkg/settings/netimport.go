package settings

import (
	"github.com/ThiRaBrTNK/Radarr/pkg/clientschema"
	"github.com/ThiRaBrTNK/Radarr/pkg/model"
	"github.com/ThiRaBrTNK/Radarr/pkg/quality"
	"github.com/ThiRaBrTNK/Radarr/pkg/selectoptions"
)

// NetImport configures a remote movie list that feeds the library.
type NetImport struct {
	Link                string
	ProfileID           int
	ShouldMonitor       bool
	MinimumAvailability int
	QualityCutoff       int
	RootFolderPath      string
	Tags                []string
}

// NewNetImport returns NetImport settings with the stock defaults.
func NewNetImport() NetImport {
	return NetImport{
		ProfileID:           1,
		ShouldMonitor:       true,
		MinimumAvailability: int(MovieStatusReleased),
		QualityCutoff:       quality.Bluray1080p.ID,
	}
}

// NetImportSchema exposes NetImport settings. Profiles are user data, so the
// profile select carries no options of its own.
var NetImportSchema = clientschema.NewSchema(
	clientschema.String("Link", func(s *NetImport) *string { return &s.Link }, clientschema.FieldMeta{
		Label: "Link", HelpText: "Link to the list of movies", Order: 0, Type: model.FieldTypeURL,
	}),
	clientschema.Int("ProfileId", func(s *NetImport) *int { return &s.ProfileID }, clientschema.FieldMeta{
		Label: "Quality Profile", Order: 1, Type: model.FieldTypeSelect, Options: selectoptions.Profiles,
	}),
	clientschema.Bool("ShouldMonitor", func(s *NetImport) *bool { return &s.ShouldMonitor }, clientschema.FieldMeta{
		Label: "Monitor", HelpText: "Monitor movies added from this list", Order: 2, Type: model.FieldTypeCheckbox,
	}),
	clientschema.Int("MinimumAvailability", func(s *NetImport) *int { return &s.MinimumAvailability }, clientschema.FieldMeta{
		Label:    "Minimum Availability",
		HelpText: "Release stage at which added movies are considered available",
		Order:    3,
		Type:     model.FieldTypeSelect,
		Options:  MovieStatuses,
	}),
	clientschema.Int("QualityCutoff", func(s *NetImport) *int { return &s.QualityCutoff }, clientschema.FieldMeta{
		Label:    "Quality Cutoff",
		HelpText: "Once this quality is reached Radarr stops upgrading",
		Order:    4,
		Advanced: true,
		Type:     model.FieldTypeSelect,
		Options:  quality.Catalog,
	}),
	clientschema.String("RootFolderPath", func(s *NetImport) *string { return &s.RootFolderPath }, clientschema.FieldMeta{
		Label: "Root Folder", Order: 5, Type: model.FieldTypePath,
	}),
	clientschema.StringSlice("Tags", func(s *NetImport) *[]string { return &s.Tags }, clientschema.FieldMeta{
		Label: "Tags", HelpText: "Tags applied to movies added from this list", Order: 6, Type: model.FieldTypeTag,
	}),
).WithDefaults(NewNetImport)
