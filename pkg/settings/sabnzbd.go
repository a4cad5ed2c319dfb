package settings

import (
	"github.com/ThiRaBrTNK/Radarr/pkg/clientschema"
	"github.com/ThiRaBrTNK/Radarr/pkg/model"
)

// Sabnzbd configures the SABnzbd download client.
type Sabnzbd struct {
	Host                string
	Port                int
	URLBase             string
	APIKey              string
	Username            string
	Password            string
	MovieCategory       string
	RecentMoviePriority int
	OlderMoviePriority  int
	UseSSL              bool
}

// NewSabnzbd returns Sabnzbd settings with the stock defaults.
func NewSabnzbd() Sabnzbd {
	return Sabnzbd{
		Host:                "localhost",
		Port:                8080,
		MovieCategory:       "movies",
		RecentMoviePriority: int(SabnzbdPriorityDefault),
		OlderMoviePriority:  int(SabnzbdPriorityDefault),
	}
}

// SabnzbdSchema exposes Sabnzbd settings.
var SabnzbdSchema = clientschema.NewSchema(
	clientschema.String("Host", func(s *Sabnzbd) *string { return &s.Host }, clientschema.FieldMeta{
		Label: "Host", Order: 0, Type: model.FieldTypeTextbox,
	}),
	clientschema.Int("Port", func(s *Sabnzbd) *int { return &s.Port }, clientschema.FieldMeta{
		Label: "Port", Order: 1, Type: model.FieldTypeNumber,
	}),
	clientschema.String("UrlBase", func(s *Sabnzbd) *string { return &s.URLBase }, clientschema.FieldMeta{
		Label:    "URL Base",
		HelpText: "Adds a prefix to the Sabnzbd url, e.g. http://[host]:[port]/[urlBase]/api",
		Order:    2,
		Advanced: true,
		Type:     model.FieldTypeTextbox,
	}),
	clientschema.String("ApiKey", func(s *Sabnzbd) *string { return &s.APIKey }, clientschema.FieldMeta{
		Label: "API Key", Order: 3, Type: model.FieldTypeTextbox,
	}),
	clientschema.String("Username", func(s *Sabnzbd) *string { return &s.Username }, clientschema.FieldMeta{
		Label: "Username", Order: 4, Type: model.FieldTypeTextbox,
	}),
	clientschema.String("Password", func(s *Sabnzbd) *string { return &s.Password }, clientschema.FieldMeta{
		Label: "Password", Order: 5, Type: model.FieldTypePassword,
	}),
	clientschema.String("MovieCategory", func(s *Sabnzbd) *string { return &s.MovieCategory }, clientschema.FieldMeta{
		Label:    "Category",
		HelpText: "Adding a category specific to Radarr avoids conflicts with unrelated downloads, but it's optional",
		Order:    6,
		Type:     model.FieldTypeTextbox,
	}),
	clientschema.Int("RecentMoviePriority", func(s *Sabnzbd) *int { return &s.RecentMoviePriority }, clientschema.FieldMeta{
		Label:    "Recent Priority",
		HelpText: "Priority to use when grabbing movies released within the last 14 days",
		Order:    7,
		Type:     model.FieldTypeSelect,
		Options:  SabnzbdPriorities,
	}),
	clientschema.Int("OlderMoviePriority", func(s *Sabnzbd) *int { return &s.OlderMoviePriority }, clientschema.FieldMeta{
		Label:    "Older Priority",
		HelpText: "Priority to use when grabbing movies released over 14 days ago",
		Order:    8,
		Type:     model.FieldTypeSelect,
		Options:  SabnzbdPriorities,
	}),
	clientschema.Bool("UseSsl", func(s *Sabnzbd) *bool { return &s.UseSSL }, clientschema.FieldMeta{
		Label: "Use SSL", Order: 9, Type: model.FieldTypeCheckbox,
	}),
).WithDefaults(NewSabnzbd)
