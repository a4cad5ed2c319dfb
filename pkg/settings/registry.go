package settings

import (
	"sort"
	"strings"

	"github.com/ThiRaBrTNK/Radarr/pkg/clientschema"
	"github.com/ThiRaBrTNK/Radarr/pkg/quality"
	"github.com/ThiRaBrTNK/Radarr/pkg/selectoptions"
)

// Kind pairs a settings kind name with its schema.
type Kind struct {
	Name        string
	Description string
	Schema      clientschema.Mapper
}

var kinds = []Kind{
	{Name: "newznab", Description: "Newznab usenet indexer", Schema: NewznabSchema},
	{Name: "torznab", Description: "Torznab torrent indexer", Schema: TorznabSchema},
	{Name: "sabnzbd", Description: "SABnzbd download client", Schema: SabnzbdSchema},
	{Name: "torrentblackhole", Description: "Torrent blackhole folder", Schema: TorrentBlackholeSchema},
	{Name: "netimport", Description: "Remote movie list", Schema: NetImportSchema},
	{Name: "cardigann", Description: "Declarative definition indexer", Schema: CardigannSchema},
}

// Lookup returns the kind registered under name, ignoring case.
func Lookup(name string) (Kind, bool) {
	for _, kind := range kinds {
		if strings.EqualFold(kind.Name, name) {
			return kind, true
		}
	}
	return Kind{}, false
}

// Names lists the registered kinds alphabetically.
func Names() []string {
	names := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		names = append(names, kind.Name)
	}
	sort.Strings(names)
	return names
}

// Catalogs returns a registry holding every catalog the built-in schemas
// reference.
func Catalogs() *selectoptions.Registry {
	return selectoptions.NewRegistry(
		quality.Catalog,
		selectoptions.Profiles,
		SabnzbdPriorities,
		MovieStatuses,
	)
}
