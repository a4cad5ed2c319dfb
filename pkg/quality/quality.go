// Package quality holds the static quality ladder. Each quality has a stable
// numeric identifier that doubles as its rank when offered in select fields.
package quality

import "github.com/ThiRaBrTNK/Radarr/pkg/selectoptions"

// Quality is one rung of the ladder.
type Quality struct {
	ID   int
	Name string
}

var (
	Unknown     = Quality{ID: 0, Name: "Unknown"}
	SDTV        = Quality{ID: 1, Name: "SDTV"}
	DVD         = Quality{ID: 2, Name: "DVD"}
	WEBDL1080p  = Quality{ID: 3, Name: "WEBDL-1080p"}
	HDTV720p    = Quality{ID: 4, Name: "HDTV-720p"}
	WEBDL720p   = Quality{ID: 5, Name: "WEBDL-720p"}
	Bluray720p  = Quality{ID: 6, Name: "Bluray-720p"}
	Bluray1080p = Quality{ID: 7, Name: "Bluray-1080p"}
	WEBDL480p   = Quality{ID: 8, Name: "WEBDL-480p"}
	HDTV1080p   = Quality{ID: 9, Name: "HDTV-1080p"}
	RAWHD       = Quality{ID: 10, Name: "Raw-HD"}
	HDTV2160p   = Quality{ID: 16, Name: "HDTV-2160p"}
	WEBDL2160p  = Quality{ID: 18, Name: "WEBDL-2160p"}
	Bluray2160p = Quality{ID: 19, Name: "Bluray-2160p"}
	Bluray480p  = Quality{ID: 20, Name: "Bluray-480p"}
	Bluray576p  = Quality{ID: 21, Name: "Bluray-576p"}
	BRDISK      = Quality{ID: 22, Name: "BR-DISK"}
	DVDR        = Quality{ID: 23, Name: "DVD-R"}
	Regional    = Quality{ID: 24, Name: "REGIONAL"}
	Telecine    = Quality{ID: 25, Name: "TELECINE"}
	Telesync    = Quality{ID: 26, Name: "TELESYNC"}
	Cam         = Quality{ID: 27, Name: "CAM"}
	Workprint   = Quality{ID: 28, Name: "WORKPRINT"}
)

// all lists the ladder from lowest to highest; IDs do not follow ladder order.
var all = []Quality{
	Unknown, Workprint, Cam, Telesync, Telecine, Regional, DVDR, SDTV, DVD,
	WEBDL480p, Bluray480p, Bluray576p, HDTV720p, WEBDL720p, Bluray720p,
	HDTV1080p, WEBDL1080p, Bluray1080p, BRDISK, RAWHD, HDTV2160p, WEBDL2160p,
	Bluray2160p,
}

// All returns every quality in declaration order.
func All() []Quality {
	return append([]Quality(nil), all...)
}

// FindByID returns the quality with the given identifier.
func FindByID(id int) (Quality, bool) {
	for _, q := range all {
		if q.ID == id {
			return q, true
		}
	}
	return Quality{}, false
}

func (q Quality) String() string {
	return q.Name
}

type catalog struct{}

// Catalog exposes the ladder as a ranked select catalog.
var Catalog selectoptions.RankedCatalog = catalog{}

func (catalog) CatalogName() string {
	return "quality"
}

func (catalog) Ranks() []selectoptions.Entry {
	entries := make([]selectoptions.Entry, 0, len(all))
	for _, q := range all {
		entries = append(entries, selectoptions.Entry{Name: q.Name, Value: q.ID})
	}
	return entries
}
