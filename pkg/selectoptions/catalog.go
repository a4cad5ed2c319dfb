package selectoptions

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ThiRaBrTNK/Radarr/pkg/model"
)

// ErrUnsupportedCatalog is returned when a catalog is nil or of an unknown kind.
var ErrUnsupportedCatalog = errors.New("selectoptions: unsupported catalog")

// Catalog identifies a source of select options.
type Catalog interface {
	CatalogName() string
}

// Entry is a single named value inside a catalog.
type Entry struct {
	Name  string
	Value int
}

// RankedCatalog exposes domain entries with a stable numeric rank, such as a
// quality ladder. Option names are the entries' display names.
type RankedCatalog interface {
	Catalog
	Ranks() []Entry
}

// EnumCatalog exposes the values of an enumeration. Option names are the
// values' symbolic names.
type EnumCatalog interface {
	Catalog
	Values() []Entry
}

// UserData marks a catalog whose entries are user-owned records resolved
// elsewhere.
type UserData struct {
	Name string
}

// CatalogName implements Catalog.
func (u UserData) CatalogName() string {
	return u.Name
}

// Profiles is the user-data catalog of quality profiles.
var Profiles = UserData{Name: "profile"}

// Resolver turns a catalog into its option list.
type Resolver interface {
	Resolve(catalog Catalog) ([]model.SelectOption, error)
}

// ResolverFunc adapts a function into a Resolver.
type ResolverFunc func(Catalog) ([]model.SelectOption, error)

// Resolve calls fn.
func (fn ResolverFunc) Resolve(catalog Catalog) ([]model.SelectOption, error) {
	return fn(catalog)
}

// Static resolves catalogs without caching.
var Static Resolver = ResolverFunc(Resolve)

// Resolve produces the ordered option list for catalog. User-data catalogs
// yield an empty, non-nil list.
func Resolve(catalog Catalog) ([]model.SelectOption, error) {
	switch c := catalog.(type) {
	case nil:
		return nil, fmt.Errorf("%w: catalog is nil", ErrUnsupportedCatalog)
	case UserData, *UserData:
		return []model.SelectOption{}, nil
	case RankedCatalog:
		return optionsFromEntries(c.Ranks()), nil
	case EnumCatalog:
		return optionsFromEntries(c.Values()), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedCatalog, catalog)
	}
}

func optionsFromEntries(entries []Entry) []model.SelectOption {
	options := make([]model.SelectOption, 0, len(entries))
	for _, entry := range entries {
		options = append(options, model.SelectOption{Name: entry.Name, Value: entry.Value})
	}
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Value < options[j].Value
	})
	return options
}

type enumCatalog struct {
	name    string
	entries []Entry
}

func (e *enumCatalog) CatalogName() string {
	return e.name
}

func (e *enumCatalog) Values() []Entry {
	return append([]Entry(nil), e.entries...)
}

// Enum builds an EnumCatalog from the values of an integer enumeration type.
// Each value's String method supplies the symbolic name.
func Enum[E interface {
	~int
	fmt.Stringer
}](name string, values ...E) EnumCatalog {
	entries := make([]Entry, 0, len(values))
	for _, value := range values {
		entries = append(entries, Entry{Name: value.String(), Value: int(value)})
	}
	return &enumCatalog{name: name, entries: entries}
}
