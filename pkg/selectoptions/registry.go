package selectoptions

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/ThiRaBrTNK/Radarr/pkg/model"
)

// Registry stores catalogs by name and caches their resolved options. User-data
// catalogs are never cached because their contents live outside this package.
// A Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	catalogs map[string]Catalog
	cache    map[string][]model.SelectOption
}

// Ensure the registry can stand in for the static resolver.
var _ Resolver = (*Registry)(nil)

// NewRegistry returns a registry holding the supplied catalogs.
func NewRegistry(catalogs ...Catalog) *Registry {
	reg := &Registry{
		catalogs: make(map[string]Catalog, len(catalogs)),
		cache:    make(map[string][]model.SelectOption),
	}
	for _, catalog := range catalogs {
		reg.Register(catalog)
	}
	return reg
}

// Register adds or replaces a catalog. Nil catalogs and blank names are
// ignored. Replacing a catalog drops its cached options.
func (r *Registry) Register(catalog Catalog) {
	if r == nil || catalog == nil {
		return
	}
	name := strings.TrimSpace(catalog.CatalogName())
	if name == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.catalogs == nil {
		r.catalogs = make(map[string]Catalog)
		r.cache = make(map[string][]model.SelectOption)
	}
	r.catalogs[name] = catalog
	delete(r.cache, name)
}

// Lookup returns the catalog registered under name.
func (r *Registry) Lookup(name string) (Catalog, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	catalog, ok := r.catalogs[strings.TrimSpace(name)]
	return catalog, ok
}

// Names lists the registered catalog names in lexical order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	names := make([]string, 0, len(r.catalogs))
	for name := range r.catalogs {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// ResolveName resolves the catalog registered under name.
func (r *Registry) ResolveName(name string) ([]model.SelectOption, error) {
	catalog, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: no catalog named %q", ErrUnsupportedCatalog, name)
	}
	return r.Resolve(catalog)
}

// Resolve implements Resolver, caching results for the registered non
// user-data catalogs. Catalogs that are not the one registered under their
// name resolve uncached. Callers receive their own copy of the cached slice.
func (r *Registry) Resolve(catalog Catalog) ([]model.SelectOption, error) {
	if r == nil || catalog == nil || isUserData(catalog) {
		return Resolve(catalog)
	}

	name := strings.TrimSpace(catalog.CatalogName())
	r.mu.RLock()
	registered := sameCatalog(r.catalogs[name], catalog)
	cached, ok := r.cache[name]
	r.mu.RUnlock()
	if !registered {
		return Resolve(catalog)
	}
	if ok {
		return append([]model.SelectOption(nil), cached...), nil
	}

	options, err := Resolve(catalog)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	if sameCatalog(r.catalogs[name], catalog) {
		r.cache[name] = options
	}
	r.mu.Unlock()
	return append([]model.SelectOption(nil), options...), nil
}

// sameCatalog reports whether a and b are the same catalog value. Catalogs of
// incomparable types never match.
func sameCatalog(a, b Catalog) bool {
	if a == nil || b == nil {
		return false
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

func isUserData(catalog Catalog) bool {
	switch catalog.(type) {
	case UserData, *UserData:
		return true
	default:
		return false
	}
}
