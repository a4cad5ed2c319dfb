package definition

// Definition is the in-memory form of one declarative indexer document.
type Definition struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Language    string       `json:"language,omitempty" yaml:"language,omitempty"`
	Type        string       `json:"type" yaml:"type"`
	Encoding    string       `json:"encoding" yaml:"encoding"`
	Links       []string     `json:"links,omitempty" yaml:"links,omitempty"`
	LegacyLinks []string     `json:"legacylinks,omitempty" yaml:"legacylinks,omitempty"`
	Settings    []Setting    `json:"settings" yaml:"settings"`
	Caps        Capabilities `json:"caps" yaml:"caps"`
	Login       *Login       `json:"login,omitempty" yaml:"login,omitempty"`
	Ratio       *Selector    `json:"ratio,omitempty" yaml:"ratio,omitempty"`
	Search      Search       `json:"search" yaml:"search"`
	Download    *Download    `json:"download,omitempty" yaml:"download,omitempty"`
}

// Setting is one user-supplied value the definition needs, such as a
// username or an API key.
type Setting struct {
	Name    string `json:"name" yaml:"name"`
	Type    string `json:"type" yaml:"type"`
	Label   string `json:"label" yaml:"label"`
	Default string `json:"default,omitempty" yaml:"default,omitempty"`
}

// Capabilities maps site categories and lists supported search modes.
type Capabilities struct {
	CategoryMappings []CategoryMapping   `json:"categorymappings,omitempty" yaml:"categorymappings,omitempty"`
	Modes            map[string][]string `json:"modes,omitempty" yaml:"modes,omitempty"`
}

// CategoryMapping links a site category id to a newznab category.
type CategoryMapping struct {
	ID   string `json:"id" yaml:"id"`
	Cat  string `json:"cat" yaml:"cat"`
	Desc string `json:"desc,omitempty" yaml:"desc,omitempty"`
}

// Login describes how to authenticate against the site.
type Login struct {
	Path   string            `json:"path,omitempty" yaml:"path,omitempty"`
	Method string            `json:"method" yaml:"method"`
	Form   string            `json:"form,omitempty" yaml:"form,omitempty"`
	Inputs map[string]string `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Error  []ErrorBlock      `json:"error,omitempty" yaml:"error,omitempty"`
	Test   *PageTest         `json:"test,omitempty" yaml:"test,omitempty"`
}

// ErrorBlock detects a failed login.
type ErrorBlock struct {
	Path     string    `json:"path,omitempty" yaml:"path,omitempty"`
	Selector string    `json:"selector" yaml:"selector"`
	Message  *Selector `json:"message,omitempty" yaml:"message,omitempty"`
}

// PageTest checks that a logged-in page renders the expected element.
type PageTest struct {
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
	Selector string `json:"selector,omitempty" yaml:"selector,omitempty"`
}

// Selector extracts a value from a scraped page.
type Selector struct {
	Selector  string            `json:"selector,omitempty" yaml:"selector,omitempty"`
	Text      string            `json:"text,omitempty" yaml:"text,omitempty"`
	Attribute string            `json:"attribute,omitempty" yaml:"attribute,omitempty"`
	Remove    string            `json:"remove,omitempty" yaml:"remove,omitempty"`
	Filters   []Filter          `json:"filters,omitempty" yaml:"filters,omitempty"`
	Case      map[string]string `json:"case,omitempty" yaml:"case,omitempty"`
}

// Filter post-processes an extracted value. Args is whatever the document
// supplies: a scalar, a list, or nothing.
type Filter struct {
	Name string `json:"name" yaml:"name"`
	Args any    `json:"args,omitempty" yaml:"args,omitempty"`
}

// Search describes how queries are issued and results scraped.
type Search struct {
	// Path is the legacy single search path. Normalisation copies it into
	// Paths but leaves it set.
	Path   string              `json:"path,omitempty" yaml:"path,omitempty"`
	Paths  []SearchPath        `json:"paths" yaml:"paths"`
	Inputs map[string]string   `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Rows   RowsSelector        `json:"rows" yaml:"rows"`
	Fields map[string]Selector `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// SearchPath is one search request.
type SearchPath struct {
	Path           string            `json:"path" yaml:"path"`
	Method         string            `json:"method,omitempty" yaml:"method,omitempty"`
	InheritInputs  bool              `json:"inheritinputs" yaml:"inheritinputs"`
	FollowRedirect bool              `json:"followredirect,omitempty" yaml:"followredirect,omitempty"`
	Inputs         map[string]string `json:"inputs,omitempty" yaml:"inputs,omitempty"`
}

// RowsSelector locates result rows.
type RowsSelector struct {
	Selector `json:",inline" yaml:",inline"`
	After    int `json:"after,omitempty" yaml:"after,omitempty"`
}

// Download describes how to obtain the release file from a details page.
type Download struct {
	Selector string `json:"selector,omitempty" yaml:"selector,omitempty"`
	Method   string `json:"method,omitempty" yaml:"method,omitempty"`
}

// DefaultValues returns the settings defaults keyed by setting name, which is
// the shape the search engine consumes. Settings without a default map to
// the empty string.
func (d Definition) DefaultValues() map[string]string {
	out := make(map[string]string, len(d.Settings))
	for _, setting := range d.Settings {
		out[setting.Name] = setting.Default
	}
	return out
}
