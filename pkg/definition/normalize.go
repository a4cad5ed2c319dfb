package definition

import "maps"

const (
	// DefaultEncoding is applied when a definition names no encoding.
	DefaultEncoding = "UTF-8"
	// DefaultLoginMethod is applied to login blocks without a method.
	DefaultLoginMethod = "form"
)

// Change names one normalisation step that modified a definition.
type Change string

const (
	ChangeDefaultSettings    Change = "default-settings"
	ChangeDefaultEncoding    Change = "default-encoding"
	ChangeDefaultLoginMethod Change = "default-login-method"
	ChangeSearchPaths        Change = "search-paths"
	ChangeLegacySearchPath   Change = "legacy-search-path"
)

// DefaultSettings returns the credentials pair synthesised for definitions
// that declare no settings.
func DefaultSettings() []Setting {
	return []Setting{
		{Name: "username", Label: "Username", Type: "text"},
		{Name: "password", Label: "Password", Type: "password"},
	}
}

// Normalize applies the defaulting and backward-compatibility rules in place
// and returns the steps that changed def. Applying it twice is a no-op the
// second time.
//
// A legacy search.path is appended to search.paths as an inherit-inputs
// block and is itself kept. The block is not appended when an identical one
// (same path, method, flags and inputs) is already listed, so a document that
// spells out its legacy path in both forms yields a single block. Engines
// that always append would search that path twice.
func Normalize(def *Definition) []Change {
	if def == nil {
		return nil
	}

	var changes []Change

	if def.Settings == nil {
		def.Settings = DefaultSettings()
		changes = append(changes, ChangeDefaultSettings)
	}

	if def.Encoding == "" {
		def.Encoding = DefaultEncoding
		changes = append(changes, ChangeDefaultEncoding)
	}

	if def.Login != nil && def.Login.Method == "" {
		def.Login.Method = DefaultLoginMethod
		changes = append(changes, ChangeDefaultLoginMethod)
	}

	if def.Search.Paths == nil {
		def.Search.Paths = []SearchPath{}
		changes = append(changes, ChangeSearchPaths)
	}

	// The legacy path stays set; the appended block is skipped when already
	// present so repeated normalisation does not duplicate it.
	if def.Search.Path != "" {
		legacy := SearchPath{Path: def.Search.Path, InheritInputs: true}
		if !containsPath(def.Search.Paths, legacy) {
			def.Search.Paths = append(def.Search.Paths, legacy)
			changes = append(changes, ChangeLegacySearchPath)
		}
	}

	return changes
}

func containsPath(paths []SearchPath, want SearchPath) bool {
	for _, p := range paths {
		if p.Path == want.Path &&
			p.Method == want.Method &&
			p.InheritInputs == want.InheritInputs &&
			p.FollowRedirect == want.FollowRedirect &&
			maps.Equal(p.Inputs, want.Inputs) {
			return true
		}
	}
	return false
}
