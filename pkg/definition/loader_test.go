package definition_test

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ThiRaBrTNK/Radarr/pkg/definition"
)

func testdataPath(name string) string {
	return filepath.Join("testdata", name)
}

func TestLoad_LegacyDefinitionIsNormalized(t *testing.T) {
	def, err := definition.Load(testdataPath("legacy.yml"))
	require.NoError(t, err)

	require.Equal(t, "oldtracker", def.ID)
	require.Equal(t, "private", def.Type)
	require.Equal(t, definition.DefaultEncoding, def.Encoding)
	require.Equal(t, definition.DefaultSettings(), def.Settings)

	require.NotNil(t, def.Login)
	require.Equal(t, definition.DefaultLoginMethod, def.Login.Method)
	require.Len(t, def.Login.Error, 1)
	require.Equal(t, "div.error", def.Login.Error[0].Selector)

	require.Equal(t, "/search", def.Search.Path, "legacy path is retained")
	require.Equal(t, []definition.SearchPath{{Path: "/search", InheritInputs: true}}, def.Search.Paths)
	require.Equal(t, "0", def.Search.Inputs["cat"])
	require.Equal(t, 1, def.Search.Rows.After)
	require.Equal(t, "table.torrents > tbody > tr", def.Search.Rows.Selector.Selector)
	require.Equal(t, "replace", def.Search.Fields["size"].Filters[0].Name)

	require.Len(t, def.Caps.CategoryMappings, 2)
	require.Equal(t, "1", def.Caps.CategoryMappings[0].ID)
	require.Equal(t, []string{"q", "imdbid"}, def.Caps.Modes["movie-search"])
}

func TestLoad_ModernDefinitionKeepsDeclaredValues(t *testing.T) {
	def, err := definition.Load(testdataPath("modern.yml"))
	require.NoError(t, err)

	require.Equal(t, "windows-1252", def.Encoding)
	require.Equal(t, "cookie", def.Login.Method)
	require.Equal(t, []string{"http://moderntracker.example/"}, def.LegacyLinks)
	require.Empty(t, def.Search.Path)
	require.Equal(t, []definition.SearchPath{
		{Path: "/api/browse", Method: "get"},
		{Path: "/api/search", InheritInputs: true, FollowRedirect: true},
	}, def.Search.Paths)

	names := make([]string, 0, len(def.Settings))
	for _, setting := range def.Settings {
		names = append(names, setting.Name)
	}
	require.Equal(t, []string{"apikey", "freeleech", "sort"}, names)
	require.Equal(t, map[string]string{
		"apikey":    "",
		"freeleech": "false",
		"sort":      "added",
	}, def.DefaultValues())
}

func TestLoad_Failures(t *testing.T) {
	cases := map[string]string{
		"malformed yaml":   "malformed.yml",
		"schema violation": "invalid.yml",
		"empty document":   "empty.yml",
		"missing file":     "does-not-exist.yml",
	}
	for name, file := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := definition.Load(testdataPath(file))
			require.Error(t, err)
			require.ErrorIs(t, err, definition.ErrParse)

			var parseErr *definition.ParseError
			require.ErrorAs(t, err, &parseErr)
			require.Equal(t, filepath.Clean(testdataPath(file)), parseErr.Location)
		})
	}
}

func TestLoad_MissingFileKeepsCause(t *testing.T) {
	_, err := definition.Load(testdataPath("does-not-exist.yml"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoader_WithoutValidationStillRejectsBadYAML(t *testing.T) {
	loader := definition.NewLoader(definition.WithoutValidation())

	def, err := loader.Load(context.Background(), definition.SourceFromFile(testdataPath("invalid.yml")))
	require.Error(t, err, "settings as a scalar cannot decode into a list")
	require.ErrorIs(t, err, definition.ErrParse)
	require.Empty(t, def.ID)

	_, err = loader.Load(context.Background(), definition.SourceFromFile(testdataPath("malformed.yml")))
	require.ErrorIs(t, err, definition.ErrParse)
}

func TestLoader_FileSystemSource(t *testing.T) {
	data, err := os.ReadFile(testdataPath("modern.yml"))
	require.NoError(t, err)

	loader := definition.NewLoader(definition.WithFileSystem(fstest.MapFS{
		"defs/modern.yml": {Data: data},
	}))
	def, err := loader.Load(context.Background(), definition.SourceFromFS("defs/modern.yml"))
	require.NoError(t, err)
	require.Equal(t, "moderntracker", def.ID)

	_, err = definition.NewLoader().Load(context.Background(), definition.SourceFromFS("defs/modern.yml"))
	require.ErrorIs(t, err, definition.ErrParse, "fs sources need a file system")
}

func TestLoader_URLSource(t *testing.T) {
	data, err := os.ReadFile(testdataPath("legacy.yml"))
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/legacy.yml" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
	}))
	defer server.Close()

	src := definition.SourceFromURL(server.URL + "/legacy.yml")

	_, err = definition.NewLoader().Load(context.Background(), src)
	require.ErrorIs(t, err, definition.ErrParse, "http disabled by default")

	loader := definition.NewLoader(definition.WithHTTPClient(server.Client()))
	def, err := loader.Load(context.Background(), src)
	require.NoError(t, err)
	require.Equal(t, "oldtracker", def.ID)

	_, err = loader.Load(context.Background(), definition.SourceFromURL(server.URL+"/missing.yml"))
	require.ErrorIs(t, err, definition.ErrParse)
}

func TestLoader_LogsNormalization(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	loader := definition.NewLoader(definition.WithLogger(zap.New(core)))

	_, err := loader.Load(context.Background(), definition.SourceFromFile(testdataPath("legacy.yml")))
	require.NoError(t, err)

	entries := logs.FilterMessage("definition loaded").All()
	require.Len(t, entries, 1)
	require.Equal(t, "oldtracker", entries[0].ContextMap()["id"])
}

func TestLoader_NilSource(t *testing.T) {
	_, err := definition.NewLoader().Load(context.Background(), nil)
	require.True(t, errors.Is(err, definition.ErrParse))
}

func TestSourceFromURL_PanicsOnInvalidInput(t *testing.T) {
	require.Panics(t, func() { definition.SourceFromURL("") })
	require.Panics(t, func() { definition.SourceFromURL("not a url") })
	require.Panics(t, func() { definition.SourceFromURL("ftp://example.com/def.yml") })
}

func TestLoad_DefinitionWithoutID(t *testing.T) {
	def, err := definition.Load(testdataPath("idless.yml"))
	require.NoError(t, err)

	require.Empty(t, def.ID)
	require.Equal(t, "text", def.Type)
	require.Equal(t, []definition.SearchPath{{Path: "/search", InheritInputs: true}}, def.Search.Paths)
	require.Equal(t, definition.DefaultSettings(), def.Settings)
}

func TestParse_SettingWithoutNameIsAccepted(t *testing.T) {
	def, err := definition.Parse("inline", []byte("settings:\n  - type: text\n    label: Pin\n"))
	require.NoError(t, err)
	require.Len(t, def.Settings, 1)
	require.Empty(t, def.Settings[0].Name)
	require.Equal(t, "Pin", def.Settings[0].Label)
}

func TestParseURLSource(t *testing.T) {
	src, err := definition.ParseURLSource("https://example.com/defs/tracker.yml")
	require.NoError(t, err)
	require.Equal(t, definition.SourceKindURL, src.Kind())
	require.Equal(t, "https://example.com/defs/tracker.yml", src.Location())

	for _, raw := range []string{"", "not a url", "http://%zz/def.yml", "ftp://example.com/def.yml"} {
		src, err := definition.ParseURLSource(raw)
		require.Error(t, err, raw)
		require.Nil(t, src, raw)
	}
}
