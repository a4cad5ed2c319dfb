package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThiRaBrTNK/Radarr/pkg/model"
	"github.com/ThiRaBrTNK/Radarr/pkg/prompt"
)

const definitionsDir = "../../../pkg/definition/testdata"

func run(t *testing.T, args []string, options ...Option) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	options = append(options, WithOutput(&out, &errOut))
	cmd := NewRootCmd(options...)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestSettingsCommand(t *testing.T) {
	out, _, err := run(t, []string{"settings", "SABnzbd"})
	require.NoError(t, err)

	var fields []model.Field
	require.NoError(t, json.Unmarshal([]byte(out), &fields))
	require.NotEmpty(t, fields)
	assert.Equal(t, "Host", fields[0].Name)
	require.True(t, fields[0].HasValue())
	assert.Equal(t, "localhost", fields[0].Value.Text())

	var priority *model.Field
	for i := range fields {
		if fields[i].Name == "RecentMoviePriority" {
			priority = &fields[i]
		}
	}
	require.NotNil(t, priority)
	assert.NotEmpty(t, priority.SelectOptions)
}

func TestSettingsCommandUnknownKind(t *testing.T) {
	_, _, err := run(t, []string{"settings", "nzbget"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown settings kind "nzbget"`)
	assert.Contains(t, err.Error(), "sabnzbd")
}

func TestOptionsCommand(t *testing.T) {
	out, _, err := run(t, []string{"options"})
	require.NoError(t, err)
	var names []string
	require.NoError(t, json.Unmarshal([]byte(out), &names))
	assert.Contains(t, names, "quality")
	assert.Contains(t, names, "sabnzbdPriority")

	out, _, err = run(t, []string{"options", "quality"})
	require.NoError(t, err)
	var options []model.SelectOption
	require.NoError(t, json.Unmarshal([]byte(out), &options))
	require.NotEmpty(t, options)
	assert.Equal(t, "Unknown", options[0].Name)
	assert.Contains(t, out, "Bluray-1080p")

	_, _, err = run(t, []string{"options", "nope"})
	require.Error(t, err)
}

func TestNormalizeCommand(t *testing.T) {
	out, _, err := run(t, []string{"normalize", filepath.Join(definitionsDir, "legacy.yml")})
	require.NoError(t, err)
	assert.Contains(t, out, "id: oldtracker")
	assert.Contains(t, out, "encoding: UTF-8")
	assert.Contains(t, out, "/search")
	assert.Contains(t, out, "username")
}

func TestFieldsCommand(t *testing.T) {
	modern := filepath.Join(definitionsDir, "modern.yml")

	out, _, err := run(t, []string{"fields", modern})
	require.NoError(t, err)
	var fields []model.Field
	require.NoError(t, json.Unmarshal([]byte(out), &fields))
	require.Len(t, fields, 3)
	for _, field := range fields {
		assert.Equal(t, model.FieldType("public"), field.Type, field.Name)
	}
	assert.Equal(t, "Sort requested from site", fields[2].Label)

	out, _, err = run(t, []string{"fields", "--prefer-setting-type", modern})
	require.NoError(t, err)
	fields = nil
	require.NoError(t, json.Unmarshal([]byte(out), &fields))
	require.Len(t, fields, 3)
	assert.Equal(t, model.FieldTypeTextbox, fields[0].Type)
	assert.Equal(t, model.FieldTypeCheckbox, fields[1].Type)
	assert.Equal(t, model.FieldTypeSelect, fields[2].Type)

	out, _, err = run(t, []string{"fields", modern, filepath.Join(definitionsDir, "legacy.yml")})
	require.NoError(t, err)
	var byID map[string][]model.Field
	require.NoError(t, json.Unmarshal([]byte(out), &byID))
	assert.Len(t, byID, 2)
	assert.Len(t, byID["oldtracker"], 2)
}

func TestFieldsCommandRejectsRemoteWithoutFlag(t *testing.T) {
	_, _, err := run(t, []string{"fields", "https://example.com/tracker.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--allow-http")
}

func TestFieldsCommandReportsParseErrors(t *testing.T) {
	_, _, err := run(t, []string{"fields", filepath.Join(definitionsDir, "malformed.yml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed.yml")
}

func TestOpenAPICommand(t *testing.T) {
	out, _, err := run(t, []string{"openapi", "--title", "Clients", "sabnzbd", "torrentblackhole"})
	require.NoError(t, err)

	var doc struct {
		OpenAPI string `json:"openapi"`
		Info    struct {
			Title string `json:"title"`
		} `json:"info"`
		Components struct {
			Schemas map[string]json.RawMessage `json:"schemas"`
		} `json:"components"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Equal(t, "Clients", doc.Info.Title)
	assert.Len(t, doc.Components.Schemas, 2)
	assert.Contains(t, doc.Components.Schemas, "sabnzbd")

	out, _, err = run(t, []string{"openapi"})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc.Components.Schemas, 6)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestValidateCommand(t *testing.T) {
	values := writeFile(t, "values.json", `{"TorrentFolder": "/downloads/torrents", "ReadOnly": false}`)

	out, _, err := run(t, []string{"validate", "torrentblackhole", values})
	require.NoError(t, err)

	var bound map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &bound))
	assert.Equal(t, "/downloads/torrents", bound["TorrentFolder"])
	assert.Equal(t, "", bound["WatchFolder"])
	assert.Equal(t, false, bound["ReadOnly"])
}

func TestValidateCommandRejectsWrongTypes(t *testing.T) {
	values := writeFile(t, "values.json", `{"ReadOnly": "yes"}`)

	out, _, err := run(t, []string{"validate", "torrentblackhole", values})
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, err.Error(), "ReadOnly")
}

type scriptedDriver struct {
	inputs []string
}

func (d *scriptedDriver) Input(context.Context, prompt.InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		return "", errors.New("no input scripted")
	}
	answer := d.inputs[0]
	d.inputs = d.inputs[1:]
	return answer, nil
}

func (d *scriptedDriver) Password(context.Context, prompt.InputConfig) (string, error) {
	return "", errors.New("unexpected password prompt")
}

func (d *scriptedDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	return false, errors.New("unexpected confirm prompt")
}

func (d *scriptedDriver) Select(context.Context, prompt.SelectConfig) (int, error) {
	return -1, errors.New("unexpected select prompt")
}

func (d *scriptedDriver) Info(context.Context, string) error {
	return nil
}

func TestPromptCommand(t *testing.T) {
	driver := &scriptedDriver{inputs: []string{"/downloads/torrents", "/downloads/watch"}}

	out, _, err := run(t, []string{"prompt", "torrentblackhole"}, WithPromptDriver(driver))
	require.NoError(t, err)
	assert.Empty(t, driver.inputs)

	var bound map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &bound))
	assert.Equal(t, "/downloads/torrents", bound["TorrentFolder"])
	assert.Equal(t, "/downloads/watch", bound["WatchFolder"])
	assert.Equal(t, true, bound["ReadOnly"])
}

func TestLogLevelFromEnvironment(t *testing.T) {
	t.Setenv(EnvPrefix+"_LOG_LEVEL", "verbose")

	_, _, err := run(t, []string{"options"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "verbose"`)
}

func TestConfigFile(t *testing.T) {
	config := writeFile(t, "schemactl.yaml", "log-level: debug\nlog-format: json\n")

	_, logs, err := run(t, []string{"--config", config, "normalize", filepath.Join(definitionsDir, "modern.yml")})
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"configuration loaded"`)
	assert.Contains(t, logs, `"id":"moderntracker"`)

	_, _, err = run(t, []string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "options"})
	require.Error(t, err)
}

func TestInvalidLogFormat(t *testing.T) {
	_, _, err := run(t, []string{"--log-format", "xml", "options"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log format")
}

func TestFieldsCommandRejectsMalformedURL(t *testing.T) {
	var err error
	require.NotPanics(t, func() {
		_, _, err = run(t, []string{"fields", "--allow-http", "http://%zz/def.yml"})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestFieldsCommandKeysByLocationWithoutID(t *testing.T) {
	idless := filepath.Join(definitionsDir, "idless.yml")

	out, _, err := run(t, []string{"fields", idless, filepath.Join(definitionsDir, "modern.yml")})
	require.NoError(t, err)
	var byKey map[string][]model.Field
	require.NoError(t, json.Unmarshal([]byte(out), &byKey))
	assert.Len(t, byKey, 2)
	assert.Contains(t, byKey, filepath.Clean(idless))
	assert.Contains(t, byKey, "moderntracker")
}

func TestFieldsCommandRejectsDuplicateIDs(t *testing.T) {
	modern := filepath.Join(definitionsDir, "modern.yml")
	copied := writeFile(t, "copy.yml", "id: moderntracker\ntype: public\n")

	_, _, err := run(t, []string{"fields", modern, copied})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"moderntracker" loaded twice`)
}
