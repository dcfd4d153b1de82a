package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NikitaCOEUR/wsfind/internal/derrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config directory at an empty temp dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func makeWorkspaces(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
	}
	return root
}

func TestSearch_Alfred(t *testing.T) {
	isolate(t)
	root := makeWorkspaces(t, "clients/acme.code-workspace", "personal/dotfiles.code-workspace")

	var stdout, stderr bytes.Buffer
	err := Search(context.Background(), SearchParams{Folder: root, Query: "acme", Stdout: &stdout, Stderr: &stderr})
	require.NoError(t, err)

	out := stdout.String()
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Equal(t, 1, strings.Count(out, "\n"))

	var doc struct {
		Items []struct {
			Title     string `json:"title"`
			Arg       string `json:"arg"`
			Subtitle  string `json:"subtitle"`
			Variables struct {
				Confidence int `json:"confidence"`
			} `json:"variables"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &doc))
	require.Len(t, doc.Items, 1)
	assert.Equal(t, "acme", doc.Items[0].Title)
	assert.Equal(t, "clients/acme", doc.Items[0].Subtitle)
	assert.Equal(t, filepath.Join(root, "clients", "acme.code-workspace"), doc.Items[0].Arg)
	assert.Equal(t, 100, doc.Items[0].Variables.Confidence)
	assert.Empty(t, stderr.String())
}

func TestSearch_MissingFolder(t *testing.T) {
	isolate(t)
	missing := filepath.Join(t.TempDir(), "nope")

	var stdout bytes.Buffer
	err := Search(context.Background(), SearchParams{Folder: missing, Query: "x", Stdout: &stdout, Stderr: &bytes.Buffer{}})
	require.Error(t, err)

	var rootErr *derrors.InvalidRootError
	require.ErrorAs(t, err, &rootErr)
	assert.Equal(t, "Folder \""+missing+"\" does not exist", err.Error())
	assert.Empty(t, stdout.String())
}

func TestSearch_TextFormat(t *testing.T) {
	isolate(t)
	root := makeWorkspaces(t, "clients/acme.code-workspace")

	var stdout bytes.Buffer
	err := Search(context.Background(), SearchParams{Folder: root, Query: "acme", Format: "text", Stdout: &stdout, Stderr: &bytes.Buffer{}})
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "clients/acme")
	assert.Contains(t, stdout.String(), "100")
	assert.False(t, json.Valid(stdout.Bytes()))
}

func TestSearch_ConfigFile(t *testing.T) {
	isolate(t)
	root := makeWorkspaces(t, "a/acme.code-workspace", "node_modules/acme.code-workspace")

	cfgPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("exclude:\n  - node_modules\n"), 0644))

	var stdout bytes.Buffer
	err := Search(context.Background(), SearchParams{Folder: root, Query: "acme", ConfigPath: cfgPath, Stdout: &stdout, Stderr: &bytes.Buffer{}})
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), `"subtitle":"a/acme"`)
	assert.NotContains(t, stdout.String(), "node_modules")
}

func TestSearch_UserConfigDiscovered(t *testing.T) {
	configHome := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(configHome, "wsfind"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configHome, "wsfind", "config.toml"), []byte(`format = "text"`+"\n"), 0644))

	root := makeWorkspaces(t, "acme.code-workspace")

	var stdout bytes.Buffer
	err := Search(context.Background(), SearchParams{Folder: root, Query: "acme", Stdout: &stdout, Stderr: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.False(t, json.Valid(stdout.Bytes()))

	stdout.Reset()
	err = Search(context.Background(), SearchParams{Folder: root, Query: "acme", Format: "alfred", Stdout: &stdout, Stderr: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.True(t, json.Valid(stdout.Bytes()))
}

func TestSearch_InvalidOverrides(t *testing.T) {
	isolate(t)
	root := makeWorkspaces(t)

	err := Search(context.Background(), SearchParams{Folder: root, Query: "x", Format: "xml", Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})
	var validationErr *derrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "format", validationErr.Field)

	err = Search(context.Background(), SearchParams{Folder: root, Query: "x", LogLevel: "loud", Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "log_level", validationErr.Field)
}

func TestSearch_BrokenConfig(t *testing.T) {
	isolate(t)
	root := makeWorkspaces(t)

	cfgPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("pattern: [unclosed\n"), 0644))

	err := Search(context.Background(), SearchParams{Folder: root, Query: "x", ConfigPath: cfgPath, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})
	var cfgErr *derrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, cfgPath, cfgErr.Path)
}

func TestSearch_DebugLogsToStderr(t *testing.T) {
	isolate(t)
	root := makeWorkspaces(t, "acme.code-workspace")

	var stdout, stderr bytes.Buffer
	err := Search(context.Background(), SearchParams{Folder: root, Query: "acme", LogLevel: "debug", Stdout: &stdout, Stderr: &stderr})
	require.NoError(t, err)

	assert.Contains(t, stderr.String(), "Configuration loaded")
	assert.True(t, json.Valid(stdout.Bytes()))
}
