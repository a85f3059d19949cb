package cli

import (
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/shelf/internal/launch"
	"github.com/roach88/shelf/internal/store"
)

func TestScenario_AddTwiceThenList(t *testing.T) {
	home := testHome(t)

	require.Equal(t, ExitSuccess, runCLI(t, home, nil, "add", "doc", "/tmp/a.txt").code)
	require.Equal(t, ExitSuccess, runCLI(t, home, nil, "add", "doc", "/tmp/b.txt").code)
	res := runCLI(t, home, nil, "list")

	assert.Equal(t, ExitSuccess, res.code)
	assert.Equal(t, "doc => /tmp/b.txt\n", res.stdout)
	assert.Empty(t, res.stderr)
}

func TestScenario_FreshHomeList(t *testing.T) {
	home := testHome(t)

	res := runCLI(t, home, nil, "list")
	assert.Equal(t, ExitSuccess, res.code)
	assert.Empty(t, res.stdout)
	assert.Empty(t, res.stderr)

	_, err := os.Stat(store.Path(home))
	require.NoError(t, err, "backing file should exist after first invocation")
	s, err := store.Read(home)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestScenario_RemoveGhostOnEmptyStore(t *testing.T) {
	home := testHome(t)

	res := runCLI(t, home, nil, "remove", "ghost")
	assert.Equal(t, ExitSuccess, res.code)
	assert.Empty(t, res.stdout)
	assert.Empty(t, res.stderr)

	s, err := store.Read(home)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestRemove_PresentID(t *testing.T) {
	home := testHome(t)
	runCLI(t, home, nil, "add", "a", "/a")
	runCLI(t, home, nil, "add", "b", "/b")
	runCLI(t, home, nil, "add", "c", "/c")

	res := runCLI(t, home, nil, "remove", "b")
	require.Equal(t, ExitSuccess, res.code)
	assert.Empty(t, res.stdout)

	assert.Equal(t, "a => /a\nc => /c\n", runCLI(t, home, nil, "list").stdout)
}

func TestRemove_JSON(t *testing.T) {
	home := testHome(t)
	runCLI(t, home, nil, "add", "a", "/a")

	res := runCLI(t, home, nil, "--format", "json", "remove", "a")
	require.Equal(t, ExitSuccess, res.code)

	var resp struct {
		Status string       `json:"status"`
		Data   RemoveResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, RemoveResult{ID: "a", Removed: true}, resp.Data)
}

func TestOpen_PresentID(t *testing.T) {
	home := testHome(t)
	runCLI(t, home, nil, "add", "doc", "/tmp/my file.txt")
	l := &recordingLauncher{}

	res := runCLI(t, home, l, "open", "doc")
	assert.Equal(t, ExitSuccess, res.code)
	assert.Empty(t, res.stdout)
	assert.Empty(t, res.stderr)
	assert.Equal(t, []string{"/tmp/my file.txt"}, l.paths)
}

func TestOpen_MissingID(t *testing.T) {
	home := testHome(t)
	l := &recordingLauncher{}

	res := runCLI(t, home, l, "open", "ghost")
	assert.Equal(t, ExitFailure, res.code)
	assert.Empty(t, res.stdout)
	assert.Equal(t, "Error [E002]: open failed: mark \"ghost\" not found\n", res.stderr)
	assert.Empty(t, l.paths)
}

func TestOpen_MissingIDJSON(t *testing.T) {
	home := testHome(t)

	res := runCLI(t, home, nil, "--format", "json", "open", "ghost")
	assert.Equal(t, ExitFailure, res.code)
	assert.Empty(t, res.stderr)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, map[string]interface{}{"id": "ghost"}, resp.Error.Details)
}

func TestOpen_LaunchFailure(t *testing.T) {
	home := testHome(t)
	runCLI(t, home, nil, "add", "doc", "/tmp/a.txt")
	l := &recordingLauncher{err: &launch.LaunchError{Path: "/tmp/a.txt", Err: errors.New("no opener")}}

	res := runCLI(t, home, l, "open", "doc")
	assert.Equal(t, ExitCommandError, res.code)
	assert.Contains(t, res.stderr, "Error [E007]")
	assert.Contains(t, res.stderr, "/tmp/a.txt")
}

func TestAdd_NonTextPath(t *testing.T) {
	home := testHome(t)

	res := runCLI(t, home, nil, "add", "bad", "/tmp/\xff.txt")
	assert.Equal(t, ExitFailure, res.code)
	assert.Contains(t, res.stderr, "Error [E003]")
	assert.Contains(t, res.stderr, `\xff`)

	assert.Empty(t, runCLI(t, home, nil, "list").stdout)
}

func TestAdd_JSON(t *testing.T) {
	res := runCLI(t, testHome(t), nil, "--format", "json", "add", "doc", "/tmp/a.txt")
	require.Equal(t, ExitSuccess, res.code)
	assert.JSONEq(t, `{"status":"ok","data":{"id":"doc","file":"/tmp/a.txt"}}`, res.stdout)
}

func TestMalformedStore(t *testing.T) {
	home := testHome(t)
	require.NoError(t, os.MkdirAll(home, 0o755))
	require.NoError(t, os.WriteFile(store.Path(home), []byte("{ not yaml"), 0o644))

	for _, args := range [][]string{{"list"}, {"add", "a", "/a"}, {"remove", "a"}, {"open", "a"}} {
		t.Run(args[0], func(t *testing.T) {
			res := runCLI(t, home, nil, args...)
			assert.Equal(t, ExitCommandError, res.code)
			assert.Contains(t, res.stderr, "Error [E005]")
			assert.Contains(t, res.stderr, store.Path(home))
		})
	}
}

func TestUnwritableHome(t *testing.T) {
	parent := t.TempDir()
	home := parent + "/occupied"
	require.NoError(t, os.WriteFile(home, []byte("a file, not a directory"), 0o644))

	res := runCLI(t, home, nil, "add", "doc", "/tmp/a.txt")
	assert.Equal(t, ExitCommandError, res.code)
	assert.Contains(t, res.stderr, "Error [E004]")
}

func TestList_Golden(t *testing.T) {
	home := testHome(t)
	runCLI(t, home, nil, "add", "doc", "/tmp/a.txt")
	runCLI(t, home, nil, "add", "notes", "/home/me/my notes.md")
	runCLI(t, home, nil, "add", "doc", "/tmp/b.txt")
	runCLI(t, home, nil, "add", "日本", "/tmp/ファイル.txt")

	text := runCLI(t, home, nil, "list")
	require.Equal(t, ExitSuccess, text.code)
	assertGolden(t, "list_text", []byte(text.stdout))

	asJSON := runCLI(t, home, nil, "--format", "json", "list")
	require.Equal(t, ExitSuccess, asJSON.code)
	assertGolden(t, "list_json", []byte(asJSON.stdout))
}

func TestList_EmptyJSON(t *testing.T) {
	res := runCLI(t, testHome(t), nil, "--format", "json", "list")
	require.Equal(t, ExitSuccess, res.code)
	assert.JSONEq(t, `{"status":"ok","data":{"marks":[]}}`, res.stdout)
}

func TestSubcommandDirectly(t *testing.T) {
	home := testHome(t)
	opts := &RootOptions{Format: "text", Dir: home}

	cmd := NewAddCommand(opts)
	cmd.SetArgs([]string{"doc", "/tmp/a.txt"})
	require.NoError(t, cmd.Execute())

	s, err := store.Read(home)
	require.NoError(t, err)
	assert.Equal(t, []store.Item{{ID: "doc", File: "/tmp/a.txt"}}, s.Items)
}
