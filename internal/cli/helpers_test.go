package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// recordingLauncher captures paths instead of starting applications.
type recordingLauncher struct {
	paths []string
	err   error
}

func (l *recordingLauncher) Launch(path string) error {
	l.paths = append(l.paths, path)
	return l.err
}

// result is the observable outcome of one CLI invocation.
type result struct {
	code   int
	stdout string
	stderr string
}

// testHome returns a --dir value that does not exist yet.
func testHome(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "shelf")
}

// runCLI executes the full command tree against home.
func runCLI(t *testing.T, home string, l *recordingLauncher, args ...string) result {
	t.Helper()
	if l == nil {
		l = &recordingLauncher{}
	}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	opts := &RootOptions{Launcher: l}
	code := execute(opts, append([]string{"--dir", home}, args...), out, errOut)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

// assertGolden compares output against testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/cli -update
func assertGolden(t *testing.T, name string, actual []byte) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, actual)
}
