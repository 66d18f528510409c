package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rstlight/rstlight/internal/cli"
	"github.com/rstlight/rstlight/pkg/builder"
)

func newTestCommand(args ...string) (*bytes.Buffer, *bytes.Buffer, error) {
	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "none", Date: "unknown"})
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out, errOut, err
}

func TestRootCommand_Subcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{})

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"build", "init", "version"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestRootCommand_Help(t *testing.T) {
	t.Parallel()

	out, _, err := newTestCommand("--help")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "rstlight")
	assert.Contains(t, out.String(), "build")
}

func TestInit_CreatesConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "custom.yaml")

	_, _, err := newTestCommand("init", "--output", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "source_dir: docs")
	assert.Contains(t, string(data), "master_doc: index")
}

func TestInit_RefusesOverwriteWithoutForce(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0o644))

	_, _, err := newTestCommand("init", "--output", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// The file is untouched.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(data))

	_, _, err = newTestCommand("init", "--output", path, "--force")
	require.NoError(t, err)

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "source_dir: docs")
}

func TestBuild_RunsEndToEnd(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	sourceDir := filepath.Join(root, "docs")
	outputDir := filepath.Join(root, "out")
	require.NoError(t, os.MkdirAll(sourceDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "index.rst"),
		[]byte("Home\n####\n\nHello.\n"), 0o644))

	out, _, err := newTestCommand("build",
		"--source", sourceDir,
		"--output", outputDir,
		"--color", "never",
	)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "rendered 1 page in ")

	_, err = os.Stat(filepath.Join(outputDir, "index.html"))
	assert.NoError(t, err)
}

func TestBuild_StrictFailureReturnsErrBuildFailed(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	sourceDir := filepath.Join(root, "docs")
	require.NoError(t, os.MkdirAll(sourceDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "index.rst"),
		[]byte("Home\n####\n\n.. nosuch::\n\n   body\n"), 0o644))

	_, errOut, err := newTestCommand("build",
		"--source", sourceDir,
		"--output", filepath.Join(root, "out"),
		"--strict",
		"--color", "never",
	)
	require.ErrorIs(t, err, cli.ErrBuildFailed)
	assert.Contains(t, errOut.String(), "nosuch")
}

func TestBuild_Report(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	sourceDir := filepath.Join(root, "docs")
	require.NoError(t, os.MkdirAll(sourceDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "index.rst"),
		[]byte("Home\n####\n\nHello.\n"), 0o644))

	out, _, err := newTestCommand("build",
		"--source", sourceDir,
		"--output", filepath.Join(root, "out"),
		"--report",
		"--color", "never",
	)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "index -> index.html")
}

func TestBuild_MissingSourceDir(t *testing.T) {
	t.Parallel()

	_, _, err := newTestCommand("build",
		"--source", filepath.Join(t.TempDir(), "absent"),
		"--output", filepath.Join(t.TempDir(), "out"),
	)
	require.Error(t, err)
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeFromResult(nil))
	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeFromResult(&builder.Result{}))

	failed := &builder.Result{}
	failed.Pages = []builder.PageOutcome{{DocPath: "x", Error: assert.AnError}}
	failed.Stats.PagesErrored = 1
	assert.Equal(t, cli.ExitBuildErrors, cli.ExitCodeFromResult(failed))
}
