package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateEndToEnd(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test generator is a shell script")
	}

	root := t.TempDir()
	binDir := filepath.Join(root, "target", "debug")
	require.NoError(t, os.MkdirAll(binDir, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "fixtures"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "out"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "out", "stale.txt"), []byte("old"), 0o644))

	// A stand-in generator that drops a marker into its --out-dir.
	script := "#!/bin/sh\ntouch \"$3/Fixtures.php\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "uniffi-bindgen-php"), []byte(script), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "libuniffi_fixtures.so"), []byte("stub"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "fixtures", "uniffi.toml"), []byte("[bindings.php]\n"), 0o644))

	cli := NewCLI()
	cli.SetArgs([]string{"generate", "--root", root, "--platform", "linux"})
	require.NoError(t, cli.Execute())

	assert.NoFileExists(t, filepath.Join(root, "out", "stale.txt"))
	assert.FileExists(t, filepath.Join(root, "out", "Fixtures.php"))
}

func TestGenerateRejectsUnknownPlatform(t *testing.T) {
	cli := NewCLI()
	cli.SetArgs([]string{"generate", "--root", t.TempDir(), "--platform", "beos"})
	cli.SetErr(&bytes.Buffer{})

	require.ErrorContains(t, cli.Execute(), "unsupported platform")
}

func TestEnvCommand(t *testing.T) {
	var out bytes.Buffer
	cli := NewCLI()
	cli.SetOut(&out)
	cli.SetArgs([]string{"env"})

	require.NoError(t, cli.Execute())
	assert.Contains(t, out.String(), "FIXTUREGEN_ROOT")
	assert.Contains(t, out.String(), "FIXTUREGEN_DEBUG")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cli := NewCLI()
	cli.SetOut(&out)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute())
	assert.Contains(t, out.String(), "fixturegen version")
}
