// Package workspace composes every path the pipeline touches from a single
// root directory and owns the output-directory reset.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/uniffi-php/fixturegen/envconfig"
	"github.com/uniffi-php/fixturegen/platform"
)

const (
	bindingsDirName = "out"
	fixturesCrate   = "uniffi_fixtures"
	bindgenName     = "uniffi-bindgen-php"
)

// Workspace is an immutable view of the project layout. Accessors are pure
// path composition; only ResetBindingsDir mutates the filesystem.
type Workspace struct {
	Root string
}

// Resolve picks the root directory: explicit override, then FIXTUREGEN_ROOT,
// then the directory containing the running executable.
func Resolve(override string) (Workspace, error) {
	root := override
	if root == "" {
		root = envconfig.RootDir
	}
	if root == "" {
		exe, err := os.Executable()
		if err != nil {
			return Workspace{}, fmt.Errorf("resolve root directory: %w", err)
		}
		root = filepath.Dir(exe)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return Workspace{}, fmt.Errorf("resolve root directory %q: %w", root, err)
	}
	return Workspace{Root: abs}, nil
}

// BindingsDir is where the generator writes its output.
func (w Workspace) BindingsDir() string {
	return filepath.Join(w.Root, bindingsDirName)
}

// BinariesDir holds the artifacts of the cargo debug build.
func (w Workspace) BinariesDir() string {
	return filepath.Join(w.Root, "target", "debug")
}

// ConfigFile is forwarded to the generator verbatim.
func (w Workspace) ConfigFile() string {
	return filepath.Join(w.Root, "fixtures", "uniffi.toml")
}

// BindgenExe is the prebuilt binding-generator executable.
func (w Workspace) BindgenExe(p platform.Platform) string {
	return filepath.Join(w.BinariesDir(), bindgenName+p.ExeSuffix())
}

// LibraryFile is the compiled fixtures cdylib the generator reads.
func (w Workspace) LibraryFile(p platform.Platform) string {
	return filepath.Join(w.BinariesDir(), p.LibraryFile(fixturesCrate))
}

// ResetBindingsDir leaves the bindings directory existing and empty whatever
// its prior state. Safe to run repeatedly.
func (w Workspace) ResetBindingsDir() error {
	dir := w.BindingsDir()
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return nil
}
