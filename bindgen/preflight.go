package bindgen

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// preflight verifies the external collaborators before the destructive
// directory reset: the generator executable, the compiled fixtures library,
// and a well-formed config file. The config contents stay opaque and reach
// the generator untouched.
func (r *Runner) preflight() error {
	if err := checkArtifact(r.Workspace.BindgenExe(r.Platform)); err != nil {
		return err
	}
	if err := checkArtifact(r.Workspace.LibraryFile(r.Platform)); err != nil {
		return err
	}
	return checkConfig(r.Workspace.ConfigFile())
}

func checkArtifact(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("missing build artifact, run 'cargo build' first: %w", err)
	}
	return nil
}

func checkConfig(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var doc map[string]any
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
