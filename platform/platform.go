// Package platform classifies the operating system once at startup and owns
// the naming rules for the build artifacts that depend on it.
package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform is the closed set of operating systems the pipeline knows how to
// name shared libraries for.
type Platform int

const (
	Unknown Platform = iota
	Darwin
	Linux
	Windows
)

func (p Platform) String() string {
	switch p {
	case Darwin:
		return "darwin"
	case Linux:
		return "linux"
	case Windows:
		return "windows"
	default:
		return "unknown"
	}
}

// Detect classifies the platform the tool is running on.
func Detect() (Platform, error) {
	return Parse(runtime.GOOS)
}

// Parse maps a platform tag to a Platform. Tags may carry an architecture
// suffix ("darwin-arm64"); only the OS part is significant. Unrecognized
// tags are an error rather than silently falling back to the Linux naming.
func Parse(tag string) (Platform, error) {
	name, _, _ := strings.Cut(tag, "-")
	switch name {
	case "darwin", "macos":
		return Darwin, nil
	case "linux":
		return Linux, nil
	case "windows":
		return Windows, nil
	default:
		return Unknown, fmt.Errorf("unsupported platform %q", tag)
	}
}

// LibraryFile returns the cdylib filename for a crate name. Windows cdylibs
// carry no "lib" prefix.
func (p Platform) LibraryFile(name string) string {
	switch p {
	case Darwin:
		return "lib" + name + ".dylib"
	case Windows:
		return name + ".dll"
	default:
		return "lib" + name + ".so"
	}
}

// ExeSuffix returns the executable filename suffix, if any.
func (p Platform) ExeSuffix() string {
	if p == Windows {
		return ".exe"
	}
	return ""
}
