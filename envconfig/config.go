package envconfig

import (
	"os"
	"strconv"
	"strings"
)

var (
	// Set via FIXTUREGEN_ROOT in the environment
	RootDir string
	// Set via FIXTUREGEN_DEBUG in the environment
	Debug bool
)

type EnvVar struct {
	Name        string
	Value       any
	Description string
}

func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"FIXTUREGEN_ROOT":  {"FIXTUREGEN_ROOT", RootDir, "Project root directory (default: the directory containing the fixturegen executable)"},
		"FIXTUREGEN_DEBUG": {"FIXTUREGEN_DEBUG", Debug, "Show additional debug information (e.g. FIXTUREGEN_DEBUG=1)"},
	}
}

// Clean quotes and spaces from the value
func clean(key string) string {
	return strings.Trim(os.Getenv(key), "\"' ")
}

func init() {
	LoadConfig()
}

func LoadConfig() {
	RootDir = clean("FIXTUREGEN_ROOT")

	Debug = false
	if debug := clean("FIXTUREGEN_DEBUG"); debug != "" {
		d, err := strconv.ParseBool(debug)
		if err == nil {
			Debug = d
		} else {
			Debug = true
		}
	}
}
