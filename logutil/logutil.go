package logutil

import (
	"io"
	"log/slog"
	"path/filepath"

	"github.com/uniffi-php/fixturegen/envconfig"
)

// NewLogger returns the tool's logger. FIXTUREGEN_DEBUG lowers the level to
// debug.
func NewLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if envconfig.Debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: envconfig.Debug,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.SourceKey {
				source := attr.Value.Any().(*slog.Source)
				source.File = filepath.Base(source.File)
			}
			return attr
		},
	}))
}
