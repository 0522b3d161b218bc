package app

import (
	"io"
	"log/slog"

	"github.com/vk/ipcloak/internal/cloak"
)

// App encapsulates the program's dependencies, configuration, and
// lifecycle: one parsed address in, twenty-one cloaked spellings out.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	renderer cloak.Renderer
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. Rendered forms go
// to outW; log records go to logW so stdout stays machine-clean.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		renderer: cloak.Renderer{
			Prefix:  cfg.Prefix,
			Postfix: cfg.Postfix,
		},
	}
}
