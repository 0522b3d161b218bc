package app

import (
	"context"
	"fmt"

	"github.com/vk/ipcloak/internal/addr"
	"github.com/vk/ipcloak/internal/cloak"
	"github.com/vk/ipcloak/internal/ctxlog"
)

// Run executes the cloak pipeline: parse the address, derive its scalar
// views, then render every registry form in order. All-or-nothing: a parse
// failure returns before anything is written to the output writer.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	quad, err := addr.Parse(a.config.Address)
	if err != nil {
		return fmt.Errorf("failed to parse address: %w", err)
	}
	a.logger.Debug("Address parsed.", "octets", quad.Octets)

	scalars := cloak.Derive(quad)
	a.logger.Debug("Derived scalars computed.",
		"dword", scalars.Dword, "u16", scalars.U16, "u24", scalars.U24)

	if err := a.renderer.WriteAll(ctx, a.outW, scalars); err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	a.logger.Debug("App.Run method finished.", "forms", len(cloak.Registry()))
	return nil
}
