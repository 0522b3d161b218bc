package cloak

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/vk/ipcloak/internal/ctxlog"
)

// Renderer emits every registry form for one address, wrapping each line
// in the optional prefix and postfix decorations.
type Renderer struct {
	Prefix  string
	Postfix string
}

// WriteAll renders every rule in registry order to w, one line per rule.
// Writes are buffered and flushed once at the end; this is the only side
// effect in the program.
func (r Renderer) WriteAll(ctx context.Context, w io.Writer, s Scalars) error {
	logger := ctxlog.FromContext(ctx)

	bw := bufio.NewWriter(w)
	for _, rule := range Registry() {
		form := rule.Render(s)
		logger.Debug("Rendered cloak form.", "rule", rule.Name, "form", form)
		if _, err := fmt.Fprintf(bw, "%s%s%s\n", r.Prefix, form, r.Postfix); err != nil {
			return fmt.Errorf("writing cloak form %q: %w", rule.Name, err)
		}
	}
	return bw.Flush()
}
