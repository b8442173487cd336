package widget

import (
	"fmt"
	"io"
	"strings"

	"github.com/visalkrishnan/shopify-product-countdown-timer/model"
)

// TerminalRenderer prints one line per frame
type TerminalRenderer struct {
	out         io.Writer
	description string
	size        model.DisplaySize
}

var _ Renderer = &TerminalRenderer{}

// NewTerminalRenderer ...
func NewTerminalRenderer(out io.Writer, sel Selection) *TerminalRenderer {
	return &TerminalRenderer{
		out:         out,
		description: sel.Description,
		size:        sel.Display.Size,
	}
}

func (r *TerminalRenderer) clock(b Breakdown) string {
	switch r.size {
	case model.DisplaySizeSmall:
		return fmt.Sprintf("%d:%02d:%02d:%02d", b.Days, b.Hours, b.Minutes, b.Seconds)
	case model.DisplaySizeLarge:
		return strings.ToUpper(b.String())
	default:
		return b.String()
	}
}

// Render ...
func (r *TerminalRenderer) Render(frame Frame) {
	var sb strings.Builder
	if frame.Banner {
		sb.WriteString("[HURRY] ")
	}
	sb.WriteString(r.description)
	sb.WriteString(" ")
	sb.WriteString(r.clock(frame.Breakdown))
	sb.WriteString(" (")
	sb.WriteString(frame.Color)
	sb.WriteString(")")
	if frame.Pulse {
		sb.WriteString(" *")
	}
	sb.WriteString("\n")
	_, _ = io.WriteString(r.out, sb.String())
}

// Hide ...
func (r *TerminalRenderer) Hide() {
	_, _ = io.WriteString(r.out, "expired\n")
}
