package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mchou/travelpulse/internal/tui"
)

type TuiCmd struct{}

// Run launches the interactive itinerary board. Edits made there ride the
// debounced synchronizer; a final flush on exit catches anything still inside
// the debounce window.
func (c *TuiCmd) Run(ctx *Context) error {
	model := tui.New(ctx.Store, ctx.Scheduler)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI crashed: %w", err)
	}
	return ctx.Syncer.Flush(ctx.Ctx)
}
