package cli

import (
	"context"

	"github.com/charmbracelet/huh"

	"github.com/mchou/travelpulse/internal/archive"
	"github.com/mchou/travelpulse/internal/rates"
	"github.com/mchou/travelpulse/internal/scheduler"
	"github.com/mchou/travelpulse/internal/storage"
	"github.com/mchou/travelpulse/internal/syncer"
	"github.com/mchou/travelpulse/internal/trip"
)

// Context carries the application state every command runs against. It is
// built once in main and injected, so tests can construct isolated instances.
type Context struct {
	Ctx       context.Context
	Store     *trip.Store
	Docs      storage.DocumentStore
	Syncer    *syncer.Syncer
	Archives  *archive.Manager
	Scheduler *scheduler.Engine
	Rates     rates.Table

	// Yes skips confirmation prompts for destructive actions.
	Yes bool
}

// Confirm asks the user to confirm a destructive action. The core operations
// behind these prompts run unconditionally once invoked; confirmation lives
// here at the boundary.
func (c *Context) Confirm(title string) (bool, error) {
	if c.Yes {
		return true, nil
	}
	var ok bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(&ok),
	))
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}
