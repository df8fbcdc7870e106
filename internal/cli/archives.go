package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/mchou/travelpulse/internal/utils"
)

type ArchiveCreateCmd struct{}

// Run snapshots the current trip into the immutable history. The live trip
// keeps going; nothing is reset.
func (c *ArchiveCreateCmd) Run(ctx *Context) error {
	if ctx.Store.ReadOnly() {
		return fmt.Errorf("cannot archive while viewing an archive")
	}

	arc, err := ctx.Archives.Archive(ctx.Ctx, ctx.Store.Snapshot())
	if err != nil {
		return fmt.Errorf("archive failed: %w", err)
	}
	fmt.Printf("✓ Trip archived: %s (%s)\n", arc.Destination, arc.ID)
	return nil
}

type ArchiveListCmd struct{}

func (c *ArchiveListCmd) Run(ctx *Context) error {
	archives, err := ctx.Archives.List(ctx.Ctx)
	if err != nil {
		return fmt.Errorf("failed to list archives: %w", err)
	}
	if len(archives) == 0 {
		fmt.Println("No archived trips yet.")
		return nil
	}

	// Newest first for display; the manager itself imposes no order.
	sort.Slice(archives, func(i, j int) bool { return archives[i].Timestamp > archives[j].Timestamp })

	fmt.Printf("Archived trips (%d):\n\n", len(archives))
	for _, arc := range archives {
		created := time.UnixMilli(arc.Timestamp).Format("2006-01-02 15:04")
		fmt.Printf("  %s  %-20s %s ~ %s  (%s)\n", created, arc.Destination, arc.StartDate, arc.EndDate, arc.ID)
	}
	return nil
}

type ArchiveViewCmd struct {
	ID string `arg:"" help:"Archive id to view."`
}

// Run loads an archived snapshot read-only and prints it. The live trip
// document is untouched; returning is `travelpulse trip load`.
func (c *ArchiveViewCmd) Run(ctx *Context) error {
	arc, err := ctx.Archives.Get(ctx.Ctx, c.ID)
	if err != nil {
		return err
	}
	ctx.Archives.View(arc, ctx.Store)

	fmt.Printf("Viewing archive %s (read-only)\n\n", arc.ID)
	state := ctx.Store.Snapshot()
	fmt.Printf("%s\n%s ~ %s\n\n", state.Destination, state.StartDate, state.EndDate)
	for _, date := range utils.DateRange(state.StartDate, state.EndDate) {
		day := ctx.Scheduler.DayItems(state.ItineraryItems, date)
		if len(day) == 0 {
			continue
		}
		fmt.Printf("%s\n", date)
		for i, item := range day {
			fmt.Printf("  %d. %s (%s)  %s\n", i+1, item.StartTime, item.Duration, item.Activity)
		}
	}
	return nil
}

type ArchiveDeleteCmd struct {
	ID string `arg:"" help:"Archive id to delete."`
}

func (c *ArchiveDeleteCmd) Run(ctx *Context) error {
	ok, err := ctx.Confirm(fmt.Sprintf("Delete archive %s? This cannot be undone.", c.ID))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Delete cancelled.")
		return nil
	}

	if err := ctx.Archives.Delete(ctx.Ctx, c.ID); err != nil {
		return err
	}
	fmt.Println("✓ Archive deleted")
	return nil
}
