package cli

import (
	"fmt"
	"sort"

	"github.com/mchou/travelpulse/internal/validation"
)

type MapSetCmd struct {
	Date string `arg:"" help:"Trip date (YYYY-MM-DD)."`
	URL  string `arg:"" help:"Map URL for that day."`
}

func (c *MapSetCmd) Run(ctx *Context) error {
	if err := validation.ValidateDate(c.Date); err != nil {
		return err
	}
	ctx.Store.SetDailyMap(c.Date, c.URL)
	fmt.Printf("✓ Map set for %s\n", c.Date)
	return nil
}

type MapListCmd struct{}

func (c *MapListCmd) Run(ctx *Context) error {
	state := ctx.Store.Snapshot()
	if len(state.DailyMaps) == 0 {
		fmt.Println("No daily maps configured.")
		return nil
	}

	dates := make([]string, 0, len(state.DailyMaps))
	for date := range state.DailyMaps {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	for _, date := range dates {
		fmt.Printf("  %s  %s\n", date, state.DailyMaps[date])
	}
	return nil
}
