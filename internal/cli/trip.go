package cli

import (
	"fmt"

	"github.com/mchou/travelpulse/internal/rates"
	"github.com/mchou/travelpulse/internal/utils"
	"github.com/mchou/travelpulse/internal/validation"
)

type ShowCmd struct{}

func (c *ShowCmd) Run(ctx *Context) error {
	state := ctx.Store.Snapshot()

	fmt.Printf("%s\n", state.Destination)
	fmt.Printf("%s ~ %s\n", state.StartDate, state.EndDate)
	if ctx.Store.ReadOnly() {
		fmt.Println("(viewing archive, read-only)")
	}
	fmt.Println()
	fmt.Printf("Flights:    %d\n", len(state.Flights))
	fmt.Printf("Hotels:     %d\n", len(state.Hotels))
	fmt.Printf("Itinerary:  %d items over %d days\n", len(state.ItineraryItems), len(utils.DateRange(state.StartDate, state.EndDate)))
	fmt.Printf("Shopping:   %d items\n", len(state.ShoppingItems))
	fmt.Printf("Ledger:     %d entries, TWD %.0f total\n", len(state.Debts), ctx.Rates.DebtTotal(state.Debts, "TWD"))
	return nil
}

type TripLoadCmd struct{}

func (c *TripLoadCmd) Run(ctx *Context) error {
	if err := ctx.Syncer.Load(ctx.Ctx); err != nil {
		return err
	}
	state := ctx.Store.Snapshot()
	fmt.Printf("✓ Current trip loaded: %s (%s ~ %s)\n", state.Destination, state.StartDate, state.EndDate)
	return nil
}

type TripResetCmd struct{}

func (c *TripResetCmd) Run(ctx *Context) error {
	ok, err := ctx.Confirm("Reset the current trip? All unarchived planning is replaced.")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Reset cancelled.")
		return nil
	}

	ctx.Store.Reset()
	fmt.Println("✓ Trip reset. A fresh journey awaits.")
	return nil
}

type SetDestinationCmd struct {
	Destination string `arg:"" help:"Trip destination, e.g. \"東京 / 日本\"."`
}

func (c *SetDestinationCmd) Run(ctx *Context) error {
	ctx.Store.SetDestination(c.Destination)
	fmt.Printf("✓ Destination set to %s\n", c.Destination)
	return nil
}

type SetDatesCmd struct {
	Start string `arg:"" help:"Start date (YYYY-MM-DD)."`
	End   string `arg:"" help:"End date (YYYY-MM-DD)."`
}

func (c *SetDatesCmd) Run(ctx *Context) error {
	if err := validation.ValidateDate(c.Start); err != nil {
		return err
	}
	if err := validation.ValidateDate(c.End); err != nil {
		return err
	}
	ctx.Store.SetDates(c.Start, c.End)
	fmt.Printf("✓ Trip dates set to %s ~ %s\n", c.Start, c.End)
	return nil
}

type SetCoverCmd struct {
	URL string `arg:"" help:"Cover image URL."`
}

func (c *SetCoverCmd) Run(ctx *Context) error {
	ctx.Store.SetCoverImage(c.URL)
	fmt.Println("✓ Cover image updated")
	return nil
}

type SummaryCmd struct {
	Currency string `help:"Display currency." default:"TWD" enum:"TWD,JPY,USD"`
}

func (c *SummaryCmd) Run(ctx *Context) error {
	state := ctx.Store.Snapshot()

	fmt.Printf("Expenses (%s)\n\n", c.Currency)
	total := ctx.Rates.DebtTotal(state.Debts, c.Currency)
	fmt.Printf("  Total: %s %.0f\n", c.Currency, total)

	byPayer := ctx.Rates.DebtTotalsByPayer(state.Debts, c.Currency)
	for payer, amount := range byPayer {
		fmt.Printf("  %-12s %s %.0f\n", payer, c.Currency, amount)
	}

	fmt.Println()
	fmt.Printf("Shopping (%s)\n\n", c.Currency)
	fmt.Printf("  Planned:   %s %.0f\n", c.Currency, ctx.Rates.ShoppingTotal(state.ShoppingItems, c.Currency, false))
	fmt.Printf("  Remaining: %s %.0f\n", c.Currency, ctx.Rates.ShoppingTotal(state.ShoppingItems, c.Currency, true))
	for _, buyer := range rates.Buyers(state.ShoppingItems) {
		fmt.Printf("  for %s\n", buyer)
	}
	return nil
}
