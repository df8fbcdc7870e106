package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mchou/travelpulse/internal/models"
	"github.com/mchou/travelpulse/internal/utils"
	"github.com/mchou/travelpulse/internal/validation"
)

type DebtAddCmd struct {
	Description string  `arg:"" help:"What was paid for."`
	Amount      float64 `arg:"" help:"Amount paid."`
	Payer       string  `required:"" help:"Who fronted the money."`
	Currency    string  `default:"TWD" enum:"TWD,JPY,USD" help:"Payment currency."`
	Date        string  `help:"Payment date (YYYY-MM-DD), defaults to today."`
}

func (c *DebtAddCmd) Run(ctx *Context) error {
	if err := validation.ValidateAmount(c.Amount); err != nil {
		return err
	}
	date := c.Date
	if date == "" {
		date = utils.Today()
	}
	if err := validation.ValidateDate(date); err != nil {
		return err
	}

	debt := models.DebtItem{
		ID:          uuid.NewString(),
		Description: c.Description,
		Amount:      c.Amount,
		Currency:    c.Currency,
		Payer:       c.Payer,
		Date:        date,
	}
	state := ctx.Store.Snapshot()
	ctx.Store.SetDebts(append(state.Debts, debt))
	fmt.Printf("✓ %s %.0f by %s: %s\n", c.Currency, c.Amount, c.Payer, c.Description)
	return nil
}

type DebtListCmd struct{}

func (c *DebtListCmd) Run(ctx *Context) error {
	state := ctx.Store.Snapshot()
	if len(state.Debts) == 0 {
		fmt.Println("Ledger is empty.")
		return nil
	}
	for _, d := range state.Debts {
		fmt.Printf("  %s  %-12s %s %8.0f  %s  (%s)\n", d.Date, d.Payer, d.Currency, d.Amount, d.Description, d.ID)
	}
	return nil
}

type DebtDeleteCmd struct {
	ID string `arg:"" help:"Ledger entry id to delete."`
}

func (c *DebtDeleteCmd) Run(ctx *Context) error {
	state := ctx.Store.Snapshot()
	kept := make([]models.DebtItem, 0, len(state.Debts))
	for _, d := range state.Debts {
		if d.ID != c.ID {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(state.Debts) {
		return fmt.Errorf("no ledger entry with id %s", c.ID)
	}
	ctx.Store.SetDebts(kept)
	fmt.Println("✓ Ledger entry removed")
	return nil
}
