package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mchou/travelpulse/internal/models"
	"github.com/mchou/travelpulse/internal/rates"
	"github.com/mchou/travelpulse/internal/validation"
)

type ShoppingAddCmd struct {
	Name      string  `arg:"" help:"What to buy."`
	Amount    float64 `required:"" help:"Expected price."`
	Currency  string  `default:"TWD" enum:"TWD,JPY,USD" help:"Price currency."`
	For       string  `name:"for" help:"Who it is for, defaults to yourself."`
	Itinerary string  `help:"Itinerary item id to link this purchase to."`
}

func (c *ShoppingAddCmd) Run(ctx *Context) error {
	if err := validation.ValidateAmount(c.Amount); err != nil {
		return err
	}

	state := ctx.Store.Snapshot()
	if c.Itinerary != "" {
		if _, ok := models.FindItineraryItem(state.ItineraryItems, c.Itinerary); !ok {
			return fmt.Errorf("no itinerary item with id %s", c.Itinerary)
		}
	}

	item := models.ShoppingItem{
		ID:              uuid.NewString(),
		Name:            c.Name,
		Amount:          c.Amount,
		Currency:        c.Currency,
		ItineraryItemID: c.Itinerary,
		ForWhom:         c.For,
	}
	ctx.Store.SetShoppingItems(append(state.ShoppingItems, item))
	fmt.Printf("✓ %s added for %s (%s)\n", c.Name, rates.BuyerLabel(item), item.ID)
	return nil
}

type ShoppingListCmd struct {
	For string `name:"for" help:"Filter by buyer."`
}

func (c *ShoppingListCmd) Run(ctx *Context) error {
	state := ctx.Store.Snapshot()
	if len(state.ShoppingItems) == 0 {
		fmt.Println("Shopping list is empty.")
		return nil
	}

	for _, item := range state.ShoppingItems {
		buyer := rates.BuyerLabel(item)
		if c.For != "" && buyer != c.For {
			continue
		}
		check := " "
		if item.IsChecked {
			check = "x"
		}
		fmt.Printf("  [%s] [%s] %-20s %s %.0f", check, buyer, item.Name, item.Currency, item.Amount)
		// A dangling link renders the same as no link at all.
		if linked, ok := models.FindItineraryItem(state.ItineraryItems, item.ItineraryItemID); ok {
			fmt.Printf("  @ %s", linked.Activity)
		}
		fmt.Printf("  (%s)\n", item.ID)
	}
	return nil
}

type ShoppingCheckCmd struct {
	ID string `arg:"" help:"Shopping item id to toggle."`
}

func (c *ShoppingCheckCmd) Run(ctx *Context) error {
	state := ctx.Store.Snapshot()
	found := false
	items := make([]models.ShoppingItem, len(state.ShoppingItems))
	for i, item := range state.ShoppingItems {
		if item.ID == c.ID {
			item.IsChecked = !item.IsChecked
			found = true
		}
		items[i] = item
	}
	if !found {
		return fmt.Errorf("no shopping item with id %s", c.ID)
	}
	ctx.Store.SetShoppingItems(items)
	fmt.Println("✓ Shopping item toggled")
	return nil
}

type ShoppingDeleteCmd struct {
	ID string `arg:"" help:"Shopping item id to delete."`
}

func (c *ShoppingDeleteCmd) Run(ctx *Context) error {
	state := ctx.Store.Snapshot()
	kept := make([]models.ShoppingItem, 0, len(state.ShoppingItems))
	for _, item := range state.ShoppingItems {
		if item.ID != c.ID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(state.ShoppingItems) {
		return fmt.Errorf("no shopping item with id %s", c.ID)
	}
	ctx.Store.SetShoppingItems(kept)
	fmt.Println("✓ Shopping item removed")
	return nil
}
