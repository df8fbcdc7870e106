package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mchou/travelpulse/internal/models"
	"github.com/mchou/travelpulse/internal/validation"
)

type HotelAddCmd struct {
	Name           string   `arg:"" help:"Hotel name."`
	Address        string   `help:"Hotel address."`
	Rating         float64  `help:"Rating out of 5."`
	PricePerPerson float64  `name:"price" help:"Price per person per night."`
	Currency       string   `default:"TWD" enum:"TWD,JPY,USD" help:"Price currency."`
	Pro            []string `help:"Points in favor (repeatable)."`
	Con            []string `help:"Points against (repeatable)."`
	URL            string   `help:"Booking URL."`
}

func (c *HotelAddCmd) Run(ctx *Context) error {
	if err := validation.ValidateAmount(c.PricePerPerson); err != nil {
		return err
	}

	hotel := models.Hotel{
		ID:             uuid.NewString(),
		Name:           c.Name,
		Rating:         c.Rating,
		PricePerPerson: c.PricePerPerson,
		Currency:       c.Currency,
		Address:        c.Address,
		Pros:           c.Pro,
		Cons:           c.Con,
		URL:            c.URL,
	}

	state := ctx.Store.Snapshot()
	ctx.Store.SetHotels(append(state.Hotels, hotel))
	fmt.Printf("✓ Hotel %s added\n", c.Name)
	return nil
}

type HotelListCmd struct{}

func (c *HotelListCmd) Run(ctx *Context) error {
	state := ctx.Store.Snapshot()
	if len(state.Hotels) == 0 {
		fmt.Println("No hotels yet.")
		return nil
	}
	for _, h := range state.Hotels {
		marker := " "
		if h.IsSelected {
			marker = "*"
		}
		fmt.Printf("  %s %-24s %.1f★  %s %.0f/person  (%s)\n",
			marker, h.Name, h.Rating, h.Currency, h.PricePerPerson, h.ID)
	}
	return nil
}

type HotelSelectCmd struct {
	ID string `arg:"" help:"Hotel id to select."`
}

func (c *HotelSelectCmd) Run(ctx *Context) error {
	state := ctx.Store.Snapshot()
	found := false
	hotels := make([]models.Hotel, len(state.Hotels))
	for i, h := range state.Hotels {
		h.IsSelected = h.ID == c.ID
		if h.IsSelected {
			found = true
		}
		hotels[i] = h
	}
	if !found {
		return fmt.Errorf("no hotel with id %s", c.ID)
	}
	ctx.Store.SetHotels(hotels)
	fmt.Println("✓ Hotel selected")
	return nil
}

type HotelDeleteCmd struct {
	ID string `arg:"" help:"Hotel id to delete."`
}

func (c *HotelDeleteCmd) Run(ctx *Context) error {
	state := ctx.Store.Snapshot()
	kept := make([]models.Hotel, 0, len(state.Hotels))
	for _, h := range state.Hotels {
		if h.ID != c.ID {
			kept = append(kept, h)
		}
	}
	if len(kept) == len(state.Hotels) {
		return fmt.Errorf("no hotel with id %s", c.ID)
	}
	ctx.Store.SetHotels(kept)
	fmt.Println("✓ Hotel removed")
	return nil
}
