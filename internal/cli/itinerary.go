package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mchou/travelpulse/internal/constants"
	"github.com/mchou/travelpulse/internal/models"
	"github.com/mchou/travelpulse/internal/utils"
	"github.com/mchou/travelpulse/internal/validation"
)

type ItineraryAddCmd struct {
	Activity       string `arg:"" optional:"" help:"What to do."`
	Date           string `help:"Date (YYYY-MM-DD), defaults to the trip start."`
	Start          string `help:"Start time (HH:MM)."`
	Duration       string `help:"Duration token (30m, 1h, 1.5h, ..., 全天)."`
	Location       string `help:"Where it happens."`
	LocationURL    string `help:"Explicit map URL."`
	Type           string `default:"attraction" help:"attraction, food, transport or rest."`
	Transportation string `help:"How to get there."`
	Note           string `help:"Free-form note."`
	Attachment     string `help:"Attachment image URL."`
}

// Run adds an itinerary item, filling quick-add defaults for anything left
// unspecified.
func (c *ItineraryAddCmd) Run(ctx *Context) error {
	state := ctx.Store.Snapshot()

	item := models.ItineraryItem{
		ID:             uuid.NewString(),
		Date:           c.Date,
		StartTime:      c.Start,
		Duration:       c.Duration,
		Activity:       c.Activity,
		Location:       c.Location,
		LocationURL:    c.LocationURL,
		Type:           models.ItemType(c.Type),
		Transportation: c.Transportation,
		Note:           c.Note,
		Attachment:     c.Attachment,
	}
	if item.Date == "" {
		item.Date = state.StartDate
	}
	if item.StartTime == "" {
		item.StartTime = constants.DefaultStartTime
	}
	if item.Duration == "" {
		item.Duration = constants.DefaultDuration
	}
	if item.Activity == "" {
		item.Activity = constants.DefaultActivity
	}
	if item.Transportation == "" {
		item.Transportation = constants.DefaultTransportation
	}

	if err := validation.ValidateDate(item.Date); err != nil {
		return err
	}
	if err := validation.ValidateTime(item.StartTime); err != nil {
		return err
	}
	if err := validation.ValidateDuration(item.Duration); err != nil {
		return err
	}
	if err := validation.ValidateItemType(string(item.Type)); err != nil {
		return err
	}

	ctx.Store.SetItineraryItems(append(state.ItineraryItems, item))
	fmt.Printf("✓ %s on %s at %s (%s)\n", item.Activity, item.Date, item.StartTime, item.ID)
	return nil
}

type ItineraryListCmd struct {
	Date string `help:"Show a single date instead of the whole trip."`
}

func (c *ItineraryListCmd) Run(ctx *Context) error {
	state := ctx.Store.Snapshot()

	dates := utils.DateRange(state.StartDate, state.EndDate)
	if c.Date != "" {
		if err := validation.ValidateDate(c.Date); err != nil {
			return err
		}
		dates = []string{c.Date}
	}

	empty := true
	for _, date := range dates {
		day := ctx.Scheduler.DayItems(state.ItineraryItems, date)
		if len(day) == 0 {
			continue
		}
		empty = false
		fmt.Printf("%s", date)
		if mapURL := state.DailyMaps[date]; mapURL != "" {
			fmt.Printf("  (map: %s)", mapURL)
		}
		fmt.Println()
		for i, item := range day {
			fmt.Printf("  %d. %s (%s)  %s", i+1, item.StartTime, item.Duration, item.Activity)
			if item.Location != "" {
				fmt.Printf(" @ %s", item.Location)
			}
			fmt.Printf("  [%s]\n", item.ID)
			for _, si := range state.ShoppingItems {
				if si.ItineraryItemID == item.ID {
					check := " "
					if si.IsChecked {
						check = "x"
					}
					fmt.Printf("       [%s] %s (%s %.0f)\n", check, si.Name, si.Currency, si.Amount)
				}
			}
		}
	}
	if empty {
		fmt.Println("No itinerary items yet.")
	}
	return nil
}

type ItineraryEditCmd struct {
	ID             string `arg:"" help:"Item id to edit."`
	Activity       string `help:"New activity."`
	Start          string `help:"New start time (HH:MM)."`
	Duration       string `help:"New duration token."`
	Location       string `help:"New location."`
	LocationURL    string `help:"New map URL."`
	Transportation string `help:"New transportation."`
	Note           string `help:"New note."`
}

func (c *ItineraryEditCmd) Run(ctx *Context) error {
	if c.Start != "" {
		if err := validation.ValidateTime(c.Start); err != nil {
			return err
		}
	}
	if c.Duration != "" {
		if err := validation.ValidateDuration(c.Duration); err != nil {
			return err
		}
	}

	state := ctx.Store.Snapshot()
	found := false
	items := make([]models.ItineraryItem, len(state.ItineraryItems))
	for i, item := range state.ItineraryItems {
		if item.ID == c.ID {
			found = true
			if c.Activity != "" {
				item.Activity = c.Activity
			}
			if c.Start != "" {
				item.StartTime = c.Start
			}
			if c.Duration != "" {
				item.Duration = c.Duration
			}
			if c.Location != "" {
				item.Location = c.Location
			}
			if c.LocationURL != "" {
				item.LocationURL = c.LocationURL
			}
			if c.Transportation != "" {
				item.Transportation = c.Transportation
			}
			if c.Note != "" {
				item.Note = c.Note
			}
		}
		items[i] = item
	}
	if !found {
		return fmt.Errorf("no itinerary item with id %s", c.ID)
	}
	ctx.Store.SetItineraryItems(items)
	fmt.Println("✓ Itinerary item updated")
	return nil
}

type ItineraryDeleteCmd struct {
	ID string `arg:"" help:"Item id to delete."`
}

// Run deletes an itinerary item. Shopping items linked to it are left in
// place; their reference simply dangles and renders as unlinked.
func (c *ItineraryDeleteCmd) Run(ctx *Context) error {
	state := ctx.Store.Snapshot()
	kept := make([]models.ItineraryItem, 0, len(state.ItineraryItems))
	for _, item := range state.ItineraryItems {
		if item.ID != c.ID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(state.ItineraryItems) {
		return fmt.Errorf("no itinerary item with id %s", c.ID)
	}
	ctx.Store.SetItineraryItems(kept)
	fmt.Println("✓ Itinerary item removed")
	return nil
}

type ItineraryReorderCmd struct {
	Date string `arg:"" help:"Date whose items to reorder (YYYY-MM-DD)."`
	From int    `arg:"" help:"Current position (1-based, in list order)."`
	To   int    `arg:"" help:"New position (1-based)."`
}

// Run moves an item within one day's schedule and cascades start times
// forward from the new order.
func (c *ItineraryReorderCmd) Run(ctx *Context) error {
	if err := validation.ValidateDate(c.Date); err != nil {
		return err
	}

	state := ctx.Store.Snapshot()
	items, err := ctx.Scheduler.Reorder(state.ItineraryItems, c.Date, c.From-1, c.To-1)
	if err != nil {
		return err
	}
	ctx.Store.SetItineraryItems(items)

	fmt.Printf("✓ Schedule for %s:\n", c.Date)
	for i, item := range ctx.Scheduler.DayItems(items, c.Date) {
		fmt.Printf("  %d. %s (%s)  %s\n", i+1, item.StartTime, item.Duration, item.Activity)
	}
	return nil
}
