package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mchou/travelpulse/internal/models"
	"github.com/mchou/travelpulse/internal/validation"
)

type FlightAddCmd struct {
	Airline      string  `arg:"" help:"Airline name."`
	FlightNumber string  `arg:"" help:"Flight number, e.g. BR198."`
	Date         string  `required:"" help:"Flight date (YYYY-MM-DD)."`
	Departure    string  `required:"" help:"Departure airport/city."`
	Arrival      string  `required:"" help:"Arrival airport/city."`
	Depart       string  `required:"" name:"depart" help:"Departure time (HH:MM)."`
	Arrive       string  `required:"" name:"arrive" help:"Arrival time (HH:MM)."`
	Price        float64 `help:"Ticket price."`
	TicketURL    string  `help:"Ticket or booking URL."`
	Return       bool    `help:"Mark as the return leg."`
}

func (c *FlightAddCmd) Run(ctx *Context) error {
	if err := validation.ValidateDate(c.Date); err != nil {
		return err
	}
	if err := validation.ValidateTime(c.Depart); err != nil {
		return err
	}
	if err := validation.ValidateTime(c.Arrive); err != nil {
		return err
	}

	flightType := models.FlightDeparture
	if c.Return {
		flightType = models.FlightReturn
	}
	flight := models.Flight{
		ID:            uuid.NewString(),
		Airline:       c.Airline,
		FlightNumber:  c.FlightNumber,
		Departure:     c.Departure,
		Arrival:       c.Arrival,
		DepartureTime: c.Depart,
		ArrivalTime:   c.Arrive,
		Price:         c.Price,
		Date:          c.Date,
		TicketURL:     c.TicketURL,
		Type:          flightType,
	}

	state := ctx.Store.Snapshot()
	ctx.Store.SetFlights(append(state.Flights, flight))
	fmt.Printf("✓ Flight %s %s added (%s)\n", c.Airline, c.FlightNumber, flightType)
	return nil
}

type FlightListCmd struct{}

func (c *FlightListCmd) Run(ctx *Context) error {
	state := ctx.Store.Snapshot()
	if len(state.Flights) == 0 {
		fmt.Println("No flights yet.")
		return nil
	}
	for _, f := range state.Flights {
		fmt.Printf("  %-9s %s %s  %s %s → %s %s  (%s)\n",
			f.Type, f.Airline, f.FlightNumber, f.Date, f.DepartureTime, f.ArrivalTime, f.Arrival, f.ID)
	}
	return nil
}

type FlightDeleteCmd struct {
	ID string `arg:"" help:"Flight id to delete."`
}

func (c *FlightDeleteCmd) Run(ctx *Context) error {
	state := ctx.Store.Snapshot()
	kept := make([]models.Flight, 0, len(state.Flights))
	for _, f := range state.Flights {
		if f.ID != c.ID {
			kept = append(kept, f)
		}
	}
	if len(kept) == len(state.Flights) {
		return fmt.Errorf("no flight with id %s", c.ID)
	}
	ctx.Store.SetFlights(kept)
	fmt.Println("✓ Flight removed")
	return nil
}
