package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mchou/travelpulse/internal/models"
	"github.com/mchou/travelpulse/internal/scheduler"
	"github.com/mchou/travelpulse/internal/trip"
	"github.com/mchou/travelpulse/internal/utils"
)

// Model is the itinerary board: one tab per trip day, the day's items in
// schedule order, and move-up/move-down reordering that drives the start-time
// cascade. When an archive is being viewed the board renders the same but
// every editing key is inert.
type Model struct {
	store     *trip.Store
	scheduler *scheduler.Engine

	dates   []string
	dateIdx int
	cursor  int

	keys     KeyMap
	help     help.Model
	quitting bool
	width    int
	height   int
	status   string
}

func New(store *trip.Store, engine *scheduler.Engine) Model {
	state := store.Snapshot()
	dates := utils.DateRange(state.StartDate, state.EndDate)
	if len(dates) == 0 {
		dates = []string{state.StartDate}
	}
	return Model{
		store:     store,
		scheduler: engine,
		dates:     dates,
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}
}

func (m Model) Init() tea.Cmd { return nil }

// dayItems returns the current day's items in display order.
func (m Model) dayItems() []models.ItineraryItem {
	return m.scheduler.DayItems(m.store.Snapshot().ItineraryItems, m.dates[m.dateIdx])
}

func (m Model) clampCursor(n int) int {
	if n <= 0 {
		return 0
	}
	if m.cursor >= n {
		return n - 1
	}
	if m.cursor < 0 {
		return 0
	}
	return m.cursor
}
