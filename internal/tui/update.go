package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mchou/travelpulse/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		m.status = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.PrevDay):
			if m.dateIdx > 0 {
				m.dateIdx--
				m.cursor = 0
			}

		case key.Matches(msg, m.keys.NextDay):
			if m.dateIdx < len(m.dates)-1 {
				m.dateIdx++
				m.cursor = 0
			}

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.dayItems())-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.MoveUp):
			m = m.moveItem(-1)

		case key.Matches(msg, m.keys.MoveDown):
			m = m.moveItem(1)

		case key.Matches(msg, m.keys.Toggle):
			m = m.togglePurchases()
		}
	}

	return m, nil
}

// moveItem reorders the item under the cursor one slot up or down within the
// current day and lets the scheduling engine cascade the start times. A
// read-only store ignores the resulting SetItineraryItems, so viewing an
// archive the keys simply do nothing.
func (m Model) moveItem(delta int) Model {
	day := m.dayItems()
	m.cursor = m.clampCursor(len(day))
	target := m.cursor + delta
	if len(day) < 2 || target < 0 || target >= len(day) {
		return m
	}
	if m.store.ReadOnly() {
		m.status = "read-only: viewing an archive"
		return m
	}

	state := m.store.Snapshot()
	items, err := m.scheduler.Reorder(state.ItineraryItems, m.dates[m.dateIdx], m.cursor, target)
	if err != nil {
		m.status = err.Error()
		return m
	}
	m.store.SetItineraryItems(items)
	m.cursor = target
	return m
}

// togglePurchases flips the purchased flag of every shopping item linked to
// the itinerary item under the cursor.
func (m Model) togglePurchases() Model {
	day := m.dayItems()
	m.cursor = m.clampCursor(len(day))
	if len(day) == 0 {
		return m
	}
	if m.store.ReadOnly() {
		m.status = "read-only: viewing an archive"
		return m
	}

	state := m.store.Snapshot()
	itemID := day[m.cursor].ID
	changed := false
	shopping := make([]models.ShoppingItem, len(state.ShoppingItems))
	for i, si := range state.ShoppingItems {
		if si.ItineraryItemID == itemID {
			si.IsChecked = !si.IsChecked
			changed = true
		}
		shopping[i] = si
	}
	if changed {
		m.store.SetShoppingItems(shopping)
	}
	return m
}
