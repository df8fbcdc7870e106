package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mchou/travelpulse/internal/rates"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	state := m.store.Snapshot()

	header := headerStyle.Render(fmt.Sprintf("%s  %s ~ %s", state.Destination, state.StartDate, state.EndDate))
	if m.store.ReadOnly() {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, readOnlyStyle.Render("[archive, read-only]"))
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		m.viewTabs(),
		docStyle.Render(m.viewDay()),
		m.statusLine(),
		m.help.View(m.keys),
	)
	return ui
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, date := range m.dates {
		// Day tabs render as short "10/15" labels.
		label := date
		if len(date) == 10 {
			label = date[5:7] + "/" + date[8:]
		}
		if i == m.dateIdx {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDay() string {
	state := m.store.Snapshot()
	day := m.dayItems()
	if len(day) == 0 {
		return noteStyle.Render("nothing planned for this day")
	}

	cursor := m.clampCursor(len(day))
	var b strings.Builder
	for i, item := range day {
		prefix := "  "
		line := fmt.Sprintf("%d. %s (%s)  %s", i+1, item.StartTime, item.Duration, item.Activity)
		if item.Location != "" {
			line += timeStyle.Render("  @ " + item.Location)
		}
		if i == cursor {
			prefix = cursorStyle.Render("> ")
			line = cursorStyle.Render(line)
		}
		b.WriteString(prefix + line + "\n")

		for _, si := range state.ShoppingItems {
			if si.ItineraryItemID != item.ID {
				continue
			}
			check := "☐"
			if si.IsChecked {
				check = "☑"
			}
			b.WriteString(noteStyle.Render(fmt.Sprintf("       %s [%s] %s", check, rates.BuyerLabel(si), si.Name)) + "\n")
		}
	}
	return b.String()
}

func (m Model) statusLine() string {
	if m.status == "" {
		return ""
	}
	return readOnlyStyle.Render(m.status)
}
