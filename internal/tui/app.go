package tui

import (
	"strings"

	"foodlist-cli/internal/model"

	"github.com/charmbracelet/lipgloss"
)

const emptyListText = "No Food Item Added Yet!!!"

func (m appModel) View() string {
	if m.width == 0 {
		m.width = 80
	}
	if m.height == 0 {
		m.height = 24
	}

	var body string
	switch m.view {
	case viewSummary:
		body = m.viewSummary()
	default:
		body = m.viewMain()
	}
	body = lipgloss.NewStyle().Padding(1, outerMargin).Render(body)

	switch m.modal {
	case modalForm:
		return m.placeCentered(m.renderFormModal())
	case modalAlert:
		return m.placeCentered(m.renderAlertModal())
	}
	return body
}

func (m appModel) placeCentered(s string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}

func (m appModel) viewMain() string {
	v := m.box.view
	w := contentWidth(m.width)

	title := lipgloss.NewStyle().Bold(true).Render("Food List")
	stats := styleMuted().Render(pluralize(len(v.Entries), "item", "items") +
		"  total " + model.FormatPrice(v.Total, m.cfg.Currency))
	header := title + "  " + stats
	actions := styleAction().Render("+ Add Food Item") + " " + styleAction().Render("Final Food List")

	var listView string
	if len(v.Entries) == 0 {
		listView = styleMuted().Render(emptyListText)
	} else {
		listView = m.entriesList.View()
	}

	main := listView
	if len(v.Floating) > 0 {
		left := normalizePane(listView, w-laneW-1, 0)
		main = lipgloss.JoinHorizontal(lipgloss.Top, left, " ", m.viewLane())
	}

	footer := helpLine(m.keys.Add, m.keys.Edit, m.keys.Delete, m.keys.Finalize, m.keys.Pin, m.keys.Quit)
	if len(v.Floating) > 0 {
		if m.pane == paneFloating {
			footer = helpLine(m.keys.Release, m.keys.Lane, m.keys.Quit)
		} else {
			footer = helpLine(m.keys.Add, m.keys.Edit, m.keys.Delete, m.keys.Finalize, m.keys.Lane, m.keys.Quit)
		}
	}

	parts := []string{
		header,
		actions,
		"",
		main,
		"",
		styleMuted().Render(footer),
	}
	if strings.TrimSpace(m.minibuffer) != "" {
		parts = append(parts, m.minibuffer)
	}
	return strings.Join(parts, "\n")
}

// viewLane renders pinned copies in a side column.
func (m appModel) viewLane() string {
	toks := m.box.view.Floating
	lines := []string{lipgloss.NewStyle().Bold(true).Render(glyphPin() + " Pinned")}
	for i, t := range toks {
		marker := " "
		st := lipgloss.NewStyle()
		if m.pane == paneFloating && i == m.laneIdx {
			marker = glyphSelected()
			st = st.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
		}
		name := truncateName(t.Entry.Name, laneW-14)
		row := marker + " " + name + " " + model.FormatPrice(t.Entry.Price, m.cfg.Currency)
		lines = append(lines, st.Render(fitLine(row, laneW-2)))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(colorMuted).
		PaddingLeft(1).
		Render(strings.Join(lines, "\n"))
}
