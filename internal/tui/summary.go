package tui

import (
	"strconv"
	"strings"

	"foodlist-cli/internal/format"
	"foodlist-cli/internal/handoff"
	"foodlist-cli/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// summaryMarkdown renders the finalized list as a two-column table with a
// total row.
func summaryMarkdown(items model.Snapshot, currency string) string {
	var b strings.Builder
	b.WriteString("| # | Food Item | Price |\n")
	b.WriteString("|---:|---|---:|\n")
	for i, e := range items {
		b.WriteString("| ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(" | ")
		b.WriteString(escapeTableCell(e.Name))
		b.WriteString(" | ")
		b.WriteString(escapeTableCell(model.FormatPrice(e.Price, currency)))
		b.WriteString(" |\n")
	}
	b.WriteString("| | **Total** | **")
	b.WriteString(escapeTableCell(model.FormatPrice(items.Total(), currency)))
	b.WriteString("** |\n")
	return b.String()
}

func escapeTableCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}

// summaryJSON is the payload exactly as handed to the summary view.
func summaryJSON(items model.Snapshot) (string, error) {
	if items == nil {
		items = model.Snapshot{}
	}
	return format.JSONString(handoff.Params{handoff.ParamFoodItems: items}, true)
}

func (m appModel) viewSummary() string {
	w := contentWidth(m.width)

	title := styleAction().Render("Final Food List")
	count := styleMuted().Render(pluralize(len(m.summary), "food item", "food items"))
	header := title + "  " + count

	table := renderMarkdown(summaryMarkdown(m.summary, m.cfg.Currency), w)

	js, err := summaryJSON(m.summary)
	if err != nil {
		js = err.Error()
	}
	dump := lipgloss.NewStyle().
		Foreground(colorSurfaceFg).
		Background(colorInputBg).
		Padding(0, 1).
		Render(normalizePane(js, w-2, 0))

	parts := []string{
		header,
		"",
		table,
		"",
		styleMuted().Render("Payload"),
		dump,
		"",
		styleMuted().Render(helpLine(m.sumKeys.Copy, m.sumKeys.Back, m.sumKeys.New, m.sumKeys.Quit)),
	}
	if strings.TrimSpace(m.minibuffer) != "" {
		parts = append(parts, m.minibuffer)
	}
	return strings.Join(parts, "\n")
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return strconv.Itoa(n) + " " + many
}
