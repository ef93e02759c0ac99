package tui

import (
	"fmt"
	"io"
	"strings"

	"foodlist-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// entryItem is one row of the main list. index is the entry's position at the
// time the rows were built; rows are rebuilt after every list change.
type entryItem struct {
	index    int
	entry    model.Entry
	currency string
}

func (i entryItem) FilterValue() string { return i.entry.Name }

func (i entryItem) Title() string {
	return "Food Item: " + i.entry.Name
}

func (i entryItem) Description() string {
	return "Price: " + model.FormatPrice(i.entry.Price, i.currency)
}

type entryRowDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
	// active reports whether the list has keyboard focus; selection is only
	// highlighted when it does.
	active *bool
}

func newEntryRowDelegate(active *bool) entryRowDelegate {
	return entryRowDelegate{
		normal: lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true),
		active: active,
	}
}

func (d entryRowDelegate) Height() int  { return 1 }
func (d entryRowDelegate) Spacing() int { return 1 }
func (d entryRowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d entryRowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(entryItem)
	contentW := m.Width()
	if !ok || contentW < 4 {
		fmt.Fprint(w, "")
		return
	}

	isSel := index == m.Index() && (d.active == nil || *d.active)
	fmt.Fprint(w, renderEntryRow(it, contentW, isSel, d.normal, d.selected))
}

// renderEntryRow lays out "◆ Food Item: X   ¤ Price: ₹Y" on the left and the
// edit/delete affordances on the right.
func renderEntryRow(it entryItem, width int, selected bool, normal, sel lipgloss.Style) string {
	style := normal
	marker := " "
	if selected {
		style = sel
		marker = glyphSelected()
	}
	nameIcon := lipgloss.NewStyle().Foreground(colorNameIcon).Render(glyphItem())
	priceIcon := lipgloss.NewStyle().Foreground(colorPriceIcon).Render(glyphPrice())
	editIcon := lipgloss.NewStyle().Foreground(colorNameIcon).Render(glyphEdit())
	delIcon := lipgloss.NewStyle().Foreground(colorDeleteIcon).Render(glyphDelete())

	left := marker + " " + nameIcon + " " + it.Title() + "   " + priceIcon + " " + it.Description()
	right := editIcon + " " + delIcon + " "

	rightW := xansi.StringWidth(right)
	leftW := width - rightW
	if leftW < 1 {
		return style.Render(fitLine(left, width))
	}
	return style.Render(fitLine(left, leftW) + right)
}

func entryItems(entries model.Snapshot, currency string) []list.Item {
	items := make([]list.Item, 0, len(entries))
	for i, e := range entries {
		items = append(items, entryItem{index: i, entry: e, currency: currency})
	}
	return items
}

func newEntryList(active *bool) list.Model {
	l := list.New([]list.Item{}, newEntryRowDelegate(active), 0, 0)
	l.Title = "Food Items"
	// We render our own header and footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("food item", "food items")
	// The list must not quit the program on its own; quitting is handled by the app.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	// Emacs-style navigation aliases.
	l.KeyMap.CursorUp.SetKeys(append(append([]string{}, l.KeyMap.CursorUp.Keys()...), "ctrl+p")...)
	l.KeyMap.CursorDown.SetKeys(append(append([]string{}, l.KeyMap.CursorDown.Keys()...), "ctrl+n")...)
	return l
}

// truncateName keeps long names from pushing the price off a narrow row.
func truncateName(s string, max int) string {
	s = strings.TrimSpace(s)
	if max <= 1 || xansi.StringWidth(s) <= max {
		return s
	}
	return xansi.Cut(s, 0, max-1) + "…"
}
