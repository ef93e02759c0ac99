package tui

import (
	"strings"

	"foodlist-cli/internal/form"

	"github.com/charmbracelet/lipgloss"
)

const (
	modalMaxW = 64
	modalMinW = 28
)

// modalBodyWidth is the inner width of a modal on a terminal width columns wide.
func modalBodyWidth(width int) int {
	w := width - 2*outerMargin - 4
	if w > modalMaxW {
		w = modalMaxW
	}
	if w < modalMinW {
		w = modalMinW
	}
	return w
}

// renderModalBox draws title and content in a bordered surface. Content lines
// are padded to the body width so the background fills evenly.
func renderModalBox(width int, title, content string) string {
	return renderModalBoxBorder(width, title, content, colorAccent)
}

func renderModalBoxBorder(width int, title, content string, border lipgloss.TerminalColor) string {
	bodyW := modalBodyWidth(width)
	head := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).Render(title)
	body := normalizePane(head+"\n\n"+content, bodyW, 0)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Background(colorSurfaceBg).
		Foreground(colorSurfaceFg).
		Padding(0, 1).
		Render(body)
}

func modalButton(label string, active bool) string {
	st := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	if active {
		st = st.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	}
	return st.Render(label)
}

func (m appModel) renderFormModal() string {
	title := "Add Food Item"
	if m.box.view.Mode == form.Editing {
		title = "Edit Food Item"
	}
	bodyW := modalBodyWidth(m.width)

	label := func(s string, focused bool) string {
		st := lipgloss.NewStyle().Foreground(colorSurfaceFg)
		if focused {
			st = st.Bold(true).Foreground(colorAccent)
		}
		return st.Render(s)
	}

	help := styleMuted().Width(bodyW).Render(helpLine(
		m.formKeys.Next, m.formKeys.Submit, m.formKeys.Save, m.formKeys.Cancel,
	))

	content := strings.Join([]string{
		label(glyphItem()+" Food Item:", m.focus == formFocusName),
		renderInputLine(bodyW, m.nameIn.View()),
		"",
		label(glyphPrice()+" Food Price:", m.focus == formFocusPrice),
		renderInputLine(bodyW, m.priceIn.View()),
		"",
		modalButton("Save", m.focus == formFocusSave),
		"",
		help,
	}, "\n")
	return renderModalBox(m.width, title, content)
}

func (m appModel) renderAlertModal() string {
	bodyW := modalBodyWidth(m.width)
	msg := lipgloss.NewStyle().Width(bodyW).Render(m.alert.message)
	help := styleMuted().Width(bodyW).Render("enter/esc: ok")
	content := strings.Join([]string{
		msg,
		"",
		modalButton("OK", true),
		"",
		help,
	}, "\n")
	return renderModalBoxBorder(m.width, m.alert.title, content, colorAlertBorder)
}
