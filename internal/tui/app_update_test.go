package tui

import (
	"strings"
	"testing"

	"foodlist-cli/internal/config"
	"foodlist-cli/internal/form"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
)

func newTestModel(t *testing.T, cfg config.Config) appModel {
	t.Helper()
	m := newAppModel(cfg, nil)
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return mm.(appModel)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(t *testing.T, m appModel, keys ...string) appModel {
	t.Helper()
	for _, k := range keys {
		mm, _ := m.Update(keyMsg(k))
		m = mm.(appModel)
	}
	return m
}

func typeText(t *testing.T, m appModel, s string) appModel {
	t.Helper()
	for _, r := range s {
		mm, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = mm.(appModel)
	}
	return m
}

func addEntry(t *testing.T, m appModel, name, price string) appModel {
	t.Helper()
	m = press(t, m, "a")
	m = typeText(t, m, name)
	m = press(t, m, "enter")
	m = typeText(t, m, price)
	return press(t, m, "enter")
}

func TestAdd_CommitsThroughForm(t *testing.T) {
	m := newTestModel(t, config.Defaults())

	m = press(t, m, "a")
	if m.modal != modalForm || m.box.view.Mode != form.Creating {
		t.Fatalf("expected create form open; modal=%v mode=%v", m.modal, m.box.view.Mode)
	}
	m = typeText(t, m, "Paneer")
	if got := m.box.view.Draft.NameText; got != "Paneer" {
		t.Fatalf("expected draft name to follow input; got %q", got)
	}
	m = press(t, m, "enter")
	if m.focus != formFocusPrice {
		t.Fatalf("expected enter on name to move to price; got %v", m.focus)
	}
	m = typeText(t, m, "12.50")
	m = press(t, m, "enter")

	if m.modal != modalNone {
		t.Fatalf("expected form closed after save; got %v", m.modal)
	}
	entries := m.box.view.Entries
	if len(entries) != 1 || entries[0].Name != "Paneer" || entries[0].Price.String() != "12.5" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestAdd_EmptyNameShowsAlertAndKeepsForm(t *testing.T) {
	m := newTestModel(t, config.Defaults())

	m = press(t, m, "a", "enter")
	m = typeText(t, m, "10")
	m = press(t, m, "enter")

	if m.modal != modalAlert {
		t.Fatalf("expected alert; got %v", m.modal)
	}
	if m.alert.title != "Validation Error" || m.alert.message != "Please enter a valid food item." {
		t.Fatalf("unexpected alert: %+v", m.alert)
	}
	if len(m.box.view.Entries) != 0 {
		t.Fatalf("expected no entries after failed commit")
	}

	m = press(t, m, "enter")
	if m.modal != modalForm {
		t.Fatalf("expected dismissing the alert to return to the form; got %v", m.modal)
	}
	if got := m.priceIn.Value(); got != "10" {
		t.Fatalf("expected draft to survive the alert; got %q", got)
	}
}

func TestAdd_InvalidPriceShowsAlert(t *testing.T) {
	m := newTestModel(t, config.Defaults())

	m = addEntry(t, m, "Rice", "12abc")

	if m.modal != modalAlert || m.alert.message != "Please enter a valid price." {
		t.Fatalf("expected price alert; modal=%v alert=%+v", m.modal, m.alert)
	}
	if len(m.box.view.Entries) != 0 {
		t.Fatalf("expected no entries after failed commit")
	}
}

func TestForm_EscCancelsWithoutMutation(t *testing.T) {
	m := newTestModel(t, config.Defaults())
	m = addEntry(t, m, "Dal", "8")

	m = press(t, m, "e")
	if m.box.view.Mode != form.Editing {
		t.Fatalf("expected editing; got %v", m.box.view.Mode)
	}
	m = typeText(t, m, "XYZ")
	m = press(t, m, "esc")

	if m.modal != modalNone || m.box.view.Mode != form.Closed {
		t.Fatalf("expected form closed; modal=%v mode=%v", m.modal, m.box.view.Mode)
	}
	if got := m.box.view.Entries[0].Name; got != "Dal" {
		t.Fatalf("expected entry unchanged; got %q", got)
	}
}

func TestEdit_ReplacesOnlySelectedEntry(t *testing.T) {
	m := newTestModel(t, config.Defaults())
	m = addEntry(t, m, "Idli", "4")
	m = addEntry(t, m, "Vada", "5")

	// The cursor follows the newest entry.
	m = press(t, m, "e")
	if got := m.nameIn.Value(); got != "Vada" {
		t.Fatalf("expected name prefilled; got %q", got)
	}
	if got := m.priceIn.Value(); got != "5" {
		t.Fatalf("expected price prefilled; got %q", got)
	}

	m = press(t, m, "tab", "backspace")
	m = typeText(t, m, "6.25")
	m = press(t, m, "ctrl+s")

	entries := m.box.view.Entries
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries; got %d", len(entries))
	}
	if entries[0].Name != "Idli" || entries[0].Price.String() != "4" {
		t.Fatalf("expected first entry untouched; got %+v", entries[0])
	}
	if entries[1].Name != "Vada" || entries[1].Price.String() != "6.25" {
		t.Fatalf("expected second entry replaced; got %+v", entries[1])
	}
}

func TestDelete_RemovesSelectedEntry(t *testing.T) {
	m := newTestModel(t, config.Defaults())
	m = addEntry(t, m, "Idli", "4")
	m = addEntry(t, m, "Vada", "5")

	m = press(t, m, "k", "d")

	entries := m.box.view.Entries
	if len(entries) != 1 || entries[0].Name != "Vada" {
		t.Fatalf("expected only Vada to remain; got %+v", entries)
	}
}

func TestFinalize_EmptyListShowsAlert(t *testing.T) {
	m := newTestModel(t, config.Defaults())

	m = press(t, m, "f")

	if m.view != viewMain {
		t.Fatalf("expected to stay on main view; got %v", viewToString(m.view))
	}
	if m.modal != modalAlert || m.alert.message != "Please add at least one food item." {
		t.Fatalf("expected empty list alert; modal=%v alert=%+v", m.modal, m.alert)
	}

	m = press(t, m, "esc")
	if m.modal != modalNone {
		t.Fatalf("expected alert dismissed; got %v", m.modal)
	}
}

func TestFinalize_NavigatesToSummary(t *testing.T) {
	m := newTestModel(t, config.Defaults())
	m = addEntry(t, m, "Dosa", "12.5")
	m = addEntry(t, m, "Chai", "1")

	m = press(t, m, "f")

	if m.view != viewSummary {
		t.Fatalf("expected summary view; got %v", viewToString(m.view))
	}
	if len(m.summary) != 2 || m.summary[0].Name != "Dosa" || m.summary[1].Name != "Chai" {
		t.Fatalf("unexpected summary payload: %+v", m.summary)
	}
	snap, ok := m.Finalized()
	if !ok || len(snap) != 2 {
		t.Fatalf("expected finalized snapshot; got %+v ok=%v", snap, ok)
	}

	out := xansi.Strip(m.View())
	for _, want := range []string{"Final Food List", "Dosa", "Chai", `"foodItem": "Dosa"`, `"price": 12.5`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected summary view to contain %q; got:\n%s", want, out)
		}
	}
}

func TestSummary_BackKeepsListAndNewResets(t *testing.T) {
	m := newTestModel(t, config.Defaults())
	m = addEntry(t, m, "Dosa", "12.5")
	m = press(t, m, "f", "esc")

	if m.view != viewMain {
		t.Fatalf("expected main view after back; got %v", viewToString(m.view))
	}
	if len(m.box.view.Entries) != 1 {
		t.Fatalf("expected list kept after back; got %+v", m.box.view.Entries)
	}

	m = press(t, m, "f", "n")
	if m.view != viewMain || len(m.box.view.Entries) != 0 {
		t.Fatalf("expected fresh list after new; view=%v entries=%+v", viewToString(m.view), m.box.view.Entries)
	}
	if _, ok := m.Finalized(); !ok {
		t.Fatalf("expected the last finalized list to survive a reset")
	}
}

func TestSummary_CopyWritesPayloadJSON(t *testing.T) {
	var copied string
	prev := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = prev })

	m := newTestModel(t, config.Defaults())
	m = addEntry(t, m, "Chai", "1")
	m = press(t, m, "f")

	mm, cmd := m.Update(keyMsg("y"))
	m = mm.(appModel)
	if cmd == nil {
		t.Fatalf("expected copy command")
	}
	mm, _ = m.Update(cmd())
	m = mm.(appModel)

	want := "{\n  \"foodItems\": [\n    {\n      \"foodItem\": \"Chai\",\n      \"price\": 1\n    }\n  ]\n}"
	if copied != want {
		t.Fatalf("unexpected clipboard contents:\n%s", copied)
	}
	if m.minibuffer != "Copied JSON to clipboard" {
		t.Fatalf("expected confirmation; got %q", m.minibuffer)
	}
}

func TestPin_DisabledByDefault(t *testing.T) {
	m := newTestModel(t, config.Defaults())
	m = addEntry(t, m, "Dosa", "12.5")

	m = press(t, m, "p")

	if n := len(m.box.view.Floating); n != 0 {
		t.Fatalf("expected no floating tokens; got %d", n)
	}
}

func TestPin_SpawnAndRelease(t *testing.T) {
	cfg := config.Defaults()
	cfg.Overlay.EnableSpawn = true
	m := newTestModel(t, cfg)
	m = addEntry(t, m, "Dosa", "12.5")

	m = press(t, m, "p", "p")
	if n := len(m.box.view.Floating); n != 2 {
		t.Fatalf("expected 2 floating tokens; got %d", n)
	}
	if !strings.Contains(xansi.Strip(m.View()), "Pinned") {
		t.Fatalf("expected floating lane to render")
	}

	m = press(t, m, "tab")
	if m.pane != paneFloating {
		t.Fatalf("expected lane focus")
	}
	m = press(t, m, "r", "r")
	if n := len(m.box.view.Floating); n != 0 {
		t.Fatalf("expected tokens released; got %d", n)
	}
	if m.pane != paneList {
		t.Fatalf("expected focus back on the list once the lane is empty")
	}
	if len(m.box.view.Entries) != 1 {
		t.Fatalf("expected releases to leave the list alone")
	}
}

func TestView_EmptyStateAndRows(t *testing.T) {
	m := newTestModel(t, config.Defaults())

	if out := xansi.Strip(m.View()); !strings.Contains(out, emptyListText) {
		t.Fatalf("expected empty state; got:\n%s", out)
	}

	m = addEntry(t, m, "Paneer", "12.50")
	out := xansi.Strip(m.View())
	for _, want := range []string{"Food Item: Paneer", "Price: ₹12.50"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view; got:\n%s", want, out)
		}
	}
	if strings.Contains(out, emptyListText) {
		t.Fatalf("expected empty state to disappear")
	}
}

func TestView_RowShowsExactPrice(t *testing.T) {
	m := newTestModel(t, config.Defaults())

	m = addEntry(t, m, "Chai", "12.555")
	if out := xansi.Strip(m.View()); !strings.Contains(out, "Price: ₹12.555") {
		t.Fatalf("expected exact price in row; got:\n%s", out)
	}
}

func TestAdd_HugeExponentPriceAlerts(t *testing.T) {
	m := newTestModel(t, config.Defaults())

	m = addEntry(t, m, "Chai", "1e99999999")
	if m.modal != modalAlert || m.alert.message != "Please enter a valid price." {
		t.Fatalf("expected price alert; modal=%v alert=%+v", m.modal, m.alert)
	}
	if n := len(m.box.view.Entries); n != 0 {
		t.Fatalf("expected nothing committed; got %d entries", n)
	}
}

func TestView_FormModalTitles(t *testing.T) {
	m := newTestModel(t, config.Defaults())

	m = press(t, m, "a")
	if out := xansi.Strip(m.View()); !strings.Contains(out, "Add Food Item") || !strings.Contains(out, "Food Price:") {
		t.Fatalf("expected add form; got:\n%s", out)
	}
	m = typeText(t, m, "Dal")
	m = press(t, m, "tab")
	m = typeText(t, m, "8")
	m = press(t, m, "ctrl+s", "e")
	if out := xansi.Strip(m.View()); !strings.Contains(out, "Edit Food Item") {
		t.Fatalf("expected edit form; got:\n%s", out)
	}
}
