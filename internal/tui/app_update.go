package tui

import (
	"fmt"
	"log/slog"
	"time"

	"foodlist-cli/internal/form"
	"foodlist-cli/internal/handoff"
	"foodlist-cli/internal/rules"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const minibufferFlashFor = 2 * time.Second

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.seenWindowSize = true
		m.resizeList()
		return m, nil

	case clipboardDoneMsg:
		if msg.err != nil {
			m.log.Warn("clipboard copy failed", slog.Any("err", msg.err))
			return m, m.flash("Copy failed: " + msg.err.Error())
		}
		return m, m.flash("Copied JSON to clipboard")

	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.minibuffer = ""
		}
		return m, nil

	case tea.KeyMsg:
		m.log.Debug("key", slog.String("key", msg.String()), slog.String("view", viewToString(m.view)))
		var cmd tea.Cmd
		switch {
		case m.modal == modalAlert:
			m.updateAlert(msg)
		case m.modal == modalForm:
			cmd = m.updateForm(msg)
		case m.view == viewSummary:
			cmd = m.updateSummary(msg)
		default:
			cmd = m.updateMain(msg)
		}
		m.afterCommand()
		return m, cmd
	}

	if m.view == viewMain && m.modal == modalNone {
		var cmd tea.Cmd
		m.entriesList, cmd = m.entriesList.Update(msg)
		return m, cmd
	}
	return m, nil
}

// afterCommand reconciles UI-only state with the session after a command ran.
func (m *appModel) afterCommand() {
	m.syncList()
	if m.modal == modalForm && m.box.view.Mode == form.Closed {
		// The edited entry went away underneath the form.
		m.closeForm()
	}
	m.applyNavigation()
}

func (m *appModel) applyNavigation() {
	nav, ok := m.router.take()
	if !ok {
		return
	}
	switch nav.view {
	case handoff.ViewFinalFoodList:
		items, _ := nav.params.FoodItems()
		m.summary = items
		m.finalized = items
		m.view = viewSummary
	case handoff.ViewMainScreen:
		m.view = viewMain
	}
	m.log.Debug("navigate", slog.String("view", nav.view))
}

func (m *appModel) updateMain(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Add):
		m.sess.OpenCreate()
		m.openForm()
		return nil
	case key.Matches(msg, m.keys.Finalize):
		m.finalize()
		return nil
	case key.Matches(msg, m.keys.Lane):
		if len(m.box.view.Floating) == 0 {
			return nil
		}
		if m.pane == paneList {
			m.setPane(paneFloating)
		} else {
			m.setPane(paneList)
		}
		return nil
	}

	if m.pane == paneFloating {
		return m.updateLane(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Edit):
		i := m.selectedIndex()
		if i < 0 {
			return nil
		}
		if err := m.sess.OpenEdit(i); err != nil {
			m.showMinibuffer(err.Error())
			return nil
		}
		m.openForm()
		return nil
	case key.Matches(msg, m.keys.Delete):
		i := m.selectedIndex()
		if i < 0 {
			return nil
		}
		if err := m.sess.Remove(i); err != nil {
			m.showMinibuffer(err.Error())
		}
		return nil
	case key.Matches(msg, m.keys.Pin):
		i := m.selectedIndex()
		if i < 0 {
			return nil
		}
		tok, err := m.sess.Spawn(i)
		if err != nil {
			m.showMinibuffer(err.Error())
			return nil
		}
		return m.flash("Pinned " + tok.Entry.Name)
	}

	var cmd tea.Cmd
	m.entriesList, cmd = m.entriesList.Update(msg)
	return cmd
}

func (m *appModel) updateLane(msg tea.KeyMsg) tea.Cmd {
	n := len(m.box.view.Floating)
	switch {
	case key.Matches(msg, m.keys.Release):
		m.sess.Release(m.laneIdx)
	case msg.Type == tea.KeyEsc:
		m.setPane(paneList)
	default:
		switch msg.String() {
		case "up", "k", "ctrl+p":
			if m.laneIdx > 0 {
				m.laneIdx--
			}
		case "down", "j", "ctrl+n":
			if m.laneIdx < n-1 {
				m.laneIdx++
			}
		}
	}
	return nil
}

func (m *appModel) finalize() {
	err := m.sess.Finalize()
	if err == nil {
		return
	}
	if ve, ok := rules.AsValidation(err); ok {
		m.showAlert(ve, modalNone)
		return
	}
	m.log.Error("finalize failed", slog.Any("err", err))
	m.showMinibuffer(fmt.Sprintf("Could not open the final list: %v", err))
}

func (m *appModel) openForm() {
	d := m.box.view.Draft
	m.nameIn.SetValue(d.NameText)
	m.nameIn.CursorEnd()
	m.priceIn.SetValue(d.PriceText)
	m.priceIn.CursorEnd()
	m.modal = modalForm
	m.setFormFocus(formFocusName)
}

func (m *appModel) closeForm() {
	m.modal = modalNone
	m.nameIn.Blur()
	m.priceIn.Blur()
	m.nameIn.SetValue("")
	m.priceIn.SetValue("")
}

func (m *appModel) setFormFocus(f formFocus) {
	m.focus = f
	m.nameIn.Blur()
	m.priceIn.Blur()
	switch f {
	case formFocusName:
		m.nameIn.Focus()
	case formFocusPrice:
		m.priceIn.Focus()
	}
}

func (m *appModel) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.formKeys.Cancel):
		m.sess.Toggle()
		m.closeForm()
		return nil
	case key.Matches(msg, m.formKeys.Save):
		m.commitForm()
		return nil
	case key.Matches(msg, m.formKeys.Submit):
		if m.focus == formFocusName {
			m.setFormFocus(formFocusPrice)
			return nil
		}
		m.commitForm()
		return nil
	case key.Matches(msg, m.formKeys.Next):
		m.setFormFocus((m.focus + 1) % formFocusCount)
		return nil
	case key.Matches(msg, m.formKeys.Prev):
		m.setFormFocus((m.focus + formFocusCount - 1) % formFocusCount)
		return nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case formFocusName:
		m.nameIn, cmd = m.nameIn.Update(msg)
		m.sess.SetName(m.nameIn.Value())
	case formFocusPrice:
		m.priceIn, cmd = m.priceIn.Update(msg)
		m.sess.SetPrice(m.priceIn.Value())
	}
	return cmd
}

func (m *appModel) commitForm() {
	creating := m.box.view.Mode == form.Creating
	err := m.sess.Commit()
	if err == nil {
		m.closeForm()
		m.syncList()
		if creating {
			m.entriesList.Select(len(m.box.view.Entries) - 1)
		}
		return
	}
	if ve, ok := rules.AsValidation(err); ok {
		m.showAlert(ve, modalForm)
		return
	}
	// Not open any more; nothing to save.
	m.log.Debug("commit ignored", slog.Any("err", err))
	m.closeForm()
}

func (m *appModel) showAlert(ve *rules.ValidationError, returnTo modalKind) {
	m.alert = alertState{title: ve.Title, message: ve.Message, returnTo: returnTo}
	m.modal = modalAlert
}

func (m *appModel) updateAlert(msg tea.KeyMsg) {
	switch msg.String() {
	case "enter", "esc", " ", "ctrl+g":
	default:
		return
	}
	m.modal = m.alert.returnTo
	m.alert = alertState{}
	if m.modal == modalForm {
		m.setFormFocus(m.focus)
	}
}

func (m *appModel) updateSummary(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.sumKeys.Quit):
		return tea.Quit
	case key.Matches(msg, m.sumKeys.Copy):
		s, err := summaryJSON(m.summary)
		if err != nil {
			m.showMinibuffer(err.Error())
			return nil
		}
		return copyToClipboardCmd(s)
	case key.Matches(msg, m.sumKeys.Back):
		m.view = viewMain
	case key.Matches(msg, m.sumKeys.New):
		m.sess.Reset()
		m.summary = nil
		m.setPane(paneList)
		m.view = viewMain
	}
	return nil
}

func (m *appModel) showMinibuffer(s string) {
	m.minibuffer = s
}

// flash shows s in the minibuffer and clears it after a short delay unless
// something newer replaced it.
func (m *appModel) flash(s string) tea.Cmd {
	m.flashSeq++
	m.minibuffer = s
	seq := m.flashSeq
	return tea.Tick(minibufferFlashFor, func(time.Time) tea.Msg { return flashDoneMsg{seq: seq} })
}
