package tui

import (
	"log/slog"

	"foodlist-cli/internal/config"
	"foodlist-cli/internal/model"
	"foodlist-cli/internal/session"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	outerMargin = 2
	maxContentW = 96
	// laneW is the width of the floating lane when it has tokens.
	laneW = 30
)

// sessionBox receives session views from the subscription. appModel is copied
// on every Update, so the box lives behind a pointer.
type sessionBox struct {
	view session.View
	rev  int
}

type appModel struct {
	cfg config.Config
	log *slog.Logger

	sess   *session.Session
	router *router
	box    *sessionBox
	// seenRev is the box revision the list rows were last built from.
	seenRev int

	width  int
	height int
	// The first WindowSizeMsg is initial sizing, not a user resize.
	seenWindowSize bool

	view view

	entriesList list.Model
	listActive  *bool

	pane     pane
	laneIdx  int
	modal    modalKind
	alert    alertState
	focus    formFocus
	nameIn   textinput.Model
	priceIn  textinput.Model
	keys     mainKeyMap
	formKeys formKeyMap
	sumKeys  summaryKeyMap

	// summary is the payload of the last navigation to the summary view.
	summary model.Snapshot
	// finalized survives "back" and "new list" so the caller can print it on quit.
	finalized model.Snapshot

	minibuffer string
	flashSeq   int
}

func newAppModel(cfg config.Config, log *slog.Logger) appModel {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	m := appModel{
		cfg:        cfg,
		log:        log,
		router:     &router{},
		box:        &sessionBox{},
		listActive: new(bool),
		view:       viewMain,
		keys:       newMainKeyMap(),
		formKeys:   newFormKeyMap(),
		sumKeys:    newSummaryKeyMap(),
	}
	*m.listActive = true
	m.keys.Pin.SetEnabled(cfg.Overlay.EnableSpawn)

	box := m.box
	m.sess = session.New(m.router, session.WithLogger(log.With("component", "session")))
	m.sess.Subscribe(func(v session.View) {
		box.view = v
		box.rev++
	})
	box.view = m.sess.View()

	m.entriesList = newEntryList(m.listActive)

	m.nameIn = textinput.New()
	m.nameIn.Placeholder = "Enter Food Item Name"
	m.nameIn.CharLimit = 120
	m.nameIn.Width = 40

	m.priceIn = textinput.New()
	m.priceIn.Placeholder = "Enter Food Item Price"
	m.priceIn.CharLimit = 24
	m.priceIn.Width = 40

	m.syncList()
	return m
}

// syncList rebuilds list rows when the session has published a newer view.
func (m *appModel) syncList() {
	if m.seenRev == m.box.rev && m.seenRev != 0 {
		return
	}
	m.seenRev = m.box.rev
	idx := m.entriesList.Index()
	m.entriesList.SetItems(entryItems(m.box.view.Entries, m.cfg.Currency))
	if n := len(m.box.view.Entries); n > 0 {
		if idx >= n {
			idx = n - 1
		}
		if idx < 0 {
			idx = 0
		}
		m.entriesList.Select(idx)
	}
	if n := len(m.box.view.Floating); m.laneIdx >= n {
		m.laneIdx = n - 1
		if m.laneIdx < 0 {
			m.laneIdx = 0
		}
	}
	if len(m.box.view.Floating) == 0 && m.pane == paneFloating {
		m.setPane(paneList)
	}
	if m.width > 0 {
		m.resizeList()
	}
}

func (m *appModel) setPane(p pane) {
	m.pane = p
	*m.listActive = p == paneList
}

// selectedIndex is the list position under the cursor, or -1 for an empty list.
func (m appModel) selectedIndex() int {
	if len(m.box.view.Entries) == 0 {
		return -1
	}
	it, ok := m.entriesList.SelectedItem().(entryItem)
	if !ok {
		return -1
	}
	return it.index
}

func (m *appModel) resizeList() {
	w := contentWidth(m.width)
	if len(m.box.view.Floating) > 0 {
		w -= laneW + 1
	}
	// Header (2 lines), footer (2 lines), minibuffer and margins.
	h := m.height - 8
	if h < 3 {
		h = 3
	}
	m.entriesList.SetSize(w, h)
}

// Finalized returns the list from the last successful finalize, if any.
func (m appModel) Finalized() (model.Snapshot, bool) {
	return m.finalized, len(m.finalized) > 0
}
