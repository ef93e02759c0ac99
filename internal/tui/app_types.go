package tui

type view int

const (
	viewMain view = iota
	viewSummary
)

func viewToString(v view) string {
	switch v {
	case viewMain:
		return "main"
	case viewSummary:
		return "summary"
	default:
		return "unknown"
	}
}

type modalKind int

const (
	modalNone modalKind = iota
	modalForm
	modalAlert
)

// pane is which column of the main screen has keyboard focus.
type pane int

const (
	paneList pane = iota
	paneFloating
)

type formFocus int

const (
	formFocusName formFocus = iota
	formFocusPrice
	formFocusSave
)

const formFocusCount = 3

type clipboardDoneMsg struct{ err error }

type flashDoneMsg struct{ seq int }

// alertState is a blocking message box. Dismissing it returns to returnTo.
type alertState struct {
	title    string
	message  string
	returnTo modalKind
}
