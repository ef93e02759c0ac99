package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type mainKeyMap struct {
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Finalize key.Binding
	Pin      key.Binding
	Lane     key.Binding
	Release  key.Binding
	Quit     key.Binding
}

func newMainKeyMap() mainKeyMap {
	return mainKeyMap{
		Add:      key.NewBinding(key.WithKeys("a", "+"), key.WithHelp("a", "add food item")),
		Edit:     key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete:   key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		Finalize: key.NewBinding(key.WithKeys("f", "ctrl+f"), key.WithHelp("f", "final food list")),
		Pin:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pin copy")),
		Lane:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "floating")),
		Release:  key.NewBinding(key.WithKeys("r", "enter", " "), key.WithHelp("r", "release")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type formKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Save   key.Binding
	Cancel key.Binding
}

func newFormKeyMap() formKeyMap {
	return formKeyMap{
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next/save")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+g"), key.WithHelp("esc", "close")),
	}
}

type summaryKeyMap struct {
	Copy key.Binding
	Back key.Binding
	New  key.Binding
	Quit key.Binding
}

func newSummaryKeyMap() summaryKeyMap {
	return summaryKeyMap{
		Copy: key.NewBinding(key.WithKeys("y", "c"), key.WithHelp("y", "copy json")),
		Back: key.NewBinding(key.WithKeys("esc", "backspace", "b"), key.WithHelp("esc", "back")),
		New:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new list")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// helpLine renders enabled bindings as "k: desc  k: desc".
func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
