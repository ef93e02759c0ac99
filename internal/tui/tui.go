// Package tui is the interactive food list: the main screen with its form and
// alert modals, and the read-only final list.
package tui

import (
	"fmt"
	"log/slog"

	"foodlist-cli/internal/config"
	"foodlist-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// Run blocks until the user quits. It returns the list from the last
// finalize of the run, or nil if the user never finalized.
func Run(cfg config.Config, log *slog.Logger) (model.Snapshot, error) {
	applyThemePreference()
	applyColorProfilePreference()
	applyGlyphPreference(cfg.Glyphs)

	m := newAppModel(cfg, log)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, fmt.Errorf("run tui: %w", err)
	}
	fm, ok := final.(appModel)
	if !ok {
		return nil, nil
	}
	snap, _ := fm.Finalized()
	return snap, nil
}
