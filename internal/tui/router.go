package tui

import (
	"fmt"

	"foodlist-cli/internal/handoff"
)

// navigation is a view switch requested by the session, applied by Update
// once the command that triggered it returns.
type navigation struct {
	view   string
	params handoff.Params
}

// router is the TUI's handoff.Navigator.
type router struct {
	pending *navigation
}

func (r *router) Navigate(view string, params handoff.Params) error {
	switch view {
	case handoff.ViewFinalFoodList:
		if _, ok := params.FoodItems(); !ok {
			return fmt.Errorf("%s: missing %s", view, handoff.ParamFoodItems)
		}
	case handoff.ViewMainScreen:
	default:
		return fmt.Errorf("unknown view %q", view)
	}
	r.pending = &navigation{view: view, params: params}
	return nil
}

func (r *router) take() (navigation, bool) {
	if r.pending == nil {
		return navigation{}, false
	}
	n := *r.pending
	r.pending = nil
	return n, true
}
