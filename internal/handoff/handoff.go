// Package handoff forwards a finished list to the summary view.
package handoff

import (
	"fmt"

	"foodlist-cli/internal/model"
	"foodlist-cli/internal/rules"
)

const (
	ViewMainScreen    = "MainScreen"
	ViewFinalFoodList = "FinalFoodList"

	ParamFoodItems = "foodItems"
)

// Params is the payload carried by a navigation.
type Params map[string]any

// FoodItems extracts the finalized list from p.
func (p Params) FoodItems() (model.Snapshot, bool) {
	s, ok := p[ParamFoodItems].(model.Snapshot)
	return s, ok
}

// Navigator is the host's view-switching capability.
type Navigator interface {
	Navigate(view string, params Params) error
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func(view string, params Params) error

func (f NavigatorFunc) Navigate(view string, params Params) error { return f(view, params) }

type Gateway struct {
	nav Navigator
}

func NewGateway(nav Navigator) *Gateway {
	return &Gateway{nav: nav}
}

// Finalize refuses an empty list with rules.ErrEmptyList; otherwise it asks
// the navigator, exactly once, to show the summary view for snapshot. Entry
// contents are not re-checked.
func (g *Gateway) Finalize(snapshot model.Snapshot) error {
	if len(snapshot) == 0 {
		return rules.EmptyList()
	}
	params := Params{ParamFoodItems: snapshot.Clone()}
	if err := g.nav.Navigate(ViewFinalFoodList, params); err != nil {
		return fmt.Errorf("navigate to %s: %w", ViewFinalFoodList, err)
	}
	return nil
}
