package cli

import (
	"fmt"
	"strings"

	"foodlist-cli/internal/handoff"
	"foodlist-cli/internal/logging"
	"foodlist-cli/internal/session"

	"github.com/spf13/cobra"
)

func newRenderCmd(app *App) *cobra.Command {
	var items []string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Build a list from --item flags and print the final list",
		Example: strings.TrimSpace(`
  foodlist render --item "Rice=12.50" --item "Dal=8"
  foodlist render --item "Chai=1" --format edn --pretty
  foodlist render --item "Chai=1" --item "Vada=5" --format table
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, app, items)
		},
	}
	cmd.Flags().StringArrayVar(&items, "item", nil, `Food item as "name=price" (repeatable, kept in order)`)
	return cmd
}

// runRender drives the same session the TUI uses: each item goes through the
// form and its validation, and the final list comes out of the handoff.
func runRender(cmd *cobra.Command, app *App, items []string) error {
	app.initLogging(cmd, cmd.ErrOrStderr())
	log := logging.WithComponent("render")

	var final handoff.Params
	nav := handoff.NavigatorFunc(func(view string, params handoff.Params) error {
		if view != handoff.ViewFinalFoodList {
			return unknownViewError{view: view}
		}
		final = params
		return nil
	})
	s := session.New(nav, session.WithLogger(log))

	for _, raw := range items {
		name, price, ok := splitItem(raw)
		if !ok {
			return writeErr(cmd, errItemSyntax(raw))
		}
		s.OpenCreate()
		s.SetName(name)
		s.SetPrice(price)
		if err := s.Commit(); err != nil {
			return writeErr(cmd, fmt.Errorf("item %q: %w", raw, err))
		}
	}

	if err := s.Finalize(); err != nil {
		return writeErr(cmd, err)
	}
	snap, _ := final.FoodItems()
	return writeFoodItems(cmd, app, snap)
}

// splitItem splits at the last "=" so names may contain one.
func splitItem(raw string) (name, price string, ok bool) {
	i := strings.LastIndex(raw, "=")
	if i < 0 {
		return "", "", false
	}
	return raw[:i], raw[i+1:], true
}
