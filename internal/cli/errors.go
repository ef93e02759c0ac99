package cli

import "fmt"

type itemSyntaxError struct {
	raw string
}

func (e itemSyntaxError) Error() string {
	return fmt.Sprintf("invalid --item %q (want name=price)", e.raw)
}

func errItemSyntax(raw string) error {
	return itemSyntaxError{raw: raw}
}

type unknownViewError struct {
	view string
}

func (e unknownViewError) Error() string {
	return fmt.Sprintf("cannot show view %q outside the TUI", e.view)
}
