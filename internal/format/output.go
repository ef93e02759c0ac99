package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Write writes v in the requested format.
//
// Supported formats:
// - json (default)
// - edn
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "edn":
		return WriteEDN(w, v, pretty)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes strict JSON followed by a newline. Pretty output uses a
// two-space indent, the same layout the summary screen shows.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

// JSONString is WriteJSON into a string, for rendering inside views.
func JSONString(v any, pretty bool) (string, error) {
	var sb strings.Builder
	if err := WriteJSON(&sb, v, pretty); err != nil {
		return "", err
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
