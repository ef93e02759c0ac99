package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Entry is a named, priced line item. Entries are values: the list that holds
// them identifies each one by its position only.
type Entry struct {
	Name  string
	Price decimal.Decimal
}

// entryJSON keeps the wire shape handed to the summary view:
// {"foodItem": "...", "price": 12.5}.
type entryJSON struct {
	Name  string      `json:"foodItem"`
	Price json.Number `json:"price"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryJSON{Name: e.Name, Price: json.Number(e.Price.String())})
}

// Snapshot is an ordered, read-only copy of a list at a point in time.
type Snapshot []Entry

// Clone returns a copy that shares no backing array with s.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return Snapshot{}
	}
	out := make(Snapshot, len(s))
	copy(out, s)
	return out
}

func (s Snapshot) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range s {
		total = total.Add(e.Price)
	}
	return total
}

func (s Snapshot) Len() int { return len(s) }
