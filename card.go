package finance

import (
	"encoding/json"
	"strings"
)

// Card is a named payment instrument. Names are unique under
// case-insensitive comparison; see Store.CreateCardIfNotExists.
type Card struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SameName reports whether the card's name matches the given one under
// the collection's case-insensitive identity, ignoring surrounding
// whitespace.
func (c Card) SameName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(c.Name), strings.TrimSpace(name))
}

// MarshalJSON implements the json.Marshaler interface for Card with a
// canonical field order.
func (c Card) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", c.ID)
	w.Append("name", c.Name)
	return w.MarshalJSON()
}

var _ json.Marshaler = Card{}
