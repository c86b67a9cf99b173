// Package deck models the structured keyword records the property engine
// consumes. Tokenizing raw deck text is the job of an upstream parser; this
// package only carries already-structured records (keyword name plus rows of
// typed items) and can load them from JSON for tooling.
package deck

import (
	"encoding/json"
	"fmt"
)

// Item is one operand of a record row: either a string or a number. The zero
// Item is empty and answers false to both accessors.
type Item struct {
	str *string
	num *float64
}

// String makes a string item.
func String(s string) Item { return Item{str: &s} }

// Number makes a numeric item.
func Number(v float64) Item { return Item{num: &v} }

// Str returns the string payload, if this item is a string.
func (it Item) Str() (string, bool) {
	if it.str == nil {
		return "", false
	}
	return *it.str, true
}

// Float returns the numeric payload, if this item is a number.
func (it Item) Float() (float64, bool) {
	if it.num == nil {
		return 0, false
	}
	return *it.num, true
}

// Int returns the numeric payload as an integer. It fails for strings and for
// numbers with a fractional part.
func (it Item) Int() (int, bool) {
	if it.num == nil {
		return 0, false
	}
	v := *it.num
	n := int(v)
	if float64(n) != v {
		return 0, false
	}
	return n, true
}

// UnmarshalJSON accepts a bare JSON string or number.
func (it *Item) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		it.str = &s
		it.num = nil
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		it.num = &v
		it.str = nil
		return nil
	}
	return fmt.Errorf("deck item must be a string or number, got %s", data)
}

// MarshalJSON emits the payload as a bare string or number.
func (it Item) MarshalJSON() ([]byte, error) {
	if it.str != nil {
		return json.Marshal(*it.str)
	}
	if it.num != nil {
		return json.Marshal(*it.num)
	}
	return nil, fmt.Errorf("cannot marshal empty deck item")
}

// Record is one keyword instruction: a name and zero or more rows of items.
// Assignment keywords carry a single numeric row in flat cell order; edit
// keywords like ADDREG carry one row per edit.
type Record struct {
	Keyword string   `json:"keyword"`
	Rows    [][]Item `json:"rows,omitempty"`
}

// Assignment builds a bulk-assignment record with one numeric row.
func Assignment(keyword string, values ...float64) Record {
	row := make([]Item, len(values))
	for i, v := range values {
		row[i] = Number(v)
	}
	return Record{Keyword: keyword, Rows: [][]Item{row}}
}

// Box builds a BOX record from 1-based inclusive index ranges.
func Box(i1, i2, j1, j2, k1, k2 int) Record {
	row := []Item{
		Number(float64(i1)), Number(float64(i2)),
		Number(float64(j1)), Number(float64(j2)),
		Number(float64(k1)), Number(float64(k2)),
	}
	return Record{Keyword: "BOX", Rows: [][]Item{row}}
}

// EndBox builds an ENDBOX record.
func EndBox() Record { return Record{Keyword: "ENDBOX"} }
