package models

import "strconv"

// Label identifies a sheet, a row key, or a column. Spreadsheet tooling
// addresses things either by name or by position, so a Label is either a
// string or an integer. The zero value is the empty string label.
type Label struct {
	Text    string `json:"text,omitempty"`
	Number  int    `json:"number,omitempty"`
	Numeric bool   `json:"numeric,omitempty"`
}

// StringLabel returns a Label holding a name.
func StringLabel(s string) Label {
	return Label{Text: s}
}

// IntLabel returns a Label holding a position.
func IntLabel(n int) Label {
	return Label{Number: n, Numeric: true}
}

// String renders the label for display. Note that IntLabel(3) and
// StringLabel("3") render identically but do not compare equal.
func (l Label) String() string {
	if l.Numeric {
		return strconv.Itoa(l.Number)
	}
	return l.Text
}
