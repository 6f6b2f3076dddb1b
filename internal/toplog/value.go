package toplog

import (
	"errors"
	"strconv"
)

// Kind discriminates the two cell variants.
type Kind uint8

const (
	// KindNumber is a cell that parsed as a floating-point number.
	KindNumber Kind = iota
	// KindText is a cell kept verbatim.
	KindText
)

// String returns "number" or "text".
func (k Kind) String() string {
	if k == KindNumber {
		return "number"
	}
	return "text"
}

// Value is a single parsed cell: either a number or the original text.
type Value struct {
	kind Kind
	num  float64
	text string
}

// NumberValue returns a numeric cell.
func NumberValue(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// TextValue returns a text cell.
func TextValue(s string) Value {
	return Value{kind: KindText, text: s}
}

// ParseValue converts a token to a number when strconv accepts it as a
// floating-point literal and keeps it as text otherwise. Out-of-range
// literals become ±Inf.
func ParseValue(token string) Value {
	f, err := strconv.ParseFloat(token, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return NumberValue(f)
	}
	return TextValue(token)
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNumber reports whether v is numeric.
func (v Value) IsNumber() bool { return v.kind == KindNumber }

// Float returns the numeric payload and true, or 0 and false for text cells.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Text returns the text payload, or "" for numeric cells.
func (v Value) Text() string {
	if v.kind != KindText {
		return ""
	}
	return v.text
}

// String formats the cell for display.
func (v Value) String() string {
	if v.kind == KindNumber {
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	}
	return v.text
}

// Equal reports whether two cells hold the same variant and payload.
// NaN numbers compare equal to each other so datasets stay comparable.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.kind == KindText {
		return v.text == o.text
	}
	if v.num != v.num && o.num != o.num {
		return true
	}
	return v.num == o.num
}
