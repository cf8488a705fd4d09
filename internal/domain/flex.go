package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

var jsonNull = []byte("null")

// Text is a loosely-typed JSON scalar kept in its textual form. Strings,
// numbers and booleans are accepted; null, objects and arrays leave it unset
// rather than failing the surrounding decode.
type Text struct {
	Value string
	Valid bool
}

// NewText returns a set Text.
func NewText(v string) Text {
	return Text{Value: v, Valid: true}
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *Text) UnmarshalJSON(b []byte) error {
	*t = Text{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, jsonNull) {
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = NewText(s)
	case '{', '[':
		// Structured values have no display form.
	default:
		*t = NewText(string(b))
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (t Text) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return jsonNull, nil
	}
	return json.Marshal(t.Value)
}

// String returns the value, or "" when unset.
func (t Text) String() string {
	return t.Value
}

// Present reports whether the value is set and not blank.
func (t Text) Present() bool {
	return t.Valid && strings.TrimSpace(t.Value) != ""
}

// Coalesce returns the first set value, treating only unset values as missing.
func Coalesce(values ...Text) Text {
	for _, v := range values {
		if v.Valid {
			return v
		}
	}
	return Text{}
}

// FirstPresent returns the first value that is set and not blank.
func FirstPresent(values ...Text) Text {
	for _, v := range values {
		if v.Present() {
			return v
		}
	}
	return Text{}
}

// Number is a JSON number that may also arrive as a numeric string.
// Anything else leaves it unset.
type Number struct {
	Value float64
	Valid bool
}

// NewNumber returns a set Number.
func NewNumber(v float64) Number {
	return Number{Value: v, Valid: true}
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, jsonNull) {
		return nil
	}
	raw := string(b)
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		*n = NewNumber(v)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return json.Marshal(n.Value)
}

// String formats the number without trailing zeros, or "" when unset.
func (n Number) String() string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// Int returns the value truncated to an int, or 0 when unset.
func (n Number) Int() int {
	if !n.Valid {
		return 0
	}
	return int(n.Value)
}

// Flag is a JSON boolean that tolerates "true"/"false" strings and 0/1.
type Flag bool

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *Flag) UnmarshalJSON(b []byte) error {
	s := strings.ToLower(strings.Trim(strings.TrimSpace(string(b)), `"`))
	*f = Flag(s == "true" || s == "1" || s == "yes")
	return nil
}
