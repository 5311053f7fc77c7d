package attrs

import (
	"encoding/json"
	"strconv"
)

// Kind discriminates the two shapes a decoded attribute value can take.
type Kind int

const (
	KindText Kind = iota
	KindInt
)

// Value is the decoded value of an attribute: display text, possibly resolved
// through a named-code table, or a small integer extracted from the raw
// bytes. The zero Value is empty text.
type Value struct {
	kind Kind
	text string
	num  int64
}

func TextValue(s string) Value {
	return Value{kind: KindText, text: s}
}

func IntValue(n int64) Value {
	return Value{kind: KindInt, num: n}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Text returns the textual value. Only meaningful when Kind is KindText.
func (v Value) Text() string {
	return v.text
}

// Int returns the numeric value. Only meaningful when Kind is KindInt.
func (v Value) Int() int64 {
	return v.num
}

func (v Value) String() string {
	if v.kind == KindInt {
		return strconv.FormatInt(v.num, 10)
	}
	return v.text
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindInt {
		jsonValue := strconv.FormatInt(v.num, 10)
		return []byte(jsonValue), nil
	}
	// Text from an unknown-code record can hold arbitrary bytes, which need
	// JSON string escaping rather than Go quoting.
	return json.Marshal(v.text)
}
