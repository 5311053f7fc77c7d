package attrs

import (
	"fmt"
	"strconv"
)

// transform converts a null-stripped raw value into its final Value. Exactly
// two implementations exist, tableLookup and computed; a nil transform on a
// table entry means the stripped text is kept as-is.
type transform interface {
	apply(raw string) (Value, error)
}

// tableLookup resolves the raw value as a key into a secondary named-code
// table. A key absent from the table is a decode failure, never a silent
// passthrough.
type tableLookup struct {
	table map[string]string
}

func (t tableLookup) apply(raw string) (Value, error) {
	name, ok := t.table[raw]
	if !ok {
		return Value{}, fmt.Errorf("%w: no table entry for %q", ErrUnknownCode, raw)
	}
	return TextValue(name), nil
}

// computed derives an integer from the raw value.
type computed struct {
	fn func(raw string) (int64, error)
}

func (c computed) apply(raw string) (Value, error) {
	n, err := c.fn(raw)
	if err != nil {
		return Value{}, err
	}
	return IntValue(n), nil
}

// firstDigit parses the leading character of the raw value as a decimal
// digit. The team-count attributes store their value this way: "2\x00\x00"
// strips to "2" and decodes to 2.
func firstDigit(raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: empty value", ErrBadValue)
	}
	n, err := strconv.ParseInt(raw[:1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q does not start with a digit", ErrBadValue, raw)
	}
	return n, nil
}
