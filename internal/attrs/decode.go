package attrs

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	ErrUnknownCode = errors.New("unknown attribute code")
	ErrBadValue    = errors.New("malformed attribute value")
)

// UnknownName is the display name given to attributes whose code has no table
// entry. Such attributes are kept, not dropped: their stripped raw value is
// still worth surfacing.
const UnknownName = "Unknown"

// RawRecord is one attribute entry as split out of a replay's attribute block
// by the container parser. Values arrive as fixed-width byte fields padded
// with trailing NULs.
type RawRecord struct {
	Header int    `json:"header"`
	Code   uint16 `json:"code"`
	Owner  int    `json:"owner"`
	Value  []byte `json:"value"`
}

// Attribute is the named, typed form of a RawRecord. Owner is the player slot
// the attribute applies to; slots no player occupies carry game-scoped
// attributes.
type Attribute struct {
	Code  uint16 `json:"code"`
	Owner int    `json:"owner"`
	Name  string `json:"name"`
	Value Value  `json:"value"`
}

// Decode strips the record's trailing NUL padding and resolves it against the
// code table. Unknown codes are not an error; a transform failure is, and the
// caller decides whether to log and move on or abort the block.
func Decode(rec RawRecord) (Attribute, error) {
	raw := string(bytes.TrimRight(rec.Value, "\x00"))

	attr := Attribute{
		Code:  rec.Code,
		Owner: rec.Owner,
		Name:  UnknownName,
		Value: TextValue(raw),
	}

	entry, ok := Lookup(rec.Code)
	if !ok {
		return attr, nil
	}
	attr.Name = entry.Name

	if entry.transform == nil {
		return attr, nil
	}

	value, err := entry.transform.apply(raw)
	if err != nil {
		return Attribute{}, fmt.Errorf("attribute %#04x (%s): %w", rec.Code, entry.Name, err)
	}
	attr.Value = value

	return attr, nil
}

// DecodeAll decodes records in order, collecting per-record failures so one
// malformed attribute never hides the rest of the block.
func DecodeAll(records []RawRecord) ([]Attribute, []error) {
	decoded := make([]Attribute, 0, len(records))
	var errs []error

	for _, rec := range records {
		attr, err := Decode(rec)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		decoded = append(decoded, attr)
	}

	return decoded, errs
}

// GroupByOwner buckets attributes by their owner slot, preserving decode
// order within each bucket.
func GroupByOwner(attributes []Attribute) map[int][]Attribute {
	grouped := make(map[int][]Attribute)
	for _, attr := range attributes {
		grouped[attr.Owner] = append(grouped[attr.Owner], attr)
	}
	return grouped
}

// FindByName returns the first attribute with the given display name.
func FindByName(attributes []Attribute, name string) (Attribute, bool) {
	for _, attr := range attributes {
		if attr.Name == name {
			return attr, true
		}
	}
	return Attribute{}, false
}
