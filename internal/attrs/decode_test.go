package attrs

import (
	"encoding/json"
	"testing"

	"ScoreScreenApi/internal/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name         string
		record       RawRecord
		expectedName string
		expectedText string
		expectedInt  int64
		intKind      bool
		expectedErr  error
	}{
		{
			name:         "race lookup",
			record:       RawRecord{Code: 0x0BB9, Owner: 1, Value: []byte("Terr\x00\x00")},
			expectedName: "Race",
			expectedText: "Terran",
		},
		{
			name:         "player type lookup",
			record:       RawRecord{Code: 0x01F4, Owner: 3, Value: []byte("Humn")},
			expectedName: "Player Type",
			expectedText: "Human",
		},
		{
			name:         "category lookup",
			record:       RawRecord{Code: 0x0BC1, Owner: 16, Value: []byte("Amm\x00")},
			expectedName: "Category",
			expectedText: "Ladder",
		},
		{
			name:         "game type lookup",
			record:       RawRecord{Code: 0x07D1, Owner: 16, Value: []byte("FFA\x00")},
			expectedName: "Game Type",
			expectedText: "Free For All",
		},
		{
			name:         "color lookup",
			record:       RawRecord{Code: 0x0BBA, Owner: 2, Value: []byte("tc02")},
			expectedName: "Color",
			expectedText: "Blue",
		},
		{
			name:         "difficulty lookup",
			record:       RawRecord{Code: 0x0BBC, Owner: 4, Value: []byte("VyEy")},
			expectedName: "Difficulty",
			expectedText: "Very easy",
		},
		{
			name:         "speed lookup",
			record:       RawRecord{Code: 0x0BB8, Owner: 16, Value: []byte("Fasr")},
			expectedName: "Game Speed",
			expectedText: "Faster",
		},
		{
			name:         "team number computes from first character",
			record:       RawRecord{Code: 0x07D2, Owner: 1, Value: []byte("2\x00")},
			expectedName: "Teams1v1",
			expectedInt:  2,
			intKind:      true,
		},
		{
			name:         "handicap keeps stripped text",
			record:       RawRecord{Code: 0x0BBB, Owner: 1, Value: []byte("100\x00")},
			expectedName: "Handicap",
			expectedText: "100",
		},
		{
			name:         "unknown code keeps stripped value",
			record:       RawRecord{Code: 0x9999, Owner: 1, Value: []byte("cUsT\x00\x00")},
			expectedName: "Unknown",
			expectedText: "cUsT",
		},
		{
			name:         "interior nulls survive stripping",
			record:       RawRecord{Code: 0x9999, Owner: 1, Value: []byte("a\x00b\x00\x00")},
			expectedName: "Unknown",
			expectedText: "a\x00b",
		},
		{
			name:         "all-null value strips to empty",
			record:       RawRecord{Code: 0x9999, Owner: 1, Value: []byte("\x00\x00\x00\x00")},
			expectedName: "Unknown",
			expectedText: "",
		},
		{
			name:        "race value missing from table",
			record:      RawRecord{Code: 0x0BB9, Owner: 1, Value: []byte("Xyzt")},
			expectedErr: ErrUnknownCode,
		},
		{
			name:        "team number with empty value",
			record:      RawRecord{Code: 0x07D2, Owner: 1, Value: []byte("\x00\x00")},
			expectedErr: ErrBadValue,
		},
		{
			name:        "team number without leading digit",
			record:      RawRecord{Code: 0x07D2, Owner: 1, Value: []byte("T\x00")},
			expectedErr: ErrBadValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr, err := Decode(tt.record)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NilError(t, err)
			assert.Equal(t, attr.Name, tt.expectedName)
			assert.Equal(t, attr.Code, tt.record.Code)
			assert.Equal(t, attr.Owner, tt.record.Owner)
			if tt.intKind {
				assert.Equal(t, attr.Value.Kind(), KindInt)
				assert.Equal(t, attr.Value.Int(), tt.expectedInt)
			} else {
				assert.Equal(t, attr.Value.Kind(), KindText)
				assert.Equal(t, attr.Value.Text(), tt.expectedText)
			}
		})
	}
}

func TestDecodeAllCollectsFailures(t *testing.T) {
	records := []RawRecord{
		{Code: 0x0BB9, Owner: 1, Value: []byte("Prot")},
		{Code: 0x0BB9, Owner: 2, Value: []byte("Zzzz")},
		{Code: 0x0BC1, Owner: 16, Value: []byte("Priv")},
	}

	decoded, errs := DecodeAll(records)

	assert.Equal(t, len(decoded), 2)
	assert.Equal(t, len(errs), 1)
	assert.ErrorIs(t, errs[0], ErrUnknownCode)
	assert.Equal(t, decoded[0].Value.Text(), "Protoss")
	assert.Equal(t, decoded[1].Value.Text(), "Private")
}

func TestGroupByOwner(t *testing.T) {
	decoded, errs := DecodeAll([]RawRecord{
		{Code: 0x0BB9, Owner: 1, Value: []byte("Terr")},
		{Code: 0x0BC1, Owner: 16, Value: []byte("Amm\x00")},
		{Code: 0x0BBA, Owner: 1, Value: []byte("tc01")},
		{Code: 0x0BB8, Owner: 16, Value: []byte("Norm")},
	})
	assert.Equal(t, len(errs), 0)

	grouped := GroupByOwner(decoded)

	assert.Equal(t, len(grouped), 2)
	assert.Equal(t, len(grouped[1]), 2)
	assert.Equal(t, grouped[1][0].Name, "Race")
	assert.Equal(t, grouped[1][1].Name, "Color")
	assert.Equal(t, len(grouped[16]), 2)
	assert.Equal(t, grouped[16][0].Name, "Category")
}

func TestFindByName(t *testing.T) {
	decoded, _ := DecodeAll([]RawRecord{
		{Code: 0x0BB8, Owner: 16, Value: []byte("Fast")},
		{Code: 0x07D1, Owner: 16, Value: []byte("2v2\x00")},
	})

	attr, ok := FindByName(decoded, NameGameType)
	assert.Equal(t, ok, true)
	assert.Equal(t, attr.Value.Text(), "2v2")

	_, ok = FindByName(decoded, NameRace)
	assert.Equal(t, ok, false)
}

func TestValueJSON(t *testing.T) {
	textJSON, err := TextValue("Terran").MarshalJSON()
	assert.NilError(t, err)
	assert.Equal(t, string(textJSON), `"Terran"`)

	intJSON, err := IntValue(2).MarshalJSON()
	assert.NilError(t, err)
	assert.Equal(t, string(intJSON), "2")

	// Unknown codes keep whatever bytes the record carried, control characters
	// included, and those still have to render as legal JSON.
	attr, err := Decode(RawRecord{Code: 0x9999, Owner: 1, Value: []byte{0x01, 'a', 0x00, 0x00}})
	assert.NilError(t, err)
	assert.Equal(t, attr.Value.Text(), "\x01a")

	controlJSON, err := json.Marshal(attr.Value)
	assert.NilError(t, err)
	want, err := json.Marshal("\x01a")
	assert.NilError(t, err)
	assert.Equal(t, string(controlJSON), string(want))
}

func TestValueString(t *testing.T) {
	assert.Equal(t, TextValue("Ladder").String(), "Ladder")
	assert.Equal(t, IntValue(14).String(), "14")

	var zero Value
	assert.Equal(t, zero.Kind(), KindText)
	assert.Equal(t, zero.String(), "")
}

func TestLookupCoversEveryFormat(t *testing.T) {
	formats := map[uint16]string{
		0x07D2: "Teams1v1",
		0x07D3: "Teams2v2",
		0x07D4: "Teams3v3",
		0x07D5: "Teams4v4",
		0x07D6: "TeamsFFA",
		0x07D7: "Teams5v5",
	}

	for code, name := range formats {
		entry, ok := Lookup(code)
		assert.Equal(t, ok, true)
		assert.Equal(t, entry.Name, name)

		attr, err := Decode(RawRecord{Code: code, Owner: 2, Value: []byte("1\x00")})
		assert.NilError(t, err)
		assert.Equal(t, attr.Value.Int(), int64(1))
	}

	_, ok := Lookup(0x07D8)
	assert.Equal(t, ok, false)
}
