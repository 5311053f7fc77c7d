package pins

import (
	"strings"
	"testing"

	"ScoreScreenApi/internal/assert"
)

func TestGeneratePin(t *testing.T) {
	seen := make(map[string]bool)

	for range 50 {
		pin := GeneratePin(6)
		assert.Equal(t, len(pin), 6)

		for _, r := range pin {
			if !strings.ContainsRune(string(letterRunes), r) {
				t.Errorf("pin %q contains rune %q outside the pin alphabet", pin, r)
			}
		}

		seen[pin] = true
	}

	if len(seen) < 2 {
		t.Error("expected varied pins across generations")
	}
}

func TestPinMarshalsAsBareString(t *testing.T) {
	pin := Pin{ID: 1, Pin: "a1b2c3", Scope: PinScopeReplays}

	json, err := pin.MarshalJSON()
	assert.NilError(t, err)
	assert.Equal(t, string(json), `"a1b2c3"`)
}
