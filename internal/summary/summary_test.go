package summary

import (
	"testing"

	"ScoreScreenApi/internal/assert"
)

func TestGetStats(t *testing.T) {
	ps := NewPlayerSummary(1)
	ps.SetStat("R", 2150)
	ps.SetStat("U", 45)
	ps.SetStat("AUR", 312)

	got, err := ps.GetStats()
	assert.NilError(t, err)

	expected := "Resources: 2150\nUnits: 45\nAverage Unspent Resources: 312"
	assert.Equal(t, got, expected)
}

func TestGetStatsKeepsInsertionOrder(t *testing.T) {
	ps := NewPlayerSummary(1)
	ps.SetStat("WC", 61)
	ps.SetStat("R", 2150)

	got, err := ps.GetStats()
	assert.NilError(t, err)
	assert.Equal(t, got, "Workers Created: 61\nResources: 2150")

	// Re-setting a code updates the value without moving its line.
	ps.SetStat("WC", 64)
	got, err = ps.GetStats()
	assert.NilError(t, err)
	assert.Equal(t, got, "Workers Created: 64\nResources: 2150")
}

func TestGetStatsUnknownCode(t *testing.T) {
	ps := NewPlayerSummary(1)
	ps.SetStat("R", 2150)
	ps.SetStat("XYZ", 7)

	_, err := ps.GetStats()
	assert.ErrorIs(t, err, ErrUnknownStatCode)
}

func TestGetStatsEmpty(t *testing.T) {
	ps := NewPlayerSummary(1)

	got, err := ps.GetStats()
	assert.NilError(t, err)
	assert.Equal(t, got, "")
}

func TestStatAccessors(t *testing.T) {
	ps := NewPlayerSummary(4)
	ps.SetStat("KUC", 83)

	value, ok := ps.Stat("KUC")
	assert.Equal(t, ok, true)
	assert.Equal(t, value, int64(83))

	_, ok = ps.Stat("SB")
	assert.Equal(t, ok, false)

	entries := ps.Stats()
	assert.Equal(t, len(entries), 1)
	assert.Equal(t, entries[0], StatEntry{Code: "KUC", Value: 83})
}

func TestKnownStatCode(t *testing.T) {
	for _, code := range StatCodes() {
		assert.Equal(t, KnownStatCode(code), true)
	}
	assert.Equal(t, KnownStatCode("XYZ"), false)
	assert.Equal(t, KnownStatCode(""), false)
}

func TestPlayerSummaryString(t *testing.T) {
	human := NewPlayerSummary(1)
	human.TeamID = 1
	human.Race = "Terran"
	human.Subregion = 1
	human.BnetID = 123456
	assert.Equal(t, human.String(), "1 - Terran - 1/123456")

	ai := NewPlayerSummary(2)
	ai.TeamID = 2
	ai.Race = "Zerg"
	ai.IsAI = true
	assert.Equal(t, ai.String(), "2 - Zerg - AI")
}
