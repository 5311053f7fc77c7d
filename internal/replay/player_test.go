package replay

import (
	"testing"

	"ScoreScreenApi/internal/assert"
)

func testPlayer(t *testing.T, roster *Roster) *Player {
	t.Helper()

	player := roster.AddPlayer(1, "Alice")
	player.Region = "us"
	player.Subregion = 1
	player.BnetUID = 123456
	player.PickRace = "Terran"
	player.PlayRace = "Terran"
	player.Color = "Red"
	player.Handicap = 100
	return player
}

func TestPlayerURL(t *testing.T) {
	roster := NewRoster()
	player := testPlayer(t, roster)

	url, err := player.URL()
	assert.NilError(t, err)
	assert.Equal(t, url, "http://us.battle.net/sc2/en/profile/123456/1/Alice/")
}

func TestPlayerURLIncompleteIdentity(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Player)
	}{
		{"missing region", func(p *Player) { p.Region = "" }},
		{"missing uid", func(p *Player) { p.BnetUID = 0 }},
		{"missing subregion", func(p *Player) { p.Subregion = 0 }},
		{"missing name", func(p *Player) { p.Name = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roster := NewRoster()
			player := testPlayer(t, roster)
			tt.mutate(player)

			_, err := player.URL()
			assert.ErrorIs(t, err, ErrIncompleteIdentity)
		})
	}
}

func TestPlayerResultDelegatesToTeam(t *testing.T) {
	roster := NewRoster()
	player := testPlayer(t, roster)

	// No team yet: team-dependent reads must refuse.
	_, err := player.Team()
	assert.ErrorIs(t, err, ErrIllegalState)
	_, err = player.Result()
	assert.ErrorIs(t, err, ErrIllegalState)

	roster.Assign(roster.EnsureTeam(1), player)

	result, err := player.Result()
	assert.NilError(t, err)
	assert.Equal(t, result, ResultUnknown)

	team, err := player.Team()
	assert.NilError(t, err)
	team.Result = ResultWin

	result, err = player.Result()
	assert.NilError(t, err)
	assert.Equal(t, result, ResultWin)
}

func TestPlayerFormat(t *testing.T) {
	tests := []struct {
		name        string
		template    string
		expected    string
		expectedErr error
	}{
		{
			name:     "name and race",
			template: "{name} ({pick_race})",
			expected: "Alice (Terran)",
		},
		{
			name:     "numeric fields",
			template: "{pid}: {handicap}% on {region}/{subregion}",
			expected: "1: 100% on us/1",
		},
		{
			name:     "no placeholders",
			template: "plain text",
			expected: "plain text",
		},
		{
			name:     "empty template",
			template: "",
			expected: "",
		},
		{
			name:        "unknown field",
			template:    "{name} on {team}",
			expectedErr: ErrMissingField,
		},
		{
			name:        "unterminated placeholder",
			template:    "{name} ({pick_race",
			expectedErr: ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roster := NewRoster()
			player := testPlayer(t, roster)

			got, err := player.Format(tt.template)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NilError(t, err)
			assert.Equal(t, got, tt.expected)
		})
	}
}

func TestRosterLookups(t *testing.T) {
	roster := NewRoster()
	testPlayer(t, roster)
	roster.AddObserver(3, "Watcher")

	player, ok := roster.PlayerByPid(1)
	assert.Equal(t, ok, true)
	assert.Equal(t, player.Name, "Alice")

	_, ok = roster.PlayerByPid(9)
	assert.Equal(t, ok, false)

	assert.Equal(t, len(roster.Observers), 1)
	assert.Equal(t, roster.Observers[0].IsObserver, true)
	assert.Equal(t, roster.Observers[0].IsHuman, true)
}
