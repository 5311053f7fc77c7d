package data

import (
	"testing"
	"time"

	"ScoreScreenApi/internal/assert"
	"ScoreScreenApi/internal/attrs"
	"ScoreScreenApi/internal/replay"
	"ScoreScreenApi/internal/validator"
)

func builtRoster(t *testing.T) *replay.Roster {
	t.Helper()

	entries := []replay.RosterEntry{
		{Pid: 1, Name: "Alice", Region: "us", Subregion: 1, BnetUID: 123456, PlayRace: "Terran"},
		{Pid: 2, Name: "Bob", Region: "us", Subregion: 1, BnetUID: 654321, PlayRace: "Zerg"},
		{Pid: 3, Name: "Watcher", Observer: true},
	}
	decoded, errs := attrs.DecodeAll([]attrs.RawRecord{
		{Code: 0x01F4, Owner: 1, Value: []byte("Humn")},
		{Code: 0x0BB9, Owner: 1, Value: []byte("Terr")},
		{Code: 0x0BBA, Owner: 1, Value: []byte("tc01")},
		{Code: 0x0BBB, Owner: 1, Value: []byte("100\x00")},
		{Code: 0x07D2, Owner: 1, Value: []byte("1\x00")},
		{Code: 0x01F4, Owner: 2, Value: []byte("Humn")},
		{Code: 0x0BB9, Owner: 2, Value: []byte("Zerg")},
		{Code: 0x0BBA, Owner: 2, Value: []byte("tc02")},
		{Code: 0x0BBB, Owner: 2, Value: []byte("100\x00")},
		{Code: 0x07D2, Owner: 2, Value: []byte("2\x00")},
	})
	if len(errs) != 0 {
		t.Fatalf("decoding fixture records: %v", errs)
	}

	roster, err := replay.Build(entries, decoded)
	assert.NilError(t, err)
	return roster
}

func TestRosterRowsRoundTrip(t *testing.T) {
	original := builtRoster(t)

	team, _ := original.TeamByNumber(1)
	team.Result = replay.ResultWin
	originalHash, err := team.Hash()
	assert.NilError(t, err)

	rp := &Replay{}
	rp.ApplyRoster(original)

	assert.Equal(t, len(rp.Players), 3)
	assert.Equal(t, len(rp.Teams), 2)

	rebuilt := rp.Roster()

	assert.Equal(t, len(rebuilt.Players), 2)
	assert.Equal(t, len(rebuilt.Observers), 1)

	alice, ok := rebuilt.PlayerByPid(1)
	assert.Equal(t, ok, true)
	assert.Equal(t, alice.Color, "Red")
	assert.Equal(t, alice.Handicap, 100)

	rebuiltTeam, ok := rebuilt.TeamByNumber(1)
	assert.Equal(t, ok, true)
	assert.Equal(t, rebuiltTeam.Result, replay.ResultWin)
	assert.Equal(t, rebuiltTeam.Lineup, "T")

	rebuiltHash, err := rebuiltTeam.Hash()
	assert.NilError(t, err)
	assert.Equal(t, rebuiltHash, originalHash)

	result, err := alice.Result()
	assert.NilError(t, err)
	assert.Equal(t, result, replay.ResultWin)
}

func TestApplyRosterKeepsSlotOrder(t *testing.T) {
	entries := []replay.RosterEntry{
		{Pid: 9, Name: "Zora", Region: "us", Subregion: 1, BnetUID: 111, PlayRace: "Zerg"},
		{Pid: 2, Name: "Avery", Region: "us", Subregion: 1, BnetUID: 222, PlayRace: "Terran"},
		{Pid: 5, Name: "Watcher", Observer: true},
	}
	roster, err := replay.Build(entries, nil)
	assert.NilError(t, err)

	rp := &Replay{}
	rp.ApplyRoster(roster)

	// Rows keep slot order with observers after players, regardless of pid.
	// Reads return rows by insertion id, so stored replays render in this
	// order too.
	names := make([]string, 0, len(rp.Players))
	for _, player := range rp.Players {
		names = append(names, player.Name)
	}
	assert.StringSliceEqual(t, names, []string{"Zora", "Avery", "Watcher"})
	assert.Equal(t, rp.Players[2].IsObserver, true)
}

func TestValidateReplay(t *testing.T) {
	yesterday := time.Now().Add(-24 * time.Hour)

	valid := func() *Replay {
		return &Replay{
			MapName:    "Lost Temple",
			GameLength: "12:34",
			PlayedAt:   yesterday,
			Players: []*ReplayPlayer{
				{Pid: 1, Name: "Alice"},
				{Pid: 2, Name: "Bob"},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(rp *Replay)
		wantKey string
	}{
		{
			name:   "valid replay",
			mutate: func(rp *Replay) {},
		},
		{
			name:    "missing map name",
			mutate:  func(rp *Replay) { rp.MapName = "" },
			wantKey: "map_name",
		},
		{
			name:    "bad game length",
			mutate:  func(rp *Replay) { rp.GameLength = "12m34s" },
			wantKey: "game_length",
		},
		{
			name:    "missing played at",
			mutate:  func(rp *Replay) { rp.PlayedAt = time.Time{} },
			wantKey: "played_at",
		},
		{
			name:    "future played at",
			mutate:  func(rp *Replay) { rp.PlayedAt = time.Now().Add(24 * time.Hour) },
			wantKey: "played_at",
		},
		{
			name:    "no players",
			mutate:  func(rp *Replay) { rp.Players = nil },
			wantKey: "players",
		},
		{
			name: "duplicate pids",
			mutate: func(rp *Replay) {
				rp.Players = append(rp.Players, &ReplayPlayer{Pid: 1, Name: "Clone"})
			},
			wantKey: "players.pid",
		},
		{
			name: "unnamed player",
			mutate: func(rp *Replay) {
				rp.Players[0].Name = ""
			},
			wantKey: "players.name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()
			rp := valid()
			tt.mutate(rp)

			ValidateReplay(v, rp)

			if tt.wantKey == "" {
				assert.Equal(t, v.Valid(), true)
				return
			}
			assert.Equal(t, v.Valid(), false)
			if _, ok := v.Errors[tt.wantKey]; !ok {
				t.Errorf("expected error for key %q, got %v", tt.wantKey, v.Errors)
			}
		})
	}
}

func TestValidateTeamResult(t *testing.T) {
	v := validator.New()
	ValidateTeamResult(v, 1, replay.ResultWin)
	assert.Equal(t, v.Valid(), true)

	v = validator.New()
	ValidateTeamResult(v, 0, replay.ResultWin)
	assert.Equal(t, v.Valid(), false)

	v = validator.New()
	ValidateTeamResult(v, 1, replay.Result("Draw"))
	assert.Equal(t, v.Valid(), false)
}

func TestValidateReplaysFilter(t *testing.T) {
	base := func() ReplaysFilter {
		return ReplaysFilter{
			Filters: Filters{
				Page:         1,
				PageSize:     20,
				Sort:         "pin",
				SortSafeList: []string{"pin", "-pin"},
			},
		}
	}

	t.Run("valid filter", func(t *testing.T) {
		v := validator.New()
		ValidateReplaysFilter(v, base())
		assert.Equal(t, v.Valid(), true)
	})

	t.Run("date before release", func(t *testing.T) {
		v := validator.New()
		f := base()
		tooEarly := time.Date(2009, 1, 1, 0, 0, 0, 0, time.UTC)
		f.AfterDate = &tooEarly
		ValidateReplaysFilter(v, f)
		assert.Equal(t, v.Valid(), false)
	})

	t.Run("inverted range", func(t *testing.T) {
		v := validator.New()
		f := base()
		later := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		earlier := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		f.AfterDate = &later
		f.BeforeDate = &earlier
		ValidateReplaysFilter(v, f)
		assert.Equal(t, v.Valid(), false)
	})

	t.Run("unknown category", func(t *testing.T) {
		v := validator.New()
		f := base()
		f.Category = "Ranked"
		ValidateReplaysFilter(v, f)
		assert.Equal(t, v.Valid(), false)
	})

	t.Run("unknown race", func(t *testing.T) {
		v := validator.New()
		f := base()
		f.Races = []string{"Xel'Naga"}
		ValidateReplaysFilter(v, f)
		assert.Equal(t, v.Valid(), false)
	})
}
