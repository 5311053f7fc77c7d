package replay

import (
	"fmt"
	"strconv"
	"strings"

	"ScoreScreenApi/internal/attrs"
)

// RosterEntry is one person as the details parser hands them over, before any
// attributes are applied.
type RosterEntry struct {
	Pid       int    `json:"pid"`
	Name      string `json:"name"`
	Observer  bool   `json:"observer"`
	Region    string `json:"region"`
	Subregion int    `json:"subregion"`
	BnetUID   int64  `json:"bnet_uid"`
	PlayRace  string `json:"play_race"`
}

// Build assembles a roster from parsed entries and decoded attributes:
// per-slot attributes are applied to their players, teams are grouped from
// the format's team-number attribute, and each team's lineup is fixed.
//
// Attributes owned by slots no entry occupies are left alone; those carry
// game-scoped settings the caller reads directly. A team number of zero
// leaves the player unassigned.
func Build(entries []RosterEntry, attributes []attrs.Attribute) (*Roster, error) {
	roster := NewRoster()
	grouped := attrs.GroupByOwner(attributes)

	for _, entry := range entries {
		if entry.Observer {
			roster.AddObserver(entry.Pid, entry.Name)
			continue
		}

		player := roster.AddPlayer(entry.Pid, entry.Name)
		player.Region = entry.Region
		player.Subregion = entry.Subregion
		player.BnetUID = entry.BnetUID
		player.PlayRace = entry.PlayRace

		teamNumber := 0
		for _, attr := range grouped[entry.Pid] {
			switch {
			case attr.Name == attrs.NameRace:
				player.PickRace = attr.Value.Text()
			case attr.Name == attrs.NameColor:
				player.Color = attr.Value.Text()
			case attr.Name == attrs.NameDifficulty:
				player.Difficulty = attr.Value.Text()
			case attr.Name == attrs.NamePlayerType:
				player.IsHuman = attr.Value.Text() == "Human"
			case attr.Name == attrs.NameHandicap:
				handicap, err := strconv.Atoi(attr.Value.Text())
				if err != nil || handicap < 0 || handicap > 100 {
					return nil, fmt.Errorf("player %d handicap %q: %w",
						entry.Pid, attr.Value.Text(), attrs.ErrBadValue)
				}
				player.Handicap = handicap
			case strings.HasPrefix(attr.Name, attrs.TeamsPrefix):
				teamNumber = int(attr.Value.Int())
			}
		}

		if teamNumber > 0 {
			roster.Assign(roster.EnsureTeam(teamNumber), player)
		}
	}

	for _, team := range roster.Teams() {
		team.Lineup = lineup(team.Players)
	}

	return roster, nil
}

// lineup concatenates the members' single-letter race picks in join order.
// Random picks say nothing about what was played, so they are left out.
func lineup(players []*Player) string {
	var b strings.Builder
	for _, player := range players {
		if player.PickRace == "" || player.PickRace == "Random" {
			continue
		}
		b.WriteByte(player.PickRace[0])
	}
	return b.String()
}
