package replay

import (
	"testing"

	"ScoreScreenApi/internal/assert"
)

func addIdentified(roster *Roster, id TeamID, pid int, name, region string, subregion int, uid int64) *Player {
	player := roster.AddPlayer(pid, name)
	player.Region = region
	player.Subregion = subregion
	player.BnetUID = uid
	roster.Assign(id, player)
	return player
}

func TestTeamHash(t *testing.T) {
	// SHA-256 over "http://us.battle.net/sc2/en/profile/123456/1/Alice/," +
	// "http://us.battle.net/sc2/en/profile/654321/1/Bob/".
	const expected = "b7052f8f4f807eec41b77066d14eb951739b3b904fe37d726d1c74a70a902fc7"

	roster := NewRoster()
	id := roster.EnsureTeam(1)
	addIdentified(roster, id, 1, "Alice", "us", 1, 123456)
	addIdentified(roster, id, 2, "Bob", "us", 1, 654321)

	hash, err := roster.Team(id).Hash()
	assert.NilError(t, err)
	assert.Equal(t, hash, expected)
}

func TestTeamHashIgnoresJoinOrder(t *testing.T) {
	first := NewRoster()
	firstID := first.EnsureTeam(1)
	addIdentified(first, firstID, 1, "Alice", "us", 1, 123456)
	addIdentified(first, firstID, 2, "Bob", "us", 1, 654321)

	second := NewRoster()
	secondID := second.EnsureTeam(1)
	addIdentified(second, secondID, 1, "Bob", "us", 1, 654321)
	addIdentified(second, secondID, 2, "Alice", "us", 1, 123456)

	firstHash, err := first.Team(firstID).Hash()
	assert.NilError(t, err)
	secondHash, err := second.Team(secondID).Hash()
	assert.NilError(t, err)

	assert.Equal(t, firstHash, secondHash)
}

func TestTeamHashTracksMembership(t *testing.T) {
	// SHA-256 over "http://eu.battle.net/sc2/en/profile/98765/2/Nyx/".
	const soloExpected = "aa00073aad6c04589fb978f0915621d31b2f49f13c07669b24fb16c344620efd"

	roster := NewRoster()
	id := roster.EnsureTeam(1)
	addIdentified(roster, id, 1, "Nyx", "eu", 2, 98765)

	solo, err := roster.Team(id).Hash()
	assert.NilError(t, err)
	assert.Equal(t, solo, soloExpected)

	addIdentified(roster, id, 2, "Bob", "us", 1, 654321)

	duo, err := roster.Team(id).Hash()
	assert.NilError(t, err)
	if duo == solo {
		t.Errorf("hash unchanged after membership change: %s", duo)
	}
}

func TestTeamHashNeedsFullIdentities(t *testing.T) {
	roster := NewRoster()
	id := roster.EnsureTeam(1)
	addIdentified(roster, id, 1, "Alice", "us", 1, 123456)

	// Computer players have no profile, so their team has no hash.
	ai := roster.AddPlayer(2, "A.I. 1")
	roster.Assign(id, ai)

	_, err := roster.Team(id).Hash()
	assert.ErrorIs(t, err, ErrIncompleteIdentity)
}

func TestEnsureTeamReusesHandles(t *testing.T) {
	roster := NewRoster()

	first := roster.EnsureTeam(2)
	second := roster.EnsureTeam(2)
	assert.Equal(t, first, second)

	third := roster.EnsureTeam(1)
	if third == first {
		t.Errorf("distinct team numbers share handle %d", third)
	}

	teams := roster.Teams()
	assert.Equal(t, len(teams), 2)
	assert.Equal(t, teams[0].Number, 2)
	assert.Equal(t, teams[1].Number, 1)

	team, ok := roster.TeamByNumber(1)
	assert.Equal(t, ok, true)
	assert.Equal(t, team.Number, 1)
	_, ok = roster.TeamByNumber(5)
	assert.Equal(t, ok, false)
}

func TestLocationString(t *testing.T) {
	assert.Equal(t, Location{X: 104, Y: 56}.String(), "(104, 56)")
}
