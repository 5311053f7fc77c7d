package replay

// TeamID is a handle into a Roster's team arena. The zero value means no team
// has been assigned.
type TeamID int

// Roster owns every entity decoded from one replay: the observers, the
// players, and the team arena the players point back into. All containers are
// created per roster; nothing is shared between replays.
type Roster struct {
	Observers []*Observer `json:"observers"`
	Players   []*Player   `json:"players"`

	teams    []Team
	byNumber map[int]TeamID
}

func NewRoster() *Roster {
	return &Roster{
		Observers: make([]*Observer, 0),
		Players:   make([]*Player, 0),
		teams:     make([]Team, 0),
		byNumber:  make(map[int]TeamID),
	}
}

// AddObserver appends a watching person to the roster.
func (r *Roster) AddObserver(pid int, name string) *Observer {
	observer := &Observer{Person: newPerson(pid, name)}
	observer.IsObserver = true
	observer.IsHuman = true
	r.Observers = append(r.Observers, observer)
	return observer
}

// AddPlayer appends an unassigned player to the roster. Team membership comes
// later through Assign.
func (r *Roster) AddPlayer(pid int, name string) *Player {
	player := &Player{Person: newPerson(pid, name), roster: r}
	r.Players = append(r.Players, player)
	return player
}

// EnsureTeam returns the handle for the numbered team, creating it on first
// reference. Arena order follows first reference, not team number.
func (r *Roster) EnsureTeam(number int) TeamID {
	if id, ok := r.byNumber[number]; ok {
		return id
	}
	r.teams = append(r.teams, Team{
		Number:  number,
		Players: make([]*Player, 0),
		Result:  ResultUnknown,
	})
	id := TeamID(len(r.teams))
	r.byNumber[number] = id
	return id
}

// Team resolves a handle into the arena. Handles stay valid for the roster's
// lifetime; the arena only grows.
func (r *Roster) Team(id TeamID) *Team {
	return &r.teams[id-1]
}

// TeamByNumber finds a team by its lobby number.
func (r *Roster) TeamByNumber(number int) (*Team, bool) {
	id, ok := r.byNumber[number]
	if !ok {
		return nil, false
	}
	return r.Team(id), true
}

// Teams lists the arena in first-reference order.
func (r *Roster) Teams() []*Team {
	teams := make([]*Team, len(r.teams))
	for i := range r.teams {
		teams[i] = &r.teams[i]
	}
	return teams
}

// Assign places the player on a team and records the back-handle that
// Player.Team and Player.Result read through.
func (r *Roster) Assign(id TeamID, player *Player) {
	team := r.Team(id)
	team.Players = append(team.Players, player)
	player.roster = r
	player.team = id
}

// PlayerByPid finds a player by slot number.
func (r *Roster) PlayerByPid(pid int) (*Player, bool) {
	for _, player := range r.Players {
		if player.Pid == pid {
			return player, true
		}
	}
	return nil, false
}
