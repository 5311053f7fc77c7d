package replay

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrIllegalState       = errors.New("player has no team assigned")
	ErrIncompleteIdentity = errors.New("incomplete player identity")
	ErrMissingField       = errors.New("unknown format field")
)

const urlTemplate = "http://%s.battle.net/sc2/en/profile/%d/%d/%s/"

// Player is a person occupying a game slot. Team membership is held as a
// handle into the owning roster's arena, never as a direct pointer, so a
// roster round-trips through serialization without cycles.
type Player struct {
	Person
	Color      string `json:"color,omitempty"`
	PickRace   string `json:"pick_race,omitempty"`
	PlayRace   string `json:"play_race,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Handicap   int    `json:"handicap"`
	Region     string `json:"region,omitempty"`
	Subregion  int    `json:"subregion,omitempty"`
	BnetUID    int64  `json:"bnet_uid,omitempty"`

	roster *Roster
	team   TeamID
}

// URL builds the player's battle.net profile address. Every identity part
// must be present; computer players never have one.
func (p *Player) URL() (string, error) {
	if p.Region == "" || p.BnetUID == 0 || p.Subregion == 0 || p.Name == "" {
		return "", fmt.Errorf("%w: player %d needs region, uid, subregion and name for a profile url",
			ErrIncompleteIdentity, p.Pid)
	}
	return fmt.Sprintf(urlTemplate, p.Region, p.BnetUID, p.Subregion, p.Name), nil
}

// Team resolves the player's team through the roster arena.
func (p *Player) Team() (*Team, error) {
	if p.roster == nil || p.team == 0 {
		return nil, fmt.Errorf("%w: player %d", ErrIllegalState, p.Pid)
	}
	return p.roster.Team(p.team), nil
}

// Result reads through to the owning team. Outcomes are recorded once per
// team and never stored on players.
func (p *Player) Result() (Result, error) {
	team, err := p.Team()
	if err != nil {
		return ResultUnknown, err
	}
	return team.Result, nil
}

// fields lists the player's own formattable fields. Team-level fields are
// deliberately absent; callers wanting those go through Team.
func (p *Player) fields() map[string]string {
	return map[string]string{
		"pid":        strconv.Itoa(p.Pid),
		"name":       p.Name,
		"color":      p.Color,
		"pick_race":  p.PickRace,
		"play_race":  p.PlayRace,
		"difficulty": p.Difficulty,
		"handicap":   strconv.Itoa(p.Handicap),
		"region":     p.Region,
		"subregion":  strconv.Itoa(p.Subregion),
		"bnet_uid":   strconv.FormatInt(p.BnetUID, 10),
	}
}

// Format substitutes {field} placeholders in the template with the player's
// field values, e.g. "{name} ({pick_race})".
func (p *Player) Format(template string) (string, error) {
	fields := p.fields()

	var b strings.Builder
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:open])
		rest = rest[open+1:]

		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return "", fmt.Errorf("%w: unterminated placeholder", ErrMissingField)
		}
		field := rest[:end]
		value, ok := fields[field]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrMissingField, field)
		}
		b.WriteString(value)
		rest = rest[end+1:]
	}
}
