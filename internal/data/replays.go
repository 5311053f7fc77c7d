package data

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ScoreScreenApi/internal/attrs"
	"ScoreScreenApi/internal/gametime"
	"ScoreScreenApi/internal/pins"
	"ScoreScreenApi/internal/replay"
	"ScoreScreenApi/internal/validator"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// Replay is the stored form of one decoded replay: the game row itself plus
// flattened player, team and attribute rows. The object model the decoders
// work with is rebuilt from these rows on the way out; see Roster.
type Replay struct {
	ID         int64             `json:"-"`
	UserID     int64             `json:"-"`
	PinID      pins.Pin          `json:"pin"`
	CreatedAt  time.Time         `json:"-"`
	Version    int32             `json:"-"`
	MapName    string            `json:"map_name"`
	GameLength gametime.Duration `json:"game_length"`
	Category   string            `json:"category,omitempty"`
	Speed      string            `json:"speed,omitempty"`
	GameType   string            `json:"game_type,omitempty"`
	PlayedAt   time.Time         `json:"played_at"`

	Players    []*ReplayPlayer   `json:"players,omitempty"`
	Teams      []*ReplayTeam     `json:"teams,omitempty"`
	Attributes []attrs.Attribute `json:"attributes,omitempty"`
}

type ReplayPlayer struct {
	ID         int64  `json:"-"`
	Pid        int    `json:"pid"`
	Name       string `json:"name"`
	IsObserver bool   `json:"is_observer"`
	IsHuman    bool   `json:"is_human"`
	TeamNumber int    `json:"team_number,omitempty"`
	PickRace   string `json:"pick_race,omitempty"`
	PlayRace   string `json:"play_race,omitempty"`
	Color      string `json:"color,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Handicap   int    `json:"handicap"`
	Region     string `json:"region,omitempty"`
	Subregion  int    `json:"subregion,omitempty"`
	BnetUID    int64  `json:"bnet_uid,omitempty"`
}

type ReplayTeam struct {
	ID     int64         `json:"-"`
	Number int           `json:"number"`
	Result replay.Result `json:"result"`
	Lineup string        `json:"lineup"`
}

type ReplayModel struct {
	db *sql.DB
}

// ApplyRoster flattens a built roster onto the replay's row types, replacing
// whatever rows it held.
func (r *Replay) ApplyRoster(roster *replay.Roster) {
	r.Players = make([]*ReplayPlayer, 0, len(roster.Players)+len(roster.Observers))
	r.Teams = make([]*ReplayTeam, 0, len(roster.Teams()))

	for _, player := range roster.Players {
		row := &ReplayPlayer{
			Pid:        player.Pid,
			Name:       player.Name,
			IsHuman:    player.IsHuman,
			PickRace:   player.PickRace,
			PlayRace:   player.PlayRace,
			Color:      player.Color,
			Difficulty: player.Difficulty,
			Handicap:   player.Handicap,
			Region:     player.Region,
			Subregion:  player.Subregion,
			BnetUID:    player.BnetUID,
		}
		if team, err := player.Team(); err == nil {
			row.TeamNumber = team.Number
		}
		r.Players = append(r.Players, row)
	}

	for _, observer := range roster.Observers {
		r.Players = append(r.Players, &ReplayPlayer{
			Pid:        observer.Pid,
			Name:       observer.Name,
			IsObserver: true,
			IsHuman:    true,
		})
	}

	for _, team := range roster.Teams() {
		r.Teams = append(r.Teams, &ReplayTeam{
			Number: team.Number,
			Result: team.Result,
			Lineup: team.Lineup,
		})
	}
}

// Roster rebuilds the decoded object model from the stored rows, so reads get
// the same accessors (team hash, profile urls, result delegation) ingestion
// had.
func (r *Replay) Roster() *replay.Roster {
	roster := replay.NewRoster()

	for _, row := range r.Players {
		if row.IsObserver {
			roster.AddObserver(row.Pid, row.Name)
			continue
		}

		player := roster.AddPlayer(row.Pid, row.Name)
		player.IsHuman = row.IsHuman
		player.PickRace = row.PickRace
		player.PlayRace = row.PlayRace
		player.Color = row.Color
		player.Difficulty = row.Difficulty
		player.Handicap = row.Handicap
		player.Region = row.Region
		player.Subregion = row.Subregion
		player.BnetUID = row.BnetUID

		if row.TeamNumber > 0 {
			roster.Assign(roster.EnsureTeam(row.TeamNumber), player)
		}
	}

	for _, row := range r.Teams {
		team, ok := roster.TeamByNumber(row.Number)
		if !ok {
			team = roster.Team(roster.EnsureTeam(row.Number))
		}
		team.Result = row.Result
		team.Lineup = row.Lineup
	}

	return roster
}

func ValidateReplay(v *validator.Validator, r *Replay) {
	v.Check(r.MapName != "", "map_name", "must be provided")
	v.Check(len(r.MapName) <= 100, "map_name", "must be 100 characters or less")

	_, err := r.GameLength.ToDuration()
	v.Check(err == nil, "game_length", `must be a game clock reading in the form "MM:SS"`)

	v.Check(!r.PlayedAt.IsZero(), "played_at", "must be provided")
	v.Check(r.PlayedAt.Before(time.Now()), "played_at", "must be in the past")

	pids := make([]int, 0, len(r.Players))
	for _, player := range r.Players {
		pids = append(pids, player.Pid)
		v.Check(player.Pid > 0, "players.pid", "must be a positive integer")
		v.Check(player.Name != "", "players.name", "must be provided for every entry")
	}
	v.Check(len(r.Players) > 0, "players", "must contain at least one entry")
	v.Check(validator.Unique(pids), "players.pid", "must not contain duplicate values")
}

func (m *ReplayModel) Insert(r *Replay) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	pin, err := helperModels.Pins.New(pins.PinScopeReplays, tx, ctx)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}
	r.PinID = *pin

	stmt := `
		INSERT INTO replays (pin_id, user_id, map_name, game_length, category, speed,
			game_type, played_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, version`

	args := []any{
		r.PinID.ID,
		r.UserID,
		r.MapName,
		r.GameLength,
		r.Category,
		r.Speed,
		r.GameType,
		r.PlayedAt,
	}

	err = tx.QueryRowContext(ctx, stmt, args...).Scan(&r.ID, &r.CreatedAt, &r.Version)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		switch {
		case err.Error() == `pq: insert or update on table "replays" violates foreign key `+
			`constraint "replays_user_id_fkey"`:
			return ErrUserNotFound
		default:
			return err
		}
	}

	err = insertReplayPlayers(r, tx, ctx)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}

	err = insertReplayTeams(r, tx, ctx)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}

	err = insertReplayAttributes(r, tx, ctx)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}

	err = tx.Commit()
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}

	return nil
}

func insertReplayPlayers(r *Replay, tx *sql.Tx, ctx context.Context) error {
	stmt := `
		INSERT INTO replay_players (replay_id, pid, name, is_observer, is_human, team_number,
			pick_race, play_race, color, difficulty, handicap, region, subregion, bnet_uid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`

	for _, player := range r.Players {
		args := []any{
			r.ID,
			player.Pid,
			player.Name,
			player.IsObserver,
			player.IsHuman,
			player.TeamNumber,
			player.PickRace,
			player.PlayRace,
			player.Color,
			player.Difficulty,
			player.Handicap,
			player.Region,
			player.Subregion,
			player.BnetUID,
		}

		err := tx.QueryRowContext(ctx, stmt, args...).Scan(&player.ID)
		if err != nil {
			return err
		}
	}

	return nil
}

func insertReplayTeams(r *Replay, tx *sql.Tx, ctx context.Context) error {
	stmt := `
		INSERT INTO replay_teams (replay_id, number, result, lineup)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	for _, team := range r.Teams {
		err := tx.QueryRowContext(ctx, stmt, r.ID, team.Number, team.Result, team.Lineup).
			Scan(&team.ID)
		if err != nil {
			return err
		}
	}

	return nil
}

func insertReplayAttributes(r *Replay, tx *sql.Tx, ctx context.Context) error {
	stmt := `
		INSERT INTO replay_attributes (replay_id, code, owner, name, value_kind, value_text,
			value_int)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for _, attr := range r.Attributes {
		args := []any{
			r.ID,
			int(attr.Code),
			attr.Owner,
			attr.Name,
			int(attr.Value.Kind()),
			attr.Value.Text(),
			attr.Value.Int(),
		}

		_, err := tx.ExecContext(ctx, stmt, args...)
		if err != nil {
			return err
		}
	}

	return nil
}
