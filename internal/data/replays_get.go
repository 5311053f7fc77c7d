package data

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ScoreScreenApi/internal/attrs"
)

func (m *ReplayModel) Get(userID int64, pin string) (*Replay, error) {
	stmt := `
		SELECT replays_view.pin_id, replays_view.pin, replays_view.scope, replays_view.id,
			replays_view.user_id, replays_view.created_at, replays_view.version,
			replays_view.map_name, replays_view.game_length, replays_view.category,
			replays_view.speed, replays_view.game_type, replays_view.played_at
			FROM replays_view
			WHERE user_id = $1 AND pin = $2`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	rp := &Replay{}
	err = tx.QueryRowContext(ctx, stmt, userID, pin).Scan(
		&rp.PinID.ID,
		&rp.PinID.Pin,
		&rp.PinID.Scope,
		&rp.ID,
		&rp.UserID,
		&rp.CreatedAt,
		&rp.Version,
		&rp.MapName,
		&rp.GameLength,
		&rp.Category,
		&rp.Speed,
		&rp.GameType,
		&rp.PlayedAt,
	)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return nil, rollbackErr
		}
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	err = getReplayPlayers(rp, tx, ctx)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return nil, rollbackErr
		}
		return nil, err
	}

	err = getReplayTeams(rp, tx, ctx)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return nil, rollbackErr
		}
		return nil, err
	}

	err = getReplayAttributes(rp, tx, ctx)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return nil, rollbackErr
		}
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return nil, rollbackErr
		}
		return nil, err
	}

	return rp, nil
}

// Exists reports whether any user's replay answers to the pin. The live feed
// is not scoped to the owner, so neither is this check.
func (m *ReplayModel) Exists(pin string) (bool, error) {
	stmt := `
		SELECT EXISTS (
			SELECT 1 FROM replays
			INNER JOIN pins ON replays.pin_id = pins.id
			WHERE pins.pin = $1
		)`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var exists bool
	err := m.db.QueryRowContext(ctx, stmt, pin).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func getReplayPlayers(rp *Replay, tx *sql.Tx, ctx context.Context) error {
	stmt := `
		SELECT id, pid, name, is_observer, is_human, team_number, pick_race, play_race, color,
			difficulty, handicap, region, subregion, bnet_uid
			FROM replay_players
			WHERE replay_id = $1
			ORDER BY id ASC`

	rows, err := tx.QueryContext(ctx, stmt, rp.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	rp.Players = make([]*ReplayPlayer, 0)
	for rows.Next() {
		var player ReplayPlayer
		err := rows.Scan(
			&player.ID,
			&player.Pid,
			&player.Name,
			&player.IsObserver,
			&player.IsHuman,
			&player.TeamNumber,
			&player.PickRace,
			&player.PlayRace,
			&player.Color,
			&player.Difficulty,
			&player.Handicap,
			&player.Region,
			&player.Subregion,
			&player.BnetUID,
		)
		if err != nil {
			return err
		}
		rp.Players = append(rp.Players, &player)
	}

	return rows.Err()
}

func getReplayTeams(rp *Replay, tx *sql.Tx, ctx context.Context) error {
	stmt := `
		SELECT id, number, result, lineup
			FROM replay_teams
			WHERE replay_id = $1
			ORDER BY id ASC`

	rows, err := tx.QueryContext(ctx, stmt, rp.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	rp.Teams = make([]*ReplayTeam, 0)
	for rows.Next() {
		var team ReplayTeam
		err := rows.Scan(&team.ID, &team.Number, &team.Result, &team.Lineup)
		if err != nil {
			return err
		}
		rp.Teams = append(rp.Teams, &team)
	}

	return rows.Err()
}

func getReplayAttributes(rp *Replay, tx *sql.Tx, ctx context.Context) error {
	stmt := `
		SELECT code, owner, name, value_kind, value_text, value_int
			FROM replay_attributes
			WHERE replay_id = $1
			ORDER BY id ASC`

	rows, err := tx.QueryContext(ctx, stmt, rp.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	rp.Attributes = make([]attrs.Attribute, 0)
	for rows.Next() {
		var (
			code      int
			owner     int
			name      string
			valueKind int
			valueText string
			valueInt  int64
		)
		err := rows.Scan(&code, &owner, &name, &valueKind, &valueText, &valueInt)
		if err != nil {
			return err
		}

		value := attrs.TextValue(valueText)
		if attrs.Kind(valueKind) == attrs.KindInt {
			value = attrs.IntValue(valueInt)
		}

		rp.Attributes = append(rp.Attributes, attrs.Attribute{
			Code:  uint16(code),
			Owner: owner,
			Name:  name,
			Value: value,
		})
	}

	return rows.Err()
}
