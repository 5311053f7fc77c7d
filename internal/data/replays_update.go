package data

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ScoreScreenApi/internal/pins"
	"ScoreScreenApi/internal/replay"
	"ScoreScreenApi/internal/validator"
)

func ValidateTeamResult(v *validator.Validator, teamNumber int, result replay.Result) {
	v.Check(teamNumber > 0, "team_number", "must be a positive integer")
	v.Check(validator.PermittedValue(result,
		replay.ResultWin, replay.ResultLoss, replay.ResultUnknown),
		"result", `must be one of "Win", "Loss" or "Unknown"`)
}

// SetTeamResult records the outcome for one team of the pinned replay and
// bumps the replay version. Outcomes live on teams only; player results are
// always read through their team.
func (m *ReplayModel) SetTeamResult(userID int64, pin string, teamNumber int,
	result replay.Result) (*Replay, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	updateTeamStmt := `
		UPDATE replay_teams
		SET result = $1
		FROM replays
		INNER JOIN pins ON replays.pin_id = pins.id
		WHERE replay_teams.replay_id = replays.id
			AND replays.user_id = $2
			AND pins.pin = $3
			AND replay_teams.number = $4
		RETURNING replay_teams.id`

	var teamID int64
	err = tx.QueryRowContext(ctx, updateTeamStmt, result, userID, pin, teamNumber).Scan(&teamID)
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

	bumpStmt := `
		UPDATE replays
		SET version = version + 1
		FROM pins
		WHERE replays.pin_id = pins.id AND replays.user_id = $1 AND pins.pin = $2
		RETURNING replays.id`

	var replayID int64
	err = tx.QueryRowContext(ctx, bumpStmt, userID, pin).Scan(&replayID)
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

	return m.Get(userID, pin)
}

func (m *ReplayModel) Delete(userID int64, pin string) error {
	stmt := `
		DELETE FROM replays
		USING pins
		WHERE replays.pin_id = pins.id AND replays.user_id = $1 AND pins.pin = $2
		RETURNING replays.pin_id`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	var pinID int64
	err = tx.QueryRowContext(ctx, stmt, userID, pin).Scan(&pinID)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrRecordNotFound
		default:
			return err
		}
	}

	err = helperModels.Pins.Delete(pinID, pins.PinScopeReplays, tx, ctx)
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
