package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ScoreScreenApi/internal/summary"

	"github.com/lib/pq"
)

type SummaryModel struct {
	db *sql.DB
}

// Upsert replaces the pinned replay's score screen summary wholesale. Partial
// summaries are a lie worth avoiding: the file either parsed or it did not.
// Stat codes are checked against the label table on the way in, so renders on
// the way out never hit an unknown code.
func (m *SummaryModel) Upsert(userID int64, pin string, players []*summary.PlayerSummary) error {
	mve := ModelValidationErr{Errors: make(map[string]string)}
	for _, ps := range players {
		for _, entry := range ps.Stats() {
			if !summary.KnownStatCode(entry.Code) {
				mve.AddError(fmt.Sprintf("players.%d.stats", ps.Pid),
					fmt.Sprintf("unknown stat code %q", entry.Code))
			}
		}
	}
	if !mve.Valid() {
		return mve
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	replayID, err := replayIDForPin(userID, pin, tx, ctx)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM replay_summaries WHERE replay_id = $1`, replayID)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}

	stmt := `
		INSERT INTO replay_summaries (replay_id, pid, team_number, race, is_ai, bnet_uid,
			subregion, stat_codes, stat_values, army_times, army_values, income_times,
			income_values)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	for _, ps := range players {
		statCodes := make([]string, 0)
		statValues := make([]int64, 0)
		for _, entry := range ps.Stats() {
			statCodes = append(statCodes, entry.Code)
			statValues = append(statValues, entry.Value)
		}

		armyTimes, armyValues := graphColumns(ps.ArmyGraph)
		incomeTimes, incomeValues := graphColumns(ps.IncomeGraph)

		args := []any{
			replayID,
			ps.Pid,
			ps.TeamID,
			ps.Race,
			ps.IsAI,
			ps.BnetID,
			ps.Subregion,
			pq.Array(statCodes),
			pq.Array(statValues),
			pq.Array(armyTimes),
			pq.Array(armyValues),
			pq.Array(incomeTimes),
			pq.Array(incomeValues),
		}

		_, err := tx.ExecContext(ctx, stmt, args...)
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				return rollbackErr
			}
			return err
		}
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

// GetForReplay rebuilds the stored summary blocks, graphs included, in the
// order the summary file listed its players.
func (m *SummaryModel) GetForReplay(userID int64, pin string) ([]*summary.PlayerSummary, error) {
	stmt := `
		SELECT replay_summaries.pid, replay_summaries.team_number, replay_summaries.race,
			replay_summaries.is_ai, replay_summaries.bnet_uid, replay_summaries.subregion,
			replay_summaries.stat_codes, replay_summaries.stat_values,
			replay_summaries.army_times, replay_summaries.army_values,
			replay_summaries.income_times, replay_summaries.income_values
			FROM replay_summaries
			INNER JOIN replays ON replay_summaries.replay_id = replays.id
			INNER JOIN pins ON replays.pin_id = pins.id
			WHERE replays.user_id = $1 AND pins.pin = $2
			ORDER BY replay_summaries.id ASC`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, stmt, userID, pin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]*summary.PlayerSummary, 0)
	for rows.Next() {
		var (
			pid          int
			teamNumber   int
			race         string
			isAI         bool
			bnetUID      int64
			subregion    int
			statCodes    []string
			statValues   []int64
			armyTimes    []int64
			armyValues   []int64
			incomeTimes  []int64
			incomeValues []int64
		)

		err := rows.Scan(
			&pid,
			&teamNumber,
			&race,
			&isAI,
			&bnetUID,
			&subregion,
			pq.Array(&statCodes),
			pq.Array(&statValues),
			pq.Array(&armyTimes),
			pq.Array(&armyValues),
			pq.Array(&incomeTimes),
			pq.Array(&incomeValues),
		)
		if err != nil {
			return nil, err
		}

		ps := summary.NewPlayerSummary(pid)
		ps.TeamID = teamNumber
		ps.Race = race
		ps.IsAI = isAI
		ps.BnetID = bnetUID
		ps.Subregion = subregion

		if len(statCodes) != len(statValues) {
			return nil, fmt.Errorf("summary stats for pid %d: %w", pid,
				summary.ErrLengthMismatch)
		}
		for i := range statCodes {
			ps.SetStat(statCodes[i], statValues[i])
		}

		ps.ArmyGraph, err = graphFromColumns(armyTimes, armyValues)
		if err != nil {
			return nil, fmt.Errorf("army graph for pid %d: %w", pid, err)
		}
		ps.IncomeGraph, err = graphFromColumns(incomeTimes, incomeValues)
		if err != nil {
			return nil, fmt.Errorf("income graph for pid %d: %w", pid, err)
		}

		players = append(players, ps)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	// No rows covers a missing pin, someone else's replay, and a replay with
	// no summary posted yet; none of them is this caller's summary.
	if len(players) == 0 {
		return nil, ErrRecordNotFound
	}

	return players, nil
}

func graphColumns(g *summary.Graph) (times, values []int64) {
	times = make([]int64, 0)
	values = make([]int64, 0)
	if g == nil {
		return times, values
	}
	for second, value := range g.Points() {
		times = append(times, second)
		values = append(values, value)
	}
	return times, values
}

func graphFromColumns(times, values []int64) (*summary.Graph, error) {
	if len(times) == 0 && len(values) == 0 {
		return nil, nil
	}
	return summary.NewGraph(times, values)
}

func replayIDForPin(userID int64, pin string, tx *sql.Tx, ctx context.Context) (int64, error) {
	stmt := `
		SELECT replays.id
		FROM replays
		INNER JOIN pins ON replays.pin_id = pins.id
		WHERE replays.user_id = $1 AND pins.pin = $2`

	var replayID int64
	err := tx.QueryRowContext(ctx, stmt, userID, pin).Scan(&replayID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return 0, ErrRecordNotFound
		default:
			return 0, err
		}
	}

	return replayID, nil
}
