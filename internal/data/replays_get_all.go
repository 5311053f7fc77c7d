package data

import (
	"context"
	"fmt"
	"time"

	"ScoreScreenApi/internal/validator"

	"github.com/lib/pq"
)

// REPLAY_MIN_DATE is the earliest believable game date: nothing was played
// before the game shipped.
var REPLAY_MIN_DATE = time.Date(2010, 7, 27, 0, 0, 0, 0, time.UTC)

type ReplaysFilter struct {
	Filters   `json:"filters"`
	DateRange `json:"date_range"`
	MapName   string   `json:"map_name,omitempty"`
	Category  string   `json:"category,omitempty"`
	Races     []string `json:"races,omitempty"`
}

type ReplaysMetadata struct {
	Pag        Metadata `json:"pag"`
	*DateRange `json:"date_range,omitempty"`
	MapName    string   `json:"map_name,omitempty"`
	Category   string   `json:"category,omitempty"`
	Races      []string `json:"races,omitempty"`
}

func (m *ReplayModel) GetAll(userID int64, filters ReplaysFilter) ([]*Replay, ReplaysMetadata,
	error) {
	stmt := fmt.Sprintf(`
		SELECT count(*) OVER(), pin_id, pin, scope, id, user_id, created_at, version, map_name,
			game_length, category, speed, game_type, played_at
			FROM replays_view
			WHERE replays_view.user_id = $1
			AND (($2 IS FALSE)
				OR replays_view.map_name ILIKE '%%' || $3 || '%%')
			AND (($4 IS FALSE)
				OR replays_view.category = $5)
			AND (($6 IS FALSE)
				OR replays_view.races @> $7::text[])
			AND (($8 IS FALSE)
				OR replays_view.played_at > $9)
			AND (($10 IS FALSE)
				OR replays_view.played_at <= $11)
			ORDER BY %s %s, id ASC
			LIMIT $12 OFFSET $13`, filters.Filters.sortColumn(), filters.Filters.sortDirection())

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	args := []any{
		userID,
		filters.MapName != "",
		filters.MapName,
		filters.Category != "",
		filters.Category,
		filters.Races != nil,
		pq.Array(filters.Races),
		filters.DateRange.AfterDate != nil,
		filters.DateRange.AfterDate,
		filters.DateRange.BeforeDate != nil,
		filters.DateRange.BeforeDate,
		filters.Filters.limit(),
		filters.Filters.offset(),
	}

	rows, err := m.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, ReplaysMetadata{}, err
	}
	defer rows.Close()

	totalRecords := 0
	replays := make([]*Replay, 0)
	for rows.Next() {
		var rp Replay
		err := rows.Scan(
			&totalRecords,
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
			return nil, ReplaysMetadata{}, err
		}
		replays = append(replays, &rp)
	}
	if err = rows.Err(); err != nil {
		return nil, ReplaysMetadata{}, err
	}

	metadata := calculateReplaysMetadata(totalRecords, filters)

	return replays, metadata, nil
}

func calculateReplaysMetadata(totalRecords int, f ReplaysFilter) ReplaysMetadata {
	if totalRecords == 0 {
		return ReplaysMetadata{}
	}

	metadata := ReplaysMetadata{
		Pag:      calculateMetadata(totalRecords, f.Filters.Page, f.Filters.PageSize),
		MapName:  f.MapName,
		Category: f.Category,
		Races:    f.Races,
	}

	if !f.DateRange.IsEmpty() {
		metadata.DateRange = &f.DateRange
	}

	return metadata
}

func ValidateReplaysFilter(v *validator.Validator, f ReplaysFilter) {
	ValidateFilters(v, f.Filters)

	if f.DateRange.AfterDate != nil {
		v.Check(f.DateRange.AfterDate.After(REPLAY_MIN_DATE), "after_date",
			"must be after the game's release")
	}
	if f.DateRange.BeforeDate != nil {
		v.Check(f.DateRange.BeforeDate.After(REPLAY_MIN_DATE), "before_date",
			"must be after the game's release")
	}
	if f.DateRange.IsFull() {
		v.Check(f.DateRange.BeforeDate.After(*f.DateRange.AfterDate), "after_date",
			"cannot be after end date")
	}
	if f.Category != "" {
		v.Check(validator.PermittedValue(f.Category, "Private", "Ladder", "Public"), "category",
			`must be one of "Private", "Ladder" or "Public"`)
	}
	if f.Races != nil {
		v.Check(len(f.Races) <= 4, "races", "must not contain more than 4 selections")
		v.Check(validator.Unique(f.Races), "races", "must not contain duplicate values")
		for _, race := range f.Races {
			v.Check(validator.PermittedValue(race, "Terran", "Protoss", "Zerg", "Random"),
				"races", `must only contain "Terran", "Protoss", "Zerg" or "Random"`)
		}
	}
}
