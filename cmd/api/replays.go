package main

import (
	"ScoreScreenApi/internal/attrs"
	"ScoreScreenApi/internal/data"
	"ScoreScreenApi/internal/feed"
	"ScoreScreenApi/internal/gametime"
	"ScoreScreenApi/internal/replay"
	"ScoreScreenApi/internal/validator"
	"errors"
	"fmt"
	"github.com/go-chi/chi/v5"
	"net/http"
	"strings"
	"time"
)

// replayView is the hydrated shape of a stored replay: rows rebuilt into the
// roster model so team hashes, profile urls and delegated results are
// recomputed on every read instead of being stored.
type replayView struct {
	Pin        string                    `json:"pin"`
	MapName    string                    `json:"map_name"`
	GameLength gametime.Duration         `json:"game_length"`
	Category   string                    `json:"category,omitempty"`
	Speed      string                    `json:"speed,omitempty"`
	GameType   string                    `json:"game_type,omitempty"`
	PlayedAt   time.Time                 `json:"played_at"`
	Teams      []teamView                `json:"teams"`
	Unassigned []playerView              `json:"unassigned_players,omitempty"`
	Observers  []string                  `json:"observers,omitempty"`
	Attributes map[int][]attrs.Attribute `json:"attributes,omitempty"`
}

type teamView struct {
	Number  int           `json:"number"`
	Result  replay.Result `json:"result"`
	Lineup  string        `json:"lineup,omitempty"`
	Hash    string        `json:"hash,omitempty"`
	Players []playerView  `json:"players"`
}

type playerView struct {
	Pid        int           `json:"pid"`
	Name       string        `json:"name"`
	IsHuman    bool          `json:"is_human"`
	PickRace   string        `json:"pick_race,omitempty"`
	PlayRace   string        `json:"play_race,omitempty"`
	Color      string        `json:"color,omitempty"`
	Difficulty string        `json:"difficulty,omitempty"`
	Handicap   int           `json:"handicap"`
	Result     replay.Result `json:"result"`
	ProfileURL string        `json:"profile_url,omitempty"`
}

func buildReplayView(rpl *data.Replay) (replayView, error) {
	view := replayView{
		Pin:        rpl.PinID.Pin,
		MapName:    rpl.MapName,
		GameLength: rpl.GameLength,
		Category:   rpl.Category,
		Speed:      rpl.Speed,
		GameType:   rpl.GameType,
		PlayedAt:   rpl.PlayedAt,
		Teams:      make([]teamView, 0),
		Attributes: attrs.GroupByOwner(rpl.Attributes),
	}

	roster := rpl.Roster()

	for _, team := range roster.Teams() {
		tv := teamView{
			Number:  team.Number,
			Result:  team.Result,
			Lineup:  team.Lineup,
			Players: make([]playerView, 0, len(team.Players)),
		}

		hash, err := team.Hash()
		switch {
		case err == nil:
			tv.Hash = hash
		case errors.Is(err, replay.ErrIncompleteIdentity):
			// AI members have no battle.net profile, so the team has no hash.
		default:
			return replayView{}, err
		}

		for _, player := range team.Players {
			pv, err := buildPlayerView(player)
			if err != nil {
				return replayView{}, err
			}
			tv.Players = append(tv.Players, pv)
		}

		view.Teams = append(view.Teams, tv)
	}

	for _, player := range roster.Players {
		if _, err := player.Team(); err == nil {
			continue
		}
		pv := playerRowView(player)
		pv.Result = replay.ResultUnknown
		view.Unassigned = append(view.Unassigned, pv)
	}

	for _, observer := range roster.Observers {
		view.Observers = append(view.Observers, observer.Name)
	}

	return view, nil
}

func buildPlayerView(player *replay.Player) (playerView, error) {
	pv := playerRowView(player)

	result, err := player.Result()
	if err != nil {
		return playerView{}, err
	}
	pv.Result = result

	url, err := player.URL()
	switch {
	case err == nil:
		pv.ProfileURL = url
	case errors.Is(err, replay.ErrIncompleteIdentity):
		// Computer players stay without a profile url.
	default:
		return playerView{}, err
	}

	return pv, nil
}

func playerRowView(player *replay.Player) playerView {
	return playerView{
		Pid:        player.Pid,
		Name:       player.Name,
		IsHuman:    player.IsHuman,
		PickRace:   player.PickRace,
		PlayRace:   player.PlayRace,
		Color:      player.Color,
		Difficulty: player.Difficulty,
		Handicap:   player.Handicap,
	}
}

func (app *application) InsertReplay(w http.ResponseWriter, r *http.Request) {
	var input struct {
		MapName    string               `json:"map_name"`
		GameLength gametime.Duration    `json:"game_length"`
		PlayedAt   time.Time            `json:"played_at"`
		Roster     []replay.RosterEntry `json:"roster"`
		Records    []attrs.RawRecord    `json:"records"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	attributes, failed := attrs.DecodeAll(input.Records)
	for _, decodeErr := range failed {
		app.logger.PrintError(decodeErr, map[string]string{
			"source": "attribute decode",
		})
	}

	roster, err := replay.Build(input.Roster, attributes)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	rpl := &data.Replay{
		UserID:     app.contextGetUser(r).ID,
		MapName:    input.MapName,
		GameLength: input.GameLength,
		PlayedAt:   input.PlayedAt,
	}
	if attr, ok := attrs.FindByName(attributes, attrs.NameCategory); ok {
		rpl.Category = attr.Value.Text()
	}
	if attr, ok := attrs.FindByName(attributes, attrs.NameGameSpeed); ok {
		rpl.Speed = attr.Value.Text()
	}
	if attr, ok := attrs.FindByName(attributes, attrs.NameGameType); ok {
		rpl.GameType = attr.Value.Text()
	}
	rpl.ApplyRoster(roster)
	rpl.Attributes = attributes

	v := validator.New()
	if data.ValidateReplay(v, rpl); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.models.Replays.Insert(rpl)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrUserNotFound):
			app.invalidCredentialsResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.feeds.Publish(rpl.PinID.Pin, feed.Event{
		Type:   feed.EventReplayDecoded,
		Replay: rpl.PinID.Pin,
	})

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/replay/%s", rpl.PinID.Pin))
	err = app.writeJSON(w, http.StatusCreated, envelope{
		"replay":          rpl,
		"skipped_records": len(failed),
	}, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetReplay(w http.ResponseWriter, r *http.Request) {
	userID := app.contextGetUser(r).ID
	pin := strings.ToLower(chi.URLParam(r, "pin"))

	rpl, err := app.models.Replays.Get(userID, pin)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	view, err := buildReplayView(rpl)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"replay": view}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
	return
}

func (app *application) GetAllReplays(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	v := validator.New()
	userID := app.contextGetUser(r).ID
	filters := data.ReplaysFilter{}

	filters.MapName = app.readString(qs, "map_name", "")
	filters.Category = app.readString(qs, "category", "")
	filters.Races = app.readCSV(qs, "races", nil)

	after := app.readDate(qs, "after_date", time.Time{}, v)
	if !after.IsZero() {
		filters.AfterDate = &after
	}
	before := app.readDate(qs, "before_date", time.Time{}, v)
	if !before.IsZero() {
		before = before.Add(24 * time.Hour)
		filters.BeforeDate = &before
	}

	filters.Filters.Page = app.readInt(qs, "page", 1, v)
	filters.Filters.PageSize = app.readInt(qs, "page_size", 5, v)
	filters.Filters.Sort = app.readString(qs, "sort", "-played_at")
	filters.Filters.SortSafeList = []string{"pin", "map_name", "played_at", "created_at",
		"-pin", "-map_name", "-played_at", "-created_at"}

	if data.ValidateReplaysFilter(v, filters); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	replays, metadata, err := app.models.Replays.GetAll(userID, filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"metadata": metadata, "replays": replays}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
	return
}

func (app *application) DeleteReplay(w http.ResponseWriter, r *http.Request) {
	userID := app.contextGetUser(r).ID
	pin := strings.ToLower(chi.URLParam(r, "pin"))

	err := app.models.Replays.Delete(userID, pin)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.feeds.Publish(pin, feed.Event{
		Type:   feed.EventReplayDeleted,
		Replay: pin,
	})
	app.feeds.Close(pin)

	err = app.writeJSON(w, http.StatusOK, envelope{
		"message": fmt.Sprintf("replay (%s) successfully deleted", pin)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
	return
}

func (app *application) UpdateReplayResult(w http.ResponseWriter, r *http.Request) {
	userID := app.contextGetUser(r).ID
	pin := strings.ToLower(chi.URLParam(r, "pin"))

	var input struct {
		TeamNumber int           `json:"team_number"`
		Result     replay.Result `json:"result"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	if data.ValidateTeamResult(v, input.TeamNumber, input.Result); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	rpl, err := app.models.Replays.SetTeamResult(userID, pin, input.TeamNumber, input.Result)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.feeds.Publish(pin, feed.Event{
		Type:   feed.EventResultPosted,
		Replay: pin,
		Detail: map[string]any{
			"team_number": input.TeamNumber,
			"result":      input.Result,
		},
	})

	view, err := buildReplayView(rpl)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"replay": view}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
	return
}
