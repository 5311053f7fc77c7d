package main

import (
	"ScoreScreenApi/internal/data"
	"ScoreScreenApi/internal/feed"
	"ScoreScreenApi/internal/summary"
	"ScoreScreenApi/internal/validator"
	"errors"
	"fmt"
	"github.com/go-chi/chi/v5"
	"net/http"
	"strings"
)

// summaryBlock is one player's rendered score screen block: the identity
// header, the stat lines as display text, and the graphs as point pairs.
type summaryBlock struct {
	Header      string          `json:"header"`
	Stats       string          `json:"stats"`
	ArmyGraph   []summary.Point `json:"army_graph,omitempty"`
	IncomeGraph []summary.Point `json:"income_graph,omitempty"`
}

func (app *application) UpsertReplaySummary(w http.ResponseWriter, r *http.Request) {
	userID := app.contextGetUser(r).ID
	pin := strings.ToLower(chi.URLParam(r, "pin"))

	var input struct {
		Players []struct {
			Pid         int                 `json:"pid"`
			TeamID      int                 `json:"team_id"`
			Race        string              `json:"race"`
			IsAI        bool                `json:"is_ai"`
			BnetID      int64               `json:"bnet_id"`
			Subregion   int                 `json:"subregion"`
			Stats       []summary.StatEntry `json:"stats"`
			ArmyGraph   []summary.Point     `json:"army_graph"`
			IncomeGraph []summary.Point     `json:"income_graph"`
		} `json:"players"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(len(input.Players) > 0, "players", "must contain at least one player")
	pids := make([]int, 0, len(input.Players))
	for i, p := range input.Players {
		v.Check(p.Pid > 0, fmt.Sprintf("players.%d.pid", i), "must be a positive integer")
		pids = append(pids, p.Pid)
	}
	v.Check(validator.Unique(pids), "players", "must not repeat pids")
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	players := make([]*summary.PlayerSummary, 0, len(input.Players))
	for _, p := range input.Players {
		ps := summary.NewPlayerSummary(p.Pid)
		ps.TeamID = p.TeamID
		ps.Race = p.Race
		ps.IsAI = p.IsAI
		ps.BnetID = p.BnetID
		ps.Subregion = p.Subregion
		for _, entry := range p.Stats {
			ps.SetStat(entry.Code, entry.Value)
		}
		if len(p.ArmyGraph) > 0 {
			ps.ArmyGraph = summary.NewGraphFromPoints(p.ArmyGraph)
		}
		if len(p.IncomeGraph) > 0 {
			ps.IncomeGraph = summary.NewGraphFromPoints(p.IncomeGraph)
		}
		players = append(players, ps)
	}

	err = app.models.Summaries.Upsert(userID, pin, players)
	if err != nil {
		var modelValidationErr data.ModelValidationErr
		switch {
		case errors.As(err, &modelValidationErr):
			app.failedValidationResponse(w, r, modelValidationErr.Errors)
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.feeds.Publish(pin, feed.Event{
		Type:   feed.EventSummaryReady,
		Replay: pin,
	})

	err = app.writeJSON(w, http.StatusOK, envelope{
		"message": fmt.Sprintf("summary for replay (%s) saved", pin)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetReplaySummary(w http.ResponseWriter, r *http.Request) {
	userID := app.contextGetUser(r).ID
	pin := strings.ToLower(chi.URLParam(r, "pin"))

	players, err := app.models.Summaries.GetForReplay(userID, pin)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	blocks, err := summaryBlocks(players)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"replay": pin, "players": blocks}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
	return
}

func (app *application) ShareReplaySummary(w http.ResponseWriter, r *http.Request) {
	userID := app.contextGetUser(r).ID
	pin := strings.ToLower(chi.URLParam(r, "pin"))

	var input struct {
		Email string `json:"email"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	if data.ValidateEmail(v, input.Email); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

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

	players, err := app.models.Summaries.GetForReplay(userID, pin)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			v.AddError("summary", "no summary has been posted for this replay")
			app.failedValidationResponse(w, r, v.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	blocks, err := summaryBlocks(players)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	sender := app.contextGetUser(r)

	app.backgroundTask(func() {
		mailData := map[string]any{
			"senderName": fmt.Sprintf("%s %s", sender.FirstName, sender.LastName),
			"mapName":    rpl.MapName,
			"gameLength": rpl.GameLength,
			"players":    blocks,
		}

		err := app.mailer.Send(input.Email, "replay_share.tmpl", mailData)
		if err != nil {
			app.logger.PrintError(err, nil)
		}
	})

	err = app.writeJSON(w, http.StatusAccepted, envelope{
		"message": fmt.Sprintf("summary for replay (%s) will be sent to %s", pin, input.Email)},
		nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func summaryBlocks(players []*summary.PlayerSummary) ([]summaryBlock, error) {
	blocks := make([]summaryBlock, 0, len(players))
	for _, ps := range players {
		stats, err := ps.GetStats()
		if err != nil {
			return nil, err
		}

		block := summaryBlock{
			Header: ps.String(),
			Stats:  stats,
		}
		if ps.ArmyGraph != nil {
			block.ArmyGraph = ps.ArmyGraph.PointSlice()
		}
		if ps.IncomeGraph != nil {
			block.IncomeGraph = ps.IncomeGraph.PointSlice()
		}
		blocks = append(blocks, block)
	}

	return blocks, nil
}
