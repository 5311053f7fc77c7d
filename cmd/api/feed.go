package main

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// WatchReplay upgrades the connection and joins it to the replay's live feed.
// The feed only pushes lifecycle events, so watchers authenticate like any
// browser page: not at all. Ownership still gates every mutating endpoint.
func (app *application) WatchReplay(w http.ResponseWriter, r *http.Request) {
	pin := strings.ToLower(chi.URLParam(r, "pin"))

	exists, err := app.models.Replays.Exists(pin)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if !exists {
		app.notFoundResponse(w, r)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.logError(r, err)
		return
	}

	app.feeds.Room(pin).Join(conn)
}
