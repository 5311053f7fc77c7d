package data

import (
	"database/sql"
	"errors"
)

var ErrRecordNotFound = errors.New("record not found")
var ErrEditConflict = errors.New("edit conflict")

type Models struct {
	Users       UserModel
	Tokens      TokenModel
	Permissions PermissionModel
	Replays     ReplayModel
	Summaries   SummaryModel
	Pins        PinModel
}

// helperModels lets models lean on each other inside a transaction, pin
// bookkeeping mostly.
var helperModels Models

func NewModels(initDb *sql.DB) Models {
	models := Models{
		Users:       UserModel{db: initDb},
		Tokens:      TokenModel{db: initDb},
		Permissions: PermissionModel{db: initDb},
		Replays:     ReplayModel{db: initDb},
		Summaries:   SummaryModel{db: initDb},
		Pins:        PinModel{db: initDb},
	}
	helperModels = models
	return models
}
