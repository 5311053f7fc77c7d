package data

import (
	"context"
	"database/sql"
	"errors"

	"ScoreScreenApi/internal/pins"
)

var pinLength = 6

type PinModel struct {
	db *sql.DB
}

func (m *PinModel) insert(pin *pins.Pin, tx *sql.Tx, ctx context.Context) error {
	stmt := `
		INSERT INTO pins (pin, scope)
		VALUES ($1, $2)
		RETURNING id`

	err := tx.QueryRowContext(ctx, stmt, pin.Pin, pin.Scope).Scan(&pin.ID)
	if err != nil {
		switch {
		case err.Error() == `pq: duplicate key value violates unique constraint "pins_pin_key"`:
			return pins.ErrDuplicatePin
		default:
			return err
		}
	}

	return nil
}

// New mints a public pin in the given scope within the caller's transaction,
// regenerating on the off chance the random pin already exists.
func (m *PinModel) New(scope string, tx *sql.Tx, ctx context.Context) (*pins.Pin, error) {
	pin := &pins.Pin{
		Pin:   pins.GeneratePin(pinLength),
		Scope: scope,
	}

	err := m.insert(pin, tx, ctx)
	if err != nil {
		switch {
		case errors.Is(err, pins.ErrDuplicatePin):
			return m.New(scope, tx, ctx)
		default:
			return nil, err
		}
	}

	return pin, nil
}

func (m *PinModel) Delete(pinID int64, scope string, tx *sql.Tx, ctx context.Context) error {
	stmt := `
		DELETE FROM pins
		WHERE id = $1 AND scope = $2`

	result, err := tx.ExecContext(ctx, stmt, pinID, scope)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}
