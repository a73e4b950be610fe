package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"portfolio-cli/internal/model"

	"github.com/google/uuid"
)

// AppendEvent journals one mutation and returns the stored row.
func (s Store) AppendEvent(ctx context.Context, typ string, projectID int, payload any) (model.Event, error) {
	typ = strings.TrimSpace(typ)
	if typ == "" {
		return model.Event{}, errEventContract("missing type")
	}

	db, err := s.openSQLite(ctx)
	if err != nil {
		return model.Event{}, err
	}
	defer db.Close()

	pb, err := json.Marshal(payload)
	if err != nil {
		return model.Event{}, err
	}
	ev := model.Event{
		ID:        uuid.NewString(),
		TS:        time.Now().UTC().Truncate(time.Millisecond),
		Type:      typ,
		ProjectID: projectID,
		Payload:   payload,
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return model.Event{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM events`).Scan(&seq); err != nil {
		return model.Event{}, err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO events(event_id, seq, type, project_id, payload_json, issued_at_unixms) VALUES(?, ?, ?, ?, ?, ?)`,
		ev.ID, seq, ev.Type, ev.ProjectID, string(pb), ev.TS.UnixMilli()); err != nil {
		return model.Event{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Event{}, err
	}
	return ev, nil
}

// ReadEvents returns the journal oldest first. With limit > 0 only the most
// recent limit rows are returned (still oldest first).
func (s Store) ReadEvents(ctx context.Context, limit int) ([]model.Event, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	q := `SELECT event_id, issued_at_unixms, type, project_id, payload_json FROM events ORDER BY seq DESC`
	var rows *sql.Rows
	if limit > 0 {
		rows, err = db.QueryContext(ctx, q+` LIMIT ?`, limit)
	} else {
		rows, err = db.QueryContext(ctx, q)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Event
	for rows.Next() {
		var id, typ, payloadJSON string
		var tsMs int64
		var projectID int
		if err := rows.Scan(&id, &tsMs, &typ, &projectID, &payloadJSON); err != nil {
			return nil, err
		}
		var payload any
		if err := json.Unmarshal([]byte(payloadJSON), &payload); err != nil {
			return nil, fmt.Errorf("event %s payload: %w", id, err)
		}
		out = append(out, model.Event{
			ID:        id,
			TS:        time.UnixMilli(tsMs).UTC(),
			Type:      typ,
			ProjectID: projectID,
			Payload:   payload,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	if out == nil {
		out = []model.Event{}
	}
	return out, nil
}

type eventContractError struct{ msg string }

func (e eventContractError) Error() string { return "event contract: " + e.msg }

func errEventContract(msg string) error { return eventContractError{msg: msg} }
