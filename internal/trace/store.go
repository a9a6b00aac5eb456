// Package trace stores recorded touch-sample streams in sqlite so gesture
// recognition can be replayed and inspected offline.
package trace

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/touchlab-io/gesturekit/gesture"
)

// Recording is one captured touch stream, usually labelled with the gesture
// it is expected to produce.
type Recording struct {
	ID        string
	Name      string
	Gesture   gesture.ID // expected identity; Unknown when unlabelled
	CreatedAt time.Time
	Samples   []gesture.Sample
}

// Store handles recordings.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Insert writes a recording with its samples in one transaction.
func (s *Store) Insert(ctx context.Context, r Recording) error {
	return WithTx(s.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO recordings(id, name, gesture, created_at)
		VALUES(?, ?, ?, CURRENT_TIMESTAMP);
		`, r.ID, r.Name, gestureLabel(r.Gesture))
		if err != nil {
			return err
		}
		for i, smp := range r.Samples {
			pts, err := json.Marshal(encodePoints(smp.Pointers))
			if err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx, `
			INSERT INTO samples(recording_id, seq, action, time_us, display_id, pointers)
			VALUES(?, ?, ?, ?, ?, ?);
			`, r.ID, i, int(smp.Action), smp.Time.Microseconds(), smp.DisplayID, string(pts))
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Get loads one recording with its samples in stream order.
func (s *Store) Get(ctx context.Context, id string) (Recording, error) {
	var r Recording
	var label string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, gesture, created_at FROM recordings WHERE id = ?`, id).
		Scan(&r.ID, &r.Name, &label, &r.CreatedAt)
	if err != nil {
		return Recording{}, err
	}
	r.Gesture = parseLabel(label)

	rows, err := s.db.QueryContext(ctx, `
	SELECT action, time_us, display_id, pointers FROM samples
	WHERE recording_id = ? ORDER BY seq`, id)
	if err != nil {
		return Recording{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var action int
		var timeUS int64
		var displayID int
		var pts string
		if err := rows.Scan(&action, &timeUS, &displayID, &pts); err != nil {
			return Recording{}, err
		}
		var coords [][2]float64
		if err := json.Unmarshal([]byte(pts), &coords); err != nil {
			return Recording{}, fmt.Errorf("recording %s: bad pointers: %w", id, err)
		}
		r.Samples = append(r.Samples, gesture.Sample{
			Action:    gesture.Action(action),
			Pointers:  decodePoints(coords),
			Time:      time.Duration(timeUS) * time.Microsecond,
			DisplayID: displayID,
		})
	}
	return r, rows.Err()
}

// List returns recording headers, newest first, without samples.
func (s *Store) List(ctx context.Context) ([]Recording, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, name, gesture, created_at FROM recordings
	ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Recording
	for rows.Next() {
		var r Recording
		var label string
		if err := rows.Scan(&r.ID, &r.Name, &label, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.Gesture = parseLabel(label)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Delete removes a recording; samples go with it via the cascade.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM recordings WHERE id = ?`, id)
	return err
}

func gestureLabel(id gesture.ID) string {
	if id == gesture.Unknown {
		return ""
	}
	return id.String()
}

func parseLabel(label string) gesture.ID {
	if label == "" {
		return gesture.Unknown
	}
	id, ok := gesture.ParseID(label)
	if !ok {
		return gesture.Unknown
	}
	return id
}

func encodePoints(pts []gesture.Point) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, p := range pts {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}

func decodePoints(coords [][2]float64) []gesture.Point {
	out := make([]gesture.Point, len(coords))
	for i, c := range coords {
		out[i] = gesture.Point{X: c[0], Y: c[1]}
	}
	return out
}
