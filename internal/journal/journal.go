// Package journal appends study events to an optional SQLite file.
// It is write-mostly: nothing in the app reads it back to restore mastery.
package journal

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/vytor/flashcards/internal/logger"
	"github.com/vytor/flashcards/internal/models"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// Event is one applied study action.
type Event struct {
	Action    models.Action
	CardIndex int
	Question  string
	At        time.Time
}

// Journal records events for a single study session.
type Journal struct {
	db      *sql.DB
	session string
	owned   bool
}

// Open opens (or creates) the journal at path and starts a session.
func Open(ctx context.Context, path string, cardCount int) (*Journal, error) {
	db, err := OpenDB(ctx, path)
	if err != nil {
		return nil, err
	}
	j, err := New(ctx, db, cardCount)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	j.owned = true
	return j, nil
}

// New starts a session on an already migrated database. Close will not
// close db.
func New(ctx context.Context, db *sql.DB, cardCount int) (*Journal, error) {
	log := logger.FromContext(ctx).WithPrefix("journal")
	j := &Journal{db: db, session: uuid.NewString()}

	query, args, err := sqlBuilder.Insert("sessions").
		Columns("id", "card_count").
		Values(j.session, cardCount).
		ToSql()
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to start session: %v", err)
		return nil, err
	}
	log.Debug("session started: id=%s, cards=%d", j.session, cardCount)
	return j, nil
}

// SessionID returns the identifier stamped on every event of this session.
func (j *Journal) SessionID() string {
	return j.session
}

// Record appends ev to the session.
func (j *Journal) Record(ctx context.Context, ev Event) error {
	log := logger.FromContext(ctx).WithPrefix("journal")

	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}
	query, args, err := sqlBuilder.Insert("review_events").
		Columns("session_id", "action", "card_index", "question", "created_at").
		Values(j.session, ev.Action.String(), ev.CardIndex, ev.Question, at.UTC()).
		ToSql()
	if err != nil {
		log.Error("failed to build insert: %v", err)
		return err
	}
	if _, err := j.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to record %s: %v", ev.Action, err)
		return err
	}
	return nil
}

// Summary counts this session's events per action.
func (j *Journal) Summary(ctx context.Context) (map[models.Action]int, error) {
	query, args, err := sqlBuilder.Select("action", "COUNT(*)").
		From("review_events").
		Where(squirrel.Eq{"session_id": j.session}).
		GroupBy("action").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[models.Action]int)
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, err
		}
		counts[models.ParseAction(name)] = n
	}
	return counts, rows.Err()
}

// Events lists this session's events oldest first.
func (j *Journal) Events(ctx context.Context) ([]Event, error) {
	query, args, err := sqlBuilder.Select("action", "card_index", "question", "created_at").
		From("review_events").
		Where(squirrel.Eq{"session_id": j.session}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var ev Event
		var name string
		if err := rows.Scan(&name, &ev.CardIndex, &ev.Question, &ev.At); err != nil {
			return nil, err
		}
		ev.Action = models.ParseAction(name)
		events = append(events, ev)
	}
	return events, rows.Err()
}

// Close releases the database if the journal opened it.
func (j *Journal) Close() error {
	if !j.owned {
		return nil
	}
	return j.db.Close()
}
