package logging

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// TurnRecord is one row of the turn log.
type TurnRecord struct {
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id"`
	Turn      int       `json:"turn"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	Room      string    `json:"room"`
	Condition string    `json:"condition"`
	Status    string    `json:"status"`
}

// TurnLogger appends played turns to a sqlite table. It is an audit trail;
// nothing reads it back into a game.
type TurnLogger struct {
	db *sql.DB
}

func NewTurnLogger(path string) (*TurnLogger, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	logger := &TurnLogger{db: db}
	if err := logger.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return logger, nil
}

func (tl *TurnLogger) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS turns (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		session_id TEXT NOT NULL,
		turn INTEGER NOT NULL,
		input TEXT NOT NULL,
		output TEXT NOT NULL,
		room TEXT NOT NULL,
		condition TEXT NOT NULL,
		status TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_turns_timestamp ON turns(timestamp);
	CREATE INDEX IF NOT EXISTS idx_turns_session ON turns(session_id);
	`

	_, err := tl.db.Exec(schema)
	return err
}

func (tl *TurnLogger) RecordTurn(ctx context.Context, rec TurnRecord) error {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	_, err := tl.db.ExecContext(ctx, `
		INSERT INTO turns (timestamp, session_id, turn, input, output, room, condition, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.Timestamp, rec.SessionID, rec.Turn, rec.Input, rec.Output, rec.Room, rec.Condition, rec.Status)
	if err != nil {
		return fmt.Errorf("failed to record turn: %w", err)
	}
	return nil
}

// RecentTurns returns up to limit turns, newest first.
func (tl *TurnLogger) RecentTurns(ctx context.Context, limit int) ([]TurnRecord, error) {
	rows, err := tl.db.QueryContext(ctx, `
		SELECT id, timestamp, session_id, turn, input, output, room, condition, status
		FROM turns
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query turns: %w", err)
	}
	defer rows.Close()

	var turns []TurnRecord
	for rows.Next() {
		var rec TurnRecord
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.SessionID, &rec.Turn, &rec.Input,
			&rec.Output, &rec.Room, &rec.Condition, &rec.Status); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		turns = append(turns, rec)
	}
	return turns, rows.Err()
}

func (tl *TurnLogger) Close() error {
	return tl.db.Close()
}
