// Package journal implements the persistent event store for Solace.
//
// It uses SQLite to keep four append-only logs — mood check-ins, logged
// actions, actuation decisions, and feedback — and exposes the read
// queries the coaching and actuation engines derive from. Entries are
// immutable once written: there is no update or delete path.
package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// ─── Types ───────────────────────────────────────────────────────────────────

// MoodEntry is a single mood/energy/focus check-in.
//
// The enumerated values are "low"/"neutral"/"good", "low"/"medium"/"high"
// and "drifting"/"ok"/"locked-in", but the store accepts and persists any
// string verbatim; the rule engines treat unknown values as non-matches.
type MoodEntry struct {
	Timestamp string `json:"timestamp"`
	Mood      string `json:"mood"`
	Energy    string `json:"energy"`
	Focus     string `json:"focus"`
}

// ActionEntry is a single logged action with its success flag.
type ActionEntry struct {
	Timestamp string `json:"timestamp"`
	Action    string `json:"action"`
	Success   bool   `json:"success"`
}

// FeedbackEntry records whether the most recent suggestion or plan helped.
type FeedbackEntry struct {
	Timestamp string  `json:"timestamp"`
	Helped    bool    `json:"helped"`
	Note      *string `json:"note,omitempty"`
}

// ActuationParams holds one computed actuation decision for persistence.
// The command payloads are stored as JSON text; the store does not
// interpret them.
type ActuationParams struct {
	Mood            string
	Energy          string
	Focus           string
	StreakDays      int
	Lights          any
	Speaker         any
	Robot           any
	RequestedDevice string
}

// ActuationRecord is a persisted actuation decision, commands still
// JSON-encoded as written.
type ActuationRecord struct {
	Timestamp       string          `json:"timestamp"`
	Mood            string          `json:"mood"`
	Energy          string          `json:"energy"`
	Focus           string          `json:"focus"`
	StreakDays      int             `json:"streak_days"`
	Lights          json.RawMessage `json:"lights"`
	Speaker         json.RawMessage `json:"speaker"`
	Robot           json.RawMessage `json:"robot"`
	RequestedDevice *string         `json:"requested_device,omitempty"`
}

// Summary holds simple counts of stored moods and actions.
type Summary struct {
	MoodEntries   int `json:"mood_entries"`
	ActionEntries int `json:"action_entries"`
}

// DefaultHistoryLimit bounds history reads when the caller passes no limit.
const DefaultHistoryLimit = 20

// ─── Config ──────────────────────────────────────────────────────────────────

// Config holds journal store configuration.
type Config struct {
	DataDir string
}

// DefaultConfig returns the default configuration for the journal store.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DataDir: filepath.Join(home, ".solace"),
	}
}

// ─── Store ───────────────────────────────────────────────────────────────────

// Store is the append-only event store backed by SQLite.
//
// Every public operation is a complete, independent unit of work: each
// read re-queries the database, so callers always observe the latest
// committed writes. The engines built on top of Store never mutate
// entries — they read snapshots and produce derived values.
type Store struct {
	db  *sql.DB
	cfg Config
}

// New creates a Store with the given configuration. It creates the data
// directory if needed, opens SQLite with WAL mode, and runs migrations.
func New(cfg Config) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("journal: create data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "solace.db")
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("journal: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("journal: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db, cfg: cfg}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("journal: migration: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ─── Migrations ──────────────────────────────────────────────────────────────

// migrate creates the four log tables. mood_logs and action_logs keep the
// layout of the original deployment for data compatibility; the actuation
// and feedback logs follow the same append-only pattern.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS mood_logs (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp TEXT NOT NULL,
			mood      TEXT NOT NULL,
			energy    TEXT NOT NULL,
			focus     TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS action_logs (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp TEXT NOT NULL,
			action    TEXT NOT NULL,
			success   INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS actuation_logs (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp        TEXT NOT NULL,
			mood             TEXT NOT NULL,
			energy           TEXT NOT NULL,
			focus            TEXT NOT NULL,
			streak_days      INTEGER NOT NULL,
			lights           TEXT NOT NULL,
			speaker          TEXT NOT NULL,
			robot            TEXT NOT NULL,
			requested_device TEXT
		);

		CREATE TABLE IF NOT EXISTS feedback_logs (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp TEXT NOT NULL,
			helped    INTEGER NOT NULL,
			note      TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_mood_ts     ON mood_logs(timestamp DESC);
		CREATE INDEX IF NOT EXISTS idx_action_ts   ON action_logs(timestamp DESC);
		CREATE INDEX IF NOT EXISTS idx_action_ok   ON action_logs(success, timestamp DESC);
		CREATE INDEX IF NOT EXISTS idx_actuate_ts  ON actuation_logs(timestamp DESC);
		CREATE INDEX IF NOT EXISTS idx_feedback_ts ON feedback_logs(timestamp DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// ─── Writes ──────────────────────────────────────────────────────────────────

// InsertMood stores a mood check-in stamped with the current UTC time and
// returns the stored entry. Values are persisted verbatim, unvalidated.
func (s *Store) InsertMood(mood, energy, focus string) (MoodEntry, error) {
	ts := Now()
	_, err := s.db.Exec(
		`INSERT INTO mood_logs (timestamp, mood, energy, focus) VALUES (?, ?, ?, ?)`,
		ts, mood, energy, focus,
	)
	if err != nil {
		return MoodEntry{}, fmt.Errorf("journal: insert mood: %w", err)
	}
	return MoodEntry{Timestamp: ts, Mood: mood, Energy: energy, Focus: focus}, nil
}

// InsertAction stores a logged action stamped with the current UTC time.
func (s *Store) InsertAction(action string, success bool) (ActionEntry, error) {
	ts := Now()
	_, err := s.db.Exec(
		`INSERT INTO action_logs (timestamp, action, success) VALUES (?, ?, ?)`,
		ts, action, boolToInt(success),
	)
	if err != nil {
		return ActionEntry{}, fmt.Errorf("journal: insert action: %w", err)
	}
	return ActionEntry{Timestamp: ts, Action: action, Success: success}, nil
}

// insertActionAt backdates an action entry. Streak tests need entries on
// past calendar days; production code always goes through InsertAction.
func (s *Store) insertActionAt(ts, action string, success bool) error {
	_, err := s.db.Exec(
		`INSERT INTO action_logs (timestamp, action, success) VALUES (?, ?, ?)`,
		ts, action, boolToInt(success),
	)
	return err
}

// InsertActuation stores one computed actuation decision. The lights,
// speaker and robot commands are JSON-encoded as opaque payloads.
func (s *Store) InsertActuation(p ActuationParams) error {
	lights, err := json.Marshal(p.Lights)
	if err != nil {
		return fmt.Errorf("journal: encode lights command: %w", err)
	}
	speaker, err := json.Marshal(p.Speaker)
	if err != nil {
		return fmt.Errorf("journal: encode speaker command: %w", err)
	}
	robot, err := json.Marshal(p.Robot)
	if err != nil {
		return fmt.Errorf("journal: encode robot command: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO actuation_logs (timestamp, mood, energy, focus, streak_days, lights, speaker, robot, requested_device)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		Now(), p.Mood, p.Energy, p.Focus, p.StreakDays,
		string(lights), string(speaker), string(robot),
		nullableString(p.RequestedDevice),
	)
	if err != nil {
		return fmt.Errorf("journal: insert actuation: %w", err)
	}
	return nil
}

// InsertFeedback stores a feedback entry. The note is optional; an empty
// string is persisted as NULL.
func (s *Store) InsertFeedback(helped bool, note string) (FeedbackEntry, error) {
	ts := Now()
	_, err := s.db.Exec(
		`INSERT INTO feedback_logs (timestamp, helped, note) VALUES (?, ?, ?)`,
		ts, boolToInt(helped), nullableString(note),
	)
	if err != nil {
		return FeedbackEntry{}, fmt.Errorf("journal: insert feedback: %w", err)
	}
	return FeedbackEntry{Timestamp: ts, Helped: helped, Note: nullableString(note)}, nil
}

// ─── Reads ───────────────────────────────────────────────────────────────────

// MoodHistory returns the most recent mood entries, newest first. Ties on
// timestamp keep insertion order. A non-positive limit reads
// DefaultHistoryLimit entries.
func (s *Store) MoodHistory(limit int) ([]MoodEntry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	rows, err := s.db.Query(
		`SELECT timestamp, mood, energy, focus
		 FROM mood_logs
		 ORDER BY timestamp DESC, id ASC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("journal: mood history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var history []MoodEntry
	for rows.Next() {
		var e MoodEntry
		if err := rows.Scan(&e.Timestamp, &e.Mood, &e.Energy, &e.Focus); err != nil {
			return nil, err
		}
		history = append(history, e)
	}
	return history, rows.Err()
}

// ActionHistory returns the most recent action entries, newest first.
func (s *Store) ActionHistory(limit int) ([]ActionEntry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	rows, err := s.db.Query(
		`SELECT timestamp, action, success
		 FROM action_logs
		 ORDER BY timestamp DESC, id ASC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("journal: action history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var history []ActionEntry
	for rows.Next() {
		var e ActionEntry
		var success int
		if err := rows.Scan(&e.Timestamp, &e.Action, &success); err != nil {
			return nil, err
		}
		e.Success = success != 0
		history = append(history, e)
	}
	return history, rows.Err()
}

// FeedbackHistory returns the most recent feedback entries, newest first.
func (s *Store) FeedbackHistory(limit int) ([]FeedbackEntry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	rows, err := s.db.Query(
		`SELECT timestamp, helped, note
		 FROM feedback_logs
		 ORDER BY timestamp DESC, id ASC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("journal: feedback history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var history []FeedbackEntry
	for rows.Next() {
		var e FeedbackEntry
		var helped int
		if err := rows.Scan(&e.Timestamp, &helped, &e.Note); err != nil {
			return nil, err
		}
		e.Helped = helped != 0
		history = append(history, e)
	}
	return history, rows.Err()
}

// ActuationHistory returns the most recent actuation records, newest first.
func (s *Store) ActuationHistory(limit int) ([]ActuationRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	rows, err := s.db.Query(
		`SELECT timestamp, mood, energy, focus, streak_days, lights, speaker, robot, requested_device
		 FROM actuation_logs
		 ORDER BY timestamp DESC, id ASC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("journal: actuation history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var history []ActuationRecord
	for rows.Next() {
		var r ActuationRecord
		var lights, speaker, robot string
		if err := rows.Scan(
			&r.Timestamp, &r.Mood, &r.Energy, &r.Focus, &r.StreakDays,
			&lights, &speaker, &robot, &r.RequestedDevice,
		); err != nil {
			return nil, err
		}
		r.Lights = json.RawMessage(lights)
		r.Speaker = json.RawMessage(speaker)
		r.Robot = json.RawMessage(robot)
		history = append(history, r)
	}
	return history, rows.Err()
}

// LatestMood returns the most recent mood entry, or nil if no check-in
// has ever been recorded. Absence is not an error.
func (s *Store) LatestMood() (*MoodEntry, error) {
	row := s.db.QueryRow(
		`SELECT timestamp, mood, energy, focus
		 FROM mood_logs
		 ORDER BY timestamp DESC, id ASC
		 LIMIT 1`,
	)
	var e MoodEntry
	if err := row.Scan(&e.Timestamp, &e.Mood, &e.Energy, &e.Focus); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("journal: latest mood: %w", err)
	}
	return &e, nil
}

// Summary returns counts of stored moods and actions.
func (s *Store) Summary() (Summary, error) {
	var sum Summary
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM mood_logs`).Scan(&sum.MoodEntries); err != nil {
		return Summary{}, fmt.Errorf("journal: count moods: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM action_logs`).Scan(&sum.ActionEntries); err != nil {
		return Summary{}, fmt.Errorf("journal: count actions: %w", err)
	}
	return sum, nil
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
