package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/addralias/internal/model"
)

// DBFileName is the name of the database file inside the data directory.
const DBFileName = "addralias.db"

// busyTimeout is how long a connection waits for a lock held by another process.
const busyTimeout = 5 * time.Second

// ErrNotFound is returned by Find when no saved report matches the key.
var ErrNotFound = errors.New("no saved report matches")

// Store provides SQLite-based storage for derived reports.
type Store struct {
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures Store behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Entry is a saved report together with its storage metadata.
type Entry struct {
	// ID is the row id of the entry.
	ID int64

	// Seeded reports whether the alias was derived with a non-empty seed.
	Seeded bool

	// CreatedAt is when the entry was saved.
	CreatedAt time.Time

	// Report is the decoded report.
	Report *model.Report
}

// Open opens or creates the history database in dbDir.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*Store, error) {
	dbPath := filepath.Join(dbDir, DBFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("history database not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// mode=rw refuses to create a missing file, mode=rwc allows it.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}
	// Wait for a concurrent addralias process instead of failing with SQLITE_BUSY.
	dsn += fmt.Sprintf("&_pragma=busy_timeout(%d)", busyTimeout.Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS reports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		normalized TEXT NOT NULL,
		fingerprint TEXT NOT NULL,
		short_id TEXT NOT NULL,
		alias TEXT NOT NULL,
		seeded INTEGER NOT NULL DEFAULT 0,
		report_json TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_reports_alias ON reports(alias COLLATE NOCASE);
	CREATE INDEX IF NOT EXISTS idx_reports_short_id ON reports(short_id);
	CREATE INDEX IF NOT EXISTS idx_reports_created ON reports(created_at);
	`

	_, err := s.db.ExecContext(context.Background(), schema)
	return err
}

// Save records a report. seeded marks reports whose alias used a seed.
func (s *Store) Save(ctx context.Context, report *model.Report, seeded bool) error {
	if report == nil {
		return errors.New("cannot save nil report")
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	query := `
	INSERT INTO reports (normalized, fingerprint, short_id, alias, seeded, report_json)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		report.Normalized,
		report.Fingerprint,
		report.ShortID,
		report.Alias,
		seeded,
		string(reportJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	return nil
}

// List returns the most recent entries, newest first.
// A limit of zero or less returns every entry.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	query := `
	SELECT id, seeded, created_at, report_json
	FROM reports
	ORDER BY created_at DESC, id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Find returns the entries whose alias (case-insensitive) or short id equals
// key, newest first. ErrNotFound is returned when nothing matches.
func (s *Store) Find(ctx context.Context, key string) ([]Entry, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrNotFound
	}

	query := `
	SELECT id, seeded, created_at, report_json
	FROM reports
	WHERE alias = ? COLLATE NOCASE OR short_id = ?
	ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, key, strings.ToLower(key))
	if err != nil {
		return nil, fmt.Errorf("failed to find report: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w %q", ErrNotFound, key)
	}
	return entries, nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var (
			entry      Entry
			timestamp  string
			reportJSON string
		)
		if err := rows.Scan(&entry.ID, &entry.Seeded, &timestamp, &reportJSON); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}

		var report model.Report
		if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
			continue // Skip malformed rows
		}
		entry.CreatedAt = parseTimestamp(timestamp)
		entry.Report = &report
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// timestampFormats contains the timestamp formats that SQLite may return.
var timestampFormats = []string{
	"2006-01-02 15:04:05",  // SQLite default datetime format
	"2006-01-02T15:04:05Z", // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999",
}

// parseTimestamp returns the zero time when no format matches.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
