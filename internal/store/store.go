// Package store provides the SQLite-backed slots that budget snapshots
// persist into. Payloads are the codec's canonical JSON; the store
// never inspects them.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// DefaultSlot is the budget slot used when none is named.
const DefaultSlot = "default"

// ErrNotFound is returned when a named budget slot does not exist.
var ErrNotFound = errors.New("budget not found")

// Store holds named budget payloads in a SQLite database.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the XDG-compliant database location.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "bplan", "budgets.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "bplan", "budgets.db")
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening budget db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveBudget upserts a serialized budget under the given slot name.
func (s *Store) SaveBudget(name string, payload []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT OR REPLACE INTO budgets (name, payload, updated_at)
		VALUES (?, ?, ?)`, name, string(payload), now)
	if err != nil {
		return fmt.Errorf("saving budget %q: %w", name, err)
	}
	return nil
}

// LoadBudget returns the stored payload for a slot, or ErrNotFound.
func (s *Store) LoadBudget(name string) ([]byte, error) {
	var payload string
	err := s.db.QueryRow("SELECT payload FROM budgets WHERE name = ?", name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading budget %q: %w", name, err)
	}
	return []byte(payload), nil
}

// BudgetInfo describes one stored slot.
type BudgetInfo struct {
	Name      string
	UpdatedAt time.Time
}

// ListBudgets returns all slots, most recently updated first.
func (s *Store) ListBudgets() ([]BudgetInfo, error) {
	rows, err := s.db.Query("SELECT name, updated_at FROM budgets ORDER BY updated_at DESC")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []BudgetInfo
	for rows.Next() {
		var info BudgetInfo
		var updated string
		if err := rows.Scan(&info.Name, &updated); err != nil {
			return nil, err
		}
		info.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
		out = append(out, info)
	}
	return out, rows.Err()
}

// DeleteBudget removes a slot. Deleting a missing slot is not an error.
func (s *Store) DeleteBudget(name string) error {
	_, err := s.db.Exec("DELETE FROM budgets WHERE name = ?", name)
	return err
}

// BudgetCount returns the number of stored slots.
func (s *Store) BudgetCount() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM budgets").Scan(&count)
	return count, err
}
