// Package store provides a SQLite-backed journal of evaluated snapshots.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/finsim/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Entry is one recorded evaluation. The journal is write-mostly: nothing in
// it is fed back into the effect model.
type Entry struct {
	ID        string
	CreatedAt time.Time
	Profile   string // empty when no profile was selected
	Scenarios []string
	Baseline  model.Baseline
	Inputs    model.Inputs
	Raw       model.Raw
	Effective model.Effective
}

// timeLayout is fixed width so created_at text sorts in time order.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// Journal provides SQLite-backed snapshot storage.
type Journal struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the journal database at the given path.
func Open(dbPath string) (*Journal, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating journal dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening journal db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Journal{db: db, now: time.Now}, nil
}

// Close closes the journal database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record stores e, assigning a fresh ID and timestamp. The stored entry is
// returned.
func (j *Journal) Record(e Entry) (Entry, error) {
	e.ID = uuid.NewString()
	e.CreatedAt = j.now().UTC().Truncate(time.Millisecond)

	tx, err := j.db.Begin()
	if err != nil {
		return e, fmt.Errorf("beginning journal write: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`INSERT INTO journal
		(entry_id, created_at, profile,
		 base_revenue, base_expenses, base_students, base_investment,
		 revenue, expenses, students, investment,
		 raw_profit, raw_margin,
		 eff_revenue, eff_expenses, eff_profit, eff_margin)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.CreatedAt.Format(timeLayout), e.Profile,
		e.Baseline.Revenue, e.Baseline.Expenses, e.Baseline.Students, e.Baseline.Investment,
		e.Inputs.Revenue, e.Inputs.Expenses, e.Inputs.Students, e.Inputs.Investment,
		e.Raw.Profit, e.Raw.Margin,
		e.Effective.Revenue, e.Effective.Expenses, e.Effective.Profit, e.Effective.Margin,
	)
	if err != nil {
		return e, fmt.Errorf("inserting journal entry: %w", err)
	}

	for i, sc := range e.Scenarios {
		_, err = tx.Exec(`INSERT INTO journal_scenarios (entry_id, position, scenario) VALUES (?, ?, ?)`,
			e.ID, i, sc)
		if err != nil {
			return e, fmt.Errorf("inserting journal scenario: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return e, fmt.Errorf("committing journal entry: %w", err)
	}
	return e, nil
}

// List returns up to limit entries, newest first. limit <= 0 returns all.
func (j *Journal) List(limit int) ([]Entry, error) {
	query := `SELECT
		entry_id, created_at, profile,
		base_revenue, base_expenses, base_students, base_investment,
		revenue, expenses, students, investment,
		raw_profit, raw_margin,
		eff_revenue, eff_expenses, eff_profit, eff_margin
		FROM journal ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying journal: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var created string
		var profile sql.NullString
		err := rows.Scan(
			&e.ID, &created, &profile,
			&e.Baseline.Revenue, &e.Baseline.Expenses, &e.Baseline.Students, &e.Baseline.Investment,
			&e.Inputs.Revenue, &e.Inputs.Expenses, &e.Inputs.Students, &e.Inputs.Investment,
			&e.Raw.Profit, &e.Raw.Margin,
			&e.Effective.Revenue, &e.Effective.Expenses, &e.Effective.Profit, &e.Effective.Margin,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning journal entry: %w", err)
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		if profile.Valid {
			e.Profile = profile.String
		}
		e.Raw.Revenue, e.Raw.Expenses = e.Inputs.Revenue, e.Inputs.Expenses
		e.Raw.Students, e.Raw.Investment = e.Inputs.Students, e.Inputs.Investment
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return entries, nil
	}

	// Batch-load scenarios
	scRows, err := j.db.Query(`SELECT entry_id, scenario FROM journal_scenarios ORDER BY entry_id, position`)
	if err != nil {
		return nil, fmt.Errorf("querying journal scenarios: %w", err)
	}
	defer func() { _ = scRows.Close() }()

	idx := make(map[string]int, len(entries))
	for i, e := range entries {
		idx[e.ID] = i
	}
	for scRows.Next() {
		var id, sc string
		if err := scRows.Scan(&id, &sc); err != nil {
			return nil, fmt.Errorf("scanning journal scenario: %w", err)
		}
		if i, ok := idx[id]; ok {
			entries[i].Scenarios = append(entries[i].Scenarios, sc)
		}
	}
	return entries, scRows.Err()
}

// Count returns the number of journal entries.
func (j *Journal) Count() (int, error) {
	var count int
	err := j.db.QueryRow("SELECT COUNT(*) FROM journal").Scan(&count)
	return count, err
}

// Clear removes every entry and returns how many were deleted.
func (j *Journal) Clear() (int64, error) {
	res, err := j.db.Exec("DELETE FROM journal")
	if err != nil {
		return 0, fmt.Errorf("clearing journal: %w", err)
	}
	return res.RowsAffected()
}
