// SPDX-License-Identifier: MIT

package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/boukman/inventory"

	_ "modernc.org/sqlite"
)

// ErrClosed is returned by operations on a closed Store.
var ErrClosed = errors.New("sqlstore: store is closed")

// Store is an inventory backed by a SQLite database.
type Store struct {
	db *sql.DB
}

var _ inventory.Inventory = (*Store)(nil)

// Open opens (or creates) the database at dsn and migrates its schema.
// dsn is any modernc.org/sqlite data source, including ":memory:".
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: open %q: %w", dsn, err)
	}
	// A single connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlstore: migrate: %w", err)
	}

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	schema := `
	PRAGMA foreign_keys = ON;

	CREATE TABLE IF NOT EXISTS entities (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		unit TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS exchanges (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		input_id TEXT NOT NULL,
		output_id TEXT NOT NULL,
		amount REAL NOT NULL,
		FOREIGN KEY (input_id) REFERENCES entities(id) ON DELETE CASCADE,
		FOREIGN KEY (output_id) REFERENCES entities(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_exchanges_output ON exchanges(output_id);
	`

	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s.db == nil {
		return ErrClosed
	}
	err := s.db.Close()
	s.db = nil

	return err
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PutEntity inserts e or updates the entity with the same ID.
func (s *Store) PutEntity(ctx context.Context, e inventory.Entity) error {
	if s.db == nil {
		return ErrClosed
	}

	return putEntity(ctx, s.db, e)
}

// PutExchange appends an exchange. Both endpoints must already exist
// (inventory.ErrUnknownEntity otherwise).
func (s *Store) PutExchange(ctx context.Context, ex inventory.Exchange) error {
	if s.db == nil {
		return ErrClosed
	}

	return putExchange(ctx, s.db, ex)
}

// Import writes entities, then exchanges, in one transaction; on any error
// nothing is written.
func (s *Store) Import(ctx context.Context, entities []inventory.Entity, exchanges []inventory.Exchange) error {
	if s.db == nil {
		return ErrClosed
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlstore: begin import: %w", err)
	}
	defer tx.Rollback()

	for _, e := range entities {
		if err = putEntity(ctx, tx, e); err != nil {
			return err
		}
	}
	for _, ex := range exchanges {
		if err = putExchange(ctx, tx, ex); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("sqlstore: commit import: %w", err)
	}

	return nil
}

func putEntity(ctx context.Context, q queryer, e inventory.Entity) error {
	if e.ID == "" {
		return fmt.Errorf("sqlstore: entity with empty id: %w", inventory.ErrUnknownEntity)
	}
	_, err := q.ExecContext(ctx, `
		INSERT INTO entities (id, name, unit, location) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, unit = excluded.unit, location = excluded.location
	`, string(e.ID), e.Name, e.Unit, e.Location)
	if err != nil {
		return fmt.Errorf("sqlstore: put entity %q: %w", e.ID, err)
	}

	return nil
}

func putExchange(ctx context.Context, q queryer, ex inventory.Exchange) error {
	for _, id := range []inventory.EntityID{ex.Input, ex.Output} {
		var n int
		if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM entities WHERE id = ?`, string(id)).Scan(&n); err != nil {
			return fmt.Errorf("sqlstore: lookup entity %q: %w", id, err)
		}
		if n == 0 {
			return fmt.Errorf("%w: %q in exchange %q -> %q", inventory.ErrUnknownEntity, id, ex.Input, ex.Output)
		}
	}
	_, err := q.ExecContext(ctx,
		`INSERT INTO exchanges (input_id, output_id, amount) VALUES (?, ?, ?)`,
		string(ex.Input), string(ex.Output), ex.Amount)
	if err != nil {
		return fmt.Errorf("sqlstore: put exchange %q -> %q: %w", ex.Input, ex.Output, err)
	}

	return nil
}

// Entities returns every entity ordered by ID.
func (s *Store) Entities(ctx context.Context) ([]inventory.Entity, error) {
	if s.db == nil {
		return nil, ErrClosed
	}

	return scanEntities(ctx, s.db, `SELECT id, name, unit, location FROM entities ORDER BY id`)
}

// Exchanges returns every exchange in insertion order.
func (s *Store) Exchanges(ctx context.Context) ([]inventory.Exchange, error) {
	if s.db == nil {
		return nil, ErrClosed
	}

	return scanExchanges(ctx, s.db, `SELECT input_id, output_id, amount FROM exchanges ORDER BY id`)
}

// Technosphere loads only the supply chain reachable from demand, walking
// exchanges upstream with a recursive query, and builds its flow matrix.
func (s *Store) Technosphere(ctx context.Context, demand ...inventory.EntityID) (*inventory.Technosphere, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	if len(demand) == 0 {
		return nil, inventory.ErrEmptyDemand
	}

	seeds := make([]string, len(demand))
	args := make([]any, len(demand))
	for i, id := range demand {
		seeds[i] = "(?)"
		args[i] = string(id)
	}
	chain := `WITH RECURSIVE chain(id) AS (
		VALUES ` + strings.Join(seeds, ", ") + `
		UNION
		SELECT x.input_id FROM exchanges x JOIN chain c ON x.output_id = c.id
	) `

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: begin read: %w", err)
	}
	defer tx.Rollback()

	entities, err := scanEntities(ctx, tx, chain+
		`SELECT id, name, unit, location FROM entities WHERE id IN (SELECT id FROM chain) ORDER BY id`, args...)
	if err != nil {
		return nil, err
	}
	exchanges, err := scanExchanges(ctx, tx, chain+
		`SELECT input_id, output_id, amount FROM exchanges WHERE output_id IN (SELECT id FROM chain) ORDER BY id`, args...)
	if err != nil {
		return nil, err
	}

	return inventory.BuildTechnosphere(entities, exchanges, demand)
}

func scanEntities(ctx context.Context, q queryer, query string, args ...any) ([]inventory.Entity, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: query entities: %w", err)
	}
	defer rows.Close()

	var out []inventory.Entity
	for rows.Next() {
		var (
			e  inventory.Entity
			id string
		)
		if err := rows.Scan(&id, &e.Name, &e.Unit, &e.Location); err != nil {
			return nil, fmt.Errorf("sqlstore: scan entity: %w", err)
		}
		e.ID = inventory.EntityID(id)
		out = append(out, e)
	}

	return out, rows.Err()
}

func scanExchanges(ctx context.Context, q queryer, query string, args ...any) ([]inventory.Exchange, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: query exchanges: %w", err)
	}
	defer rows.Close()

	var out []inventory.Exchange
	for rows.Next() {
		var (
			ex            inventory.Exchange
			input, output string
		)
		if err := rows.Scan(&input, &output, &ex.Amount); err != nil {
			return nil, fmt.Errorf("sqlstore: scan exchange: %w", err)
		}
		ex.Input, ex.Output = inventory.EntityID(input), inventory.EntityID(output)
		out = append(out, ex)
	}

	return out, rows.Err()
}
