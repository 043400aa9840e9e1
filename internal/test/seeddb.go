// Package test provides shared test helpers.
package test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-petr/barstore/internal/domain"
	"github.com/go-petr/barstore/pkg/dbpkg"

	// Registers the "sqlite" driver.
	_ "modernc.org/sqlite"
)

// Schema creates the bar table.
const Schema = `
CREATE TABLE bar (
	id   INTEGER NOT NULL,
	name TEXT    NOT NULL
)
`

// OpenStore opens an in-memory SQLite database with the bar table.
//
// The pool is limited to one connection so every caller sees the same
// database. It is closed when the test ends.
func OpenStore(t *testing.T) *sql.DB {
	t.Helper()

	db, err := dbpkg.Setup("sqlite", ":memory:")
	if err != nil {
		t.Fatalf(`dbpkg.Setup("sqlite", ":memory:") returned error: %v`, err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(Schema); err != nil {
		t.Fatalf("creating schema failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// SeedBar inserts a bar row.
func SeedBar(t *testing.T, db dbpkg.SQLInterface, id int64, name string) domain.Bar {
	t.Helper()

	const query = `INSERT INTO bar (id, name) VALUES ($1, $2)`

	if _, err := db.ExecContext(context.Background(), query, id, name); err != nil {
		t.Fatalf("db.ExecContext(%q, %v, %v) returned error: %v", query, id, name, err)
	}

	return domain.Bar{ID: id, Name: name}
}

// ListBars returns all bar rows ordered by id and name.
func ListBars(t *testing.T, db dbpkg.SQLInterface) []domain.Bar {
	t.Helper()

	const query = `SELECT id, name FROM bar ORDER BY id, name`

	rows, err := db.QueryContext(context.Background(), query)
	if err != nil {
		t.Fatalf("db.QueryContext(%q) returned error: %v", query, err)
	}
	defer rows.Close()

	items := []domain.Bar{}

	for rows.Next() {
		var b domain.Bar
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			t.Fatalf("rows.Scan() returned error: %v", err)
		}

		items = append(items, b)
	}

	if err := rows.Err(); err != nil {
		t.Fatalf("rows.Err() returned error: %v", err)
	}

	return items
}
