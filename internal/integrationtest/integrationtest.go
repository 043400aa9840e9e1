// Package integrationtest provides db helpers used in integration tests.
package integrationtest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/go-petr/barstore/pkg/configpkg"
	"github.com/go-petr/barstore/pkg/dbpkg"
)

// LoadConfig loads the application config or fails the test.
func LoadConfig(t *testing.T, path string) configpkg.Config {
	t.Helper()

	config, err := configpkg.Load(path)
	if err != nil {
		t.Fatalf(`configpkg.Load(%q) returned error: %v`, path, err)
	}

	return config
}

// Flush empties the bar table without dropping it.
func Flush(t *testing.T, db *sql.DB) {
	t.Helper()

	if _, err := db.Exec(`TRUNCATE TABLE bar`); err != nil {
		t.Fatalf("db cleanup failed. err: %v", err)
	}
}

// SetupDB sets up connection with database for testing and then cleans it.
//
// The bar table is created when missing.
func SetupDB(t *testing.T, driver, source string) *sql.DB {
	t.Helper()

	db, err := dbpkg.Setup(driver, source)
	if err != nil {
		t.Fatalf("db initialization failed. err: %v", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS bar (id BIGINT NOT NULL, name TEXT NOT NULL)`); err != nil {
		t.Fatalf("schema creation failed. err: %v", err)
	}

	Flush(t, db)

	t.Cleanup(func() {
		Flush(t, db)

		if err := db.Close(); err != nil {
			t.Fatalf("db cleanup failed. err: %v", err)
		}
	})

	return db
}

// SetupPool sets up a pgx pool for testing. It is closed when the test ends.
func SetupPool(t *testing.T, source string) *pgxpool.Pool {
	t.Helper()

	pool, err := dbpkg.SetupPool(context.Background(), source, 0)
	if err != nil {
		t.Fatalf("pool initialization failed. err: %v", err)
	}

	t.Cleanup(pool.Close)

	return pool
}
