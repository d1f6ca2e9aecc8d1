package database

import (
	"context"
	"path/filepath"
	"testing"

	"earthwords/internal/config"
)

const testMigrationsPath = "../../migrations"

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := InitializeWithConfig(&config.Config{DatabaseType: "sqlite", DatabasePath: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations(testMigrationsPath); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

// TestDatabaseIntegration tests the complete database lifecycle
func TestDatabaseIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)
	ctx := context.Background()

	for _, table := range []string{"migrations", "learner_blobs"} {
		var name string
		err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("Table %s not found: %v", table, err)
		}
	}

	// Running again must be a no-op
	if err := db.RunMigrations(testMigrationsPath); err != nil {
		t.Fatalf("Second migration run failed: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count); err != nil {
		t.Fatalf("Failed to count migrations: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 recorded migration, got %d", count)
	}
}

func TestUpsertBlob(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)

	for _, value := range []string{`["crust"]`, `["crust","core"]`} {
		if _, err := db.Exec(db.Dialect.UpsertBlobQuery(), "learner-1", "completedEarthLayersWords", value); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
	}

	var stored string
	err := db.QueryRow("SELECT blob_value FROM learner_blobs WHERE learner_id = ? AND blob_key = ?",
		"learner-1", "completedEarthLayersWords").Scan(&stored)
	if err != nil {
		t.Fatalf("Failed to read blob: %v", err)
	}
	if stored != `["crust","core"]` {
		t.Errorf("stored = %s, want the second write", stored)
	}
}

// TestDatabaseTransactions tests transaction support
func TestDatabaseTransactions(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)

	err := db.WithTx(func(tx *Tx) error {
		_, err := tx.Exec(tx.GetDialect().UpsertBlobQuery(), "learner-1", "streakData", `["2024-05-01"]`)
		return err
	})
	if err != nil {
		t.Fatalf("Committed transaction failed: %v", err)
	}

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}
	if _, err := tx.Exec(tx.GetDialect().UpsertBlobQuery(), "learner-2", "streakData", `[]`); err != nil {
		tx.Rollback()
		t.Fatalf("Failed to insert in transaction: %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("Failed to rollback transaction: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM learner_blobs").Scan(&count); err != nil {
		t.Fatalf("Failed to count blobs: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 blob after rollback, got %d", count)
	}
}
