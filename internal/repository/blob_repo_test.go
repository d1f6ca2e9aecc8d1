package repository

import (
	"path/filepath"
	"testing"

	"earthwords/internal/config"
	"earthwords/internal/database"
)

func newTestRepo(t *testing.T) (*BlobRepository, *database.DB) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db, err := database.InitializeWithConfig(&config.Config{DatabaseType: "sqlite", DatabasePath: filepath.Join(t.TempDir(), "blobs.db")})
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return NewBlobRepository(db), db
}

func TestBlobRepositoryGetMissing(t *testing.T) {
	repo, _ := newTestRepo(t)

	value, found, err := repo.GetBlob("nobody", "placedStickers")
	if err != nil {
		t.Fatalf("GetBlob() error = %v", err)
	}
	if found || value != nil {
		t.Errorf("GetBlob() = %q, %v; want nil, false", value, found)
	}
}

func TestBlobRepositorySetAndOverwrite(t *testing.T) {
	repo, _ := newTestRepo(t)

	if err := repo.SetBlob("learner-1", "streakData", []byte(`["2024-05-01"]`)); err != nil {
		t.Fatalf("SetBlob() error = %v", err)
	}
	if err := repo.SetBlob("learner-1", "streakData", []byte(`["2024-05-01","2024-05-02"]`)); err != nil {
		t.Fatalf("SetBlob() error = %v", err)
	}

	value, found, err := repo.GetBlob("learner-1", "streakData")
	if err != nil || !found {
		t.Fatalf("GetBlob() found = %v, err = %v", found, err)
	}
	if string(value) != `["2024-05-01","2024-05-02"]` {
		t.Errorf("GetBlob() = %s, want last write", value)
	}
}

func TestBlobRepositoryLearnersAreIsolated(t *testing.T) {
	repo, _ := newTestRepo(t)

	repo.SetBlob("learner-1", "placedStickers", []byte(`{}`))
	repo.SetBlob("learner-2", "streakData", []byte(`[]`))
	repo.SetBlob("learner-2", "placedStickers", []byte(`{}`))

	if _, found, _ := repo.GetBlob("learner-1", "streakData"); found {
		t.Error("learner-1 sees learner-2's streakData")
	}

	count, err := repo.CountLearners()
	if err != nil {
		t.Fatalf("CountLearners() error = %v", err)
	}
	if count != 2 {
		t.Errorf("CountLearners() = %d, want 2", count)
	}

	if err := repo.DeleteAll(); err != nil {
		t.Fatalf("DeleteAll() error = %v", err)
	}
	if count, _ := repo.CountLearners(); count != 0 {
		t.Errorf("CountLearners() = %d after DeleteAll, want 0", count)
	}
}

func TestBlobRepositoryInTransaction(t *testing.T) {
	_, db := newTestRepo(t)

	err := db.WithTx(func(tx *database.Tx) error {
		return NewBlobRepository(tx).SetBlob("learner-1", "earthLayersQuizCompleted", []byte(`true`))
	})
	if err != nil {
		t.Fatalf("WithTx() error = %v", err)
	}

	value, found, err := NewBlobRepository(db).GetBlob("learner-1", "earthLayersQuizCompleted")
	if err != nil || !found || string(value) != "true" {
		t.Errorf("GetBlob() = %s, %v, %v", value, found, err)
	}
}
