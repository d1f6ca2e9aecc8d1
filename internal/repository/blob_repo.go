package repository

import (
	"database/sql"
	"errors"
	"time"

	"earthwords/internal/database"
)

// Blob is one persisted key/value document belonging to a learner
type Blob struct {
	LearnerID string    `db:"learner_id" json:"learner_id"`
	Key       string    `db:"blob_key" json:"key"`
	Value     string    `db:"blob_value" json:"value"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// BlobRepository handles learner_blobs database operations
type BlobRepository struct {
	db database.DBTX
}

// NewBlobRepository creates a new blob repository
func NewBlobRepository(db database.DBTX) *BlobRepository {
	return &BlobRepository{db: db}
}

// GetBlob retrieves a blob value. The bool is false when no row exists.
func (r *BlobRepository) GetBlob(learnerID, key string) ([]byte, bool, error) {
	query := `SELECT blob_value FROM learner_blobs WHERE learner_id = ? AND blob_key = ?`

	var value string
	err := r.db.QueryRow(query, learnerID, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

// SetBlob inserts or replaces a blob value
func (r *BlobRepository) SetBlob(learnerID, key string, value []byte) error {
	_, err := r.db.Exec(r.db.GetDialect().UpsertBlobQuery(), learnerID, key, string(value))
	return err
}

// CountLearners returns the number of distinct learners with stored state
func (r *BlobRepository) CountLearners() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(DISTINCT learner_id) FROM learner_blobs").Scan(&count)
	return count, err
}

// DeleteAll removes every stored blob
func (r *BlobRepository) DeleteAll() error {
	_, err := r.db.Exec("DELETE FROM learner_blobs")
	return err
}
