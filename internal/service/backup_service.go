package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"earthwords/internal/database"
	"earthwords/internal/repository"

	"github.com/jmoiron/sqlx"
)

// BackupData represents the complete database backup structure
type BackupData struct {
	Version      string            `json:"version"`
	ExportedAt   time.Time         `json:"exported_at"`
	DatabaseType string            `json:"database_type"`
	Learners     int               `json:"learners"`
	Blobs        []repository.Blob `json:"blobs"`
}

// BackupService handles database backup and restore operations
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export creates a complete backup of the database to a file
func (s *BackupService) Export(outputPath string) error {
	log.Println("Starting database export...")

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	backup, err := s.ExportToWriter(file)
	if err != nil {
		return err
	}

	log.Printf("Database exported successfully to %s", outputPath)
	log.Printf("Exported: %d blobs for %d learners", len(backup.Blobs), backup.Learners)
	return nil
}

// ExportToWriter writes a backup of every learner blob to w
func (s *BackupService) ExportToWriter(w io.Writer) (*BackupData, error) {
	backup := &BackupData{
		Version:      "1.0",
		ExportedAt:   time.Now(),
		DatabaseType: s.db.Dialect.DriverName(),
		Blobs:        []repository.Blob{},
	}

	sx := sqlx.NewDb(s.db.DB, s.db.Dialect.DriverName())
	query := `SELECT learner_id, blob_key, blob_value, updated_at FROM learner_blobs ORDER BY learner_id, blob_key`
	if err := sx.Select(&backup.Blobs, query); err != nil {
		return nil, fmt.Errorf("failed to export blobs: %w", err)
	}

	learners, err := repository.NewBlobRepository(s.db).CountLearners()
	if err != nil {
		return nil, fmt.Errorf("failed to count learners: %w", err)
	}
	backup.Learners = learners

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	return backup, nil
}

// Import restores a database from a backup file. With clear set, existing
// blobs are deleted first; otherwise imported blobs overwrite matching keys.
func (s *BackupService) Import(inputPath string, clear bool) error {
	log.Printf("Starting database import from %s...", inputPath)

	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(file, clear)
}

// ImportFromReader restores a database from a backup reader
func (s *BackupService) ImportFromReader(reader io.Reader, clear bool) error {
	var backup BackupData
	if err := json.NewDecoder(reader).Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	log.Printf("Backup version: %s, exported at: %s", backup.Version, backup.ExportedAt)

	err := s.db.WithTx(func(tx *database.Tx) error {
		repo := repository.NewBlobRepository(tx)
		if clear {
			if err := repo.DeleteAll(); err != nil {
				return fmt.Errorf("failed to clear blobs: %w", err)
			}
		}
		for _, b := range backup.Blobs {
			if !json.Valid([]byte(b.Value)) {
				log.Printf("Skipping invalid %s blob for learner %s", b.Key, b.LearnerID)
				continue
			}
			if err := repo.SetBlob(b.LearnerID, b.Key, []byte(b.Value)); err != nil {
				return fmt.Errorf("failed to import %s for learner %s: %w", b.Key, b.LearnerID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Println("Database import completed successfully")
	return nil
}
