package database

import (
	"strings"
	"testing"
)

func TestDialects(t *testing.T) {
	tests := []struct {
		name      string
		dialect   Dialect
		driver    string
		subdir    string
		upsertHas string
	}{
		{
			name:      "SQLite",
			dialect:   NewSQLiteDialect(),
			driver:    "sqlite3",
			subdir:    "sqlite",
			upsertHas: "ON CONFLICT",
		},
		{
			name:      "PostgreSQL",
			dialect:   NewPostgresDialect(),
			driver:    "postgres",
			subdir:    "postgres",
			upsertHas: "ON CONFLICT",
		},
		{
			name:      "MySQL",
			dialect:   NewMySQLDialect(),
			driver:    "mysql",
			subdir:    "mysql",
			upsertHas: "ON DUPLICATE KEY UPDATE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.DriverName(); got != tt.driver {
				t.Errorf("DriverName() = %v, want %v", got, tt.driver)
			}
			if got := tt.dialect.MigrationsSubdir(); got != tt.subdir {
				t.Errorf("MigrationsSubdir() = %v, want %v", got, tt.subdir)
			}
			if got := tt.dialect.UpsertBlobQuery(); !strings.Contains(got, tt.upsertHas) {
				t.Errorf("UpsertBlobQuery() = %q, want it to contain %q", got, tt.upsertHas)
			}
		})
	}
}

func TestRewriteQuery(t *testing.T) {
	tests := []struct {
		name     string
		dialect  Dialect
		query    string
		expected string
	}{
		{
			name:     "SQLite no change",
			dialect:  NewSQLiteDialect(),
			query:    "SELECT blob_value FROM learner_blobs WHERE learner_id = ?",
			expected: "SELECT blob_value FROM learner_blobs WHERE learner_id = ?",
		},
		{
			name:     "PostgreSQL single placeholder",
			dialect:  NewPostgresDialect(),
			query:    "SELECT blob_value FROM learner_blobs WHERE learner_id = ?",
			expected: "SELECT blob_value FROM learner_blobs WHERE learner_id = $1",
		},
		{
			name:     "PostgreSQL multiple placeholders",
			dialect:  NewPostgresDialect(),
			query:    "DELETE FROM learner_blobs WHERE learner_id = ? AND blob_key = ?",
			expected: "DELETE FROM learner_blobs WHERE learner_id = $1 AND blob_key = $2",
		},
		{
			name:     "MySQL no change",
			dialect:  NewMySQLDialect(),
			query:    "DELETE FROM learner_blobs WHERE learner_id = ? AND blob_key = ?",
			expected: "DELETE FROM learner_blobs WHERE learner_id = ? AND blob_key = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.dialect.RewriteQuery(tt.query)
			if result != tt.expected {
				t.Errorf("RewriteQuery() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestDialectFor(t *testing.T) {
	tests := []struct {
		databaseType string
		driver       string
		wantErr      bool
	}{
		{databaseType: "", driver: "sqlite3"},
		{databaseType: "SQLite", driver: "sqlite3"},
		{databaseType: "postgresql", driver: "postgres"},
		{databaseType: "mysql", driver: "mysql"},
		{databaseType: "oracle", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.databaseType, func(t *testing.T) {
			dialect, _, err := DialectFor(tt.databaseType, "x.db", "url")
			if (err != nil) != tt.wantErr {
				t.Fatalf("DialectFor(%q) error = %v, wantErr %v", tt.databaseType, err, tt.wantErr)
			}
			if err == nil && dialect.DriverName() != tt.driver {
				t.Errorf("DriverName() = %v, want %v", dialect.DriverName(), tt.driver)
			}
		})
	}
}

func TestMySQLDSNEnablesParseTime(t *testing.T) {
	dsn := NewMySQLDialect().DSN(DialectConfig{URL: "user:pass@tcp(localhost:3306)/earthwords"})
	if !strings.Contains(dsn, "parseTime=true") {
		t.Errorf("DSN() = %q, want parseTime=true", dsn)
	}
}
