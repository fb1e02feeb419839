// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger tracks which source documents have already been processed
// so repeated runs can skip them when asked to. The ledger records
// per-document completion facts only; run-level counts are never stored.
package ledger

import (
	"crypto/sha256"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Ledger is a SQLite-backed record of processed documents, keyed by source
// path plus content checksum so a changed file is processed again.
type Ledger struct {
	db *sql.DB
}

// Open opens or creates the ledger database at path, creating the parent
// directory and schema as needed.
func Open(path string) (*Ledger, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening ledger database: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating ledger schema: %w", err)
	}
	return l, nil
}

// Close releases the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

func (l *Ledger) createSchema() error {
	_, err := l.db.Exec(`CREATE TABLE IF NOT EXISTS processed_documents (
		source_path TEXT NOT NULL,
		checksum TEXT NOT NULL,
		output_path TEXT,
		batch TEXT,
		processed_at TEXT,
		PRIMARY KEY (source_path, checksum)
	)`)
	return err
}

// Seen reports whether this exact document content was already processed.
func (l *Ledger) Seen(sourcePath, checksum string) (bool, error) {
	var n int
	err := l.db.QueryRow(
		`SELECT COUNT(*) FROM processed_documents WHERE source_path = ? AND checksum = ?`,
		sourcePath, checksum,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("querying ledger: %w", err)
	}
	return n > 0, nil
}

// Record marks a document as processed within the given batch.
func (l *Ledger) Record(sourcePath, checksum, outputPath, batch string) error {
	_, err := l.db.Exec(
		`INSERT OR REPLACE INTO processed_documents
			(source_path, checksum, output_path, batch, processed_at)
		 VALUES (?, ?, ?, ?, ?)`,
		sourcePath, checksum, outputPath, batch, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording processed document: %w", err)
	}
	return nil
}

// Checksum returns the hex SHA-256 of the file at path.
func Checksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s for checksum: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
