// Package corpus persists document collections in SQLite so analyses
// can run repeatedly against ingested content without re-reading source
// files. Documents keep their insertion position, which the engine
// relies on for deterministic reporting.
package corpus

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/dotcommander/sitescore/internal/document"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS documents (
    id INTEGER PRIMARY KEY,
    collection TEXT NOT NULL,
    doc_id TEXT NOT NULL,
    text TEXT NOT NULL,
    metadata TEXT NOT NULL DEFAULT '{}',
    position INTEGER NOT NULL,
    UNIQUE(collection, doc_id)
);
CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection, position);
`

// Store is a SQLite-backed collection store.
type Store struct {
	db *sql.DB
}

// CollectionInfo summarizes one stored collection.
type CollectionInfo struct {
	Name      string `json:"name"`
	Documents int    `json:"documents"`
}

// Open opens (creating if needed) the corpus database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating corpus directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// ListCollections returns all collections with their document counts,
// ordered by name.
func (s *Store) ListCollections() ([]CollectionInfo, error) {
	rows, err := s.db.Query(`SELECT collection, COUNT(*) FROM documents GROUP BY collection ORDER BY collection`)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	var infos []CollectionInfo
	for rows.Next() {
		var info CollectionInfo
		if err := rows.Scan(&info.Name, &info.Documents); err != nil {
			return nil, fmt.Errorf("scan collection row: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// LoadCollection returns the named collection with documents in their
// original insertion order. A missing collection returns an empty
// collection, not an error; callers decide whether empty is fatal.
func (s *Store) LoadCollection(name string) (document.Collection, error) {
	c := document.Collection{Name: name}

	rows, err := s.db.Query(
		`SELECT doc_id, text, metadata FROM documents WHERE collection = ? ORDER BY position`, name)
	if err != nil {
		return c, fmt.Errorf("load collection %s: %w", name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, text, metaJSON string
		if err := rows.Scan(&id, &text, &metaJSON); err != nil {
			return c, fmt.Errorf("scan document row: %w", err)
		}
		var meta document.Metadata
		if err := json.Unmarshal([]byte(metaJSON), &meta); err != nil {
			// Corrupt metadata degrades to an empty bag; the document
			// itself still scores.
			meta = document.Metadata{}
		}
		c.Docs = append(c.Docs, document.Document{ID: id, Text: text, Meta: meta})
	}
	return c, rows.Err()
}

// AddDocuments appends documents to the named collection, preserving
// the order given. Re-ingesting an existing doc_id replaces its text
// and metadata in place.
func (s *Store) AddDocuments(collection string, docs []document.Document) error {
	if len(docs) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin ingest: %w", err)
	}
	defer tx.Rollback()

	var next int
	if err := tx.QueryRow(
		`SELECT COALESCE(MAX(position)+1, 0) FROM documents WHERE collection = ?`, collection,
	).Scan(&next); err != nil {
		return fmt.Errorf("next position: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO documents (collection, doc_id, text, metadata, position)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(collection, doc_id) DO UPDATE SET text=excluded.text, metadata=excluded.metadata`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range docs {
		metaJSON, err := json.Marshal(d.Meta)
		if err != nil {
			return fmt.Errorf("encode metadata for %s: %w", d.ID, err)
		}
		if _, err := stmt.Exec(collection, d.ID, d.Text, string(metaJSON), next); err != nil {
			return fmt.Errorf("insert document %s: %w", d.ID, err)
		}
		next++
	}
	return tx.Commit()
}

// DeleteCollection removes a collection and all its documents.
func (s *Store) DeleteCollection(name string) error {
	_, err := s.db.Exec(`DELETE FROM documents WHERE collection = ?`, name)
	if err != nil {
		return fmt.Errorf("delete collection %s: %w", name, err)
	}
	return nil
}
