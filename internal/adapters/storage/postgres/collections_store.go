package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"medimanager/internal/adapters/storage/document"
	"medimanager/internal/platform/logger"
	"medimanager/internal/ports/storage"
)

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS record_collections (
		name       TEXT PRIMARY KEY,
		document   JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// CollectionsStore guarda cada colección como un documento JSONB en record_collections.
// Save es un upsert de la fila completa (snapshot overwrite).
type CollectionsStore struct {
	db  *sql.DB
	log logger.Logger
}

var _ storage.RecordStore = (*CollectionsStore)(nil)

func NewCollectionsStore(db *sql.DB, log logger.Logger) *CollectionsStore {
	if log == nil {
		log = logger.Nop()
	}
	return &CollectionsStore{db: db, log: log}
}

// EnsureSchema crea la tabla si no existe.
func (s *CollectionsStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("postgres: ensure schema: %w", err)
	}
	return nil
}

func (s *CollectionsStore) Load(ctx context.Context, collection string, dst any) error {
	if err := document.Reset(dst); err != nil {
		return err
	}

	collection = strings.TrimSpace(collection)
	if collection == "" {
		return nil
	}

	var raw []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT document
		FROM record_collections
		WHERE name = $1
	`, collection).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("%w: load %s: %v", storage.ErrStorageFailure, collection, err)
	}

	if err := document.Decode(collection, raw, dst); err != nil {
		s.log.Warn("collection corrupt, using empty", map[string]any{
			"collection": collection,
			"error":      err,
		})
	}
	return nil
}

func (s *CollectionsStore) Save(ctx context.Context, collection string, records any) error {
	b, err := document.Encode(collection, records)
	if err != nil {
		return fmt.Errorf("%w: %v", storage.ErrStorageFailure, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO record_collections (name, document, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE
		SET document = EXCLUDED.document,
			updated_at = EXCLUDED.updated_at
	`, collection, b)
	if err != nil {
		return fmt.Errorf("%w: save %s: %v", storage.ErrStorageFailure, collection, err)
	}
	return nil
}

func (s *CollectionsStore) Close() error {
	return s.db.Close()
}
