package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"medimanager/internal/adapters/storage/document"
	"medimanager/internal/platform/logger"
	"medimanager/internal/ports/storage"
)

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS record_collections (
		name       TEXT PRIMARY KEY,
		document   TEXT NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
	)
`

// Store guarda las colecciones en un único archivo SQLite, una fila por colección.
// El documento se guarda como texto con el mismo formato indentado que el backend file.
type Store struct {
	db  *sql.DB
	log logger.Logger
}

var _ storage.RecordStore = (*Store)(nil)

// Open crea o abre la base en path y aplica pragmas y schema.
//
// Configuración:
//   - WAL para lecturas concurrentes durante escrituras
//   - una sola conexión: SQLite admite un writer a la vez
//   - busy_timeout de 5s
func Open(path string, log logger.Logger) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("sqlite store: path required")
	}
	if log == nil {
		log = logger.Nop()
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, p := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply pragma %q: %w", p, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

func (s *Store) Load(ctx context.Context, collection string, dst any) error {
	if err := document.Reset(dst); err != nil {
		return err
	}

	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT document FROM record_collections WHERE name = ?`, collection,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("%w: load %s: %v", storage.ErrStorageFailure, collection, err)
	}

	if err := document.Decode(collection, []byte(raw), dst); err != nil {
		s.log.Warn("collection corrupt, using empty", map[string]any{
			"collection": collection,
			"error":      err,
		})
	}
	return nil
}

func (s *Store) Save(ctx context.Context, collection string, records any) error {
	b, err := document.Encode(collection, records)
	if err != nil {
		return fmt.Errorf("%w: %v", storage.ErrStorageFailure, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO record_collections (name, document, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT(name) DO UPDATE SET
			document = excluded.document,
			updated_at = excluded.updated_at
	`, collection, string(b))
	if err != nil {
		return fmt.Errorf("%w: save %s: %v", storage.ErrStorageFailure, collection, err)
	}
	return nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
