package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"medimanager/internal/adapters/storage/document"
	"medimanager/internal/platform/logger"
	"medimanager/internal/ports/storage"
)

// Store guarda cada colección en DATA_DIR/<colección>.json.
//
// Save escribe a un archivo temporal en el mismo directorio, hace fsync y renombra,
// así que un crash a mitad de escritura nunca deja un documento truncado.
type Store struct {
	dir string
	log logger.Logger

	// un lock por archivo: dos Save concurrentes de la misma colección no se pisan el temp.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

var _ storage.RecordStore = (*Store)(nil)

// Open crea el directorio si no existe.
func Open(dir string, log logger.Logger) (*Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("file store: data dir required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file store: create data dir: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		dir:   dir,
		log:   log,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

func (s *Store) Path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *Store) Load(ctx context.Context, collection string, dst any) error {
	if err := document.Reset(dst); err != nil {
		return err
	}

	b, err := os.ReadFile(s.Path(collection))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("collection unreadable, using empty", map[string]any{
				"collection": collection,
				"error":      err,
			})
		}
		return nil
	}

	if err := document.Decode(collection, b, dst); err != nil {
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

	l := s.lockFor(collection)
	l.Lock()
	defer l.Unlock()

	if err := writeAtomic(s.Path(collection), b); err != nil {
		return fmt.Errorf("%w: save %s: %v", storage.ErrStorageFailure, collection, err)
	}
	return nil
}

func (s *Store) Close() error { return nil }

func (s *Store) lockFor(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
