package memory

import (
	"context"
	"fmt"
	"sync"

	"medimanager/internal/adapters/storage/document"
	"medimanager/internal/ports/storage"
)

// Store guarda el documento serializado de cada colección en memoria.
// Pasa por el mismo Encode/Decode que los backends durables, así Load devuelve copias
// y nadie comparte slices con el store.
type Store struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

var _ storage.RecordStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		docs: make(map[string][]byte),
	}
}

func (s *Store) Load(ctx context.Context, collection string, dst any) error {
	s.mu.RLock()
	b := s.docs[collection]
	s.mu.RUnlock()

	if err := document.Decode(collection, b, dst); err != nil {
		// no debería pasar: solo guardamos lo que Encode produjo
		return document.Reset(dst)
	}
	return nil
}

func (s *Store) Save(ctx context.Context, collection string, records any) error {
	b, err := document.Encode(collection, records)
	if err != nil {
		return fmt.Errorf("%w: %v", storage.ErrStorageFailure, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[collection] = b
	return nil
}

// Raw devuelve el documento tal cual está guardado (nil si la colección no existe).
func (s *Store) Raw(collection string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.docs[collection]
	if !ok {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func (s *Store) Close() error { return nil }
