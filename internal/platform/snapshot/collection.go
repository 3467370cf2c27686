// Package snapshot implementa read-modify-write sobre colecciones completas de un RecordStore.
//
// Cada Collection serializa a sus writers con un mutex: Mutate carga, aplica la función
// y guarda mientras tiene el lock, así dos creates concurrentes no se pisan.
// All no toma el lock; lee el último snapshot guardado.
package snapshot

import (
	"context"

	"medimanager/internal/ports/storage"
)

type Collection[T any] struct {
	store storage.RecordStore
	name  string

	writeMu chanMutex
}

func New[T any](store storage.RecordStore, name string) *Collection[T] {
	return &Collection[T]{
		store:   store,
		name:    name,
		writeMu: newChanMutex(),
	}
}

func (c *Collection[T]) Name() string { return c.name }

// All devuelve todos los registros en orden de almacenamiento. Nunca nil.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	var items []T
	if err := c.store.Load(ctx, c.name, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Mutate aplica fn al snapshot actual y guarda el resultado.
// Si fn devuelve error no se escribe nada.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	if err := c.writeMu.Lock(ctx); err != nil {
		return err
	}
	defer c.writeMu.Unlock()

	items, err := c.All(ctx)
	if err != nil {
		return err
	}

	next, err := fn(items)
	if err != nil {
		return err
	}
	if next == nil {
		next = []T{}
	}

	return c.store.Save(ctx, c.name, next)
}

// chanMutex es un mutex que respeta la cancelación del context mientras espera.
type chanMutex chan struct{}

func newChanMutex() chanMutex { return make(chanMutex, 1) }

func (m chanMutex) Lock(ctx context.Context) error {
	select {
	case m <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m chanMutex) Unlock() { <-m }
