package storage

import (
	"context"
	"errors"
)

// Colecciones persistidas. Cada una es un documento independiente.
const (
	CollectionMedications = "medications"
	CollectionIntakes     = "intakes"
	CollectionUsers       = "users"
)

// ErrStorageFailure envuelve cualquier fallo de lectura/escritura durable.
// Los handlers lo traducen a 500 sin exponer el detalle.
var ErrStorageFailure = errors.New("storage failure")

// RecordStore guarda colecciones completas como snapshots.
//
// Load decodifica la colección en dst (puntero a slice). Si no hay datos previos
// o el documento no se puede leer, dst queda vacío y no hay error.
// Save reemplaza la colección entera con records (slice).
type RecordStore interface {
	Load(ctx context.Context, collection string, dst any) error
	Save(ctx context.Context, collection string, records any) error
	Close() error
}
