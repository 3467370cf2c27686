package medications

import "context"

// Repository persiste medicamentos en orden de creación.
// GetByID, Update y Delete devuelven ErrNotFound si el id no existe.
type Repository interface {
	List(ctx context.Context) ([]Medication, error)
	GetByID(ctx context.Context, id string) (Medication, error)
	Create(ctx context.Context, m Medication) error
	// Update aplica fn al registro actual con la colección bloqueada.
	// Si fn devuelve error no se escribe nada.
	Update(ctx context.Context, id string, fn func(current Medication) (Medication, error)) (Medication, error)
	Delete(ctx context.Context, id string) (Medication, error)
}
