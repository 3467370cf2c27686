package medications

import (
	"context"
	"errors"
)

// ResolveName expone el nombre actual de un medicamento.
// Se usa desde intakes para validar referencias sin importar este paquete (y sin ciclos).
// ok=false si el id no existe; err solo para fallos de storage.
func (s *Service) ResolveName(ctx context.Context, id string) (name string, ok bool, err error) {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return m.Name, true, nil
}
