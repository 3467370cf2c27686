package medications

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("medication not found")
)

type Service struct {
	repo  Repository
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		newID: uuid.NewString,
	}
}

type CreateInput struct {
	Name   string
	Dosage string
	Times  []string
	Notes  string
}

// UpdateInput usa punteros: nil = no tocar.
// Un valor no-nil reemplaza el anterior, incluso si es vacío (Times = &[]string{} limpia).
type UpdateInput struct {
	Name   *string
	Dosage *string
	Times  *[]string
	Notes  *string
}

func (s *Service) List(ctx context.Context) ([]Medication, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Medication{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Medication, error) {
	name := strings.TrimSpace(in.Name)
	dosage := strings.TrimSpace(in.Dosage)
	if name == "" || dosage == "" {
		return Medication{}, ErrInvalidInput
	}

	m := Medication{
		ID:     s.newID(),
		Name:   name,
		Dosage: dosage,
		Times:  cleanTimes(in.Times),
		Notes:  strings.TrimSpace(in.Notes),
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return Medication{}, err
	}
	return m, nil
}

// Update hace merge: solo cambian los campos presentes en in.
// El merge corre dentro del lock del repo; dos updates parciales no se pisan.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Medication{}, ErrNotFound
	}
	return s.repo.Update(ctx, id, in.apply)
}

func (in UpdateInput) apply(current Medication) (Medication, error) {
	updated := current
	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		if v == "" {
			return Medication{}, ErrInvalidInput
		}
		updated.Name = v
	}
	if in.Dosage != nil {
		v := strings.TrimSpace(*in.Dosage)
		if v == "" {
			return Medication{}, ErrInvalidInput
		}
		updated.Dosage = v
	}
	if in.Times != nil {
		updated.Times = cleanTimes(*in.Times)
	}
	if in.Notes != nil {
		updated.Notes = strings.TrimSpace(*in.Notes)
	}
	if updated.Times == nil {
		updated.Times = []string{}
	}
	return updated, nil
}

// Delete devuelve el registro eliminado.
func (s *Service) Delete(ctx context.Context, id string) (Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Medication{}, ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// cleanTimes conserva el orden; descarta entradas vacías. Nunca devuelve nil.
func cleanTimes(in []string) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}
