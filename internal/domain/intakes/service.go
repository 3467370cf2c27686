package intakes

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidReference = errors.New("medication does not exist")
)

// MedicationResolver resuelve el nombre actual de un medicamento.
// La referencia se valida solo al registrar; nunca se revalida después.
type MedicationResolver interface {
	ResolveName(ctx context.Context, medicationID string) (name string, ok bool, err error)
}

type Service struct {
	repo  Repository
	meds  MedicationResolver
	now   func() time.Time
	newID func() string
}

func NewService(repo Repository, meds MedicationResolver) *Service {
	return &Service{
		repo:  repo,
		meds:  meds,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

type RecordInput struct {
	MedicationID string
	Date         string
	Time         string
	Taken        *bool // nil = true: registrar una toma implica que se tomó
	Notes        string
}

func (s *Service) Record(ctx context.Context, in RecordInput) (Intake, error) {
	medID := strings.TrimSpace(in.MedicationID)
	if medID == "" {
		return Intake{}, ErrInvalidInput
	}
	date, ok := ParseDate(in.Date)
	if !ok {
		return Intake{}, ErrInvalidInput
	}

	name, found, err := s.meds.ResolveName(ctx, medID)
	if err != nil {
		return Intake{}, err
	}
	if !found {
		return Intake{}, ErrInvalidReference
	}

	taken := true
	if in.Taken != nil {
		taken = *in.Taken
	}

	e := Intake{
		ID:             s.newID(),
		MedicationID:   medID,
		MedicationName: name,
		Date:           date,
		Time:           strings.TrimSpace(in.Time),
		Taken:          taken,
		Notes:          strings.TrimSpace(in.Notes),
		CreatedAt:      s.now().UTC(),
	}

	if err := s.repo.Append(ctx, e); err != nil {
		return Intake{}, err
	}
	return e, nil
}

// List devuelve las tomas en orden de registro (más antigua primero).
// Un filtro de fecha inválido es ErrInvalidInput.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Intake, error) {
	if strings.TrimSpace(filter.Date) != "" {
		d, ok := ParseDate(filter.Date)
		if !ok {
			return nil, ErrInvalidInput
		}
		filter.Date = d
	} else {
		filter.Date = ""
	}
	filter.MedicationID = strings.TrimSpace(filter.MedicationID)

	return s.repo.List(ctx, filter)
}
