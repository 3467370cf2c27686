package intakes

import "context"

// Repository es append-only: no hay Update ni Delete a propósito.
type Repository interface {
	Append(ctx context.Context, in Intake) error
	List(ctx context.Context, filter ListFilter) ([]Intake, error)
}

// ListFilter: campos vacíos = sin filtro. Date compara el string exacto (no rangos).
type ListFilter struct {
	Date         string
	MedicationID string
}

func (f ListFilter) Match(in Intake) bool {
	if f.Date != "" && in.Date != f.Date {
		return false
	}
	if f.MedicationID != "" && in.MedicationID != f.MedicationID {
		return false
	}
	return true
}
