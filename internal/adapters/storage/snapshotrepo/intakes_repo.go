package snapshotrepo

import (
	"context"
	"errors"
	"strings"

	"medimanager/internal/domain/intakes"
	"medimanager/internal/platform/snapshot"
	"medimanager/internal/ports/storage"
)

type intakeRepo struct {
	col *snapshot.Collection[intakes.Intake]
}

func NewIntakeRepo(store storage.RecordStore) intakes.Repository {
	return &intakeRepo{
		col: snapshot.New[intakes.Intake](store, storage.CollectionIntakes),
	}
}

// Append agrega al final y guarda el ledger completo.
func (r *intakeRepo) Append(ctx context.Context, in intakes.Intake) error {
	if strings.TrimSpace(in.ID) == "" {
		return errors.New("intake id required")
	}
	return r.col.Mutate(ctx, func(items []intakes.Intake) ([]intakes.Intake, error) {
		return append(items, in), nil
	})
}

func (r *intakeRepo) List(ctx context.Context, filter intakes.ListFilter) ([]intakes.Intake, error) {
	items, err := r.col.All(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]intakes.Intake, 0, len(items))
	for _, in := range items {
		if filter.Match(in) {
			out = append(out, in)
		}
	}
	return out, nil
}
