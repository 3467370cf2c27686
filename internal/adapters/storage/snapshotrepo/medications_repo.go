package snapshotrepo

import (
	"context"
	"errors"
	"strings"

	"medimanager/internal/domain/medications"
	"medimanager/internal/platform/snapshot"
	"medimanager/internal/ports/storage"
)

type medicationRepo struct {
	col *snapshot.Collection[medications.Medication]
}

func NewMedicationRepo(store storage.RecordStore) medications.Repository {
	return &medicationRepo{
		col: snapshot.New[medications.Medication](store, storage.CollectionMedications),
	}
}

func (r *medicationRepo) List(ctx context.Context) ([]medications.Medication, error) {
	items, err := r.col.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Times == nil {
			items[i].Times = []string{}
		}
	}
	return items, nil
}

func (r *medicationRepo) GetByID(ctx context.Context, id string) (medications.Medication, error) {
	items, err := r.List(ctx)
	if err != nil {
		return medications.Medication{}, err
	}
	if i := indexOf(items, id); i >= 0 {
		return items[i], nil
	}
	return medications.Medication{}, medications.ErrNotFound
}

func (r *medicationRepo) Create(ctx context.Context, m medications.Medication) error {
	if strings.TrimSpace(m.ID) == "" {
		return errors.New("medication id required")
	}
	return r.col.Mutate(ctx, func(items []medications.Medication) ([]medications.Medication, error) {
		if indexOf(items, m.ID) >= 0 {
			return nil, errors.New("medication already exists")
		}
		return append(items, m), nil
	})
}

func (r *medicationRepo) Update(ctx context.Context, id string, fn func(medications.Medication) (medications.Medication, error)) (medications.Medication, error) {
	var updated medications.Medication
	err := r.col.Mutate(ctx, func(items []medications.Medication) ([]medications.Medication, error) {
		i := indexOf(items, id)
		if i < 0 {
			return nil, medications.ErrNotFound
		}
		current := items[i]
		if current.Times == nil {
			current.Times = []string{}
		}
		next, err := fn(current)
		if err != nil {
			return nil, err
		}
		// el id no se puede cambiar desde fn
		next.ID = current.ID
		items[i] = next
		updated = next
		return items, nil
	})
	if err != nil {
		return medications.Medication{}, err
	}
	return updated, nil
}

func (r *medicationRepo) Delete(ctx context.Context, id string) (medications.Medication, error) {
	var removed medications.Medication
	err := r.col.Mutate(ctx, func(items []medications.Medication) ([]medications.Medication, error) {
		i := indexOf(items, id)
		if i < 0 {
			return nil, medications.ErrNotFound
		}
		removed = items[i]
		return append(items[:i], items[i+1:]...), nil
	})
	if err != nil {
		return medications.Medication{}, err
	}
	if removed.Times == nil {
		removed.Times = []string{}
	}
	return removed, nil
}

func indexOf(items []medications.Medication, id string) int {
	for i, m := range items {
		if m.ID == id {
			return i
		}
	}
	return -1
}
