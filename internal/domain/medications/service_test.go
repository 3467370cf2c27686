package medications

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	items []Medication
	err   error
}

func (r *testRepo) List(ctx context.Context) ([]Medication, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]Medication, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Medication, error) {
	if r.err != nil {
		return Medication{}, r.err
	}
	for _, m := range r.items {
		if m.ID == id {
			return m, nil
		}
	}
	return Medication{}, ErrNotFound
}

func (r *testRepo) Create(ctx context.Context, m Medication) error {
	r.items = append(r.items, m)
	return nil
}

func (r *testRepo) Update(ctx context.Context, id string, fn func(Medication) (Medication, error)) (Medication, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			next, err := fn(r.items[i])
			if err != nil {
				return Medication{}, err
			}
			r.items[i] = next
			return next, nil
		}
	}
	return Medication{}, ErrNotFound
}

func (r *testRepo) Delete(ctx context.Context, id string) (Medication, error) {
	for i, m := range r.items {
		if m.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return m, nil
		}
	}
	return Medication{}, ErrNotFound
}

func newTestService() (*Service, *testRepo) {
	repo := &testRepo{}
	svc := NewService(repo)
	n := 0
	svc.newID = func() string {
		n++
		return fmt.Sprintf("med-%d", n)
	}
	return svc, repo
}

func strPtr(s string) *string { return &s }

// -------------------------
// Tests
// -------------------------

func TestCreate_AssignsIDAndTrims(t *testing.T) {
	svc, repo := newTestService()

	m, err := svc.Create(context.Background(), CreateInput{
		Name:   "  Aspirin ",
		Dosage: "100mg",
		Times:  []string{"08:00", " ", "20:00 "},
		Notes:  " after breakfast ",
	})
	require.NoError(t, err)

	assert.Equal(t, Medication{
		ID:     "med-1",
		Name:   "Aspirin",
		Dosage: "100mg",
		Times:  []string{"08:00", "20:00"},
		Notes:  "after breakfast",
	}, m)
	assert.Len(t, repo.items, 1)
}

func TestCreate_TimesNeverNil(t *testing.T) {
	svc, _ := newTestService()

	m, err := svc.Create(context.Background(), CreateInput{Name: "Vitamin D", Dosage: "1000IU"})
	require.NoError(t, err)
	assert.NotNil(t, m.Times)
	assert.Empty(t, m.Times)
}

func TestCreate_RequiresNameAndDosage(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	cases := []CreateInput{
		{Name: "", Dosage: "100mg"},
		{Name: "Aspirin", Dosage: ""},
		{Name: "   ", Dosage: "  "},
	}
	for _, in := range cases {
		_, err := svc.Create(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
	assert.Empty(t, repo.items)
}

func TestCreate_IDsAreUnique(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateInput{Name: "A", Dosage: "1"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, CreateInput{Name: "A", Dosage: "1"})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetByID(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_MergesOnlyGivenFields(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{
		Name: "Aspirin", Dosage: "100mg", Times: []string{"08:00"}, Notes: "n",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, UpdateInput{Dosage: strPtr("200mg")})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Aspirin", updated.Name)
	assert.Equal(t, "200mg", updated.Dosage)
	assert.Equal(t, []string{"08:00"}, updated.Times)
	assert.Equal(t, "n", updated.Notes)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdate_EmptyTimesClears(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Name: "A", Dosage: "1", Times: []string{"08:00"}})
	require.NoError(t, err)

	empty := []string{}
	updated, err := svc.Update(ctx, created.ID, UpdateInput{Times: &empty, Notes: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, []string{}, updated.Times)
	assert.Equal(t, "", updated.Notes)
}

func TestUpdate_RejectsBlankRequiredFields(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Name: "A", Dosage: "1"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, UpdateInput{Name: strPtr(" ")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(ctx, created.ID, UpdateInput{Dosage: strPtr("")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestUpdate_RepeatingSameValuesIsNoOp(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Name: "Aspirin", Dosage: "100mg", Times: []string{"08:00"}})
	require.NoError(t, err)

	in := UpdateInput{Dosage: strPtr("200mg"), Notes: strPtr("with food")}

	first, err := svc.Update(ctx, created.ID, in)
	require.NoError(t, err)
	afterFirst := append([]Medication(nil), repo.items...)

	second, err := svc.Update(ctx, created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, afterFirst, repo.items)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(context.Background(), "missing", UpdateInput{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(context.Background(), " ", UpdateInput{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_ReturnsRemovedRecord(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateInput{Name: "A", Dosage: "1"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, CreateInput{Name: "B", Dosage: "2"})
	require.NoError(t, err)

	removed, err := svc.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, removed)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Medication{b}, list)

	_, err = svc.Delete(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveName(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	m, err := svc.Create(ctx, CreateInput{Name: "Aspirin", Dosage: "100mg"})
	require.NoError(t, err)

	name, ok, err := svc.ResolveName(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Aspirin", name)

	_, ok, err = svc.ResolveName(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	repo.err = errors.New("disk gone")
	_, _, err = svc.ResolveName(ctx, m.ID)
	assert.Error(t, err)
}
