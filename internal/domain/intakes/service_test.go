package intakes

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Fakes
// -------------------------

type testRepo struct {
	items []Intake
}

func (r *testRepo) Append(ctx context.Context, in Intake) error {
	r.items = append(r.items, in)
	return nil
}

func (r *testRepo) List(ctx context.Context, filter ListFilter) ([]Intake, error) {
	out := make([]Intake, 0)
	for _, in := range r.items {
		if filter.Match(in) {
			out = append(out, in)
		}
	}
	return out, nil
}

type testMeds struct {
	names map[string]string
	err   error
}

func (m *testMeds) ResolveName(ctx context.Context, id string) (string, bool, error) {
	if m.err != nil {
		return "", false, m.err
	}
	n, ok := m.names[id]
	return n, ok, nil
}

var fixedNow = time.Date(2025, 11, 16, 8, 5, 0, 0, time.FixedZone("ART", -3*3600))

func newTestService() (*Service, *testRepo, *testMeds) {
	repo := &testRepo{}
	meds := &testMeds{names: map[string]string{"m1": "Aspirin"}}
	svc := NewService(repo, meds)
	svc.now = func() time.Time { return fixedNow }
	n := 0
	svc.newID = func() string {
		n++
		return fmt.Sprintf("in-%d", n)
	}
	return svc, repo, meds
}

func boolPtr(b bool) *bool { return &b }

// -------------------------
// Tests
// -------------------------

func TestRecord_SnapshotsNameAndDefaultsTaken(t *testing.T) {
	svc, repo, _ := newTestService()

	in, err := svc.Record(context.Background(), RecordInput{
		MedicationID: "m1",
		Date:         "2025-11-16",
		Time:         "08:05",
	})
	require.NoError(t, err)

	assert.Equal(t, Intake{
		ID:             "in-1",
		MedicationID:   "m1",
		MedicationName: "Aspirin",
		Date:           "2025-11-16",
		Time:           "08:05",
		Taken:          true,
		CreatedAt:      fixedNow.UTC(),
	}, in)
	assert.Equal(t, time.UTC, in.CreatedAt.Location())
	assert.Equal(t, []Intake{in}, repo.items)
}

func TestRecord_ExplicitNotTaken(t *testing.T) {
	svc, _, _ := newTestService()

	in, err := svc.Record(context.Background(), RecordInput{
		MedicationID: "m1",
		Date:         "2025-11-16",
		Taken:        boolPtr(false),
		Notes:        "nausea",
	})
	require.NoError(t, err)
	assert.False(t, in.Taken)
	assert.Equal(t, "nausea", in.Notes)
}

func TestRecord_InvalidInput(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	cases := []RecordInput{
		{MedicationID: "", Date: "2025-11-16"},
		{MedicationID: "m1", Date: ""},
		{MedicationID: "m1", Date: "16/11/2025"},
		{MedicationID: "m1", Date: "2025-02-30"},
	}
	for _, c := range cases {
		_, err := svc.Record(ctx, c)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %+v", c)
	}
	assert.Empty(t, repo.items)
}

func TestRecord_UnknownMedicationLeavesLedgerUnchanged(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.Record(context.Background(), RecordInput{MedicationID: "ghost", Date: "2025-11-16"})
	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.Empty(t, repo.items)
}

func TestRecord_ResolverFailurePropagates(t *testing.T) {
	svc, repo, meds := newTestService()
	meds.err = errors.New("storage down")

	_, err := svc.Record(context.Background(), RecordInput{MedicationID: "m1", Date: "2025-11-16"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidReference)
	assert.Empty(t, repo.items)
}

func TestRecord_NameIsFrozenAtCreation(t *testing.T) {
	svc, _, meds := newTestService()
	ctx := context.Background()

	_, err := svc.Record(ctx, RecordInput{MedicationID: "m1", Date: "2025-11-16"})
	require.NoError(t, err)

	// renombrado y luego borrado: la toma vieja no cambia
	meds.names["m1"] = "Aspirin Forte"
	_, err = svc.Record(ctx, RecordInput{MedicationID: "m1", Date: "2025-11-17"})
	require.NoError(t, err)
	delete(meds.names, "m1")

	all, err := svc.List(ctx, ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Aspirin", all[0].MedicationName)
	assert.Equal(t, "Aspirin Forte", all[1].MedicationName)
}

func TestList_Filters(t *testing.T) {
	svc, _, meds := newTestService()
	meds.names["m2"] = "Vitamin D"
	ctx := context.Background()

	for _, in := range []RecordInput{
		{MedicationID: "m1", Date: "2025-11-16"},
		{MedicationID: "m2", Date: "2025-11-16"},
		{MedicationID: "m1", Date: "2025-11-17"},
	} {
		_, err := svc.Record(ctx, in)
		require.NoError(t, err)
	}

	byDate, err := svc.List(ctx, ListFilter{Date: "2025-11-16"})
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	byMed, err := svc.List(ctx, ListFilter{MedicationID: "m1"})
	require.NoError(t, err)
	assert.Len(t, byMed, 2)

	both, err := svc.List(ctx, ListFilter{Date: "2025-11-17", MedicationID: "m1"})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "in-3", both[0].ID)

	all, err := svc.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"in-1", "in-2", "in-3"}, []string{all[0].ID, all[1].ID, all[2].ID})

	_, err = svc.List(ctx, ListFilter{Date: "yesterday"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestToday_IsUTC(t *testing.T) {
	late := time.Date(2025, 11, 16, 23, 30, 0, 0, time.FixedZone("ART", -3*3600))
	assert.Equal(t, "2025-11-17", Today(late))
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate(" 2025-11-16 ")
	assert.True(t, ok)
	assert.Equal(t, "2025-11-16", d)

	for _, bad := range []string{"", "2025-11", "2025-1-16", "2025-13-01", "not-a-date"} {
		_, ok := ParseDate(bad)
		assert.False(t, ok, bad)
	}
}
