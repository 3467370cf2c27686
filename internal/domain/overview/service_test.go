package overview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medimanager/internal/adapters/storage/memory"
	"medimanager/internal/adapters/storage/snapshotrepo"
	"medimanager/internal/domain/intakes"
	"medimanager/internal/domain/medications"
)

type fixture struct {
	meds    *medications.Service
	intakes *intakes.Service
	svc     *Service
}

func newFixture(t *testing.T, now time.Time) fixture {
	t.Helper()
	store := memory.NewStore()
	meds := medications.NewService(snapshotrepo.NewMedicationRepo(store))
	in := intakes.NewService(snapshotrepo.NewIntakeRepo(store), meds)
	svc := NewService(meds, in)
	svc.now = func() time.Time { return now }
	return fixture{meds: meds, intakes: in, svc: svc}
}

func boolPtr(b bool) *bool { return &b }

func TestForDate_MedicationWithoutIntakesThenTaken(t *testing.T) {
	f := newFixture(t, time.Now())
	ctx := context.Background()

	m, err := f.meds.Create(ctx, medications.CreateInput{Name: "Aspirin", Dosage: "100mg"})
	require.NoError(t, err)

	ov, err := f.svc.ForDate(ctx, "2025-11-16")
	require.NoError(t, err)
	require.Len(t, ov.PerMedication, 1)
	assert.Equal(t, "2025-11-16", ov.Date)
	assert.Equal(t, m.ID, ov.PerMedication[0].MedicationID)
	assert.NotNil(t, ov.PerMedication[0].IntakeEntries)
	assert.Empty(t, ov.PerMedication[0].IntakeEntries)
	assert.False(t, ov.PerMedication[0].TakenToday)
	assert.Equal(t, Summary{Total: 1, Taken: 0}, ov.Summary)

	_, err = f.intakes.Record(ctx, intakes.RecordInput{MedicationID: m.ID, Date: "2025-11-16", Taken: boolPtr(true)})
	require.NoError(t, err)

	ov, err = f.svc.ForDate(ctx, "2025-11-16")
	require.NoError(t, err)
	require.Len(t, ov.PerMedication, 1)
	assert.True(t, ov.PerMedication[0].TakenToday)
	assert.Len(t, ov.PerMedication[0].IntakeEntries, 1)
	assert.Equal(t, Summary{Total: 1, Taken: 1}, ov.Summary)
}

func TestForDate_DefaultsToTodayUTC(t *testing.T) {
	now := time.Date(2025, 11, 16, 22, 0, 0, 0, time.FixedZone("ART", -3*3600))
	f := newFixture(t, now)

	ov, err := f.svc.ForDate(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "2025-11-17", ov.Date)
	assert.NotNil(t, ov.PerMedication)
	assert.Empty(t, ov.PerMedication)
}

func TestForDate_InvalidDate(t *testing.T) {
	f := newFixture(t, time.Now())

	_, err := f.svc.ForDate(context.Background(), "16-11-2025")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestForDate_OnlyThatDayAndSkippedIntakes(t *testing.T) {
	f := newFixture(t, time.Now())
	ctx := context.Background()

	a, err := f.meds.Create(ctx, medications.CreateInput{Name: "A", Dosage: "1"})
	require.NoError(t, err)
	b, err := f.meds.Create(ctx, medications.CreateInput{Name: "B", Dosage: "2"})
	require.NoError(t, err)

	for _, in := range []intakes.RecordInput{
		{MedicationID: b.ID, Date: "2025-11-16", Taken: boolPtr(false)},
		{MedicationID: a.ID, Date: "2025-11-15"},
		{MedicationID: b.ID, Date: "2025-11-16", Time: "20:00", Taken: boolPtr(false)},
	} {
		_, err := f.intakes.Record(ctx, in)
		require.NoError(t, err)
	}

	ov, err := f.svc.ForDate(ctx, "2025-11-16")
	require.NoError(t, err)
	require.Len(t, ov.PerMedication, 2)

	// orden del registry, no de las tomas
	assert.Equal(t, a.ID, ov.PerMedication[0].MedicationID)
	assert.Empty(t, ov.PerMedication[0].IntakeEntries)
	assert.False(t, ov.PerMedication[0].TakenToday)

	assert.Equal(t, b.ID, ov.PerMedication[1].MedicationID)
	assert.Len(t, ov.PerMedication[1].IntakeEntries, 2)
	assert.False(t, ov.PerMedication[1].TakenToday)
	assert.Equal(t, Summary{Total: 2, Taken: 0}, ov.Summary)
}

func TestForDate_DeletedMedicationDropsOutButLedgerKeepsIntake(t *testing.T) {
	f := newFixture(t, time.Now())
	ctx := context.Background()

	m, err := f.meds.Create(ctx, medications.CreateInput{Name: "Aspirin", Dosage: "100mg"})
	require.NoError(t, err)
	_, err = f.intakes.Record(ctx, intakes.RecordInput{MedicationID: m.ID, Date: "2025-11-16"})
	require.NoError(t, err)
	_, err = f.meds.Delete(ctx, m.ID)
	require.NoError(t, err)

	ov, err := f.svc.ForDate(ctx, "2025-11-16")
	require.NoError(t, err)
	assert.Empty(t, ov.PerMedication)

	ledger, err := f.intakes.List(ctx, intakes.ListFilter{Date: "2025-11-16"})
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, "Aspirin", ledger[0].MedicationName)
}

type failingMeds struct{}

func (failingMeds) List(ctx context.Context) ([]medications.Medication, error) {
	return nil, errors.New("storage down")
}

func TestForDate_PropagatesStorageErrors(t *testing.T) {
	svc := NewService(failingMeds{}, nil)

	_, err := svc.ForDate(context.Background(), "2025-11-16")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

func TestBuild_IgnoresIntakesOfOtherDaysAndUnknownMeds(t *testing.T) {
	meds := []medications.Medication{{ID: "m1", Name: "Aspirin", Dosage: "100mg"}}
	day := []intakes.Intake{
		{ID: "i1", MedicationID: "m1", Date: "2025-11-16", Taken: true},
		{ID: "i2", MedicationID: "m1", Date: "2025-11-15", Taken: true},
		{ID: "i3", MedicationID: "gone", Date: "2025-11-16", Taken: true},
	}

	ov := Build("2025-11-16", meds, day)
	require.Len(t, ov.PerMedication, 1)
	assert.Equal(t, []string{}, ov.PerMedication[0].Times)
	require.Len(t, ov.PerMedication[0].IntakeEntries, 1)
	assert.Equal(t, "i1", ov.PerMedication[0].IntakeEntries[0].ID)
	assert.True(t, ov.PerMedication[0].TakenToday)
}
