package overview

import (
	"context"
	"errors"
	"strings"
	"time"

	"medimanager/internal/domain/intakes"
	"medimanager/internal/domain/medications"
)

var ErrInvalidInput = errors.New("date must be YYYY-MM-DD")

type MedicationLister interface {
	List(ctx context.Context) ([]medications.Medication, error)
}

type IntakeLister interface {
	List(ctx context.Context, filter intakes.ListFilter) ([]intakes.Intake, error)
}

type Service struct {
	meds    MedicationLister
	intakes IntakeLister
	now     func() time.Time
}

func NewService(meds MedicationLister, in IntakeLister) *Service {
	return &Service{
		meds:    meds,
		intakes: in,
		now:     time.Now,
	}
}

// ForDate arma la vista del día. date vacío = hoy (UTC).
func (s *Service) ForDate(ctx context.Context, date string) (DayOverview, error) {
	if strings.TrimSpace(date) == "" {
		date = intakes.Today(s.now())
	} else {
		d, ok := intakes.ParseDate(date)
		if !ok {
			return DayOverview{}, ErrInvalidInput
		}
		date = d
	}

	meds, err := s.meds.List(ctx)
	if err != nil {
		return DayOverview{}, err
	}
	day, err := s.intakes.List(ctx, intakes.ListFilter{Date: date})
	if err != nil {
		return DayOverview{}, err
	}

	return Build(date, meds, day), nil
}

// Build es la parte pura: une medicamentos con las tomas de un día.
//
// - el orden sigue a meds (orden de creación), no a las tomas
// - todo medicamento aparece una vez, aunque no tenga tomas
// - TakenToday es true si al menos una toma tiene Taken=true
// - tomas de medicamentos que ya no existen no aparecen acá (siguen en el ledger)
func Build(date string, meds []medications.Medication, day []intakes.Intake) DayOverview {
	byMed := make(map[string][]intakes.Intake, len(meds))
	for _, in := range day {
		if in.Date != date {
			continue
		}
		byMed[in.MedicationID] = append(byMed[in.MedicationID], in)
	}

	out := DayOverview{
		Date:          date,
		PerMedication: make([]MedicationDay, 0, len(meds)),
	}

	for _, m := range meds {
		entries := byMed[m.ID]
		if entries == nil {
			entries = []intakes.Intake{}
		}

		taken := false
		for _, e := range entries {
			if e.Taken {
				taken = true
				break
			}
		}

		times := m.Times
		if times == nil {
			times = []string{}
		}

		out.PerMedication = append(out.PerMedication, MedicationDay{
			MedicationID:  m.ID,
			Name:          m.Name,
			Dosage:        m.Dosage,
			Times:         times,
			Notes:         m.Notes,
			IntakeEntries: entries,
			TakenToday:    taken,
		})

		out.Summary.Total++
		if taken {
			out.Summary.Taken++
		}
	}

	return out
}
