package overview

import "medimanager/internal/domain/intakes"

// DayOverview es la vista por medicamento de un día calendario.
type DayOverview struct {
	Date          string          `json:"date"`
	PerMedication []MedicationDay `json:"perMedication"`
	Summary       Summary         `json:"summary"`
}

type MedicationDay struct {
	MedicationID  string           `json:"medicationId"`
	Name          string           `json:"name"`
	Dosage        string           `json:"dosage"`
	Times         []string         `json:"times"`
	Notes         string           `json:"notes"`
	IntakeEntries []intakes.Intake `json:"intakeEntries"`
	TakenToday    bool             `json:"takenToday"`
}

// Summary cuenta medicamentos del día y cuántos tienen al menos una toma confirmada.
type Summary struct {
	Total int `json:"total"`
	Taken int `json:"taken"`
}
