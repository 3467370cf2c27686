package intakes

import "time"

// Intake es una toma registrada. Nunca se edita ni se borra.
//
// MedicationName es una copia del nombre al momento de registrar: si el medicamento
// se renombra o se elimina después, el historial sigue siendo legible.
type Intake struct {
	ID             string    `json:"id"`
	MedicationID   string    `json:"medicationId"`
	MedicationName string    `json:"medicationName"`
	Date           string    `json:"date"` // YYYY-MM-DD
	Time           string    `json:"time,omitempty"`
	Taken          bool      `json:"taken"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
