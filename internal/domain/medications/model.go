package medications

// Medication es un medicamento registrado por el usuario.
// ID se asigna al crear y no cambia.
type Medication struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Dosage string   `json:"dosage"`
	Times  []string `json:"times"` // horarios de toma, p.ej. "08:00"
	Notes  string   `json:"notes"`
}
