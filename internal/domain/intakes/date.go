package intakes

import (
	"strings"
	"time"
)

// DateLayout es el formato de día calendario usado en todo el API.
const DateLayout = "2006-01-02"

// ParseDate valida YYYY-MM-DD y devuelve la forma canónica.
func ParseDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", false
	}
	return t.Format(DateLayout), true
}

// Today trunca now a día calendario en UTC, sin considerar la zona del cliente.
func Today(now time.Time) string {
	return now.UTC().Format(DateLayout)
}
