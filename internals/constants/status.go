package constants

import (
	"fmt"
	"strings"
)

// Status domain shared by families and workshops.
const (
	StatusActive   = "Activo"
	StatusInactive = "Inactivo"
)

// Template pesan error status
const ErrInvalidStatus = "estado %q no válido, use Activo o Inactivo"

var AllStatuses = []string{
	StatusActive,
	StatusInactive,
}

// ParseStatus normalizes a status value to its canonical form.
// Accepts the Spanish values and the English aliases, case-insensitive.
func ParseStatus(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "activo", "active":
		return StatusActive, nil
	case "inactivo", "inactive":
		return StatusInactive, nil
	default:
		return "", fmt.Errorf(ErrInvalidStatus, raw)
	}
}

func IsValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive
}
