package types

import (
	"fmt"
	"strings"
)

// ------------------------------
// Shared Validation & Errors
// ------------------------------

// ValidateEmailPresent rejects blank emails before they reach the wire.
// The backend does full address validation; this only guards URL building.
func ValidateEmailPresent(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email do paciente é obrigatório")
	}
	return nil
}

// ValidateLevel checks the 1-5 scale fields. Zero means "unset" and is
// accepted; anything else outside the scale is rejected.
func ValidateLevel(v int, field string) error {
	if v == 0 || (v >= 1 && v <= 5) {
		return nil
	}
	return fmt.Errorf("%s deve estar entre 1 e 5", field)
}

// ErrNotFound is returned when the backend reports 404 for a resource.
var ErrNotFound = fmt.Errorf("recurso não encontrado")
