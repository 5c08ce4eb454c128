package sheets

import (
	"fmt"

	"github.com/medpaw02-hue/PawMed/internal/config"
	"github.com/medpaw02-hue/PawMed/internal/ports/store"
)

// validEndpoint corta operaciones contra URLs inválidas antes de
// intentar la red: error de configuración, no de transporte.
func validEndpoint(u string) error {
	if !config.IsValidURL(u) {
		return fmt.Errorf("%w: %q", store.ErrInvalidEndpoint, u)
	}
	return nil
}
