package sheets

import (
	"fmt"
	"strings"

	"github.com/medpaw02-hue/PawMed/internal/ports/store"
)

// envelopeError traduce el envelope del script a los errores tipados
// del contrato de store.
func envelopeError(env Envelope) error {
	if !strings.EqualFold(env.Status, "error") {
		return nil
	}
	msg := env.Message
	if msg == "" {
		msg = env.Details
	}
	if isNotFoundMessage(msg) {
		return fmt.Errorf("%w: %s", store.ErrNotFound, msg)
	}
	return &store.Error{Message: msg}
}

func isNotFoundMessage(msg string) bool {
	l := strings.ToLower(msg)
	return strings.Contains(l, "no encontrado") || strings.Contains(l, "not found")
}
