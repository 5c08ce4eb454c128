// Package apierror centraliza el envelope de error de la API y el
// mapeo de los errores del storage a status HTTP. Depende solo del
// contrato de ports/store; los errores propios de cada dominio
// (cascadas, credenciales) se mapean en su handler. Los errores de
// configuración (script mal publicado, URL inválida) y el throttling
// salen con mensajes distintos: la remediación es distinta.
package apierror

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/medpaw02-hue/PawMed/internal/ports/store"
)

// APIError es el envelope canónico para respuestas 4xx/5xx.
type APIError struct {
	Error string `json:"error"`

	// Solo para cascadas abortadas a mitad de secuencia.
	DependentsDeleted *int `json:"dependentsDeleted,omitempty"`
	DependentsTotal   *int `json:"dependentsTotal,omitempty"`
}

func Write(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(APIError{Error: msg})
}

// WriteErr traduce un error del storage a una respuesta HTTP.
func WriteErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		Write(w, http.StatusNotFound, "registro no encontrado")
	case errors.Is(err, store.ErrInvalidEndpoint):
		Write(w, http.StatusUnprocessableEntity,
			"endpoint no configurado o inválido: revisá la configuración de URLs")
	case errors.Is(err, store.ErrUpstreamMisconfigured):
		Write(w, http.StatusBadGateway,
			"el script devolvió HTML: publicá el Apps Script con acceso \"Cualquier persona\"")
	case errors.Is(err, store.ErrRateLimited):
		Write(w, http.StatusTooManyRequests,
			"Google está limitando las llamadas: esperá un momento y reintentá")
	default:
		var storeErr *store.Error
		if errors.As(err, &storeErr) {
			Write(w, http.StatusBadGateway, storeErr.Message)
			return
		}
		// Transporte, timeout, no-2xx sin body interpretable.
		Write(w, http.StatusBadGateway, "error de comunicación con Google Sheets")
	}
}
