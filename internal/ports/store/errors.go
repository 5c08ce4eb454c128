// Package store define el contrato de errores del almacenamiento de
// filas. Vive en ports, sin dependencias, para que adapters, dominio
// y el mapeo HTTP lo compartan sin ciclos de import.
package store

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstreamMisconfigured: el store devolvió HTML. Casi siempre es el
	// despliegue del Apps Script sin acceso "Cualquier persona"; lo tiene
	// que arreglar un operador, reintentar no sirve.
	ErrUpstreamMisconfigured = errors.New("store: upstream returned html (revisar permisos de publicación del script)")

	// ErrRateLimited: Google está limitando las invocaciones del script.
	// Distinto de un error de transporte para que la UI sugiera esperar.
	ErrRateLimited = errors.New("store: rate limited by upstream")

	// ErrNotFound: el id a borrar no existe en la hoja. No fatal; el
	// registro pudo haber sido borrado por otro escritor.
	ErrNotFound = errors.New("store: id not found")

	// ErrInvalidEndpoint: URL de endpoint ausente o sintácticamente
	// inválida. Se corta acá, nunca llega a la red.
	ErrInvalidEndpoint = errors.New("store: invalid endpoint url")
)

// Error es un envelope {status:"error"} del store con su mensaje.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("store: error: %s", e.Message)
}
