package sheets

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Row es una fila ya normalizada: keys canónicas camelCase, valores
// siempre string (la hoja representa ausencia como string vacío).
type Row map[string]string

// Schema puentea el desfase entre el encabezado implícito de la hoja
// (case arbitrario, columnas que aparecen y desaparecen) y los nombres
// canónicos de la aplicación. El mapeo bidireccional se construye una
// sola vez desde un registro fijo, no se rederiva por llamada.
type Schema struct {
	fields []string
	byFold map[string]string // lowercase -> canónico
}

func NewSchema(fields ...string) *Schema {
	s := &Schema{
		fields: fields,
		byFold: make(map[string]string, len(fields)+1),
	}
	for _, f := range fields {
		s.byFold[strings.ToLower(f)] = f
	}
	// id se preserva siempre, esté o no en el registro.
	if _, ok := s.byFold["id"]; !ok {
		s.fields = append([]string{"id"}, s.fields...)
		s.byFold["id"] = "id"
	}
	return s
}

// Fields devuelve el registro canónico (id primero).
func (s *Schema) Fields() []string {
	out := make([]string, len(s.fields))
	copy(out, s.fields)
	return out
}

// Normalize copia cada campo canónico desde la key cruda que matchee
// case-insensitive. Campos sin match quedan ausentes; jamás se inventa
// un valor. Idempotente: normalizar una fila ya canónica es un no-op.
func (s *Schema) Normalize(raw map[string]any) Row {
	index := make(map[string]string, len(raw))
	for k := range raw {
		index[strings.ToLower(strings.TrimSpace(k))] = k
	}

	out := make(Row, len(s.fields))
	for _, canonical := range s.fields {
		rawKey, ok := index[strings.ToLower(canonical)]
		if !ok {
			continue
		}
		out[canonical] = Stringify(raw[rawKey])
	}
	return out
}

// RowValues resuelve cada encabezado de la hoja contra la fila canónica
// (case-insensitive) y devuelve los valores posicionales. Encabezados
// sin match mapean a string vacío, nunca a un "undefined".
func (s *Schema) RowValues(row Row, headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		canonical, ok := s.byFold[strings.ToLower(strings.TrimSpace(h))]
		if !ok {
			// Columna desconocida para este esquema: igual intentamos
			// match directo por si la fila trae esa key literal.
			canonical = strings.TrimSpace(h)
		}
		out[i] = row[canonical]
	}
	return out
}

// SeedHeaders arma el encabezado inicial desde las keys del payload
// cuando la hoja está vacía (excluyendo el campo de control action),
// en el orden del registro canónico.
func (s *Schema) SeedHeaders(row Row) []string {
	out := make([]string, 0, len(row))
	for _, f := range s.fields {
		if f == "action" {
			continue
		}
		if _, ok := row[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Stringify aplana los valores JSON de la hoja a string. Los ids
// numéricos llegan como float64 o como string según el humor del
// script; acá se colapsan ("1" y 1 comparan igual río arriba).
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
