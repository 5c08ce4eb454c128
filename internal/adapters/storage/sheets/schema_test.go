package sheets

import (
	"reflect"
	"testing"
)

func TestSchema_Normalize_CaseInsensitiveHeaders(t *testing.T) {
	s := NewSchema("id", "nombre", "especie")

	row := s.Normalize(map[string]any{
		"ID":      "p-1",
		"Nombre":  "Milo",
		"ESPECIE": "canino",
	})

	want := Row{"id": "p-1", "nombre": "Milo", "especie": "canino"}
	if !reflect.DeepEqual(row, want) {
		t.Fatalf("normalize mismatch: got %#v want %#v", row, want)
	}
}

func TestSchema_Normalize_MissingColumnsStayAbsent(t *testing.T) {
	s := NewSchema("id", "nombre", "telefono")

	// Columna borrada de la hoja: el campo queda ausente, no se inventa.
	row := s.Normalize(map[string]any{"id": "p-1", "nombre": "Milo"})

	if _, ok := row["telefono"]; ok {
		t.Fatalf("expected telefono absent, got %#v", row)
	}
}

func TestSchema_Normalize_Idempotent(t *testing.T) {
	s := NewSchema("id", "nombre")

	once := s.Normalize(map[string]any{"Id": "p-1", "NOMBRE": "Milo"})

	asRaw := make(map[string]any, len(once))
	for k, v := range once {
		asRaw[k] = v
	}
	twice := s.Normalize(asRaw)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("normalize is not idempotent: %#v vs %#v", once, twice)
	}
}

func TestSchema_IDAlwaysFirstInRegistry(t *testing.T) {
	s := NewSchema("nombre", "especie")
	fields := s.Fields()
	if len(fields) != 3 || fields[0] != "id" {
		t.Fatalf("expected id first in registry, got %v", fields)
	}
}

func TestSchema_RowValues_UnknownHeaderIsEmptyString(t *testing.T) {
	s := NewSchema("id", "nombre")
	row := Row{"id": "p-1", "nombre": "Milo"}

	got := s.RowValues(row, []string{"Nombre", "columnaVieja", "ID"})
	want := []string{"Milo", "", "p-1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("row values mismatch: got %v want %v", got, want)
	}
}

func TestSchema_SeedHeaders_ExcludesAction(t *testing.T) {
	s := NewSchema("id", "nombre", "especie")
	row := Row{"id": "p-1", "nombre": "Milo", "especie": "canino", "action": "upsert"}

	got := s.SeedHeaders(row)
	want := []string{"id", "nombre", "especie"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("seed headers mismatch: got %v want %v", got, want)
	}
}

func TestSchema_RoundTrip_NormalizeAfterRowValues(t *testing.T) {
	s := NewSchema("id", "nombre", "telefono")
	row := Row{"id": "p-1", "nombre": "Milo"}

	// Encabezado superconjunto con case desprolijo.
	headers := []string{"ID", "Nombre", "Telefono"}
	values := s.RowValues(row, headers)

	back := make(map[string]any, len(headers))
	for i, h := range headers {
		back[h] = values[i]
	}
	got := s.Normalize(back)

	if got["id"] != "p-1" || got["nombre"] != "Milo" {
		t.Fatalf("round trip lost fields: %#v", got)
	}
	// Campo ausente vuelve como string vacío (pérdida documentada).
	if got["telefono"] != "" {
		t.Fatalf("expected empty telefono after round trip, got %q", got["telefono"])
	}
}

func TestStringify_FlattensSheetValues(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"Milo", "Milo"},
		{true, "true"},
		{float64(3), "3"},
		{float64(1755712345678), "1755712345678"}, // id numérico estilo Date.now()
		{float64(2.5), "2.5"},
	}
	for _, c := range cases {
		if got := Stringify(c.in); got != c.want {
			t.Fatalf("Stringify(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
