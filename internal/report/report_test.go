package report

import (
	"bytes"
	"testing"

	"github.com/medpaw02-hue/PawMed/internal/domain/consultations"
	"github.com/medpaw02-hue/PawMed/internal/domain/patients"
)

func TestBuildHistoryPDF_ProducesPDF(t *testing.T) {
	p := patients.Patient{
		ID: "p-1", Nombre: "Milo", Especie: "canino",
		Propietario: "Ana Pérez", Telefono: "3001234567",
	}
	cs := []consultations.Consultation{
		{
			ID: "c-1", PacienteID: "p-1", Fecha: "2026-08-20T10:00:00Z",
			Motivo: "control anual", Valor: "45000",
			Examen: consultations.PhysicalExam{Temperatura: "38.5", Peso: "12.3"},
		},
		{
			ID: "c-2", PacienteID: "p-1", Fecha: "2026-08-25T10:00:00Z",
			Motivo: "vacunación", Valor: "30000.50",
		},
	}

	out, err := BuildHistoryPDF(p, cs)
	if err != nil {
		t.Fatalf("BuildHistoryPDF error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("expected PDF magic, got %q", out[:min(8, len(out))])
	}
}

func TestBuildHistoryPDF_IgnoresUnparsableValor(t *testing.T) {
	p := patients.Patient{ID: "p-1", Nombre: "Milo"}
	cs := []consultations.Consultation{
		{ID: "c-1", PacienteID: "p-1", Motivo: "control", Valor: "sin cargo"},
	}

	// Un valor no numérico de la hoja no debe romper el reporte.
	out, err := BuildHistoryPDF(p, cs)
	if err != nil {
		t.Fatalf("BuildHistoryPDF error: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("expected PDF output")
	}
}

func TestBuildHistoryPDF_EmptyHistory(t *testing.T) {
	out, err := BuildHistoryPDF(patients.Patient{ID: "p-1", Nombre: "Milo"}, nil)
	if err != nil {
		t.Fatalf("BuildHistoryPDF error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("expected PDF magic")
	}
}
