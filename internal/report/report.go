package report

// Historia clínica en PDF con go-pdf/fpdf: ficha del paciente, y por
// cada consulta el examen físico tabulado, las secciones narrativas y
// el total cobrado. Reemplaza el reporte que antes se armaba en el
// cliente.

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/medpaw02-hue/PawMed/internal/domain/consultations"
	"github.com/medpaw02-hue/PawMed/internal/domain/patients"
)

// BuildHistoryPDF arma el PDF de historia clínica completa.
func BuildHistoryPDF(p patients.Patient, cs []consultations.Consultation) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 20)
	// Las fuentes core son cp1252: los acentos pasan por el traductor.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// ── Encabezado ──
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(225, 29, 72)
	pdf.CellFormat(0, 10, "PawMed", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(0, 6, tr("Historia Clínica Veterinaria"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// ── Ficha del paciente ──
	pdf.SetTextColor(15, 23, 42)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, tr(p.Nombre), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	fieldLine(pdf, tr, "Especie", p.Especie, "Raza", p.Raza)
	fieldLine(pdf, tr, "Edad", p.Edad, "Sexo", p.Sexo)
	fieldLine(pdf, tr, "Propietario", p.Propietario, "Teléfono", p.Telefono)
	fieldLine(pdf, tr, "Email", p.Email, "Cédula", p.Cedula)
	pdf.Ln(4)

	total := decimal.Zero
	for i, c := range cs {
		if i > 0 {
			pdf.Ln(6)
		}
		writeConsultation(pdf, tr, c)
		if v, err := decimal.NewFromString(strings.TrimSpace(c.Valor)); err == nil {
			total = total.Add(v)
		}
	}

	// ── Total ──
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(225, 29, 72)
	pdf.CellFormat(0, 8, "TOTAL COBRADO: $"+total.StringFixed(2), "T", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(148, 163, 184)
	pdf.CellFormat(0, 5, fmt.Sprintf("Generado por PawMed el %s", time.Now().Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("report: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeConsultation(pdf *fpdf.Fpdf, tr func(string) string, c consultations.Consultation) {
	pdf.SetTextColor(15, 23, 42)
	pdf.SetFont("Helvetica", "B", 10)
	title := c.Fecha
	if c.Motivo != "" {
		title += " — " + c.Motivo
	}
	pdf.SetFillColor(248, 250, 252)
	pdf.CellFormat(0, 7, tr(title), "", 1, "L", true, 0, "")

	exam := [][2]string{
		{"Temperatura", c.Examen.Temperatura},
		{"Peso", c.Examen.Peso},
		{"Cond. corporal", c.Examen.CondicionCorporal},
		{"FC", c.Examen.FrecuenciaCardiaca},
		{"FR", c.Examen.FrecuenciaRespiratoria},
		{"Mucosas", c.Examen.Mucosas},
		{"TLC", c.Examen.TiempoLlenadoCapilar},
		{"Ganglios", c.Examen.Ganglios},
		{"Hidratación", c.Examen.EstadoHidratacion},
	}
	pdf.SetFont("Helvetica", "", 8)
	cols := 0
	for _, kv := range exam {
		if strings.TrimSpace(kv[1]) == "" {
			continue
		}
		pdf.CellFormat(60, 5, tr(kv[0]+": "+kv[1]), "", 0, "L", false, 0, "")
		cols++
		if cols%3 == 0 {
			pdf.Ln(5)
		}
	}
	if cols%3 != 0 {
		pdf.Ln(5)
	}

	section(pdf, tr, "HALLAZGOS", c.Hallazgos)
	section(pdf, tr, "DIAGNÓSTICO PRESUNTIVO", c.DiagnosticoPresuntivo)
	section(pdf, tr, "DIAGNÓSTICO DEFINITIVO", c.DiagnosticoDefinitivo)
	section(pdf, tr, "TRATAMIENTO", c.Tratamiento)
	section(pdf, tr, "INDICACIÓN Y EVOLUCIÓN", c.IndicacionEvolucion)
	section(pdf, tr, "NOTAS ADICIONALES", c.Notas)

	if strings.TrimSpace(c.Valor) != "" {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(0, 5, "Valor: $"+c.Valor, "", 1, "R", false, 0, "")
	}
}

func section(pdf *fpdf.Fpdf, tr func(string) string, title, content string) {
	content = strings.TrimSpace(content)
	if content == "" {
		return
	}
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(0, 5, tr(title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(15, 23, 42)
	pdf.MultiCell(0, 5, tr(content), "", "L", false)
	pdf.Ln(1)
}

func fieldLine(pdf *fpdf.Fpdf, tr func(string) string, k1, v1, k2, v2 string) {
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(25, 5, tr(k1)+":", "", 0, "L", false, 0, "")
	pdf.SetTextColor(15, 23, 42)
	pdf.CellFormat(65, 5, tr(v1), "", 0, "L", false, 0, "")
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(25, 5, tr(k2)+":", "", 0, "L", false, 0, "")
	pdf.SetTextColor(15, 23, 42)
	pdf.CellFormat(0, 5, tr(v2), "", 1, "L", false, 0, "")
}
