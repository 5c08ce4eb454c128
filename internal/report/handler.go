package report

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/medpaw02-hue/PawMed/internal/apierror"
	"github.com/medpaw02-hue/PawMed/internal/domain/consultations"
	"github.com/medpaw02-hue/PawMed/internal/domain/patients"
)

func RegisterRoutes(r chi.Router, patientsSvc *patients.Service, consultationsSvc *consultations.Service) {
	r.Get("/api/patients/{id}/report", historyReportHandler(patientsSvc, consultationsSvc))
}

func historyReportHandler(patientsSvc *patients.Service, consultationsSvc *consultations.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			apierror.Write(w, http.StatusBadRequest, "id requerido")
			return
		}

		// La hoja no sabe buscar por id: listamos y filtramos acá,
		// igual que el resto de la app.
		all, err := patientsSvc.List(r.Context())
		if err != nil {
			apierror.WriteErr(w, err)
			return
		}
		var target *patients.Patient
		for i := range all {
			if strings.TrimSpace(all[i].ID) == id {
				target = &all[i]
				break
			}
		}
		if target == nil {
			apierror.Write(w, http.StatusNotFound, "paciente no encontrado")
			return
		}

		cs, err := consultationsSvc.ListByPaciente(r.Context(), id)
		if err != nil {
			apierror.WriteErr(w, err)
			return
		}

		pdf, err := BuildHistoryPDF(*target, cs)
		if err != nil {
			apierror.Write(w, http.StatusInternalServerError, "no se pudo generar el PDF")
			return
		}

		safe := strings.Map(func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
				return r
			}
			return '_'
		}, target.Nombre)
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=Historia_%s.pdf", safe))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(pdf)
	}
}
