package patients

import (
	"context"
	"fmt"
	"strings"
)

// CascadeReport cuenta lo que efectivamente se borró.
type CascadeReport struct {
	DependentsDeleted int  `json:"dependentsDeleted"`
	DependentsTotal   int  `json:"dependentsTotal"`
	PatientDeleted    bool `json:"patientDeleted"`
}

// CascadeError: la cascada se cortó a mitad de secuencia. Lleva el
// conteo de dependientes ya borrados contra el total para que el caller
// decida si reintenta el resto. No hay rollback posible contra la hoja.
type CascadeError struct {
	Completed int
	Total     int
	Err       error
}

func (e *CascadeError) Error() string {
	return fmt.Sprintf("cascade aborted: %d/%d dependents deleted: %v", e.Completed, e.Total, e.Err)
}

func (e *CascadeError) Unwrap() error { return e.Err }

// DeleteCascade borra un paciente con sus dependientes. La hoja no
// tiene integridad referencial, así que el barrido es del lado cliente:
// se enumeran los ids dependientes (escaneo O(n) de la tabla completa,
// hecho explícito en Dependents.IDsByPaciente), se borran secuenciales
// y recién después la fila del paciente. Orden estricto: dependientes
// antes que el padre, para no dejar consultas apuntando a un paciente
// inexistente. Si el borrado del padre falla con los dependientes ya
// idos, ese estado parcial se reporta, no se oculta.
func (s *Service) DeleteCascade(ctx context.Context, id string) (CascadeReport, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return CascadeReport{}, ErrInvalidInput
	}

	// Enumerar todo antes de borrar nada, para reportar un total real.
	var pending [][2]int // (índice de dependents, índice dentro de ids)
	ids := make([][]string, len(s.dependents))
	total := 0
	for i, dep := range s.dependents {
		depIDs, err := dep.IDsByPaciente(ctx, id)
		if err != nil {
			return CascadeReport{}, fmt.Errorf("enumerating dependents: %w", err)
		}
		ids[i] = depIDs
		total += len(depIDs)
		for j := range depIDs {
			pending = append(pending, [2]int{i, j})
		}
	}

	report := CascadeReport{DependentsTotal: total}
	for _, p := range pending {
		depID := ids[p[0]][p[1]]
		if err := s.dependents[p[0]].Delete(ctx, depID); err != nil {
			return report, &CascadeError{
				Completed: report.DependentsDeleted,
				Total:     total,
				Err:       err,
			}
		}
		report.DependentsDeleted++
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		// Sin dependientes no hubo cascada: el error sube tal cual
		// (un id inexistente tiene que llegar como not-found, no como
		// cascada cortada).
		if total == 0 {
			return report, err
		}
		return report, &CascadeError{
			Completed: report.DependentsDeleted,
			Total:     total,
			Err:       fmt.Errorf("dependents removed but patient delete failed: %w", err),
		}
	}
	report.PatientDeleted = true
	return report, nil
}
