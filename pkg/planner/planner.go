// Package planner models the browsing and data-entry state of the turnos app
// as one explicit value with deterministic transitions: the normalized day
// list, the selected day, the person filter and the buffer of shifts entered
// but not yet persisted.
package planner

import (
	"context"
	"time"

	"github.com/jesusgarciaalemany/turnos-api-go/pkg/models"
	"github.com/jesusgarciaalemany/turnos-api-go/pkg/turnos"
)

// State is the full planning state. Mutations go through the methods below so
// transitions stay testable; nothing here is safe for concurrent use.
type State struct {
	Dias       []models.Dia
	Seleccion  string // fecha of the selected day, "" when nothing selectable
	Persona    string // active person filter, "" means no filter
	Pendientes []models.Turno
}

// Cargar normalizes the raw records and selects the day closest to ahora.
// The selection is made once here, not on later reads.
func Cargar(registros []models.Registro, ahora time.Time) *State {
	s := &State{Dias: turnos.Normalizar(registros)}
	if idx := turnos.DiaMasCercano(s.Dias, ahora); idx >= 0 {
		s.Seleccion = s.Dias[idx].Fecha
	}
	return s
}

// SeleccionarDia moves the selection; unknown dates are ignored.
func (s *State) SeleccionarDia(fecha string) {
	for _, d := range s.Dias {
		if d.Fecha == fecha {
			s.Seleccion = fecha
			return
		}
	}
}

// FiltrarPersona sets the active person filter.
func (s *State) FiltrarPersona(persona string) {
	s.Persona = persona
}

// DiasVisibles returns the days under the active filter. A day left with no
// matching shifts is dropped entirely.
func (s *State) DiasVisibles() []models.Dia {
	var visibles []models.Dia
	for _, d := range s.Dias {
		ts := turnos.FiltrarDia(d, s.Persona)
		if len(ts) == 0 {
			continue
		}
		visibles = append(visibles, models.Dia{Fecha: d.Fecha, Turnos: ts})
	}
	return visibles
}

// DiaSeleccionado returns the selected day as currently visible. When the
// selection is no longer present (the filter removed it), it falls back to
// the first visible day without touching the stored selection.
func (s *State) DiaSeleccionado() *models.Dia {
	visibles := s.DiasVisibles()
	if len(visibles) == 0 {
		return nil
	}
	for i := range visibles {
		if visibles[i].Fecha == s.Seleccion {
			return &visibles[i]
		}
	}
	return &visibles[0]
}

// AgregarPendiente appends a shift to the pending buffer and returns the
// prefill for the one after it.
func (s *State) AgregarPendiente(t models.Turno) (models.Prefill, error) {
	s.Pendientes = append(s.Pendientes, t)
	return turnos.NextShift(t)
}

// Confirmar hands the pending buffer to guardar and clears it only when the
// save succeeds, so a failed persist leaves everything in place for a manual
// retry. Returns the number of shifts reported saved.
func (s *State) Confirmar(ctx context.Context, guardar func(context.Context, []models.Turno) (int, error)) (int, error) {
	if len(s.Pendientes) == 0 {
		return 0, nil
	}
	n, err := guardar(ctx, s.Pendientes)
	if err != nil {
		return 0, err
	}
	s.Pendientes = nil
	return n, nil
}
