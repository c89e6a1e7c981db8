package turnos

import (
	"strings"

	"github.com/jesusgarciaalemany/turnos-api-go/pkg/models"
)

// Sentinel assignee name meaning "everyone"; stored both as "Todos" and
// "TODOS", so matching ignores case.
const Todos = "Todos"

func esTodos(nombre string) bool {
	return strings.EqualFold(nombre, Todos)
}

func contienePersona(nombres []string, persona string) bool {
	for _, n := range nombres {
		if n == persona || esTodos(n) {
			return true
		}
	}
	return false
}

// MatchesPersona reports whether a shift is visible under a person filter:
// always when the filter is empty, otherwise when the person or the Todos
// sentinel appears in the flat list or in any role's list.
func MatchesPersona(t models.Turno, persona string) bool {
	if persona == "" {
		return true
	}
	if t.Personas.Roles != nil {
		for _, nombres := range t.Personas.Roles {
			if contienePersona(nombres, persona) {
				return true
			}
		}
		return false
	}
	return contienePersona(t.Personas.Lista, persona)
}

// FiltrarDia returns the shifts of a day visible under the person filter.
func FiltrarDia(d models.Dia, persona string) []models.Turno {
	if persona == "" {
		return d.Turnos
	}
	var visibles []models.Turno
	for _, t := range d.Turnos {
		if MatchesPersona(t, persona) {
			visibles = append(visibles, t)
		}
	}
	return visibles
}
