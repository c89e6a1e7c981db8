package turnos

import "github.com/jesusgarciaalemany/turnos-api-go/pkg/models"

// Normalizar collapses the two stored record shapes into one list of days.
// Records sharing a fecha are merged into a single Dia, shifts kept in
// encounter order, and the days themselves come out in the order their fecha
// was first seen. Normalizing an already day-shaped list is a no-op.
func Normalizar(registros []models.Registro) []models.Dia {
	agrupados := make(map[string][]models.Turno)
	var orden []string

	agregar := func(fecha string, ts ...models.Turno) {
		if _, ok := agrupados[fecha]; !ok {
			orden = append(orden, fecha)
		}
		agrupados[fecha] = append(agrupados[fecha], ts...)
	}

	for _, r := range registros {
		switch {
		case r.Dia != nil:
			agregar(r.Dia.Fecha, r.Dia.Turnos...)
		case r.Turno != nil:
			t := *r.Turno
			t.Fecha = "" // the day bucket carries the date
			agregar(r.Turno.Fecha, t)
		}
	}

	dias := make([]models.Dia, 0, len(orden))
	for _, fecha := range orden {
		dias = append(dias, models.Dia{Fecha: fecha, Turnos: agrupados[fecha]})
	}
	return dias
}
