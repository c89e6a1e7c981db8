// Package turnos holds the shift-time arithmetic and day-grouping logic shared
// by the API handlers, the exporter and the planner.
package turnos

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jesusgarciaalemany/turnos-api-go/pkg/models"
)

const minutosPorDia = 24 * 60

// ParseHora converts a wall-clock "HH:MM" string to minutes since midnight.
func ParseHora(s string) (int, error) {
	partes := strings.Split(s, ":")
	if len(partes) != 2 {
		return 0, fmt.Errorf("hora inválida %q", s)
	}
	h, err := strconv.Atoi(partes[0])
	if err != nil {
		return 0, fmt.Errorf("hora inválida %q", s)
	}
	m, err := strconv.Atoi(partes[1])
	if err != nil {
		return 0, fmt.Errorf("hora inválida %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("hora fuera de rango %q", s)
	}
	return h*60 + m, nil
}

// FormatHora renders minutes since midnight as zero-padded "HH:MM". The value
// is reduced modulo 24h first.
func FormatHora(min int) string {
	min = ((min % minutosPorDia) + minutosPorDia) % minutosPorDia
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// Duracion returns the length of a shift in minutes. An end time numerically
// at or before the start means the shift crosses midnight, so a day is added;
// the result is always in (0, 1440].
func Duracion(horaInicio, horaFin string) (int, error) {
	inicio, err := ParseHora(horaInicio)
	if err != nil {
		return 0, err
	}
	fin, err := ParseHora(horaFin)
	if err != nil {
		return 0, err
	}
	d := fin - inicio
	if d <= 0 {
		d += minutosPorDia
	}
	return d, nil
}

// NextShift computes the prefill for the shift that follows prev: it starts
// where prev ended, keeps the same duration, and moves to the next calendar
// date when prev itself crossed midnight (its end time belongs to the
// following day, and so does everything after it).
//
//	{2024-06-01, 23:00, 00:30} -> {2024-06-02, 00:30, 02:00}
//
// The assignee list is not carried over; the caller starts the next shift
// with nobody assigned.
func NextShift(prev models.Turno) (models.Prefill, error) {
	inicio, err := ParseHora(prev.HoraInicio)
	if err != nil {
		return models.Prefill{}, err
	}
	fin, err := ParseHora(prev.HoraFin)
	if err != nil {
		return models.Prefill{}, err
	}

	duracion := fin - inicio
	cruzaMedianoche := duracion <= 0
	if cruzaMedianoche {
		duracion += minutosPorDia
	}

	fecha := prev.Fecha
	if cruzaMedianoche {
		dia, err := time.Parse("2006-01-02", prev.Fecha)
		if err != nil {
			return models.Prefill{}, fmt.Errorf("fecha inválida %q", prev.Fecha)
		}
		fecha = dia.AddDate(0, 0, 1).Format("2006-01-02")
	}

	return models.Prefill{
		Fecha:      fecha,
		HoraInicio: prev.HoraFin,
		HoraFin:    FormatHora(fin + duracion),
	}, nil
}
