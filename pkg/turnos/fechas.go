package turnos

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jesusgarciaalemany/turnos-api-go/pkg/models"
)

var meses = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// NombreMes returns the capitalized Spanish month name.
func NombreMes(m time.Month) string {
	nombre := meses[int(m)-1]
	return strings.ToUpper(nombre[:1]) + nombre[1:]
}

// FormatFecha renders an ISO date as "2 de junio del 2024" for display. The
// input is returned unchanged when it is not ISO-shaped.
func FormatFecha(fecha string) string {
	partes := strings.Split(fecha, "-")
	if len(partes) != 3 {
		return fecha
	}
	mes, err := strconv.Atoi(partes[1])
	if err != nil || mes < 1 || mes > 12 {
		return fecha
	}
	dia := strings.TrimPrefix(partes[2], "0")
	return fmt.Sprintf("%s de %s del %s", dia, meses[mes-1], partes[0])
}

// ParseFecha interprets the date strings found in stored records. A string
// containing a slash is day/month[/year]; when the year is omitted it
// defaults to the current one and rolls forward a year if the resulting date
// would already be in the past (schedules entered near New Year's Eve without
// a year). Anything else is parsed as an ISO calendar date.
//
// The forward-roll can mis-read a legitimately past day-only date; that
// matches how the stored data has always been interpreted.
func ParseFecha(s string, ahora time.Time) (time.Time, error) {
	if !strings.Contains(s, "/") {
		return time.ParseInLocation("2006-01-02", s, ahora.Location())
	}

	partes := strings.Split(s, "/")
	if len(partes) != 2 && len(partes) != 3 {
		return time.Time{}, fmt.Errorf("fecha inválida %q", s)
	}
	dia, err := strconv.Atoi(strings.TrimSpace(partes[0]))
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q", s)
	}
	mes, err := strconv.Atoi(strings.TrimSpace(partes[1]))
	if err != nil || mes < 1 || mes > 12 {
		return time.Time{}, fmt.Errorf("fecha inválida %q", s)
	}

	if len(partes) == 3 {
		anio, err := strconv.Atoi(strings.TrimSpace(partes[2]))
		if err != nil {
			return time.Time{}, fmt.Errorf("fecha inválida %q", s)
		}
		return time.Date(anio, time.Month(mes), dia, 0, 0, 0, 0, ahora.Location()), nil
	}

	fecha := time.Date(ahora.Year(), time.Month(mes), dia, 0, 0, 0, 0, ahora.Location())
	// Compare against today's midnight so a year-less date naming today stays
	// in the current year instead of jumping twelve months ahead.
	hoy := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location())
	if fecha.Before(hoy) {
		fecha = fecha.AddDate(1, 0, 0)
	}
	return fecha, nil
}

// DiaMasCercano returns the index of the day whose date is closest to ahora,
// ties resolved in favor of the earlier entry. Days with unparseable dates
// are skipped; -1 means nothing was selectable.
func DiaMasCercano(dias []models.Dia, ahora time.Time) int {
	mejor := -1
	var mejorDist time.Duration
	for i, d := range dias {
		fecha, err := ParseFecha(d.Fecha, ahora)
		if err != nil {
			continue
		}
		dist := fecha.Sub(ahora)
		if dist < 0 {
			dist = -dist
		}
		if mejor == -1 || dist < mejorDist {
			mejor = i
			mejorDist = dist
		}
	}
	return mejor
}
