// Package export renders the schedule as an xlsx workbook, one sheet per
// calendar month.
package export

import (
	"fmt"
	"time"

	"github.com/jesusgarciaalemany/turnos-api-go/pkg/models"
	"github.com/jesusgarciaalemany/turnos-api-go/pkg/turnos"
	"github.com/xuri/excelize/v2"
)

var cabecera = []string{"Fecha", "Hora inicio", "Hora fin", "Actividad", "Personas"}

// Workbook builds the spreadsheet for the given days. Sheets are named after
// the Spanish month, capitalized; when the schedule repeats a month across
// years the later sheet carries the year to keep names unique. Days whose
// date cannot be parsed land on a "Sin fecha" sheet instead of being dropped.
func Workbook(dias []models.Dia, ahora time.Time) (*excelize.File, error) {
	f := excelize.NewFile()

	hojas := make(map[string]int)           // sheet name -> next free row
	nombrePorMes := make(map[string]string) // "2024-06" -> sheet name
	usados := make(map[string]bool)

	hojaPara := func(fecha string) (string, error) {
		parsed, err := turnos.ParseFecha(fecha, ahora)
		if err != nil {
			return "Sin fecha", nil
		}
		clave := parsed.Format("2006-01")
		if nombre, ok := nombrePorMes[clave]; ok {
			return nombre, nil
		}
		nombre := turnos.NombreMes(parsed.Month())
		if usados[nombre] {
			nombre = fmt.Sprintf("%s %d", nombre, parsed.Year())
		}
		nombrePorMes[clave] = nombre
		usados[nombre] = true
		return nombre, nil
	}

	escribir := func(hoja string, fila []any) error {
		if _, ok := hojas[hoja]; !ok {
			if _, err := f.NewSheet(hoja); err != nil {
				return err
			}
			for col, titulo := range cabecera {
				celda, err := excelize.CoordinatesToCellName(col+1, 1)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(hoja, celda, titulo); err != nil {
					return err
				}
			}
			hojas[hoja] = 2
		}
		filaN := hojas[hoja]
		for col, valor := range fila {
			celda, err := excelize.CoordinatesToCellName(col+1, filaN)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(hoja, celda, valor); err != nil {
				return err
			}
		}
		hojas[hoja] = filaN + 1
		return nil
	}

	for _, dia := range dias {
		hoja, err := hojaPara(dia.Fecha)
		if err != nil {
			return nil, err
		}
		for _, t := range dia.Turnos {
			fila := []any{dia.Fecha, t.HoraInicio, t.HoraFin, t.Actividad, t.Personas.Etiqueta()}
			if err := escribir(hoja, fila); err != nil {
				return nil, err
			}
		}
	}

	// Drop the workbook's default sheet once real ones exist.
	if len(hojas) > 0 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, err
		}
		f.SetActiveSheet(0)
	}
	return f, nil
}
