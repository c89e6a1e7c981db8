package export

import (
	"testing"
	"time"

	"github.com/jesusgarciaalemany/turnos-api-go/pkg/models"
)

func TestWorkbook_HojaPorMes(t *testing.T) {
	ahora := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	dias := []models.Dia{
		{Fecha: "2024-06-01", Turnos: []models.Turno{
			{HoraInicio: "18:00", HoraFin: "20:00", Actividad: "Barra",
				Personas: models.Personas{Lista: []string{"Ana", "Luca"}}},
		}},
		{Fecha: "2024-06-02", Turnos: []models.Turno{
			{HoraInicio: "20:00", HoraFin: "22:00", Actividad: "Puerta",
				Personas: models.Personas{Roles: map[string][]string{"barra": {"Ana"}, "puerta": {"Javi"}}}},
		}},
		{Fecha: "2024-07-06", Turnos: []models.Turno{
			{HoraInicio: "19:00", HoraFin: "21:00", Actividad: "Cierre",
				Personas: models.Personas{Lista: []string{"Nuria"}}},
		}},
	}

	f, err := Workbook(dias, ahora)
	if err != nil {
		t.Fatalf("Workbook failed: %v", err)
	}
	defer f.Close()

	hojas := f.GetSheetList()
	if len(hojas) != 2 {
		t.Fatalf("Expected 2 sheets (Junio, Julio), got %v", hojas)
	}
	if hojas[0] != "Junio" || hojas[1] != "Julio" {
		t.Errorf("Expected sheets Junio, Julio, got %v", hojas)
	}

	filas, err := f.GetRows("Junio")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(filas) != 3 {
		t.Fatalf("Expected header plus 2 shifts on Junio, got %d rows", len(filas))
	}
	if filas[0][0] != "Fecha" || filas[0][4] != "Personas" {
		t.Errorf("Unexpected header row: %v", filas[0])
	}
	if filas[1][0] != "2024-06-01" || filas[1][4] != "Ana, Luca" {
		t.Errorf("Unexpected first shift row: %v", filas[1])
	}
	if filas[2][4] != "barra: Ana | puerta: Javi" {
		t.Errorf("Expected role-keyed summary, got %q", filas[2][4])
	}
}

func TestWorkbook_MesRepetidoEntreAnios(t *testing.T) {
	ahora := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	dias := []models.Dia{
		{Fecha: "2024-12-31", Turnos: []models.Turno{{HoraInicio: "22:00", HoraFin: "02:00", Actividad: "Barra"}}},
		{Fecha: "2025-12-05", Turnos: []models.Turno{{HoraInicio: "18:00", HoraFin: "20:00", Actividad: "Puerta"}}},
	}

	f, err := Workbook(dias, ahora)
	if err != nil {
		t.Fatalf("Workbook failed: %v", err)
	}
	defer f.Close()

	hojas := f.GetSheetList()
	if len(hojas) != 2 {
		t.Fatalf("Expected 2 sheets, got %v", hojas)
	}
	if hojas[0] != "Diciembre" || hojas[1] != "Diciembre 2025" {
		t.Errorf("Expected the repeated month to carry its year, got %v", hojas)
	}
}

func TestWorkbook_SinDias(t *testing.T) {
	f, err := Workbook(nil, time.Now())
	if err != nil {
		t.Fatalf("Workbook failed: %v", err)
	}
	defer f.Close()

	if hojas := f.GetSheetList(); len(hojas) != 1 {
		t.Errorf("Expected only the default sheet for an empty schedule, got %v", hojas)
	}
}
