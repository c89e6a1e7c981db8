package store

import (
	"context"
	"testing"

	"github.com/jesusgarciaalemany/turnos-api-go/pkg/database"
	"github.com/jesusgarciaalemany/turnos-api-go/pkg/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func dbDePrueba(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("could not open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&database.TurnoRow{}); err != nil {
		t.Fatalf("could not migrate schema: %v", err)
	}
	return db
}

func TestDBStore_AnexarYListar(t *testing.T) {
	s := &DBStore{DB: dbDePrueba(t)}

	n, err := s.Anexar(context.Background(), []models.Turno{
		{Fecha: "2024-06-02", HoraInicio: "20:00", HoraFin: "22:00", Actividad: "Puerta",
			Personas: models.Personas{Roles: map[string][]string{"puerta": {"Javi"}}}},
		{Fecha: "2024-06-01", HoraInicio: "18:00", HoraFin: "20:00", Actividad: "Barra",
			Personas: models.Personas{Lista: []string{"Ana"}}},
	})
	if err != nil {
		t.Fatalf("Anexar failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 written, got %d", n)
	}

	registros, err := s.Listar(context.Background())
	if err != nil {
		t.Fatalf("Listar failed: %v", err)
	}
	if len(registros) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(registros))
	}

	// Rows come back as flat records, oldest date first.
	if registros[0].Turno == nil || registros[0].Turno.Fecha != "2024-06-01" {
		t.Errorf("Expected 2024-06-01 first, got %+v", registros[0])
	}
	if registros[0].Turno.Actividad != "Barra" || len(registros[0].Turno.Personas.Lista) != 1 {
		t.Errorf("Flat assignees lost in the round trip: %+v", registros[0].Turno)
	}
	if registros[1].Turno == nil || registros[1].Turno.Personas.Roles == nil {
		t.Fatalf("Role-keyed assignees lost in the round trip: %+v", registros[1])
	}
	if nombres := registros[1].Turno.Personas.Roles["puerta"]; len(nombres) != 1 || nombres[0] != "Javi" {
		t.Errorf("Expected puerta: Javi, got %v", registros[1].Turno.Personas.Roles)
	}
}

func TestDBStore_AnexarVacio(t *testing.T) {
	s := &DBStore{DB: dbDePrueba(t)}

	n, err := s.Anexar(context.Background(), nil)
	if err != nil {
		t.Fatalf("Anexar failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected nothing written, got %d", n)
	}
}
