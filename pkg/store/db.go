package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jesusgarciaalemany/turnos-api-go/pkg/database"
	"github.com/jesusgarciaalemany/turnos-api-go/pkg/models"
	"gorm.io/gorm"
)

// DBStore keeps each turno as a database row; the assignee document is
// serialized into the row as JSON.
type DBStore struct {
	DB *gorm.DB
}

// RowToTurno rebuilds the API-level shift from a stored row.
func RowToTurno(row database.TurnoRow) (models.Turno, error) {
	t := models.Turno{
		Fecha:      row.Fecha,
		HoraInicio: row.HoraInicio,
		HoraFin:    row.HoraFin,
		Actividad:  row.Actividad,
	}
	if row.Personas != "" {
		if err := json.Unmarshal([]byte(row.Personas), &t.Personas); err != nil {
			return models.Turno{}, fmt.Errorf("personas de la fila %d: %w", row.ID, err)
		}
	}
	return t, nil
}

// TurnoToRow serializes a shift into its row form.
func TurnoToRow(t models.Turno) (database.TurnoRow, error) {
	personas, err := json.Marshal(t.Personas)
	if err != nil {
		return database.TurnoRow{}, err
	}
	return database.TurnoRow{
		Fecha:      t.Fecha,
		HoraInicio: t.HoraInicio,
		HoraFin:    t.HoraFin,
		Actividad:  t.Actividad,
		Personas:   string(personas),
	}, nil
}

// Listar returns every stored row as a flat record, oldest first.
func (s *DBStore) Listar(ctx context.Context) ([]models.Registro, error) {
	var filas []database.TurnoRow
	if err := s.DB.WithContext(ctx).Order("fecha asc, id asc").Find(&filas).Error; err != nil {
		return nil, err
	}

	registros := make([]models.Registro, 0, len(filas))
	for _, fila := range filas {
		t, err := RowToTurno(fila)
		if err != nil {
			return nil, err
		}
		registros = append(registros, models.TurnoRegistro(t))
	}
	return registros, nil
}

// Anexar inserts the batch in one transaction.
func (s *DBStore) Anexar(ctx context.Context, nuevos []models.Turno) (int, error) {
	filas := make([]database.TurnoRow, 0, len(nuevos))
	for _, t := range nuevos {
		fila, err := TurnoToRow(t)
		if err != nil {
			return 0, err
		}
		filas = append(filas, fila)
	}
	if len(filas) == 0 {
		return 0, nil
	}
	if err := s.DB.WithContext(ctx).Create(&filas).Error; err != nil {
		return 0, err
	}
	return len(filas), nil
}
