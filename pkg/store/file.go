package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jesusgarciaalemany/turnos-api-go/pkg/models"
)

// FileStore keeps the records in a local turnos.json.
type FileStore struct {
	Path string
}

func (s *FileStore) leer() ([]models.Registro, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", s.Path, err)
	}

	var registros []models.Registro
	if len(data) > 0 {
		if err := json.Unmarshal(data, &registros); err != nil {
			return nil, fmt.Errorf("parsear %s: %w", s.Path, err)
		}
	}
	return registros, nil
}

// Listar returns the stored records; a missing file is an empty schedule.
func (s *FileStore) Listar(_ context.Context) ([]models.Registro, error) {
	return s.leer()
}

// Anexar appends the batch as flat records and writes the file back whole.
func (s *FileStore) Anexar(_ context.Context, nuevos []models.Turno) (int, error) {
	registros, err := s.leer()
	if err != nil {
		return 0, err
	}
	for _, t := range nuevos {
		registros = append(registros, models.TurnoRegistro(t))
	}

	data, err := json.MarshalIndent(registros, "", "  ")
	if err != nil {
		return 0, err
	}
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, err
		}
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return 0, fmt.Errorf("escribir %s: %w", s.Path, err)
	}
	return len(nuevos), nil
}
