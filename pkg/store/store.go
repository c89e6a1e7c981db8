// Package store abstracts where the turnos live: a local JSON file, a JSON
// file committed to a GitHub repository, or database rows.
package store

import (
	"context"
	"os"

	"github.com/jesusgarciaalemany/turnos-api-go/pkg/models"
	"gorm.io/gorm"
)

// Store reads and appends turno records. Listar returns records in their
// stored shape; callers normalize. Anexar appends a batch and returns how
// many records were written.
type Store interface {
	Listar(ctx context.Context) ([]models.Registro, error)
	Anexar(ctx context.Context, nuevos []models.Turno) (int, error)
}

// FromEnv picks the backend: TURNOS_BACKEND=github|file|db forces one, and
// when unset the GitHub backend is used if its credentials are present, then
// the database if DATABASE_URL is set, falling back to the local file.
func FromEnv(db *gorm.DB) Store {
	backend := os.Getenv("TURNOS_BACKEND")

	if backend == "" {
		switch {
		case os.Getenv("GITHUB_TOKEN") != "" && os.Getenv("GITHUB_REPO") != "":
			backend = "github"
		case os.Getenv("DATABASE_URL") != "":
			backend = "db"
		default:
			backend = "file"
		}
	}

	switch backend {
	case "github":
		return NewGitHubStore(os.Getenv("GITHUB_REPO"), os.Getenv("GITHUB_TOKEN"), os.Getenv("GITHUB_FILE_PATH"))
	case "db":
		return &DBStore{DB: db}
	default:
		path := os.Getenv("TURNOS_PATH")
		if path == "" {
			path = "data/turnos.json"
		}
		return &FileStore{Path: path}
	}
}
