package store

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jesusgarciaalemany/turnos-api-go/pkg/models"
)

const defaultGitHubFilePath = "app/data/turnos.json"

// GitHubStore keeps the records in a JSON file inside a GitHub repository,
// written through the contents API: read the current file, append, and PUT
// the new content back with the sha of the version that was read. A write
// that raced another one fails on the stale sha and is reported to the
// caller, whose pending batch stays intact for a retry.
type GitHubStore struct {
	Repo     string // "owner/name"
	Token    string
	FilePath string
	BaseURL  string
	Client   *http.Client
}

// NewGitHubStore builds a store for the given repo and token. An empty
// filePath falls back to the path the app has always committed to.
func NewGitHubStore(repo, token, filePath string) *GitHubStore {
	if filePath == "" {
		filePath = defaultGitHubFilePath
	}
	return &GitHubStore{
		Repo:     repo,
		Token:    token,
		FilePath: filePath,
		BaseURL:  "https://api.github.com",
		Client:   http.DefaultClient,
	}
}

type contenidoGitHub struct {
	Content string `json:"content"`
	SHA     string `json:"sha"`
}

func (s *GitHubStore) url() string {
	return fmt.Sprintf("%s/repos/%s/contents/%s", s.BaseURL, s.Repo, s.FilePath)
}

func (s *GitHubStore) leer(ctx context.Context) ([]models.Registro, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url(), nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.Token)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("obtener el archivo de GitHub: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("obtener el archivo de GitHub: %s", resp.Status)
	}

	var archivo contenidoGitHub
	if err := json.NewDecoder(resp.Body).Decode(&archivo); err != nil {
		return nil, "", err
	}

	contenido, err := base64.StdEncoding.DecodeString(archivo.Content)
	if err != nil {
		// The contents API wraps base64 across lines.
		contenido, err = base64.StdEncoding.DecodeString(sinSaltos(archivo.Content))
		if err != nil {
			return nil, "", fmt.Errorf("decodificar contenido: %w", err)
		}
	}

	var registros []models.Registro
	if len(bytes.TrimSpace(contenido)) > 0 {
		if err := json.Unmarshal(contenido, &registros); err != nil {
			return nil, "", fmt.Errorf("parsear %s: %w", s.FilePath, err)
		}
	}
	return registros, archivo.SHA, nil
}

func sinSaltos(s string) string {
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\n' && s[i] != '\r' {
			b = append(b, s[i])
		}
	}
	return string(b)
}

// Listar fetches and decodes the current file.
func (s *GitHubStore) Listar(ctx context.Context) ([]models.Registro, error) {
	registros, _, err := s.leer(ctx)
	return registros, err
}

// Anexar appends the batch and commits the merged file.
func (s *GitHubStore) Anexar(ctx context.Context, nuevos []models.Turno) (int, error) {
	registros, sha, err := s.leer(ctx)
	if err != nil {
		return 0, err
	}
	for _, t := range nuevos {
		registros = append(registros, models.TurnoRegistro(t))
	}

	contenido, err := json.MarshalIndent(registros, "", "  ")
	if err != nil {
		return 0, err
	}

	cuerpo, err := json.Marshal(map[string]string{
		"message": fmt.Sprintf("Actualización automática de turnos (%s)", time.Now().UTC().Format(time.RFC3339)),
		"content": base64.StdEncoding.EncodeToString(contenido),
		"sha":     sha,
	})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.url(), bytes.NewReader(cuerpo))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+s.Token)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("guardar en GitHub: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return 0, fmt.Errorf("guardar en GitHub: %s", resp.Status)
	}
	return len(nuevos), nil
}
