package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jesusgarciaalemany/turnos-api-go/pkg/models"
)

func servidorGitHub(t *testing.T, contenido string, sha string, putStatus int) (*httptest.Server, *map[string]any) {
	t.Helper()
	var ultimoPut map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token-de-prueba" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]string{
				"content": base64.StdEncoding.EncodeToString([]byte(contenido)),
				"sha":     sha,
			})
		case http.MethodPut:
			if err := json.NewDecoder(r.Body).Decode(&ultimoPut); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.WriteHeader(putStatus)
			json.NewEncoder(w).Encode(map[string]any{"content": map[string]string{}})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	return srv, &ultimoPut
}

func storeDePrueba(srv *httptest.Server) *GitHubStore {
	s := NewGitHubStore("comision/turnos", "token-de-prueba", "app/data/turnos.json")
	s.BaseURL = srv.URL
	s.Client = srv.Client()
	return s
}

func TestGitHubStore_Listar(t *testing.T) {
	srv, _ := servidorGitHub(t, `[{"fecha":"2024-06-01","turnos":[]}]`, "abc123", http.StatusOK)
	defer srv.Close()

	registros, err := storeDePrueba(srv).Listar(context.Background())
	if err != nil {
		t.Fatalf("Listar failed: %v", err)
	}
	if len(registros) != 1 || registros[0].Dia == nil || registros[0].Dia.Fecha != "2024-06-01" {
		t.Errorf("Unexpected records: %+v", registros)
	}
}

func TestGitHubStore_AnexarEnviaShaYContenidoFusionado(t *testing.T) {
	srv, ultimoPut := servidorGitHub(t, `[{"fecha":"2024-06-01","turnos":[]}]`, "abc123", http.StatusOK)
	defer srv.Close()

	n, err := storeDePrueba(srv).Anexar(context.Background(), []models.Turno{
		{Fecha: "2024-06-02", HoraInicio: "18:00", HoraFin: "20:00", Actividad: "Barra"},
	})
	if err != nil {
		t.Fatalf("Anexar failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 written, got %d", n)
	}

	put := *ultimoPut
	if put["sha"] != "abc123" {
		t.Errorf("Expected the read sha echoed on the commit, got %v", put["sha"])
	}
	decodificado, err := base64.StdEncoding.DecodeString(put["content"].(string))
	if err != nil {
		t.Fatalf("Committed content is not base64: %v", err)
	}
	var registros []models.Registro
	if err := json.Unmarshal(decodificado, &registros); err != nil {
		t.Fatalf("Committed content is not a record list: %v", err)
	}
	if len(registros) != 2 {
		t.Errorf("Expected merged content with 2 records, got %d", len(registros))
	}
}

func TestGitHubStore_AnexarConflicto(t *testing.T) {
	// A stale sha makes the contents API reject the PUT; the error reaches
	// the caller so the pending batch can be retried.
	srv, _ := servidorGitHub(t, `[]`, "viejo", http.StatusConflict)
	defer srv.Close()

	_, err := storeDePrueba(srv).Anexar(context.Background(), []models.Turno{
		{Fecha: "2024-06-02", HoraInicio: "18:00", HoraFin: "20:00", Actividad: "Barra"},
	})
	if err == nil {
		t.Error("Expected conflict error, got nil")
	}
}

func TestGitHubStore_ListarSinPermiso(t *testing.T) {
	srv, _ := servidorGitHub(t, `[]`, "abc", http.StatusOK)
	defer srv.Close()

	s := storeDePrueba(srv)
	s.Token = "token-malo"
	if _, err := s.Listar(context.Background()); err == nil {
		t.Error("Expected error for rejected credentials, got nil")
	}
}
