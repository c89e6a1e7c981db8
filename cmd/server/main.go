package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jesusgarciaalemany/turnos-api-go/pkg/auth"
	"github.com/jesusgarciaalemany/turnos-api-go/pkg/database"
	"github.com/jesusgarciaalemany/turnos-api-go/pkg/handlers"
	"github.com/jesusgarciaalemany/turnos-api-go/pkg/store"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)
	h := &handlers.Handler{DB: db, Store: store.FromEnv(db)}

	r := gin.Default()

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Gestor de Turnos API",
			"version": "1.2.0",
		})
	})

	r.POST("/admin/login", h.Login)

	// Admin Endpoints
	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/events", h.CreateEvent)
		admin.GET("/events", h.ListEvents)
		admin.GET("/stats", h.GetStats)
	}

	// Turnos Endpoints
	api := r.Group("/api")
	{
		api.GET("/personas", h.GetPersonas)
		api.GET("/turnos", h.GetTurnos)
		api.GET("/turnos/hoy", h.GetTurnosHoy)
		api.GET("/turnos/export", h.ExportTurnos)
		api.POST("/turnos", h.CrearTurno)
		api.POST("/turnos/siguiente", h.SiguienteTurno)
		api.POST("/guardar-turnos", h.GuardarTurnos)
		api.POST("/validate", h.ValidateTurnos)
		api.GET("/events", h.GetEvents)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("could not run server: %v", err)
	}
}
