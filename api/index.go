package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jesusgarciaalemany/turnos-api-go/pkg/auth"
	"github.com/jesusgarciaalemany/turnos-api-go/pkg/database"
	"github.com/jesusgarciaalemany/turnos-api-go/pkg/handlers"
	"github.com/jesusgarciaalemany/turnos-api-go/pkg/store"
	"github.com/joho/godotenv"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	// Initialize DB
	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)
	h := &handlers.Handler{DB: db, Store: store.FromEnv(db)}

	// Initialize Gin
	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Gestor de Turnos API (Vercel)",
			"version": "1.2.0",
		})
	})

	r.POST("/admin/login", h.Login)

	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/events", h.CreateEvent)
		admin.GET("/events", h.ListEvents)
		admin.GET("/stats", h.GetStats)
	}

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
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, r_req *http.Request) {
	r.ServeHTTP(w, r_req)
}
