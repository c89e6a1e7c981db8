package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jesusgarciaalemany/turnos-api-go/pkg/auth"
	"github.com/jesusgarciaalemany/turnos-api-go/pkg/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AuthMiddleware verifies the JWT token for admin routes
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Strip "Bearer " if present
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		claims, err := auth.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}

// Login handles admin login
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user database.MasterUser
	if err := h.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.CreateToken(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

// CreateEvent registers a new commission event.
func (h *Handler) CreateEvent(c *gin.Context) {
	var req struct {
		Nombre   string    `json:"nombre"`
		StartsAt time.Time `json:"starts_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Nombre == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nombre is required"})
		return
	}
	if req.StartsAt.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "starts_at is required"})
		return
	}

	evento := database.Event{Nombre: req.Nombre, StartsAt: req.StartsAt}
	if err := h.DB.Create(&evento).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create event"})
		return
	}
	c.JSON(http.StatusCreated, evento)
}

// ListEvents returns every event, past included, newest first.
func (h *Handler) ListEvents(c *gin.Context) {
	var eventos []database.Event
	h.DB.Order("starts_at desc").Find(&eventos)
	c.JSON(http.StatusOK, gin.H{"events": eventos})
}

// RecordSave bumps today's save-audit row using an efficient upsert, one row
// per calendar date. Auditing is best-effort and needs a database; the
// file-backed deployment can run without one.
func (h *Handler) RecordSave(turnoCount int) {
	if h.DB == nil {
		return
	}
	today := time.Now().Format("2006-01-02")

	// Use OnConflict for a single-query upsert (supported by both Postgres and SQLite)
	err := h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"save_count":  gorm.Expr("save_count + ?", 1),
			"turno_count": gorm.Expr("turno_count + ?", turnoCount),
		}),
	}).Create(&database.SaveAudit{
		Date:       today,
		SaveCount:  1,
		TurnoCount: turnoCount,
	}).Error
	if err != nil {
		log.Printf("error al registrar auditoría de guardado: %v", err)
	}
}

// GetStats returns the recent save history plus totals.
func (h *Handler) GetStats(c *gin.Context) {
	var historial []database.SaveAudit
	if err := h.DB.Order("date desc").Limit(30).Find(&historial).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch save history"})
		return
	}

	var totalSaves, totalTurnos int64
	for _, fila := range historial {
		totalSaves += int64(fila.SaveCount)
		totalTurnos += int64(fila.TurnoCount)
	}

	c.JSON(http.StatusOK, gin.H{
		"history": historial,
		"totals": gin.H{
			"saves":  totalSaves,
			"turnos": totalTurnos,
		},
	})
}
