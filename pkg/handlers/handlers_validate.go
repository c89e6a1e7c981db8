package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jesusgarciaalemany/turnos-api-go/pkg/models"
	"github.com/jesusgarciaalemany/turnos-api-go/pkg/turnos"
)

// ValidarTurno checks the fields a shift must carry before it is persisted:
// an ISO date, a well-formed start time, and at least one assignee. An end
// time may be empty (open-ended shift) but must parse when present. New
// shifts come from a date picker, so only the ISO form is accepted here;
// legacy slash-form dates already in storage are untouched.
func ValidarTurno(t models.Turno) error {
	if t.Fecha == "" {
		return errors.New("falta la fecha")
	}
	if _, err := time.Parse("2006-01-02", t.Fecha); err != nil {
		return fmt.Errorf("fecha inválida %q", t.Fecha)
	}
	if t.HoraInicio == "" {
		return errors.New("falta la hora de inicio")
	}
	if _, err := turnos.ParseHora(t.HoraInicio); err != nil {
		return err
	}
	if t.HoraFin != "" {
		if _, err := turnos.ParseHora(t.HoraFin); err != nil {
			return err
		}
	}
	if t.Actividad == "" {
		return errors.New("falta la actividad")
	}
	if t.Personas.Vacia() {
		return errors.New("hay que seleccionar al menos una persona")
	}
	return nil
}

// ValidateTurnos handles the JSON-based validation request: the same checks
// GuardarTurnos runs, without persisting anything.
func (h *Handler) ValidateTurnos(c *gin.Context) {
	var req models.GuardarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if len(req.NewTurnos) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "At least one turno is required",
		})
		return
	}

	for i, t := range req.NewTurnos {
		if err := ValidarTurno(t); err != nil {
			c.JSON(http.StatusOK, gin.H{
				"valid": false,
				"error": fmt.Sprintf("turno %d: %v", i+1, err),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"turno_count": len(req.NewTurnos),
		},
	})
}
