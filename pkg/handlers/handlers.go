package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jesusgarciaalemany/turnos-api-go/pkg/database"
	"github.com/jesusgarciaalemany/turnos-api-go/pkg/export"
	"github.com/jesusgarciaalemany/turnos-api-go/pkg/models"
	"github.com/jesusgarciaalemany/turnos-api-go/pkg/planner"
	"github.com/jesusgarciaalemany/turnos-api-go/pkg/store"
	"github.com/jesusgarciaalemany/turnos-api-go/pkg/turnos"
	"gorm.io/gorm"
)

// Personas available for shifts, in the order the picker shows them. "TODOS"
// is the sentinel meaning the shift applies to everyone.
var personas = []string{
	"Ana", "Luca", "Abril", "Adrià", "Carla", "Javi", "Juanjo", "Leti",
	"Martina", "Natalia", "Nuria", "Petit", "Tito", "Jama", "Pablo", "Jesús",
	"TODOS",
}

// Handler contains dependencies for the route handlers
type Handler struct {
	DB    *gorm.DB
	Store store.Store
}

// GetPersonas returns the person list for the picker.
func (h *Handler) GetPersonas(c *gin.Context) {
	c.JSON(http.StatusOK, personas)
}

// GetTurnos returns the schedule as normalized days, optionally filtered by
// ?persona=. Days left without matching shifts are dropped.
func (h *Handler) GetTurnos(c *gin.Context) {
	registros, err := h.Store.Listar(c.Request.Context())
	if err != nil {
		log.Printf("error al cargar turnos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron cargar los turnos"})
		return
	}

	st := planner.Cargar(registros, time.Now())
	st.FiltrarPersona(c.Query("persona"))

	dias := st.DiasVisibles()
	if dias == nil {
		dias = []models.Dia{}
	}
	c.JSON(http.StatusOK, dias)
}

// GetTurnosHoy returns the day the picker should open on: the one nearest to
// today, or the one asked for with ?fecha=. Honors the same ?persona= filter
// as GetTurnos, falling back to the first visible day when the filter hides
// the selection.
func (h *Handler) GetTurnosHoy(c *gin.Context) {
	registros, err := h.Store.Listar(c.Request.Context())
	if err != nil {
		log.Printf("error al cargar turnos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron cargar los turnos"})
		return
	}

	st := planner.Cargar(registros, time.Now())
	if fecha := c.Query("fecha"); fecha != "" {
		st.SeleccionarDia(fecha)
	}
	st.FiltrarPersona(c.Query("persona"))

	dia := st.DiaSeleccionado()
	if dia == nil {
		c.JSON(http.StatusOK, gin.H{"fecha": "", "turnos": []models.Turno{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"fecha":    dia.Fecha,
		"etiqueta": turnos.FormatFecha(dia.Fecha),
		"turnos":   dia.Turnos,
	})
}

// GuardarTurnos appends a batch of new shifts to the configured backend.
// The whole batch is validated first; nothing is persisted on a validation
// failure, and a storage failure leaves the caller's pending buffer intact.
func (h *Handler) GuardarTurnos(c *gin.Context) {
	var req models.GuardarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.NewTurnos) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No hay turnos que guardar"})
		return
	}
	for i, t := range req.NewTurnos {
		if err := ValidarTurno(t); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("turno %d: %v", i+1, err)})
			return
		}
	}

	n, err := h.Store.Anexar(c.Request.Context(), req.NewTurnos)
	if err != nil {
		log.Printf("error al guardar turnos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.RecordSave(n)

	c.JSON(http.StatusOK, gin.H{
		"message":      "Turnos guardados correctamente",
		"updatedCount": n,
	})
}

// CrearTurno persists a single shift as a database row.
func (h *Handler) CrearTurno(c *gin.Context) {
	var t models.Turno
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := ValidarTurno(t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fila, err := store.TurnoToRow(t)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.DB.Create(&fila).Error; err != nil {
		log.Printf("error al crear turno: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo guardar el turno"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         fila.ID,
		"fecha":      fila.Fecha,
		"horaInicio": fila.HoraInicio,
		"horaFin":    fila.HoraFin,
		"actividad":  fila.Actividad,
		"personas":   t.Personas,
	})
}

// SiguienteTurno computes the prefill for the shift after the submitted one:
// same duration, starting where the previous ended, date rolled past
// midnight when needed.
func (h *Handler) SiguienteTurno(c *gin.Context) {
	var t models.Turno
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prefill, err := turnos.NextShift(t)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prefill)
}

// ExportTurnos streams the schedule as an xlsx workbook, one sheet per month.
func (h *Handler) ExportTurnos(c *gin.Context) {
	registros, err := h.Store.Listar(c.Request.Context())
	if err != nil {
		log.Printf("error al cargar turnos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron cargar los turnos"})
		return
	}

	f, err := export.Workbook(turnos.Normalizar(registros), time.Now())
	if err != nil {
		log.Printf("error al exportar turnos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo generar la hoja de cálculo"})
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo generar la hoja de cálculo"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="turnos.xlsx"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// GetEvents returns the commission's upcoming events, soonest first.
func (h *Handler) GetEvents(c *gin.Context) {
	var eventos []database.Event
	err := h.DB.
		Where("starts_at >= ?", time.Now()).
		Order("starts_at asc").
		Find(&eventos).Error
	if err != nil {
		log.Printf("error al obtener eventos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener eventos"})
		return
	}
	if eventos == nil {
		eventos = []database.Event{}
	}
	c.JSON(http.StatusOK, eventos)
}
