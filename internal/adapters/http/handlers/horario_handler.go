package handlers

import (
	"errors"

	"smartlining-api/internal/core/services"
	"smartlining-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// HorarioHandler handles queue schedule endpoints
type HorarioHandler struct {
	horarioService *services.HorarioService
}

// NewHorarioHandler creates a new schedule handler
func NewHorarioHandler(horarioService *services.HorarioService) *HorarioHandler {
	return &HorarioHandler{horarioService: horarioService}
}

// ListByCola returns a queue's weekly schedule
// @Summary List horarios for a cola
// @Tags Horarios
// @Produce json
// @Param colaId path int true "Cola ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /horarios-cola/{colaId} [get]
func (h *HorarioHandler) ListByCola(c *fiber.Ctx) error {
	colaID, err := c.ParamsInt("colaId")
	if err != nil || colaID <= 0 {
		return response.BadRequest(c, "Invalid cola ID")
	}

	horarios, err := h.horarioService.ListByCola(c.Context(), uint(colaID))
	if err != nil {
		if errors.Is(err, services.ErrColaNotFound) {
			return response.NotFound(c, "Cola not found")
		}
		return response.InternalServerError(c, "Failed to fetch horarios")
	}

	return response.Success(c, "Horarios retrieved successfully", horarios)
}

// Create adds a weekday window to a queue
// @Summary Create horario
// @Tags Horarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param colaId path int true "Cola ID"
// @Param body body services.CreateHorarioInput true "Schedule data"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /horarios-cola/{colaId} [post]
func (h *HorarioHandler) Create(c *fiber.Ctx) error {
	colaID, err := c.ParamsInt("colaId")
	if err != nil || colaID <= 0 {
		return response.BadRequest(c, "Invalid cola ID")
	}

	var input services.CreateHorarioInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	horario, err := h.horarioService.Create(c.Context(), uint(colaID), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDiaSemana):
			return response.BadRequest(c, "dia_semana must be one of: LUNES, MARTES, MIERCOLES, JUEVES, VIERNES, SABADO, DOMINGO")
		case errors.Is(err, services.ErrInvalidHora):
			return response.BadRequest(c, "hora_inicio and hora_fin must be HH:MM")
		case errors.Is(err, services.ErrColaNotFound):
			return response.NotFound(c, "Cola not found")
		case errors.Is(err, services.ErrDuplicateHorario):
			return response.Conflict(c, "Horario for this day already exists")
		default:
			return response.InternalServerError(c, "Failed to create horario")
		}
	}

	return response.Created(c, "Horario created successfully", horario)
}

// Update patches a window's times
// @Summary Update horario
// @Tags Horarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Horario ID"
// @Param body body services.UpdateHorarioInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /horarios-cola/{id} [patch]
func (h *HorarioHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid horario ID")
	}

	var input services.UpdateHorarioInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.HoraInicio == nil && input.HoraFin == nil {
		return response.BadRequest(c, "At least one field must be updated")
	}

	horario, err := h.horarioService.Update(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHorarioNotFound):
			return response.NotFound(c, "Horario not found")
		case errors.Is(err, services.ErrInvalidHora):
			return response.BadRequest(c, "hora_inicio and hora_fin must be HH:MM")
		default:
			return response.InternalServerError(c, "Failed to update horario")
		}
	}

	return response.Success(c, "Horario updated successfully", horario)
}

// Delete removes a window
// @Summary Delete horario
// @Tags Horarios
// @Produce json
// @Security BearerAuth
// @Param id path int true "Horario ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /horarios-cola/{id} [delete]
func (h *HorarioHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid horario ID")
	}

	if err := h.horarioService.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrHorarioNotFound) {
			return response.NotFound(c, "Horario not found")
		}
		return response.InternalServerError(c, "Failed to delete horario")
	}

	return response.Success(c, "Horario deleted successfully", nil)
}
