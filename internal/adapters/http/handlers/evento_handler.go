package handlers

import (
	"errors"

	"smartlining-api/internal/core/services"
	"smartlining-api/internal/pkg/pagination"
	"smartlining-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EventoHandler handles calendar event endpoints
type EventoHandler struct {
	eventoService *services.EventoService
}

// NewEventoHandler creates a new event handler
func NewEventoHandler(eventoService *services.EventoService) *EventoHandler {
	return &EventoHandler{eventoService: eventoService}
}

// List returns events
// @Summary List eventos
// @Tags Eventos
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} pagination.Response
// @Router /eventos [get]
func (h *EventoHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	eventos, total, err := h.eventoService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch eventos")
	}

	return c.JSON(pagination.NewResponse(eventos, params, total))
}

// Get returns an event with its queues
// @Summary Get evento
// @Tags Eventos
// @Produce json
// @Param id path int true "Evento ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /eventos/{id} [get]
func (h *EventoHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid evento ID")
	}

	evento, err := h.eventoService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrEventoNotFound) {
			return response.NotFound(c, "Evento not found")
		}
		return response.InternalServerError(c, "Failed to fetch evento")
	}

	return response.Success(c, "Evento retrieved successfully", evento)
}

// Create registers an event
// @Summary Create evento
// @Tags Eventos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateEventoInput true "Event data"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /eventos [post]
func (h *EventoHandler) Create(c *fiber.Ctx) error {
	var input services.CreateEventoInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	evento, err := h.eventoService.Create(c.Context(), &input)
	if err != nil {
		return h.mapError(c, err, "Failed to create evento")
	}

	return response.Created(c, "Evento created successfully", evento)
}

// Update patches an event
// @Summary Update evento
// @Tags Eventos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Evento ID"
// @Param body body services.UpdateEventoInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /eventos/{id} [patch]
func (h *EventoHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid evento ID")
	}

	var input services.UpdateEventoInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	evento, err := h.eventoService.Update(c.Context(), uint(id), &input)
	if err != nil {
		return h.mapError(c, err, "Failed to update evento")
	}

	return response.Success(c, "Evento updated successfully", evento)
}

// Delete removes an event
// @Summary Delete evento
// @Tags Eventos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Evento ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /eventos/{id} [delete]
func (h *EventoHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid evento ID")
	}

	if err := h.eventoService.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrEventoNotFound) {
			return response.NotFound(c, "Evento not found")
		}
		return response.InternalServerError(c, "Failed to delete evento")
	}

	return response.Success(c, "Evento deleted successfully", nil)
}

func (h *EventoHandler) mapError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrEventoNotFound):
		return response.NotFound(c, "Evento not found")
	case errors.Is(err, services.ErrColaNotFound):
		return response.NotFound(c, "Cola not found")
	case errors.Is(err, services.ErrEventoNombreEmpty):
		return response.BadRequest(c, "nombre is required")
	case errors.Is(err, services.ErrInvalidTipoEvento):
		return response.BadRequest(c, "tipo must be PROMOCION, FESTIVO or EVENTO")
	case errors.Is(err, services.ErrInvalidFechas):
		return response.BadRequest(c, "fecha_inicio and fecha_fin must be YYYY-MM-DD with inicio <= fin")
	case errors.Is(err, services.ErrEventoNombreTaken):
		return response.Conflict(c, "Evento nombre already exists")
	default:
		return response.InternalServerError(c, fallback)
	}
}
