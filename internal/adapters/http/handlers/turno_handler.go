package handlers

import (
	"errors"

	"smartlining-api/internal/adapters/persistence/repositories"
	"smartlining-api/internal/core/services"
	"smartlining-api/internal/pkg/pagination"
	"smartlining-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TurnoHandler handles ticket lifecycle endpoints
type TurnoHandler struct {
	turnoService *services.TurnoService
}

// NewTurnoHandler creates a new ticket handler
func NewTurnoHandler(turnoService *services.TurnoService) *TurnoHandler {
	return &TurnoHandler{turnoService: turnoService}
}

// List returns tickets filtered by estado and/or cola
// @Summary List turnos
// @Tags Turnos
// @Produce json
// @Param estado query string false "Filter by estado"
// @Param colaId query int false "Filter by cola"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} pagination.Response
// @Router /turnos [get]
func (h *TurnoHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	filter := repositories.TurnoFilter{
		Estado: c.Query("estado"),
		ColaID: uint(c.QueryInt("colaId")),
	}

	turnos, total, err := h.turnoService.List(c.Context(), filter, params.Offset, params.Limit)
	if err != nil {
		if errors.Is(err, services.ErrInvalidEstado) {
			return response.BadRequest(c, "Invalid estado filter")
		}
		return response.InternalServerError(c, "Failed to fetch turnos")
	}

	return c.JSON(pagination.NewResponse(turnos, params, total))
}

// ListByCliente returns one customer's tickets
// @Summary List turnos for a cliente
// @Tags Turnos
// @Produce json
// @Param clienteId path int true "Cliente ID"
// @Success 200 {object} pagination.Response
// @Router /turnos/cliente/{clienteId} [get]
func (h *TurnoHandler) ListByCliente(c *fiber.Ctx) error {
	clienteID, err := c.ParamsInt("clienteId")
	if err != nil || clienteID <= 0 {
		return response.BadRequest(c, "Invalid cliente ID")
	}

	params := pagination.GetParams(c)
	filter := repositories.TurnoFilter{ClienteID: uint(clienteID)}

	turnos, total, err := h.turnoService.List(c.Context(), filter, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch turnos")
	}

	return c.JSON(pagination.NewResponse(turnos, params, total))
}

// Get returns one ticket with its attention and rating
// @Summary Get turno
// @Tags Turnos
// @Produce json
// @Param id path int true "Turno ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /turnos/{id} [get]
func (h *TurnoHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid turno ID")
	}

	turno, err := h.turnoService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrTurnoNotFound) {
			return response.NotFound(c, "Turno not found")
		}
		return response.InternalServerError(c, "Failed to fetch turno")
	}

	return response.Success(c, "Turno retrieved successfully", turno)
}

// Create issues the next ticket number for a queue
// @Summary Create turno
// @Description Issue a new ticket with the next sequential number for the queue
// @Tags Turnos
// @Accept json
// @Produce json
// @Param body body services.CreateTurnoInput true "Queue and customer"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /turnos [post]
func (h *TurnoHandler) Create(c *fiber.Ctx) error {
	var input services.CreateTurnoInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.ColaID == 0 {
		return response.BadRequest(c, "id_cola is required")
	}
	if input.ClienteID == 0 {
		return response.BadRequest(c, "id_cliente is required")
	}

	turno, err := h.turnoService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrColaNotFound):
			return response.NotFound(c, "Cola not found")
		case errors.Is(err, services.ErrClienteNotFound):
			return response.NotFound(c, "Cliente not found")
		default:
			return response.InternalServerError(c, "Failed to create turno")
		}
	}

	return response.Created(c, "Turno created successfully", turno)
}

// Update transitions a ticket's estado
// @Summary Update turno
// @Description Transition a ticket through its lifecycle
// @Tags Turnos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Turno ID"
// @Param body body services.UpdateTurnoInput true "New estado and optional timestamps"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /turnos/{id} [patch]
func (h *TurnoHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid turno ID")
	}

	var input services.UpdateTurnoInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	turno, err := h.turnoService.Update(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTurnoNotFound):
			return response.NotFound(c, "Turno not found")
		case errors.Is(err, services.ErrInvalidEstado):
			return response.BadRequest(c, "Invalid estado")
		case errors.Is(err, services.ErrInvalidTransition):
			return response.BadRequest(c, "Invalid estado transition")
		default:
			return response.InternalServerError(c, "Failed to update turno")
		}
	}

	return response.Success(c, "Turno updated successfully", turno)
}

// Delete removes a ticket
// @Summary Delete turno
// @Tags Turnos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Turno ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /turnos/{id} [delete]
func (h *TurnoHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid turno ID")
	}

	if err := h.turnoService.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrTurnoNotFound) {
			return response.NotFound(c, "Turno not found")
		}
		return response.InternalServerError(c, "Failed to delete turno")
	}

	return response.Success(c, "Turno deleted successfully", nil)
}
