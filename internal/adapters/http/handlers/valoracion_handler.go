package handlers

import (
	"errors"

	"smartlining-api/internal/core/services"
	"smartlining-api/internal/pkg/pagination"
	"smartlining-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ValoracionHandler handles rating endpoints
type ValoracionHandler struct {
	valoracionService *services.ValoracionService
}

// NewValoracionHandler creates a new rating handler
func NewValoracionHandler(valoracionService *services.ValoracionService) *ValoracionHandler {
	return &ValoracionHandler{valoracionService: valoracionService}
}

// List returns ratings
// @Summary List valoraciones
// @Tags Valoraciones
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} pagination.Response
// @Router /valoraciones [get]
func (h *ValoracionHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	valoraciones, total, err := h.valoracionService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch valoraciones")
	}

	return c.JSON(pagination.NewResponse(valoraciones, params, total))
}

// Get returns a rating
// @Summary Get valoracion
// @Tags Valoraciones
// @Produce json
// @Param id path int true "Valoracion ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /valoraciones/{id} [get]
func (h *ValoracionHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid valoracion ID")
	}

	valoracion, err := h.valoracionService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrValoracionNotFound) {
			return response.NotFound(c, "Valoracion not found")
		}
		return response.InternalServerError(c, "Failed to fetch valoracion")
	}

	return response.Success(c, "Valoracion retrieved successfully", valoracion)
}

// GetByTurno returns the rating attached to a ticket
// @Summary Get valoracion by turno
// @Tags Valoraciones
// @Produce json
// @Param turnoId path int true "Turno ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /valoraciones/turno/{turnoId} [get]
func (h *ValoracionHandler) GetByTurno(c *fiber.Ctx) error {
	turnoID, err := c.ParamsInt("turnoId")
	if err != nil || turnoID <= 0 {
		return response.BadRequest(c, "Invalid turno ID")
	}

	valoracion, err := h.valoracionService.GetByTurnoID(c.Context(), uint(turnoID))
	if err != nil {
		if errors.Is(err, services.ErrValoracionNotFound) {
			return response.NotFound(c, "Valoracion not found")
		}
		return response.InternalServerError(c, "Failed to fetch valoracion")
	}

	return response.Success(c, "Valoracion retrieved successfully", valoracion)
}

// Create records a customer rating
// @Summary Create valoracion
// @Description Record a 1-5 satisfaction score for a ticket, one per ticket
// @Tags Valoraciones
// @Accept json
// @Produce json
// @Param body body services.CreateValoracionInput true "Rating data"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /valoraciones [post]
func (h *ValoracionHandler) Create(c *fiber.Ctx) error {
	var input services.CreateValoracionInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.TurnoID == 0 {
		return response.BadRequest(c, "id_turno is required")
	}

	valoracion, err := h.valoracionService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPuntuacion):
			return response.BadRequest(c, "puntuacion must be between 1 and 5")
		case errors.Is(err, services.ErrTurnoNotFound):
			return response.NotFound(c, "Turno not found")
		case errors.Is(err, services.ErrDuplicateValoracion):
			return response.Conflict(c, "Turno already has a valoracion")
		default:
			return response.InternalServerError(c, "Failed to create valoracion")
		}
	}

	return response.Created(c, "Valoracion created successfully", valoracion)
}

// Update patches a rating
// @Summary Update valoracion
// @Tags Valoraciones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Valoracion ID"
// @Param body body services.UpdateValoracionInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /valoraciones/{id} [patch]
func (h *ValoracionHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid valoracion ID")
	}

	var input services.UpdateValoracionInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	valoracion, err := h.valoracionService.Update(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValoracionNotFound):
			return response.NotFound(c, "Valoracion not found")
		case errors.Is(err, services.ErrInvalidPuntuacion):
			return response.BadRequest(c, "puntuacion must be between 1 and 5")
		default:
			return response.InternalServerError(c, "Failed to update valoracion")
		}
	}

	return response.Success(c, "Valoracion updated successfully", valoracion)
}

// Delete removes a rating
// @Summary Delete valoracion
// @Tags Valoraciones
// @Produce json
// @Security BearerAuth
// @Param id path int true "Valoracion ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /valoraciones/{id} [delete]
func (h *ValoracionHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid valoracion ID")
	}

	if err := h.valoracionService.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrValoracionNotFound) {
			return response.NotFound(c, "Valoracion not found")
		}
		return response.InternalServerError(c, "Failed to delete valoracion")
	}

	return response.Success(c, "Valoracion deleted successfully", nil)
}
