package handlers

import (
	"errors"

	"smartlining-api/internal/core/services"
	"smartlining-api/internal/pkg/pagination"
	"smartlining-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ColaHandler handles queue registry endpoints
type ColaHandler struct {
	colaService *services.ColaService
}

// NewColaHandler creates a new queue handler
func NewColaHandler(colaService *services.ColaService) *ColaHandler {
	return &ColaHandler{colaService: colaService}
}

// List returns all queues
// @Summary List colas
// @Tags Colas
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} pagination.Response
// @Router /colas [get]
func (h *ColaHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	colas, total, err := h.colaService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch colas")
	}

	return c.JSON(pagination.NewResponse(colas, params, total))
}

// ListActivas returns active queues only
// @Summary List active colas
// @Tags Colas
// @Produce json
// @Success 200 {object} pagination.Response
// @Router /colas/activas [get]
func (h *ColaHandler) ListActivas(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	colas, total, err := h.colaService.ListActivas(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch colas")
	}

	return c.JSON(pagination.NewResponse(colas, params, total))
}

// Get returns a queue with its schedule
// @Summary Get cola
// @Tags Colas
// @Produce json
// @Param id path int true "Cola ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /colas/{id} [get]
func (h *ColaHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid cola ID")
	}

	cola, err := h.colaService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrColaNotFound) {
			return response.NotFound(c, "Cola not found")
		}
		return response.InternalServerError(c, "Failed to fetch cola")
	}

	return response.Success(c, "Cola retrieved successfully", cola)
}

// Create registers a queue
// @Summary Create cola
// @Tags Colas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateColaInput true "Queue data"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /colas [post]
func (h *ColaHandler) Create(c *fiber.Ctx) error {
	var input services.CreateColaInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	cola, err := h.colaService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrColaNombreEmpty):
			return response.BadRequest(c, "nombre is required")
		case errors.Is(err, services.ErrColaNombreTaken):
			return response.Conflict(c, "Cola nombre already exists")
		default:
			return response.InternalServerError(c, "Failed to create cola")
		}
	}

	return response.Created(c, "Cola created successfully", cola)
}

// Update patches queue fields
// @Summary Update cola
// @Tags Colas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cola ID"
// @Param body body services.UpdateColaInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /colas/{id} [patch]
func (h *ColaHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid cola ID")
	}

	var input services.UpdateColaInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	cola, err := h.colaService.Update(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrColaNotFound):
			return response.NotFound(c, "Cola not found")
		case errors.Is(err, services.ErrColaNombreEmpty):
			return response.BadRequest(c, "nombre must not be empty")
		case errors.Is(err, services.ErrColaNombreTaken):
			return response.Conflict(c, "Cola nombre already exists")
		default:
			return response.InternalServerError(c, "Failed to update cola")
		}
	}

	return response.Success(c, "Cola updated successfully", cola)
}

// Delete removes a queue
// @Summary Delete cola
// @Tags Colas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cola ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /colas/{id} [delete]
func (h *ColaHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid cola ID")
	}

	if err := h.colaService.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrColaNotFound) {
			return response.NotFound(c, "Cola not found")
		}
		return response.InternalServerError(c, "Failed to delete cola")
	}

	return response.Success(c, "Cola deleted successfully", nil)
}
