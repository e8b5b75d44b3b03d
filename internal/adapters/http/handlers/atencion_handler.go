package handlers

import (
	"errors"

	"smartlining-api/internal/core/services"
	"smartlining-api/internal/pkg/pagination"
	"smartlining-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AtencionHandler handles attention record endpoints
type AtencionHandler struct {
	atencionService *services.AtencionService
}

// NewAtencionHandler creates a new attention handler
func NewAtencionHandler(atencionService *services.AtencionService) *AtencionHandler {
	return &AtencionHandler{atencionService: atencionService}
}

// List returns attention records
// @Summary List atenciones
// @Tags Atenciones
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} pagination.Response
// @Router /atenciones [get]
func (h *AtencionHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	atenciones, total, err := h.atencionService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch atenciones")
	}

	return c.JSON(pagination.NewResponse(atenciones, params, total))
}

// Get returns an attention record
// @Summary Get atencion
// @Tags Atenciones
// @Produce json
// @Security BearerAuth
// @Param id path int true "Atencion ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /atenciones/{id} [get]
func (h *AtencionHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid atencion ID")
	}

	atencion, err := h.atencionService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrAtencionNotFound) {
			return response.NotFound(c, "Atencion not found")
		}
		return response.InternalServerError(c, "Failed to fetch atencion")
	}

	return response.Success(c, "Atencion retrieved successfully", atencion)
}

// Create records a service outcome and closes the ticket
// @Summary Create atencion
// @Description Record the outcome of serving a ticket; the ticket moves to its terminal estado in the same transaction
// @Tags Atenciones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateAtencionInput true "Attention data"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /atenciones [post]
func (h *AtencionHandler) Create(c *fiber.Ctx) error {
	var input services.CreateAtencionInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.TurnoID == 0 {
		return response.BadRequest(c, "id_turno is required")
	}
	if input.EmpleadoID == 0 {
		return response.BadRequest(c, "id_empleado is required")
	}

	atencion, err := h.atencionService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidResultado):
			return response.BadRequest(c, "resultado must be ATENDIDO or CANCELADO")
		case errors.Is(err, services.ErrTurnoNotFound):
			return response.NotFound(c, "Turno not found")
		case errors.Is(err, services.ErrEmpleadoNotFound):
			return response.NotFound(c, "Empleado not found")
		case errors.Is(err, services.ErrDuplicateAtencion):
			return response.Conflict(c, "Turno already has an atencion")
		default:
			return response.InternalServerError(c, "Failed to create atencion")
		}
	}

	return response.Created(c, "Atencion created successfully", atencion)
}

// Update patches an attention record
// @Summary Update atencion
// @Tags Atenciones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Atencion ID"
// @Param body body services.UpdateAtencionInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /atenciones/{id} [patch]
func (h *AtencionHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid atencion ID")
	}

	var input services.UpdateAtencionInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	atencion, err := h.atencionService.Update(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAtencionNotFound):
			return response.NotFound(c, "Atencion not found")
		case errors.Is(err, services.ErrInvalidResultado):
			return response.BadRequest(c, "resultado must be ATENDIDO or CANCELADO")
		case errors.Is(err, services.ErrInvalidDuracion):
			return response.BadRequest(c, "duracion_atencion must be >= 0")
		default:
			return response.InternalServerError(c, "Failed to update atencion")
		}
	}

	return response.Success(c, "Atencion updated successfully", atencion)
}
