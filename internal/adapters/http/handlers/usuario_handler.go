package handlers

import (
	"errors"

	"smartlining-api/internal/adapters/persistence/models"
	"smartlining-api/internal/core/services"
	"smartlining-api/internal/pkg/pagination"
	"smartlining-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UsuarioHandler handles staff account endpoints
type UsuarioHandler struct {
	usuarioService *services.UsuarioService
}

// NewUsuarioHandler creates a new account handler
func NewUsuarioHandler(usuarioService *services.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{usuarioService: usuarioService}
}

// List returns staff accounts
// @Summary List usuarios
// @Tags Usuarios
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} pagination.Response
// @Router /usuarios [get]
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	usuarios, total, err := h.usuarioService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch usuarios")
	}

	out := make([]*models.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, u.ToResponse())
	}

	return c.JSON(pagination.NewResponse(out, params, total))
}

// Get returns one account
// @Summary Get usuario
// @Tags Usuarios
// @Produce json
// @Security BearerAuth
// @Param id path int true "Usuario ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /usuarios/{id} [get]
func (h *UsuarioHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid usuario ID")
	}

	usuario, err := h.usuarioService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrUsuarioNotFound) {
			return response.NotFound(c, "Usuario not found")
		}
		return response.InternalServerError(c, "Failed to fetch usuario")
	}

	return response.Success(c, "Usuario retrieved successfully", usuario.ToResponse())
}

// Create registers a staff account
// @Summary Create usuario
// @Tags Usuarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateUsuarioInput true "Account data"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /usuarios [post]
func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var input services.CreateUsuarioInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.Nombre == "" || input.Email == "" || input.Password == "" {
		return response.BadRequest(c, "nombre, email and password are required")
	}

	usuario, err := h.usuarioService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return response.Conflict(c, "Email already registered")
		case errors.Is(err, services.ErrInvalidRol):
			return response.BadRequest(c, "rol must be ADMINISTRADOR or EMPLEADO")
		case errors.Is(err, services.ErrPasswordTooWeak):
			return response.BadRequest(c, "Password must be at least 8 characters")
		default:
			return response.InternalServerError(c, "Failed to create usuario")
		}
	}

	return response.Created(c, "Usuario created successfully", usuario.ToResponse())
}

// Update patches an account
// @Summary Update usuario
// @Tags Usuarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Usuario ID"
// @Param body body services.UpdateUsuarioInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /usuarios/{id} [patch]
func (h *UsuarioHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid usuario ID")
	}

	var input services.UpdateUsuarioInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	usuario, err := h.usuarioService.Update(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsuarioNotFound):
			return response.NotFound(c, "Usuario not found")
		case errors.Is(err, services.ErrEmailTaken):
			return response.Conflict(c, "Email already registered")
		case errors.Is(err, services.ErrInvalidRol):
			return response.BadRequest(c, "rol must be ADMINISTRADOR or EMPLEADO")
		case errors.Is(err, services.ErrPasswordTooWeak):
			return response.BadRequest(c, "Password must be at least 8 characters")
		default:
			return response.InternalServerError(c, "Failed to update usuario")
		}
	}

	return response.Success(c, "Usuario updated successfully", usuario.ToResponse())
}

// Delete soft-deletes an account
// @Summary Delete usuario
// @Tags Usuarios
// @Produce json
// @Security BearerAuth
// @Param id path int true "Usuario ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /usuarios/{id} [delete]
func (h *UsuarioHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid usuario ID")
	}

	if err := h.usuarioService.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrUsuarioNotFound) {
			return response.NotFound(c, "Usuario not found")
		}
		return response.InternalServerError(c, "Failed to delete usuario")
	}

	return response.Success(c, "Usuario deleted successfully", nil)
}
