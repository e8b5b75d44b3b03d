package handlers

import (
	"errors"

	"smartlining-api/internal/core/services"
	"smartlining-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ClienteHandler handles customer registration endpoints
type ClienteHandler struct {
	clienteService *services.ClienteService
}

// NewClienteHandler creates a new customer handler
func NewClienteHandler(clienteService *services.ClienteService) *ClienteHandler {
	return &ClienteHandler{clienteService: clienteService}
}

// CreateClienteRequest represents a customer creation body
type CreateClienteRequest struct {
	Origen string `json:"origen"`
}

// Create registers an anonymous customer
// @Summary Create cliente
// @Description Register a customer joining via QR
// @Tags Clientes
// @Accept json
// @Produce json
// @Param body body CreateClienteRequest false "Origin"
// @Success 201 {object} response.Response
// @Router /clientes [post]
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var req CreateClienteRequest
	_ = c.BodyParser(&req)

	cliente, err := h.clienteService.Create(c.Context(), req.Origen)
	if err != nil {
		return response.InternalServerError(c, "Failed to create cliente")
	}

	return response.Created(c, "Cliente created successfully", cliente)
}

// Get returns a customer
// @Summary Get cliente
// @Tags Clientes
// @Produce json
// @Param id path int true "Cliente ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /clientes/{id} [get]
func (h *ClienteHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid cliente ID")
	}

	cliente, err := h.clienteService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrClienteNotFound) {
			return response.NotFound(c, "Cliente not found")
		}
		return response.InternalServerError(c, "Failed to fetch cliente")
	}

	return response.Success(c, "Cliente retrieved successfully", cliente)
}
