package handlers

import (
	"errors"

	"smartlining-api/internal/core/services"
	"smartlining-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// QueueInfoHandler serves the polling endpoint the waiting-room SPA hits
type QueueInfoHandler struct {
	queueInfoService *services.QueueInfoService
}

// NewQueueInfoHandler creates a new queue-info handler
func NewQueueInfoHandler(queueInfoService *services.QueueInfoService) *QueueInfoHandler {
	return &QueueInfoHandler{queueInfoService: queueInfoService}
}

// Get returns queue stats and, when turnoId is given, the caller's
// position and wait estimate
// @Summary Queue snapshot
// @Description Queue stats plus the caller's position and ETA when turnoId is given
// @Tags QueueInfo
// @Produce json
// @Param colaId path int true "Cola ID"
// @Param turnoId query int false "Caller's turno ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /queue-info/{colaId} [get]
func (h *QueueInfoHandler) Get(c *fiber.Ctx) error {
	colaID, err := c.ParamsInt("colaId")
	if err != nil || colaID <= 0 {
		return response.BadRequest(c, "Invalid cola ID")
	}

	turnoID := c.QueryInt("turnoId")
	if turnoID < 0 {
		turnoID = 0
	}

	info, err := h.queueInfoService.Get(c.Context(), uint(colaID), uint(turnoID))
	if err != nil {
		if errors.Is(err, services.ErrColaNotFound) {
			return response.NotFound(c, "Cola not found")
		}
		return response.InternalServerError(c, "Failed to fetch queue info")
	}

	return response.Success(c, "Queue info retrieved successfully", info)
}
