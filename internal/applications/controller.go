package applications

import (
	"errors"
	"net/http"

	"standplanner/internal/layout"
	"standplanner/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) CreateApplication(ctx *gin.Context) {
	var req CreateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	app, err := c.service.CreateApplication(ctx.Request.Context(), ctx.Param("eventId"), req)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to create application", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Application created successfully", app, nil)
}

func (c *Controller) ListApplications(ctx *gin.Context) {
	var filters ApplicationFilters
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	apps, err := c.service.ListApplications(ctx.Request.Context(), ctx.Param("eventId"), filters)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to get applications", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Applications retrieved successfully", apps, nil)
}

func (c *Controller) UpdateStatus(ctx *gin.Context) {
	var req UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	app, err := c.service.UpdateStatus(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to update application status", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Application status updated successfully", app, nil)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrApplicationNotFound):
		return http.StatusNotFound
	case errors.Is(err, layout.ErrInvalidEventID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
