package applications

import (
	"github.com/gin-gonic/gin"
)

func SetupApplicationRoutes(rg *gin.RouterGroup, controller *Controller) {
	events := rg.Group("/events/:eventId/applications")
	{
		events.GET("", controller.ListApplications)    // GET /api/v1/events/:eventId/applications
		events.POST("", controller.CreateApplication) // POST /api/v1/events/:eventId/applications
	}

	rg.PATCH("/applications/:id/status", controller.UpdateStatus) // PATCH /api/v1/applications/:id/status
}
