package editor

import (
	"github.com/gin-gonic/gin"
)

func SetupEditorRoutes(rg *gin.RouterGroup, controller *Controller) {
	layout := rg.Group("/events/:eventId/layout")
	{
		layout.GET("", controller.GetLayout)                 // GET /api/v1/events/:eventId/layout
		layout.POST("/save", controller.SavePlan)            // POST /api/v1/events/:eventId/layout/save
		layout.DELETE("/session", controller.DiscardSession) // DELETE /api/v1/events/:eventId/layout/session
		layout.GET("/capacity", controller.GetCapacity)
		layout.GET("/exhibitors", controller.GetExhibitors) // ?q=search

		layout.PUT("/tool", controller.SelectTool)
		layout.POST("/cells/click", controller.ClickCell)
		layout.PUT("/grid", controller.ResizeGrid)
		layout.PUT("/pricing", controller.SetPricing)

		layout.POST("/zones", controller.AddZone)
		layout.PUT("/zones/active", controller.SelectZone)
		layout.PATCH("/zones/:zoneId", controller.UpdateZone)
		layout.DELETE("/zones/:zoneId", controller.DeleteZone)

		layout.DELETE("/stands/:standId", controller.DeleteStand)
		layout.PUT("/stands/:standId/occupant", controller.AssignOccupant)
		layout.DELETE("/stands/:standId/occupant", controller.ClearOccupant)

		layout.POST("/picker", controller.OpenPicker)
		layout.DELETE("/picker", controller.ClosePicker)
	}
}
