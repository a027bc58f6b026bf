package editor

import (
	"errors"
	"net/http"
	"strings"

	"standplanner/internal/layout"
	"standplanner/internal/plans"
	"standplanner/internal/shared/utils/response"
	"standplanner/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	manager *Manager
}

func NewController(manager *Manager) *Controller {
	return &Controller{manager: manager}
}

func (c *Controller) GetLayout(ctx *gin.Context) {
	view, err := c.manager.View(ctx.Request.Context(), ctx.Param("eventId"))
	if err != nil {
		respondError(ctx, "Failed to load layout", err)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Layout retrieved successfully", view, nil)
}

func (c *Controller) GetCapacity(ctx *gin.Context) {
	var report []layout.ZoneCapacity
	err := c.manager.Read(ctx.Request.Context(), ctx.Param("eventId"), func(ed *layout.Editor, _ bool) {
		report = layout.CapacityReport(ed.Plan())
	})
	if err != nil {
		respondError(ctx, "Failed to load capacity", err)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Capacity retrieved successfully", report, nil)
}

func (c *Controller) GetExhibitors(ctx *gin.Context) {
	var query ExhibitorSearchQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	view, err := c.manager.Exhibitors(ctx.Request.Context(), ctx.Param("eventId"), query.Query)
	if err != nil {
		respondError(ctx, "Failed to load exhibitors", err)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Exhibitors retrieved successfully", view, nil)
}

func (c *Controller) SavePlan(ctx *gin.Context) {
	result, err := c.manager.Save(ctx.Request.Context(), ctx.Param("eventId"))
	if err != nil {
		respondError(ctx, "Failed to save plan", err)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Plan saved successfully", result, nil)
}

func (c *Controller) DiscardSession(ctx *gin.Context) {
	if err := c.manager.Discard(ctx.Param("eventId")); err != nil {
		respondError(ctx, "Failed to discard session", err)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Unsaved changes discarded", nil, nil)
}

//  TOOLS & GRID

func (c *Controller) SelectTool(ctx *gin.Context) {
	var req SelectToolRequest
	if !bindJSON(ctx, &req) {
		return
	}
	tool, _ := layout.ParseTool(req.Tool)

	state, applied, err := c.manager.Interact(ctx.Request.Context(), ctx.Param("eventId"), "select-tool",
		func(ed *layout.Editor) bool { return ed.SelectTool(tool) })
	c.respondMutation(ctx, state, applied, nil, err)
}

func (c *Controller) ClickCell(ctx *gin.Context) {
	var req ClickCellRequest
	if !bindJSON(ctx, &req) {
		return
	}

	var result layout.ClickResult
	state, applied, err := c.manager.Mutate(ctx.Request.Context(), ctx.Param("eventId"), "click-cell",
		func(ed *layout.Editor) bool {
			result = ed.ClickCell(*req.X, *req.Y)
			// Selection clicks change editor state only.
			return result.Action == layout.ClickPlaced || result.Action == layout.ClickErased
		})
	if err == nil {
		applied = result.Applied()
	}
	c.respondMutation(ctx, state, applied, result, err)
}

func (c *Controller) ResizeGrid(ctx *gin.Context) {
	var req ResizeGridRequest
	if !bindJSON(ctx, &req) {
		return
	}

	var stranded []layout.Stand
	state, applied, err := c.manager.Mutate(ctx.Request.Context(), ctx.Param("eventId"), "resize-grid",
		func(ed *layout.Editor) bool {
			before := ed.Plan().GridSize
			stranded = ed.ResizeGrid(*req.Width, *req.Height)
			return ed.Plan().GridSize != before
		})
	c.respondMutation(ctx, state, applied, gin.H{"stranded": nonNil(stranded)}, err)
}

//  ZONES

func (c *Controller) AddZone(ctx *gin.Context) {
	var zone layout.Zone
	state, applied, err := c.manager.Mutate(ctx.Request.Context(), ctx.Param("eventId"), "add-zone",
		func(ed *layout.Editor) bool {
			zone = ed.AddZone()
			return true
		})
	if err != nil {
		respondError(ctx, "Failed to add zone", err)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusCreated, "Zone added successfully",
		MutationResponse{Applied: applied, State: state, Result: zone}, nil)
}

func (c *Controller) UpdateZone(ctx *gin.Context) {
	var req UpdateZoneRequest
	if !bindJSON(ctx, &req) {
		return
	}
	upd, err := req.toZoneUpdate()
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	zoneID := ctx.Param("zoneId")
	state, applied, err := c.manager.Mutate(ctx.Request.Context(), ctx.Param("eventId"), "update-zone",
		func(ed *layout.Editor) bool { return ed.UpdateZone(zoneID, upd) })
	c.respondMutation(ctx, state, applied, nil, err)
}

func (c *Controller) DeleteZone(ctx *gin.Context) {
	zoneID := ctx.Param("zoneId")

	var removed []layout.Stand
	state, applied, err := c.manager.Mutate(ctx.Request.Context(), ctx.Param("eventId"), "delete-zone",
		func(ed *layout.Editor) bool {
			var ok bool
			removed, ok = ed.DeleteZone(zoneID)
			return ok
		})
	c.respondMutation(ctx, state, applied, gin.H{"removedStands": nonNil(removed)}, err)
}

func (c *Controller) SelectZone(ctx *gin.Context) {
	var req SelectZoneRequest
	if !bindJSON(ctx, &req) {
		return
	}

	state, applied, err := c.manager.Interact(ctx.Request.Context(), ctx.Param("eventId"), "select-zone",
		func(ed *layout.Editor) bool { return ed.SelectZone(req.ZoneID) })
	c.respondMutation(ctx, state, applied, nil, err)
}

//  STANDS

func (c *Controller) DeleteStand(ctx *gin.Context) {
	standID := ctx.Param("standId")
	state, applied, err := c.manager.Mutate(ctx.Request.Context(), ctx.Param("eventId"), "delete-stand",
		func(ed *layout.Editor) bool { return ed.DeleteStand(standID) })
	c.respondMutation(ctx, state, applied, nil, err)
}

func (c *Controller) AssignOccupant(ctx *gin.Context) {
	var req AssignOccupantRequest
	if !bindJSON(ctx, &req) {
		return
	}

	state, applied, err := c.manager.AssignOccupant(ctx.Request.Context(), ctx.Param("eventId"),
		ctx.Param("standId"), req.ExhibitorID)
	c.respondMutation(ctx, state, applied, nil, err)
}

func (c *Controller) ClearOccupant(ctx *gin.Context) {
	standID := ctx.Param("standId")
	state, applied, err := c.manager.Mutate(ctx.Request.Context(), ctx.Param("eventId"), "clear-occupant",
		func(ed *layout.Editor) bool { return ed.ClearOccupant(standID) })
	c.respondMutation(ctx, state, applied, nil, err)
}

func (c *Controller) OpenPicker(ctx *gin.Context) {
	state, applied, err := c.manager.Interact(ctx.Request.Context(), ctx.Param("eventId"), "open-picker",
		func(ed *layout.Editor) bool { return ed.OpenPicker() })
	c.respondMutation(ctx, state, applied, nil, err)
}

func (c *Controller) ClosePicker(ctx *gin.Context) {
	state, applied, err := c.manager.Interact(ctx.Request.Context(), ctx.Param("eventId"), "close-picker",
		func(ed *layout.Editor) bool {
			wasOpen := ed.State().PickerOpen
			ed.ClosePicker()
			return wasOpen
		})
	c.respondMutation(ctx, state, applied, nil, err)
}

//  METADATA

func (c *Controller) SetPricing(ctx *gin.Context) {
	var req PricingRequest
	if !bindJSON(ctx, &req) {
		return
	}
	prices, equipment, extras := req.toPricing()

	state, applied, err := c.manager.Mutate(ctx.Request.Context(), ctx.Param("eventId"), "set-pricing",
		func(ed *layout.Editor) bool {
			ed.SetPricing(prices, equipment, extras)
			return true
		})
	c.respondMutation(ctx, state, applied, nil, err)
}

func (c *Controller) respondMutation(ctx *gin.Context, state layout.EditorState, applied bool, result interface{}, err error) {
	if err != nil {
		respondError(ctx, "Failed to update layout", err)
		return
	}
	message := "Layout updated successfully"
	if !applied {
		message = "No change applied"
	}
	response.RespondJSON(ctx, "success", http.StatusOK, message,
		MutationResponse{Applied: applied, State: state, Result: result}, nil)
}

func bindJSON(ctx *gin.Context, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return false
	}
	return true
}

func respondError(ctx *gin.Context, message string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.GetDefault().LogHTTPError(ctx, err, status)
	}
	response.RespondJSON(ctx, "error", status, message, nil, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, layout.ErrInvalidEventID):
		return http.StatusBadRequest
	case errors.Is(err, ErrNoSession):
		return http.StatusNotFound
	case errors.Is(err, plans.ErrInvalidPlan):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrExhibitorsUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func nonNil(stands []layout.Stand) []layout.Stand {
	if stands == nil {
		return []layout.Stand{}
	}
	return stands
}

var errBlankZoneName = errors.New("zone name must not be blank")

func (r UpdateZoneRequest) toZoneUpdate() (layout.ZoneUpdate, error) {
	upd := layout.ZoneUpdate{Name: r.Name, Color: r.Color}
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		if trimmed == "" {
			return upd, errBlankZoneName
		}
		upd.Name = &trimmed
	}
	if r.Category != nil {
		category, err := layout.ParseZoneCategory(*r.Category)
		if err != nil {
			return upd, err
		}
		upd.Category = &category
	}
	if r.Capacities != nil {
		upd.Capacities = make(map[layout.SpotSize]int, len(r.Capacities))
		for key, n := range r.Capacities {
			size, err := layout.ParseSpotSize(key)
			if err != nil {
				return upd, err
			}
			upd.Capacities[size] = n
		}
	}
	return upd, nil
}

func (r PricingRequest) toPricing() (map[layout.SpotSize]string, map[layout.SpotSize][]string, []layout.ExtraItem) {
	prices := make(map[layout.SpotSize]string, len(r.Prices))
	for key, price := range r.Prices {
		if size, err := layout.ParseSpotSize(key); err == nil {
			prices[size] = price
		}
	}
	equipment := make(map[layout.SpotSize][]string, len(r.Equipment))
	for key, items := range r.Equipment {
		if size, err := layout.ParseSpotSize(key); err == nil {
			equipment[size] = items
		}
	}
	extras := make([]layout.ExtraItem, 0, len(r.Extras))
	for _, x := range r.Extras {
		extras = append(extras, layout.ExtraItem{ID: x.ID, Label: x.Label, Price: x.Price})
	}
	return prices, equipment, extras
}
