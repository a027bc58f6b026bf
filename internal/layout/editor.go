package layout

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

// IDFunc returns a fresh identifier with the given prefix ("z", "s").
type IDFunc func(prefix string) string

// ColorFunc returns a display color for a new zone.
type ColorFunc func() string

func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

func RandomColor() string {
	return fmt.Sprintf("#%06x", rand.IntN(0x1000000))
}

type Option func(*Editor)

func WithIDFunc(fn IDFunc) Option {
	return func(e *Editor) { e.newID = fn }
}

func WithColorFunc(fn ColorFunc) Option {
	return func(e *Editor) { e.newColor = fn }
}

// EditorState is the interaction state around the plan.
type EditorState struct {
	Tool            Tool   `json:"tool"`
	ActiveZoneID    string `json:"activeZoneId,omitempty"`
	SelectedStandID string `json:"selectedStandId,omitempty"`
	PickerOpen      bool   `json:"pickerOpen"`
}

// Editor owns one EventPlan together with the tool, zone and stand
// selection of the person editing it. It is not safe for concurrent use;
// callers serialize access.
type Editor struct {
	plan  *EventPlan
	state EditorState

	newID    IDFunc
	newColor ColorFunc
}

// NewEditor takes ownership of plan. The first zone, if any, becomes the
// active zone and the select tool is active.
func NewEditor(plan *EventPlan, opts ...Option) *Editor {
	if plan == nil {
		plan = NewEventPlan("")
	}
	plan.Normalize()
	e := &Editor{
		plan:     plan,
		state:    EditorState{Tool: ToolSelect},
		newID:    NewID,
		newColor: RandomColor,
	}
	if len(plan.Zones) > 0 {
		e.state.ActiveZoneID = plan.Zones[0].ID
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Plan exposes the owned plan for reading. Mutations must go through the
// Editor.
func (e *Editor) Plan() *EventPlan {
	return e.plan
}

// Snapshot returns a deep copy of the plan, safe to hand to other goroutines.
func (e *Editor) Snapshot() *EventPlan {
	return e.plan.Clone()
}

func (e *Editor) State() EditorState {
	return e.state
}

func (e *Editor) SelectedStand() (Stand, bool) {
	if e.state.SelectedStandID == "" {
		return Stand{}, false
	}
	return e.plan.StandByID(e.state.SelectedStandID)
}

//  TOOLS

// SelectTool switches the active tool. Stands are not touched.
func (e *Editor) SelectTool(t Tool) bool {
	if !t.IsValid() {
		return false
	}
	e.state.Tool = t
	return true
}

type ClickAction string

const (
	ClickPlaced     ClickAction = "placed"
	ClickErased     ClickAction = "erased"
	ClickSelected   ClickAction = "selected"
	ClickDeselected ClickAction = "deselected"
	ClickIgnored    ClickAction = "ignored"
)

// ClickResult describes what a cell click did.
type ClickResult struct {
	Tool   Tool        `json:"tool"`
	X      int         `json:"x"`
	Y      int         `json:"y"`
	Action ClickAction `json:"action"`
	Stand  *Stand      `json:"stand,omitempty"`
}

func (r ClickResult) Applied() bool {
	return r.Action != ClickIgnored
}

// ClickCell applies the active tool to (x, y). Clicks that the tool cannot
// act on (placing with no active zone, on a taken cell, erasing an empty
// cell) come back as ClickIgnored.
func (e *Editor) ClickCell(x, y int) ClickResult {
	result := ClickResult{Tool: e.state.Tool, X: x, Y: y, Action: ClickIgnored}

	if size, ok := e.state.Tool.PlaceSize(); ok {
		if e.state.ActiveZoneID == "" {
			return result
		}
		stand, placed := e.plan.PlaceStand(e.newID("s"), x, y, size, e.state.ActiveZoneID)
		if placed {
			result.Action = ClickPlaced
			result.Stand = &stand
		}
		return result
	}

	switch e.state.Tool {
	case ToolErase:
		if erased, ok := e.plan.EraseStand(x, y); ok {
			e.forgetStand(erased.ID)
			result.Action = ClickErased
			result.Stand = &erased
		}
	case ToolSelect:
		if stand, ok := e.plan.StandAt(x, y); ok {
			if e.state.SelectedStandID != stand.ID {
				e.state.PickerOpen = false
			}
			e.state.SelectedStandID = stand.ID
			result.Action = ClickSelected
			result.Stand = &stand
		} else {
			e.state.SelectedStandID = ""
			e.state.PickerOpen = false
			result.Action = ClickDeselected
		}
	}
	return result
}

//  ZONES

// AddZone creates a zone with default settings and makes it active.
func (e *Editor) AddZone() Zone {
	zone := e.plan.AddZone(e.newID("z"), e.newColor())
	e.state.ActiveZoneID = zone.ID
	return zone
}

// SelectZone makes id the active zone. An empty id clears the selection;
// unknown ids are ignored.
func (e *Editor) SelectZone(id string) bool {
	if id == "" {
		e.state.ActiveZoneID = ""
		return true
	}
	if _, ok := e.plan.Zone(id); !ok {
		return false
	}
	e.state.ActiveZoneID = id
	return true
}

func (e *Editor) UpdateZone(id string, upd ZoneUpdate) bool {
	return e.plan.UpdateZone(id, upd)
}

// DeleteZone removes the zone and its stands, dropping any selection that
// pointed at them.
func (e *Editor) DeleteZone(id string) ([]Stand, bool) {
	removed, ok := e.plan.DeleteZone(id)
	if !ok {
		return nil, false
	}
	if e.state.ActiveZoneID == id {
		e.state.ActiveZoneID = ""
	}
	for _, s := range removed {
		e.forgetStand(s.ID)
	}
	return removed, true
}

//  STANDS

func (e *Editor) DeleteStand(id string) bool {
	if !e.plan.DeleteStand(id) {
		return false
	}
	e.forgetStand(id)
	return true
}

// AssignOccupant binds exhibitorID to the stand, then closes the picker and
// the stand panel.
func (e *Editor) AssignOccupant(standID, exhibitorID string) bool {
	if !e.plan.AssignOccupant(standID, exhibitorID) {
		return false
	}
	e.state.PickerOpen = false
	e.state.SelectedStandID = ""
	return true
}

func (e *Editor) ClearOccupant(standID string) bool {
	return e.plan.ClearOccupant(standID)
}

// OpenPicker opens the occupant picker for the selected stand.
func (e *Editor) OpenPicker() bool {
	if _, ok := e.SelectedStand(); !ok {
		return false
	}
	e.state.PickerOpen = true
	return true
}

func (e *Editor) ClosePicker() {
	e.state.PickerOpen = false
}

//  GRID & METADATA

// ResizeGrid clamps and applies the new size, returning stranded stands.
func (e *Editor) ResizeGrid(width, height int) []Stand {
	return e.plan.ResizeGrid(width, height)
}

func (e *Editor) SetPricing(prices map[SpotSize]string, equipment map[SpotSize][]string, extras []ExtraItem) {
	extras = append([]ExtraItem{}, extras...)
	for i := range extras {
		if extras[i].ID == "" {
			extras[i].ID = e.newID("x")
		}
	}
	e.plan.SetPricing(prices, equipment, extras)
}

func (e *Editor) forgetStand(id string) {
	if e.state.SelectedStandID == id {
		e.state.SelectedStandID = ""
		e.state.PickerOpen = false
	}
}
