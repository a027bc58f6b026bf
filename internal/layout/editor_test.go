package layout

import (
	"fmt"
	"testing"
)

// sequentialIDs hands out "z-1", "s-1", "s-2", ... per prefix.
func sequentialIDs() IDFunc {
	counters := map[string]int{}
	return func(prefix string) string {
		counters[prefix]++
		return fmt.Sprintf("%s-%d", prefix, counters[prefix])
	}
}

func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	return NewEditor(NewEventPlan("mini-1"),
		WithIDFunc(sequentialIDs()),
		WithColorFunc(func() string { return "#abcdef" }),
	)
}

func TestNewEditor_InitialState(t *testing.T) {
	plan := NewEventPlan("mini-1")
	plan.AddZone("z-a", "#111111")
	plan.AddZone("z-b", "#222222")

	e := NewEditor(plan)
	state := e.State()
	if state.Tool != ToolSelect {
		t.Fatalf("expected select tool, got %s", state.Tool)
	}
	if state.ActiveZoneID != "z-a" {
		t.Fatalf("expected first zone active, got %q", state.ActiveZoneID)
	}
	if state.SelectedStandID != "" || state.PickerOpen {
		t.Fatalf("expected nothing selected, got %+v", state)
	}
}

func TestNewEditor_NormalizesDecodedPlan(t *testing.T) {
	e := NewEditor(&EventPlan{EventID: "mini-1"})
	plan := e.Plan()
	if plan.Zones == nil || plan.Stands == nil || plan.Prices == nil {
		t.Fatalf("expected empty collections, got %+v", plan)
	}
	if plan.GridSize.Width != 1 || plan.GridSize.Height != 1 {
		t.Fatalf("expected zero grid clamped to 1x1, got %+v", plan.GridSize)
	}
}

func TestSelectTool(t *testing.T) {
	e := newTestEditor(t)

	for _, tool := range []Tool{ToolPlaceS, ToolPlaceM, ToolPlaceL, ToolErase, ToolSelect} {
		if !e.SelectTool(tool) || e.State().Tool != tool {
			t.Fatalf("expected tool %s to become active", tool)
		}
	}
	if e.SelectTool(Tool("lasso")) {
		t.Fatalf("expected unknown tool to be rejected")
	}
	if e.State().Tool != ToolSelect {
		t.Fatalf("expected tool unchanged, got %s", e.State().Tool)
	}
}

func TestClickCell_PlaceRequiresActiveZone(t *testing.T) {
	e := newTestEditor(t)
	e.SelectTool(ToolPlaceS)

	result := e.ClickCell(0, 0)
	if result.Applied() {
		t.Fatalf("expected click ignored without active zone, got %s", result.Action)
	}
	if len(e.Plan().Stands) != 0 {
		t.Fatalf("expected no stands")
	}
}

func TestClickCell_ToolMachine(t *testing.T) {
	e := newTestEditor(t)
	zone := e.AddZone()

	tests := []struct {
		name   string
		tool   Tool
		x, y   int
		action ClickAction
		stands int
	}{
		{name: "place S", tool: ToolPlaceS, x: 0, y: 0, action: ClickPlaced, stands: 1},
		{name: "place L on taken cell", tool: ToolPlaceL, x: 0, y: 0, action: ClickIgnored, stands: 1},
		{name: "place L elsewhere", tool: ToolPlaceL, x: 4, y: 4, action: ClickPlaced, stands: 2},
		{name: "place outside grid", tool: ToolPlaceM, x: 15, y: 0, action: ClickIgnored, stands: 2},
		{name: "select stand", tool: ToolSelect, x: 4, y: 4, action: ClickSelected, stands: 2},
		{name: "select empty cell", tool: ToolSelect, x: 7, y: 7, action: ClickDeselected, stands: 2},
		{name: "erase stand", tool: ToolErase, x: 0, y: 0, action: ClickErased, stands: 1},
		{name: "erase empty cell", tool: ToolErase, x: 0, y: 0, action: ClickIgnored, stands: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e.SelectTool(tt.tool)
			result := e.ClickCell(tt.x, tt.y)
			if result.Action != tt.action {
				t.Fatalf("expected %s, got %s", tt.action, result.Action)
			}
			if got := len(e.Plan().Stands); got != tt.stands {
				t.Fatalf("expected %d stands, got %d", tt.stands, got)
			}
		})
	}

	for _, s := range e.Plan().Stands {
		if s.ZoneID != zone.ID {
			t.Fatalf("expected stand in active zone %s, got %s", zone.ID, s.ZoneID)
		}
	}
}

func TestClickCell_PlacedStandUsesToolSize(t *testing.T) {
	e := newTestEditor(t)
	e.AddZone()
	e.SelectTool(ToolPlaceM)

	result := e.ClickCell(2, 3)
	if result.Stand == nil || result.Stand.Size != SpotSizeM {
		t.Fatalf("expected an M stand, got %+v", result.Stand)
	}
	if result.Stand.ID != "s-1" || result.Stand.IsOccupied() {
		t.Fatalf("unexpected stand: %+v", result.Stand)
	}
}

func TestSelection_ClosesPickerOnChange(t *testing.T) {
	e := newTestEditor(t)
	e.AddZone()
	e.SelectTool(ToolPlaceS)
	e.ClickCell(0, 0)
	e.ClickCell(1, 0)

	e.SelectTool(ToolSelect)
	e.ClickCell(0, 0)
	if !e.OpenPicker() {
		t.Fatalf("expected picker to open for selected stand")
	}

	e.ClickCell(0, 0)
	if !e.State().PickerOpen {
		t.Fatalf("expected picker kept open when reselecting the same stand")
	}

	e.ClickCell(1, 0)
	state := e.State()
	if state.PickerOpen || state.SelectedStandID != "s-2" {
		t.Fatalf("expected picker closed and s-2 selected, got %+v", state)
	}
}

func TestOpenPicker_RequiresSelection(t *testing.T) {
	e := newTestEditor(t)
	if e.OpenPicker() {
		t.Fatalf("expected picker to stay closed without a selected stand")
	}
}

func TestEraseSelectedStand_ClearsSelection(t *testing.T) {
	e := newTestEditor(t)
	e.AddZone()
	e.SelectTool(ToolPlaceS)
	e.ClickCell(3, 3)
	e.SelectTool(ToolSelect)
	e.ClickCell(3, 3)
	e.OpenPicker()

	e.SelectTool(ToolErase)
	e.ClickCell(3, 3)

	state := e.State()
	if state.SelectedStandID != "" || state.PickerOpen {
		t.Fatalf("expected selection cleared after erase, got %+v", state)
	}
	if _, ok := e.SelectedStand(); ok {
		t.Fatalf("expected no selected stand")
	}
}

func TestAddZone_BecomesActive(t *testing.T) {
	e := newTestEditor(t)
	first := e.AddZone()
	second := e.AddZone()

	if first.ID != "z-1" || second.ID != "z-2" {
		t.Fatalf("unexpected ids %s, %s", first.ID, second.ID)
	}
	if second.Color != "#abcdef" {
		t.Fatalf("expected color from color func, got %q", second.Color)
	}
	if e.State().ActiveZoneID != "z-2" {
		t.Fatalf("expected newest zone active, got %q", e.State().ActiveZoneID)
	}
}

func TestSelectZone(t *testing.T) {
	e := newTestEditor(t)
	e.AddZone()
	e.AddZone()

	if !e.SelectZone("z-1") || e.State().ActiveZoneID != "z-1" {
		t.Fatalf("expected z-1 active")
	}
	if e.SelectZone("z-404") {
		t.Fatalf("expected unknown zone to be rejected")
	}
	if e.State().ActiveZoneID != "z-1" {
		t.Fatalf("expected active zone unchanged, got %q", e.State().ActiveZoneID)
	}
	if !e.SelectZone("") || e.State().ActiveZoneID != "" {
		t.Fatalf("expected empty id to clear the active zone")
	}
}

func TestDeleteZone_ClearsEditorState(t *testing.T) {
	e := newTestEditor(t)
	e.AddZone()
	e.SelectTool(ToolPlaceS)
	e.ClickCell(0, 0)
	e.SelectTool(ToolSelect)
	e.ClickCell(0, 0)

	removed, ok := e.DeleteZone("z-1")
	if !ok || len(removed) != 1 {
		t.Fatalf("expected one cascaded stand, got %d (ok=%v)", len(removed), ok)
	}
	state := e.State()
	if state.ActiveZoneID != "" || state.SelectedStandID != "" {
		t.Fatalf("expected zone and stand selection cleared, got %+v", state)
	}

	e.SelectTool(ToolPlaceS)
	if e.ClickCell(1, 1).Applied() {
		t.Fatalf("expected placement ignored after active zone was deleted")
	}
}

func TestAssignOccupant_ClosesPickerAndPanel(t *testing.T) {
	e := newTestEditor(t)
	e.AddZone()
	e.SelectTool(ToolPlaceS)
	e.ClickCell(0, 0)
	e.SelectTool(ToolSelect)
	e.ClickCell(0, 0)
	e.OpenPicker()

	if !e.AssignOccupant("s-1", "app-1") {
		t.Fatalf("expected assignment")
	}
	state := e.State()
	if state.PickerOpen || state.SelectedStandID != "" {
		t.Fatalf("expected picker and panel closed, got %+v", state)
	}
	stand, _ := e.Plan().StandByID("s-1")
	if stand.Occupant() != "app-1" {
		t.Fatalf("expected occupant app-1, got %q", stand.Occupant())
	}

	if e.AssignOccupant("s-1", "") {
		t.Fatalf("expected empty exhibitor id to be rejected")
	}
}

func TestSetPricing_AssignsExtraIDs(t *testing.T) {
	e := newTestEditor(t)
	extras := []ExtraItem{{Label: "Power"}, {ID: "x-keep", Label: "Wifi"}}

	e.SetPricing(map[SpotSize]string{SpotSizeS: "100"}, nil, extras)

	got := e.Plan().Extras
	if got[0].ID != "x-1" || got[1].ID != "x-keep" {
		t.Fatalf("unexpected extra ids: %+v", got)
	}
	if extras[0].ID != "" {
		t.Fatalf("expected caller's slice untouched")
	}
	if e.Plan().Prices[SpotSizeS] != "100" {
		t.Fatalf("expected price replaced")
	}
}

func TestSnapshot_Detached(t *testing.T) {
	e := newTestEditor(t)
	e.AddZone()
	snap := e.Snapshot()

	e.SelectTool(ToolPlaceS)
	e.ClickCell(0, 0)

	if len(snap.Stands) != 0 {
		t.Fatalf("expected snapshot unaffected by later edits")
	}
}

func TestMainHallScenario(t *testing.T) {
	e := newTestEditor(t)
	exhibitors := []Exhibitor{
		{ID: "app-1", BrandName: "Vintage Soul", RequestedSize: SpotSizeM, ZoneCategory: ZoneCategorySecondhands, Status: AppStatusPaid},
		{ID: "app-2", BrandName: "Ink Lab", RequestedSize: SpotSizeS, ZoneCategory: ZoneCategoryTattoo, Status: AppStatusApproved},
		{ID: "app-3", BrandName: "Pending Co", RequestedSize: SpotSizeL, Status: AppStatusPending},
	}

	zone := e.AddZone()
	name := "Main Hall"
	e.UpdateZone(zone.ID, ZoneUpdate{Name: &name})

	e.SelectTool(ToolPlaceM)
	placed := e.ClickCell(2, 3)
	if placed.Action != ClickPlaced {
		t.Fatalf("expected stand placed, got %s", placed.Action)
	}

	info := Capacity(e.Plan(), zone.ID, SpotSizeM)
	if info != (CapacityInfo{Total: 5, PlacedStands: 1, Used: 0}) {
		t.Fatalf("unexpected capacity before assignment: %+v", info)
	}

	roster := BuildRoster(e.Plan(), exhibitors)
	if len(roster.Unplaced) != 2 {
		t.Fatalf("expected 2 unplaced exhibitors, got %d", len(roster.Unplaced))
	}

	e.SelectTool(ToolSelect)
	e.ClickCell(2, 3)
	e.OpenPicker()
	if !e.AssignOccupant(placed.Stand.ID, "app-1") {
		t.Fatalf("expected assignment")
	}

	info = Capacity(e.Plan(), zone.ID, SpotSizeM)
	if info.Used != 1 {
		t.Fatalf("expected used 1 after assignment, got %d", info.Used)
	}
	roster = BuildRoster(e.Plan(), exhibitors)
	if len(roster.Placed) != 1 || roster.Placed[0].ID != "app-1" {
		t.Fatalf("expected app-1 placed, got %+v", roster.Placed)
	}
	if len(roster.Unplaced) != 1 || roster.Unplaced[0].ID != "app-2" {
		t.Fatalf("expected only app-2 unplaced, got %+v", roster.Unplaced)
	}

	if _, ok := e.DeleteZone(zone.ID); !ok {
		t.Fatalf("expected zone deleted")
	}
	if len(e.Plan().Stands) != 0 {
		t.Fatalf("expected the zone's stand removed, got %d", len(e.Plan().Stands))
	}
	roster = BuildRoster(e.Plan(), exhibitors)
	if len(roster.Unplaced) != 2 {
		t.Fatalf("expected app-1 back in the unplaced list, got %+v", roster.Unplaced)
	}
}
