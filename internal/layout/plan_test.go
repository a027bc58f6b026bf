package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func newTestPlan(t *testing.T) *EventPlan {
	t.Helper()
	plan := NewEventPlan("mini-1")
	plan.AddZone("z-main", "#ff0000")
	plan.AddZone("z-side", "#00ff00")
	return plan
}

func standIDs(stands []Stand) []string {
	ids := make([]string, len(stands))
	for i, s := range stands {
		ids[i] = s.ID
	}
	return ids
}

func TestNewEventPlan_Defaults(t *testing.T) {
	plan := NewEventPlan("mini-1")

	if plan.GridSize != (GridSize{Width: 15, Height: 10}) {
		t.Fatalf("expected 15x10 grid, got %+v", plan.GridSize)
	}
	if len(plan.Zones) != 0 || len(plan.Stands) != 0 || len(plan.Extras) != 0 {
		t.Fatalf("expected empty collections, got %+v", plan)
	}

	data, err := json.Marshal(plan)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"eventId":"mini-1","gridSize":{"width":15,"height":10},"zones":[],"stands":[],"prices":{},"equipment":{},"extras":[]}`
	if string(data) != want {
		t.Fatalf("unexpected document:\n got %s\nwant %s", data, want)
	}
}

func TestAddZone_Defaults(t *testing.T) {
	plan := NewEventPlan("mini-1")
	zone := plan.AddZone("z-1", "#123456")

	if zone.Name != DefaultZoneName || zone.Category != ZoneCategoryLocalBrands {
		t.Fatalf("unexpected defaults: %+v", zone)
	}
	for size, want := range map[SpotSize]int{SpotSizeS: 5, SpotSizeM: 5, SpotSizeL: 2} {
		if got := zone.Budget(size); got != want {
			t.Fatalf("expected %s budget %d, got %d", size, want, got)
		}
	}

	plan.Zones[0].Capacities[SpotSizeS] = 99
	if DefaultZoneCapacities[SpotSizeS] != 5 {
		t.Fatalf("zone capacities must not alias the defaults")
	}
}

func TestUpdateZone(t *testing.T) {
	plan := newTestPlan(t)
	name := "Main Hall"
	category := ZoneCategoryDesigners

	if !plan.UpdateZone("z-main", ZoneUpdate{Name: &name, Category: &category, Capacities: map[SpotSize]int{SpotSizeL: 4}}) {
		t.Fatalf("expected update to apply")
	}
	zone, _ := plan.Zone("z-main")
	if zone.Name != "Main Hall" || zone.Category != ZoneCategoryDesigners {
		t.Fatalf("unexpected zone after update: %+v", zone)
	}
	if zone.Budget(SpotSizeL) != 4 || zone.Budget(SpotSizeS) != 5 {
		t.Fatalf("expected capacities merged per size, got %+v", zone.Capacities)
	}
	if zone.Color != "#ff0000" {
		t.Fatalf("expected color untouched, got %q", zone.Color)
	}

	if plan.UpdateZone("missing", ZoneUpdate{Name: &name}) {
		t.Fatalf("expected unknown zone update to be a no-op")
	}
}

func TestPlaceStand_UniqueCells(t *testing.T) {
	plan := newTestPlan(t)

	if _, ok := plan.PlaceStand("s-1", 2, 3, SpotSizeM, "z-main"); !ok {
		t.Fatalf("expected first placement to succeed")
	}
	before := standIDs(plan.Stands)

	if _, ok := plan.PlaceStand("s-2", 2, 3, SpotSizeL, "z-side"); ok {
		t.Fatalf("expected placement on a taken cell to be ignored")
	}
	after := standIDs(plan.Stands)
	if fmt.Sprint(before) != fmt.Sprint(after) {
		t.Fatalf("expected stands unchanged, got %v -> %v", before, after)
	}

	for i := 0; i < 20; i++ {
		plan.PlaceStand(fmt.Sprintf("s-x%d", i), i%4, i%3, SpotSizeS, "z-main")
	}
	seen := map[[2]int]string{}
	for _, s := range plan.Stands {
		cell := [2]int{s.X, s.Y}
		if other, dup := seen[cell]; dup {
			t.Fatalf("stands %s and %s share cell %v", other, s.ID, cell)
		}
		seen[cell] = s.ID
	}
}

func TestPlaceStand_RejectsInvalidTargets(t *testing.T) {
	plan := newTestPlan(t)

	tests := []struct {
		name   string
		x, y   int
		size   SpotSize
		zoneID string
	}{
		{name: "negative x", x: -1, y: 0, size: SpotSizeS, zoneID: "z-main"},
		{name: "x past width", x: 15, y: 0, size: SpotSizeS, zoneID: "z-main"},
		{name: "y past height", x: 0, y: 10, size: SpotSizeS, zoneID: "z-main"},
		{name: "unknown zone", x: 0, y: 0, size: SpotSizeS, zoneID: "z-nope"},
		{name: "invalid size", x: 0, y: 0, size: SpotSize("XL"), zoneID: "z-main"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := plan.PlaceStand("s-1", tt.x, tt.y, tt.size, tt.zoneID); ok {
				t.Fatalf("expected placement to be ignored")
			}
			if len(plan.Stands) != 0 {
				t.Fatalf("expected no stands, got %d", len(plan.Stands))
			}
		})
	}
}

func TestEraseStand_Idempotent(t *testing.T) {
	plan := newTestPlan(t)
	plan.PlaceStand("s-1", 1, 1, SpotSizeS, "z-main")
	plan.PlaceStand("s-2", 2, 2, SpotSizeS, "z-main")

	if _, ok := plan.EraseStand(1, 1); !ok {
		t.Fatalf("expected erase to remove the stand")
	}
	once := fmt.Sprint(standIDs(plan.Stands))

	if _, ok := plan.EraseStand(1, 1); ok {
		t.Fatalf("expected second erase to be a no-op")
	}
	if twice := fmt.Sprint(standIDs(plan.Stands)); twice != once {
		t.Fatalf("expected %s after second erase, got %s", once, twice)
	}
}

func TestDeleteZone_Cascades(t *testing.T) {
	plan := newTestPlan(t)
	plan.PlaceStand("s-1", 0, 0, SpotSizeS, "z-main")
	plan.PlaceStand("s-2", 1, 0, SpotSizeM, "z-side")
	plan.PlaceStand("s-3", 2, 0, SpotSizeL, "z-main")

	removed, ok := plan.DeleteZone("z-main")
	if !ok {
		t.Fatalf("expected zone deletion")
	}
	if len(removed) != 2 {
		t.Fatalf("expected 2 stands cascaded, got %d", len(removed))
	}
	for _, s := range plan.Stands {
		if s.ZoneID == "z-main" {
			t.Fatalf("stand %s still references the deleted zone", s.ID)
		}
		if _, ok := plan.Zone(s.ZoneID); !ok {
			t.Fatalf("stand %s references missing zone %s", s.ID, s.ZoneID)
		}
	}

	if _, ok := plan.DeleteZone("z-main"); ok {
		t.Fatalf("expected deleting an unknown zone to be a no-op")
	}
}

func TestOccupantLifecycle(t *testing.T) {
	plan := newTestPlan(t)
	plan.PlaceStand("s-1", 0, 0, SpotSizeS, "z-main")

	if !plan.AssignOccupant("s-1", "app-1") {
		t.Fatalf("expected assignment")
	}
	stand, _ := plan.StandByID("s-1")
	if stand.Occupant() != "app-1" {
		t.Fatalf("expected occupant app-1, got %q", stand.Occupant())
	}
	if _, ok := plan.OccupiedBy("app-1"); !ok {
		t.Fatalf("expected app-1 to occupy a stand")
	}

	if !plan.ClearOccupant("s-1") {
		t.Fatalf("expected clear to apply")
	}
	stand, _ = plan.StandByID("s-1")
	if stand.IsOccupied() {
		t.Fatalf("expected no occupant after clear")
	}

	if plan.AssignOccupant("s-missing", "app-1") {
		t.Fatalf("expected assignment to unknown stand to be a no-op")
	}
}

func TestResizeGrid_Clamps(t *testing.T) {
	plan := NewEventPlan("mini-1")
	plan.ResizeGrid(0, -3)

	if plan.GridSize != (GridSize{Width: 1, Height: 1}) {
		t.Fatalf("expected 1x1 grid, got %+v", plan.GridSize)
	}
}

func TestResizeGrid_KeepsStrandedStands(t *testing.T) {
	plan := newTestPlan(t)
	plan.PlaceStand("s-1", 0, 0, SpotSizeS, "z-main")
	plan.PlaceStand("s-2", 10, 8, SpotSizeS, "z-main")

	stranded := plan.ResizeGrid(5, 5)
	if len(stranded) != 1 || stranded[0].ID != "s-2" {
		t.Fatalf("expected s-2 stranded, got %v", standIDs(stranded))
	}
	if len(plan.Stands) != 2 {
		t.Fatalf("expected resize to keep all stands, got %d", len(plan.Stands))
	}

	if stranded := plan.ResizeGrid(15, 10); len(stranded) != 0 {
		t.Fatalf("expected growing back to bring s-2 in bounds, got %v", standIDs(stranded))
	}
}

func TestClone_IsDeep(t *testing.T) {
	plan := newTestPlan(t)
	plan.PlaceStand("s-1", 0, 0, SpotSizeS, "z-main")
	plan.AssignOccupant("s-1", "app-1")
	plan.Equipment[SpotSizeS] = []string{"1x Table"}

	clone := plan.Clone()
	*clone.Stands[0].OccupantID = "app-2"
	clone.Zones[0].Capacities[SpotSizeS] = 42
	clone.Equipment[SpotSizeS][0] = "changed"

	if plan.Stands[0].Occupant() != "app-1" {
		t.Fatalf("clone shares occupant pointer")
	}
	if plan.Zones[0].Budget(SpotSizeS) != 5 {
		t.Fatalf("clone shares capacities map")
	}
	if plan.Equipment[SpotSizeS][0] != "1x Table" {
		t.Fatalf("clone shares equipment slice")
	}
}

func TestApplySpotDefaults_KeepsExisting(t *testing.T) {
	plan := NewEventPlan("mini-1")
	plan.Prices[SpotSizeM] = "5.000 Kč"

	plan.ApplySpotDefaults()

	if plan.Prices[SpotSizeM] != "5.000 Kč" {
		t.Fatalf("expected custom M price kept, got %q", plan.Prices[SpotSizeM])
	}
	if plan.Prices[SpotSizeS] != SpotCatalog[SpotSizeS].Price {
		t.Fatalf("expected default S price, got %q", plan.Prices[SpotSizeS])
	}
	if len(plan.Equipment[SpotSizeL]) != len(SpotCatalog[SpotSizeL].Equipment) {
		t.Fatalf("expected default L equipment, got %v", plan.Equipment[SpotSizeL])
	}
}

func TestEventPlan_JSONRoundTripShape(t *testing.T) {
	doc := `{"eventId":"e1","gridSize":{"width":4,"height":3},
		"zones":[{"id":"z1","name":"Hall","color":"#fff","category":"Tattoo","capacities":{"S":2}}],
		"stands":[{"id":"s1","x":1,"y":2,"size":"S","zoneId":"z1","occupantId":"app-9"}],
		"prices":{"S":"100"},"equipment":{"S":["chair"]},"extras":[{"id":"x1","label":"Power","price":"300"}]}`

	var plan EventPlan
	if err := json.Unmarshal([]byte(doc), &plan); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if plan.Zones[0].Category != ZoneCategoryTattoo || plan.Zones[0].Budget(SpotSizeM) != 0 {
		t.Fatalf("unexpected zone: %+v", plan.Zones[0])
	}
	if plan.Stands[0].Occupant() != "app-9" || plan.Stands[0].ZoneID != "z1" {
		t.Fatalf("unexpected stand: %+v", plan.Stands[0])
	}
	if plan.Extras[0].Label != "Power" || plan.Equipment[SpotSizeS][0] != "chair" {
		t.Fatalf("unexpected metadata: %+v %+v", plan.Extras, plan.Equipment)
	}
}

func TestValidateEventID(t *testing.T) {
	for _, id := range []string{"mini-1", "SUMMER_2025", "a"} {
		if err := ValidateEventID(id); err != nil {
			t.Fatalf("expected %q valid, got %v", id, err)
		}
	}
	for _, id := range []string{"", "has space", "semi;colon", strings.Repeat("x", 65)} {
		if err := ValidateEventID(id); !errors.Is(err, ErrInvalidEventID) {
			t.Fatalf("expected %q rejected, got %v", id, err)
		}
	}
}
