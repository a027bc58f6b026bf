package layout

import "testing"

func TestCapacity_CountsPlacedAndUsed(t *testing.T) {
	plan := NewEventPlan("mini-1")
	plan.AddZone("z-1", "#000000")
	plan.AddZone("z-2", "#ffffff")

	for i := 0; i < 3; i++ {
		plan.PlaceStand("s-s"+string(rune('a'+i)), i, 0, SpotSizeS, "z-1")
	}
	plan.PlaceStand("s-m", 0, 1, SpotSizeM, "z-1")
	plan.PlaceStand("s-other", 0, 2, SpotSizeS, "z-2")
	plan.AssignOccupant("s-sa", "app-1")

	got := Capacity(plan, "z-1", SpotSizeS)
	want := CapacityInfo{Total: 5, PlacedStands: 3, Used: 1}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if got.Percent() != 60 {
		t.Fatalf("expected 60%%, got %v", got.Percent())
	}
	if got.Free() != 2 {
		t.Fatalf("expected 2 free, got %d", got.Free())
	}
}

func TestCapacity_UnknownZone(t *testing.T) {
	plan := NewEventPlan("mini-1")
	if got := Capacity(plan, "nope", SpotSizeL); got != (CapacityInfo{}) {
		t.Fatalf("expected zero info, got %+v", got)
	}
}

func TestCapacity_OverBudgetIsReportedNotPrevented(t *testing.T) {
	plan := NewEventPlan("mini-1")
	plan.AddZone("z-1", "#000000")

	for x := 0; x < 3; x++ {
		if _, ok := plan.PlaceStand("s-"+string(rune('a'+x)), x, 0, SpotSizeL, "z-1"); !ok {
			t.Fatalf("expected placement %d past budget to succeed", x)
		}
	}

	info := Capacity(plan, "z-1", SpotSizeL)
	if !info.OverCapacity() {
		t.Fatalf("expected over capacity with %d/%d", info.PlacedStands, info.Total)
	}
	if info.Percent() != 150 || info.Free() != 0 {
		t.Fatalf("unexpected percent %v / free %d", info.Percent(), info.Free())
	}
}

func TestCapacityInfo_ZeroBudget(t *testing.T) {
	info := CapacityInfo{Total: 0, PlacedStands: 2}
	if info.Percent() != 0 {
		t.Fatalf("expected 0%% for zero budget, got %v", info.Percent())
	}
	if !info.OverCapacity() {
		t.Fatalf("expected stands on a zero budget to be over capacity")
	}
}

func TestCapacityReport(t *testing.T) {
	plan := NewEventPlan("mini-1")
	plan.AddZone("z-1", "#000000")
	plan.AddZone("z-2", "#ffffff")
	plan.PlaceStand("s-1", 0, 0, SpotSizeM, "z-2")

	report := CapacityReport(plan)
	if len(report) != 2 || report[0].ZoneID != "z-1" || report[1].ZoneID != "z-2" {
		t.Fatalf("expected zones in plan order, got %+v", report)
	}
	sizes := report[1].Sizes
	if len(sizes) != 3 || sizes[0].Size != SpotSizeS || sizes[1].Size != SpotSizeM || sizes[2].Size != SpotSizeL {
		t.Fatalf("expected S, M, L rows, got %+v", sizes)
	}
	if sizes[1].PlacedStands != 1 || sizes[1].Utilization != 20 || sizes[1].Overbooked {
		t.Fatalf("unexpected M row: %+v", sizes[1])
	}
}
