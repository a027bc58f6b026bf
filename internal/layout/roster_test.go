package layout

import "testing"

func rosterFixture() []Exhibitor {
	return []Exhibitor{
		{ID: "app-1", BrandName: "Vintage Soul", RequestedSize: SpotSizeM, ZoneCategory: ZoneCategorySecondhands, Status: AppStatusPaid},
		{ID: "app-2", BrandName: "Ink Lab", RequestedSize: SpotSizeS, ZoneCategory: ZoneCategoryTattoo, Status: AppStatusApproved},
		{ID: "app-3", BrandName: "Glow Studio", RequestedSize: SpotSizeS, ZoneCategory: ZoneCategoryBeauty, Status: AppStatusPending},
		{ID: "app-4", BrandName: "Late Joiner", RequestedSize: SpotSizeL, ZoneCategory: ZoneCategoryDesigners, Status: AppStatusWaitlist},
		{ID: "app-5", BrandName: "Rejected Ltd", RequestedSize: SpotSizeS, Status: AppStatusRejected},
	}
}

func TestBuildRoster(t *testing.T) {
	plan := NewEventPlan("mini-1")
	plan.AddZone("z-1", "#000000")
	plan.PlaceStand("s-1", 0, 0, SpotSizeS, "z-1")
	plan.PlaceStand("s-2", 1, 0, SpotSizeS, "z-1")
	plan.AssignOccupant("s-1", "app-2")
	// the plan itself does not check application status
	plan.AssignOccupant("s-2", "app-3")

	roster := BuildRoster(plan, rosterFixture())

	if got := ids(roster.Placed); got != "app-2,app-3" {
		t.Fatalf("expected placed app-2,app-3, got %s", got)
	}
	if got := ids(roster.Unplaced); got != "app-1" {
		t.Fatalf("expected unplaced app-1, got %s", got)
	}
}

func TestBuildRoster_EmptyListsAreNotNil(t *testing.T) {
	roster := BuildRoster(NewEventPlan("mini-1"), nil)
	if roster.Placed == nil || roster.Unplaced == nil {
		t.Fatalf("expected non-nil slices, got %+v", roster)
	}
}

func TestAssignable(t *testing.T) {
	plan := NewEventPlan("mini-1")
	plan.AddZone("z-1", "#000000")
	plan.PlaceStand("s-1", 0, 0, SpotSizeS, "z-1")
	plan.AssignOccupant("s-1", "app-2")

	tests := []struct {
		name        string
		exhibitorID string
		want        bool
	}{
		{"paid and unplaced", "app-1", true},
		{"already on a stand", "app-2", false},
		{"pending", "app-3", false},
		{"waitlisted", "app-4", false},
		{"rejected", "app-5", false},
		{"unknown", "nobody", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Assignable(plan, rosterFixture(), tt.exhibitorID); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSearchExhibitors(t *testing.T) {
	all := rosterFixture()

	tests := []struct {
		term string
		want string
	}{
		{term: "", want: "app-1,app-2,app-3,app-4,app-5"},
		{term: "ink", want: "app-2"},
		{term: "  SOUL ", want: "app-1"},
		{term: "beauty", want: "app-3"},
		{term: "de", want: "app-4"},
		{term: "zzz", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			if got := ids(SearchExhibitors(all, tt.term)); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestMatchSize(t *testing.T) {
	ex := Exhibitor{ID: "app-1", RequestedSize: SpotSizeM}

	if m := MatchSize(ex, Stand{Size: SpotSizeM}); m != SizeMatchExact || m.Hint() != "green" {
		t.Fatalf("expected green match, got %s/%s", m, m.Hint())
	}
	if m := MatchSize(ex, Stand{Size: SpotSizeL}); m != SizeMatchMismatch || m.Hint() != "amber" {
		t.Fatalf("expected amber mismatch, got %s/%s", m, m.Hint())
	}
}

func TestOccupant(t *testing.T) {
	occupant := "app-2"
	stand := Stand{ID: "s-1", OccupantID: &occupant}

	ex, ok := Occupant(stand, rosterFixture())
	if !ok || ex.BrandName != "Ink Lab" {
		t.Fatalf("expected Ink Lab, got %+v (ok=%v)", ex, ok)
	}

	ghost := "app-404"
	if _, ok := Occupant(Stand{OccupantID: &ghost}, rosterFixture()); ok {
		t.Fatalf("expected unknown occupant to resolve to nothing")
	}
	if _, ok := Occupant(Stand{}, rosterFixture()); ok {
		t.Fatalf("expected empty stand to have no occupant")
	}
}

func ids(list []Exhibitor) string {
	out := ""
	for i, ex := range list {
		if i > 0 {
			out += ","
		}
		out += ex.ID
	}
	return out
}
