package layout

import "testing"

func TestParseTool(t *testing.T) {
	tests := []struct {
		in      string
		want    Tool
		wantErr bool
	}{
		{in: "select", want: ToolSelect},
		{in: "ERASE", want: ToolErase},
		{in: "place-S", want: ToolPlaceS},
		{in: "place-m", want: ToolPlaceM},
		{in: " place-L ", want: ToolPlaceL},
		{in: "place-XL", wantErr: true},
		{in: "lasso", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTool(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %s", got)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("expected %s, got %s (err=%v)", tt.want, got, err)
			}
		})
	}
}

func TestTool_PlaceSize(t *testing.T) {
	if size, ok := ToolPlaceL.PlaceSize(); !ok || size != SpotSizeL {
		t.Fatalf("expected L, got %s (ok=%v)", size, ok)
	}
	if _, ok := ToolErase.PlaceSize(); ok {
		t.Fatalf("expected erase to have no place size")
	}
}

func TestParseZoneCategory(t *testing.T) {
	got, err := ParseZoneCategory("local brands")
	if err != nil || got != ZoneCategoryLocalBrands {
		t.Fatalf("expected Local Brands, got %q (err=%v)", got, err)
	}
	if _, err := ParseZoneCategory("Food"); err == nil {
		t.Fatalf("expected unknown category to fail")
	}
}

func TestAppStatus_IsPlaceable(t *testing.T) {
	for _, status := range AllAppStatuses {
		want := status == AppStatusPaid || status == AppStatusApproved
		if status.IsPlaceable() != want {
			t.Fatalf("expected %s placeable=%v", status, want)
		}
	}
	if s, err := ParseAppStatus("paid"); err != nil || s != AppStatusPaid {
		t.Fatalf("expected PAID, got %q (err=%v)", s, err)
	}
}
