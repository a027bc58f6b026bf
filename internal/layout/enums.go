package layout

import (
	"fmt"
	"strings"
)

// SpotSize is the declared booth size of a stand. It drives price and
// equipment, not the grid footprint.
type SpotSize string

const (
	SpotSizeS SpotSize = "S"
	SpotSizeM SpotSize = "M"
	SpotSizeL SpotSize = "L"
)

// AllSpotSizes lists the sizes in display order.
var AllSpotSizes = []SpotSize{SpotSizeS, SpotSizeM, SpotSizeL}

func (s SpotSize) IsValid() bool {
	switch s {
	case SpotSizeS, SpotSizeM, SpotSizeL:
		return true
	}
	return false
}

// ParseSpotSize accepts "S", "M" or "L" in any case.
func ParseSpotSize(v string) (SpotSize, error) {
	size := SpotSize(strings.ToUpper(strings.TrimSpace(v)))
	if !size.IsValid() {
		return "", fmt.Errorf("invalid spot size: %q", v)
	}
	return size, nil
}

// ZoneCategory is the brand category a zone is curated for.
type ZoneCategory string

const (
	ZoneCategorySecondhands ZoneCategory = "Secondhands"
	ZoneCategoryLocalBrands ZoneCategory = "Local Brands"
	ZoneCategoryDesigners   ZoneCategory = "Designers"
	ZoneCategoryBeauty      ZoneCategory = "Beauty"
	ZoneCategoryTattoo      ZoneCategory = "Tattoo"
)

const DefaultZoneCategory = ZoneCategoryLocalBrands

var AllZoneCategories = []ZoneCategory{
	ZoneCategorySecondhands,
	ZoneCategoryLocalBrands,
	ZoneCategoryDesigners,
	ZoneCategoryBeauty,
	ZoneCategoryTattoo,
}

func (c ZoneCategory) IsValid() bool {
	for _, known := range AllZoneCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseZoneCategory matches a category name case-insensitively.
func ParseZoneCategory(v string) (ZoneCategory, error) {
	trimmed := strings.TrimSpace(v)
	for _, known := range AllZoneCategories {
		if strings.EqualFold(string(known), trimmed) {
			return known, nil
		}
	}
	return "", fmt.Errorf("invalid zone category: %q", v)
}

// AppStatus is the lifecycle state of an exhibitor application.
type AppStatus string

const (
	AppStatusPending  AppStatus = "PENDING"
	AppStatusApproved AppStatus = "APPROVED"
	AppStatusRejected AppStatus = "REJECTED"
	AppStatusWaitlist AppStatus = "WAITLIST"
	AppStatusPaid     AppStatus = "PAID"
)

var AllAppStatuses = []AppStatus{
	AppStatusPending,
	AppStatusApproved,
	AppStatusRejected,
	AppStatusWaitlist,
	AppStatusPaid,
}

func (s AppStatus) IsValid() bool {
	for _, known := range AllAppStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsPlaceable reports whether an application may be bound to a stand.
func (s AppStatus) IsPlaceable() bool {
	return s == AppStatusPaid || s == AppStatusApproved
}

func ParseAppStatus(v string) (AppStatus, error) {
	status := AppStatus(strings.ToUpper(strings.TrimSpace(v)))
	if !status.IsValid() {
		return "", fmt.Errorf("invalid application status: %q", v)
	}
	return status, nil
}

// Tool is the active editor tool.
type Tool string

const (
	ToolSelect Tool = "select"
	ToolPlaceS Tool = "place-S"
	ToolPlaceM Tool = "place-M"
	ToolPlaceL Tool = "place-L"
	ToolErase  Tool = "erase"
)

var AllTools = []Tool{ToolSelect, ToolPlaceS, ToolPlaceM, ToolPlaceL, ToolErase}

func (t Tool) IsValid() bool {
	for _, known := range AllTools {
		if t == known {
			return true
		}
	}
	return false
}

// PlaceSize returns the size a placement tool creates. ok is false for
// select and erase.
func (t Tool) PlaceSize() (size SpotSize, ok bool) {
	switch t {
	case ToolPlaceS:
		return SpotSizeS, true
	case ToolPlaceM:
		return SpotSizeM, true
	case ToolPlaceL:
		return SpotSizeL, true
	}
	return "", false
}

// ParseTool accepts the canonical names and a lowercase size suffix
// ("place-m").
func ParseTool(v string) (Tool, error) {
	trimmed := strings.TrimSpace(v)
	if strings.HasPrefix(strings.ToLower(trimmed), "place-") {
		size, err := ParseSpotSize(trimmed[len("place-"):])
		if err != nil {
			return "", fmt.Errorf("invalid tool: %q", v)
		}
		return Tool("place-" + string(size)), nil
	}
	tool := Tool(strings.ToLower(trimmed))
	if !tool.IsValid() {
		return "", fmt.Errorf("invalid tool: %q", v)
	}
	return tool, nil
}
