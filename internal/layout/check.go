package layout

import (
	"fmt"
	"sort"
)

type IssueKind string

const (
	IssueDuplicateCell    IssueKind = "DUPLICATE_CELL"
	IssueOutOfBounds      IssueKind = "OUT_OF_BOUNDS"
	IssueUnknownZone      IssueKind = "UNKNOWN_ZONE"
	IssueDuplicateStandID IssueKind = "DUPLICATE_STAND_ID"
	IssueDuplicateZoneID  IssueKind = "DUPLICATE_ZONE_ID"
	IssueOccupantReused   IssueKind = "OCCUPANT_ON_MULTIPLE_STANDS"
	IssueInvalidStandSize IssueKind = "INVALID_STAND_SIZE"
	IssueInvalidCategory  IssueKind = "INVALID_ZONE_CATEGORY"

	IssueUnknownOccupant     IssueKind = "UNKNOWN_OCCUPANT"
	IssueUnplaceableOccupant IssueKind = "UNPLACEABLE_OCCUPANT"
)

// Issue is one broken invariant found in a plan.
type Issue struct {
	Kind    IssueKind `json:"kind"`
	StandID string    `json:"standId,omitempty"`
	ZoneID  string    `json:"zoneId,omitempty"`
	Message string    `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Kind, i.Message)
}

// Check inspects a plan for states the editor cannot produce by itself but
// that can arrive from storage or from a grid shrink. Issues are ordered by
// kind and then by the position in which they were found.
func Check(p *EventPlan) []Issue {
	var issues []Issue

	zones := make(map[string]bool, len(p.Zones))
	for _, z := range p.Zones {
		if zones[z.ID] {
			issues = append(issues, Issue{
				Kind:    IssueDuplicateZoneID,
				ZoneID:  z.ID,
				Message: fmt.Sprintf("zone id %q is used more than once", z.ID),
			})
		}
		zones[z.ID] = true
		if !z.Category.IsValid() {
			issues = append(issues, Issue{
				Kind:    IssueInvalidCategory,
				ZoneID:  z.ID,
				Message: fmt.Sprintf("zone %q has unknown category %q", z.Name, z.Category),
			})
		}
	}

	cells := make(map[[2]int]string, len(p.Stands))
	ids := make(map[string]bool, len(p.Stands))
	occupants := make(map[string]string)
	for _, s := range p.Stands {
		if ids[s.ID] {
			issues = append(issues, Issue{
				Kind:    IssueDuplicateStandID,
				StandID: s.ID,
				Message: fmt.Sprintf("stand id %q is used more than once", s.ID),
			})
		}
		ids[s.ID] = true

		cell := [2]int{s.X, s.Y}
		if other, taken := cells[cell]; taken {
			issues = append(issues, Issue{
				Kind:    IssueDuplicateCell,
				StandID: s.ID,
				Message: fmt.Sprintf("stand %q shares cell (%d,%d) with %q", s.ID, s.X, s.Y, other),
			})
		} else {
			cells[cell] = s.ID
		}

		if !p.GridSize.Contains(s.X, s.Y) {
			issues = append(issues, Issue{
				Kind:    IssueOutOfBounds,
				StandID: s.ID,
				Message: fmt.Sprintf("stand %q at (%d,%d) lies outside the %dx%d grid",
					s.ID, s.X, s.Y, p.GridSize.Width, p.GridSize.Height),
			})
		}
		if !zones[s.ZoneID] {
			issues = append(issues, Issue{
				Kind:    IssueUnknownZone,
				StandID: s.ID,
				ZoneID:  s.ZoneID,
				Message: fmt.Sprintf("stand %q references missing zone %q", s.ID, s.ZoneID),
			})
		}
		if !s.Size.IsValid() {
			issues = append(issues, Issue{
				Kind:    IssueInvalidStandSize,
				StandID: s.ID,
				Message: fmt.Sprintf("stand %q has unknown size %q", s.ID, s.Size),
			})
		}
		if s.IsOccupied() {
			if first, seen := occupants[*s.OccupantID]; seen {
				issues = append(issues, Issue{
					Kind:    IssueOccupantReused,
					StandID: s.ID,
					Message: fmt.Sprintf("exhibitor %q occupies both %q and %q", *s.OccupantID, first, s.ID),
				})
			} else {
				occupants[*s.OccupantID] = s.ID
			}
		}
	}

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Kind < issues[j].Kind
	})
	return issues
}

// CheckOccupants compares stand occupants with the event's applications. It
// reports occupants that match no application and occupants whose
// application is neither approved nor paid.
func CheckOccupants(p *EventPlan, exhibitors []Exhibitor) []Issue {
	byID := make(map[string]Exhibitor, len(exhibitors))
	for _, ex := range exhibitors {
		byID[ex.ID] = ex
	}

	var issues []Issue
	for _, s := range p.Stands {
		if !s.IsOccupied() {
			continue
		}
		ex, ok := byID[*s.OccupantID]
		switch {
		case !ok:
			issues = append(issues, Issue{
				Kind:    IssueUnknownOccupant,
				StandID: s.ID,
				Message: fmt.Sprintf("stand %q is held by unknown exhibitor %q", s.ID, *s.OccupantID),
			})
		case !ex.Status.IsPlaceable():
			issues = append(issues, Issue{
				Kind:    IssueUnplaceableOccupant,
				StandID: s.ID,
				Message: fmt.Sprintf("stand %q is held by %q whose application is %s", s.ID, ex.BrandName, ex.Status),
			})
		}
	}

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Kind < issues[j].Kind
	})
	return issues
}
