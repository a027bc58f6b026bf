package layout

import "strings"

// Exhibitor is the read-only view of an application that the planner needs.
type Exhibitor struct {
	ID            string       `json:"id"`
	BrandName     string       `json:"brandName"`
	ContactPerson string       `json:"contactPerson"`
	Phone         string       `json:"phone"`
	Email         string       `json:"email,omitempty"`
	RequestedSize SpotSize     `json:"zone"`
	ZoneCategory  ZoneCategory `json:"zoneCategory,omitempty"`
	Status        AppStatus    `json:"status"`
}

// Roster splits exhibitors into those bound to a stand and placeable ones
// still waiting for one.
type Roster struct {
	Placed   []Exhibitor `json:"placed"`
	Unplaced []Exhibitor `json:"unplaced"`
}

// BuildRoster keeps the input order. Placed exhibitors are listed whatever
// their status; unplaced ones only when placeable.
func BuildRoster(p *EventPlan, exhibitors []Exhibitor) Roster {
	occupied := make(map[string]bool, len(p.Stands))
	for _, s := range p.Stands {
		if s.IsOccupied() {
			occupied[*s.OccupantID] = true
		}
	}

	roster := Roster{Placed: []Exhibitor{}, Unplaced: []Exhibitor{}}
	for _, ex := range exhibitors {
		switch {
		case occupied[ex.ID]:
			roster.Placed = append(roster.Placed, ex)
		case ex.Status.IsPlaceable():
			roster.Unplaced = append(roster.Unplaced, ex)
		}
	}
	return roster
}

// Assignable reports whether exhibitorID may be bound to a stand: it must
// be an approved or paid application not yet holding any stand.
func Assignable(p *EventPlan, exhibitors []Exhibitor, exhibitorID string) bool {
	for _, ex := range BuildRoster(p, exhibitors).Unplaced {
		if ex.ID == exhibitorID {
			return true
		}
	}
	return false
}

// SearchExhibitors filters by a case-insensitive substring of the brand name
// or zone category. An empty term returns the input unchanged.
func SearchExhibitors(exhibitors []Exhibitor, term string) []Exhibitor {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return exhibitors
	}
	out := make([]Exhibitor, 0, len(exhibitors))
	for _, ex := range exhibitors {
		if strings.Contains(strings.ToLower(ex.BrandName), needle) ||
			strings.Contains(strings.ToLower(string(ex.ZoneCategory)), needle) {
			out = append(out, ex)
		}
	}
	return out
}

// SizeMatch tells the picker how to color an exhibitor offered for a stand.
type SizeMatch string

const (
	SizeMatchExact    SizeMatch = "match"
	SizeMatchMismatch SizeMatch = "mismatch"
)

// Hint is the display color convention: green for a match, amber otherwise.
func (m SizeMatch) Hint() string {
	if m == SizeMatchExact {
		return "green"
	}
	return "amber"
}

func MatchSize(ex Exhibitor, stand Stand) SizeMatch {
	if ex.RequestedSize == stand.Size {
		return SizeMatchExact
	}
	return SizeMatchMismatch
}

// Occupant resolves the exhibitor bound to stand.
func Occupant(stand Stand, exhibitors []Exhibitor) (Exhibitor, bool) {
	if !stand.IsOccupied() {
		return Exhibitor{}, false
	}
	for _, ex := range exhibitors {
		if ex.ID == *stand.OccupantID {
			return ex, true
		}
	}
	return Exhibitor{}, false
}
