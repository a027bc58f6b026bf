package layout

import (
	"errors"
	"fmt"
)

const (
	DefaultGridWidth  = 15
	DefaultGridHeight = 10

	DefaultZoneName = "New zone"
)

// DefaultZoneCapacities is the per-size budget given to a freshly added zone.
var DefaultZoneCapacities = map[SpotSize]int{
	SpotSizeS: 5,
	SpotSizeM: 5,
	SpotSizeL: 2,
}

type GridSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Contains reports whether (x, y) is a cell of the grid.
func (g GridSize) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// Zone groups stands spatially and for capacity reporting.
type Zone struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Color      string           `json:"color"`
	Category   ZoneCategory     `json:"category"`
	Capacities map[SpotSize]int `json:"capacities"`
}

// Budget returns the capacity for size, 0 when unset.
func (z Zone) Budget(size SpotSize) int {
	return z.Capacities[size]
}

// Stand is a booth occupying exactly one grid cell.
type Stand struct {
	ID         string   `json:"id"`
	X          int      `json:"x"`
	Y          int      `json:"y"`
	Size       SpotSize `json:"size"`
	ZoneID     string   `json:"zoneId"`
	OccupantID *string  `json:"occupantId,omitempty"`
}

func (s Stand) IsOccupied() bool {
	return s.OccupantID != nil && *s.OccupantID != ""
}

// Occupant returns the occupant id or "".
func (s Stand) Occupant() string {
	if s.OccupantID == nil {
		return ""
	}
	return *s.OccupantID
}

type ExtraItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Price string `json:"price"`
}

// EventPlan is the aggregate root for one event's floor plan. All mutation
// goes through its methods or through an Editor.
type EventPlan struct {
	EventID   string                `json:"eventId"`
	GridSize  GridSize              `json:"gridSize"`
	Zones     []Zone                `json:"zones"`
	Stands    []Stand               `json:"stands"`
	Prices    map[SpotSize]string   `json:"prices"`
	Equipment map[SpotSize][]string `json:"equipment"`
	Extras    []ExtraItem           `json:"extras"`
}

// NewEventPlan returns the empty plan used when nothing is stored for an
// event yet.
func NewEventPlan(eventID string) *EventPlan {
	return NewEventPlanWithGrid(eventID, DefaultGridWidth, DefaultGridHeight)
}

func NewEventPlanWithGrid(eventID string, width, height int) *EventPlan {
	return &EventPlan{
		EventID:   eventID,
		GridSize:  GridSize{Width: max(1, width), Height: max(1, height)},
		Zones:     []Zone{},
		Stands:    []Stand{},
		Prices:    map[SpotSize]string{},
		Equipment: map[SpotSize][]string{},
		Extras:    []ExtraItem{},
	}
}

// Normalize replaces nil collections with empty ones so a decoded plan
// serializes with the same shape as a fresh one.
func (p *EventPlan) Normalize() {
	if p.Zones == nil {
		p.Zones = []Zone{}
	}
	if p.Stands == nil {
		p.Stands = []Stand{}
	}
	if p.Prices == nil {
		p.Prices = map[SpotSize]string{}
	}
	if p.Equipment == nil {
		p.Equipment = map[SpotSize][]string{}
	}
	if p.Extras == nil {
		p.Extras = []ExtraItem{}
	}
	for i := range p.Zones {
		if p.Zones[i].Capacities == nil {
			p.Zones[i].Capacities = map[SpotSize]int{}
		}
	}
	p.GridSize.Width = max(1, p.GridSize.Width)
	p.GridSize.Height = max(1, p.GridSize.Height)
}

// Clone returns a deep copy.
func (p *EventPlan) Clone() *EventPlan {
	if p == nil {
		return nil
	}
	out := &EventPlan{
		EventID:   p.EventID,
		GridSize:  p.GridSize,
		Zones:     make([]Zone, len(p.Zones)),
		Stands:    make([]Stand, len(p.Stands)),
		Prices:    make(map[SpotSize]string, len(p.Prices)),
		Equipment: make(map[SpotSize][]string, len(p.Equipment)),
		Extras:    append([]ExtraItem{}, p.Extras...),
	}
	for i, z := range p.Zones {
		z.Capacities = cloneCapacities(z.Capacities)
		out.Zones[i] = z
	}
	for i, s := range p.Stands {
		if s.OccupantID != nil {
			occupant := *s.OccupantID
			s.OccupantID = &occupant
		}
		out.Stands[i] = s
	}
	for size, price := range p.Prices {
		out.Prices[size] = price
	}
	for size, items := range p.Equipment {
		out.Equipment[size] = append([]string{}, items...)
	}
	return out
}

func cloneCapacities(in map[SpotSize]int) map[SpotSize]int {
	out := make(map[SpotSize]int, len(in))
	for size, n := range in {
		out[size] = n
	}
	return out
}

// SpotDetails describes a booth size as offered to exhibitors.
type SpotDetails struct {
	Label      string   `json:"label" toml:"label"`
	Dimensions string   `json:"dimensions" toml:"dimensions"`
	Price      string   `json:"price" toml:"price"`
	Equipment  []string `json:"equipment" toml:"equipment"`
}

// SpotCatalog holds the house defaults for each booth size.
var SpotCatalog = map[SpotSize]SpotDetails{
	SpotSizeS: {
		Label:      "Spot S",
		Dimensions: "1.5 x 1.5m",
		Price:      "2.500 Kč",
		Equipment:  []string{"1x Table", "1x Chair"},
	},
	SpotSizeM: {
		Label:      "Spot M",
		Dimensions: "2.0 x 2.0m",
		Price:      "4.200 Kč",
		Equipment:  []string{"1x Clothes rack", "1x Table", "2x Chair"},
	},
	SpotSizeL: {
		Label:      "Spot L",
		Dimensions: "3.0 x 3.0m",
		Price:      "6.800 Kč",
		Equipment:  []string{"2x Clothes rack", "2x Table", "2x Chair", "Mirror"},
	},
}

// ApplySpotDefaults fills prices and equipment that are not set yet from
// SpotCatalog. Values already present are kept.
func (p *EventPlan) ApplySpotDefaults() {
	p.Normalize()
	for _, size := range AllSpotSizes {
		details := SpotCatalog[size]
		if _, ok := p.Prices[size]; !ok {
			p.Prices[size] = details.Price
		}
		if _, ok := p.Equipment[size]; !ok {
			p.Equipment[size] = append([]string{}, details.Equipment...)
		}
	}
}

// ErrInvalidEventID rejects event ids that cannot key a plan.
var ErrInvalidEventID = errors.New("invalid event id")

// ValidateEventID accepts 1 to 64 characters of letters, digits, '-' and '_'.
func ValidateEventID(id string) error {
	if id == "" || len(id) > 64 {
		return fmt.Errorf("%w: %q", ErrInvalidEventID, id)
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidEventID, id)
		}
	}
	return nil
}
