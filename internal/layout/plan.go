package layout

// ZoneUpdate carries the fields of a partial zone edit. Nil fields are left
// untouched; Capacities entries are merged per size.
type ZoneUpdate struct {
	Name       *string
	Color      *string
	Category   *ZoneCategory
	Capacities map[SpotSize]int
}

//  ZONE CATALOG

// AddZone appends a zone with default name, category and capacities.
func (p *EventPlan) AddZone(id, color string) Zone {
	zone := Zone{
		ID:         id,
		Name:       DefaultZoneName,
		Color:      color,
		Category:   DefaultZoneCategory,
		Capacities: cloneCapacities(DefaultZoneCapacities),
	}
	p.Zones = append(p.Zones, zone)
	return zone
}

// Zone looks a zone up by id.
func (p *EventPlan) Zone(id string) (Zone, bool) {
	if i := p.zoneIndex(id); i >= 0 {
		return p.Zones[i], true
	}
	return Zone{}, false
}

// UpdateZone merges upd into the zone. It is a no-op for unknown ids.
func (p *EventPlan) UpdateZone(id string, upd ZoneUpdate) bool {
	i := p.zoneIndex(id)
	if i < 0 {
		return false
	}
	zone := &p.Zones[i]
	if upd.Name != nil {
		zone.Name = *upd.Name
	}
	if upd.Color != nil {
		zone.Color = *upd.Color
	}
	if upd.Category != nil {
		zone.Category = *upd.Category
	}
	if len(upd.Capacities) > 0 {
		if zone.Capacities == nil {
			zone.Capacities = map[SpotSize]int{}
		}
		for size, n := range upd.Capacities {
			zone.Capacities[size] = max(0, n)
		}
	}
	return true
}

// DeleteZone removes the zone and every stand placed in it, returning the
// stands removed along with it. ok is false for unknown ids.
func (p *EventPlan) DeleteZone(id string) (removed []Stand, ok bool) {
	i := p.zoneIndex(id)
	if i < 0 {
		return nil, false
	}
	p.Zones = append(p.Zones[:i], p.Zones[i+1:]...)

	kept := make([]Stand, 0, len(p.Stands))
	for _, s := range p.Stands {
		if s.ZoneID == id {
			removed = append(removed, s)
			continue
		}
		kept = append(kept, s)
	}
	p.Stands = kept
	return removed, true
}

func (p *EventPlan) zoneIndex(id string) int {
	for i := range p.Zones {
		if p.Zones[i].ID == id {
			return i
		}
	}
	return -1
}

//  STAND STORE

// StandAt returns the stand on cell (x, y).
func (p *EventPlan) StandAt(x, y int) (Stand, bool) {
	if i := p.standIndexAt(x, y); i >= 0 {
		return p.Stands[i], true
	}
	return Stand{}, false
}

func (p *EventPlan) StandByID(id string) (Stand, bool) {
	if i := p.standIndex(id); i >= 0 {
		return p.Stands[i], true
	}
	return Stand{}, false
}

// PlaceStand puts a new stand on (x, y). Nothing happens when the cell is
// taken, lies outside the grid, or zoneID names no zone. Zone capacity is
// not consulted.
func (p *EventPlan) PlaceStand(id string, x, y int, size SpotSize, zoneID string) (Stand, bool) {
	if !size.IsValid() || !p.GridSize.Contains(x, y) {
		return Stand{}, false
	}
	if p.zoneIndex(zoneID) < 0 || p.standIndexAt(x, y) >= 0 {
		return Stand{}, false
	}
	stand := Stand{ID: id, X: x, Y: y, Size: size, ZoneID: zoneID}
	p.Stands = append(p.Stands, stand)
	return stand, true
}

// EraseStand removes whatever stand sits on (x, y).
func (p *EventPlan) EraseStand(x, y int) (Stand, bool) {
	i := p.standIndexAt(x, y)
	if i < 0 {
		return Stand{}, false
	}
	erased := p.Stands[i]
	p.Stands = append(p.Stands[:i], p.Stands[i+1:]...)
	return erased, true
}

func (p *EventPlan) DeleteStand(id string) bool {
	i := p.standIndex(id)
	if i < 0 {
		return false
	}
	p.Stands = append(p.Stands[:i], p.Stands[i+1:]...)
	return true
}

// AssignOccupant binds an exhibitor to the stand. The exhibitor's requested
// size is not compared with the stand size.
func (p *EventPlan) AssignOccupant(standID, exhibitorID string) bool {
	i := p.standIndex(standID)
	if i < 0 || exhibitorID == "" {
		return false
	}
	occupant := exhibitorID
	p.Stands[i].OccupantID = &occupant
	return true
}

func (p *EventPlan) ClearOccupant(standID string) bool {
	i := p.standIndex(standID)
	if i < 0 {
		return false
	}
	p.Stands[i].OccupantID = nil
	return true
}

// ResizeGrid sets the grid dimensions, clamping each axis to at least 1.
// Stands are never removed; the ones left outside the new bounds are
// returned so the caller can flag them.
func (p *EventPlan) ResizeGrid(width, height int) []Stand {
	p.GridSize = GridSize{Width: max(1, width), Height: max(1, height)}
	return p.OutOfBounds()
}

// OutOfBounds lists stands whose cell lies outside the current grid.
func (p *EventPlan) OutOfBounds() []Stand {
	var stranded []Stand
	for _, s := range p.Stands {
		if !p.GridSize.Contains(s.X, s.Y) {
			stranded = append(stranded, s)
		}
	}
	return stranded
}

// StandsInZone returns the stands that belong to zoneID.
func (p *EventPlan) StandsInZone(zoneID string) []Stand {
	var out []Stand
	for _, s := range p.Stands {
		if s.ZoneID == zoneID {
			out = append(out, s)
		}
	}
	return out
}

// OccupiedBy returns the stand bound to exhibitorID.
func (p *EventPlan) OccupiedBy(exhibitorID string) (Stand, bool) {
	for _, s := range p.Stands {
		if s.Occupant() == exhibitorID && exhibitorID != "" {
			return s, true
		}
	}
	return Stand{}, false
}

func (p *EventPlan) standIndex(id string) int {
	for i := range p.Stands {
		if p.Stands[i].ID == id {
			return i
		}
	}
	return -1
}

func (p *EventPlan) standIndexAt(x, y int) int {
	for i := range p.Stands {
		if p.Stands[i].X == x && p.Stands[i].Y == y {
			return i
		}
	}
	return -1
}

//  METADATA

// SetPricing replaces the prices, equipment lists and extras of the plan.
func (p *EventPlan) SetPricing(prices map[SpotSize]string, equipment map[SpotSize][]string, extras []ExtraItem) {
	p.Prices = make(map[SpotSize]string, len(prices))
	for size, price := range prices {
		p.Prices[size] = price
	}
	p.Equipment = make(map[SpotSize][]string, len(equipment))
	for size, items := range equipment {
		p.Equipment[size] = append([]string{}, items...)
	}
	p.Extras = append([]ExtraItem{}, extras...)
}
