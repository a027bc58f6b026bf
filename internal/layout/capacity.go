package layout

// CapacityInfo compares a zone's budget for one size with what is built.
type CapacityInfo struct {
	Total        int `json:"total"`
	PlacedStands int `json:"placedStands"`
	Used         int `json:"used"`
}

// Percent is placed stands over budget, in percent. A zero budget yields 0.
func (c CapacityInfo) Percent() float64 {
	if c.Total <= 0 {
		return 0
	}
	return float64(c.PlacedStands) / float64(c.Total) * 100
}

// OverCapacity reports more placed stands than budgeted. Placement is never
// refused for this; it is only surfaced.
func (c CapacityInfo) OverCapacity() bool {
	return c.PlacedStands > c.Total
}

func (c CapacityInfo) Free() int {
	return max(0, c.Total-c.PlacedStands)
}

// Capacity derives the counts for (zoneID, size) from the current stands.
// Unknown zones report zeros.
func Capacity(p *EventPlan, zoneID string, size SpotSize) CapacityInfo {
	zone, ok := p.Zone(zoneID)
	if !ok {
		return CapacityInfo{}
	}
	info := CapacityInfo{Total: zone.Budget(size)}
	for _, s := range p.Stands {
		if s.ZoneID != zoneID || s.Size != size {
			continue
		}
		info.PlacedStands++
		if s.IsOccupied() {
			info.Used++
		}
	}
	return info
}

type SizeCapacity struct {
	Size SpotSize `json:"size"`
	CapacityInfo
	Utilization float64 `json:"percent"`
	Overbooked  bool    `json:"overCapacity"`
}

type ZoneCapacity struct {
	ZoneID   string         `json:"zoneId"`
	ZoneName string         `json:"zoneName"`
	Color    string         `json:"color"`
	Category ZoneCategory   `json:"category"`
	Sizes    []SizeCapacity `json:"sizes"`
}

// CapacityReport lists every zone with its S, M and L counts, in zone order.
func CapacityReport(p *EventPlan) []ZoneCapacity {
	report := make([]ZoneCapacity, 0, len(p.Zones))
	for _, zone := range p.Zones {
		entry := ZoneCapacity{
			ZoneID:   zone.ID,
			ZoneName: zone.Name,
			Color:    zone.Color,
			Category: zone.Category,
			Sizes:    make([]SizeCapacity, 0, len(AllSpotSizes)),
		}
		for _, size := range AllSpotSizes {
			info := Capacity(p, zone.ID, size)
			entry.Sizes = append(entry.Sizes, SizeCapacity{
				Size:         size,
				CapacityInfo: info,
				Utilization:  info.Percent(),
				Overbooked:   info.OverCapacity(),
			})
		}
		report = append(report, entry)
	}
	return report
}
