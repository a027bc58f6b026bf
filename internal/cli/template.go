package cli

import (
	"fmt"
	"os"

	"standplanner/internal/layout"

	"github.com/BurntSushi/toml"
)

// planTemplate is the TOML layout accepted by `planctl init --template`:
//
//	width = 20
//	height = 12
//	spot_defaults = true
//
//	[[zones]]
//	name = "Main Hall"
//	color = "#e76f51"
//	category = "Secondhands"
//	capacities = { S = 6, M = 4, L = 2 }
//
//	[prices]
//	S = "2.500 Kč"
//
//	[[extras]]
//	label = "Extra chair"
//	price = "100 Kč"
type planTemplate struct {
	Width        int                 `toml:"width"`
	Height       int                 `toml:"height"`
	SpotDefaults bool                `toml:"spot_defaults"`
	Zones        []zoneTemplate      `toml:"zones"`
	Prices       map[string]string   `toml:"prices"`
	Equipment    map[string][]string `toml:"equipment"`
	Extras       []extraTemplate     `toml:"extras"`
}

type zoneTemplate struct {
	Name       string         `toml:"name"`
	Color      string         `toml:"color"`
	Category   string         `toml:"category"`
	Capacities map[string]int `toml:"capacities"`
}

type extraTemplate struct {
	Label string `toml:"label"`
	Price string `toml:"price"`
}

func loadTemplate(path string) (*planTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tmpl planTemplate
	if err := toml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &tmpl, nil
}

// apply builds the template's zones and metadata into plan through an
// editor, so zones get generated ids and defaults like in the API.
func (t *planTemplate) apply(plan *layout.EventPlan, opts ...layout.Option) error {
	if t.Width > 0 || t.Height > 0 {
		width, height := plan.GridSize.Width, plan.GridSize.Height
		if t.Width > 0 {
			width = t.Width
		}
		if t.Height > 0 {
			height = t.Height
		}
		plan.ResizeGrid(width, height)
	}

	ed := layout.NewEditor(plan, opts...)
	for i, zt := range t.Zones {
		upd := layout.ZoneUpdate{}
		if zt.Name != "" {
			name := zt.Name
			upd.Name = &name
		}
		if zt.Color != "" {
			color := zt.Color
			upd.Color = &color
		}
		if zt.Category != "" {
			category, err := layout.ParseZoneCategory(zt.Category)
			if err != nil {
				return fmt.Errorf("zone %d: %w", i+1, err)
			}
			upd.Category = &category
		}
		if zt.Capacities != nil {
			caps, err := parseSizeMap(zt.Capacities)
			if err != nil {
				return fmt.Errorf("zone %d: %w", i+1, err)
			}
			upd.Capacities = caps
		}
		zone := ed.AddZone()
		ed.UpdateZone(zone.ID, upd)
	}

	prices, err := parseSizeMap(t.Prices)
	if err != nil {
		return fmt.Errorf("prices: %w", err)
	}
	equipment, err := parseSizeMap(t.Equipment)
	if err != nil {
		return fmt.Errorf("equipment: %w", err)
	}
	extras := make([]layout.ExtraItem, 0, len(t.Extras))
	for _, x := range t.Extras {
		extras = append(extras, layout.ExtraItem{Label: x.Label, Price: x.Price})
	}
	ed.SetPricing(prices, equipment, extras)

	if t.SpotDefaults {
		plan.ApplySpotDefaults()
	}
	return nil
}

func parseSizeMap[V any](in map[string]V) (map[layout.SpotSize]V, error) {
	out := make(map[layout.SpotSize]V, len(in))
	for key, v := range in {
		size, err := layout.ParseSpotSize(key)
		if err != nil {
			return nil, err
		}
		out[size] = v
	}
	return out, nil
}
