package editor

type SelectToolRequest struct {
	Tool string `json:"tool" binding:"required,tool"`
}

// Coordinates are pointers so that 0 passes the required check.
type ClickCellRequest struct {
	X *int `json:"x" binding:"required"`
	Y *int `json:"y" binding:"required"`
}

type ResizeGridRequest struct {
	Width  *int `json:"width" binding:"required"`
	Height *int `json:"height" binding:"required"`
}

type UpdateZoneRequest struct {
	Name       *string        `json:"name" binding:"omitempty,min=1,max=100"`
	Color      *string        `json:"color" binding:"omitempty,hexcolor"`
	Category   *string        `json:"category" binding:"omitempty,zonecategory"`
	Capacities map[string]int `json:"capacities" binding:"omitempty,dive,keys,spotsize,endkeys,min=0"`
}

// SelectZoneRequest with an empty zone id clears the active zone.
type SelectZoneRequest struct {
	ZoneID string `json:"zoneId" binding:"max=64"`
}

type AssignOccupantRequest struct {
	ExhibitorID string `json:"exhibitorId" binding:"required,max=64"`
}

type ExtraItemRequest struct {
	ID    string `json:"id" binding:"max=64"`
	Label string `json:"label" binding:"required,max=255"`
	Price string `json:"price" binding:"max=64"`
}

type PricingRequest struct {
	Prices    map[string]string   `json:"prices" binding:"omitempty,dive,keys,spotsize,endkeys,max=64"`
	Equipment map[string][]string `json:"equipment" binding:"omitempty,dive,keys,spotsize,endkeys"`
	Extras    []ExtraItemRequest  `json:"extras" binding:"omitempty,dive"`
}

type ExhibitorSearchQuery struct {
	Query string `form:"q" binding:"max=100"`
}
