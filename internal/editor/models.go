package editor

import "standplanner/internal/layout"

// View is the planner screen: plan, editor state and the derived panels.
type View struct {
	Plan     *layout.EventPlan     `json:"plan"`
	State    layout.EditorState    `json:"state"`
	Capacity []layout.ZoneCapacity `json:"capacity"`
	Roster   layout.Roster         `json:"roster"`
	Warnings []string              `json:"warnings"`
	Dirty    bool                  `json:"dirty"`
}

type ExhibitorOption struct {
	layout.Exhibitor
	Match layout.SizeMatch `json:"match,omitempty"`
	Hint  string           `json:"hint,omitempty"`
}

type ExhibitorsView struct {
	SelectedStand *layout.Stand      `json:"selectedStand,omitempty"`
	Occupant      *layout.Exhibitor  `json:"occupant,omitempty"`
	Placed        []layout.Exhibitor `json:"placed"`
	Unplaced      []ExhibitorOption  `json:"unplaced"`
}

// MutationResponse is returned by every editing operation. Applied is false
// when the operation was a no-op under the editor's rules.
type MutationResponse struct {
	Applied bool               `json:"applied"`
	State   layout.EditorState `json:"state"`
	Result  interface{}        `json:"result,omitempty"`
}
