package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"standplanner/internal/layout"
)

func readPlan(path string) (*layout.EventPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var plan layout.EventPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	plan.Normalize()
	return &plan, nil
}

// writePlan writes indented JSON to path, or to the CLI output when path
// is empty or "-".
func (c *CLI) writePlan(path string, plan *layout.EventPlan) error {
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if path == "" || path == "-" {
		_, err = c.out.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func readExhibitors(path string) ([]layout.Exhibitor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var exhibitors []layout.Exhibitor
	if err := json.Unmarshal(data, &exhibitors); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return exhibitors, nil
}
