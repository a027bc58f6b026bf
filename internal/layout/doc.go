// Package layout is the floor-plan engine for a market event: zones with
// per-size budgets, single-cell stands on a 2-D grid, capacity accounting
// derived from the stands, and the tool-driven Editor that mutates a plan.
//
// Nothing here performs I/O. Rule violations such as placing on a taken
// cell or deleting an unknown zone are no-ops reported through boolean
// results, never errors.
package layout
