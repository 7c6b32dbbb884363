// Package strip turns a stamp program's configuration into grid geometry,
// a hero image choice and a declarative scene. Everything here is pure:
// the live preview and the server-rendered bitmap both go through it, so
// the two can never disagree.
package strip

import (
	"math"

	"stampcard/internal/domain/entity"
)

// Geometry is the resolved grid shape.
type Geometry struct {
	Cols int `json:"cols"`
	Rows int `json:"rows"`
}

// Capacity is the number of cells in the grid.
func (g Geometry) Capacity() int {
	return g.Cols * g.Rows
}

// ResolveGrid returns the grid shape for totalStamps.
//
// A valid manual override always wins. The auto table is tuned for common
// program sizes and must not be re-derived: the preview and the rendered
// pass image are compared pixel for pixel.
//
// Invariant (grid covers target): the returned capacity is never below
// the clamped total. A manual override that is too small keeps its column
// count and grows rows; one that is too large keeps its shape and the extra
// cells become decoration (see BuildGrid).
//
// Invariant (grid is bounded): totalStamps is clamped to
// [1, entity.MaxTargetStamps] and override dimensions to
// entity.MaxGridCols x entity.MaxGridRows before any product is taken, so
// the capacity never exceeds MaxGridCols*max(MaxGridRows, MaxTargetStamps).
func ResolveGrid(totalStamps int, layout entity.SplitLayout, manual *entity.GridOverride) Geometry {
	total := clampTotal(totalStamps)

	if manual.Valid() {
		geo := Geometry{
			Cols: min(manual.Cols, entity.MaxGridCols),
			Rows: min(manual.Rows, entity.MaxGridRows),
		}
		if geo.Capacity() < total {
			geo.Rows = ceilDiv(total, geo.Cols)
		}

		return geo
	}

	split := layout.IsSplit()

	switch {
	case total <= 4:
		return Geometry{Cols: total, Rows: 1}
	case total <= 5:
		if split {
			return Geometry{Cols: total, Rows: 1}
		}

		return Geometry{Cols: 5, Rows: 1}
	case total <= 6:
		if split {
			return Geometry{Cols: 3, Rows: 2}
		}

		return Geometry{Cols: 6, Rows: 1}
	case total <= 8:
		return Geometry{Cols: 4, Rows: 2}
	case total <= 10:
		return Geometry{Cols: 5, Rows: 2}
	case total <= 12:
		if split {
			return Geometry{Cols: 4, Rows: 3}
		}

		return Geometry{Cols: 6, Rows: 2}
	default:
		cols := min(6, int(math.Ceil(math.Sqrt(float64(total)*1.5))))

		return Geometry{Cols: cols, Rows: ceilDiv(total, cols)}
	}
}

// Cell is the state of one grid position. Active marks earned stamps
// (Index < progress), IsGoal marks the last stamp cell (Index == total-1)
// and Decorative marks cells beyond the target in an oversized manual
// grid, which stay inactive forever.
type Cell struct {
	Index      int  `json:"index"`
	Row        int  `json:"row"`
	Col        int  `json:"col"`
	Active     bool `json:"active"`
	IsGoal     bool `json:"is_goal"`
	Decorative bool `json:"decorative"`
}

// Grid is the geometry plus the per-cell state for one render.
type Grid struct {
	Geometry Geometry `json:"geometry"`
	Total    int      `json:"total"`
	Progress int      `json:"progress"`
	Cells    []Cell   `json:"cells"`
}

// BuildGrid resolves the geometry and the state of every cell, row-major.
// progress is expected to be clamped to [0, totalStamps] by the caller.
func BuildGrid(totalStamps, progress int, layout entity.SplitLayout, manual *entity.GridOverride) Grid {
	total := clampTotal(totalStamps)
	geo := ResolveGrid(total, layout, manual)

	cells := make([]Cell, geo.Capacity())
	for i := range cells {
		decorative := i >= total
		cells[i] = Cell{
			Index:      i,
			Row:        i / geo.Cols,
			Col:        i % geo.Cols,
			Active:     !decorative && i < progress,
			IsGoal:     i == total-1,
			Decorative: decorative,
		}
	}

	return Grid{
		Geometry: geo,
		Total:    total,
		Progress: progress,
		Cells:    cells,
	}
}

func clampTotal(totalStamps int) int {
	return min(max(totalStamps, 1), entity.MaxTargetStamps)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
