package termview

import (
	"math"

	"github.com/1siamBot/alien-shooter/engine/core"
)

// Viewport maps world coordinates onto terminal cells
type Viewport struct {
	WorldW, WorldH float64
	Cols, Rows     int // cells available for the playfield
	scaleX, scaleY float64
}

// NewViewport creates a viewport stretching the world over cols by rows
func NewViewport(worldW, worldH float64, cols, rows int) *Viewport {
	v := &Viewport{WorldW: worldW, WorldH: worldH}
	v.Resize(cols, rows)
	return v
}

// Resize updates the cell grid, keeping at least one cell each way
func (v *Viewport) Resize(cols, rows int) {
	v.Cols = max(cols, 1)
	v.Rows = max(rows, 1)
	v.scaleX = float64(v.Cols) / v.WorldW
	v.scaleY = float64(v.Rows) / v.WorldH
}

// WorldToCell converts a world position to the cell containing it
func (v *Viewport) WorldToCell(wx, wy float64) (int, int) {
	return int(math.Floor(wx * v.scaleX)), int(math.Floor(wy * v.scaleY))
}

// CellToWorld converts a cell to the world position of its top-left corner
func (v *Viewport) CellToWorld(col, row int) (float64, float64) {
	return float64(col) / v.scaleX, float64(row) / v.scaleY
}

// RectCells returns the half-open cell range covered by r. Anything with a
// visible area covers at least one cell.
func (v *Viewport) RectCells(r core.Rect) (c0, r0, c1, r1 int) {
	c0, r0 = v.WorldToCell(r.X, r.Y)
	c1 = int(math.Ceil(r.Right() * v.scaleX))
	r1 = int(math.Ceil(r.Bottom() * v.scaleY))
	c1 = max(c1, c0+1)
	r1 = max(r1, r0+1)
	return
}

// Visible reports whether a cell lies inside the playfield grid
func (v *Viewport) Visible(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}
