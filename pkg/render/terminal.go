// Package render draws hitboxes as ASCII art for headless debugging.
package render

import (
	"io"
	"math"
	"strings"

	"github.com/opd-ai/go-hitbox/pkg/geometry"
	"github.com/opd-ai/go-hitbox/pkg/physics"
)

// TerminalRenderer rasterises hitboxes into a character grid. Each cell
// covers scale world units; the view is centred on centerPos with +Y up.
type TerminalRenderer struct {
	width     int
	height    int
	buffer    [][]rune
	scale     float64
	centerPos physics.Vector2D
}

// NewTerminalRenderer creates a renderer with the given grid size
func NewTerminalRenderer(width, height int, scale float64) *TerminalRenderer {
	width, height = max(width, 1), max(height, 1)
	if scale <= 0 {
		scale = 1
	}

	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	r := &TerminalRenderer{
		width:  width,
		height: height,
		buffer: buffer,
		scale:  scale,
	}
	r.Clear()
	return r
}

// SetCenter sets the world position shown in the middle of the grid
func (r *TerminalRenderer) SetCenter(pos physics.Vector2D) {
	r.centerPos = pos
}

// FitTo centres the view on area and picks the scale that shows all of it
func (r *TerminalRenderer) FitTo(area geometry.Rectangle) {
	area = area.Normalized()
	r.centerPos = area.Center()
	r.scale = max(area.Size.X/float64(r.width), area.Size.Y/float64(r.height), 1e-9)
}

// worldToScreen returns the cell containing pos
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	x := (pos.X-r.centerPos.X)/r.scale + float64(r.width)/2
	y := float64(r.height)/2 - (pos.Y-r.centerPos.Y)/r.scale
	return int(math.Floor(x)), int(math.Floor(y))
}

// screenToWorld returns the world position of a cell centre
func (r *TerminalRenderer) screenToWorld(x, y int) physics.Vector2D {
	return physics.Vector2D{
		X: (float64(x)+0.5-float64(r.width)/2)*r.scale + r.centerPos.X,
		Y: (float64(r.height)/2-float64(y)-0.5)*r.scale + r.centerPos.Y,
	}
}

// Clear blanks the grid
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
}

// DrawHitbox marks every cell whose centre lies inside hitbox
func (r *TerminalRenderer) DrawHitbox(hitbox geometry.BoundingShape, symbol rune) {
	if !hitbox.HasArea() {
		return
	}

	// Only scan the cells under the hitbox bounds.
	bounds := hitbox.Bounds()
	x0, y0 := r.worldToScreen(physics.Vector2D{X: bounds.Min().X, Y: bounds.Max().Y})
	x1, y1 := r.worldToScreen(physics.Vector2D{X: bounds.Max().X, Y: bounds.Min().Y})
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, r.width-1), min(y1, r.height-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if hitbox.ContainsPoint(r.screenToWorld(x, y)) {
				r.buffer[y][x] = symbol
			}
		}
	}
}

// DrawPoint marks the cell containing pos, if it is visible
func (r *TerminalRenderer) DrawPoint(pos physics.Vector2D, symbol rune) {
	x, y := r.worldToScreen(pos)
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.buffer[y][x] = symbol
	}
}

// String returns the framed grid
func (r *TerminalRenderer) String() string {
	var sb strings.Builder
	border := "+" + strings.Repeat("-", r.width) + "+\n"

	sb.WriteString(border)
	for _, row := range r.buffer {
		sb.WriteByte('|')
		sb.WriteString(string(row))
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	return sb.String()
}

// Present writes the framed grid to w
func (r *TerminalRenderer) Present(w io.Writer) error {
	_, err := io.WriteString(w, r.String())
	return err
}
