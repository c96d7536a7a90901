package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-hitbox/pkg/geometry"
	"github.com/opd-ai/go-hitbox/pkg/physics"
)

func rows(r *TerminalRenderer) []string {
	lines := strings.Split(strings.TrimSuffix(r.String(), "\n"), "\n")
	return lines[1 : len(lines)-1]
}

func count(r *TerminalRenderer, symbol rune) int {
	n := 0
	for _, row := range r.buffer {
		for _, c := range row {
			if c == symbol {
				n++
			}
		}
	}
	return n
}

func TestNewTerminalRenderer(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		scale         float64
		wantW, wantH  int
		wantScale     float64
	}{
		{"small", 10, 5, 1, 10, 5, 1},
		{"wide", 120, 40, 5.5, 120, 40, 5.5},
		{"degenerate", 0, -3, 0, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewTerminalRenderer(tt.width, tt.height, tt.scale)
			assert.Equal(t, tt.wantW, r.width)
			assert.Equal(t, tt.wantH, r.height)
			assert.Equal(t, tt.wantScale, r.scale)
			require.Len(t, r.buffer, tt.wantH)
			for _, row := range r.buffer {
				assert.Len(t, row, tt.wantW)
			}
			assert.Zero(t, count(r, '#'))
		})
	}
}

func TestDrawHitbox_Rectangle(t *testing.T) {
	r := NewTerminalRenderer(10, 10, 1)
	r.DrawHitbox(geometry.NewBoundingShape(geometry.RectangleShape(geometry.NewRectangle(0, 0, 2, 2))), '#')

	got := rows(r)
	assert.Equal(t, "|     ##   |", got[3])
	assert.Equal(t, "|     ##   |", got[4])
	assert.Equal(t, 4, count(r, '#'))
}

func TestDrawHitbox_CircleIsSymmetric(t *testing.T) {
	r := NewTerminalRenderer(20, 20, 1)
	r.DrawHitbox(geometry.NewBoundingShape(geometry.CircleShape(geometry.NewCircle(physics.Vector2D{}, 4))), 'o')

	n := count(r, 'o')
	assert.Positive(t, n)
	assert.Less(t, n, 64, "fewer cells than the bounding square")
	for y := range r.buffer {
		for x := range r.buffer[y] {
			assert.Equal(t, r.buffer[y][x], r.buffer[y][19-x], "mirror at %d,%d", x, y)
			assert.Equal(t, r.buffer[y][x], r.buffer[19-y][x], "mirror at %d,%d", x, y)
		}
	}
}

func TestDrawHitbox_ClipsAndIgnoresEmpty(t *testing.T) {
	r := NewTerminalRenderer(4, 4, 1)
	r.DrawHitbox(geometry.NewBoundingShape(geometry.RectangleShape(geometry.NewRectangle(-100, -100, 200, 200))), '#')
	assert.Equal(t, 16, count(r, '#'))

	r.Clear()
	r.DrawHitbox(geometry.BoundingShape{}, '#')
	assert.Zero(t, count(r, '#'))
}

func TestDrawPoint(t *testing.T) {
	r := NewTerminalRenderer(10, 10, 1)
	r.SetCenter(physics.Vector2D{X: 100, Y: 100})

	r.DrawPoint(physics.Vector2D{X: 100, Y: 100}, '@')
	assert.Equal(t, '@', r.buffer[5][5])

	r.DrawPoint(physics.Vector2D{X: 101, Y: 103}, '+')
	assert.Equal(t, '+', r.buffer[2][6], "+Y is up")

	r.DrawPoint(physics.Vector2D{}, 'x')
	assert.Zero(t, count(r, 'x'))
}

func TestFitTo(t *testing.T) {
	r := NewTerminalRenderer(10, 5, 1)
	r.FitTo(geometry.NewRectangle(10, 10, -20, -20))
	assert.Equal(t, 4.0, r.scale)
	assert.Equal(t, physics.Vector2D{}, r.centerPos)

	r.DrawPoint(physics.Vector2D{X: -19.9, Y: 9.9}, 'a')
	r.DrawPoint(physics.Vector2D{X: 19.9, Y: -9.9}, 'b')
	assert.Equal(t, 'a', r.buffer[0][0])
	assert.Equal(t, 'b', r.buffer[4][9])
}

func TestPresent(t *testing.T) {
	r := NewTerminalRenderer(3, 1, 1)
	r.DrawPoint(physics.Vector2D{}, '*')

	var buf bytes.Buffer
	require.NoError(t, r.Present(&buf))
	assert.Equal(t, "+---+\n| * |\n+---+\n", buf.String())
}
