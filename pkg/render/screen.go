package render

import "github.com/gdamore/tcell/v2"

// Styles maps grid symbols to terminal styles. Symbols without an entry
// use Default.
type Styles struct {
	Default tcell.Style
	Symbols map[rune]tcell.Style
}

func (s Styles) of(symbol rune) tcell.Style {
	if style, ok := s.Symbols[symbol]; ok {
		return style
	}
	return s.Default
}

// DrawTo copies the grid into the top-left corner of screen and shows it.
// Cells beyond the screen size are dropped.
func (r *TerminalRenderer) DrawTo(screen tcell.Screen, styles Styles) {
	w, h := screen.Size()
	screen.Clear()
	for y := 0; y < min(h, r.height); y++ {
		for x := 0; x < min(w, r.width); x++ {
			symbol := r.buffer[y][x]
			screen.SetContent(x, y, symbol, nil, styles.of(symbol))
		}
	}
	screen.Show()
}
