// cmd/hitboxsim/view.go
package main

import (
	"context"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-hitbox/pkg/logging"
	"github.com/opd-ai/go-hitbox/pkg/render"
)

// textView redraws the scene as framed ASCII on w
func textView(ctx context.Context, logger *logging.Logger, sc *scene, w io.Writer, every uint64) func(uint64) {
	view := render.NewTerminalRenderer(80, 24, 1)
	view.FitTo(sc.extent())
	return func(tick uint64) {
		if tick%every != 0 {
			return
		}
		sc.draw(view)
		fmt.Fprint(w, "\033[H\033[2J")
		if err := view.Present(w); err != nil {
			logger.Warn(ctx, "Failed to draw scene", "error", err.Error())
		}
	}
}

// screenView redraws the scene on a full-screen terminal. Esc, q or Ctrl-C
// call stop. The returned close function restores the terminal.
func screenView(sc *scene, every uint64, stop context.CancelFunc) (func(uint64), func(), error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, nil, fmt.Errorf("failed to initialise terminal: %w", err)
	}

	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					stop()
					return
				}
			}
		}
	}()

	w, h := screen.Size()
	view := render.NewTerminalRenderer(w, h, 1)
	view.FitTo(sc.extent())
	styles := render.Styles{
		Default: tcell.StyleDefault,
		Symbols: map[rune]tcell.Style{'#': tcell.StyleDefault.Foreground(tcell.ColorGray)},
	}

	onTick := func(tick uint64) {
		if tick%every != 0 {
			return
		}
		sc.draw(view)
		view.DrawTo(screen, styles)
	}
	return onTick, screen.Fini, nil
}
