package preview

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/agiangrant/stacklayout/designer"
	"github.com/agiangrant/stacklayout/layout"
	"github.com/agiangrant/stacklayout/widget"
)

// Scene is what the preview loop shows.
type Scene struct {
	Panel   *layout.Panel
	Surface *widget.Surface
	// Queue is drained once per loop turn. It should be the panel's
	// Dispatcher.
	Queue *layout.Queue
	// Keys binds runes to actions, e.g. toggling a toolbar's loading state.
	Keys map[rune]func()
	// Connectors draws designer connector points when set.
	Connectors bool
}

// Run shows scene on screen until ctx is done or the user presses q,
// Escape or Ctrl+C. The panel is resized to the screen on start and on
// every resize event. The caller owns screen and must Init and Fini it.
func Run(ctx context.Context, screen tcell.Screen, r *Renderer, scene Scene) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	resize := func(cols, rows int) {
		scene.Panel.Resize(cols*max(r.ScaleX, 1), rows*max(r.ScaleY, 1))
	}
	resize(screen.Size())

	for {
		if scene.Queue != nil {
			scene.Queue.Drain()
		}
		var conns []designer.Connector
		if scene.Connectors {
			conns = designer.Connectors(scene.Panel)
		}
		r.Draw(scene.Surface, scene.Panel, conns)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				resize(ev.Size())
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC,
					ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return nil
				case ev.Key() == tcell.KeyRune:
					if fn := scene.Keys[ev.Rune()]; fn != nil {
						fn()
					}
				}
			}
		}
	}
}
