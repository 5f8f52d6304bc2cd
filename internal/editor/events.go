package editor

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/gobox/pkg/scene"
)

// SelectionChanged is sent to subscribers after every selection change so a
// color editor can follow the primary box
type SelectionChanged struct {
	Count      int
	HasPrimary bool
	Primary    scene.BoxID
	Color      colorful.Color // Primary box color, zero when HasPrimary is false
}

// OnSelectionChanged registers a listener. Listeners run synchronously on the
// event path and must not call back into pointer handling.
func (e *Editor) OnSelectionChanged(fn func(SelectionChanged)) {
	e.listeners = append(e.listeners, fn)
}

func (e *Editor) notifySelection() {
	ev := SelectionChanged{Count: e.state.Selection.Len()}
	if p := e.state.Selection.Primary(); p != nil {
		ev.HasPrimary = true
		ev.Primary = p.ID
		ev.Color = p.Color
	}
	for _, fn := range e.listeners {
		fn(ev)
	}
}
