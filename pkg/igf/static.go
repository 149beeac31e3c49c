package igf

import "slices"

// Static shows a fixed list of buttons over the background.
type Static struct {
	buttons []Button
	screen  *Screen
}

// NewStatic creates a static layout showing buttons.
func NewStatic(buttons ...Button) *Static {
	return &Static{buttons: slices.Clone(buttons)}
}

// SetButtons replaces the buttons and re-renders a built screen.
func (l *Static) SetButtons(buttons ...Button) *Static {
	l.buttons = slices.Clone(buttons)
	if l.screen != nil && l.screen.Built() {
		l.screen.Render()
	}
	return l
}

func (l *Static) Prepare(screen *Screen) error {
	return bindScreen(&l.screen, screen)
}

func (l *Static) Buttons() []Button {
	return slices.Clone(l.buttons)
}
