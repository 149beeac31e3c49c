package igf

import (
	"maps"
	"slices"
)

// SinglePage is the state type for screens that only ever show one set of
// buttons but still want the state layout's button mapping.
type SinglePage int

// Page is the only SinglePage value.
const Page SinglePage = 0

// States shows a different set of buttons for each value of a caller-defined
// state type S, typically a set of typed constants.
//
//	type ShopState int
//
//	const (
//	    ShopBrowse ShopState = iota
//	    ShopConfirm
//	)
//
//	states := igf.NewStates[ShopState]().
//	    SetButtonMappings(map[ShopState][]igf.Button{
//	        ShopBrowse:  browseButtons,
//	        ShopConfirm: confirmButtons,
//	    }).
//	    WithDefault(ShopBrowse)
type States[S comparable] struct {
	screen *Screen

	mappings map[S][]Button
	current  S
	hasState bool
	fallback *S
}

// NewStates creates an empty state layout.
func NewStates[S comparable]() *States[S] {
	return &States[S]{
		mappings: make(map[S][]Button),
	}
}

// NewSinglePage creates a state layout whose only state, Page, is selected
// automatically on Build.
func NewSinglePage(buttons ...Button) *States[SinglePage] {
	return NewStates[SinglePage]().
		SetButtonMappings(map[SinglePage][]Button{Page: buttons}).
		WithDefault(Page)
}

// WithDefault sets the state selected on Build when none was set.
func (l *States[S]) WithDefault(state S) *States[S] {
	l.fallback = &state
	return l
}

// SetButtonMappings replaces the buttons shown for each state.
// States without a mapping show only the background.
func (l *States[S]) SetButtonMappings(mappings map[S][]Button) *States[S] {
	l.mappings = maps.Clone(mappings)
	if l.mappings == nil {
		l.mappings = make(map[S][]Button)
	}
	return l
}

// SetState sets the current state without rendering.
func (l *States[S]) SetState(state S) *States[S] {
	l.current = state
	l.hasState = true
	return l
}

// SwitchState moves to state and re-renders. Switching to the current state
// does nothing.
func (l *States[S]) SwitchState(state S) {
	if l.hasState && state == l.current {
		return
	}

	l.SetState(state)
	if l.screen != nil && l.screen.Built() {
		l.screen.Render()
	}
}

// State returns the current state and whether one is set.
func (l *States[S]) State() (S, bool) {
	return l.current, l.hasState
}

func (l *States[S]) Prepare(screen *Screen) error {
	if !l.hasState && l.fallback != nil {
		l.SetState(*l.fallback)
	}
	if !l.hasState && len(l.mappings) > 0 {
		return NewConfigurationError("build", ErrNoState)
	}
	return bindScreen(&l.screen, screen)
}

func (l *States[S]) Buttons() []Button {
	if !l.hasState {
		return nil
	}
	return slices.Clone(l.mappings[l.current])
}
