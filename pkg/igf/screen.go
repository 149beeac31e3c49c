package igf

import (
	"fmt"
	"slices"

	"github.com/SwiftStorm-Studio/igf/pkg/igf/constants"
	"github.com/SwiftStorm-Studio/igf/pkg/igf/internal"
	"github.com/google/uuid"
)

// Layout decides which buttons a Screen shows. Static, Paginated and
// States are the built-in layouts.
//
// A layout re-renders the screen it was prepared for, so it can serve only
// one screen. Preparing it for a second screen fails with ErrLayoutInUse.
type Layout interface {
	// Prepare is called by Build after the grid is allocated and before the
	// first render. Layouts keep the screen to re-render it on state changes.
	Prepare(screen *Screen) error
	// Buttons returns the buttons to place for the layout's current state.
	Buttons() []Button
}

// bindScreen records the screen a layout renders into. Rebuilding the same
// screen is allowed.
func bindScreen(bound **Screen, screen *Screen) error {
	if *bound != nil && *bound != screen {
		return NewConfigurationError("prepare", ErrLayoutInUse)
	}
	*bound = screen
	return nil
}

// ScreenOptions sets the grid a Screen allocates.
type ScreenOptions struct {
	Title string
	Rows  int // 1 to 6 rows of 9 slots
}

// Screen is a grid-based inventory interface bound to one actor.
//
// A Screen is built once with Build, after which its layout may re-render
// it in response to clicks. Screens are owned by the actor's session and
// must only be used from the host's event thread.
type Screen struct {
	id     uuid.UUID
	host   Host
	actor  Actor
	opts   ScreenOptions
	layout Layout

	grid       Grid
	background *Visual
	placed     []Button
	slots      map[int]int

	listener          Listener
	propagateToGlobal bool

	built   bool
	renders int
}

// NewScreen creates an unbuilt screen for actor that renders layout.
func NewScreen(host Host, actor Actor, opts ScreenOptions, layout Layout) *Screen {
	return &Screen{
		id:     uuid.New(),
		host:   host,
		actor:  actor,
		opts:   opts,
		layout: layout,
	}
}

// SetTitle changes the title used by the next Build.
func (s *Screen) SetTitle(title string) *Screen {
	s.opts.Title = title
	return s
}

// SetRows changes the grid height used by the next Build.
func (s *Screen) SetRows(rows int) *Screen {
	s.opts.Rows = rows
	return s
}

// SetBackground fills every slot without a button with v.
func (s *Screen) SetBackground(v Visual) *Screen {
	s.background = &v
	return s
}

// ClearBackground removes the background.
func (s *Screen) ClearBackground() *Screen {
	s.background = nil
	return s
}

// SetListener overrides the router's global listener for this screen.
// Passing nil restores the global listener.
func (s *Screen) SetListener(l Listener) *Screen {
	s.listener = l
	return s
}

// SetPropagateToGlobal makes the router also notify the global listener
// after this screen's own listener handled an event.
func (s *Screen) SetPropagateToGlobal(propagate bool) *Screen {
	s.propagateToGlobal = propagate
	return s
}

// Build allocates the grid, prepares the layout and renders it.
// Building again replaces the grid.
func (s *Screen) Build() (*Screen, error) {
	if err := s.host.validate(); err != nil {
		return s, err
	}
	if s.layout == nil {
		return s, NewConfigurationError("build", ErrNoLayout)
	}
	if err := s.create(); err != nil {
		return s, err
	}
	if err := s.layout.Prepare(s); err != nil {
		s.grid = nil
		return s, err
	}

	s.built = true
	s.Render()
	return s, nil
}

func (s *Screen) create() error {
	if s.opts.Rows < constants.MinRows || s.opts.Rows > constants.MaxRows {
		return NewConfigurationError("build", fmt.Errorf("%w: %d", ErrInvalidRows, s.opts.Rows))
	}

	grid, err := s.host.Grids.Allocate(constants.Capacity(s.opts.Rows), s.opts.Title)
	if err != nil {
		return fmt.Errorf("igf: allocate grid: %w", err)
	}

	s.grid = grid
	s.setItems(nil)
	return nil
}

// Render redraws the grid from the layout's current buttons and refreshes
// the actor's view. It does nothing before Build.
func (s *Screen) Render() {
	if s.grid == nil {
		internal.GetInternalLogger().Debug("Render skipped on unbuilt screen", "screen", s.id)
		return
	}

	s.setItems(s.layout.Buttons())

	s.grid.Clear()
	s.applyBackground()
	for _, b := range s.placed {
		s.place(b)
	}

	s.grid.RefreshView(s.actor)
	s.renders++
}

func (s *Screen) applyBackground() {
	if s.background == nil || s.grid == nil {
		return
	}

	item := s.host.Items.Build(*s.background, s.background.Data)
	for i := 0; i < s.grid.Size(); i++ {
		if _, occupied := s.slots[i]; occupied {
			continue
		}
		if err := s.grid.SetSlot(i, item); err != nil {
			internal.GetInternalLogger().Warn("Failed to place background", "screen", s.id, "slot", i, "error", err)
		}
	}
}

func (s *Screen) place(b Button) {
	if b.Slot < 0 || b.Slot >= s.grid.Size() {
		internal.GetInternalLogger().Warn("Button slot outside grid", "screen", s.id, "slot", b.Slot, "size", s.grid.Size())
		return
	}
	if err := s.grid.SetSlot(b.Slot, b.ToItem(s.host.Items)); err != nil {
		internal.GetInternalLogger().Warn("Failed to place button", "screen", s.id, "slot", b.Slot, "error", err)
	}
}

// setItems replaces the buttons the router resolves clicks against.
// It does not touch the grid.
func (s *Screen) setItems(buttons []Button) {
	s.placed = slices.Clone(buttons)
	s.slots = make(map[int]int, len(buttons))
	for i, b := range s.placed {
		s.slots[b.Slot] = i
	}
}

// ButtonAt returns the last button placed at slot.
func (s *Screen) ButtonAt(slot int) (Button, bool) {
	i, ok := s.slots[slot]
	if !ok {
		return Button{}, false
	}
	return s.placed[i], true
}

// Buttons returns the buttons of the last render.
func (s *Screen) Buttons() []Button {
	return slices.Clone(s.placed)
}

// Release drops the grid and buttons once the actor's session ends.
// The screen can be built again afterwards.
func (s *Screen) Release() {
	s.grid = nil
	s.placed = nil
	s.slots = nil
	s.built = false
}

func (s *Screen) ID() uuid.UUID            { return s.id }
func (s *Screen) Actor() Actor             { return s.actor }
func (s *Screen) Title() string            { return s.opts.Title }
func (s *Screen) Rows() int                { return s.opts.Rows }
func (s *Screen) Grid() Grid               { return s.grid }
func (s *Screen) Layout() Layout           { return s.layout }
func (s *Screen) Listener() Listener       { return s.listener }
func (s *Screen) PropagatesToGlobal() bool { return s.propagateToGlobal }
func (s *Screen) Built() bool              { return s.built }

// Renders returns how many times the grid has been drawn.
func (s *Screen) Renders() int { return s.renders }

// Background returns the background visual, if set.
func (s *Screen) Background() (Visual, bool) {
	if s.background == nil {
		return Visual{}, false
	}
	return *s.background, true
}
