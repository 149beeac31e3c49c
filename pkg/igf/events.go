package igf

// ClickType represents the kind of click the host reported.
type ClickType int

const (
	ClickLeft        ClickType = iota // Primary click
	ClickRight                        // Secondary click
	ClickMiddle                       // Middle click / pick block
	ClickShiftLeft                    // Shift + primary
	ClickShiftRight                   // Shift + secondary
	ClickDouble                       // Double click
	ClickNumberKey                    // Hotbar number key
	ClickDrop                         // Drop key
)

// ClickEvent is a click reported by the host on some inventory.
// Holder is the owner of the clicked inventory; it is a *Screen only
// for inventories built by this library.
type ClickEvent struct {
	Holder any
	Slot   int
	Click  ClickType
	Actor  Actor

	cancelled bool
}

// Cancel stops the host from applying its default click behaviour.
func (e *ClickEvent) Cancel() {
	e.cancelled = true
}

// Cancelled reports whether Cancel was called.
func (e *ClickEvent) Cancelled() bool {
	return e.cancelled
}

// OpenEvent is raised when an actor opens an inventory.
type OpenEvent struct {
	Holder any
	Actor  Actor
}

// CloseEvent is raised when an actor closes an inventory.
type CloseEvent struct {
	Holder any
	Actor  Actor
}
