package igf

// Item is an opaque, host-specific item placed into a grid slot.
type Item any

// Actor is the player viewing and clicking a screen.
type Actor interface {
	ID() string
}

// Grid is a fixed-size inventory owned by a single Screen.
type Grid interface {
	Size() int
	SetSlot(index int, item Item) error
	Clear()
	// RefreshView pushes the grid contents to the actor's client.
	RefreshView(actor Actor)
}

// GridProvider allocates grids on the host.
type GridProvider interface {
	Allocate(capacity int, title string) (Grid, error)
}

// ItemBuilder materialises a visual token into a host item.
// data is the complete mapping for the item, already merged with the
// visual's own entries, and must be applied in order.
type ItemBuilder interface {
	Build(visual Visual, data []DataEntry) Item
}

// Host bundles the collaborators a Screen needs.
type Host struct {
	Grids GridProvider
	Items ItemBuilder
}

func (h Host) validate() error {
	if h.Grids == nil {
		return NewConfigurationError("build", ErrNoGridProvider)
	}
	if h.Items == nil {
		return NewConfigurationError("build", ErrNoItemBuilder)
	}
	return nil
}
