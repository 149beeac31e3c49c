package igf

import "slices"

// Visual is the appearance of a grid item: a host material name, an optional
// display name and data the material always carries.
type Visual struct {
	Material string
	Name     string
	Data     []DataEntry
}

// NewVisual creates a visual token for material with a display name.
func NewVisual(material, name string) Visual {
	return Visual{Material: material, Name: name}
}

// WithData returns a copy of v carrying d under key.
func (v Visual) WithData(key Key, d Data) Visual {
	v.Data = putEntry(slices.Clone(v.Data), key, d)
	return v
}

// IsZero reports whether no material is set.
func (v Visual) IsZero() bool {
	return v.Material == ""
}

// ClickFunc is invoked with the actor who clicked a button.
type ClickFunc func(actor Actor)

// Button binds a grid slot to a visual, optional data and an optional click action.
//
// A fired OnClick ends dispatch for the click unless Propagate is set, so
// the zero value stops propagation.
type Button struct {
	Slot      int
	Visual    Visual
	Data      []DataEntry
	OnClick   ClickFunc
	Propagate bool
}

// NewButton creates a button at slot that stops propagation after its callback.
func NewButton(slot int, visual Visual) Button {
	return Button{
		Slot:   slot,
		Visual: visual,
	}
}

// WithData returns a copy of b with d stored under key.
// An existing entry for key is replaced in place.
func (b Button) WithData(key Key, d Data) Button {
	b.Data = putEntry(slices.Clone(b.Data), key, d)
	return b
}

// WithClick returns a copy of b with its click action replaced.
func (b Button) WithClick(fn ClickFunc) Button {
	b.OnClick = fn
	return b
}

// WithPropagation returns a copy of b whose callback lets the click
// continue to listeners when propagate is true.
func (b Button) WithPropagation(propagate bool) Button {
	b.Propagate = propagate
	return b
}

// At returns a copy of b placed at slot.
func (b Button) At(slot int) Button {
	b.Slot = slot
	return b
}

// SetClick rebinds the click action in place.
func (b *Button) SetClick(fn ClickFunc) *Button {
	b.OnClick = fn
	return b
}

// ItemData returns the data the built item carries: the visual's own data
// followed by the button's, with the button winning on key collisions.
func (b Button) ItemData() []DataEntry {
	return MergeData(b.Visual.Data, b.Data)
}

// ToItem builds the host item for this button.
func (b Button) ToItem(builder ItemBuilder) Item {
	return builder.Build(b.Visual, b.ItemData())
}
