// Package layout loads screen definitions from TOML files, so that titles,
// sizes, slot positions and navigation buttons can be changed without
// recompiling the plugin.
//
//	[screens.shop]
//	title = "Shop"
//	rows = 6
//	kind = "paginated"
//	slots = [10, 11, 12, 13, 14, 15, 16]
//	background = { material = "BLACK_STAINED_GLASS_PANE", name = " " }
//	previous = { slot = 45, material = "ARROW" }
//	next = { slot = 53, material = "ARROW" }
//	empty = { slot = 22, material = "BARRIER" }
//
//	[[screens.shop.buttons]]
//	slot = 49
//	material = "BOOK"
//	name = "How to buy"
//
// Navigation and empty buttons without a name get a localized default label.
package layout

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/SwiftStorm-Studio/igf/pkg/igf"
	"github.com/SwiftStorm-Studio/igf/pkg/igf/constants"
	"github.com/SwiftStorm-Studio/igf/pkg/igf/i18n"
	"github.com/SwiftStorm-Studio/igf/pkg/igf/internal"
)

// Screen kinds.
const (
	KindStatic    = "static"
	KindPaginated = "paginated"
)

var (
	ErrUnknownScreen = errors.New("unknown screen")
	ErrUnknownKind   = errors.New("unknown screen kind")
)

// File is a parsed definitions file.
type File struct {
	Screens map[string]Definition `toml:"screens"`
}

// VisualDef is a material with an optional display name.
type VisualDef struct {
	Material string `toml:"material"`
	Name     string `toml:"name"`
}

// ButtonDef is a button without behaviour; callbacks are bound in code.
type ButtonDef struct {
	Slot     int    `toml:"slot"`
	Material string `toml:"material"`
	Name     string `toml:"name"`
}

// Definition describes one screen.
type Definition struct {
	Title        string      `toml:"title"`
	Rows         int         `toml:"rows"`
	Kind         string      `toml:"kind"`
	Background   *VisualDef  `toml:"background"`
	Slots        []int       `toml:"slots"`
	ItemsPerPage int         `toml:"items_per_page"`
	Previous     *ButtonDef  `toml:"previous"`
	Next         *ButtonDef  `toml:"next"`
	Empty        *ButtonDef  `toml:"empty"`
	Buttons      []ButtonDef `toml:"buttons"`
}

// Load reads and validates a definitions file.
func Load(path string) (*File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("layout: decode %s: %w", path, err)
	}
	return finish(&f, md, path)
}

// Parse reads and validates definitions from a string.
func Parse(data string) (*File, error) {
	var f File
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("layout: decode: %w", err)
	}
	return finish(&f, md, "<string>")
}

func finish(f *File, md toml.MetaData, source string) (*File, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		internal.GetInternalLogger().Warn("Unknown keys in screen definitions",
			"source", source, "keys", strings.Join(keys, ", "))
	}

	for _, id := range f.IDs() {
		def := f.Screens[id]
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("layout: screen %q: %w", id, err)
		}
	}
	return f, nil
}

// IDs returns the screen IDs in sorted order.
func (f *File) IDs() []string {
	ids := make([]string, 0, len(f.Screens))
	for id := range f.Screens {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Screen returns the definition with the given ID.
func (f *File) Screen(id string) (Definition, error) {
	def, ok := f.Screens[id]
	if !ok {
		return Definition{}, fmt.Errorf("layout: %w: %q", ErrUnknownScreen, id)
	}
	return def, nil
}

// Validate checks the parts of a definition that do not depend on runtime items.
func (d Definition) Validate() error {
	if d.Rows < constants.MinRows || d.Rows > constants.MaxRows {
		return igf.NewConfigurationError("layout", fmt.Errorf("%w: %d", igf.ErrInvalidRows, d.Rows))
	}

	capacity := constants.Capacity(d.Rows)
	for _, slot := range d.allSlots() {
		if slot < 0 || slot >= capacity {
			return igf.NewConfigurationError("layout", fmt.Errorf("slot %d outside %d-slot grid", slot, capacity))
		}
	}

	switch d.kind() {
	case KindStatic:
	case KindPaginated:
		if d.ItemsPerPage < 0 {
			return igf.NewConfigurationError("layout", fmt.Errorf("%w: %d", igf.ErrInvalidItemsPerPage, d.ItemsPerPage))
		}
	default:
		return igf.NewConfigurationError("layout", fmt.Errorf("%w: %q", ErrUnknownKind, d.Kind))
	}
	return nil
}

func (d Definition) kind() string {
	if d.Kind == "" {
		return KindStatic
	}
	return strings.ToLower(d.Kind)
}

func (d Definition) allSlots() []int {
	slots := append([]int(nil), d.Slots...)
	for _, b := range []*ButtonDef{d.Previous, d.Next, d.Empty} {
		if b != nil {
			slots = append(slots, b.Slot)
		}
	}
	for _, b := range d.Buttons {
		slots = append(slots, b.Slot)
	}
	return slots
}

// Options returns the grid options of the screen.
func (d Definition) Options() igf.ScreenOptions {
	return igf.ScreenOptions{Title: d.Title, Rows: d.Rows}
}

// Decorations returns the fixed buttons of the screen.
func (d Definition) Decorations() []igf.Button {
	buttons := make([]igf.Button, 0, len(d.Buttons))
	for _, b := range d.Buttons {
		buttons = append(buttons, b.button(""))
	}
	return buttons
}

func (b ButtonDef) button(fallbackName string) igf.Button {
	name := b.Name
	if name == "" {
		name = fallbackName
	}
	return igf.NewButton(b.Slot, igf.NewVisual(b.Material, name))
}

// Builder creates screens from definitions.
type Builder struct {
	Host    igf.Host
	Catalog *i18n.Catalog
}

// NewBuilder creates a builder with the built-in translations.
func NewBuilder(host igf.Host) (*Builder, error) {
	catalog, err := i18n.NewCatalog()
	if err != nil {
		return nil, err
	}
	return &Builder{Host: host, Catalog: catalog}, nil
}

// Screen creates an unbuilt screen for actor from def. For paginated screens
// items are the paginated buttons; for static screens they are shown after
// the definition's own buttons. locale selects default labels.
//
// The returned layout is a *igf.Static or *igf.Paginated.
func (b *Builder) Screen(def Definition, actor igf.Actor, locale string, items []igf.Button) (*igf.Screen, igf.Layout, error) {
	if err := def.Validate(); err != nil {
		return nil, nil, err
	}

	var l igf.Layout
	switch def.kind() {
	case KindPaginated:
		l = b.paginated(def, locale, items)
	default:
		l = igf.NewStatic(append(def.Decorations(), items...)...)
	}

	screen := igf.NewScreen(b.Host, actor, def.Options(), l)
	if def.Background != nil {
		screen.SetBackground(igf.NewVisual(def.Background.Material, def.Background.Name))
	}
	return screen, l, nil
}

func (b *Builder) paginated(def Definition, locale string, items []igf.Button) *igf.Paginated {
	labels := b.labels(locale)

	p := igf.NewPaginated().
		SetSlotPositions(def.Slots).
		SetStaticButtons(def.Decorations()...)

	switch {
	case def.ItemsPerPage > 0:
		p.SetItemsPerPage(def.ItemsPerPage)
	case len(def.Slots) > 0:
		p.SetItemsPerPage(len(def.Slots))
	}
	p.SetPageItems(items)

	if def.Previous != nil && def.Next != nil {
		p.SetPageButtons(def.Previous.button(labels.PreviousPage), def.Next.button(labels.NextPage))
	}
	if def.Empty != nil {
		p.SetEmptyButton(def.Empty.button(labels.EmptyPage))
	}
	return p
}

func (b *Builder) labels(locale string) i18n.Labels {
	if b.Catalog == nil {
		return i18n.Labels{}
	}
	return b.Catalog.Labels(locale)
}
