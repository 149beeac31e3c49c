// Package memory provides in-memory implementations of the igf host
// collaborators. They back the framework's tests and let screens run
// headless, e.g. in plugin unit tests.
package memory

import (
	"fmt"
	"slices"

	"github.com/SwiftStorm-Studio/igf/pkg/igf"
)

// Actor is a player identified by name.
type Actor struct {
	Name string
}

func (a *Actor) ID() string { return a.Name }

// Grid is a fixed-size slot array that records how it was used.
type Grid struct {
	Title string
	Slots []igf.Item

	Clears    int
	Refreshes map[string]int
}

// NewGrid creates an empty grid with capacity slots.
func NewGrid(capacity int, title string) *Grid {
	return &Grid{
		Title:     title,
		Slots:     make([]igf.Item, capacity),
		Refreshes: make(map[string]int),
	}
}

func (g *Grid) Size() int { return len(g.Slots) }

func (g *Grid) SetSlot(index int, item igf.Item) error {
	if index < 0 || index >= len(g.Slots) {
		return fmt.Errorf("slot index %d out of bounds. maximum index is %d", index, len(g.Slots)-1)
	}
	g.Slots[index] = item
	return nil
}

func (g *Grid) Clear() {
	clear(g.Slots)
	g.Clears++
}

func (g *Grid) RefreshView(actor igf.Actor) {
	if actor == nil {
		return
	}
	g.Refreshes[actor.ID()]++
}

// Item returns the item at index, or nil when empty or out of range.
func (g *Grid) Item(index int) *Item {
	if index < 0 || index >= len(g.Slots) {
		return nil
	}
	item, _ := g.Slots[index].(*Item)
	return item
}

// Occupied returns the indices of non-empty slots in ascending order.
func (g *Grid) Occupied() []int {
	var occupied []int
	for i, item := range g.Slots {
		if item != nil {
			occupied = append(occupied, i)
		}
	}
	return occupied
}

// Provider allocates Grids and keeps every grid it handed out.
type Provider struct {
	Grids []*Grid
}

func (p *Provider) Allocate(capacity int, title string) (igf.Grid, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("invalid grid capacity %d", capacity)
	}
	g := NewGrid(capacity, title)
	p.Grids = append(p.Grids, g)
	return g, nil
}

// Last returns the most recently allocated grid.
func (p *Provider) Last() *Grid {
	if len(p.Grids) == 0 {
		return nil
	}
	return p.Grids[len(p.Grids)-1]
}

// Item is a built item: its visual and its persistent data.
type Item struct {
	Material string
	Name     string
	Data     *Container
}

// ItemBuilder builds *Item values.
type ItemBuilder struct{}

func (ItemBuilder) Build(visual igf.Visual, data []igf.DataEntry) igf.Item {
	item := &Item{
		Material: visual.Material,
		Name:     visual.Name,
		Data:     NewContainer(),
	}
	for _, e := range data {
		// Values built through igf.NewData already match their type.
		_ = e.Data.SetTo(item.Data, e.Key)
	}
	return item
}

// Container is a typed key-value store.
type Container struct {
	values map[igf.Key]igf.Data
	order  []igf.Key
}

func NewContainer() *Container {
	return &Container{values: make(map[igf.Key]igf.Data)}
}

func (c *Container) Get(key igf.Key, t igf.DataType) (any, bool) {
	d, ok := c.values[key]
	if !ok || d.Type != t {
		return nil, false
	}
	return d.Value, true
}

func (c *Container) Set(key igf.Key, t igf.DataType, value any) error {
	d, err := igf.NewData(t, value)
	if err != nil {
		return err
	}
	if _, ok := c.values[key]; !ok {
		c.order = append(c.order, key)
	}
	c.values[key] = d
	return nil
}

// Keys returns the stored keys in insertion order.
func (c *Container) Keys() []igf.Key {
	return slices.Clone(c.order)
}

// Len returns the number of stored keys.
func (c *Container) Len() int {
	return len(c.values)
}

// NewHost returns a host backed by a fresh Provider.
func NewHost() (igf.Host, *Provider) {
	p := &Provider{}
	return igf.Host{Grids: p, Items: ItemBuilder{}}, p
}
