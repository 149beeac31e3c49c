package igf_test

import (
	"fmt"
	"testing"

	"github.com/SwiftStorm-Studio/igf/pkg/igf"
	"github.com/SwiftStorm-Studio/igf/pkg/igf/memory"
	"github.com/stretchr/testify/require"
)

func newItems(n int) []igf.Button {
	items := make([]igf.Button, n)
	for i := range items {
		items[i] = igf.NewButton(0, igf.NewVisual("STONE", fmt.Sprintf("item-%d", i)))
	}
	return items
}

type fixture struct {
	host     igf.Host
	provider *memory.Provider
	actor    *memory.Actor
}

func newFixture() *fixture {
	host, provider := memory.NewHost()
	return &fixture{
		host:     host,
		provider: provider,
		actor:    &memory.Actor{Name: "Steve"},
	}
}

func (f *fixture) build(t *testing.T, rows int, layout igf.Layout) (*igf.Screen, *memory.Grid) {
	t.Helper()
	screen, err := igf.NewScreen(f.host, f.actor, igf.ScreenOptions{Title: "Test", Rows: rows}, layout).Build()
	require.NoError(t, err)
	return screen, f.provider.Last()
}

func nameAt(g *memory.Grid, slot int) string {
	item := g.Item(slot)
	if item == nil {
		return ""
	}
	return item.Name
}
