package router_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SwiftStorm-Studio/igf/pkg/igf"
	"github.com/SwiftStorm-Studio/igf/pkg/igf/memory"
	"github.com/SwiftStorm-Studio/igf/pkg/igf/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	clicks, opens, closes int
}

func (r *recorder) OnClick(*igf.ClickEvent, *igf.Screen) { r.clicks++ }
func (r *recorder) OnOpen(*igf.OpenEvent, *igf.Screen)   { r.opens++ }
func (r *recorder) OnClose(*igf.CloseEvent, *igf.Screen) { r.closes++ }

func newTestRouter(policy router.PropagationPolicy) *router.Router {
	return router.New(router.Options{
		Propagation: policy,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func buildScreen(t *testing.T, actor igf.Actor, buttons ...igf.Button) *igf.Screen {
	t.Helper()
	host, _ := memory.NewHost()
	screen, err := igf.NewScreen(host, actor, igf.ScreenOptions{Title: "Test", Rows: 1}, igf.NewStatic(buttons...)).Build()
	require.NoError(t, err)
	return screen
}

func TestRouter_CreateKeyBeforeInit(t *testing.T) {
	r := newTestRouter(router.PropagateOpenClose)

	key, err := r.CreateKey("paginated", "page_change")
	require.Error(t, err)
	assert.True(t, igf.IsConfigurationError(err))
	assert.True(t, errors.Is(err, igf.ErrNotInitialized))
	assert.True(t, key.IsZero())
	assert.Panics(t, func() { r.MustCreateKey("x") })
}

func TestRouter_CreateKey(t *testing.T) {
	r := newTestRouter(router.PropagateOpenClose)
	require.NoError(t, r.Init("myplugin"))
	assert.True(t, r.Initialized())

	key, err := r.CreateKey("paginated", "page_change", "type")
	require.NoError(t, err)
	assert.Equal(t, "myplugin:paginated.page_change.type", key.String())

	_, err = r.CreateKey()
	assert.True(t, errors.Is(err, igf.ErrInvalidKey))

	_, err = r.CreateKey("Upper")
	assert.True(t, errors.Is(err, igf.ErrInvalidKey))
}

func TestRouter_InitOnce(t *testing.T) {
	r := newTestRouter(router.PropagateOpenClose)

	err := r.Init("Bad Namespace")
	require.Error(t, err)
	assert.False(t, r.Initialized(), "a rejected namespace does not initialize")

	require.NoError(t, r.Init("first"))

	err = r.Init("second")
	require.Error(t, err)
	assert.True(t, errors.Is(err, igf.ErrAlreadyInitialized))
	assert.Equal(t, "first", r.Namespace())
}

func TestRouter_ClickStopsPropagation(t *testing.T) {
	r := newTestRouter(router.PropagateOpenClose)
	global := &recorder{}
	r.SetGlobalListener(global)

	actor := &memory.Actor{Name: "Steve"}
	var clickedBy []igf.Actor
	screen := buildScreen(t, actor, igf.NewButton(3, igf.NewVisual("STONE", "x")).WithClick(func(a igf.Actor) {
		clickedBy = append(clickedBy, a)
	}))

	event := &igf.ClickEvent{Holder: screen, Slot: 3, Actor: actor}
	r.HandleClick(event)

	assert.True(t, event.Cancelled())
	require.Len(t, clickedBy, 1)
	assert.Equal(t, actor, clickedBy[0])
	assert.Equal(t, 0, global.clicks)
}

func TestRouter_ClickContinuesToListener(t *testing.T) {
	r := newTestRouter(router.PropagateOpenClose)
	global := &recorder{}
	r.SetGlobalListener(global)

	actor := &memory.Actor{Name: "Steve"}
	clicks := 0
	screen := buildScreen(t, actor, igf.NewButton(3, igf.NewVisual("STONE", "x")).
		WithClick(func(igf.Actor) { clicks++ }).
		WithPropagation(true))

	r.HandleClick(&igf.ClickEvent{Holder: screen, Slot: 3, Actor: actor})

	assert.Equal(t, 1, clicks)
	assert.Equal(t, 1, global.clicks)
}

func TestRouter_ClickWithoutButton(t *testing.T) {
	r := newTestRouter(router.PropagateOpenClose)
	global := &recorder{}
	r.SetGlobalListener(global)

	actor := &memory.Actor{Name: "Steve"}
	screen := buildScreen(t, actor, igf.NewButton(0, igf.NewVisual("STONE", "no callback")))

	empty := &igf.ClickEvent{Holder: screen, Slot: 5, Actor: actor}
	r.HandleClick(empty)
	assert.True(t, empty.Cancelled())
	assert.Equal(t, 0, global.clicks, "clicks on empty slots end silently")

	noCallback := &igf.ClickEvent{Holder: screen, Slot: 0, Actor: actor}
	r.HandleClick(noCallback)
	assert.True(t, noCallback.Cancelled())

	assert.Equal(t, 1, global.clicks)
}

func TestRouter_ButtonLiteralStopsPropagation(t *testing.T) {
	r := newTestRouter(router.PropagateAll)
	global := &recorder{}
	r.SetGlobalListener(global)

	actor := &memory.Actor{Name: "Steve"}
	clicks := 0
	screen := buildScreen(t, actor, igf.Button{
		Slot:    2,
		Visual:  igf.NewVisual("LEVER", "Toggle"),
		OnClick: func(igf.Actor) { clicks++ },
	})

	r.HandleClick(&igf.ClickEvent{Holder: screen, Slot: 2, Actor: actor})
	assert.Equal(t, 1, clicks)
	assert.Equal(t, 0, global.clicks)
}

func TestRouter_IgnoresForeignHolders(t *testing.T) {
	r := newTestRouter(router.PropagateAll)
	global := &recorder{}
	r.SetGlobalListener(global)

	actor := &memory.Actor{Name: "Steve"}
	var nilScreen *igf.Screen
	for _, holder := range []any{nil, "chest", memory.NewGrid(9, ""), nilScreen} {
		event := &igf.ClickEvent{Holder: holder, Slot: 0, Actor: actor}
		r.HandleClick(event)
		r.HandleOpen(&igf.OpenEvent{Holder: holder, Actor: actor})
		r.HandleClose(&igf.CloseEvent{Holder: holder, Actor: actor})
		assert.False(t, event.Cancelled())
	}

	assert.Equal(t, recorder{}, *global)
	assert.Equal(t, 0, r.OpenScreens())
}

func TestRouter_InstanceListener(t *testing.T) {
	tests := []struct {
		name       string
		policy     router.PropagationPolicy
		propagate  bool
		wantGlobal recorder
	}{
		{"no propagation", router.PropagateOpenClose, false, recorder{}},
		{"open close propagation", router.PropagateOpenClose, true, recorder{opens: 1, closes: 1}},
		{"propagate all", router.PropagateAll, true, recorder{clicks: 1, opens: 1, closes: 1}},
		{"policy without opt in", router.PropagateAll, false, recorder{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(tt.policy)
			global := &recorder{}
			r.SetGlobalListener(global)

			actor := &memory.Actor{Name: "Steve"}
			local := &recorder{}
			screen := buildScreen(t, actor, igf.NewButton(0, igf.NewVisual("STONE", "decoration"))).
				SetListener(local).
				SetPropagateToGlobal(tt.propagate)

			r.HandleOpen(&igf.OpenEvent{Holder: screen, Actor: actor})
			r.HandleClick(&igf.ClickEvent{Holder: screen, Slot: 0, Actor: actor})
			r.HandleClose(&igf.CloseEvent{Holder: screen, Actor: actor})

			assert.Equal(t, recorder{clicks: 1, opens: 1, closes: 1}, *local)
			assert.Equal(t, tt.wantGlobal, *global)
		})
	}
}

func TestRouter_PanickingCallback(t *testing.T) {
	r := newTestRouter(router.PropagateOpenClose)
	global := &recorder{}
	r.SetGlobalListener(global)

	actor := &memory.Actor{Name: "Steve"}
	screen := buildScreen(t, actor,
		igf.NewButton(1, igf.NewVisual("TNT", "boom")).WithClick(func(igf.Actor) {
			panic("boom")
		}),
		igf.NewButton(2, igf.NewVisual("STONE", "decoration")),
	)

	assert.NotPanics(t, func() {
		r.HandleClick(&igf.ClickEvent{Holder: screen, Slot: 1, Actor: actor})
	})
	assert.Equal(t, 1, global.clicks, "listener still runs after a failed callback")

	r.HandleClick(&igf.ClickEvent{Holder: screen, Slot: 2, Actor: actor})
	assert.Equal(t, 2, global.clicks)
}

func TestRouter_PanickingListener(t *testing.T) {
	r := newTestRouter(router.PropagateOpenClose)
	global := &recorder{}
	r.SetGlobalListener(global)

	actor := &memory.Actor{Name: "Steve"}
	screen := buildScreen(t, actor).
		SetListener(igf.ListenerFuncs{Open: func(*igf.OpenEvent, *igf.Screen) { panic("listener") }}).
		SetPropagateToGlobal(true)

	assert.NotPanics(t, func() {
		r.HandleOpen(&igf.OpenEvent{Holder: screen, Actor: actor})
	})
	assert.Equal(t, 1, global.opens)
}

func TestRouter_GlobalListenerReset(t *testing.T) {
	r := newTestRouter(router.PropagateOpenClose)
	assert.IsType(t, igf.NoopListener{}, r.GlobalListener())

	r.SetGlobalListener(&recorder{})
	assert.IsType(t, &recorder{}, r.GlobalListener())

	r.SetGlobalListener(nil)
	assert.IsType(t, igf.NoopListener{}, r.GlobalListener())
}

func TestRouter_Sessions(t *testing.T) {
	r := newTestRouter(router.PropagateOpenClose)
	steve := &memory.Actor{Name: "Steve"}
	alex := &memory.Actor{Name: "Alex"}

	menu := buildScreen(t, steve)
	shop := buildScreen(t, steve)
	other := buildScreen(t, alex)

	r.HandleOpen(&igf.OpenEvent{Holder: menu, Actor: steve})
	r.HandleOpen(&igf.OpenEvent{Holder: shop, Actor: steve})
	r.HandleOpen(&igf.OpenEvent{Holder: other, Actor: alex})

	assert.Equal(t, 3, r.OpenScreens())
	assert.Same(t, shop, r.Current(steve))
	assert.Same(t, other, r.Current(alex))
	assert.Equal(t, 2, r.Session(steve).Len())

	found, ok := r.Screen(menu.ID())
	require.True(t, ok)
	assert.Same(t, menu, found)

	r.HandleClose(&igf.CloseEvent{Holder: shop, Actor: steve})
	assert.Same(t, menu, r.Current(steve))
	assert.False(t, shop.Built(), "closed screens are released")
	assert.Nil(t, shop.Grid())

	r.HandleClose(&igf.CloseEvent{Holder: menu, Actor: steve})
	assert.Nil(t, r.Current(steve))
	assert.Nil(t, r.Session(steve))
	_, ok = r.Screen(menu.ID())
	assert.False(t, ok)

	r.Shutdown()
	assert.Equal(t, 0, r.OpenScreens())
	assert.False(t, other.Built())
	assert.Nil(t, r.Current(alex))
}

func TestRouter_ClickReleasedScreen(t *testing.T) {
	r := newTestRouter(router.PropagateOpenClose)
	actor := &memory.Actor{Name: "Steve"}
	clicks := 0
	screen := buildScreen(t, actor, igf.NewButton(0, igf.NewVisual("STONE", "")).WithClick(func(igf.Actor) { clicks++ }))

	r.HandleOpen(&igf.OpenEvent{Holder: screen, Actor: actor})
	r.HandleClose(&igf.CloseEvent{Holder: screen, Actor: actor})
	r.HandleClick(&igf.ClickEvent{Holder: screen, Slot: 0, Actor: actor})

	assert.Equal(t, 0, clicks)
}

func TestRouter_PaginatedNavigation(t *testing.T) {
	r := newTestRouter(router.PropagateOpenClose)
	actor := &memory.Actor{Name: "Steve"}
	host, provider := memory.NewHost()

	items := make([]igf.Button, 20)
	for i := range items {
		items[i] = igf.NewButton(0, igf.NewVisual("PAPER", ""))
	}
	pages := igf.NewPaginated().
		SetSlotPositions([]int{0, 1, 2, 3, 4, 5, 6, 7, 8}).
		SetPageItems(items).
		SetPageButtons(
			igf.NewButton(9, igf.NewVisual("ARROW", "Previous")),
			igf.NewButton(17, igf.NewVisual("ARROW", "Next")),
		)
	screen, err := igf.NewScreen(host, actor, igf.ScreenOptions{Rows: 2}, pages).Build()
	require.NoError(t, err)

	r.HandleOpen(&igf.OpenEvent{Holder: screen, Actor: actor})
	r.HandleClick(&igf.ClickEvent{Holder: screen, Slot: 17, Actor: actor})
	r.HandleClick(&igf.ClickEvent{Holder: screen, Slot: 17, Actor: actor})
	assert.Equal(t, 2, pages.Page())

	// The next button is gone on the last page.
	r.HandleClick(&igf.ClickEvent{Holder: screen, Slot: 17, Actor: actor})
	assert.Equal(t, 2, pages.Page())
	assert.Nil(t, provider.Last().Item(17))

	r.HandleClick(&igf.ClickEvent{Holder: screen, Slot: 9, Actor: actor})
	assert.Equal(t, 1, pages.Page())
}

func TestStack(t *testing.T) {
	actor := &memory.Actor{Name: "Steve"}
	a := buildScreen(t, actor)
	b := buildScreen(t, actor)

	s := router.NewStack()
	assert.True(t, s.IsEmpty())
	assert.Nil(t, s.Pop())
	assert.Nil(t, s.Peek())

	s.Push(a)
	s.Push(b)
	s.Push(a)
	assert.Equal(t, 2, s.Len())
	assert.Same(t, a, s.Peek())

	assert.True(t, s.Remove(a))
	assert.False(t, s.Remove(a))
	assert.Same(t, b, s.Pop())
	assert.True(t, s.IsEmpty())

	s.Push(a)
	s.Clear()
	assert.Equal(t, 0, s.Len())
}
