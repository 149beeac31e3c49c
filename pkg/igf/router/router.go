package router

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/SwiftStorm-Studio/igf/pkg/igf"
	"github.com/SwiftStorm-Studio/igf/pkg/igf/constants"
	"github.com/SwiftStorm-Studio/igf/pkg/igf/internal"
	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// PropagationPolicy decides which events reach the global listener after a
// screen's own listener handled them, for screens with PropagatesToGlobal set.
type PropagationPolicy int

const (
	// PropagateOpenClose forwards open and close events only. Clicks already
	// have their own short-circuit through Button.Propagate.
	PropagateOpenClose PropagationPolicy = iota
	// PropagateAll forwards clicks as well.
	PropagateAll
)

// Options configures a Router.
type Options struct {
	Propagation PropagationPolicy
	Logger      *slog.Logger // Defaults to the framework's internal logger
}

type listenerRef struct {
	listener igf.Listener
}

// Router dispatches host inventory events to screens.
//
// One Router is created at startup, initialised with the plugin's namespace
// and handed to the code that receives host events. Handle* methods must be
// called from the host's event thread.
type Router struct {
	namespace   *atomic.String
	initialized *atomic.Bool
	global      *atomic.Pointer[listenerRef]

	policy   PropagationPolicy
	logger   *slog.Logger
	sessions map[string]*Stack
	screens  map[uuid.UUID]*igf.Screen
}

// New creates an uninitialised Router with a no-op global listener.
func New(opts Options) *Router {
	logger := opts.Logger
	if logger == nil {
		logger = internal.GetInternalLogger()
	}

	r := &Router{
		namespace:   atomic.NewString(""),
		initialized: atomic.NewBool(false),
		global:      atomic.NewPointer(&listenerRef{listener: igf.NoopListener{}}),
		policy:      opts.Propagation,
		logger:      logger,
		sessions:    make(map[string]*Stack),
		screens:     make(map[uuid.UUID]*igf.Screen),
	}
	return r
}

// Init sets the namespace used for every key the router creates.
// It succeeds exactly once.
func (r *Router) Init(namespace string) error {
	if err := igf.ValidateNamespace(namespace); err != nil {
		return err
	}

	if !r.initialized.CompareAndSwap(false, true) {
		r.logger.Warn("Router initialized twice, keeping first namespace",
			"namespace", r.namespace.Load(), "ignored", namespace)
		return igf.NewConfigurationError("init", igf.ErrAlreadyInitialized)
	}

	r.namespace.Store(namespace)
	return nil
}

// Initialized reports whether Init succeeded.
func (r *Router) Initialized() bool {
	return r.initialized.Load()
}

// Namespace returns the namespace set by Init, or "" before that.
func (r *Router) Namespace() string {
	return r.namespace.Load()
}

// CreateKey joins parts with "." into a key under the router's namespace.
func (r *Router) CreateKey(parts ...string) (igf.Key, error) {
	if !r.initialized.Load() {
		return igf.Key{}, igf.NewConfigurationError("create_key", igf.ErrNotInitialized)
	}
	if len(parts) == 0 {
		return igf.Key{}, igf.NewConfigurationError("create_key", fmt.Errorf("%w: empty name", igf.ErrInvalidKey))
	}
	return igf.NewKey(r.namespace.Load(), strings.Join(parts, constants.KeyPartSeparator))
}

// MustCreateKey is like CreateKey but panics on error. Intended for
// package-level key variables initialised after Init.
func (r *Router) MustCreateKey(parts ...string) igf.Key {
	key, err := r.CreateKey(parts...)
	if err != nil {
		panic(err)
	}
	return key
}

// SetGlobalListener sets the listener used by screens without their own.
// Passing nil restores the no-op listener.
func (r *Router) SetGlobalListener(l igf.Listener) {
	if l == nil {
		l = igf.NoopListener{}
	}
	r.global.Store(&listenerRef{listener: l})
}

// GlobalListener returns the current global listener.
func (r *Router) GlobalListener() igf.Listener {
	return r.global.Load().listener
}

// Policy returns the router's propagation policy.
func (r *Router) Policy() PropagationPolicy {
	return r.policy
}

func screenOf(holder any) (*igf.Screen, bool) {
	screen, ok := holder.(*igf.Screen)
	return screen, ok && screen != nil
}

// HandleClick dispatches a click. Clicks on inventories that are not screens
// are ignored. Clicks on screens are always cancelled. A click on a slot
// without a button ends there; otherwise the button's callback runs first
// and, unless it stops propagation, listeners follow.
func (r *Router) HandleClick(event *igf.ClickEvent) {
	screen, ok := screenOf(event.Holder)
	if !ok {
		return
	}

	event.Cancel()

	button, found := screen.ButtonAt(event.Slot)
	if !found {
		return
	}
	if button.OnClick != nil {
		if r.runClick(screen, event, button) && !button.Propagate {
			return
		}
	}

	r.dispatch(screen, r.policy == PropagateAll, func(l igf.Listener) {
		l.OnClick(event, screen)
	})
}

// HandleOpen dispatches an open event and records the screen in the actor's session.
func (r *Router) HandleOpen(event *igf.OpenEvent) {
	screen, ok := screenOf(event.Holder)
	if !ok {
		return
	}

	r.track(event.Actor, screen)

	r.dispatch(screen, true, func(l igf.Listener) {
		l.OnOpen(event, screen)
	})
}

// HandleClose dispatches a close event, then removes the screen from the
// actor's session and releases it.
func (r *Router) HandleClose(event *igf.CloseEvent) {
	screen, ok := screenOf(event.Holder)
	if !ok {
		return
	}

	r.dispatch(screen, true, func(l igf.Listener) {
		l.OnClose(event, screen)
	})

	r.untrack(event.Actor, screen)
}

// runClick invokes the button's callback and reports whether it completed.
func (r *Router) runClick(screen *igf.Screen, event *igf.ClickEvent, button igf.Button) (ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Button callback panicked",
				"screen", screen.ID(), "slot", event.Slot, "panic", rec)
			ok = false
		}
	}()

	button.OnClick(event.Actor)
	return true
}

// dispatch runs the screen's listener, or the global listener when the screen
// has none. With propagate allowed and the screen opted in, the global
// listener also runs after the screen's listener.
func (r *Router) dispatch(screen *igf.Screen, propagate bool, call func(igf.Listener)) {
	global := r.GlobalListener()

	local := screen.Listener()
	if local == nil {
		r.safeCall(screen, global, call)
		return
	}

	r.safeCall(screen, local, call)
	if propagate && screen.PropagatesToGlobal() {
		r.safeCall(screen, global, call)
	}
}

func (r *Router) safeCall(screen *igf.Screen, l igf.Listener, call func(igf.Listener)) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Listener panicked", "screen", screen.ID(), "panic", rec)
		}
	}()

	call(l)
}

func actorID(actor igf.Actor) string {
	if actor == nil {
		return ""
	}
	return actor.ID()
}

func (r *Router) track(actor igf.Actor, screen *igf.Screen) {
	id := actorID(actor)
	stack, ok := r.sessions[id]
	if !ok {
		stack = NewStack()
		r.sessions[id] = stack
	}
	stack.Push(screen)
	r.screens[screen.ID()] = screen
}

func (r *Router) untrack(actor igf.Actor, screen *igf.Screen) {
	id := actorID(actor)
	if stack, ok := r.sessions[id]; ok {
		stack.Remove(screen)
		if stack.IsEmpty() {
			delete(r.sessions, id)
		}
	}
	delete(r.screens, screen.ID())
	screen.Release()
}

// Current returns the screen most recently opened by actor that is still open.
func (r *Router) Current(actor igf.Actor) *igf.Screen {
	stack, ok := r.sessions[actorID(actor)]
	if !ok {
		return nil
	}
	return stack.Peek()
}

// Session returns the stack of screens actor has open, or nil.
func (r *Router) Session(actor igf.Actor) *Stack {
	return r.sessions[actorID(actor)]
}

// Screen looks up an open screen by ID.
func (r *Router) Screen(id uuid.UUID) (*igf.Screen, bool) {
	screen, ok := r.screens[id]
	return screen, ok
}

// OpenScreens returns the number of screens currently tracked.
func (r *Router) OpenScreens() int {
	return len(r.screens)
}

// Shutdown releases every open screen, e.g. when the plugin is disabled.
// Listeners are not notified.
func (r *Router) Shutdown() {
	for _, screen := range r.screens {
		screen.Release()
	}
	for _, stack := range r.sessions {
		stack.Clear()
	}
	clear(r.sessions)
	clear(r.screens)
	r.logger.Debug("Router shut down")
}
