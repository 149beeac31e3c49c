// Package router dispatches host inventory events to igf screens.
//
// A Router replaces the implicit global event handler of plugin frameworks
// with an explicit value: create one at startup, initialise it with the
// plugin's namespace, and forward the host's click, open and close events
// to it.
//
// # Basic Usage
//
//	r := router.New(router.Options{})
//	if err := r.Init("myplugin"); err != nil {
//	    return err
//	}
//
//	// Keys for item data are namespaced by the router
//	shopKey := r.MustCreateKey("shop", "item", "id")
//
//	// Optional fallback for screens without their own listener
//	r.SetGlobalListener(igf.ListenerFuncs{
//	    Close: func(e *igf.CloseEvent, s *igf.Screen) {
//	        log.Info("closed", "title", s.Title())
//	    },
//	})
//
//	// In the host's event callbacks
//	r.HandleClick(&igf.ClickEvent{Holder: holder, Slot: slot, Actor: player})
//	r.HandleOpen(&igf.OpenEvent{Holder: holder, Actor: player})
//	r.HandleClose(&igf.CloseEvent{Holder: holder, Actor: player})
//
// # Dispatch
//
// Events whose holder is not a *igf.Screen are ignored. Clicks on a screen
// are always cancelled so items cannot be taken out. A click on a slot
// without a button ends there. Otherwise the button's callback runs first;
// if it has one and does not propagate, the click ends there. Otherwise the
// screen's listener runs, or the global listener when the screen has none.
//
// Screens that opt in with SetPropagateToGlobal also forward events to the
// global listener after their own listener. With the default
// PropagateOpenClose policy this applies to open and close events only;
// PropagateAll extends it to clicks.
//
// # Sessions
//
// Opened screens are tracked per actor on a Stack. Closing a screen removes
// it and releases its grid, so the router never holds on to a finished
// session. Shutdown releases everything when the plugin is disabled.
package router
