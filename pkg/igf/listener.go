package igf

// Listener receives screen events that buttons did not consume.
// A Listener can be attached to a single Screen or installed globally on the router.
type Listener interface {
	OnClick(event *ClickEvent, screen *Screen)
	OnOpen(event *OpenEvent, screen *Screen)
	OnClose(event *CloseEvent, screen *Screen)
}

// NoopListener ignores every event.
type NoopListener struct{}

func (NoopListener) OnClick(*ClickEvent, *Screen) {}
func (NoopListener) OnOpen(*OpenEvent, *Screen)   {}
func (NoopListener) OnClose(*CloseEvent, *Screen) {}

// ListenerFuncs adapts plain functions to a Listener. Nil fields are ignored.
type ListenerFuncs struct {
	Click func(event *ClickEvent, screen *Screen)
	Open  func(event *OpenEvent, screen *Screen)
	Close func(event *CloseEvent, screen *Screen)
}

func (l ListenerFuncs) OnClick(event *ClickEvent, screen *Screen) {
	if l.Click != nil {
		l.Click(event, screen)
	}
}

func (l ListenerFuncs) OnOpen(event *OpenEvent, screen *Screen) {
	if l.Open != nil {
		l.Open(event, screen)
	}
}

func (l ListenerFuncs) OnClose(event *CloseEvent, screen *Screen) {
	if l.Close != nil {
		l.Close(event, screen)
	}
}
