// Package page hosts a single teamgen page: its document, its event loop,
// its timers and its window globals.
//
// A Page behaves like one browser tab. Everything that touches page state
// (the element tree, window globals, the ready state, registered load
// handlers) runs on the page's event loop, one task at a time. Code on other
// goroutines reaches the page through Dispatch, Do, Load and Window.Call.
// Setup done before Run (building the document, registering load handlers)
// happens on the constructing goroutine and needs no synchronization.
//
// # Lifecycle
//
//	p := page.New(page.WithTitle("FLL Team Name Generator"))
//	p.OnContentLoaded(func() { ... })   // before Load
//	go p.Run(ctx)
//	_ = p.Load(ctx)                      // fires DOMContentLoaded handlers
//	_, err := p.Window.Call(ctx, "showNotification", "Saved!", "success")
//
// # Timers
//
// SetTimeout schedules a callback through the page Clock. When the timer
// fires, the callback is dispatched back onto the loop, so it never runs
// concurrently with other page tasks. Tests swap the clock for a simulated
// one (see pkg/vtest).
package page
