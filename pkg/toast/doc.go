// Package toast is the notification helper of the Team Name Generator page.
//
// A Notifier owns one page's notification widget: a single element (id
// "notification") created on first use and a single <style> block created the
// first time a notification is shown. Show rewrites the element's text and
// category, makes it visible, and schedules a hide after the configured delay
// (3 seconds by default).
//
// # Page Globals
//
// Install wires the helper into a page the way the page script does on
// DOMContentLoaded. Once the page has loaded, any script can call:
//
//	showNotification(message, category = "info")
//	sanitizeInput(input)
//
// From Go:
//
//	n := toast.Install(p, toast.DefaultConfig())
//	_ = p.Load(ctx)
//	_, _ = p.Window.Call(ctx, toast.GlobalShow, "Saved!", "success")
//
// # Overlapping Notifications
//
// A hide scheduled by an earlier Show is not cancelled by a later one, so a
// message shown shortly after another can disappear early. Keep the
// PendingHide returned by Show to cancel a hide explicitly, or set
// Config.ResetPendingHide to cancel the previous hide on every Show.
//
// # Sanitizing
//
// Sanitize escapes text the way a browser serializes a text node, so the
// result can be placed inside markup without creating elements:
//
//	toast.Sanitize("<script>alert(1)</script>")
//	// &lt;script&gt;alert(1)&lt;/script&gt;
package toast
