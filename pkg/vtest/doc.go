// Package vtest provides testing utilities for teamgen pages.
//
// NewPage starts a page on a simulated clock and stops it when the test
// ends. Time only moves when the test calls Advance, so timer behavior is
// deterministic:
//
//	h := vtest.NewPage(t)
//	toast.Install(h.Page, config.DefaultToast())
//	h.Load()
//	h.Call("showNotification", "Saved!", "success")
//	h.Advance(3 * time.Second)
//	el := h.Element("notification")
//
// FakeClock can also be used on its own wherever a page.Clock is accepted.
package vtest
