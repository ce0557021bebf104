// Package vdom provides the element tree that backs a teamgen page.
//
// A VNode is either an element, a text node, a fragment, or raw markup.
// Unlike a render-only virtual DOM, nodes here are mutated in place: the page
// host keeps one tree per document and helpers such as the notification
// toast look elements up by id, rewrite their text, and toggle classes.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// # Mutation
//
//	el := root.FindByID("notification")
//	el.SetText("Saved!")
//	el.SetClassName("notification success")
//	el.ClassList().Add("show")
//
// Nodes are not safe for concurrent use. The page host serializes access
// through its event loop.
package vdom
