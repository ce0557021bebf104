package vdom

import (
	"fmt"
	"strings"
)

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *VNode {
	return &VNode{
		Kind: KindRaw,
		Text: html,
	}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	node := &VNode{
		Kind:     KindFragment,
		Children: make([]*VNode, 0),
	}

	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case string:
			node.Children = append(node.Children, Text(v))
		}
	}

	return node
}

// AppendChild adds child as the last child of v and returns child.
func (v *VNode) AppendChild(child *VNode) *VNode {
	if v == nil || child == nil {
		return child
	}
	v.Children = append(v.Children, child)
	return child
}

// SetText replaces all children of v with a single text node holding s.
// An empty string leaves v with no children.
func (v *VNode) SetText(s string) {
	if v == nil {
		return
	}
	if s == "" {
		v.Children = v.Children[:0]
		return
	}
	v.Children = []*VNode{Text(s)}
}

// TextContent returns the concatenated text of v and its descendants.
// Raw nodes contribute nothing.
func (v *VNode) TextContent() string {
	if v == nil {
		return ""
	}
	if v.Kind == KindText {
		return v.Text
	}
	var b strings.Builder
	v.Walk(func(n *VNode) bool {
		if n.Kind == KindText {
			b.WriteString(n.Text)
		}
		return true
	})
	return b.String()
}

// Walk visits v and its descendants depth-first in document order.
// Returning false from fn stops the walk.
func (v *VNode) Walk(fn func(*VNode) bool) bool {
	if v == nil {
		return true
	}
	if !fn(v) {
		return false
	}
	for _, child := range v.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// FindByID returns the first element under v (v included) whose id is id.
func (v *VNode) FindByID(id string) *VNode {
	if id == "" {
		return nil
	}
	return v.Find("", id)
}

// Find returns the first element matching tag and id. An empty tag or id
// matches any value; both empty returns nil.
func (v *VNode) Find(tag, id string) *VNode {
	if tag == "" && id == "" {
		return nil
	}
	var found *VNode
	v.Walk(func(n *VNode) bool {
		if n.Kind != KindElement {
			return true
		}
		if tag != "" && !strings.EqualFold(n.Tag, tag) {
			return true
		}
		if id != "" && n.ElementID() != id {
			return true
		}
		found = n
		return false
	})
	return found
}

// Count returns the number of elements under v (v included) matching tag and id.
func (v *VNode) Count(tag, id string) int {
	count := 0
	v.Walk(func(n *VNode) bool {
		if n.Kind != KindElement {
			return true
		}
		if tag != "" && !strings.EqualFold(n.Tag, tag) {
			return true
		}
		if id != "" && n.ElementID() != id {
			return true
		}
		count++
		return true
	})
	return count
}
