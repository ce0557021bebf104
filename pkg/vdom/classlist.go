package vdom

import "strings"

// ClassName returns the raw class attribute of v.
func (v *VNode) ClassName() string {
	s, _ := v.GetAttr("class")
	return s
}

// SetClassName replaces the class attribute, like element.className = s.
func (v *VNode) SetClassName(s string) {
	v.SetAttr("class", s)
}

// ClassList returns a live view of the element's class tokens.
func (v *VNode) ClassList() ClassList {
	return ClassList{node: v}
}

// ClassList manipulates the class attribute of one element as a token set.
type ClassList struct {
	node *VNode
}

// Values returns the class tokens in order, without duplicates.
func (c ClassList) Values() []string {
	fields := strings.Fields(c.node.ClassName())
	out := fields[:0]
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// Len returns the number of distinct tokens.
func (c ClassList) Len() int {
	return len(c.Values())
}

// Contains reports whether token is present.
func (c ClassList) Contains(token string) bool {
	for _, t := range c.Values() {
		if t == token {
			return true
		}
	}
	return false
}

// Add appends each token not already present.
func (c ClassList) Add(tokens ...string) {
	values := c.Values()
	for _, token := range tokens {
		if token == "" || containsToken(values, token) {
			continue
		}
		values = append(values, token)
	}
	c.set(values)
}

// Remove deletes each given token.
func (c ClassList) Remove(tokens ...string) {
	values := c.Values()
	out := values[:0]
	for _, v := range values {
		if !containsToken(tokens, v) {
			out = append(out, v)
		}
	}
	c.set(out)
}

// Toggle removes token if present, otherwise adds it. It returns whether the
// token is present afterwards.
func (c ClassList) Toggle(token string) bool {
	if c.Contains(token) {
		c.Remove(token)
		return false
	}
	c.Add(token)
	return true
}

// String returns the serialized class attribute.
func (c ClassList) String() string {
	return c.node.ClassName()
}

func (c ClassList) set(values []string) {
	c.node.SetClassName(strings.Join(values, " "))
}

func containsToken(tokens []string, token string) bool {
	for _, t := range tokens {
		if t == token {
			return true
		}
	}
	return false
}
