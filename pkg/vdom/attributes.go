package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Type sets the type attribute.
func Type(typ string) Attr { return attr("type", typ) }

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLive sets the aria-live attribute.
func AriaLive(mode string) Attr { return attr("aria-live", mode) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// Charset sets the charset attribute.
func Charset(charset string) Attr { return attr("charset", charset) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Content sets the content attribute.
func Content(content string) Attr { return attr("content", content) }

// GetAttr returns the string form of attribute key and whether it is set.
func (v *VNode) GetAttr(key string) (string, bool) {
	if v == nil || v.Props == nil {
		return "", false
	}
	val, ok := v.Props[key]
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	if !ok {
		return "", true
	}
	return s, true
}

// SetAttr sets attribute key on an element.
func (v *VNode) SetAttr(key string, value any) {
	if v == nil {
		return
	}
	if v.Props == nil {
		v.Props = make(Props)
	}
	v.Props[key] = value
}

// RemoveAttr deletes attribute key.
func (v *VNode) RemoveAttr(key string) {
	if v == nil || v.Props == nil {
		return
	}
	delete(v.Props, key)
}

// ElementID returns the id attribute, or "".
func (v *VNode) ElementID() string {
	id, _ := v.GetAttr("id")
	return id
}
