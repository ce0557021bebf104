package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fll-tools/teamgen/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Only element children are indented; text is never reflowed.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer serializes VNode trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// InnerHTML returns the serialized markup of node's children, the value a
// browser reports for element.innerHTML.
func InnerHTML(node *vdom.VNode) string {
	if node == nil {
		return ""
	}
	r := NewRenderer(RendererConfig{})
	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail.
	_ = r.renderChildren(&buf, node, 0)
	return buf.String()
}

// OuterHTML returns the serialized markup of node itself.
func OuterHTML(node *vdom.VNode) string {
	html, _ := NewRenderer(RendererConfig{}).RenderToString(node)
	return html
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, "", 0)
}

// RenderDocument writes a complete HTML document rooted at root, which is
// expected to be the <html> element.
func (r *Renderer) RenderDocument(w io.Writer, root *vdom.VNode) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
		return err
	}
	if r.config.Pretty {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return r.RenderToWriter(w, root)
}

// renderNode dispatches rendering based on node kind. parent is the tag of
// the enclosing element and decides whether text is escaped.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, parent string, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		return r.renderText(w, node, parent)
	case vdom.KindFragment:
		for _, child := range node.Children {
			if err := r.renderNode(w, child, parent, depth); err != nil {
				return err
			}
		}
		return nil
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	tag := node.Tag

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if vdom.IsVoidElement(tag) {
		r.newline(w)
		return nil
	}

	block := r.config.Pretty && hasElementChildren(node)
	if block {
		r.newline(w)
	}

	if err := r.renderChildren(w, node, depth+1); err != nil {
		return err
	}

	if block {
		r.writeIndent(w, depth)
	}
	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	r.newline(w)

	return nil
}

func (r *Renderer) renderChildren(w io.Writer, node *vdom.VNode, depth int) error {
	for _, child := range node.Children {
		if err := r.renderNode(w, child, node.Tag, depth); err != nil {
			return err
		}
	}
	return nil
}

// renderText renders a text node, escaping it unless the parent is a
// raw-text element such as <style>.
func (r *Renderer) renderText(w io.Writer, node *vdom.VNode, parent string) error {
	text := node.Text
	if !vdom.IsRawTextElement(parent) {
		text = EscapeText(text)
	}
	_, err := io.WriteString(w, text)
	return err
}

// renderAttributes renders all attributes for an element.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	if len(node.Props) == 0 {
		return nil
	}

	// Sort keys for deterministic output
	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Props[key]

		// Skip internal props
		if strings.HasPrefix(key, "_") {
			continue
		}

		// Boolean attributes render bare when true and not at all when false.
		if b, ok := value.(bool); ok {
			if b {
				if _, err := fmt.Fprintf(w, " %s", key); err != nil {
					return err
				}
			}
			continue
		}

		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(attrToString(value))); err != nil {
			return err
		}
	}

	return nil
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func hasElementChildren(node *vdom.VNode) bool {
	for _, child := range node.Children {
		if child != nil && child.Kind == vdom.KindElement {
			return true
		}
	}
	return false
}

func (r *Renderer) newline(w io.Writer) {
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, r.config.Indent)
	}
}
