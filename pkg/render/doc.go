// Package render serializes teamgen element trees to HTML.
//
// The serializer follows the HTML fragment serialization rules a browser
// applies when reading element.innerHTML:
//
//   - Text is escaped (& < > and U+00A0)
//   - Text inside raw-text elements (style, script) is written verbatim
//   - Attribute values are quoted and escaped
//   - Void elements (br, meta, input, ...) have no closing tag
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// To read the inner markup of a single element:
//
//	markup := render.InnerHTML(el)
//
// # Full Documents
//
//	err := renderer.RenderDocument(w, root)
//
// # Security
//
// All text content is escaped by default. Raw nodes are written unchanged
// and should only be used with trusted content.
package render
