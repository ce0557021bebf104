package page

import (
	"strings"

	"github.com/fll-tools/teamgen/pkg/render"
	"github.com/fll-tools/teamgen/pkg/vdom"
)

// Document is the element tree of a page.
type Document struct {
	root *vdom.VNode
	head *vdom.VNode
	body *vdom.VNode
}

// NewDocument creates an empty HTML document with the given title.
func NewDocument(title string) *Document {
	head := vdom.Head(
		vdom.Meta(vdom.Charset("utf-8")),
		vdom.Meta(vdom.Name("viewport"), vdom.Content("width=device-width, initial-scale=1")),
	)
	if title != "" {
		head.AppendChild(vdom.Title(title))
	}
	body := vdom.Body()
	return &Document{
		root: vdom.Html(vdom.Lang("en"), head, body),
		head: head,
		body: body,
	}
}

// Root returns the <html> element.
func (d *Document) Root() *vdom.VNode { return d.root }

// Head returns the <head> element.
func (d *Document) Head() *vdom.VNode { return d.head }

// Body returns the <body> element.
func (d *Document) Body() *vdom.VNode { return d.body }

// Title returns the text of the first <title> element.
func (d *Document) Title() string {
	return d.head.Find("title", "").TextContent()
}

// CreateElement returns a new, detached element.
func (d *Document) CreateElement(tag string) *vdom.VNode {
	return vdom.Element(strings.ToLower(tag))
}

// GetElementByID returns the first element with the given id, or nil.
func (d *Document) GetElementByID(id string) *vdom.VNode {
	return d.root.FindByID(id)
}

// QuerySelector returns the first element matching a simple selector of the
// form "tag", "#id" or "tag#id". Other selector syntax matches nothing.
func (d *Document) QuerySelector(selector string) *vdom.VNode {
	tag, id, ok := parseSelector(selector)
	if !ok {
		return nil
	}
	return d.root.Find(tag, id)
}

// QuerySelectorCount returns how many elements match selector.
func (d *Document) QuerySelectorCount(selector string) int {
	tag, id, ok := parseSelector(selector)
	if !ok {
		return 0
	}
	return d.root.Count(tag, id)
}

// HTML serializes the whole document, doctype included.
func (d *Document) HTML(pretty bool) (string, error) {
	var b strings.Builder
	r := render.NewRenderer(render.RendererConfig{Pretty: pretty})
	if err := r.RenderDocument(&b, d.root); err != nil {
		return "", err
	}
	return b.String(), nil
}

func parseSelector(selector string) (tag, id string, ok bool) {
	selector = strings.TrimSpace(selector)
	if selector == "" || strings.ContainsAny(selector, " .[]:>+~,*") {
		return "", "", false
	}
	tag, id, hasID := strings.Cut(selector, "#")
	if hasID && (id == "" || strings.Contains(id, "#")) {
		return "", "", false
	}
	return tag, id, true
}
