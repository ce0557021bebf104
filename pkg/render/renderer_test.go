package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fll-tools/teamgen/pkg/vdom"
)

func TestRenderElement(t *testing.T) {
	r := NewRenderer(RendererConfig{})

	html, err := r.RenderToString(vdom.Div(vdom.ID("notification"), vdom.Class("notification", "info"), "Saved!"))

	require.NoError(t, err)
	assert.Equal(t, `<div class="notification info" id="notification">Saved!</div>`, html)
}

func TestRenderEscapesText(t *testing.T) {
	html := OuterHTML(vdom.P("<b>bold</b> & more"))

	assert.Equal(t, "<p>&lt;b&gt;bold&lt;/b&gt; &amp; more</p>", html)
}

func TestRenderStyleIsRawText(t *testing.T) {
	css := ".a > .b { color: red; }"

	html := OuterHTML(vdom.Style(vdom.ID("s"), css))

	assert.Equal(t, `<style id="s">`+css+`</style>`, html)
}

func TestRenderVoidElement(t *testing.T) {
	html := OuterHTML(vdom.Meta(vdom.Charset("utf-8")))

	assert.Equal(t, `<meta charset="utf-8">`, html)
}

func TestRenderBooleanAttributes(t *testing.T) {
	el := vdom.Element("div")
	el.SetAttr("hidden", true)
	el.SetAttr("inert", false)
	el.SetAttr("_internal", "x")
	el.SetAttr("tabindex", 0)

	assert.Equal(t, `<div hidden tabindex="0"></div>`, OuterHTML(el))
}

func TestRenderFragmentAndRaw(t *testing.T) {
	html := OuterHTML(vdom.Div(vdom.Fragment("a", vdom.Raw("<hr>"), "<")))

	assert.Equal(t, "<div>a<hr>&lt;</div>", html)
}

func TestInnerHTML(t *testing.T) {
	el := vdom.Element("div")
	el.SetText(`<script>alert("x")</script>`)

	assert.Equal(t, `&lt;script&gt;alert("x")&lt;/script&gt;`, InnerHTML(el))
	assert.Equal(t, "", InnerHTML(nil))
	assert.Equal(t, "", InnerHTML(vdom.Element("div")))
}

func TestRenderUnknownKind(t *testing.T) {
	_, err := NewRenderer(RendererConfig{}).RenderToString(&vdom.VNode{Kind: vdom.VKind(99)})

	assert.Error(t, err)
}

func TestRenderDocument(t *testing.T) {
	root := vdom.Html(vdom.Lang("en"),
		vdom.Head(vdom.Title("Team Name Generator")),
		vdom.Body(vdom.Div(vdom.ID("app"))),
	)

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(RendererConfig{}).RenderDocument(&buf, root))

	assert.Equal(t,
		`<!DOCTYPE html><html lang="en"><head><title>Team Name Generator</title></head><body><div id="app"></div></body></html>`,
		buf.String())
}

func TestRenderPretty(t *testing.T) {
	root := vdom.Html(vdom.Head(), vdom.Body(vdom.Div(vdom.ID("a"), "text")))

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(RendererConfig{Pretty: true}).RenderDocument(&buf, root))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"<!DOCTYPE html>",
		"<html>",
		"  <head></head>",
		"  <body>",
		`    <div id="a">text</div>`,
		"  </body>",
		"</html>",
	}, lines)
}
