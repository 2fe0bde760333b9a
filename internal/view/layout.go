// Package view renders the portfolio as gomponents node trees.
package view

import (
	"net/url"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/vatsalraicha/portfolio/internal/content"
)

const (
	tailwindSrc = "https://cdn.tailwindcss.com"
	htmxSrc     = "https://unpkg.com/htmx.org@2.0.4"
	lucideSrc   = "https://unpkg.com/lucide@0.469.0/dist/umd/lucide.min.js"

	// Icons are drawn client-side; swapped fragments need a redraw.
	iconBoot = `lucide.createIcons();document.body.addEventListener("htmx:afterSwap",function(){lucide.createIcons()});`
)

// Document wraps body in the shared HTML shell.
func Document(title string, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(title)),
				h.Script(h.Src(tailwindSrc)),
				h.Script(h.Src(htmxSrc)),
				h.Link(h.Rel("stylesheet"), h.Href("/static/site.css")),
			),
			h.Body(
				g.Group(body),
				h.Script(h.Src(lucideSrc)),
				h.Script(g.Raw(iconBoot)),
			),
		),
	)
}

// Icon renders a placeholder that the icon script turns into an SVG.
func Icon(name content.Icon, size int, classes ...string) g.Node {
	px := strconv.Itoa(size)
	nodes := []g.Node{
		g.Attr("data-lucide", string(name)),
		g.Attr("width", px),
		g.Attr("height", px),
		g.Attr("aria-hidden", "true"),
	}
	if len(classes) > 0 {
		nodes = append(nodes, h.Class(classes[0]))
	}
	return g.El("i", nodes...)
}

// ImageURL resolves an image reference against the images mount.
func ImageURL(ref string) string {
	return "/images/" + url.PathEscape(ref)
}

// PreviewPath is the endpoint that opens and closes a project's preview.
func PreviewPath(slug string) string {
	return "/projects/" + url.PathEscape(slug) + "/preview"
}

func previewSlotID(slug string) string {
	return "preview-" + slug
}

func projectAnchorID(slug string) string {
	return "project-" + slug
}
