package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/vatsalraicha/portfolio/internal/content"
	"github.com/vatsalraicha/portfolio/internal/preview"
)

// ProjectCard renders a project summary. Projects with an image get a
// clickable thumbnail and a slot holding the card's own preview modal.
func ProjectCard(p content.Project, s preview.State) g.Node {
	card := h.Article(
		h.ID(projectAnchorID(p.Slug)),
		h.Class("bg-gray-50 p-6 rounded-lg border border-gray-200"),
		g.Iff(p.Image != "", func() g.Node { return thumbnail(p) }),
		h.Div(
			h.Class("flex justify-between items-start mb-3"),
			h.H3(h.Class("text-xl font-semibold"), g.Text(p.Title)),
			h.Span(h.Class("text-sm text-gray-500"), g.Text(p.Date)),
		),
		h.P(h.Class("text-gray-600 mb-4"), g.Text(p.Description)),
		h.Div(
			h.Class("flex flex-wrap gap-2"),
			g.Map(p.Tags, func(tag string) g.Node {
				return h.Span(h.Class("px-3 py-1 bg-blue-100 text-blue-800 rounded-full text-sm"), g.Text(tag))
			}),
		),
	)
	if p.Image == "" {
		return card
	}
	return g.Group{
		card,
		h.Div(h.ID(previewSlotID(p.Slug)), ImageModal(p.Slug, s)),
	}
}

func thumbnail(p content.Project) g.Node {
	return h.Div(
		h.Class("mb-6 overflow-hidden rounded-lg bg-white p-4"),
		h.A(
			h.Href(PreviewPath(p.Slug)),
			g.Attr("hx-get", PreviewPath(p.Slug)),
			g.Attr("hx-target", "#"+previewSlotID(p.Slug)),
			g.Attr("hx-swap", "innerHTML"),
			g.Attr("data-preview-trigger", ""),
			h.Class("block border border-gray-100 rounded-lg shadow-sm cursor-pointer"),
			h.Img(
				h.Src(ImageURL(p.Image)),
				h.Alt(p.PreviewAlt()),
				h.Class("w-full h-auto object-contain hover:scale-102 transition-transform duration-200"),
				g.Attr("style", "max-height: 400px"),
			),
		),
		g.If(p.ImageAlt != "",
			h.P(h.Class("text-sm text-gray-500 text-center mt-2 italic"), g.Text(p.ImageAlt)),
		),
	)
}
