package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/vatsalraicha/portfolio/internal/content"
	"github.com/vatsalraicha/portfolio/internal/preview"
)

// ImageModal renders the preview overlay for the project identified by
// slug. A closed state renders nothing, so the overlay leaves no element
// behind that could catch clicks.
func ImageModal(slug string, s preview.State) g.Node {
	if !s.IsOpen() {
		return g.Group{}
	}
	closeURL := PreviewPath(slug)
	target := "#" + previewSlotID(slug)

	return h.Div(
		h.Class("fixed inset-0 bg-black bg-opacity-50 z-50 flex items-center justify-center p-4"),
		g.Attr("role", "dialog"),
		g.Attr("aria-modal", "true"),
		g.Attr("aria-label", s.Alt()),
		g.Attr("hx-delete", closeURL),
		g.Attr("hx-target", target),
		g.Attr("hx-swap", "innerHTML"),
		g.Attr("hx-trigger", "click target:this, keyup[key=='Escape'] from:body"),
		h.Div(
			h.Class("relative max-w-7xl w-full"),
			h.A(
				h.Href("/#"+projectAnchorID(slug)),
				g.Attr("hx-delete", closeURL),
				g.Attr("hx-target", target),
				g.Attr("hx-swap", "innerHTML"),
				g.Attr("aria-label", "Close preview"),
				g.Attr("data-modal-close", ""),
				h.Class("absolute top-4 right-4 text-white hover:text-gray-300 z-50"),
				Icon(content.IconClose, 24),
			),
			h.Img(
				h.Src(ImageURL(s.Image())),
				h.Alt(s.Alt()),
				h.Class("w-full h-auto object-contain max-h-[90vh]"),
			),
		),
	)
}
