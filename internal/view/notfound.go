package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/vatsalraicha/portfolio/internal/content"
)

// NotFound is the page for every unmatched path. Its only action leads
// back to the root page.
func NotFound() g.Node {
	return Document("Page Not Found",
		h.Div(
			h.Class("min-h-screen bg-gray-50 flex items-center justify-center px-4"),
			h.Div(
				h.Class("max-w-md w-full text-center"),
				h.Div(
					h.Class("mb-8"),
					Icon(content.IconAlert, 64, "mx-auto text-blue-600 mb-4"),
					h.H1(h.Class("text-6xl font-bold text-gray-900 mb-4"), g.Text("404")),
					h.H2(h.Class("text-2xl font-semibold text-gray-800 mb-4"), g.Text("Page Not Found")),
					h.P(
						h.Class("text-gray-600 mb-8"),
						g.Text("Sorry, the page you're looking for doesn't exist. It might have been moved or deleted."),
					),
				),
				h.A(
					h.Href("/"),
					g.Attr("data-home-link", ""),
					h.Class("inline-flex items-center px-6 py-3 bg-blue-600 text-white rounded-lg hover:bg-blue-700 transition-colors duration-200 shadow-sm"),
					Icon(content.IconHome, 20, "mr-2"),
					g.Text("Back to Home"),
				),
			),
		),
	)
}
