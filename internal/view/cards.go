package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/vatsalraicha/portfolio/internal/content"
)

func SkillCard(c content.Card) g.Node {
	return h.Div(
		h.Class("bg-white p-6 rounded-lg shadow-sm"),
		h.Div(h.Class("text-blue-600 mb-4"), Icon(c.Icon, 24)),
		h.H3(h.Class("text-xl font-semibold mb-2"), g.Text(c.Title)),
		h.P(h.Class("text-gray-600"), g.Text(c.Description)),
	)
}

func ValueCard(c content.Card) g.Node {
	return h.Div(
		h.Class("bg-white p-6 rounded-lg shadow-sm border border-gray-100"),
		h.Div(h.Class("text-blue-600 mb-4"), Icon(c.Icon, 24)),
		h.H3(h.Class("text-xl font-semibold mb-3 text-gray-900"), g.Text(c.Title)),
		h.P(h.Class("text-gray-600"), g.Text(c.Description)),
	)
}

func TestimonialCard(t content.Testimonial) g.Node {
	return h.Div(
		h.Class("bg-gray-50 p-6 rounded-lg border border-gray-200"),
		h.H4(h.Class("font-semibold text-blue-600 mb-2"), g.Text(t.Company)),
		h.P(h.Class("text-gray-600 mb-4"), g.Text(t.Feedback)),
		h.Div(
			h.Class("flex items-center"),
			h.Div(h.Class("h-1 w-8 bg-blue-600 mr-3")),
			h.P(h.Class("text-sm font-medium text-gray-900"), g.Text(t.Achievement)),
		),
	)
}
