package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/vatsalraicha/portfolio/internal/content"
	"github.com/vatsalraicha/portfolio/internal/preview"
)

// PageState carries the interactive state a full page is rendered with.
// It is only non-zero on the no-JavaScript paths.
type PageState struct {
	OpenProject string
	Contact     ContactState
}

// Portfolio composes every section of the page in fixed order.
func Portfolio(p content.Profile, st PageState) g.Node {
	return Document(p.Name+" | "+p.Headline,
		h.Div(
			h.Class("min-h-screen bg-gray-50"),
			navBar(p),
			hero(p),
			skills(p),
			values(p),
			projects(p, st.OpenProject),
			testimonials(p),
			labs(p.Labs),
			contactSection(p, st.Contact),
			footer(p),
		),
	)
}

// ProjectStates builds one preview state per card. Only the card named by
// open starts open; every other card owns its own closed state.
func ProjectStates(p content.Profile, open string) map[string]preview.State {
	states := make(map[string]preview.State, len(p.Projects))
	for _, project := range p.Projects {
		var s preview.State
		if project.Slug == open && project.Image != "" {
			s.Open(project.Image, project.PreviewAlt())
		}
		states[project.Slug] = s
	}
	return states
}

func navBar(p content.Profile) g.Node {
	return h.Nav(
		h.Class("fixed top-0 w-full bg-white shadow-sm z-50"),
		h.Div(
			h.Class("max-w-8xl mx-auto px-4 py-4"),
			h.Div(
				h.Class("flex justify-between items-center"),
				h.H1(h.Class("text-2xl font-bold text-gray-800"), g.Text(p.Name)),
				h.Div(
					h.Class("space-x-6"),
					g.Map(p.Nav, func(l content.Link) g.Node {
						return h.A(h.Href(l.URL), h.Class("text-gray-600 hover:text-gray-900"), g.Text(l.Label))
					}),
				),
			),
		),
	)
}

func hero(p content.Profile) g.Node {
	return h.Section(
		h.ID("about"),
		h.Class("bg-white"),
		h.Div(
			h.Class("max-w-8xl mx-auto px-4 py-20"),
			h.Div(
				h.Class("text-center"),
				h.H1(h.Class("text-5xl font-bold text-gray-900 mb-6"), g.Text(p.Headline)),
				h.P(h.Class("text-xl text-gray-600 mb-8"), g.Text(p.Tagline)),
				h.Div(
					h.Class("flex justify-center space-x-4"),
					g.Map(p.Social, func(l content.Link) g.Node {
						return h.A(
							h.Href(l.URL),
							g.Attr("aria-label", l.Label),
							h.Class("text-gray-600 hover:text-gray-900"),
							Icon(l.Icon, 24),
						)
					}),
				),
			),
		),
	)
}

func sectionHeading(text string) g.Node {
	return h.H2(h.Class("text-3xl font-bold text-center mb-12"), g.Text(text))
}

func skills(p content.Profile) g.Node {
	return h.Section(
		h.ID("skills"),
		h.Class("bg-gray-50 py-20"),
		h.Div(
			h.Class("max-w-8xl mx-auto px-4"),
			sectionHeading("Core Skills"),
			h.Div(
				h.Class("grid grid-cols-1 md:grid-cols-3 lg:grid-cols-6 gap-8"),
				g.Map(p.Skills, SkillCard),
			),
		),
	)
}

func values(p content.Profile) g.Node {
	return h.Section(
		h.Class("bg-gray-50 py-20"),
		h.Div(
			h.Class("max-w-8xl mx-auto px-4"),
			sectionHeading("Why Choose Me"),
			h.Div(
				h.Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
				g.Map(p.Values, ValueCard),
			),
		),
	)
}

func projects(p content.Profile, open string) g.Node {
	states := ProjectStates(p, open)
	return h.Section(
		h.ID("projects"),
		h.Class("bg-white py-20"),
		h.Div(
			h.Class("max-w-8xl mx-auto px-4"),
			sectionHeading("Featured Projects"),
			h.Div(
				h.Class("grid grid-cols-1 md:grid-cols-2 gap-8"),
				g.Map(p.Projects, func(project content.Project) g.Node {
					return ProjectCard(project, states[project.Slug])
				}),
			),
		),
	)
}

func testimonials(p content.Profile) g.Node {
	return h.Section(
		h.Class("bg-gray-50 py-20"),
		h.Div(
			h.Class("max-w-8xl mx-auto px-4"),
			h.Div(
				h.Class("mt-12 bg-white p-8 rounded-lg shadow-sm"),
				h.H3(h.Class("text-2xl font-semibold mb-6 text-center"), g.Text("Client Success Stories")),
				h.Div(
					h.Class("grid grid-cols-1 md:grid-cols-2 gap-8"),
					g.Map(p.Testimonials, TestimonialCard),
				),
			),
		),
	)
}

func labs(c content.Callout) g.Node {
	return h.Section(
		h.Class("bg-white py-20"),
		h.Div(
			h.Class("max-w-4xl mx-auto px-4 text-center"),
			h.Div(h.Class("inline-block p-3 rounded-full bg-blue-100 text-blue-600 mb-6"), Icon(content.IconCode, 32)),
			h.H2(h.Class("text-3xl font-bold text-gray-900 mb-4"), g.Text(c.Heading)),
			h.P(
				h.Class("text-lg text-gray-600 mb-8 leading-relaxed"),
				g.Text(c.Lead+" "),
				h.Span(h.Class("font-semibold text-gray-900"), g.Text(c.Highlight)),
				g.Text(" "+c.Trailer),
			),
			h.A(
				h.Href(c.Link.URL),
				h.Target("_blank"),
				h.Rel("noopener noreferrer"),
				h.Class("inline-flex items-center px-8 py-3 bg-blue-600 text-white font-medium rounded-lg hover:bg-blue-700 transition-colors duration-200 shadow-sm"),
				Icon(c.Link.Icon, 20, "mr-2"),
				g.Text(c.Link.Label),
			),
		),
	)
}

func contactSection(p content.Profile, st ContactState) g.Node {
	return h.Section(
		h.ID("contact"),
		h.Class("bg-gray-50 py-20"),
		h.Div(
			h.Class("max-w-8xl mx-auto px-4"),
			sectionHeading("Get in Touch"),
			h.Div(
				h.Class("max-w-lg mx-auto"),
				h.P(h.Class("text-gray-600 mb-8 text-center"), g.Text(p.ContactBlurb)),
				ContactForm(st),
			),
		),
	)
}

func footer(p content.Profile) g.Node {
	return h.Footer(
		h.Class("bg-white py-8"),
		h.Div(
			h.Class("max-w-8xl mx-auto px-4 text-center text-gray-600"),
			h.P(g.Text(p.Footer)),
		),
	)
}
