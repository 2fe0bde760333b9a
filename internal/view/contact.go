package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/vatsalraicha/portfolio/internal/contact"
	"github.com/vatsalraicha/portfolio/internal/content"
)

const (
	ContactFormID = "contact-form"
	ContactPath   = "/contact"
)

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

type Notice struct {
	Kind    NoticeKind
	Message string
}

// ContactState is what the contact form shows: the field values and an
// optional notice from the last submission.
type ContactState struct {
	Form   contact.Form
	Notice *Notice
}

// ContactStateFor maps a submission result onto the form.
func ContactStateFor(res contact.Result) ContactState {
	kind := NoticeError
	if res.Status == contact.StatusSent {
		kind = NoticeSuccess
	}
	return ContactState{
		Form:   res.Form,
		Notice: &Notice{Kind: kind, Message: res.Notice()},
	}
}

// ContactForm renders the form wrapper that HTMX swaps after each submit.
func ContactForm(st ContactState) g.Node {
	return h.Div(
		h.ID(ContactFormID),
		g.Iff(st.Notice != nil, func() g.Node { return noticeBox(st.Notice) }),
		h.Form(
			h.Class("space-y-6"),
			h.Action(ContactPath),
			h.Method("post"),
			g.Attr("hx-post", ContactPath),
			g.Attr("hx-target", "#"+ContactFormID),
			g.Attr("hx-swap", "outerHTML"),
			field("name", "Name", "text", "Your name", st.Form.Name),
			field("email", "Email", "email", "Your email", st.Form.Email),
			h.Div(
				h.Label(h.For("message"), h.Class("block text-sm font-medium text-gray-700"), g.Text("Message")),
				h.Textarea(
					h.Name("message"),
					h.ID("message"),
					h.Rows("4"),
					h.Required(),
					h.Class(inputClass),
					h.Placeholder("Your message"),
					g.Text(st.Form.Message),
				),
			),
			h.Button(
				h.Type("submit"),
				h.Class("w-full flex justify-center items-center px-6 py-3 bg-blue-600 text-white rounded-lg hover:bg-blue-700 transition-colors duration-200"),
				Icon(content.IconMail, 20, "mr-2"),
				g.Text("Send Message"),
			),
		),
	)
}

const inputClass = "mt-1 block w-full rounded-md border-gray-300 shadow-sm focus:border-blue-500 focus:ring-blue-500 px-4 py-2"

func field(name, label, typ, placeholder, value string) g.Node {
	return h.Div(
		h.Label(h.For(name), h.Class("block text-sm font-medium text-gray-700"), g.Text(label)),
		h.Input(
			h.Type(typ),
			h.Name(name),
			h.ID(name),
			h.Required(),
			h.Class(inputClass),
			h.Placeholder(placeholder),
			h.Value(value),
		),
	)
}

func noticeBox(n *Notice) g.Node {
	classes := "mb-6 rounded-lg px-4 py-3 text-sm bg-green-50 text-green-800 border border-green-200"
	role := "status"
	if n.Kind == NoticeError {
		classes = "mb-6 rounded-lg px-4 py-3 text-sm bg-red-50 text-red-800 border border-red-200"
		role = "alert"
	}
	return h.Div(
		h.Class(classes),
		g.Attr("role", role),
		g.Attr("data-notice", string(n.Kind)),
		g.Text(n.Message),
	)
}
