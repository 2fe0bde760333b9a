// Package contact turns contact form submissions into outbound emails.
package contact

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/vatsalraicha/portfolio/internal/reqlog"
)

// ErrSenderRequired is returned by NewController when no Sender is given.
var ErrSenderRequired = errors.New("contact: sender is required")

const (
	SuccessNotice = "Message sent successfully!"
	FailureNotice = "Failed to send message. Please try again."
)

// Sender delivers one templated email. *emailjs.Client satisfies it.
type Sender interface {
	Send(ctx context.Context, serviceID, templateID string, params map[string]string) error
}

// Form holds the three contact fields as the visitor typed them.
type Form struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required"`
	Message string `form:"message" binding:"required"`
}

// Payload is what one submission sends. It is rebuilt for every submission.
type Payload struct {
	SenderName  string
	SenderEmail string
	Message     string
}

func NewPayload(f Form) Payload {
	return Payload{
		SenderName:  f.Name,
		SenderEmail: f.Email,
		Message:     f.Message,
	}
}

// Params maps the payload onto the email template's variables.
func (p Payload) Params() map[string]string {
	return map[string]string{
		"from_name":  p.SenderName,
		"from_email": p.SenderEmail,
		"message":    p.Message,
	}
}

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

type Status int

const (
	StatusSent Status = iota + 1
	StatusFailed
)

// Result is the outcome of one submission. Form is what the form should
// show afterwards: empty after a send, the submitted values after a failure.
type Result struct {
	Status Status
	Form   Form
	Err    error
}

func (r Result) Notice() string {
	if r.Status == StatusSent {
		return SuccessNotice
	}
	return FailureNotice
}

type Controller struct {
	sender     Sender
	serviceID  string
	templateID string
	observe    func(from, to Phase)
}

type Option func(*Controller)

// WithObserver registers a callback for every phase transition.
func WithObserver(fn func(from, to Phase)) Option {
	return func(c *Controller) {
		c.observe = fn
	}
}

func NewController(sender Sender, serviceID, templateID string, opts ...Option) (*Controller, error) {
	if sender == nil {
		return nil, ErrSenderRequired
	}
	c := &Controller{
		sender:     sender,
		serviceID:  serviceID,
		templateID: templateID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Submit sends the form once and reports the outcome. It never retries.
func (c *Controller) Submit(ctx context.Context, f Form) Result {
	logger := reqlog.New(ctx)
	ctx, span := otel.Tracer("github.com/vatsalraicha/portfolio/internal/contact").Start(ctx, "contact.submit")
	defer span.End()

	c.transition(PhaseIdle, PhaseSubmitting)
	payload := NewPayload(f)
	err := c.sender.Send(ctx, c.serviceID, c.templateID, payload.Params())
	c.transition(PhaseSubmitting, PhaseIdle)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "send failed")
		logger.Error("contact_submit", err)
		return Result{Status: StatusFailed, Form: f, Err: err}
	}

	span.SetAttributes(attribute.String("contact.template_id", c.templateID))
	logger.Infof("contact_submit", "message sent template_id=%s", c.templateID)
	return Result{Status: StatusSent}
}

func (c *Controller) transition(from, to Phase) {
	if c.observe != nil {
		c.observe(from, to)
	}
}
