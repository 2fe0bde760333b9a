package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sendCall struct {
	serviceID  string
	templateID string
	params     map[string]string
}

type fakeSender struct {
	err   error
	calls []sendCall
}

func (f *fakeSender) Send(_ context.Context, serviceID, templateID string, params map[string]string) error {
	f.calls = append(f.calls, sendCall{serviceID: serviceID, templateID: templateID, params: params})
	return f.err
}

var janeForm = Form{Name: "Jane Doe", Email: "jane@example.com", Message: "Hello"}

func TestNewControllerRequiresSender(t *testing.T) {
	_, err := NewController(nil, "s", "t")
	assert.ErrorIs(t, err, ErrSenderRequired)
}

func TestSubmitSendsPayloadVerbatim(t *testing.T) {
	sender := &fakeSender{}
	c, err := NewController(sender, "service_1", "template_1")
	require.NoError(t, err)

	c.Submit(context.Background(), janeForm)

	require.Len(t, sender.calls, 1)
	call := sender.calls[0]
	assert.Equal(t, "service_1", call.serviceID)
	assert.Equal(t, "template_1", call.templateID)
	assert.Equal(t, map[string]string{
		"from_name":  "Jane Doe",
		"from_email": "jane@example.com",
		"message":    "Hello",
	}, call.params)
}

func TestSubmitSuccessClearsForm(t *testing.T) {
	c, err := NewController(&fakeSender{}, "s", "t")
	require.NoError(t, err)

	res := c.Submit(context.Background(), janeForm)

	assert.Equal(t, StatusSent, res.Status)
	assert.Equal(t, Form{}, res.Form)
	assert.NoError(t, res.Err)
	assert.Equal(t, SuccessNotice, res.Notice())
}

func TestSubmitFailurePreservesForm(t *testing.T) {
	sendErr := errors.New("network down")
	sender := &fakeSender{err: sendErr}
	c, err := NewController(sender, "s", "t")
	require.NoError(t, err)

	res := c.Submit(context.Background(), janeForm)

	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, janeForm, res.Form)
	assert.ErrorIs(t, res.Err, sendErr)
	assert.Equal(t, FailureNotice, res.Notice())
	assert.Len(t, sender.calls, 1, "a failed send must not be retried")
}

func TestSubmitPhaseTransitions(t *testing.T) {
	for _, sendErr := range []error{nil, errors.New("rejected")} {
		var phases []Phase
		c, err := NewController(&fakeSender{err: sendErr}, "s", "t", WithObserver(func(from, to Phase) {
			if len(phases) == 0 {
				phases = append(phases, from)
			}
			phases = append(phases, to)
		}))
		require.NoError(t, err)

		c.Submit(context.Background(), janeForm)
		assert.Equal(t, []Phase{PhaseIdle, PhaseSubmitting, PhaseIdle}, phases)
	}
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "submitting", PhaseSubmitting.String())
}
