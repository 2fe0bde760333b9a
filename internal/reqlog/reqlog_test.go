package reqlog

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc")
	assert.Equal(t, "abc", RequestID(ctx))
	assert.Equal(t, "", RequestID(context.Background()))
}

func TestLoggerIncludesRequestID(t *testing.T) {
	buf := captureLog(t)

	New(WithRequestID(context.Background(), "req-1")).Error("contact_submit", errors.New("boom"))
	assert.Equal(t, "[error] request_id=req-1 operation=contact_submit error=boom\n", buf.String())
}

func TestLoggerFallsBackToUnknown(t *testing.T) {
	buf := captureLog(t)

	New(context.Background()).Infof("startup", "port=%s", "8080")
	assert.Equal(t, "[info] request_id=unknown operation=startup port=8080\n", buf.String())
}
