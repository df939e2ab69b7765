package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-spanlog/spanlog/framework/extract"
	"github.com/go-spanlog/spanlog/framework/jsonwriter"
	"github.com/go-spanlog/spanlog/framework/tracing"
)

func TestUntouchedBufferReportsNotTouched(t *testing.T) {
	b := extract.NewBuffer([]string{"request_id", "session_id", "conn_id"})
	assert.False(t, b.Touched())
}

func TestSetIgnoresUnconfiguredNames(t *testing.T) {
	b := extract.NewBuffer([]string{"request_id"})
	b.Set("unrelated", tracing.StringValue("x"))
	assert.False(t, b.Touched())
}

func TestLastWriteWinsAndOrderPreserved(t *testing.T) {
	b := extract.NewBuffer([]string{"request_id", "session_id", "conn_id"})
	b.Set("session_id", tracing.StringValue("s1"))
	b.Set("request_id", tracing.StringValue("r1"))
	b.Set("request_id", tracing.StringValue("r2")) // inner span overwrites outer

	w := jsonwriter.New()
	b.WriteTo(w)
	assert.Equal(t, `{"request_id":"r2","session_id":"s1"}`, string(w.Bytes()))
}

func TestResetClearsAllSlots(t *testing.T) {
	b := extract.NewBuffer([]string{"request_id"})
	b.Set("request_id", tracing.StringValue("r1"))
	b.Reset()
	assert.False(t, b.Touched())

	w := jsonwriter.New()
	b.WriteTo(w)
	assert.Equal(t, `{}`, string(w.Bytes()))
}
