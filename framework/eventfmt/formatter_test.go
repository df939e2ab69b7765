package eventfmt_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-spanlog/spanlog/framework/callsite"
	"github.com/go-spanlog/spanlog/framework/eventfmt"
	"github.com/go-spanlog/spanlog/framework/spanfields"
	"github.com/go-spanlog/spanlog/framework/tracing"
)

var frozenClock = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func fields(names ...string) []tracing.FieldDescriptor {
	out := make([]tracing.FieldDescriptor, len(names))
	for i, n := range names {
		out[i] = tracing.FieldDescriptor{Name: n}
	}
	return out
}

func newFormatter(extractNames []string) *eventfmt.Formatter {
	opts := eventfmt.Options{
		ProcessID:    func() int { return 1234 },
		ExtractNames: extractNames,
	}
	return eventfmt.New(opts, 42)
}

func TestBareEventNoSpans(t *testing.T) {
	reg := callsite.NewRegistry()
	meta := &tracing.Metadata{Level: tracing.LevelInfo, Target: "svc", Fields: fields("message")}
	event := tracing.NewEvent(meta, func(v tracing.Visitor) {
		v.VisitField("message", 0, tracing.StringValue("hello"))
	})

	f := newFormatter(nil)
	line := f.Format(frozenClock, context.Background(), event, &tracing.Scope{}, reg)

	expected := `{"timestamp":"2024-01-15T12:00:00.000000Z","level":"INFO","message":"hello","spans":{},"process_id":1234,"thread_id":42,"target":"svc"}` + "\n"
	assert.Equal(t, expected, string(line))
}

func TestDedupAtCallSiteKeepsLastOccurrence(t *testing.T) {
	reg := callsite.NewRegistry()
	meta := &tracing.Metadata{Level: tracing.LevelInfo, Target: "svc", Fields: fields("a", "a", "a")}
	event := tracing.NewEvent(meta, func(v tracing.Visitor) {
		v.VisitField("a", 0, tracing.Int64Value(1))
		v.VisitField("a", 1, tracing.Int64Value(2))
		v.VisitField("a", 2, tracing.Int64Value(3))
	})

	f := newFormatter(nil)
	line := f.Format(frozenClock, context.Background(), event, &tracing.Scope{}, reg)

	assert.Contains(t, string(line), `"fields":{"a":3}`)
}

func TestNestedSpansAndExtractProjection(t *testing.T) {
	reg := callsite.NewRegistry()

	outerMeta := &tracing.Metadata{IsSpan: true, Name: "outer", Fields: fields("request_id")}
	innerMeta := &tracing.Metadata{IsSpan: true, Name: "inner", Fields: fields("request_id", "x")}

	outer := tracing.NewSpan(outerMeta)
	spanfields.Install(outer.Extensions).Set("request_id", tracing.StringValue("r"))
	_, err := reg.RecordFor(outerMeta)
	require.NoError(t, err)

	inner := tracing.NewSpan(innerMeta)
	store := spanfields.Install(inner.Extensions)
	store.Set("request_id", tracing.StringValue("r2"))
	store.Set("x", tracing.Int64Value(1))
	_, err = reg.RecordFor(innerMeta)
	require.NoError(t, err)

	ctx := tracing.Enter(context.Background(), outer)
	ctx = tracing.Enter(ctx, inner)
	scope := tracing.FromContext(ctx)

	eventMeta := &tracing.Metadata{Level: tracing.LevelInfo, Target: "svc", Fields: fields("message")}
	event := tracing.NewEvent(eventMeta, func(v tracing.Visitor) {
		v.VisitField("message", 0, tracing.StringValue("go"))
	})

	f := newFormatter([]string{"request_id", "session_id", "conn_id"})
	line := f.Format(frozenClock, ctx, event, scope, reg)

	out := string(line)
	assert.Contains(t, out, `"spans":{"outer#1":{"request_id":"r"},"inner#2":{"request_id":"r2","x":1}}`)
	assert.Contains(t, out, `"extract":{"request_id":"r2"}`)
}

func TestSameSpanNameDifferentCallsitesGetDistinctKeys(t *testing.T) {
	reg := callsite.NewRegistry()

	meta1 := &tracing.Metadata{IsSpan: true, Name: "handler"}
	meta2 := &tracing.Metadata{IsSpan: true, Name: "handler"}

	s1 := tracing.NewSpan(meta1)
	_, err := reg.RecordFor(meta1)
	require.NoError(t, err)
	s2 := tracing.NewSpan(meta2)
	_, err = reg.RecordFor(meta2)
	require.NoError(t, err)

	ctx := tracing.Enter(context.Background(), s1)
	ctx = tracing.Enter(ctx, s2)
	scope := tracing.FromContext(ctx)

	eventMeta := &tracing.Metadata{Level: tracing.LevelInfo, Target: "svc"}
	event := tracing.NewEvent(eventMeta, func(tracing.Visitor) {})

	f := newFormatter(nil)
	line := f.Format(frozenClock, ctx, event, scope, reg)

	assert.Contains(t, string(line), `"spans":{"handler#1":{},"handler#2":{}}`)
}

func TestWideIntegerOverflowsToDecimalString(t *testing.T) {
	reg := callsite.NewRegistry()
	meta := &tracing.Metadata{Level: tracing.LevelInfo, Target: "svc", Fields: fields("big")}
	u128Max := new(big.Int)
	u128Max.SetString("340282366920938463463374607431768211455", 10)
	event := tracing.NewEvent(meta, func(v tracing.Visitor) {
		v.VisitField("big", 0, tracing.BigIntValue(u128Max))
	})

	f := newFormatter(nil)
	line := f.Format(frozenClock, context.Background(), event, &tracing.Scope{}, reg)

	assert.Contains(t, string(line), `"fields":{"big":"340282366920938463463374607431768211455"}`)
}

func TestMissingMessageEmitsEmptyString(t *testing.T) {
	reg := callsite.NewRegistry()
	meta := &tracing.Metadata{Level: tracing.LevelInfo, Target: "svc", Fields: fields("a")}
	event := tracing.NewEvent(meta, func(v tracing.Visitor) {
		v.VisitField("a", 0, tracing.Int64Value(1))
	})

	f := newFormatter(nil)
	line := f.Format(frozenClock, context.Background(), event, &tracing.Scope{}, reg)

	out := string(line)
	assert.Contains(t, out, `"message":""`)
	assert.Contains(t, out, `"fields":{"a":1}`)
}

func TestModuleSuppressedWhenEqualToTarget(t *testing.T) {
	reg := callsite.NewRegistry()
	meta := &tracing.Metadata{Level: tracing.LevelInfo, Target: "svc", Module: "svc"}
	event := tracing.NewEvent(meta, func(tracing.Visitor) {})

	f := newFormatter(nil)
	line := f.Format(frozenClock, context.Background(), event, &tracing.Scope{}, reg)

	assert.NotContains(t, string(line), `"module"`)
}

func TestProcessIDSuppressedWhenOne(t *testing.T) {
	reg := callsite.NewRegistry()
	meta := &tracing.Metadata{Level: tracing.LevelInfo, Target: "svc"}
	event := tracing.NewEvent(meta, func(tracing.Visitor) {})

	opts := eventfmt.Options{ProcessID: func() int { return 1 }}
	f := eventfmt.New(opts, 1)
	line := f.Format(frozenClock, context.Background(), event, &tracing.Scope{}, reg)

	assert.NotContains(t, string(line), `"process_id"`)
}
