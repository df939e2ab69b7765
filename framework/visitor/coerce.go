// Package visitor implements the field-visitor cascade shared by span
// recording and event formatting: RecordIntoSpan, ExtractMessage,
// SkipMessageAndLogMeta, and PresenceProbe all apply the same
// value-coercion policy, defined once here.
package visitor

import (
	"github.com/go-spanlog/spanlog/framework/jsonwriter"
	"github.com/go-spanlog/spanlog/framework/tracing"
)

// WriteCoerced writes v's JSON representation to w, applying the
// coercion policy:
//
//   - signed/unsigned integers ≤64 bits -> JSON number
//   - wider integers -> JSON number if they fit in 64 bits, else a
//     decimal string
//   - floats -> JSON number
//   - bool -> JSON boolean
//   - byte slices -> lower-case hex string, no separators
//   - strings (including debug- and error-formatted values) -> JSON string
//
// The caller is responsible for writing the key first, if any.
func WriteCoerced(w *jsonwriter.Writer, v tracing.Value) {
	switch v.Kind {
	case tracing.KindInt64:
		w.WriteInt64(v.Int64)
	case tracing.KindUint64:
		w.WriteUint64(v.Uint64)
	case tracing.KindBigInt:
		writeBigInt(w, v)
	case tracing.KindFloat64:
		w.WriteFloat64(v.Float)
	case tracing.KindBool:
		w.WriteBool(v.Bool)
	case tracing.KindBytes:
		w.WriteHexBytes(v.Bytes)
	case tracing.KindString, tracing.KindDebug, tracing.KindError:
		w.WriteString(v.Str)
	default:
		w.WriteNull()
	}
}

func writeBigInt(w *jsonwriter.Writer, v tracing.Value) {
	if v.Big == nil {
		w.WriteNull()
		return
	}
	switch {
	case v.Big.IsInt64():
		w.WriteInt64(v.Big.Int64())
	case v.Big.IsUint64():
		w.WriteUint64(v.Big.Uint64())
	default:
		w.WriteString(v.Big.String())
	}
}
