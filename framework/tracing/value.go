package tracing

import "math/big"

// ValueKind discriminates the typed payload a Value carries. The set is
// closed and mirrors the value-coercion policy shared by every visitor
// in framework/visitor: it is the single source of truth for how a
// recorded field becomes a JSON member.
type ValueKind int

const (
	KindInt64 ValueKind = iota
	KindUint64
	KindBigInt // signed or unsigned integer wider than 64 bits
	KindFloat64
	KindBool
	KindBytes
	KindString
	KindDebug // formatted with the field's debug representation
	KindError // formatted with the error's display (no chain)
)

// Value is a single recorded field's typed payload. Exactly one of the
// fields is meaningful, selected by Kind.
type Value struct {
	Kind   ValueKind
	Int64  int64
	Uint64 uint64
	Big    *big.Int
	Float  float64
	Bool   bool
	Bytes  []byte
	Str    string
}

func Int64Value(v int64) Value   { return Value{Kind: KindInt64, Int64: v} }
func Uint64Value(v uint64) Value { return Value{Kind: KindUint64, Uint64: v} }

// BigIntValue carries a 128-bit (or otherwise wider-than-64-bit) integer.
// The coercion policy downgrades it to a JSON number when it fits in 64
// bits and to a decimal string otherwise.
func BigIntValue(v *big.Int) Value { return Value{Kind: KindBigInt, Big: v} }

func FloatValue(v float64) Value  { return Value{Kind: KindFloat64, Float: v} }
func BoolValue(v bool) Value      { return Value{Kind: KindBool, Bool: v} }
func BytesValue(v []byte) Value   { return Value{Kind: KindBytes, Bytes: v} }
func StringValue(v string) Value  { return Value{Kind: KindString, Str: v} }
func DebugValue(v string) Value   { return Value{Kind: KindDebug, Str: v} }
func ErrorValue(v error) Value {
	if v == nil {
		return Value{Kind: KindError, Str: ""}
	}
	return Value{Kind: KindError, Str: v.Error()}
}

// Visitor receives one callback per present field during an Event's or
// a span attribute set's Record walk, in declaration order.
type Visitor interface {
	VisitField(name string, index int, value Value)
}

// VisitorFunc adapts a function to a Visitor.
type VisitorFunc func(name string, index int, value Value)

func (f VisitorFunc) VisitField(name string, index int, value Value) { f(name, index, value) }
