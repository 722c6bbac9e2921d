package args

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindString holds text passed through unchanged.
	KindString Kind = iota
	// KindNumber holds a finite float64.
	KindNumber
	// KindBool holds true or false.
	KindBool
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// maxExactInt is the largest magnitude below which every integral float64 is
// exactly representable as an int64.
const maxExactInt = 1 << 53

// Value is a typed operation parameter. The zero Value is the empty string.
// Values are immutable once constructed.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
}

// StringValue returns a string Value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// NumberValue returns a number Value.
func NumberValue(f float64) Value { return Value{kind: KindNumber, num: f} }

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// Coerce infers the type of a raw command-line value. The first match wins:
// a finite decimal float literal becomes a number, "true"/"false" in any case
// becomes a bool, anything else stays a string exactly as given.
func Coerce(raw string) Value {
	if f, ok := parseNumber(raw); ok {
		return NumberValue(f)
	}
	switch strings.ToLower(raw) {
	case "true":
		return BoolValue(true)
	case "false":
		return BoolValue(false)
	}
	return StringValue(raw)
}

// parseNumber accepts decimal literals only: hexadecimal mantissas and the
// special spellings NaN/Inf stay strings because the API cannot carry them.
func parseNumber(raw string) (float64, bool) {
	if strings.ContainsAny(raw, "xX") {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// isIntegral reports whether a number has no fractional part and fits an int64
// without loss.
func isIntegral(f float64) bool {
	return f == math.Trunc(f) && math.Abs(f) < maxExactInt
}

// JSONValue returns the value in the form encoding/json should serialize.
// Integral numbers become int64 so they are written as integer literals;
// other numbers stay float64.
func (v Value) JSONValue() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		if isIntegral(v.num) {
			return int64(v.num)
		}
		return v.num
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// String renders the value for display (help output, debug logs).
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		if isIntegral(v.num) {
			return strconv.FormatInt(int64(v.num), 10)
		}
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}
