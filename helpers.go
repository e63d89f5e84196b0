package anchor

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

///////////////////////////////////////////////////////////////////////////////
// Helpers
///////////////////////////////////////////////////////////////////////////////

// stringify returns the string form of a datum, the way format rules see it.
//
// Currently supports:
//   - nil and nil pointers become ""
//   - strings are returned as-is
//   - bools become "true" / "false"
//   - integers and floats use their shortest decimal form (NaN, Infinity)
//   - time.Time and *time.Time use RFC 3339
//   - fmt.Stringer implementations use String(), then
//     encoding.TextMarshaler implementations use MarshalText()
//   - pointers are followed up to maxIndirections deep; deeper chains,
//     including self-referencing ones, become ""
//   - any other value uses fmt.Sprint
func stringify(value any) string {
	if isNilValue(value) {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	case *time.Time:
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	case encoding.TextMarshaler:
		if text, err := v.MarshalText(); err == nil {
			return string(text)
		}
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return formatFloat(rv.Float(), rv.Type().Bits())
	case reflect.Ptr, reflect.Interface:
		for range maxIndirections {
			if rv.Kind() != reflect.Ptr && rv.Kind() != reflect.Interface {
				return stringify(rv.Interface())
			}
			if rv.IsNil() {
				return ""
			}
			rv = rv.Elem()
		}
		return ""
	default:
		return fmt.Sprint(value)
	}
}

// formatFloat formats f the way JavaScript's String(number) does: plain
// decimal notation, switching to exponent notation ("1e+21", "1.5e-7") at
// magnitudes of 1e21 and above or below 1e-6.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	if abs := math.Abs(f); abs >= 1e21 || (abs != 0 && abs < 1e-6) {
		s := strconv.FormatFloat(f, 'e', -1, bits)
		// Go pads the exponent to two digits; only small exponents reach here
		// padded, since large ones start at 21.
		return strings.Replace(s, "e-0", "e-", 1)
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}

// isNumberKind reports whether the datum's kind is an integer or float kind.
func isNumberKind(value any) bool {
	if value == nil {
		return false
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// toFloat converts a numeric datum to float64.
func toFloat(value any) (float64, bool) {
	if !isNumberKind(value) {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	default:
		return float64(rv.Int()), true
	}
}

// isNilValue reports whether the datum is nil, or a typed nil of a kind
// that can hold one.
func isNilValue(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Interface, reflect.Chan, reflect.Func, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

// isFalsey follows JavaScript truthiness: nil, false, 0, NaN and "" are
// falsey. Structs, non-nil pointers and non-empty strings are truthy.
func isFalsey(value any) bool {
	if isNilValue(value) {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.String:
		return rv.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	default:
		return false
	}
}

// toTime interprets a datum as a point in time.
//
// time.Time and non-nil *time.Time are used directly. Strings are parsed
// with each of timeLayouts in order.
func toTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	case string:
		return parseTime(v)
	}
	return time.Time{}, false
}

// parseTime tries the supported layouts against s.
func parseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// isList reports whether the datum is a slice or an array that is not also a
// textual value. uuid.UUID and net.IP are byte sequences underneath but are
// handled as the strings they print as.
func isList(value any) bool {
	return isSequence(value) && !isTextual(value)
}

// isTextual reports whether the datum has its own text form.
func isTextual(value any) bool {
	switch value.(type) {
	case fmt.Stringer, encoding.TextMarshaler:
		return true
	default:
		return false
	}
}

// isSequence reports whether the datum is a slice or an array.
func isSequence(value any) bool {
	if value == nil {
		return false
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// isFunction reports whether the datum is a function value.
func isFunction(value any) bool {
	return value != nil && reflect.TypeOf(value).Kind() == reflect.Func
}
