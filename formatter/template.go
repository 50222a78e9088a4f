package formatter

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const nan = "NaN"

// Interpolate substitutes args into template using an Inspector with
// DefaultMaxDepth.
func Interpolate(template string, args ...any) string {
	return Inspector{MaxDepth: DefaultMaxDepth}.Interpolate(template, args...)
}

// Interpolate substitutes args into template left to right. Each
// argument replaces the next placeholder:
//
//	%s  string          %d  number     %i  integer   %f  float
//	%j  JSON            %o  inline     %O  full dump
//
// Unused arguments are dropped and placeholders without an argument
// are left as written. "%%" renders a single percent sign. Unknown
// verbs are copied through and consume nothing. Without arguments the
// template is returned unchanged.
func (in Inspector) Interpolate(template string, args ...any) string {
	if len(args) == 0 {
		return template
	}

	var b strings.Builder
	b.Grow(len(template) + 16*len(args))

	next := 0
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' || i+1 == len(template) {
			b.WriteByte(c)
			continue
		}

		verb := template[i+1]
		switch verb {
		case '%':
			b.WriteByte('%')
			i++
		case 's', 'd', 'i', 'f', 'j', 'o', 'O':
			i++
			if next >= len(args) {
				b.WriteByte('%')
				b.WriteByte(verb)
				continue
			}
			b.WriteString(in.render(verb, args[next]))
			next++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func (in Inspector) render(verb byte, v any) string {
	switch verb {
	case 's':
		return in.str(v)
	case 'd':
		if s, ok := integer(v); ok {
			return s
		}
		f, ok := number(v)
		if !ok {
			return nan
		}
		return formatFloat(f)
	case 'i':
		if s, ok := integer(v); ok {
			return s
		}
		f, ok := number(v)
		if !ok {
			return nan
		}
		return formatFloat(math.Trunc(f))
	case 'f':
		f, ok := number(v)
		if !ok {
			return nan
		}
		return formatFloat(f)
	case 'j':
		s, err := json.MarshalToString(v)
		if err != nil {
			return "%!j(" + err.Error() + ")"
		}
		return s
	case 'o':
		return in.Inline(v)
	case 'O':
		return in.Dump(v)
	}
	return ""
}

func (in Inspector) str(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return x
	case []byte:
		return string(x)
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Pointer, reflect.Interface:
		return in.Inline(v)
	default:
		return fmt.Sprint(v)
	}
}

// integer formats integer kinds without a float round trip.
func integer(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	default:
		return "", false
	}
}

// number converts v to a float64 the way a loosely typed %d would.
func number(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case jsoniter.Number:
		f, err := x.Float64()
		return f, err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return nan
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
