package anchor

import (
	"math"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStringer struct{}

func (testStringer) String() string { return "stringer" }

type testTextMarshaler struct{}

func (testTextMarshaler) MarshalText() ([]byte, error) { return []byte("marshaled"), nil }

func TestStringify(t *testing.T) {
	var nilPtr *int
	five := 5
	ts := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"Nil", nil, ""},
		{"NilPointer", nilPtr, ""},
		{"String", "abc", "abc"},
		{"True", true, "true"},
		{"False", false, "false"},
		{"Int", 42, "42"},
		{"Int8", int8(-3), "-3"},
		{"Uint", uint(7), "7"},
		{"Float", 4.5, "4.5"},
		{"WholeFloat", 4.0, "4"},
		{"Float32", float32(0.1), "0.1"},
		{"NaN", math.NaN(), "NaN"},
		{"Inf", math.Inf(1), "Infinity"},
		{"NegInf", math.Inf(-1), "-Infinity"},
		{"Pointer", &five, "5"},
		{"Time", ts, "2020-01-02T03:04:05Z"},
		{"TimePointer", &ts, "2020-01-02T03:04:05Z"},
		{"Stringer", testStringer{}, "stringer"},
		{"TextMarshaler", testTextMarshaler{}, "marshaled"},
		{"Large", 1e21, "1e+21"},
		{"LargeNegative", -1.5e300, "-1.5e+300"},
		{"BelowExponentLimit", 123456789012345680000.0, "123456789012345680000"},
		{"Small", 1.5e-7, "1.5e-7"},
		{"SmallestPlain", 0.000001, "0.000001"},
		{"Zero", 0.0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stringify(tt.value))
		})
	}
}

func TestStringify_PointerChains(t *testing.T) {
	t.Run("SelfReference", func(t *testing.T) {
		var x any
		x = &x

		var got string
		require.NotPanics(t, func() { got = stringify(&x) })
		assert.Equal(t, "", got)

		ok, err := Check(&x, RuleAlpha)
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrValidationMismatch)
	})

	t.Run("Nested", func(t *testing.T) {
		s := "abc"
		p := &s
		pp := &p
		assert.Equal(t, "abc", stringify(&pp))
	})

	t.Run("NilInChain", func(t *testing.T) {
		var p *string
		assert.Equal(t, "", stringify(&p))
	})
}

func TestToTime(t *testing.T) {
	var nilTime *time.Time
	ts := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		value    any
		expected time.Time
		ok       bool
	}{
		{"Time", ts, ts, true},
		{"TimePointer", &ts, ts, true},
		{"NilTimePointer", nilTime, time.Time{}, false},
		{"DateOnly", "2020-01-02", ts, true},
		{"PaddedDate", " 2020-01-02 ", ts, true},
		{"SpaceSeparated", "2020-01-02 10:00:00", ts.Add(10 * time.Hour), true},
		{"NoZone", "2020-01-02T10:00:00", ts.Add(10 * time.Hour), true},
		{"RFC3339", "2020-01-02T10:00:00Z", ts.Add(10 * time.Hour), true},
		{"Garbage", "garbage", time.Time{}, false},
		{"EmptyString", "", time.Time{}, false},
		{"Int", 42, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := toTime(tt.value)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.expected.Equal(got), "expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestEntityKinds(t *testing.T) {
	t.Run("isSequence", func(t *testing.T) {
		assert.True(t, isSequence([]string{"a"}))
		assert.True(t, isSequence([]int(nil)))
		assert.True(t, isSequence([3]int{}))
		assert.False(t, isSequence("abc"))
		assert.False(t, isSequence(map[string]int{}))
		assert.False(t, isSequence(nil))
	})

	t.Run("isList", func(t *testing.T) {
		assert.True(t, isList([]string{"a"}))
		assert.True(t, isList([]byte("a")))
		assert.False(t, isList(net.ParseIP("10.0.0.1")))
		assert.False(t, isList(uuid.New()))
		assert.False(t, isList("abc"))
	})

	t.Run("isFunction", func(t *testing.T) {
		var nilFunc func()
		assert.True(t, isFunction(func() {}))
		assert.True(t, isFunction(nilFunc))
		assert.True(t, isFunction(t.Run))
		assert.False(t, isFunction("func"))
		assert.False(t, isFunction(nil))
	})

	t.Run("toFloat", func(t *testing.T) {
		f, ok := toFloat(uint16(3))
		assert.True(t, ok)
		assert.Equal(t, 3.0, f)

		f, ok = toFloat(-2)
		assert.True(t, ok)
		assert.Equal(t, -2.0, f)

		_, ok = toFloat("3")
		assert.False(t, ok)
	})
}
