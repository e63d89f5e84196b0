package anchor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRuleRef(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		expected RuleRef
	}{
		{"NameOnly", "email", RuleRef{Name: "email"}},
		{"Padded", "  email  ", RuleRef{Name: "email"}},
		{"SimpleValue", "uuid:4", RuleRef{Name: "uuid", Param: "4", HasParam: true}},
		{"SpaceAfterDelimiter", "uuid: 4", RuleRef{Name: "uuid", Param: "4", HasParam: true}},
		{"ValueWithColons", "after:2020-01-01T00:00:00Z", RuleRef{Name: "after", Param: "2020-01-01T00:00:00Z", HasParam: true}},
		{"ScopedValue", "before:'2020-01-01 10:00:00'", RuleRef{Name: "before", Param: "2020-01-01 10:00:00", HasParam: true}},
		{"EscapedQuote", `x:'it\'s'`, RuleRef{Name: "x", Param: "it's", HasParam: true}},
		{"EscapedBackslash", `x:'a\\b'`, RuleRef{Name: "x", Param: `a\b`, HasParam: true}},
		{"OtherEscapeKept", `x:'a\nb'`, RuleRef{Name: "x", Param: `a\nb`, HasParam: true}},
		{"EmptyScopedValue", "x:''", RuleRef{Name: "x", Param: "", HasParam: true}},
		{"ScopedValueWithColon", "x:'b:c'", RuleRef{Name: "x", Param: "b:c", HasParam: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRuleRef(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseRuleRef_Errors(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		wantErr error
	}{
		{"Empty", "", ErrEmptyRuleRef},
		{"Blank", "   ", ErrEmptyRuleRef},
		{"MissingName", ":4", ErrInvalidRuleRef},
		{"MissingValue", "uuid:", ErrInvalidRuleRef},
		{"BlankValue", "uuid:  ", ErrInvalidRuleRef},
		{"UnquotedWhitespace", "before:2020-01-01 10:00:00", ErrInvalidRuleRef},
		{"Unterminated", "x:'abc", ErrInvalidRuleRef},
		{"TrailingGarbage", "x:'abc' y", ErrInvalidRuleRef},
		{"NameWithSpace", "bad name", ErrInvalidRuleRef},
		{"NameWithQuote", "a'b", ErrInvalidRuleRef},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRuleRef(tt.ref)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("MustParseRuleRef_Panics", func(t *testing.T) {
		assert.Panics(t, func() { MustParseRuleRef("") })
	})
}

func TestRuleRef_String(t *testing.T) {
	tests := []struct {
		name     string
		ref      RuleRef
		expected string
	}{
		{"NameOnly", RuleRef{Name: "email"}, "email"},
		{"Simple", RuleRef{Name: "uuid", Param: "4", HasParam: true}, "uuid:4"},
		{"Whitespace", RuleRef{Name: "before", Param: "2020-01-01 10:00:00", HasParam: true}, "before:'2020-01-01 10:00:00'"},
		{"Escapes", RuleRef{Name: "x", Param: `it's \ ok`, HasParam: true}, `x:'it\'s \\ ok'`},
		{"EmptyParam", RuleRef{Name: "x", HasParam: true}, "x:''"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.ref.String()
			assert.Equal(t, tt.expected, s)

			parsed, err := ParseRuleRef(s)
			require.NoError(t, err)
			assert.Equal(t, tt.ref, parsed)
		})
	}
}

func TestRuleRef_Check(t *testing.T) {
	const v4 = "f47ac10b-58cc-4372-a567-0e02b2c3d479"

	ok, err := MustParseRuleRef("uuid:4").Check(v4)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = MustParseRuleRef("uuid:1").Check(v4)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrValidationMismatch)

	ok, err = MustParseRuleRef("before:'2020-01-01 10:00:00'").Check("2020-01-01 09:59:59")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Nil(t, MustParseRuleRef("email").Options())
	assert.Len(t, MustParseRuleRef("uuid:4").Options(), 1)
}
