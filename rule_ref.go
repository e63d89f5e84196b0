package anchor

import (
	"errors"
	"fmt"
	"strings"
)

// This file contains the parser for rule references, the textual form used
// to name a rule together with its optional parameter. It follows the same
// key:'value' sub-tag grammar as struct tags:
//
// rule_ref:
//     <rule_name> | <rule_name>:<simple_value> | <rule_name>:'<scoped_value>'
// rule_name:
//     <string without whitespace, ':' or '\''>
// simple_value:
//     <string without whitespace>
// scoped_value:
//     <any string; \' is a literal quote and \\ a literal backslash>
//
// Examples:
//     email
//     uuid:4
//     after:2020-01-01T00:00:00Z
//     before:'2020-01-01 10:00:00'

// RuleRef names a rule and, optionally, its parameter.
type RuleRef struct {
	Name     string
	Param    string
	HasParam bool
}

// ParseRuleRef parses a rule reference such as `uuid:4` or
// `after:'2020-01-01 10:00:00'`.
func ParseRuleRef(ref string) (RuleRef, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return RuleRef{}, ErrEmptyRuleRef
	}

	idx := strings.Index(ref, RuleRefKeyValueDelimiter)
	if idx == -1 {
		if err := validateRuleName(ref); err != nil {
			return RuleRef{}, err
		}
		return RuleRef{Name: ref}, nil
	}

	name := strings.TrimSpace(ref[:idx])
	if err := validateRuleName(name); err != nil {
		return RuleRef{}, err
	}

	rest := strings.TrimLeft(ref[idx+len(RuleRefKeyValueDelimiter):], " \t")
	if rest == "" {
		return RuleRef{}, fmt.Errorf("%w: no value found after rule %q", ErrInvalidRuleRef, name)
	}

	// Simple value, runs to the end of the reference.
	if rest[0] != RuleRefScopeDelimiter {
		if strings.ContainsAny(rest, " \t") {
			return RuleRef{}, fmt.Errorf("%w: unquoted value for rule %q contains whitespace", ErrInvalidRuleRef, name)
		}
		return RuleRef{Name: name, Param: rest, HasParam: true}, nil
	}

	value, end, err := scanScopedValue(rest, RuleRefScopeDelimiter)
	if err != nil {
		return RuleRef{}, fmt.Errorf("%w: %s: %w", ErrInvalidRuleRef, name, err)
	}
	if trailing := strings.TrimSpace(rest[end:]); trailing != "" {
		return RuleRef{}, fmt.Errorf("%w: unexpected %q after value of rule %q", ErrInvalidRuleRef, trailing, name)
	}

	return RuleRef{Name: name, Param: value, HasParam: true}, nil
}

// MustParseRuleRef is like ParseRuleRef but panics on error.
func MustParseRuleRef(ref string) RuleRef {
	r, err := ParseRuleRef(ref)
	if err != nil {
		panic(err)
	}
	return r
}

func validateRuleName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: missing rule name", ErrInvalidRuleRef)
	}
	if strings.ContainsAny(name, " \t'") {
		return fmt.Errorf("%w: rule name %q", ErrInvalidRuleRef, name)
	}
	return nil
}

// scanScopedValue reads a delimited value starting at s[0], which must be
// delim. It returns the unescaped value and the index just past the closing
// delimiter.
func scanScopedValue(s string, delim byte) (string, int, error) {
	var builder strings.Builder
	escaped := false

	for i := 1; i < len(s); i++ {
		c := s[i]

		if escaped {
			// Only the delimiter and the escape byte itself are escapable;
			// anything else keeps its backslash.
			if c != delim && c != RuleRefEscape {
				builder.WriteByte(RuleRefEscape)
			}
			builder.WriteByte(c)
			escaped = false
			continue
		}

		switch c {
		case RuleRefEscape:
			escaped = true
		case delim:
			return builder.String(), i + 1, nil
		default:
			builder.WriteByte(c)
		}
	}

	return "", 0, errors.New("unterminated value")
}

// String formats the reference so that ParseRuleRef returns it unchanged.
func (r RuleRef) String() string {
	if !r.HasParam {
		return r.Name
	}
	if r.Param != "" && !strings.ContainsAny(r.Param, " \t'\\") {
		return r.Name + RuleRefKeyValueDelimiter + r.Param
	}

	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(r.Param)
	return r.Name + RuleRefKeyValueDelimiter + "'" + escaped + "'"
}

// Options returns the check options carrying the reference's parameter.
func (r RuleRef) Options() []CheckOption {
	if !r.HasParam {
		return nil
	}
	return []CheckOption{WithParam(r.Param)}
}

// Check wraps value with the default dispatcher and checks it against the
// referenced rule.
func (r RuleRef) Check(value any, opts ...CheckOption) (bool, error) {
	return Check(value, r.Name, append(r.Options(), opts...)...)
}
