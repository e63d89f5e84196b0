package anchor

import (
	"fmt"
	"reflect"
)

// Anchor binds a single datum to the rules of a Dispatcher.
//
// The datum is captured when the Anchor is created and never changes.
type Anchor struct {
	data       any
	dispatcher *Dispatcher
}

// Value returns the wrapped datum.
func (a *Anchor) Value() any {
	return a.data
}

// To checks the datum against the named rule.
//
// It returns true and a nil error when the rule holds. When the rule fails,
// the *ValidationError is passed to the handler registered with OnError and
// To returns false with a nil error; without a handler the
// *ValidationError is returned. An unknown rule is always returned as an
// error matching ErrUnknownRule.
func (a *Anchor) To(rule string, opts ...CheckOption) (bool, error) {
	cfg := newCheckConfig(opts)
	res := a.dispatcher.match(a.data, rule, cfg)

	switch {
	case res.Passed:
		return true, nil
	case !res.Mismatch():
		return false, res.Err
	case cfg.onError != nil:
		cfg.onError(res.Err)
		return false, nil
	default:
		return false, res.Err
	}
}

// Match checks the datum against the named rule and reports the outcome as
// a Result. Handlers registered with OnError are not called.
func (a *Anchor) Match(rule string, opts ...CheckOption) Result {
	return a.dispatcher.match(a.data, rule, newCheckConfig(opts))
}

// ToRuleset accepts a loosely typed ruleset, as decoded from JSON or YAML.
//
// # A string or RuleRef is checked with To.
//
// Slices and arrays (plural rulesets) and maps and structs (compound
// rulesets) fail with ErrUnsupportedFeature. Anything else fails with
// ErrUnknownRule.
func (a *Anchor) ToRuleset(ruleset any, opts ...CheckOption) (bool, error) {
	switch rs := ruleset.(type) {
	case string:
		return a.To(rs, opts...)
	case RuleRef:
		return a.To(rs.Name, append(rs.Options(), opts...)...)
	case *RuleRef:
		if rs != nil {
			return a.To(rs.Name, append(rs.Options(), opts...)...)
		}
	}

	if ruleset != nil {
		switch reflect.TypeOf(ruleset).Kind() {
		case reflect.Slice, reflect.Array:
			return false, fmt.Errorf("%w: plural rulesets (arrays)", ErrUnsupportedFeature)
		case reflect.Map, reflect.Struct:
			return false, fmt.Errorf("%w: compound rulesets (objects)", ErrUnsupportedFeature)
		}
	}

	return false, fmt.Errorf("%w: %v", ErrUnknownRule, ruleset)
}

///////////////////////////////////////////////////////////////////////////////
// Reserved ruleset features
///////////////////////////////////////////////////////////////////////////////

// Defaults would populate missing values from a ruleset.
func (a *Anchor) Defaults(ruleset any) error {
	return fmt.Errorf("%w: default values", ErrUnsupportedFeature)
}

// Define would declare a custom named type.
func (a *Anchor) Define(name string) error {
	return fmt.Errorf("%w: custom type %q", ErrUnsupportedFeature, name)
}

// As would attach a custom ruleset.
func (a *Anchor) As(ruleset any) error {
	return fmt.Errorf("%w: custom rulesets", ErrUnsupportedFeature)
}

// Args would validate named arguments.
func (a *Anchor) Args(args any) error {
	return fmt.Errorf("%w: named arguments", ErrUnsupportedFeature)
}

// Usage would declare the permitted call signatures.
func (a *Anchor) Usage(usages ...any) error {
	return fmt.Errorf("%w: usage declarations", ErrUnsupportedFeature)
}
