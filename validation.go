package anchor

import (
	"errors"
	"fmt"
)

///////////////////////////////////////////////////////////////////////////////
// Errors
///////////////////////////////////////////////////////////////////////////////

var (
	ErrUnsupportedEntity     = errors.New("anchor does not support this entity yet")
	ErrUnknownRule           = errors.New("unknown rule")
	ErrValidationMismatch    = errors.New("validation mismatch")
	ErrUnsupportedFeature    = errors.New("anchor does not support this feature yet")
	ErrRuleAlreadyRegistered = errors.New("a rule with this name is already registered")
	ErrInvalidRule           = errors.New("rule must have a non-empty name and a non-nil check")
	ErrInvalidJSON           = errors.New("invalid json document")
	ErrEmptyRuleRef          = errors.New("rule reference cannot be empty")
	ErrInvalidRuleRef        = errors.New("invalid rule reference")
	ErrRulePanicked          = errors.New("rule panicked")
)

// ValidationError reports that a datum did not satisfy a rule.
//
// Cause is set when the rule's predicate returned an error rather than a
// plain false.
type ValidationError struct {
	Datum any
	Rule  string
	Cause error
}

// Error implements the error interface
func (ve *ValidationError) Error() string {
	msg := fmt.Sprintf("validation error: %q is not of type %q", stringify(ve.Datum), ve.Rule)
	if ve.Cause != nil {
		msg += ": " + ve.Cause.Error()
	}
	return msg
}

// Is reports whether target is ErrValidationMismatch.
func (ve *ValidationError) Is(target error) bool {
	return target == ErrValidationMismatch
}

func (ve *ValidationError) Unwrap() error {
	return ve.Cause
}

// IsValidationError reports whether err is, or wraps, a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

///////////////////////////////////////////////////////////////////////////////
// Result
///////////////////////////////////////////////////////////////////////////////

// Result is the outcome of a single check.
//
// Err is nil when Passed is true. Otherwise it is either a *ValidationError
// or an error matching ErrUnknownRule.
type Result struct {
	Datum  any
	Rule   string
	Passed bool
	Err    error
}

// OK reports whether the check passed.
func (r Result) OK() bool {
	return r.Passed && r.Err == nil
}

// Mismatch reports whether the check failed because the rule did not hold,
// as opposed to the rule being unknown.
func (r Result) Mismatch() bool {
	return errors.Is(r.Err, ErrValidationMismatch)
}
