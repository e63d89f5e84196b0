// Package anchor provides single-value validation against a fixed table of
// named rules.
//
// A value is wrapped once with New and then checked against exactly one rule
// by name:
//
//	ok, err := anchor.Check("test@example.com", anchor.RuleEmail)
//
//	a, err := anchor.New(42)
//	ok, err = a.To(anchor.RuleNumeric)
//
// The rule table is built once when the package is initialised and is never
// mutated afterwards, so checks are safe to run concurrently.
//
// A check ends in one of three ways:
//   - The rule passes: To returns true and a nil error.
//   - The rule fails (its predicate returns false or an error): To returns a
//     *ValidationError, which matches ErrValidationMismatch with errors.Is.
//     If an ErrorHandler was attached with OnError, the handler receives the
//     *ValidationError instead and To returns false with a nil error.
//   - The rule does not exist: To returns an error matching ErrUnknownRule.
//     Handlers are never consulted for this case.
//
// Functions and sequences (slices and arrays) cannot be wrapped; New rejects
// them with ErrUnsupportedEntity before any rule is looked up.
//
// Callers that prefer inspecting a value over branching on errors can use
// Match, which returns a Result carrying the outcome and failure cause.
//
// Rules that take a parameter (uuid, after, before) receive it through
// WithParam. Rule references such as `uuid:4` or `after:'2020-01-01'` can be
// parsed with ParseRuleRef.
//
// Several methods on Anchor (Defaults, Define, As, Args, Usage) reserve
// surface for ruleset features that are not supported. They always return
// ErrUnsupportedFeature.
package anchor

/**
PLANNING:
- Plural rulesets (["string", "alpha"]) and compound rulesets ({name: "string"})
  are rejected by ToRuleset. Settle on AND/OR semantics before enabling them.
- Defaults() needs a notion of "missing" for wrapped values; today only the
  JSON source distinguishes a missing path from a present one, and it folds
  both into nil.
*/
