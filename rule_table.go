package anchor

import (
	"fmt"
	"sort"
)

// Predicate classifies a datum. param is the rule's optional second
// argument, such as a UUID version or a comparison date, and is nil when the
// caller did not supply one.
//
// Returning an error marks the check as failed with that error as the cause.
// A panic is recovered and treated the same way, with a cause matching
// ErrRulePanicked.
type Predicate func(value any, param any) (bool, error)

// Rule is a named Predicate.
type Rule struct {
	Name  string
	Check Predicate
	// TakesParam marks rules that read their param. Params given to other
	// rules are dropped.
	TakesParam bool
}

// unary adapts a single-argument classifier into a Predicate.
func unary(fn func(value any) bool) Predicate {
	return func(value any, _ any) (bool, error) {
		return fn(value), nil
	}
}

// RuleTable is an immutable mapping from rule name to Rule.
//
// A RuleTable is fully populated by NewRuleTable and has no methods that
// modify it, so a single table can be shared by any number of goroutines.
type RuleTable struct {
	m map[string]Rule // rule name -> rule
}

type RuleTableOpts struct {
	Rules           []Rule
	ExcludeDefaults bool
}

// builtinRules returns the built-in rules in table order.
func builtinRules() []Rule {
	var rules []Rule
	rules = append(rules, stringRules()...)
	rules = append(rules, formatRules()...)
	rules = append(rules, uuidRules()...)
	rules = append(rules, numericRules()...)
	rules = append(rules, typeRules()...)
	rules = append(rules, dateRules()...)
	return rules
}

// NewRuleTable builds a table from the built-in rules, unless
// opts.ExcludeDefaults is set, followed by opts.Rules.
//
// Registering two rules with the same name fails with
// ErrRuleAlreadyRegistered.
func NewRuleTable(opts RuleTableOpts) (*RuleTable, error) {
	rt := &RuleTable{
		m: make(map[string]Rule),
	}

	if !opts.ExcludeDefaults {
		for _, rule := range builtinRules() {
			if err := rt.register(rule); err != nil {
				return nil, err
			}
		}
	}

	for _, rule := range opts.Rules {
		if err := rt.register(rule); err != nil {
			return nil, err
		}
	}

	return rt, nil
}

// register is only called while the table is being built.
func (rt *RuleTable) register(rule Rule) error {
	if rule.Name == "" || rule.Check == nil {
		return fmt.Errorf("%w: %q", ErrInvalidRule, rule.Name)
	}

	if _, exists := rt.m[rule.Name]; exists {
		return fmt.Errorf("%w: %s", ErrRuleAlreadyRegistered, rule.Name)
	}

	rt.m[rule.Name] = rule
	return nil
}

// Lookup returns the rule registered under name, or an error matching
// ErrUnknownRule.
func (rt *RuleTable) Lookup(name string) (Rule, error) {
	rule, exists := rt.m[name]
	if !exists {
		return Rule{}, fmt.Errorf("%w: %s", ErrUnknownRule, name)
	}
	return rule, nil
}

func (rt *RuleTable) Has(name string) bool {
	_, exists := rt.m[name]
	return exists
}

// Names returns every rule name in sorted order.
func (rt *RuleTable) Names() []string {
	names := make([]string, 0, len(rt.m))
	for name := range rt.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (rt *RuleTable) Len() int {
	return len(rt.m)
}

///////////////////////////////////////////////////////////////////////////////
// Default Table
///////////////////////////////////////////////////////////////////////////////

// Must be initialised before _gDispatcher.
var _gRuleTable = mustNewRuleTable(RuleTableOpts{})

func mustNewRuleTable(opts RuleTableOpts) *RuleTable {
	rt, err := NewRuleTable(opts)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize default RuleTable: %v", err))
	}
	return rt
}

// DefaultRuleTable returns the table of built-in rules.
func DefaultRuleTable() *RuleTable {
	return _gRuleTable
}
