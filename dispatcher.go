package anchor

import (
	"fmt"
	"log/slog"
)

// Dispatcher wraps data and runs checks against a RuleTable.
//
// A Dispatcher holds no per-check state. It is safe for concurrent use as
// long as the ErrorHandlers passed to it are.
type Dispatcher struct {
	rules  *RuleTable
	logger *slog.Logger
}

type DispatcherOpts struct {
	// Rules defaults to DefaultRuleTable().
	Rules *RuleTable
	// Logger receives a debug record per check. Defaults to discarding.
	Logger *slog.Logger
}

func NewDispatcher(opts DispatcherOpts) *Dispatcher {
	d := &Dispatcher{
		rules:  opts.Rules,
		logger: opts.Logger,
	}
	if d.rules == nil {
		d.rules = DefaultRuleTable()
	}
	if d.logger == nil {
		d.logger = slog.New(slog.DiscardHandler)
	}
	d.logger = d.logger.With(slog.String("component", "anchor"))
	return d
}

// Rules returns the dispatcher's rule table.
func (d *Dispatcher) Rules() *RuleTable {
	return d.rules
}

// New wraps entity.
//
// Functions and sequences (slices and arrays) are not supported and fail
// with ErrUnsupportedEntity. Sequences that implement fmt.Stringer or
// encoding.TextMarshaler, such as uuid.UUID and net.IP, are wrapped and
// checked by their text form.
func (d *Dispatcher) New(entity any) (*Anchor, error) {
	switch {
	case isFunction(entity):
		d.logger.Debug("rejected entity", slog.String("kind", "function"))
		return nil, fmt.Errorf("%w: functions", ErrUnsupportedEntity)
	case isList(entity):
		d.logger.Debug("rejected entity", slog.String("kind", "list"))
		return nil, fmt.Errorf("%w: list data sets", ErrUnsupportedEntity)
	}

	return &Anchor{
		data:       entity,
		dispatcher: d,
	}, nil
}

// MustNew is like New but panics if entity cannot be wrapped.
func (d *Dispatcher) MustNew(entity any) *Anchor {
	a, err := d.New(entity)
	if err != nil {
		panic(err)
	}
	return a
}

// Check wraps value and checks it against the named rule. See Anchor.To.
func (d *Dispatcher) Check(value any, rule string, opts ...CheckOption) (bool, error) {
	a, err := d.New(value)
	if err != nil {
		return false, err
	}
	return a.To(rule, opts...)
}

// match looks up ruleName and evaluates it against datum.
func (d *Dispatcher) match(datum any, ruleName string, cfg checkConfig) Result {
	res := Result{Datum: datum, Rule: ruleName}

	rule, err := d.rules.Lookup(ruleName)
	if err != nil {
		d.logger.Warn("unknown rule", slog.String("rule", ruleName))
		res.Err = err
		return res
	}

	var param any
	if rule.TakesParam && cfg.hasParam {
		param = cfg.param
	}

	passed, err := evaluate(rule, datum, param)
	if err == nil && passed {
		d.logger.Debug("check passed", slog.String("rule", ruleName))
		res.Passed = true
		return res
	}

	res.Err = &ValidationError{Datum: datum, Rule: ruleName, Cause: err}
	d.logger.Debug("check failed",
		slog.String("rule", ruleName),
		slog.Any("error", res.Err),
	)
	return res
}

// evaluate runs the rule's predicate, turning a panic into an error matching
// ErrRulePanicked.
func evaluate(rule Rule, datum, param any) (passed bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			passed = false
			err = fmt.Errorf("%w: %v", ErrRulePanicked, r)
		}
	}()
	return rule.Check(datum, param)
}

///////////////////////////////////////////////////////////////////////////////
// Default Dispatcher and Package Functions
///////////////////////////////////////////////////////////////////////////////

var _gDispatcher = NewDispatcher(DispatcherOpts{Rules: _gRuleTable})

// New wraps entity using the default dispatcher.
func New(entity any) (*Anchor, error) {
	return _gDispatcher.New(entity)
}

func MustNew(entity any) *Anchor {
	return _gDispatcher.MustNew(entity)
}

// Check wraps value and checks it against the named rule using the default
// dispatcher.
func Check(value any, rule string, opts ...CheckOption) (bool, error) {
	return _gDispatcher.Check(value, rule, opts...)
}

// Rules returns the default rule table.
func Rules() *RuleTable {
	return _gDispatcher.Rules()
}
