package anchor

import (
	"fmt"
	"time"
)

func dateRules() []Rule {
	return []Rule{
		{Name: RuleAfter, Check: isAfter, TakesParam: true},
		{Name: RuleBefore, Check: isBefore, TakesParam: true},
	}
}

// isAfter reports whether the datum is strictly after the param date, or
// after now when no param is given. A datum that is not a date fails; a
// param that is not a date is an error.
func isAfter(value any, param any) (bool, error) {
	ref, err := comparisonDate(param)
	if err != nil {
		return false, err
	}
	t, ok := toTime(value)
	if !ok {
		return false, nil
	}
	return t.After(ref), nil
}

// isBefore mirrors isAfter.
func isBefore(value any, param any) (bool, error) {
	ref, err := comparisonDate(param)
	if err != nil {
		return false, err
	}
	t, ok := toTime(value)
	if !ok {
		return false, nil
	}
	return t.Before(ref), nil
}

func comparisonDate(param any) (time.Time, error) {
	if param == nil {
		return time.Now(), nil
	}
	if s, ok := param.(string); ok && s == "" {
		return time.Now(), nil
	}
	t, ok := toTime(param)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid comparison date %q", stringify(param))
	}
	return t, nil
}
