package anchor

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isEven(value any, _ any) (bool, error) {
	n, ok := value.(int)
	return ok && n%2 == 0, nil
}

func TestRuleTable(t *testing.T) {
	t.Run("DefaultRuleTable", func(t *testing.T) {
		table := DefaultRuleTable()
		require.NotNil(t, table)

		assert.Equal(t, 26, table.Len())
		assert.Same(t, table, Rules())

		names := table.Names()
		assert.Len(t, names, table.Len())
		assert.True(t, sort.StringsAreSorted(names))

		for _, name := range []string{
			RuleEmpty, RuleUndefined, RuleString, RuleAlpha, RuleNumeric,
			RuleAlphanumeric, RuleEmail, RuleURL, RuleURLish, RuleIP,
			RuleCreditCard, RuleUUID, RuleInt, RuleInteger, RuleNumber,
			RuleFinite, RuleDecimal, RuleFloat, RuleFalsey, RuleTruthy,
			RuleNull, RuleBoolean, RuleArray, RuleDate, RuleAfter, RuleBefore,
		} {
			assert.True(t, table.Has(name), "missing rule %s", name)
		}
	})

	t.Run("TakesParam", func(t *testing.T) {
		table := DefaultRuleTable()
		for _, name := range table.Names() {
			rule, err := table.Lookup(name)
			require.NoError(t, err)

			switch name {
			case RuleUUID, RuleAfter, RuleBefore:
				assert.True(t, rule.TakesParam, name)
			default:
				assert.False(t, rule.TakesParam, name)
			}
		}
	})

	t.Run("Lookup_Unknown", func(t *testing.T) {
		_, err := DefaultRuleTable().Lookup("bogusRule")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownRule)
		assert.Contains(t, err.Error(), "bogusRule")
		assert.False(t, DefaultRuleTable().Has("bogusRule"))
	})

	t.Run("CustomRules", func(t *testing.T) {
		table, err := NewRuleTable(RuleTableOpts{
			Rules: []Rule{{Name: "even", Check: isEven}},
		})
		require.NoError(t, err)

		assert.Equal(t, DefaultRuleTable().Len()+1, table.Len())
		assert.True(t, table.Has("even"))
		assert.True(t, table.Has(RuleEmail))
		assert.False(t, DefaultRuleTable().Has("even"))
	})

	t.Run("ExcludeDefaults", func(t *testing.T) {
		table, err := NewRuleTable(RuleTableOpts{
			Rules:           []Rule{{Name: "even", Check: isEven}},
			ExcludeDefaults: true,
		})
		require.NoError(t, err)

		assert.Equal(t, 1, table.Len())
		assert.Equal(t, []string{"even"}, table.Names())
		assert.False(t, table.Has(RuleEmail))
	})

	t.Run("DuplicateName", func(t *testing.T) {
		_, err := NewRuleTable(RuleTableOpts{
			Rules: []Rule{{Name: RuleEmail, Check: isEven}},
		})
		assert.ErrorIs(t, err, ErrRuleAlreadyRegistered)
	})

	t.Run("InvalidRule", func(t *testing.T) {
		_, err := NewRuleTable(RuleTableOpts{
			Rules:           []Rule{{Name: "", Check: isEven}},
			ExcludeDefaults: true,
		})
		assert.ErrorIs(t, err, ErrInvalidRule)

		_, err = NewRuleTable(RuleTableOpts{
			Rules:           []Rule{{Name: "nocheck"}},
			ExcludeDefaults: true,
		})
		assert.ErrorIs(t, err, ErrInvalidRule)
	})

	t.Run("Names_ReturnsCopy", func(t *testing.T) {
		table := DefaultRuleTable()
		names := table.Names()
		names[0] = "mutated"
		assert.NotEqual(t, "mutated", table.Names()[0])
	})
}
