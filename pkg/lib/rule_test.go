package lib_test

import (
	"testing"

	"github.com/pg-sharding/nullscan/pkg/lib"
	"github.com/pg-sharding/nullscan/pkg/plan"
	"github.com/stretchr/testify/assert"
)

func stackOf(kinds ...plan.OperatorKind) []plan.Node {
	ret := make([]plan.Node, 0, len(kinds))
	for _, k := range kinds {
		ret = append(ret, plan.NewGeneric(k.String(), k))
	}
	return ret
}

func TestRuleCost(t *testing.T) {
	assert := assert.New(t)

	type tcase struct {
		name  string
		rule  lib.Rule
		stack []plan.Node
		cost  int
	}

	for _, tt := range []tcase{
		{
			name:  "regexp single",
			rule:  lib.MustRuleRegExp("ts", "TS%"),
			stack: stackOf(plan.KindTableScan),
			cost:  3,
		},
		{
			name:  "regexp anchored at current node",
			rule:  lib.MustRuleRegExp("ts", "TS%"),
			stack: stackOf(plan.KindTableScan, plan.KindFilter),
			cost:  -1,
		},
		{
			name:  "regexp through intermediate operators",
			rule:  lib.MustRuleRegExp("fil", "TS%.*FIL%"),
			stack: stackOf(plan.KindTableScan, plan.KindSelect, plan.KindFilter),
			cost:  len("TS%SEL%FIL%"),
		},
		{
			name:  "regexp no match",
			rule:  lib.MustRuleRegExp("fil", "TS%.*FIL%"),
			stack: stackOf(plan.KindSelect, plan.KindFilter),
			cost:  -1,
		},
		{
			name:  "exact path",
			rule:  lib.NewRuleExactPath("ts-fil", "TS", "FIL"),
			stack: stackOf(plan.KindGroupBy, plan.KindTableScan, plan.KindFilter),
			cost:  len("TS%FIL%"),
		},
		{
			name:  "exact path mismatch",
			rule:  lib.NewRuleExactPath("ts-fil", "TS", "FIL"),
			stack: stackOf(plan.KindTableScan, plan.KindSelect, plan.KindFilter),
			cost:  -1,
		},
		{
			name:  "exact path longer than stack",
			rule:  lib.NewRuleExactPath("ts-fil", "TS", "FIL"),
			stack: stackOf(plan.KindFilter),
			cost:  -1,
		},
		{
			name:  "kind",
			rule:  lib.NewRuleKind("lim", plan.KindLimit),
			stack: stackOf(plan.KindTableScan, plan.KindLimit),
			cost:  len("LIM%"),
		},
		{
			name:  "kind empty stack",
			rule:  lib.NewRuleKind("lim", plan.KindLimit),
			stack: nil,
			cost:  -1,
		},
	} {
		assert.Equal(tt.cost, tt.rule.Cost(tt.stack), tt.name)
	}
}

func TestRuleRegExpBadPattern(t *testing.T) {
	_, err := lib.NewRuleRegExp("bad", "TS%(")
	assert.Error(t, err)
	assert.Panics(t, func() { lib.MustRuleRegExp("bad", "TS%(") })
}
