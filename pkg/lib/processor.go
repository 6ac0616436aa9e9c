package lib

import "github.com/pg-sharding/nullscan/pkg/plan"

// NodeProcessor handles a node the dispatcher selected it for. ctx is the
// walk accumulator; stack holds the ancestors of nd followed by nd and is
// only valid during the call.
type NodeProcessor[C any] interface {
	Process(nd plan.Node, stack []plan.Node, ctx C) error
}

type NodeProcessorFunc[C any] func(nd plan.Node, stack []plan.Node, ctx C) error

func (f NodeProcessorFunc[C]) Process(nd plan.Node, stack []plan.Node, ctx C) error {
	return f(nd, stack, ctx)
}

type ruleEntry[C any] struct {
	rule Rule
	proc NodeProcessor[C]
}

// RuleTable is an ordered set of (rule, processor) pairs. Registration order
// breaks ties between equally specific matches.
type RuleTable[C any] struct {
	entries []ruleEntry[C]
}

func NewRuleTable[C any]() *RuleTable[C] {
	return &RuleTable[C]{}
}

func (rt *RuleTable[C]) Add(r Rule, proc NodeProcessor[C]) *RuleTable[C] {
	rt.entries = append(rt.entries, ruleEntry[C]{rule: r, proc: proc})
	return rt
}

func (rt *RuleTable[C]) Len() int {
	return len(rt.entries)
}

func (rt *RuleTable[C]) Names() []string {
	ret := make([]string, 0, len(rt.entries))
	for _, e := range rt.entries {
		ret = append(ret, e.rule.Name())
	}
	return ret
}
