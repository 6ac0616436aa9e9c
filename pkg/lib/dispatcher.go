package lib

import "github.com/pg-sharding/nullscan/pkg/plan"

type Dispatcher[C any] interface {
	Dispatch(nd plan.Node, stack []plan.Node, ctx C) error
}

// DefaultRuleDispatcher fires the processor of the closest matching rule:
// the highest cost wins, the first registered rule wins a tie. When no rule
// matches the default processor runs; a nil default means nothing happens.
type DefaultRuleDispatcher[C any] struct {
	defaultProc NodeProcessor[C]
	rules       *RuleTable[C]
}

var _ Dispatcher[struct{}] = &DefaultRuleDispatcher[struct{}]{}

func NewDefaultRuleDispatcher[C any](defaultProc NodeProcessor[C], rules *RuleTable[C]) *DefaultRuleDispatcher[C] {
	if rules == nil {
		rules = NewRuleTable[C]()
	}
	return &DefaultRuleDispatcher[C]{
		defaultProc: defaultProc,
		rules:       rules,
	}
}

// Match returns the rule selected for stack, nil if none matches.
func (d *DefaultRuleDispatcher[C]) Match(stack []plan.Node) (Rule, NodeProcessor[C]) {
	best := -1
	var rule Rule
	var proc NodeProcessor[C]
	for _, e := range d.rules.entries {
		if cost := e.rule.Cost(stack); cost >= 0 && cost > best {
			best = cost
			rule = e.rule
			proc = e.proc
		}
	}
	return rule, proc
}

func (d *DefaultRuleDispatcher[C]) Dispatch(nd plan.Node, stack []plan.Node, ctx C) error {
	rule, proc := d.Match(stack)
	if rule == nil {
		proc = d.defaultProc
	}
	if proc == nil {
		return nil
	}
	return proc.Process(nd, stack, ctx)
}
