package nullscan

import (
	"sort"

	"github.com/pg-sharding/nullscan/pkg/config"
	"github.com/pg-sharding/nullscan/pkg/lib"
	"github.com/pg-sharding/nullscan/pkg/models/planerror"
	"github.com/pg-sharding/nullscan/pkg/plan"
)

// RuleTable is the rule table the walk of a map work is dispatched over.
type RuleTable = lib.RuleTable[*WalkerCtx]

type ruleFactory func() (lib.Rule, lib.NodeProcessor[*WalkerCtx])

var knownRules = map[string]ruleFactory{
	config.RuleMetadataOnly: func() (lib.Rule, lib.NodeProcessor[*WalkerCtx]) {
		return lib.MustRuleRegExp(config.RuleMetadataOnly, "TS%"), lib.NodeProcessorFunc[*WalkerCtx](tableScanProcessor)
	},
	config.RuleWhereFalse: func() (lib.Rule, lib.NodeProcessor[*WalkerCtx]) {
		return lib.MustRuleRegExp(config.RuleWhereFalse, "TS%.*FIL%"), lib.NodeProcessorFunc[*WalkerCtx](whereFalseProcessor)
	},
	config.RuleLimitZero: func() (lib.Rule, lib.NodeProcessor[*WalkerCtx]) {
		return lib.MustRuleRegExp(config.RuleLimitZero, "TS%.*LIM%"), lib.NodeProcessorFunc[*WalkerCtx](limitZeroProcessor)
	},
}

// KnownRules lists the rule names NewRuleTable accepts.
func KnownRules() []string {
	ret := make([]string, 0, len(knownRules))
	for name := range knownRules {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// NewRuleTable builds a rule table from rule names, registered in the
// given order. No names means the metadata-only rule alone.
func NewRuleTable(names ...string) (*RuleTable, error) {
	if len(names) == 0 {
		names = []string{config.RuleMetadataOnly}
	}
	rt := lib.NewRuleTable[*WalkerCtx]()
	seen := map[string]struct{}{}
	for _, name := range names {
		f, ok := knownRules[name]
		if !ok {
			return nil, planerror.Newf(planerror.NSCAN_CONFIG, "unknown null scan rule %q", name)
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		rt.Add(f())
	}
	return rt, nil
}

// tableScanProcessor picks up scans upstream analysis flagged metadata-only.
func tableScanProcessor(nd plan.Node, _ []plan.Node, ctx *WalkerCtx) error {
	if ts, ok := nd.(*plan.TableScan); ok && ts.Conf.IsMetadataOnly {
		ctx.AddMetadataOnlyTableScan(ts)
	}
	return nil
}

func whereFalseProcessor(nd plan.Node, stack []plan.Node, ctx *WalkerCtx) error {
	if fil, ok := nd.(*plan.Filter); ok && fil.AlwaysFalse() {
		markChainScan(stack, ctx)
	}
	return nil
}

func limitZeroProcessor(nd plan.Node, stack []plan.Node, ctx *WalkerCtx) error {
	if lim, ok := nd.(*plan.Limit); ok && lim.Limit == 0 {
		markChainScan(stack, ctx)
	}
	return nil
}

// markChainScan marks the table scan the stack starts from, provided every
// operator between it and the current node has a single child: the scan
// must feed nothing but the operator that discards all rows.
func markChainScan(stack []plan.Node, ctx *WalkerCtx) {
	start := -1
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].Kind() == plan.KindTableScan {
			start = i
			break
		}
	}
	if start < 0 {
		return
	}
	for _, nd := range stack[start : len(stack)-1] {
		if len(nd.Children()) != 1 {
			return
		}
	}
	if ts, ok := stack[start].(*plan.TableScan); ok {
		ctx.AddMetadataOnlyTableScan(ts)
	}
}
