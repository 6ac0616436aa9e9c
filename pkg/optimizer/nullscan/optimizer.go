package nullscan

import (
	"github.com/pg-sharding/nullscan/pkg/config"
	"github.com/pg-sharding/nullscan/pkg/models/planerror"
	"github.com/pg-sharding/nullscan/pkg/plan"
	"github.com/pg-sharding/nullscan/pkg/planlog"
	"github.com/pkg/errors"
)

var ErrNoScratchProvider = planerror.New("physical context has no scratch path provider", planerror.NSCAN_CONFIG)

// NullScanOptimizer is the physical plan resolver replacing scans answerable
// from metadata with a one-null-row read.
type NullScanOptimizer struct {
	enabled bool
	rules   *RuleTable
}

func NewNullScanOptimizer(cfg *config.NullScanCfg) (*NullScanOptimizer, error) {
	if cfg == nil {
		def := config.DefaultOptimizerCfg().NullScan
		cfg = &def
	}
	rules, err := NewRuleTable(cfg.Rules...)
	if err != nil {
		return nil, err
	}
	return &NullScanOptimizer{
		enabled: cfg.Enabled,
		rules:   rules,
	}, nil
}

// NewNullScanOptimizerWithRules runs the pass with a caller supplied rule table.
func NewNullScanOptimizerWithRules(rules *RuleTable) *NullScanOptimizer {
	return &NullScanOptimizer{
		enabled: true,
		rules:   rules,
	}
}

func (o *NullScanOptimizer) Rules() []string {
	return o.rules.Names()
}

// Resolve runs the pass over every task of pctx in order. The first error
// aborts the pass; tasks already rewritten stay rewritten and the plan must
// be discarded.
func (o *NullScanOptimizer) Resolve(pctx *plan.PhysicalContext) error {
	if !o.enabled {
		planlog.Zero.Debug().Msg("null scan optimizer disabled")
		return nil
	}
	if pctx.Scratch == nil {
		return ErrNoScratchProvider
	}

	disp := NewTaskDispatcher(pctx, o.rules)
	for _, task := range pctx.Tasks {
		if err := disp.Dispatch(task); err != nil {
			return errors.Wrapf(err, "null scan optimization of task %s", task.ID)
		}
	}
	return nil
}
