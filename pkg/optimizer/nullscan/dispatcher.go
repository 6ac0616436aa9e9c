package nullscan

import (
	"github.com/pg-sharding/nullscan/pkg/lib"
	"github.com/pg-sharding/nullscan/pkg/models/planerror"
	"github.com/pg-sharding/nullscan/pkg/plan"
	"github.com/pg-sharding/nullscan/pkg/planlog"
	"github.com/pkg/errors"
)

// TaskDispatcher goes over the map works of a task and moves every input
// path whose readers all match the rules onto the one-null-row source.
type TaskDispatcher struct {
	pctx  *plan.PhysicalContext
	rules *RuleTable
}

func NewTaskDispatcher(pctx *plan.PhysicalContext, rules *RuleTable) *TaskDispatcher {
	return &TaskDispatcher{
		pctx:  pctx,
		rules: rules,
	}
}

func (d *TaskDispatcher) Dispatch(task *plan.Task) error {
	for _, mapWork := range task.Works {
		planlog.Zero.Debug().Str("task", task.ID).Str("work", mapWork.Name).Msg("looking at map work")

		if mapWork.AliasToWork.Len() == 0 {
			/* sic! the remaining map works of the task are not looked at */
			planlog.Zero.Debug().Str("task", task.ID).Str("work", mapWork.Name).Msg("no top operators")
			return nil
		}

		planlog.Zero.Info().Str("work", mapWork.Name).Msg("looking for table scans where optimization is applicable")

		// the dispatcher fires the processor of the closest matching rule
		disp := lib.NewDefaultRuleDispatcher[*WalkerCtx](nil, d.rules)
		ogw := lib.NewPreOrderWalker[*WalkerCtx](disp)

		topNodes := make([]plan.Node, 0, mapWork.AliasToWork.Len()+1)
		for _, workOperator := range mapWork.AliasToWork.Values() {
			if d.pctx.IsTopOp(workOperator) {
				topNodes = append(topNodes, workOperator)
			}
		}
		if reducer := task.Reducer(mapWork); reducer != nil {
			topNodes = append(topNodes, reducer)
		}

		walkerCtx, err := ogw.StartWalking(topNodes, NewWalkerCtx())
		if err != nil {
			return &planerror.PlanError{
				Err:       errors.Wrapf(err, "walking operators of map work %s", mapWork.Name),
				ErrorCode: planerror.NSCAN_WALK_FAILED,
			}
		}

		planlog.Zero.Info().
			Str("work", mapWork.Name).
			Int("count", walkerCtx.Len()).
			Msgf("found %d null table scans", walkerCtx.Len())

		if walkerCtx.Len() > 0 {
			if err := d.rewriteWork(mapWork, walkerCtx.MetadataOnlyTableScans()); err != nil {
				return err
			}
		}
	}
	return nil
}
