package planfile

import (
	"github.com/pg-sharding/nullscan/pkg/models/planerror"
	"github.com/pg-sharding/nullscan/pkg/plan"
)

// TopOpKey is the key a work's alias root is registered under in the top operators.
func TopOpKey(work, alias string) string {
	return work + "/" + alias
}

// Build turns the document into a physical context owning fresh plan objects.
func (d *Document) Build(scratch plan.PathProvider) (*plan.PhysicalContext, error) {
	pctx := plan.NewPhysicalContext(scratch)
	for _, dt := range d.Tasks {
		task := plan.NewTask(dt.ID)
		for _, dw := range dt.Works {
			mw, reducer, err := buildWork(pctx, &dw)
			if err != nil {
				return nil, err
			}
			task.Works = append(task.Works, mw)
			if reducer != nil {
				task.SetReducer(mw, reducer)
			}
		}
		pctx.Tasks = append(pctx.Tasks, task)
	}
	return pctx, nil
}

func buildWork(pctx *plan.PhysicalContext, dw *Work) (*plan.MapWork, plan.Node, error) {
	mw := plan.NewMapWork(dw.Name)
	mw.UseOneNullRowInputFormat = dw.UseOneNullRowInputFormat
	nodes := map[string]plan.Node{}

	for _, a := range dw.Aliases {
		root, err := buildOperator(&a.Operator, a.Alias, nodes)
		if err != nil {
			return nil, nil, err
		}
		mw.AddAlias(a.Alias, root, a.Partition.toDesc())
		if !a.Detached {
			pctx.TopOps.Put(TopOpKey(dw.Name, a.Alias), root)
		}
	}
	for _, p := range dw.Paths {
		mw.AddPath(p.Path, p.Partition.toDesc(), p.Aliases...)
	}

	var reducer plan.Node
	if dw.Reducer != nil {
		var err error
		if reducer, err = buildOperator(dw.Reducer, "", nodes); err != nil {
			return nil, nil, err
		}
	}

	if err := mw.Validate(); err != nil {
		return nil, nil, &planerror.PlanError{Err: err, ErrorCode: planerror.NSCAN_PLAN_FILE}
	}
	return mw, reducer, nil
}

func buildOperator(op *Operator, alias string, nodes map[string]plan.Node) (plan.Node, error) {
	if op.Ref != "" {
		nd, ok := nodes[op.Ref]
		if !ok {
			return nil, planerror.Newf(planerror.NSCAN_PLAN_FILE, "operator %q referenced before its definition", op.Ref)
		}
		return nd, nil
	}

	kind, ok := plan.KindByName(op.Kind)
	if !ok {
		return nil, planerror.Newf(planerror.NSCAN_PLAN_FILE, "operator %q has unknown kind %q", op.ID, op.Kind)
	}

	var nd plan.Node
	switch kind {
	case plan.KindTableScan:
		if op.Alias != "" {
			alias = op.Alias
		}
		nd = plan.NewTableScan(op.ID, &plan.TableScanDesc{
			Alias:          alias,
			TableName:      op.Table,
			IsMetadataOnly: op.MetadataOnly,
		})
	case plan.KindFilter:
		nd = plan.NewFilter(op.ID, op.Predicate)
	case plan.KindLimit:
		nd = plan.NewLimit(op.ID, op.Limit)
	default:
		nd = plan.NewGeneric(op.ID, kind)
	}

	if op.ID != "" {
		if _, dup := nodes[op.ID]; dup {
			return nil, planerror.Newf(planerror.NSCAN_PLAN_FILE, "operator id %q defined twice", op.ID)
		}
		nodes[op.ID] = nd
	}

	for i := range op.Children {
		child, err := buildOperator(&op.Children[i], alias, nodes)
		if err != nil {
			return nil, err
		}
		nd.AddChild(child)
	}
	return nd, nil
}
