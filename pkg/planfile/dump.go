package planfile

import "github.com/pg-sharding/nullscan/pkg/plan"

// FromPhysicalContext writes the current state of pctx back as a document.
func FromPhysicalContext(pctx *plan.PhysicalContext) *Document {
	d := &Document{}
	for _, task := range pctx.Tasks {
		dt := Task{ID: task.ID}
		for _, mw := range task.Works {
			dt.Works = append(dt.Works, dumpWork(pctx, task, mw))
		}
		d.Tasks = append(d.Tasks, dt)
	}
	return d
}

func dumpWork(pctx *plan.PhysicalContext, task *plan.Task, mw *plan.MapWork) Work {
	dw := Work{
		Name:                     mw.Name,
		UseOneNullRowInputFormat: mw.UseOneNullRowInputFormat,
	}
	emitted := map[plan.Node]struct{}{}

	mw.AliasToWork.Range(func(alias string, root plan.Node) bool {
		pd, _ := mw.AliasToPartnInfo.Get(alias)
		dw.Aliases = append(dw.Aliases, Alias{
			Alias:     alias,
			Operator:  dumpOperator(root, alias, emitted),
			Partition: fromDesc(pd),
			Detached:  !pctx.IsTopOp(root),
		})
		return true
	})

	mw.PathToAliases.Range(func(path string, aliases []string) bool {
		dp := Path{Path: path, Aliases: append([]string(nil), aliases...)}
		if pd, ok := mw.PathToPartitionInfo.Get(path); ok && pd != nil {
			dp.Partition = *fromDesc(pd)
		}
		dw.Paths = append(dw.Paths, dp)
		return true
	})

	if reducer := task.Reducer(mw); reducer != nil {
		op := dumpOperator(reducer, "", emitted)
		dw.Reducer = &op
	}
	return dw
}

func dumpOperator(nd plan.Node, alias string, emitted map[plan.Node]struct{}) Operator {
	if _, ok := emitted[nd]; ok && nd.ID() != "" {
		return Operator{Ref: nd.ID()}
	}
	emitted[nd] = struct{}{}

	op := Operator{ID: nd.ID(), Kind: nd.Name()}
	switch n := nd.(type) {
	case *plan.TableScan:
		op.Table = n.Conf.TableName
		op.MetadataOnly = n.Conf.IsMetadataOnly
		if n.Conf.Alias != alias {
			op.Alias = n.Conf.Alias
		}
	case *plan.Filter:
		op.Predicate = n.Predicate
	case *plan.Limit:
		op.Limit = n.Limit
	}
	for _, child := range nd.Children() {
		op.Children = append(op.Children, dumpOperator(child, alias, emitted))
	}
	return op
}
