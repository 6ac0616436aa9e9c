package nullscan_test

import (
	"github.com/pg-sharding/nullscan/pkg/plan"
)

type alias struct {
	name     string
	eligible bool
	// body hangs below the table scan.
	body plan.Node
}

type input struct {
	path    string
	spec    plan.PartSpec
	table   string
	aliases []string
}

// buildWork creates a map work with one table scan per alias, registered
// as top operators of pctx.
func buildWork(pctx *plan.PhysicalContext, name string, aliases []alias, inputs []input) (*plan.MapWork, map[string]*plan.TableScan) {
	mw := plan.NewMapWork(name)
	scans := map[string]*plan.TableScan{}
	for _, a := range aliases {
		ts := plan.NewTableScan("TS_"+a.name, &plan.TableScanDesc{
			Alias:          a.name,
			TableName:      a.name,
			IsMetadataOnly: a.eligible,
		})
		if a.body != nil {
			ts.AddChild(a.body)
		} else {
			ts.AddChild(plan.NewGeneric("FS_"+a.name, plan.KindFileSink))
		}
		scans[a.name] = ts
		mw.AddAlias(a.name, ts, textPartition(a.name, nil))
		pctx.TopOps.Put(a.name, ts)
	}
	for _, in := range inputs {
		mw.AddPath(in.path, textPartition(in.table, in.spec), in.aliases...)
	}
	return mw, scans
}

func textPartition(table string, spec plan.PartSpec) *plan.PartitionDesc {
	return &plan.PartitionDesc{
		TableName:        table,
		InputFileFormat:  plan.TextInputFormat,
		OutputFileFormat: "HiveIgnoreKeyTextOutputFormat",
		Properties:       map[string]string{plan.SerializationLib: plan.LazySimpleSerDe},
		PartSpec:         spec,
	}
}

type workSnapshot struct {
	pathToAliases map[string][]string
	pathKeys      []string
	pathParts     map[string]plan.PartitionDesc
	aliasParts    map[string]plan.PartitionDesc
	useNullRow    bool
}

func snapshot(mw *plan.MapWork) workSnapshot {
	s := workSnapshot{
		pathToAliases: map[string][]string{},
		pathKeys:      mw.Paths(),
		pathParts:     map[string]plan.PartitionDesc{},
		aliasParts:    map[string]plan.PartitionDesc{},
		useNullRow:    mw.UseOneNullRowInputFormat,
	}
	mw.PathToAliases.Range(func(k string, v []string) bool {
		s.pathToAliases[k] = append([]string(nil), v...)
		return true
	})
	mw.PathToPartitionInfo.Range(func(k string, v *plan.PartitionDesc) bool {
		s.pathParts[k] = *v.Clone()
		return true
	})
	mw.AliasToPartnInfo.Range(func(k string, v *plan.PartitionDesc) bool {
		s.aliasParts[k] = *v.Clone()
		return true
	})
	return s
}
