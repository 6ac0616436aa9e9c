package nullscan

import (
	"github.com/pg-sharding/nullscan/pkg/models/planerror"
	"github.com/pg-sharding/nullscan/pkg/plan"
	"github.com/pg-sharding/nullscan/pkg/planlog"
	"golang.org/x/exp/slices"
)

func getAliasForTableScanOperator(work *plan.MapWork, ts *plan.TableScan) (string, bool) {
	alias := ""
	found := false
	work.AliasToWork.Range(func(a string, op plan.Node) bool {
		if op == plan.Node(ts) {
			alias = a
			found = true
			return false
		}
		return true
	})
	return alias, found
}

func containsAll(list []string, items []string) bool {
	for _, it := range items {
		if !slices.Contains(list, it) {
			return false
		}
	}
	return true
}

// rewriteWork moves every path read only by eligible aliases onto the
// one-null-row source. A path with at least one non eligible reader is left alone.
func (d *TaskDispatcher) rewriteWork(work *plan.MapWork, tableScans []*plan.TableScan) error {
	aliasList := make([]string, 0, len(tableScans))
	for _, ts := range tableScans {
		alias, ok := getAliasForTableScanOperator(work, ts)
		if !ok {
			return planerror.Newf(planerror.NSCAN_ALIAS_NOT_FOUND,
				"table scan %s is not the root of any alias of map work %s", ts.ID(), work.Name)
		}
		planlog.Zero.Debug().
			Str("scan", ts.ID()).
			Uint("node", planlog.GetPointer(ts)).
			Str("alias", alias).
			Msg("resolved alias of null table scan")
		aliasList = append(aliasList, alias)
	}

	candidates := plan.NewOrderedMap[string, []string]()
	for _, path := range work.Paths() {
		aliases, ok := work.PathToAliases.Get(path)
		if ok && aliases != nil && containsAll(aliasList, aliases) {
			candidates.Put(path, aliases)
		}
	}

	var err error
	candidates.Range(func(path string, aliases []string) bool {
		err = d.rewritePath(work, aliases, path)
		return err == nil
	})
	return err
}

func (d *TaskDispatcher) rewritePath(work *plan.MapWork, aliases []string, path string) error {
	partDesc, ok := work.PathToPartitionInfo.Get(path)
	if !ok || partDesc == nil {
		return planerror.Newf(planerror.NSCAN_UNEXPECTED,
			"path %q of map work %s has no partition descriptor", path, work.Name)
	}

	work.UseOneNullRowInputFormat = true
	for _, alias := range aliases {
		op, _ := work.AliasToWork.Get(alias)
		ts, ok := op.(*plan.TableScan)
		if !ok {
			return planerror.Newf(planerror.NSCAN_UNEXPECTED,
				"alias %s of map work %s is not rooted at a table scan", alias, work.Name)
		}
		ts.Conf.IsMetadataOnly = true

		aliasPartn, _ := work.AliasToPartnInfo.Get(alias)
		changePartitionToMetadataOnly(aliasPartn)
	}

	newPartition := changePartitionToMetadataOnly(partDesc)
	fakePath := d.pctx.Scratch.MRTmpPath() + newPartition.TableName + encodePartSpec(newPartition.PartSpec)

	work.PathToPartitionInfo.Delete(path)
	work.PathToPartitionInfo.Put(fakePath, newPartition)

	removed, _ := work.PathToAliases.Delete(path)
	if !slices.Equal(removed, aliases) {
		return planerror.Newf(planerror.NSCAN_PATH_MISMATCH,
			"path %q of map work %s was read by %v, expected %v", path, work.Name, removed, aliases)
	}
	work.PathToAliases.Put(fakePath, aliases)

	planlog.Zero.Debug().
		Str("work", work.Name).
		Str("path", path).
		Str("placeholder", fakePath).
		Strs("aliases", aliases).
		Msg("moved path onto one null row input")
	return nil
}
