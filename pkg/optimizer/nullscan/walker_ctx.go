package nullscan

import "github.com/pg-sharding/nullscan/pkg/plan"

// WalkerCtx collects the table scans found metadata-only eligible during one walk.
type WalkerCtx struct {
	scans []*plan.TableScan
	seen  map[*plan.TableScan]struct{}
}

func NewWalkerCtx() *WalkerCtx {
	return &WalkerCtx{
		seen: map[*plan.TableScan]struct{}{},
	}
}

func (w *WalkerCtx) AddMetadataOnlyTableScan(ts *plan.TableScan) {
	if _, ok := w.seen[ts]; ok {
		return
	}
	w.seen[ts] = struct{}{}
	w.scans = append(w.scans, ts)
}

// MetadataOnlyTableScans returns the eligible scans in discovery order.
func (w *WalkerCtx) MetadataOnlyTableScans() []*plan.TableScan {
	return w.scans
}

func (w *WalkerCtx) Len() int {
	return len(w.scans)
}
