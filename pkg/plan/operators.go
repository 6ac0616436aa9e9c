package plan

// TableScanDesc is the configuration record of a table scan.
type TableScanDesc struct {
	Alias     string
	TableName string

	// IsMetadataOnly is raised by upstream analysis when the scan can be
	// answered from partition metadata, and by the null scan rewrite itself.
	IsMetadataOnly bool
}

type TableScan struct {
	operator
	Conf *TableScanDesc
}

func NewTableScan(id string, conf *TableScanDesc) *TableScan {
	if conf == nil {
		conf = &TableScanDesc{}
	}
	return &TableScan{operator: operator{id: id}, Conf: conf}
}

func (*TableScan) Kind() OperatorKind { return KindTableScan }
func (*TableScan) Name() string       { return KindTableScan.String() }

// PredicateFalse is the predicate text of a filter that rejects every row.
const PredicateFalse = "false"

type Filter struct {
	operator
	Predicate string
}

func NewFilter(id string, predicate string) *Filter {
	return &Filter{operator: operator{id: id}, Predicate: predicate}
}

func (*Filter) Kind() OperatorKind { return KindFilter }
func (*Filter) Name() string       { return KindFilter.String() }

// AlwaysFalse reports whether the predicate was folded to a constant false.
func (f *Filter) AlwaysFalse() bool {
	return f.Predicate == PredicateFalse
}

type Limit struct {
	operator
	Limit int
}

func NewLimit(id string, limit int) *Limit {
	return &Limit{operator: operator{id: id}, Limit: limit}
}

func (*Limit) Kind() OperatorKind { return KindLimit }
func (*Limit) Name() string       { return KindLimit.String() }

// Generic covers operators the null scan pass only walks through.
type Generic struct {
	operator
	kind OperatorKind
}

func NewGeneric(id string, kind OperatorKind) *Generic {
	return &Generic{operator: operator{id: id}, kind: kind}
}

func (g *Generic) Kind() OperatorKind { return g.kind }
func (g *Generic) Name() string       { return g.kind.String() }
