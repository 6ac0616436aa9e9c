package plan

import "fmt"

// OperatorKind is the closed set of operators a work unit DAG is built from.
type OperatorKind int

const (
	KindTableScan OperatorKind = iota
	KindFilter
	KindSelect
	KindGroupBy
	KindReduceSink
	KindLimit
	KindFileSink
	KindUnion
	KindJoin
)

var kindNames = map[OperatorKind]string{
	KindTableScan:  "TS",
	KindFilter:     "FIL",
	KindSelect:     "SEL",
	KindGroupBy:    "GBY",
	KindReduceSink: "RS",
	KindLimit:      "LIM",
	KindFileSink:   "FS",
	KindUnion:      "UNION",
	KindJoin:       "JOIN",
}

// String returns the short operator name rule patterns are written against.
func (k OperatorKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("OP(%d)", int(k))
}

func KindByName(name string) (OperatorKind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Node is an operator of a work unit DAG. Nodes are compared by identity:
// two structurally equal operators are still different nodes.
type Node interface {
	iNode()

	Kind() OperatorKind
	// Name is the operator name used in rule patterns, e.g. "TS".
	Name() string
	ID() string
	Children() []Node
	AddChild(Node)
}

type operator struct {
	id       string
	children []Node
}

func (o *operator) iNode() {}

func (o *operator) ID() string {
	return o.id
}

func (o *operator) Children() []Node {
	return o.children
}

func (o *operator) AddChild(nd Node) {
	o.children = append(o.children, nd)
}

// Link makes every child a child of parent, in order, and returns parent.
func Link(parent Node, children ...Node) Node {
	for _, c := range children {
		parent.AddChild(c)
	}
	return parent
}
