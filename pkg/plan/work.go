package plan

import "fmt"

// MapWork is one parallel stage of a task: operator DAGs rooted at table
// scans plus the tables telling which input paths feed which aliases.
type MapWork struct {
	Name string

	AliasToWork         *OrderedMap[string, Node]
	PathToAliases       *OrderedMap[string, []string]
	PathToPartitionInfo *OrderedMap[string, *PartitionDesc]
	AliasToPartnInfo    *OrderedMap[string, *PartitionDesc]

	UseOneNullRowInputFormat bool
}

func NewMapWork(name string) *MapWork {
	return &MapWork{
		Name:                name,
		AliasToWork:         NewOrderedMap[string, Node](),
		PathToAliases:       NewOrderedMap[string, []string](),
		PathToPartitionInfo: NewOrderedMap[string, *PartitionDesc](),
		AliasToPartnInfo:    NewOrderedMap[string, *PartitionDesc](),
	}
}

// AddAlias registers root as the operator tree of alias.
func (mw *MapWork) AddAlias(alias string, root Node, desc *PartitionDesc) {
	mw.AliasToWork.Put(alias, root)
	if desc != nil {
		mw.AliasToPartnInfo.Put(alias, desc)
	}
}

// AddPath registers an input path read by aliases.
func (mw *MapWork) AddPath(path string, desc *PartitionDesc, aliases ...string) {
	mw.PathToAliases.Put(path, aliases)
	mw.PathToPartitionInfo.Put(path, desc)
}

// Paths returns the input paths in insertion order.
func (mw *MapWork) Paths() []string {
	return mw.PathToAliases.Keys()
}

// Validate checks that every input path has a partition descriptor and
// every alias reading a path is registered.
func (mw *MapWork) Validate() error {
	for _, p := range mw.Paths() {
		if _, ok := mw.PathToPartitionInfo.Get(p); !ok {
			return fmt.Errorf("map work %s: path %q has no partition descriptor", mw.Name, p)
		}
		aliases, _ := mw.PathToAliases.Get(p)
		for _, a := range aliases {
			if _, ok := mw.AliasToWork.Get(a); !ok {
				return fmt.Errorf("map work %s: path %q is read by unknown alias %q", mw.Name, p, a)
			}
		}
	}
	return nil
}
