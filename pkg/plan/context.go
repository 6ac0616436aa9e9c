package plan

//go:generate mockgen -source=context.go -destination=../mock/plan/context_mock.go -package=mock_plan

// PathProvider hands out paths inside the scratch namespace of one query.
// Every returned path ends with a separator and is distinct from the previous ones.
type PathProvider interface {
	MRTmpPath() string
}

// PhysicalContext is the compile context a physical optimizer works in.
// It is owned by exactly one compile.
type PhysicalContext struct {
	Tasks []*Task

	// TopOps are the top-level operators registered by the parse stage.
	TopOps *OrderedMap[string, Node]

	Scratch PathProvider
}

func NewPhysicalContext(scratch PathProvider, tasks ...*Task) *PhysicalContext {
	return &PhysicalContext{
		Tasks:   tasks,
		TopOps:  NewOrderedMap[string, Node](),
		Scratch: scratch,
	}
}

// IsTopOp reports whether nd is a registered top-level operator.
func (pc *PhysicalContext) IsTopOp(nd Node) bool {
	found := false
	pc.TopOps.Range(func(_ string, v Node) bool {
		if v == nd {
			found = true
			return false
		}
		return true
	})
	return found
}
