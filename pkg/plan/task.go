package plan

// Task is a unit of the job plan owning map works and, per map work, an
// optional reducer operator.
type Task struct {
	ID    string
	Works []*MapWork

	reducers map[*MapWork]Node
}

func NewTask(id string, works ...*MapWork) *Task {
	return &Task{
		ID:       id,
		Works:    works,
		reducers: map[*MapWork]Node{},
	}
}

func (t *Task) SetReducer(mw *MapWork, reducer Node) {
	if t.reducers == nil {
		t.reducers = map[*MapWork]Node{}
	}
	t.reducers[mw] = reducer
}

// Reducer returns the reducer fed by mw, nil if there is none.
func (t *Task) Reducer(mw *MapWork) Node {
	return t.reducers[mw]
}
