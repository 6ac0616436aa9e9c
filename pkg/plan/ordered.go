package plan

// OrderedMap is a map remembering key insertion order. Work units rely on it:
// alias order drives walk root order and path order drives rewrite order.
type OrderedMap[K comparable, V any] struct {
	keys []K
	vals map[K]V
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		vals: map[K]V{},
	}
}

func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.vals[k]
	return v, ok
}

// Put inserts or replaces k. A replaced key keeps its position.
func (m *OrderedMap[K, V]) Put(k K, v V) {
	if _, ok := m.vals[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.vals[k] = v
}

// Delete removes k and returns the value it held.
func (m *OrderedMap[K, V]) Delete(k K) (V, bool) {
	v, ok := m.vals[k]
	if !ok {
		return v, false
	}
	delete(m.vals, k)
	for i, key := range m.keys {
		if key == k {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return v, true
}

func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	ret := make([]K, len(m.keys))
	copy(ret, m.keys)
	return ret
}

func (m *OrderedMap[K, V]) Values() []V {
	ret := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		ret = append(ret, m.vals[k])
	}
	return ret
}

// Range calls f in insertion order until f returns false.
func (m *OrderedMap[K, V]) Range(f func(k K, v V) bool) {
	for _, k := range m.Keys() {
		if !f(k, m.vals[k]) {
			return
		}
	}
}
