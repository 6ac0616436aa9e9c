package plan_test

import (
	"testing"

	"github.com/pg-sharding/nullscan/pkg/plan"
	"github.com/stretchr/testify/assert"
)

func TestOrderedMapKeepsInsertionOrder(t *testing.T) {
	assert := assert.New(t)

	m := plan.NewOrderedMap[string, int]()
	m.Put("c", 1)
	m.Put("a", 2)
	m.Put("b", 3)
	m.Put("a", 4)

	assert.Equal([]string{"c", "a", "b"}, m.Keys())
	assert.Equal([]int{1, 4, 3}, m.Values())

	v, ok := m.Delete("a")
	assert.True(ok)
	assert.Equal(4, v)
	assert.Equal([]string{"c", "b"}, m.Keys())

	_, ok = m.Delete("a")
	assert.False(ok)

	m.Put("a", 5)
	assert.Equal([]string{"c", "b", "a"}, m.Keys())
	assert.Equal(3, m.Len())
}

func TestOrderedMapRangeStops(t *testing.T) {
	m := plan.NewOrderedMap[string, int]()
	m.Put("x", 1)
	m.Put("y", 2)
	m.Put("z", 3)

	var seen []string
	m.Range(func(k string, _ int) bool {
		seen = append(seen, k)
		return k != "y"
	})
	assert.Equal(t, []string{"x", "y"}, seen)
}
