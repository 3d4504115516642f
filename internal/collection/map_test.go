package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncMap(t *testing.T) {
	m := NewSyncMap[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, m.Len())

	// deleting while ranging must not deadlock
	m.Range(func(key string, value int) bool {
		m.Delete(key)
		return true
	})
	assert.Equal(t, 0, m.Len())
	_, ok = m.Get("a")
	assert.False(t, ok)
}

func TestSyncMap_Snapshot(t *testing.T) {
	m := NewSyncMap[string, string]()
	m.Put("k", "v")
	snap := m.Snapshot()
	snap["k"] = "changed"
	v, _ := m.Get("k")
	assert.Equal(t, "v", v)
}
