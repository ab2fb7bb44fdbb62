package btree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func intKeyLess(a, b int) bool { return a < b }

func TestMapInsertGetDelete(t *testing.T) {
	m := NewMap[int, string](intKeyLess)
	require.True(t, m.Insert(1, "one"))
	require.True(t, m.Insert(2, "two"))
	require.False(t, m.Insert(1, "uno"))

	v, ok := m.Get(1)
	require.True(t, ok)
	require.Equal(t, "one", v)

	require.Equal(t, 2, m.Len())
	require.True(t, m.Delete(1))
	require.False(t, m.Delete(1))
	require.Equal(t, 1, m.Len())
}

func TestMapSetReplacesAndReleases(t *testing.T) {
	m := NewMap[int, string](intKeyLess)
	m.Insert(1, "one")

	var released string
	isNew := m.Set(1, "uno", func(old string) { released = old })
	require.False(t, isNew)
	require.Equal(t, "one", released)

	v, ok := m.Get(1)
	require.True(t, ok)
	require.Equal(t, "uno", v)
}

func TestMapDeleteMinMax(t *testing.T) {
	m := NewMap[int, int](intKeyLess)
	for i := 0; i < 10; i++ {
		m.Insert(i, i*i)
	}
	k, v, ok := m.DeleteMin()
	require.True(t, ok)
	require.Equal(t, 0, k)
	require.Equal(t, 0, v)

	k, v, ok = m.DeleteMax()
	require.True(t, ok)
	require.Equal(t, 9, k)
	require.Equal(t, 81, v)

	require.Equal(t, 8, m.Len())
}

func TestMapIterationOrder(t *testing.T) {
	m := NewMap[int, int](intKeyLess)
	r := rand.New(rand.NewSource(7))
	perm := r.Perm(200)
	for _, v := range perm {
		m.Insert(v, v*2)
	}

	it := m.First()
	prev := -1
	count := 0
	for it.Next() {
		require.Less(t, prev, it.Key())
		require.Equal(t, it.Key()*2, it.Value())
		prev = it.Key()
		count++
	}
	require.Equal(t, 200, count)
}

func TestMapEmptyDeleteMinMax(t *testing.T) {
	m := NewMap[int, int](intKeyLess)
	_, _, ok := m.DeleteMin()
	require.False(t, ok)
	_, _, ok = m.DeleteMax()
	require.False(t, ok)
}
