package dict

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/fyerfyer/collkit/collection"
	"github.com/fyerfyer/collkit/compare"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_UniqueSemantics(t *testing.T) {
	maps := map[string]func() Map[string, int]{
		"sorted": func() Map[string, int] { return NewSorted[string, int]() },
		"hash":   func() Map[string, int] { return New[string, int]() },
	}

	for name, newMap := range maps {
		t.Run(name, func(t *testing.T) {
			m := newMap()
			assert.True(t, m.IsEmpty())

			assert.True(t, m.Insert("a", 1))
			// 唯一映射拒绝重复键，原值保留
			assert.False(t, m.Insert("a", 2))
			v, ok := m.Find("a")
			require.True(t, ok)
			assert.Equal(t, 1, v)

			// Put 覆盖已有值
			old, replaced := m.Put("a", 3)
			assert.True(t, replaced)
			assert.Equal(t, 1, old)
			_, replaced = m.Put("b", 4)
			assert.False(t, replaced)
			v, _ = m.Find("a")
			assert.Equal(t, 3, v)
			assert.Equal(t, 2, m.Entries())

			_, ok = m.Find("missing")
			assert.False(t, ok)
			assert.Equal(t, 0, m.OccurrencesOf("missing"))

			assert.True(t, m.Remove("a"))
			assert.False(t, m.Remove("a"))
			assert.False(t, m.Contains("a"))

			m.Clear()
			assert.Equal(t, 0, m.Entries())
		})
	}
}

func TestMap_MultiSemantics(t *testing.T) {
	maps := map[string]func() Map[string, int]{
		"sorted": func() Map[string, int] { return NewSortedMulti[string, int]() },
		"hash":   func() Map[string, int] { return NewMulti[string, int]() },
	}

	for name, newMap := range maps {
		t.Run(name, func(t *testing.T) {
			m := newMap()
			assert.True(t, m.Insert("k", 1))
			assert.True(t, m.Insert("k", 2))
			assert.True(t, m.Insert("k", 3))
			m.Insert("other", 9)

			assert.Equal(t, 3, m.OccurrencesOf("k"))
			if diff := cmp.Diff([]int{1, 2, 3}, m.FindAll("k")); diff != "" {
				t.Errorf("FindAll mismatch (-want +got):\n%s", diff)
			}

			// Put 替换第一个等价条目
			old, replaced := m.Put("k", 10)
			assert.True(t, replaced)
			assert.Equal(t, 1, old)
			assert.Equal(t, []int{10, 2, 3}, m.FindAll("k"))

			assert.True(t, m.Remove("k"))
			assert.Equal(t, []int{2, 3}, m.FindAll("k"))

			assert.Equal(t, 2, m.RemoveAll("k"))
			assert.Equal(t, 1, m.Entries())
		})
	}
}

func TestSortedMap_OrderedTraversal(t *testing.T) {
	m := NewSorted[int, string]()
	for _, k := range []int{5, 1, 4, 2, 3} {
		m.Insert(k, strings.Repeat("x", k))
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5}, m.Keys())
	assert.Equal(t, []string{"x", "xx", "xxx", "xxxx", "xxxxx"}, m.Values())

	k, v, ok := m.Min()
	require.True(t, ok)
	assert.Equal(t, 1, k)
	assert.Equal(t, "x", v)

	k, _, ok = m.Max()
	require.True(t, ok)
	assert.Equal(t, 5, k)

	var keys []int
	it := m.Iterator()
	for it.Next() {
		keys = append(keys, it.Key())
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, keys)

	it.Reset()
	require.True(t, it.Next())
	assert.Equal(t, "x", it.Value())

	visited := 0
	m.ForEach(func(int, string) bool {
		visited++
		return visited < 2
	})
	assert.Equal(t, 2, visited)
}

func TestSortedMap_CustomComparator(t *testing.T) {
	byLength := func(a, b string) int { return compare.Ordered(len(a), len(b)) }
	m := NewSortedWithComparator[string, int](byLength)

	m.Insert("abc", 1)
	assert.False(t, m.Insert("xyz", 2))

	key, value, ok := m.FindKeyAndValue("123")
	require.True(t, ok)
	assert.Equal(t, "abc", key)
	assert.Equal(t, 1, value)
}

func TestHashMap_Resize(t *testing.T) {
	m := New[int, int](WithCapacity[int](4))
	for i := 0; i < 40; i++ {
		m.Insert(i, i*i)
	}
	assert.Equal(t, 4, m.Capacity())
	assert.InDelta(t, 10.0, m.FillRatio(), 1e-9)

	require.NoError(t, m.Resize(64))
	assert.Equal(t, 64, m.Capacity())
	for i := 0; i < 40; i++ {
		v, ok := m.Find(i)
		require.True(t, ok)
		assert.Equal(t, i*i, v)
	}

	keys := m.Keys()
	sort.Ints(keys)
	assert.Len(t, keys, 40)

	assert.ErrorIs(t, m.Resize(0), collection.ErrInvalidCapacity)

	grow := New[int, int](WithCapacity[int](2), WithMaxFillRatio[int](1.5))
	for i := 0; i < 30; i++ {
		grow.Insert(i, i)
	}
	assert.LessOrEqual(t, grow.FillRatio(), 1.5)
}

func TestHashMap_IteratorVisitsAll(t *testing.T) {
	m := NewHashWith[string, int](compare.StringHash, compare.EqualOf[string])
	m.Insert("a", 1)
	m.Insert("b", 2)
	m.Insert("c", 3)

	sum := 0
	it := m.Iterator()
	for it.Next() {
		sum += it.Value()
	}
	assert.Equal(t, 6, sum)
}

func TestMap_ImplementsInterfaces(t *testing.T) {
	var _ Map[int, int] = NewSorted[int, int]()
	var _ Map[int, int] = NewSortedMulti[int, int]()
	var _ Map[int, int] = New[int, int]()
	var _ Map[int, int] = NewMulti[int, int]()
	var _ Hashed = New[int, int]()
	var _ Hashed = NewMulti[int, int]()
	var _ Map[*string, *int] = NewPtrSorted[string, int]()
	var _ Map[*string, *int] = NewPtrHash[string, int]()
}

type resource struct {
	id     int
	closed int
	err    error
}

func (r *resource) Close() error {
	r.closed++
	return r.err
}

func ptr[T any](v T) *T {
	return &v
}

func TestPtrSortedMap_LookupByPointee(t *testing.T) {
	m := NewPtrSorted[string, resource]()

	key := ptr("db")
	value := &resource{id: 1}
	assert.True(t, m.Insert(key, value))
	assert.False(t, m.Insert(ptr("db"), &resource{id: 2}))

	found, ok := m.Find(ptr("db"))
	require.True(t, ok)
	assert.Same(t, value, found)

	storedKey, _, ok := m.FindKeyAndValue(ptr("db"))
	require.True(t, ok)
	assert.Same(t, key, storedKey)
}

func TestPtrMap_ClearAndDestroy(t *testing.T) {
	shared := &resource{id: 1}
	failing := &resource{id: 2, err: errors.New("close failed")}

	m := NewPtrHashMulti[string, resource]()
	m.Insert(ptr("a"), shared)
	// 同一个值指针出现两次，只释放一次
	m.Insert(ptr("a"), shared)
	m.Insert(ptr("b"), failing)

	err := m.ClearAndDestroy()
	assert.ErrorContains(t, err, "close failed")
	assert.Equal(t, 1, shared.closed)
	assert.Equal(t, 1, failing.closed)
	assert.True(t, m.IsEmpty())
}

type destroyableMap interface {
	Map[*string, *resource]
	ClearAndDestroy() error
}

func TestPtrMap_PutKeepsStoredKey(t *testing.T) {
	maps := map[string]func() destroyableMap{
		"sorted": func() destroyableMap { return NewPtrSorted[string, resource]() },
		"hash":   func() destroyableMap { return NewPtrHash[string, resource]() },
	}

	for name, newMap := range maps {
		t.Run(name, func(t *testing.T) {
			m := newMap()
			k1, k2 := ptr("db"), ptr("db")
			v1, v2 := &resource{id: 1}, &resource{id: 2}

			require.True(t, m.Insert(k1, v1))
			old, replaced := m.Put(k2, v2)
			require.True(t, replaced)
			assert.Same(t, v1, old)

			storedKey, storedValue, ok := m.FindKeyAndValue(ptr("db"))
			require.True(t, ok)
			assert.Same(t, k1, storedKey)
			assert.Same(t, v2, storedValue)

			// 被替换的值已交还调用方，映射只释放当前持有的值
			require.NoError(t, m.ClearAndDestroy())
			assert.Equal(t, 0, v1.closed)
			assert.Equal(t, 1, v2.closed)
		})
	}
}

func TestPtrMaps_Variants(t *testing.T) {
	sortedMulti := NewPtrSortedMulti[int, string]()
	sortedMulti.Insert(ptr(1), ptr("x"))
	sortedMulti.Insert(ptr(1), ptr("y"))
	assert.Equal(t, 2, sortedMulti.OccurrencesOf(ptr(1)))
	require.NoError(t, sortedMulti.ClearAndDestroy())
	assert.Equal(t, 0, sortedMulti.Entries())

	hashed := NewPtrHash[int, string](WithCapacity[*int](8))
	hashed.Insert(ptr(7), ptr("seven"))
	v, ok := hashed.Find(ptr(7))
	require.True(t, ok)
	assert.Equal(t, "seven", *v)
	require.NoError(t, hashed.Resize(3))
	assert.True(t, hashed.Contains(ptr(7)))
	require.NoError(t, hashed.ClearAndDestroy())

	fold := func(s string) uint64 { return compare.StringHash(strings.ToLower(s)) }
	folded := NewPtrHashWith[string, int](fold, strings.EqualFold)
	folded.Insert(ptr("Key"), ptr(1))
	assert.True(t, folded.Contains(ptr("KEY")))
	require.NoError(t, folded.ClearAndDestroy())
}
