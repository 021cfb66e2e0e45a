package dict

import (
	"cmp"

	"github.com/fyerfyer/collkit/compare"
	"github.com/fyerfyer/collkit/internal/ordered"
)

// sortedBase 有序映射的公共实现，基于红黑树，按键升序遍历
type sortedBase[K any, V any] struct {
	tree *ordered.Tree[K, V]
}

func (m *sortedBase[K, V]) Entries() int {
	return m.tree.Len()
}

func (m *sortedBase[K, V]) IsEmpty() bool {
	return m.tree.Len() == 0
}

func (m *sortedBase[K, V]) Insert(key K, value V) bool {
	return m.tree.Insert(key, value)
}

func (m *sortedBase[K, V]) Put(key K, value V) (V, bool) {
	return m.tree.Upsert(key, value)
}

func (m *sortedBase[K, V]) Contains(key K) bool {
	_, ok := m.tree.Find(key)
	return ok
}

func (m *sortedBase[K, V]) Find(key K) (V, bool) {
	e, ok := m.tree.Find(key)
	return e.Value, ok
}

func (m *sortedBase[K, V]) FindKeyAndValue(key K) (K, V, bool) {
	e, ok := m.tree.Find(key)
	return e.Key, e.Value, ok
}

func (m *sortedBase[K, V]) FindAll(key K) []V {
	entries := m.tree.FindAll(key)
	values := make([]V, 0, len(entries))
	for _, e := range entries {
		values = append(values, e.Value)
	}
	return values
}

func (m *sortedBase[K, V]) OccurrencesOf(key K) int {
	return m.tree.Count(key)
}

func (m *sortedBase[K, V]) Remove(key K) bool {
	_, ok := m.tree.Remove(key)
	return ok
}

func (m *sortedBase[K, V]) RemoveAll(key K) int {
	return m.tree.RemoveAll(key)
}

func (m *sortedBase[K, V]) Clear() {
	m.tree.Clear()
}

func (m *sortedBase[K, V]) ForEach(f func(key K, value V) bool) {
	m.tree.ForEach(func(e ordered.Entry[K, V]) bool {
		return f(e.Key, e.Value)
	})
}

func (m *sortedBase[K, V]) Keys() []K {
	keys := make([]K, 0, m.tree.Len())
	m.tree.ForEach(func(e ordered.Entry[K, V]) bool {
		keys = append(keys, e.Key)
		return true
	})
	return keys
}

func (m *sortedBase[K, V]) Values() []V {
	values := make([]V, 0, m.tree.Len())
	m.tree.ForEach(func(e ordered.Entry[K, V]) bool {
		values = append(values, e.Value)
		return true
	})
	return values
}

// Min 返回最小键的条目
func (m *sortedBase[K, V]) Min() (K, V, bool) {
	e, ok := m.tree.Min()
	return e.Key, e.Value, ok
}

// Max 返回最大键的条目
func (m *sortedBase[K, V]) Max() (K, V, bool) {
	e, ok := m.tree.Max()
	return e.Key, e.Value, ok
}

func (m *sortedBase[K, V]) Iterator() Iterator[K, V] {
	return &sortedIterator[K, V]{it: m.tree.Iterator()}
}

// Comparator 返回键的比较函数
func (m *sortedBase[K, V]) Comparator() compare.Comparator[K] {
	return m.tree.Comparator()
}

type sortedIterator[K any, V any] struct {
	it *ordered.Iterator[K, V]
}

func (it *sortedIterator[K, V]) Next() bool { return it.it.Next() }
func (it *sortedIterator[K, V]) Key() K     { return it.it.Entry().Key }
func (it *sortedIterator[K, V]) Value() V   { return it.it.Entry().Value }
func (it *sortedIterator[K, V]) Reset()     { it.it.Reset() }

// SortedMap 有序唯一映射
type SortedMap[K any, V any] struct {
	sortedBase[K, V]
}

// NewSorted 创建按键自然顺序排序的映射
func NewSorted[K cmp.Ordered, V any]() *SortedMap[K, V] {
	return NewSortedWithComparator[K, V](compare.Ordered[K])
}

// NewSortedWithComparator 使用自定义键比较函数创建有序映射
func NewSortedWithComparator[K any, V any](c compare.Comparator[K]) *SortedMap[K, V] {
	return &SortedMap[K, V]{sortedBase[K, V]{tree: ordered.New[K, V](c, true)}}
}

// SortedMultiMap 有序多值映射，等价键的条目按插入顺序排列
type SortedMultiMap[K any, V any] struct {
	sortedBase[K, V]
}

// NewSortedMulti 创建按键自然顺序排序的多值映射
func NewSortedMulti[K cmp.Ordered, V any]() *SortedMultiMap[K, V] {
	return NewSortedMultiWithComparator[K, V](compare.Ordered[K])
}

// NewSortedMultiWithComparator 使用自定义键比较函数创建有序多值映射
func NewSortedMultiWithComparator[K any, V any](c compare.Comparator[K]) *SortedMultiMap[K, V] {
	return &SortedMultiMap[K, V]{sortedBase[K, V]{tree: ordered.New[K, V](c, false)}}
}
