package set

import (
	"cmp"

	"github.com/fyerfyer/collkit/collection"
	"github.com/fyerfyer/collkit/compare"
	"github.com/fyerfyer/collkit/internal/ordered"
)

// sortedBase 有序集合的公共实现，基于红黑树
type sortedBase[T any] struct {
	tree *ordered.Tree[T, struct{}]
}

// Entries 返回集合中的元素数量
func (s *sortedBase[T]) Entries() int {
	return s.tree.Len()
}

// IsEmpty 检查集合是否为空
func (s *sortedBase[T]) IsEmpty() bool {
	return s.tree.Len() == 0
}

// Insert 添加元素并保持排序
func (s *sortedBase[T]) Insert(item T) bool {
	return s.tree.Insert(item, struct{}{})
}

// Contains 检查元素是否在集合中
func (s *sortedBase[T]) Contains(item T) bool {
	return s.tree.Count(item) > 0
}

// Find 返回集合中存储的等价元素
func (s *sortedBase[T]) Find(item T) (T, bool) {
	e, ok := s.tree.Find(item)
	return e.Key, ok
}

// OccurrencesOf 返回等价元素的数量
func (s *sortedBase[T]) OccurrencesOf(item T) int {
	return s.tree.Count(item)
}

// Remove 删除第一个等价元素
func (s *sortedBase[T]) Remove(item T) bool {
	_, ok := s.tree.Remove(item)
	return ok
}

// RemoveAll 删除所有等价元素
func (s *sortedBase[T]) RemoveAll(item T) int {
	return s.tree.RemoveAll(item)
}

// Clear 清空集合
func (s *sortedBase[T]) Clear() {
	s.tree.Clear()
}

// ForEach 按排序顺序遍历集合中的所有元素
func (s *sortedBase[T]) ForEach(f func(T) bool) {
	s.tree.ForEach(func(e ordered.Entry[T, struct{}]) bool {
		return f(e.Key)
	})
}

// ToSlice 将集合转换为有序切片
func (s *sortedBase[T]) ToSlice() []T {
	result := make([]T, 0, s.tree.Len())
	s.ForEach(func(item T) bool {
		result = append(result, item)
		return true
	})
	return result
}

// Min 返回最小元素，集合为空时返回false
func (s *sortedBase[T]) Min() (T, bool) {
	e, ok := s.tree.Min()
	return e.Key, ok
}

// Max 返回最大元素，集合为空时返回false
func (s *sortedBase[T]) Max() (T, bool) {
	e, ok := s.tree.Max()
	return e.Key, ok
}

// Iterator 返回升序迭代器
func (s *sortedBase[T]) Iterator() collection.Iterator[T] {
	return &sortedIterator[T]{it: s.tree.Iterator()}
}

// Comparator 返回集合使用的比较函数
func (s *sortedBase[T]) Comparator() compare.Comparator[T] {
	return s.tree.Comparator()
}

type sortedIterator[T any] struct {
	it *ordered.Iterator[T, struct{}]
}

func (it *sortedIterator[T]) Next() bool { return it.it.Next() }
func (it *sortedIterator[T]) Value() T   { return it.it.Entry().Key }
func (it *sortedIterator[T]) Reset()     { it.it.Reset() }

// SortedSet 有序唯一集合，按比较函数排序
type SortedSet[T any] struct {
	sortedBase[T]
}

// NewSorted 创建一个新的有序集合，使用默认排序
func NewSorted[T cmp.Ordered](items ...T) *SortedSet[T] {
	return NewSortedWithComparator(compare.Ordered[T], items...)
}

// NewSortedWithComparator 创建一个新的有序集合，使用自定义比较函数
func NewSortedWithComparator[T any](c compare.Comparator[T], items ...T) *SortedSet[T] {
	s := &SortedSet[T]{sortedBase[T]{tree: ordered.New[T, struct{}](c, true)}}
	for _, item := range items {
		s.Insert(item)
	}
	return s
}

// Union 并集
func (s *SortedSet[T]) Union(other collection.Collection[T]) { union[T](s, other) }

// Intersection 交集
func (s *SortedSet[T]) Intersection(other collection.Collection[T]) { intersection[T](s, other) }

// Difference 差集
func (s *SortedSet[T]) Difference(other collection.Collection[T]) { difference[T](s, other) }

// SymmetricDifference 对称差集
func (s *SortedSet[T]) SymmetricDifference(other collection.Collection[T]) {
	symmetricDifference[T](s, other)
}

// IsSubsetOf 检查当前集合是否是另一个集合的子集
func (s *SortedSet[T]) IsSubsetOf(other collection.Collection[T]) bool {
	return isSubset[T](s, other)
}

// IsProperSubsetOf 检查当前集合是否是另一个集合的真子集
func (s *SortedSet[T]) IsProperSubsetOf(other collection.Collection[T]) bool {
	return isProperSubset[T](s, other)
}

// IsEquivalent 检查两个集合是否相等
func (s *SortedSet[T]) IsEquivalent(other collection.Collection[T]) bool {
	return isEquivalent[T](s, other)
}

// SortedMultiSet 有序多重集合，允许等价元素重复出现
type SortedMultiSet[T any] struct {
	sortedBase[T]
}

// NewSortedMulti 创建一个新的有序多重集合，使用默认排序
func NewSortedMulti[T cmp.Ordered](items ...T) *SortedMultiSet[T] {
	return NewSortedMultiWithComparator(compare.Ordered[T], items...)
}

// NewSortedMultiWithComparator 创建一个新的有序多重集合，使用自定义比较函数
func NewSortedMultiWithComparator[T any](c compare.Comparator[T], items ...T) *SortedMultiSet[T] {
	s := &SortedMultiSet[T]{sortedBase[T]{tree: ordered.New[T, struct{}](c, false)}}
	for _, item := range items {
		s.Insert(item)
	}
	return s
}

// Union 并集
func (s *SortedMultiSet[T]) Union(other collection.Collection[T]) { union[T](s, other) }

// Intersection 交集
func (s *SortedMultiSet[T]) Intersection(other collection.Collection[T]) { intersection[T](s, other) }

// Difference 差集
func (s *SortedMultiSet[T]) Difference(other collection.Collection[T]) { difference[T](s, other) }

// SymmetricDifference 对称差集
func (s *SortedMultiSet[T]) SymmetricDifference(other collection.Collection[T]) {
	symmetricDifference[T](s, other)
}

// IsSubsetOf 检查当前集合是否是另一个集合的子集
func (s *SortedMultiSet[T]) IsSubsetOf(other collection.Collection[T]) bool {
	return isSubset[T](s, other)
}

// IsProperSubsetOf 检查当前集合是否是另一个集合的真子集
func (s *SortedMultiSet[T]) IsProperSubsetOf(other collection.Collection[T]) bool {
	return isProperSubset[T](s, other)
}

// IsEquivalent 检查两个集合是否相等
func (s *SortedMultiSet[T]) IsEquivalent(other collection.Collection[T]) bool {
	return isEquivalent[T](s, other)
}
