package set

import (
	"cmp"

	"github.com/fyerfyer/collkit/collection"
	"github.com/fyerfyer/collkit/compare"
)

// 指针集合存储 *T，但按指针所指向的值排序、哈希和比较
// Find 返回集合中存储的指针本身
// 集合默认不拥有指向的对象，ClearAndDestroy 是显式的批量释放操作：
// 若同一指针还被其他地方引用，释放后继续使用属于调用方的错误

// PtrSortedSet 指针有序唯一集合
type PtrSortedSet[T any] struct {
	*SortedSet[*T]
}

// NewPtrSorted 创建指针有序集合，使用默认排序
func NewPtrSorted[T cmp.Ordered](items ...*T) *PtrSortedSet[T] {
	return NewPtrSortedWithComparator(compare.Ordered[T], items...)
}

// NewPtrSortedWithComparator 创建指针有序集合，使用自定义比较函数
func NewPtrSortedWithComparator[T any](c compare.Comparator[T], items ...*T) *PtrSortedSet[T] {
	return &PtrSortedSet[T]{NewSortedWithComparator(compare.Deref(c), items...)}
}

// ClearAndDestroy 清空集合并释放所有指向的对象
func (s *PtrSortedSet[T]) ClearAndDestroy() error {
	items := s.ToSlice()
	s.Clear()
	return collection.DestroyAll(items)
}

// PtrSortedMultiSet 指针有序多重集合
type PtrSortedMultiSet[T any] struct {
	*SortedMultiSet[*T]
}

// NewPtrSortedMulti 创建指针有序多重集合，使用默认排序
func NewPtrSortedMulti[T cmp.Ordered](items ...*T) *PtrSortedMultiSet[T] {
	return NewPtrSortedMultiWithComparator(compare.Ordered[T], items...)
}

// NewPtrSortedMultiWithComparator 创建指针有序多重集合，使用自定义比较函数
func NewPtrSortedMultiWithComparator[T any](c compare.Comparator[T], items ...*T) *PtrSortedMultiSet[T] {
	return &PtrSortedMultiSet[T]{NewSortedMultiWithComparator(compare.Deref(c), items...)}
}

// ClearAndDestroy 清空集合并释放所有指向的对象
func (s *PtrSortedMultiSet[T]) ClearAndDestroy() error {
	items := s.ToSlice()
	s.Clear()
	return collection.DestroyAll(items)
}

// PtrHashSet 指针哈希唯一集合
type PtrHashSet[T any] struct {
	*HashSet[*T]
}

// NewPtrHash 创建指针哈希集合，使用默认哈希函数
func NewPtrHash[T comparable](items ...*T) *PtrHashSet[T] {
	s := NewPtrHashWith(compare.HashOf[T], compare.EqualOf[T])
	for _, item := range items {
		s.Insert(item)
	}
	return s
}

// NewPtrHashWith 使用元素的哈希函数和相等函数创建指针哈希集合
func NewPtrHashWith[T any](h compare.Hasher[T], eq compare.Equal[T], options ...Option[*T]) *PtrHashSet[T] {
	return &PtrHashSet[T]{NewHashWith(compare.DerefHash(h), compare.DerefEqual(eq), options...)}
}

// ClearAndDestroy 清空集合并释放所有指向的对象
func (s *PtrHashSet[T]) ClearAndDestroy() error {
	items := s.ToSlice()
	s.Clear()
	return collection.DestroyAll(items)
}

// PtrHashMultiSet 指针哈希多重集合
type PtrHashMultiSet[T any] struct {
	*HashMultiSet[*T]
}

// NewPtrHashMulti 创建指针哈希多重集合，使用默认哈希函数
func NewPtrHashMulti[T comparable](items ...*T) *PtrHashMultiSet[T] {
	s := NewPtrHashMultiWith(compare.HashOf[T], compare.EqualOf[T])
	for _, item := range items {
		s.Insert(item)
	}
	return s
}

// NewPtrHashMultiWith 使用元素的哈希函数和相等函数创建指针哈希多重集合
func NewPtrHashMultiWith[T any](h compare.Hasher[T], eq compare.Equal[T], options ...Option[*T]) *PtrHashMultiSet[T] {
	return &PtrHashMultiSet[T]{NewHashMultiWith(compare.DerefHash(h), compare.DerefEqual(eq), options...)}
}

// ClearAndDestroy 清空集合并释放所有指向的对象
func (s *PtrHashMultiSet[T]) ClearAndDestroy() error {
	items := s.ToSlice()
	s.Clear()
	return collection.DestroyAll(items)
}
