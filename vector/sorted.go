package vector

import (
	"cmp"
	"slices"

	"github.com/fyerfyer/collkit/collection"
	"github.com/fyerfyer/collkit/compare"
)

// SortedVector 按比较函数保持有序的向量，允许重复
// 等价元素按插入顺序排列，查找使用二分
type SortedVector[T any] struct {
	items []T
	cmp   compare.Comparator[T]
}

// NewSorted 创建按自然顺序排序的向量
func NewSorted[T cmp.Ordered](items ...T) *SortedVector[T] {
	return NewSortedWithComparator(compare.Ordered[T], items...)
}

// NewSortedWithComparator 使用自定义比较函数创建排序向量
func NewSortedWithComparator[T any](c compare.Comparator[T], items ...T) *SortedVector[T] {
	v := &SortedVector[T]{
		items: slices.Clone(items),
		cmp:   c,
	}
	slices.SortStableFunc(v.items, c)
	return v
}

// lowerBound 返回第一个不小于 item 的位置
func (v *SortedVector[T]) lowerBound(item T) int {
	i, _ := slices.BinarySearchFunc(v.items, item, v.cmp)
	return i
}

// upperBound 返回第一个大于 item 的位置
func (v *SortedVector[T]) upperBound(item T) int {
	lo, hi := v.lowerBound(item), len(v.items)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if v.cmp(v.items[mid], item) <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Insert 插入元素并保持有序，总是返回true
func (v *SortedVector[T]) Insert(item T) bool {
	v.items = slices.Insert(v.items, v.upperBound(item), item)
	return true
}

// At 返回下标i处的元素
func (v *SortedVector[T]) At(i int) (T, error) {
	if err := collection.CheckIndex(i, len(v.items)); err != nil {
		var zero T
		return zero, err
	}
	return v.items[i], nil
}

// First 返回最小元素
func (v *SortedVector[T]) First() (T, error) {
	return v.At(0)
}

// Last 返回最大元素
func (v *SortedVector[T]) Last() (T, error) {
	return v.At(len(v.items) - 1)
}

// RemoveAt 删除并返回下标i处的元素
func (v *SortedVector[T]) RemoveAt(i int) (T, error) {
	item, err := v.At(i)
	if err != nil {
		return item, err
	}
	v.items = slices.Delete(v.items, i, i+1)
	return item, nil
}

// Index 返回第一个等价元素的下标，不存在时返回 collection.NPOS
func (v *SortedVector[T]) Index(item T) int {
	i, found := slices.BinarySearchFunc(v.items, item, v.cmp)
	if !found {
		return collection.NPOS
	}
	return i
}

func (v *SortedVector[T]) Entries() int {
	return len(v.items)
}

func (v *SortedVector[T]) IsEmpty() bool {
	return len(v.items) == 0
}

func (v *SortedVector[T]) Contains(item T) bool {
	return v.Index(item) != collection.NPOS
}

func (v *SortedVector[T]) Find(item T) (T, bool) {
	if i := v.Index(item); i != collection.NPOS {
		return v.items[i], true
	}
	var zero T
	return zero, false
}

func (v *SortedVector[T]) OccurrencesOf(item T) int {
	return v.upperBound(item) - v.lowerBound(item)
}

func (v *SortedVector[T]) Remove(item T) bool {
	i := v.Index(item)
	if i == collection.NPOS {
		return false
	}
	v.items = slices.Delete(v.items, i, i+1)
	return true
}

func (v *SortedVector[T]) RemoveAll(item T) int {
	lo, hi := v.lowerBound(item), v.upperBound(item)
	v.items = slices.Delete(v.items, lo, hi)
	return hi - lo
}

// Clear 清空向量，保留底层数组
func (v *SortedVector[T]) Clear() {
	clear(v.items)
	v.items = v.items[:0]
}

func (v *SortedVector[T]) ForEach(f func(T) bool) {
	for _, item := range v.items {
		if !f(item) {
			return
		}
	}
}

func (v *SortedVector[T]) ToSlice() []T {
	return slices.Clone(v.items)
}

// Iterator 返回基于快照的迭代器
func (v *SortedVector[T]) Iterator() collection.Iterator[T] {
	return collection.NewSliceIterator(v.ToSlice())
}

// Comparator 返回比较函数
func (v *SortedVector[T]) Comparator() compare.Comparator[T] {
	return v.cmp
}
