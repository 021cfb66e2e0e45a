// Package vector 提供基于切片的有序向量和排序向量
package vector

import (
	"slices"

	"github.com/fyerfyer/collkit/collection"
	"github.com/fyerfyer/collkit/compare"
)

// OrderedVector 按插入顺序保存元素，支持下标访问，允许重复
type OrderedVector[T any] struct {
	items []T
	eq    compare.Equal[T]
}

// New 创建有序向量，使用 == 比较元素
func New[T comparable](items ...T) *OrderedVector[T] {
	return FromSlice(compare.EqualOf[T], items)
}

// NewWithCapacity 创建指定初始容量的有序向量
func NewWithCapacity[T any](eq compare.Equal[T], capacity int) *OrderedVector[T] {
	return &OrderedVector[T]{
		items: make([]T, 0, capacity),
		eq:    eq,
	}
}

// FromSlice 从现有切片创建有序向量，切片会被复制
func FromSlice[T any](eq compare.Equal[T], items []T) *OrderedVector[T] {
	return &OrderedVector[T]{
		items: slices.Clone(items),
		eq:    eq,
	}
}

// Append 在末尾添加元素
func (v *OrderedVector[T]) Append(items ...T) {
	v.items = append(v.items, items...)
}

// Prepend 在开头添加元素
func (v *OrderedVector[T]) Prepend(items ...T) {
	if len(items) == 0 {
		return
	}
	v.items = slices.Insert(v.items, 0, items...)
}

// Insert 在末尾添加元素，总是返回true
func (v *OrderedVector[T]) Insert(item T) bool {
	v.items = append(v.items, item)
	return true
}

// InsertAt 在下标i处插入元素，i 可以等于 Entries()
func (v *OrderedVector[T]) InsertAt(i int, item T) error {
	if i < 0 || i > len(v.items) {
		return collection.NewBoundsError(i, len(v.items))
	}
	v.items = slices.Insert(v.items, i, item)
	return nil
}

// At 返回下标i处的元素
func (v *OrderedVector[T]) At(i int) (T, error) {
	if err := collection.CheckIndex(i, len(v.items)); err != nil {
		var zero T
		return zero, err
	}
	return v.items[i], nil
}

// Set 替换下标i处的元素
func (v *OrderedVector[T]) Set(i int, item T) error {
	if err := collection.CheckIndex(i, len(v.items)); err != nil {
		return err
	}
	v.items[i] = item
	return nil
}

// Update 用 fn 的返回值替换下标i处的元素
func (v *OrderedVector[T]) Update(i int, fn func(current T) T) error {
	if err := collection.CheckIndex(i, len(v.items)); err != nil {
		return err
	}
	v.items[i] = fn(v.items[i])
	return nil
}

// First 返回第一个元素
func (v *OrderedVector[T]) First() (T, error) {
	return v.At(0)
}

// Last 返回最后一个元素
func (v *OrderedVector[T]) Last() (T, error) {
	return v.At(len(v.items) - 1)
}

// RemoveAt 删除并返回下标i处的元素
func (v *OrderedVector[T]) RemoveAt(i int) (T, error) {
	item, err := v.At(i)
	if err != nil {
		return item, err
	}
	v.items = slices.Delete(v.items, i, i+1)
	return item, nil
}

// RemoveRange 删除 [start, end) 范围内的元素
func (v *OrderedVector[T]) RemoveRange(start, end int) error {
	if start < 0 || start > len(v.items) {
		return collection.NewBoundsError(start, len(v.items))
	}
	if end < start || end > len(v.items) {
		return collection.NewBoundsError(end, len(v.items))
	}
	v.items = slices.Delete(v.items, start, end)
	return nil
}

// Entries 返回元素数量
func (v *OrderedVector[T]) Entries() int {
	return len(v.items)
}

// IsEmpty 检查向量是否为空
func (v *OrderedVector[T]) IsEmpty() bool {
	return len(v.items) == 0
}

// Index 返回第一个等价元素的下标，不存在时返回 collection.NPOS
func (v *OrderedVector[T]) Index(item T) int {
	return v.IndexFunc(compare.EqualTo(v.eq, item))
}

// IndexFunc 返回第一个满足条件的元素下标
func (v *OrderedVector[T]) IndexFunc(pred compare.Predicate[T]) int {
	if i := slices.IndexFunc(v.items, pred); i >= 0 {
		return i
	}
	return collection.NPOS
}

// Contains 检查是否存在等价元素
func (v *OrderedVector[T]) Contains(item T) bool {
	return v.Index(item) != collection.NPOS
}

// Find 返回第一个等价元素
func (v *OrderedVector[T]) Find(item T) (T, bool) {
	return v.FindFunc(compare.EqualTo(v.eq, item))
}

// FindFunc 返回第一个满足条件的元素
func (v *OrderedVector[T]) FindFunc(pred compare.Predicate[T]) (T, bool) {
	if i := v.IndexFunc(pred); i != collection.NPOS {
		return v.items[i], true
	}
	var zero T
	return zero, false
}

// OccurrencesOf 返回等价元素的数量
func (v *OrderedVector[T]) OccurrencesOf(item T) int {
	n := 0
	for _, x := range v.items {
		if v.eq(x, item) {
			n++
		}
	}
	return n
}

// Remove 删除第一个等价元素
func (v *OrderedVector[T]) Remove(item T) bool {
	i := v.Index(item)
	if i == collection.NPOS {
		return false
	}
	v.items = slices.Delete(v.items, i, i+1)
	return true
}

// RemoveAll 删除所有等价元素，返回删除数量
func (v *OrderedVector[T]) RemoveAll(item T) int {
	before := len(v.items)
	v.items = slices.DeleteFunc(v.items, compare.EqualTo(v.eq, item))
	return before - len(v.items)
}

// Clear 清空向量，保留底层数组
func (v *OrderedVector[T]) Clear() {
	clear(v.items)
	v.items = v.items[:0]
}

// ForEach 按顺序遍历元素，f 返回false时停止
func (v *OrderedVector[T]) ForEach(f func(T) bool) {
	for _, item := range v.items {
		if !f(item) {
			return
		}
	}
}

// ToSlice 返回元素副本
func (v *OrderedVector[T]) ToSlice() []T {
	return slices.Clone(v.items)
}

// Iterator 返回基于快照的迭代器
func (v *OrderedVector[T]) Iterator() collection.Iterator[T] {
	return collection.NewSliceIterator(v.ToSlice())
}

// Sort 按比较函数稳定排序
func (v *OrderedVector[T]) Sort(c compare.Comparator[T]) {
	slices.SortStableFunc(v.items, c)
}

// Clone 复制向量
func (v *OrderedVector[T]) Clone() *OrderedVector[T] {
	return FromSlice(v.eq, v.items)
}

// Filter 返回只包含满足条件元素的新向量
func (v *OrderedVector[T]) Filter(pred compare.Predicate[T]) *OrderedVector[T] {
	result := NewWithCapacity(v.eq, 0)
	for _, item := range v.items {
		if pred(item) {
			result.items = append(result.items, item)
		}
	}
	return result
}

// Any 判断是否存在满足条件的元素
func (v *OrderedVector[T]) Any(pred compare.Predicate[T]) bool {
	return v.IndexFunc(pred) != collection.NPOS
}

// All 判断是否所有元素都满足条件
func (v *OrderedVector[T]) All(pred compare.Predicate[T]) bool {
	return !v.Any(compare.Not(pred))
}

// Map 将向量元素映射为另一种类型
// 这是一个工具函数，而不是 OrderedVector 的方法
func Map[T any, R comparable](v *OrderedVector[T], mapper func(T) R) *OrderedVector[R] {
	result := NewWithCapacity(compare.EqualOf[R], len(v.items))
	for _, item := range v.items {
		result.items = append(result.items, mapper(item))
	}
	return result
}
