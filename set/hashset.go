package set

import (
	"github.com/fyerfyer/collkit/collection"
	"github.com/fyerfyer/collkit/compare"
	"github.com/fyerfyer/collkit/internal/hashtable"
)

// hashBase 哈希集合的公共实现，基于链式哈希表
type hashBase[T any] struct {
	table *hashtable.Table[T, struct{}]
}

// Entries 返回集合中的元素数量
func (s *hashBase[T]) Entries() int {
	return s.table.Len()
}

// IsEmpty 检查集合是否为空
func (s *hashBase[T]) IsEmpty() bool {
	return s.table.Len() == 0
}

// Insert 添加元素到集合中
func (s *hashBase[T]) Insert(item T) bool {
	return s.table.Insert(item, struct{}{})
}

// Contains 检查元素是否在集合中
func (s *hashBase[T]) Contains(item T) bool {
	_, ok := s.table.Find(item)
	return ok
}

// Find 返回集合中存储的等价元素
func (s *hashBase[T]) Find(item T) (T, bool) {
	e, ok := s.table.Find(item)
	return e.Key, ok
}

// OccurrencesOf 返回等价元素的数量
func (s *hashBase[T]) OccurrencesOf(item T) int {
	return s.table.Count(item)
}

// Remove 删除第一个等价元素
func (s *hashBase[T]) Remove(item T) bool {
	_, ok := s.table.Remove(item)
	return ok
}

// RemoveAll 删除所有等价元素
func (s *hashBase[T]) RemoveAll(item T) int {
	return s.table.RemoveAll(item)
}

// Clear 清空集合，桶数量不变
func (s *hashBase[T]) Clear() {
	s.table.Clear()
}

// ForEach 按桶顺序遍历集合中的所有元素
func (s *hashBase[T]) ForEach(f func(T) bool) {
	s.table.ForEach(func(e hashtable.Entry[T, struct{}]) bool {
		return f(e.Key)
	})
}

// ToSlice 将集合转换为切片
func (s *hashBase[T]) ToSlice() []T {
	result := make([]T, 0, s.table.Len())
	s.ForEach(func(item T) bool {
		result = append(result, item)
		return true
	})
	return result
}

// Capacity 返回桶数量
func (s *hashBase[T]) Capacity() int {
	return s.table.Capacity()
}

// FillRatio 返回装填因子
func (s *hashBase[T]) FillRatio() float64 {
	return s.table.FillRatio()
}

// Resize 重新哈希到 n 个桶，n 小于1时返回 collection.ErrInvalidCapacity
func (s *hashBase[T]) Resize(n int) error {
	return s.table.Resize(n)
}

// Iterator 返回桶顺序迭代器
func (s *hashBase[T]) Iterator() collection.Iterator[T] {
	return &hashIterator[T]{it: s.table.Iterator()}
}

type hashIterator[T any] struct {
	it *hashtable.Iterator[T, struct{}]
}

func (it *hashIterator[T]) Next() bool { return it.it.Next() }
func (it *hashIterator[T]) Value() T   { return it.it.Entry().Key }
func (it *hashIterator[T]) Reset()     { it.it.Reset() }

func newHashBase[T any](opts *Options[T], unique bool, options []Option[T]) hashBase[T] {
	for _, opt := range options {
		opt(opts)
	}
	return hashBase[T]{table: hashtable.New[T, struct{}](opts.tableConfig(unique))}
}

// HashSet 无序唯一集合，基于哈希表
type HashSet[T any] struct {
	hashBase[T]
}

// New 创建一个新的HashSet，使用默认哈希函数
func New[T comparable](items ...T) *HashSet[T] {
	return NewHash[T](DefaultOptions[T](), items...)
}

// NewHash 使用指定选项创建HashSet
// opts 的 Hasher 和 Equal 必须非空
func NewHash[T any](opts *Options[T], items ...T) *HashSet[T] {
	s := &HashSet[T]{newHashBase(opts, true, nil)}
	for _, item := range items {
		s.Insert(item)
	}
	return s
}

// NewHashWith 使用哈希函数、相等函数和可选项创建HashSet
func NewHashWith[T any](h compare.Hasher[T], eq compare.Equal[T], options ...Option[T]) *HashSet[T] {
	opts := &Options[T]{Hasher: h, Equal: eq}
	return &HashSet[T]{newHashBase(opts, true, options)}
}

// Union 并集
func (s *HashSet[T]) Union(other collection.Collection[T]) { union[T](s, other) }

// Intersection 交集
func (s *HashSet[T]) Intersection(other collection.Collection[T]) { intersection[T](s, other) }

// Difference 差集
func (s *HashSet[T]) Difference(other collection.Collection[T]) { difference[T](s, other) }

// SymmetricDifference 对称差集
func (s *HashSet[T]) SymmetricDifference(other collection.Collection[T]) {
	symmetricDifference[T](s, other)
}

// IsSubsetOf 检查当前集合是否是另一个集合的子集
func (s *HashSet[T]) IsSubsetOf(other collection.Collection[T]) bool {
	return isSubset[T](s, other)
}

// IsProperSubsetOf 检查当前集合是否是另一个集合的真子集
func (s *HashSet[T]) IsProperSubsetOf(other collection.Collection[T]) bool {
	return isProperSubset[T](s, other)
}

// IsEquivalent 检查两个集合是否相等
func (s *HashSet[T]) IsEquivalent(other collection.Collection[T]) bool {
	return isEquivalent[T](s, other)
}

// HashMultiSet 无序多重集合，基于哈希表
type HashMultiSet[T any] struct {
	hashBase[T]
}

// NewMulti 创建一个新的HashMultiSet，使用默认哈希函数
func NewMulti[T comparable](items ...T) *HashMultiSet[T] {
	return NewHashMulti[T](DefaultOptions[T](), items...)
}

// NewHashMulti 使用指定选项创建HashMultiSet
func NewHashMulti[T any](opts *Options[T], items ...T) *HashMultiSet[T] {
	s := &HashMultiSet[T]{newHashBase(opts, false, nil)}
	for _, item := range items {
		s.Insert(item)
	}
	return s
}

// NewHashMultiWith 使用哈希函数、相等函数和可选项创建HashMultiSet
func NewHashMultiWith[T any](h compare.Hasher[T], eq compare.Equal[T], options ...Option[T]) *HashMultiSet[T] {
	opts := &Options[T]{Hasher: h, Equal: eq}
	return &HashMultiSet[T]{newHashBase(opts, false, options)}
}

// Union 并集
func (s *HashMultiSet[T]) Union(other collection.Collection[T]) { union[T](s, other) }

// Intersection 交集
func (s *HashMultiSet[T]) Intersection(other collection.Collection[T]) { intersection[T](s, other) }

// Difference 差集
func (s *HashMultiSet[T]) Difference(other collection.Collection[T]) { difference[T](s, other) }

// SymmetricDifference 对称差集
func (s *HashMultiSet[T]) SymmetricDifference(other collection.Collection[T]) {
	symmetricDifference[T](s, other)
}

// IsSubsetOf 检查当前集合是否是另一个集合的子集
func (s *HashMultiSet[T]) IsSubsetOf(other collection.Collection[T]) bool {
	return isSubset[T](s, other)
}

// IsProperSubsetOf 检查当前集合是否是另一个集合的真子集
func (s *HashMultiSet[T]) IsProperSubsetOf(other collection.Collection[T]) bool {
	return isProperSubset[T](s, other)
}

// IsEquivalent 检查两个集合是否相等
func (s *HashMultiSet[T]) IsEquivalent(other collection.Collection[T]) bool {
	return isEquivalent[T](s, other)
}
