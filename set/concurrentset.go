package set

import (
	"sync"
	"sync/atomic"

	"github.com/fyerfyer/collkit/collection"
)

// ConcurrentSet 线程安全的集合包装，可包装任意 Set 实现
// 其余集合类型都不做同步，需要并发访问时由调用方加锁或使用本类型
type ConcurrentSet[T any] struct {
	set  Set[T]
	lock sync.RWMutex
	// 两个集合之间的运算按id顺序加锁，避免 a.Union(b) 与 b.Union(a) 互相等待
	id uint64
}

var concurrentSetID atomic.Uint64

// NewConcurrent 创建一个新的并发安全集合
func NewConcurrent[T any](s Set[T]) *ConcurrentSet[T] {
	return &ConcurrentSet[T]{set: s, id: concurrentSetID.Add(1)}
}

// Entries 返回集合中的元素数量，线程安全
func (c *ConcurrentSet[T]) Entries() int {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.set.Entries()
}

// IsEmpty 检查集合是否为空，线程安全
func (c *ConcurrentSet[T]) IsEmpty() bool {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.set.IsEmpty()
}

// Insert 添加元素到集合中，线程安全
func (c *ConcurrentSet[T]) Insert(item T) bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.set.Insert(item)
}

// Contains 检查元素是否在集合中，线程安全
func (c *ConcurrentSet[T]) Contains(item T) bool {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.set.Contains(item)
}

// Find 返回集合中存储的等价元素，线程安全
func (c *ConcurrentSet[T]) Find(item T) (T, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.set.Find(item)
}

// OccurrencesOf 返回等价元素的数量，线程安全
func (c *ConcurrentSet[T]) OccurrencesOf(item T) int {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.set.OccurrencesOf(item)
}

// Remove 从集合中删除元素，线程安全
func (c *ConcurrentSet[T]) Remove(item T) bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.set.Remove(item)
}

// RemoveAll 删除所有等价元素，线程安全
func (c *ConcurrentSet[T]) RemoveAll(item T) int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.set.RemoveAll(item)
}

// Clear 清空集合，线程安全
func (c *ConcurrentSet[T]) Clear() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.set.Clear()
}

// ToSlice 将集合转换为切片，线程安全
func (c *ConcurrentSet[T]) ToSlice() []T {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.set.ToSlice()
}

// ForEach 遍历集合中的所有元素，线程安全
// 遍历的是快照，回调中可以修改集合
func (c *ConcurrentSet[T]) ForEach(f func(T) bool) {
	for _, item := range c.ToSlice() {
		if !f(item) {
			break
		}
	}
}

// Iterator 返回基于快照的迭代器
func (c *ConcurrentSet[T]) Iterator() collection.Iterator[T] {
	return collection.NewSliceIterator(c.ToSlice())
}

// lockPair 同时锁定自身和另一个ConcurrentSet，返回解锁函数
// write 为true时自身加写锁，other 总是加读锁
func (c *ConcurrentSet[T]) lockPair(other *ConcurrentSet[T], write bool) func() {
	lockSelf, unlockSelf := c.lock.RLock, c.lock.RUnlock
	if write {
		lockSelf, unlockSelf = c.lock.Lock, c.lock.Unlock
	}

	if c.id < other.id {
		lockSelf()
		other.lock.RLock()
	} else {
		other.lock.RLock()
		lockSelf()
	}

	return func() {
		other.lock.RUnlock()
		unlockSelf()
	}
}

// withOther 在持有写锁的情况下执行集合运算
// 如果other也是ConcurrentSet，同时持有它的读锁；other就是自身时只加一次锁
func (c *ConcurrentSet[T]) withOther(other collection.Collection[T], op func(s Set[T], other collection.Collection[T])) {
	if otherConcurrent, ok := other.(*ConcurrentSet[T]); ok {
		if otherConcurrent == c {
			c.lock.Lock()
			defer c.lock.Unlock()
			op(c.set, c.set)
			return
		}
		unlock := c.lockPair(otherConcurrent, true)
		defer unlock()
		op(c.set, otherConcurrent.set)
		return
	}

	c.lock.Lock()
	defer c.lock.Unlock()
	op(c.set, other)
}

// readWithOther 在持有读锁的情况下判断集合关系
func (c *ConcurrentSet[T]) readWithOther(other collection.Collection[T], op func(s Set[T], other collection.Collection[T]) bool) bool {
	if otherConcurrent, ok := other.(*ConcurrentSet[T]); ok {
		if otherConcurrent == c {
			c.lock.RLock()
			defer c.lock.RUnlock()
			return op(c.set, c.set)
		}
		unlock := c.lockPair(otherConcurrent, false)
		defer unlock()
		return op(c.set, otherConcurrent.set)
	}

	c.lock.RLock()
	defer c.lock.RUnlock()
	return op(c.set, other)
}

// Union 并集，线程安全
func (c *ConcurrentSet[T]) Union(other collection.Collection[T]) {
	c.withOther(other, func(s Set[T], o collection.Collection[T]) { s.Union(o) })
}

// Intersection 交集，线程安全
func (c *ConcurrentSet[T]) Intersection(other collection.Collection[T]) {
	c.withOther(other, func(s Set[T], o collection.Collection[T]) { s.Intersection(o) })
}

// Difference 差集，线程安全
func (c *ConcurrentSet[T]) Difference(other collection.Collection[T]) {
	c.withOther(other, func(s Set[T], o collection.Collection[T]) { s.Difference(o) })
}

// SymmetricDifference 对称差集，线程安全
func (c *ConcurrentSet[T]) SymmetricDifference(other collection.Collection[T]) {
	c.withOther(other, func(s Set[T], o collection.Collection[T]) { s.SymmetricDifference(o) })
}

// IsSubsetOf 检查当前集合是否是另一个集合的子集，线程安全
func (c *ConcurrentSet[T]) IsSubsetOf(other collection.Collection[T]) bool {
	return c.readWithOther(other, func(s Set[T], o collection.Collection[T]) bool { return s.IsSubsetOf(o) })
}

// IsProperSubsetOf 检查当前集合是否是另一个集合的真子集，线程安全
func (c *ConcurrentSet[T]) IsProperSubsetOf(other collection.Collection[T]) bool {
	return c.readWithOther(other, func(s Set[T], o collection.Collection[T]) bool { return s.IsProperSubsetOf(o) })
}

// IsEquivalent 检查两个集合是否相等，线程安全
func (c *ConcurrentSet[T]) IsEquivalent(other collection.Collection[T]) bool {
	return c.readWithOther(other, func(s Set[T], o collection.Collection[T]) bool { return s.IsEquivalent(o) })
}

// Unwrap 返回被包装的集合，调用方需自行保证同步
func (c *ConcurrentSet[T]) Unwrap() Set[T] {
	return c.set
}
