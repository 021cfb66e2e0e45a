// Package deque 提供基于环形缓冲区的双端队列
package deque

import (
	"slices"

	"github.com/fyerfyer/collkit/collection"
	"github.com/fyerfyer/collkit/compare"
)

// Deque 双端队列，两端插入删除为均摊O(1)，支持按下标访问
// 允许重复元素，不做同步
type Deque[T any] struct {
	// 环形缓冲区
	data []T

	// 第一个元素在缓冲区中的位置
	head int

	// 元素数量
	size int

	eq compare.Equal[T]
}

// New 创建双端队列，使用 == 比较元素
func New[T comparable](options ...Option[T]) *Deque[T] {
	opts := DefaultOptions[T]()
	for _, opt := range options {
		opt(opts)
	}
	return newDeque(opts)
}

// NewWith 使用自定义相等函数创建双端队列
func NewWith[T any](eq compare.Equal[T], options ...Option[T]) *Deque[T] {
	opts := &Options[T]{Capacity: DefaultCapacity, Equal: eq}
	for _, opt := range options {
		opt(opts)
	}
	return newDeque(opts)
}

// From 由切片创建双端队列，元素顺序不变
func From[T comparable](items ...T) *Deque[T] {
	d := New[T](WithCapacity[T](len(items)))
	for _, item := range items {
		d.Append(item)
	}
	return d
}

func newDeque[T any](opts *Options[T]) *Deque[T] {
	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Deque[T]{
		data: make([]T, capacity),
		eq:   opts.Equal,
	}
}

// pos 将逻辑下标转换为缓冲区位置
func (d *Deque[T]) pos(i int) int {
	return (d.head + i) % len(d.data)
}

// expand 缓冲区翻倍，元素按顺序复制到新缓冲区开头
func (d *Deque[T]) expand() {
	newData := make([]T, len(d.data)*2)
	for i := 0; i < d.size; i++ {
		newData[i] = d.data[d.pos(i)]
	}
	d.head = 0
	d.data = newData
}

func (d *Deque[T]) ensureSpace() {
	if d.size == len(d.data) {
		d.expand()
	}
}

// Entries 返回元素数量
func (d *Deque[T]) Entries() int {
	return d.size
}

// IsEmpty 检查队列是否为空
func (d *Deque[T]) IsEmpty() bool {
	return d.size == 0
}

// Append 在尾部添加元素
func (d *Deque[T]) Append(item T) {
	d.ensureSpace()
	d.data[d.pos(d.size)] = item
	d.size++
}

// Prepend 在头部添加元素
func (d *Deque[T]) Prepend(item T) {
	d.ensureSpace()
	d.head = (d.head - 1 + len(d.data)) % len(d.data)
	d.data[d.head] = item
	d.size++
}

// Insert 在尾部添加元素，总是返回true
func (d *Deque[T]) Insert(item T) bool {
	d.Append(item)
	return true
}

// InsertAt 在下标i处插入元素，i 可以等于 Entries()
// 移动距离较短的一侧
func (d *Deque[T]) InsertAt(i int, item T) error {
	if i < 0 || i > d.size {
		return collection.NewBoundsError(i, d.size)
	}
	d.ensureSpace()

	if i < d.size/2 {
		d.head = (d.head - 1 + len(d.data)) % len(d.data)
		for j := 0; j < i; j++ {
			d.data[d.pos(j)] = d.data[d.pos(j+1)]
		}
	} else {
		for j := d.size; j > i; j-- {
			d.data[d.pos(j)] = d.data[d.pos(j-1)]
		}
	}
	d.data[d.pos(i)] = item
	d.size++
	return nil
}

// At 返回下标i处的元素
func (d *Deque[T]) At(i int) (T, error) {
	if err := collection.CheckIndex(i, d.size); err != nil {
		var zero T
		return zero, err
	}
	return d.data[d.pos(i)], nil
}

// Set 替换下标i处的元素
func (d *Deque[T]) Set(i int, item T) error {
	if err := collection.CheckIndex(i, d.size); err != nil {
		return err
	}
	d.data[d.pos(i)] = item
	return nil
}

// First 返回第一个元素，队列为空时返回越界错误
func (d *Deque[T]) First() (T, error) {
	return d.At(0)
}

// Last 返回最后一个元素，队列为空时返回越界错误
func (d *Deque[T]) Last() (T, error) {
	return d.At(d.size - 1)
}

// RemoveFirst 删除并返回第一个元素
func (d *Deque[T]) RemoveFirst() (T, error) {
	return d.RemoveAt(0)
}

// RemoveLast 删除并返回最后一个元素
func (d *Deque[T]) RemoveLast() (T, error) {
	return d.RemoveAt(d.size - 1)
}

// RemoveAt 删除并返回下标i处的元素
func (d *Deque[T]) RemoveAt(i int) (T, error) {
	var zero T
	if err := collection.CheckIndex(i, d.size); err != nil {
		return zero, err
	}

	item := d.data[d.pos(i)]
	if i < d.size/2 {
		for j := i; j > 0; j-- {
			d.data[d.pos(j)] = d.data[d.pos(j-1)]
		}
		// 清除原引用，帮助GC
		d.data[d.head] = zero
		d.head = (d.head + 1) % len(d.data)
	} else {
		for j := i; j < d.size-1; j++ {
			d.data[d.pos(j)] = d.data[d.pos(j+1)]
		}
		d.data[d.pos(d.size-1)] = zero
	}
	d.size--
	return item, nil
}

// Index 返回第一个等价元素的下标，不存在时返回 collection.NPOS
func (d *Deque[T]) Index(item T) int {
	return d.IndexFunc(compare.EqualTo(d.eq, item))
}

// IndexFunc 返回第一个满足条件的元素下标，不存在时返回 collection.NPOS
func (d *Deque[T]) IndexFunc(pred compare.Predicate[T]) int {
	for i := 0; i < d.size; i++ {
		if pred(d.data[d.pos(i)]) {
			return i
		}
	}
	return collection.NPOS
}

// Contains 检查是否存在等价元素
func (d *Deque[T]) Contains(item T) bool {
	return d.Index(item) != collection.NPOS
}

// Find 返回第一个等价元素
func (d *Deque[T]) Find(item T) (T, bool) {
	if i := d.Index(item); i != collection.NPOS {
		return d.data[d.pos(i)], true
	}
	var zero T
	return zero, false
}

// OccurrencesOf 返回等价元素的数量
func (d *Deque[T]) OccurrencesOf(item T) int {
	n := 0
	for i := 0; i < d.size; i++ {
		if d.eq(d.data[d.pos(i)], item) {
			n++
		}
	}
	return n
}

// Remove 删除第一个等价元素
func (d *Deque[T]) Remove(item T) bool {
	i := d.Index(item)
	if i == collection.NPOS {
		return false
	}
	_, _ = d.RemoveAt(i)
	return true
}

// RemoveAll 删除所有等价元素，返回删除数量，其余元素顺序不变
func (d *Deque[T]) RemoveAll(item T) int {
	items := d.ToSlice()
	kept := slices.DeleteFunc(items, func(v T) bool { return d.eq(v, item) })
	removed := d.size - len(kept)
	if removed > 0 {
		d.reset(kept)
	}
	return removed
}

// Sort 按比较函数稳定排序
func (d *Deque[T]) Sort(c compare.Comparator[T]) {
	items := d.ToSlice()
	slices.SortStableFunc(items, c)
	d.reset(items)
}

// reset 用 items 重写缓冲区内容，缓冲区大小不变
func (d *Deque[T]) reset(items []T) {
	clear(d.data)
	copy(d.data, items)
	d.head = 0
	d.size = len(items)
}

// Clear 清空队列，保留缓冲区
func (d *Deque[T]) Clear() {
	clear(d.data)
	d.head = 0
	d.size = 0
}

// ForEach 从头到尾遍历元素，f 返回false时停止
func (d *Deque[T]) ForEach(f func(T) bool) {
	for i := 0; i < d.size; i++ {
		if !f(d.data[d.pos(i)]) {
			return
		}
	}
}

// ToSlice 从头到尾返回元素副本
func (d *Deque[T]) ToSlice() []T {
	items := make([]T, d.size)
	for i := range items {
		items[i] = d.data[d.pos(i)]
	}
	return items
}

// Iterator 返回从头到尾的迭代器
func (d *Deque[T]) Iterator() collection.Iterator[T] {
	return &iterator[T]{d: d, pos: -1}
}

type iterator[T any] struct {
	d   *Deque[T]
	pos int
}

func (it *iterator[T]) Next() bool {
	if it.pos+1 >= it.d.size {
		it.pos = it.d.size
		return false
	}
	it.pos++
	return true
}

func (it *iterator[T]) Value() T {
	if it.pos < 0 || it.pos >= it.d.size {
		var zero T
		return zero
	}
	return it.d.data[it.d.pos(it.pos)]
}

func (it *iterator[T]) Reset() {
	it.pos = -1
}
