package collection

// Collection 定义所有集合类型共享的基本操作
// 不存在的查找返回零值和false，而不是错误
type Collection[T any] interface {
	// Entries 返回元素数量
	Entries() int

	// IsEmpty 检查集合是否为空
	IsEmpty() bool

	// Insert 插入元素
	// 对于要求唯一性的集合，已存在等价元素时返回false
	Insert(item T) bool

	// Contains 检查是否存在与item等价的元素
	Contains(item T) bool

	// Find 返回集合中存储的与item等价的第一个元素
	Find(item T) (T, bool)

	// OccurrencesOf 返回与item等价的元素数量
	OccurrencesOf(item T) int

	// Remove 删除第一个与item等价的元素
	Remove(item T) bool

	// RemoveAll 删除所有与item等价的元素，返回删除数量
	RemoveAll(item T) int

	// Clear 清空集合
	Clear()

	// ForEach 遍历集合，回调返回false时停止
	ForEach(f func(T) bool)

	// ToSlice 按迭代顺序返回元素副本
	ToSlice() []T
}

// Iterator 集合迭代器
// 创建后需先调用Next才能读取Value
// 迭代过程中修改集合会使迭代器失效
type Iterator[T any] interface {
	// Next 前进到下一个元素，没有更多元素时返回false
	Next() bool

	// Value 返回当前元素
	Value() T

	// Reset 将迭代器重置到第一个元素之前
	Reset()
}

// NPOS 表示未找到的索引
const NPOS = -1

// SliceIterator 基于切片快照的迭代器
type SliceIterator[T any] struct {
	items []T
	pos   int
}

// NewSliceIterator 创建切片迭代器
func NewSliceIterator[T any](items []T) *SliceIterator[T] {
	return &SliceIterator[T]{items: items, pos: -1}
}

// Next 前进到下一个元素
func (it *SliceIterator[T]) Next() bool {
	if it.pos+1 >= len(it.items) {
		it.pos = len(it.items)
		return false
	}
	it.pos++
	return true
}

// Value 返回当前元素
func (it *SliceIterator[T]) Value() T {
	if it.pos < 0 || it.pos >= len(it.items) {
		var zero T
		return zero
	}
	return it.items[it.pos]
}

// Reset 重置迭代器
func (it *SliceIterator[T]) Reset() {
	it.pos = -1
}
