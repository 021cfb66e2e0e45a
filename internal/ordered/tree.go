// Package ordered 基于红黑树的有序存储，供有序集合和有序映射使用
package ordered

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"

	"github.com/fyerfyer/collkit/compare"
)

// Entry 树中的键值对
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// group 保存一个等价类中的所有条目，按插入顺序排列
type group[K any, V any] struct {
	entries []Entry[K, V]
}

// Tree 有序存储
// 唯一模式下每个等价类最多一个条目，多值模式下保留所有条目
type Tree[K any, V any] struct {
	tree   *redblacktree.Tree
	cmp    compare.Comparator[K]
	unique bool
	size   int
}

// New 创建有序存储
func New[K any, V any](cmp compare.Comparator[K], unique bool) *Tree[K, V] {
	return &Tree[K, V]{
		tree:   redblacktree.NewWith(comparator(cmp)),
		cmp:    cmp,
		unique: unique,
	}
}

func comparator[K any](cmp compare.Comparator[K]) utils.Comparator {
	return func(a, b interface{}) int {
		return cmp(a.(K), b.(K))
	}
}

func (t *Tree[K, V]) lookup(key K) *group[K, V] {
	v, found := t.tree.Get(key)
	if !found {
		return nil
	}
	return v.(*group[K, V])
}

// Comparator 返回使用的比较函数
func (t *Tree[K, V]) Comparator() compare.Comparator[K] {
	return t.cmp
}

// Insert 插入条目，唯一模式下已存在等价键时返回false
func (t *Tree[K, V]) Insert(key K, value V) bool {
	entry := Entry[K, V]{Key: key, Value: value}
	if g := t.lookup(key); g != nil {
		if t.unique {
			return false
		}
		g.entries = append(g.entries, entry)
		t.size++
		return true
	}

	t.tree.Put(key, &group[K, V]{entries: []Entry[K, V]{entry}})
	t.size++
	return true
}

// Upsert 替换第一个等价条目的值并保留其原有键，不存在时插入
// replaced 为 true 时 old 是被替换的值
func (t *Tree[K, V]) Upsert(key K, value V) (old V, replaced bool) {
	if g := t.lookup(key); g != nil {
		old = g.entries[0].Value
		g.entries[0].Value = value
		return old, true
	}
	t.Insert(key, value)
	return old, false
}

// Find 返回第一个等价条目
func (t *Tree[K, V]) Find(key K) (Entry[K, V], bool) {
	if g := t.lookup(key); g != nil {
		return g.entries[0], true
	}
	return Entry[K, V]{}, false
}

// FindAll 返回所有等价条目
func (t *Tree[K, V]) FindAll(key K) []Entry[K, V] {
	g := t.lookup(key)
	if g == nil {
		return nil
	}
	result := make([]Entry[K, V], len(g.entries))
	copy(result, g.entries)
	return result
}

// Count 返回等价条目的数量
func (t *Tree[K, V]) Count(key K) int {
	if g := t.lookup(key); g != nil {
		return len(g.entries)
	}
	return 0
}

// Remove 删除第一个等价条目
func (t *Tree[K, V]) Remove(key K) (Entry[K, V], bool) {
	g := t.lookup(key)
	if g == nil {
		return Entry[K, V]{}, false
	}

	removed := g.entries[0]
	if len(g.entries) == 1 {
		t.tree.Remove(key)
	} else {
		g.entries[0] = Entry[K, V]{}
		g.entries = g.entries[1:]
		// 节点的键改为剩余的第一个条目，不再引用已删除的键
		t.tree.Put(g.entries[0].Key, g)
	}
	t.size--
	return removed, true
}

// RemoveAll 删除所有等价条目，返回删除数量
func (t *Tree[K, V]) RemoveAll(key K) int {
	g := t.lookup(key)
	if g == nil {
		return 0
	}
	n := len(g.entries)
	t.tree.Remove(key)
	t.size -= n
	return n
}

// Len 返回条目数量
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Clear 清空
func (t *Tree[K, V]) Clear() {
	t.tree.Clear()
	t.size = 0
}

// Min 返回最小的条目
func (t *Tree[K, V]) Min() (Entry[K, V], bool) {
	node := t.tree.Left()
	if node == nil {
		return Entry[K, V]{}, false
	}
	return node.Value.(*group[K, V]).entries[0], true
}

// Max 返回最大等价类中最后插入的条目
func (t *Tree[K, V]) Max() (Entry[K, V], bool) {
	node := t.tree.Right()
	if node == nil {
		return Entry[K, V]{}, false
	}
	entries := node.Value.(*group[K, V]).entries
	return entries[len(entries)-1], true
}

// ForEach 按升序遍历，回调返回false时停止
func (t *Tree[K, V]) ForEach(f func(Entry[K, V]) bool) {
	it := t.tree.Iterator()
	for it.Next() {
		for _, e := range it.Value().(*group[K, V]).entries {
			if !f(e) {
				return
			}
		}
	}
}

// Entries 按升序返回所有条目的副本
func (t *Tree[K, V]) Entries() []Entry[K, V] {
	result := make([]Entry[K, V], 0, t.size)
	t.ForEach(func(e Entry[K, V]) bool {
		result = append(result, e)
		return true
	})
	return result
}

// Iterator 返回升序迭代器
func (t *Tree[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{it: t.tree.Iterator(), pos: -1}
}

// Iterator 有序存储迭代器
type Iterator[K any, V any] struct {
	it      redblacktree.Iterator
	entries []Entry[K, V]
	pos     int
}

// Next 前进到下一个条目
func (it *Iterator[K, V]) Next() bool {
	if it.pos+1 < len(it.entries) {
		it.pos++
		return true
	}
	if !it.it.Next() {
		it.entries = nil
		it.pos = -1
		return false
	}
	it.entries = it.it.Value().(*group[K, V]).entries
	it.pos = 0
	return true
}

// Entry 返回当前条目
func (it *Iterator[K, V]) Entry() Entry[K, V] {
	if it.pos < 0 || it.pos >= len(it.entries) {
		return Entry[K, V]{}
	}
	return it.entries[it.pos]
}

// Reset 重置到第一个条目之前
func (it *Iterator[K, V]) Reset() {
	it.it.Begin()
	it.entries = nil
	it.pos = -1
}
