package dict

import (
	"github.com/fyerfyer/collkit/compare"
	"github.com/fyerfyer/collkit/internal/hashtable"
)

// hashBase 哈希映射的公共实现，遍历顺序不确定
type hashBase[K any, V any] struct {
	table *hashtable.Table[K, V]
}

func (m *hashBase[K, V]) Entries() int {
	return m.table.Len()
}

func (m *hashBase[K, V]) IsEmpty() bool {
	return m.table.Len() == 0
}

func (m *hashBase[K, V]) Insert(key K, value V) bool {
	return m.table.Insert(key, value)
}

func (m *hashBase[K, V]) Put(key K, value V) (V, bool) {
	return m.table.Upsert(key, value)
}

func (m *hashBase[K, V]) Contains(key K) bool {
	_, ok := m.table.Find(key)
	return ok
}

func (m *hashBase[K, V]) Find(key K) (V, bool) {
	e, ok := m.table.Find(key)
	return e.Value, ok
}

func (m *hashBase[K, V]) FindKeyAndValue(key K) (K, V, bool) {
	e, ok := m.table.Find(key)
	return e.Key, e.Value, ok
}

func (m *hashBase[K, V]) FindAll(key K) []V {
	entries := m.table.FindAll(key)
	values := make([]V, 0, len(entries))
	for _, e := range entries {
		values = append(values, e.Value)
	}
	return values
}

func (m *hashBase[K, V]) OccurrencesOf(key K) int {
	return m.table.Count(key)
}

func (m *hashBase[K, V]) Remove(key K) bool {
	_, ok := m.table.Remove(key)
	return ok
}

func (m *hashBase[K, V]) RemoveAll(key K) int {
	return m.table.RemoveAll(key)
}

// Clear 删除所有条目，桶数量不变
func (m *hashBase[K, V]) Clear() {
	m.table.Clear()
}

func (m *hashBase[K, V]) ForEach(f func(key K, value V) bool) {
	m.table.ForEach(func(e hashtable.Entry[K, V]) bool {
		return f(e.Key, e.Value)
	})
}

func (m *hashBase[K, V]) Keys() []K {
	keys := make([]K, 0, m.table.Len())
	m.table.ForEach(func(e hashtable.Entry[K, V]) bool {
		keys = append(keys, e.Key)
		return true
	})
	return keys
}

func (m *hashBase[K, V]) Values() []V {
	values := make([]V, 0, m.table.Len())
	m.table.ForEach(func(e hashtable.Entry[K, V]) bool {
		values = append(values, e.Value)
		return true
	})
	return values
}

// Capacity 返回桶数量
func (m *hashBase[K, V]) Capacity() int {
	return m.table.Capacity()
}

// FillRatio 返回条目数与桶数之比
func (m *hashBase[K, V]) FillRatio() float64 {
	return m.table.FillRatio()
}

// Resize 修改桶数量并重新散列，n < 1 时返回 collection.ErrInvalidCapacity
func (m *hashBase[K, V]) Resize(n int) error {
	return m.table.Resize(n)
}

func (m *hashBase[K, V]) Iterator() Iterator[K, V] {
	return &hashIterator[K, V]{it: m.table.Iterator()}
}

type hashIterator[K any, V any] struct {
	it *hashtable.Iterator[K, V]
}

func (it *hashIterator[K, V]) Next() bool { return it.it.Next() }
func (it *hashIterator[K, V]) Key() K     { return it.it.Entry().Key }
func (it *hashIterator[K, V]) Value() V   { return it.it.Entry().Value }
func (it *hashIterator[K, V]) Reset()     { it.it.Reset() }

// HashMap 哈希唯一映射
type HashMap[K any, V any] struct {
	hashBase[K, V]
}

// New 使用默认哈希函数创建哈希映射
func New[K comparable, V any](options ...Option[K]) *HashMap[K, V] {
	return NewHashWith[K, V](compare.HashOf[K], compare.EqualOf[K], options...)
}

// NewHashWith 使用自定义哈希函数和相等函数创建哈希映射
// 相等的键必须有相同的哈希值
func NewHashWith[K any, V any](h compare.Hasher[K], eq compare.Equal[K], options ...Option[K]) *HashMap[K, V] {
	opts := newOptions(h, eq, options)
	return &HashMap[K, V]{hashBase[K, V]{table: hashtable.New[K, V](opts.tableConfig(true))}}
}

// HashMultiMap 哈希多值映射
type HashMultiMap[K any, V any] struct {
	hashBase[K, V]
}

// NewMulti 使用默认哈希函数创建哈希多值映射
func NewMulti[K comparable, V any](options ...Option[K]) *HashMultiMap[K, V] {
	return NewHashMultiWith[K, V](compare.HashOf[K], compare.EqualOf[K], options...)
}

// NewHashMultiWith 使用自定义哈希函数和相等函数创建哈希多值映射
func NewHashMultiWith[K any, V any](h compare.Hasher[K], eq compare.Equal[K], options ...Option[K]) *HashMultiMap[K, V] {
	opts := newOptions(h, eq, options)
	return &HashMultiMap[K, V]{hashBase[K, V]{table: hashtable.New[K, V](opts.tableConfig(false))}}
}
