// Package hashtable 提供链式哈希表，供哈希集合和哈希映射使用
package hashtable

import (
	"github.com/fyerfyer/collkit/collection"
	"github.com/fyerfyer/collkit/compare"
)

// DefaultCapacity 默认桶数量
const DefaultCapacity = 64

// Entry 哈希表中的键值对
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// Config 哈希表配置
type Config[K any] struct {
	Hash  compare.Hasher[K]
	Equal compare.Equal[K]

	// 初始桶数量，<=0 时使用 DefaultCapacity
	Capacity int

	// Unique 为true时拒绝插入等价的键
	Unique bool

	// MaxFillRatio 大于0时，装填因子超过该值会自动将桶数翻倍
	MaxFillRatio float64
}

// Table 链式哈希表
// 多值模式下等价的条目在同一个桶中相邻存放
type Table[K any, V any] struct {
	buckets [][]Entry[K, V]
	count   int
	cfg     Config[K]
}

// New 创建哈希表
func New[K any, V any](cfg Config[K]) *Table[K, V] {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	return &Table[K, V]{
		buckets: make([][]Entry[K, V], cfg.Capacity),
		cfg:     cfg,
	}
}

func (t *Table[K, V]) index(key K) int {
	return int(t.cfg.Hash(key) % uint64(len(t.buckets)))
}

// Insert 插入条目，唯一模式下已存在等价键时返回false
func (t *Table[K, V]) Insert(key K, value V) bool {
	idx := t.index(key)
	bucket := t.buckets[idx]

	last := -1
	for i := range bucket {
		if t.cfg.Equal(bucket[i].Key, key) {
			if t.cfg.Unique {
				return false
			}
			last = i
		}
	}

	entry := Entry[K, V]{Key: key, Value: value}
	if last < 0 || last == len(bucket)-1 {
		bucket = append(bucket, entry)
	} else {
		// 插入到最后一个等价条目之后，保持等价条目相邻
		bucket = append(bucket, Entry[K, V]{})
		copy(bucket[last+2:], bucket[last+1:len(bucket)-1])
		bucket[last+1] = entry
	}
	t.buckets[idx] = bucket
	t.count++

	t.maybeGrow()
	return true
}

// Upsert 替换第一个等价条目的值并保留其原有键，不存在时插入
// replaced 为 true 时 old 是被替换的值
func (t *Table[K, V]) Upsert(key K, value V) (old V, replaced bool) {
	idx := t.index(key)
	bucket := t.buckets[idx]
	for i := range bucket {
		if t.cfg.Equal(bucket[i].Key, key) {
			old = bucket[i].Value
			bucket[i].Value = value
			return old, true
		}
	}
	t.buckets[idx] = append(bucket, Entry[K, V]{Key: key, Value: value})
	t.count++

	t.maybeGrow()
	return old, false
}

// Find 返回第一个等价条目
func (t *Table[K, V]) Find(key K) (Entry[K, V], bool) {
	for _, e := range t.buckets[t.index(key)] {
		if t.cfg.Equal(e.Key, key) {
			return e, true
		}
	}
	return Entry[K, V]{}, false
}

// FindAll 返回所有等价条目
func (t *Table[K, V]) FindAll(key K) []Entry[K, V] {
	var result []Entry[K, V]
	for _, e := range t.buckets[t.index(key)] {
		if t.cfg.Equal(e.Key, key) {
			result = append(result, e)
		}
	}
	return result
}

// Count 返回等价条目的数量
func (t *Table[K, V]) Count(key K) int {
	n := 0
	for _, e := range t.buckets[t.index(key)] {
		if t.cfg.Equal(e.Key, key) {
			n++
		}
	}
	return n
}

// Remove 删除第一个等价条目
func (t *Table[K, V]) Remove(key K) (Entry[K, V], bool) {
	idx := t.index(key)
	bucket := t.buckets[idx]
	for i := range bucket {
		if t.cfg.Equal(bucket[i].Key, key) {
			removed := bucket[i]
			t.buckets[idx] = deleteAt(bucket, i)
			t.count--
			return removed, true
		}
	}
	return Entry[K, V]{}, false
}

// RemoveAll 删除所有等价条目，返回删除数量
func (t *Table[K, V]) RemoveAll(key K) int {
	return t.removeFromBucket(t.index(key), func(e Entry[K, V]) bool {
		return t.cfg.Equal(e.Key, key)
	})
}

// RemoveIf 删除所有满足条件的条目
func (t *Table[K, V]) RemoveIf(pred func(Entry[K, V]) bool) int {
	removed := 0
	for idx := range t.buckets {
		removed += t.removeFromBucket(idx, pred)
	}
	return removed
}

func (t *Table[K, V]) removeFromBucket(idx int, pred func(Entry[K, V]) bool) int {
	bucket := t.buckets[idx]
	kept := bucket[:0]
	for _, e := range bucket {
		if !pred(e) {
			kept = append(kept, e)
		}
	}
	removed := len(bucket) - len(kept)

	// 清除尾部引用，帮助GC
	var zero Entry[K, V]
	for i := len(kept); i < len(bucket); i++ {
		bucket[i] = zero
	}

	t.buckets[idx] = kept
	t.count -= removed
	return removed
}

func deleteAt[K any, V any](bucket []Entry[K, V], i int) []Entry[K, V] {
	copy(bucket[i:], bucket[i+1:])
	bucket[len(bucket)-1] = Entry[K, V]{}
	return bucket[:len(bucket)-1]
}

// Len 返回条目数量
func (t *Table[K, V]) Len() int {
	return t.count
}

// Capacity 返回桶数量
func (t *Table[K, V]) Capacity() int {
	return len(t.buckets)
}

// FillRatio 返回装填因子（条目数 / 桶数）
func (t *Table[K, V]) FillRatio() float64 {
	return float64(t.count) / float64(len(t.buckets))
}

// Resize 将所有条目重新哈希到 n 个新桶中
func (t *Table[K, V]) Resize(n int) error {
	if n < 1 {
		return collection.ErrInvalidCapacity
	}
	t.rehash(n)
	return nil
}

func (t *Table[K, V]) rehash(n int) {
	old := t.buckets
	t.buckets = make([][]Entry[K, V], n)
	for _, bucket := range old {
		for _, e := range bucket {
			idx := t.index(e.Key)
			t.buckets[idx] = append(t.buckets[idx], e)
		}
	}
}

func (t *Table[K, V]) maybeGrow() {
	if t.cfg.MaxFillRatio > 0 && t.FillRatio() > t.cfg.MaxFillRatio {
		t.rehash(len(t.buckets) * 2)
	}
}

// Clear 清空哈希表，保留桶数量
func (t *Table[K, V]) Clear() {
	t.buckets = make([][]Entry[K, V], len(t.buckets))
	t.count = 0
}

// ForEach 按桶顺序遍历条目，回调返回false时停止
func (t *Table[K, V]) ForEach(f func(Entry[K, V]) bool) {
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			if !f(e) {
				return
			}
		}
	}
}

// Entries 按桶顺序返回所有条目的副本
func (t *Table[K, V]) Entries() []Entry[K, V] {
	result := make([]Entry[K, V], 0, t.count)
	t.ForEach(func(e Entry[K, V]) bool {
		result = append(result, e)
		return true
	})
	return result
}

// Iterator 返回桶顺序迭代器
func (t *Table[K, V]) Iterator() *Iterator[K, V] {
	it := &Iterator[K, V]{table: t}
	it.Reset()
	return it
}

// Iterator 哈希表迭代器
type Iterator[K any, V any] struct {
	table  *Table[K, V]
	bucket int
	pos    int
}

// Next 前进到下一个条目
func (it *Iterator[K, V]) Next() bool {
	buckets := it.table.buckets
	it.pos++
	for it.bucket < len(buckets) {
		if it.bucket >= 0 && it.pos < len(buckets[it.bucket]) {
			return true
		}
		it.bucket++
		it.pos = 0
	}
	return false
}

// Entry 返回当前条目
func (it *Iterator[K, V]) Entry() Entry[K, V] {
	buckets := it.table.buckets
	if it.bucket < 0 || it.bucket >= len(buckets) || it.pos >= len(buckets[it.bucket]) {
		return Entry[K, V]{}
	}
	return buckets[it.bucket][it.pos]
}

// Reset 重置到第一个条目之前
func (it *Iterator[K, V]) Reset() {
	it.bucket = -1
	it.pos = -1
}
