package dict

import (
	"cmp"
	"errors"

	"github.com/fyerfyer/collkit/collection"
	"github.com/fyerfyer/collkit/compare"
)

// 指针映射存储 *K 和 *V，按键指针指向的值查找
// 映射不拥有键和值，ClearAndDestroy 显式释放它们

// PtrSortedMap 指针有序唯一映射
type PtrSortedMap[K any, V any] struct {
	*SortedMap[*K, *V]
}

// NewPtrSorted 创建指针有序映射，按键的自然顺序排序
func NewPtrSorted[K cmp.Ordered, V any]() *PtrSortedMap[K, V] {
	return NewPtrSortedWithComparator[K, V](compare.Ordered[K])
}

// NewPtrSortedWithComparator 使用键的比较函数创建指针有序映射
func NewPtrSortedWithComparator[K any, V any](c compare.Comparator[K]) *PtrSortedMap[K, V] {
	return &PtrSortedMap[K, V]{NewSortedWithComparator[*K, *V](compare.Deref(c))}
}

// ClearAndDestroy 清空映射并释放所有键和值
func (m *PtrSortedMap[K, V]) ClearAndDestroy() error {
	return clearAndDestroy[K, V](m)
}

// PtrSortedMultiMap 指针有序多值映射
type PtrSortedMultiMap[K any, V any] struct {
	*SortedMultiMap[*K, *V]
}

// NewPtrSortedMulti 创建指针有序多值映射
func NewPtrSortedMulti[K cmp.Ordered, V any]() *PtrSortedMultiMap[K, V] {
	return NewPtrSortedMultiWithComparator[K, V](compare.Ordered[K])
}

// NewPtrSortedMultiWithComparator 使用键的比较函数创建指针有序多值映射
func NewPtrSortedMultiWithComparator[K any, V any](c compare.Comparator[K]) *PtrSortedMultiMap[K, V] {
	return &PtrSortedMultiMap[K, V]{NewSortedMultiWithComparator[*K, *V](compare.Deref(c))}
}

// ClearAndDestroy 清空映射并释放所有键和值
func (m *PtrSortedMultiMap[K, V]) ClearAndDestroy() error {
	return clearAndDestroy[K, V](m)
}

// PtrHashMap 指针哈希唯一映射
type PtrHashMap[K any, V any] struct {
	*HashMap[*K, *V]
}

// NewPtrHash 创建指针哈希映射，使用键的默认哈希函数
func NewPtrHash[K comparable, V any](options ...Option[*K]) *PtrHashMap[K, V] {
	return NewPtrHashWith[K, V](compare.HashOf[K], compare.EqualOf[K], options...)
}

// NewPtrHashWith 使用键的哈希函数和相等函数创建指针哈希映射
func NewPtrHashWith[K any, V any](h compare.Hasher[K], eq compare.Equal[K], options ...Option[*K]) *PtrHashMap[K, V] {
	return &PtrHashMap[K, V]{NewHashWith[*K, *V](compare.DerefHash(h), compare.DerefEqual(eq), options...)}
}

// ClearAndDestroy 清空映射并释放所有键和值
func (m *PtrHashMap[K, V]) ClearAndDestroy() error {
	return clearAndDestroy[K, V](m)
}

// PtrHashMultiMap 指针哈希多值映射
type PtrHashMultiMap[K any, V any] struct {
	*HashMultiMap[*K, *V]
}

// NewPtrHashMulti 创建指针哈希多值映射
func NewPtrHashMulti[K comparable, V any](options ...Option[*K]) *PtrHashMultiMap[K, V] {
	return NewPtrHashMultiWith[K, V](compare.HashOf[K], compare.EqualOf[K], options...)
}

// NewPtrHashMultiWith 使用键的哈希函数和相等函数创建指针哈希多值映射
func NewPtrHashMultiWith[K any, V any](h compare.Hasher[K], eq compare.Equal[K], options ...Option[*K]) *PtrHashMultiMap[K, V] {
	return &PtrHashMultiMap[K, V]{NewHashMultiWith[*K, *V](compare.DerefHash(h), compare.DerefEqual(eq), options...)}
}

// ClearAndDestroy 清空映射并释放所有键和值
func (m *PtrHashMultiMap[K, V]) ClearAndDestroy() error {
	return clearAndDestroy[K, V](m)
}

func clearAndDestroy[K any, V any](m Map[*K, *V]) error {
	keys, values := m.Keys(), m.Values()
	m.Clear()
	return errors.Join(collection.DestroyAll(keys), collection.DestroyAll(values))
}
