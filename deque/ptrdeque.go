package deque

import (
	"github.com/fyerfyer/collkit/collection"
	"github.com/fyerfyer/collkit/compare"
)

// PtrDeque 存储 *T 的双端队列，查找和删除按指针指向的值比较
type PtrDeque[T any] struct {
	*Deque[*T]
}

// NewPtr 创建指针双端队列，使用 == 比较指向的值
func NewPtr[T comparable](options ...Option[*T]) *PtrDeque[T] {
	return NewPtrWith[T](compare.EqualOf[T], options...)
}

// NewPtrWith 使用指向值的相等函数创建指针双端队列
func NewPtrWith[T any](eq compare.Equal[T], options ...Option[*T]) *PtrDeque[T] {
	return &PtrDeque[T]{NewWith(compare.DerefEqual(eq), options...)}
}

// ClearAndDestroy 清空队列并释放所有指向的对象
func (d *PtrDeque[T]) ClearAndDestroy() error {
	items := d.ToSlice()
	d.Clear()
	return collection.DestroyAll(items)
}
