package deque

import "github.com/fyerfyer/collkit/compare"

// DefaultCapacity 默认初始缓冲区大小，缓冲区满时翻倍扩容
const DefaultCapacity = 16

// Options 定义双端队列的配置选项
type Options[T any] struct {
	// 初始缓冲区大小
	Capacity int

	// 查找和删除使用的相等函数
	Equal compare.Equal[T]
}

// Option 函数类型用于设置双端队列选项
type Option[T any] func(*Options[T])

// DefaultOptions 返回默认的双端队列选项
func DefaultOptions[T comparable]() *Options[T] {
	return &Options[T]{
		Capacity: DefaultCapacity,
		Equal:    compare.EqualOf[T],
	}
}

// WithCapacity 设置初始缓冲区大小
func WithCapacity[T any](capacity int) Option[T] {
	return func(o *Options[T]) {
		if capacity <= 0 {
			capacity = DefaultCapacity
		}
		o.Capacity = capacity
	}
}

// WithEqual 设置相等函数
func WithEqual[T any](eq compare.Equal[T]) Option[T] {
	return func(o *Options[T]) {
		o.Equal = eq
	}
}
