package set

import (
	"github.com/fyerfyer/collkit/compare"
	"github.com/fyerfyer/collkit/internal/hashtable"
)

// Options 哈希集合的配置选项
type Options[T any] struct {
	// 哈希函数
	Hasher compare.Hasher[T]

	// 相等函数，相等的元素必须有相同的哈希值
	Equal compare.Equal[T]

	// 初始桶数量
	Capacity int

	// 自动扩容阈值，0表示不自动扩容
	MaxFillRatio float64
}

// Option 函数类型用于设置哈希集合选项
type Option[T any] func(*Options[T])

// DefaultOptions 返回默认的哈希集合选项
func DefaultOptions[T comparable]() *Options[T] {
	return &Options[T]{
		Hasher:       compare.HashOf[T],
		Equal:        compare.EqualOf[T],
		Capacity:     hashtable.DefaultCapacity,
		MaxFillRatio: 0, // 默认不自动扩容，由调用方 Resize
	}
}

// WithCapacity 设置初始桶数量
func WithCapacity[T any](capacity int) Option[T] {
	return func(o *Options[T]) {
		if capacity <= 0 {
			capacity = hashtable.DefaultCapacity
		}
		o.Capacity = capacity
	}
}

// WithMaxFillRatio 设置自动扩容阈值
func WithMaxFillRatio[T any](ratio float64) Option[T] {
	return func(o *Options[T]) {
		if ratio < 0 {
			ratio = 0
		}
		o.MaxFillRatio = ratio
	}
}

// WithHasher 设置哈希函数
func WithHasher[T any](h compare.Hasher[T]) Option[T] {
	return func(o *Options[T]) {
		o.Hasher = h
	}
}

// WithEqual 设置相等函数
func WithEqual[T any](eq compare.Equal[T]) Option[T] {
	return func(o *Options[T]) {
		o.Equal = eq
	}
}

func (o *Options[T]) tableConfig(unique bool) hashtable.Config[T] {
	return hashtable.Config[T]{
		Hash:         o.Hasher,
		Equal:        o.Equal,
		Capacity:     o.Capacity,
		Unique:       unique,
		MaxFillRatio: o.MaxFillRatio,
	}
}
