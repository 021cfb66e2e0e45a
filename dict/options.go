package dict

import (
	"github.com/fyerfyer/collkit/compare"
	"github.com/fyerfyer/collkit/internal/hashtable"
)

// Options 哈希映射的配置选项，作用于键
type Options[K any] struct {
	Hasher compare.Hasher[K]
	Equal  compare.Equal[K]

	// 初始桶数量
	Capacity int

	// 自动扩容阈值，0表示不自动扩容
	MaxFillRatio float64
}

// Option 函数类型用于设置哈希映射选项
type Option[K any] func(*Options[K])

// DefaultOptions 返回默认的哈希映射选项
func DefaultOptions[K comparable]() *Options[K] {
	return &Options[K]{
		Hasher:   compare.HashOf[K],
		Equal:    compare.EqualOf[K],
		Capacity: hashtable.DefaultCapacity,
	}
}

// WithCapacity 设置初始桶数量
func WithCapacity[K any](capacity int) Option[K] {
	return func(o *Options[K]) {
		if capacity <= 0 {
			capacity = hashtable.DefaultCapacity
		}
		o.Capacity = capacity
	}
}

// WithMaxFillRatio 设置自动扩容阈值
func WithMaxFillRatio[K any](ratio float64) Option[K] {
	return func(o *Options[K]) {
		if ratio < 0 {
			ratio = 0
		}
		o.MaxFillRatio = ratio
	}
}

func (o *Options[K]) tableConfig(unique bool) hashtable.Config[K] {
	return hashtable.Config[K]{
		Hash:         o.Hasher,
		Equal:        o.Equal,
		Capacity:     o.Capacity,
		Unique:       unique,
		MaxFillRatio: o.MaxFillRatio,
	}
}

func newOptions[K any](h compare.Hasher[K], eq compare.Equal[K], options []Option[K]) *Options[K] {
	opts := &Options[K]{
		Hasher:   h,
		Equal:    eq,
		Capacity: hashtable.DefaultCapacity,
	}
	for _, option := range options {
		option(opts)
	}
	return opts
}
