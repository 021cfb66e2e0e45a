// Package collectionservice 管理一组命名的字符串集合，供 collcli 使用
package collectionservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fyerfyer/collkit/collection"
)

var (
	// ErrCollectionNotFound 表示请求的集合不存在
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrCollectionExists 表示集合已存在
	ErrCollectionExists = errors.New("collection already exists")

	// ErrUnknownKind 表示不支持的集合类型
	ErrUnknownKind = errors.New("unknown collection kind")

	// ErrNotHashed 表示集合不是哈希集合，不支持桶操作
	ErrNotHashed = errors.New("collection is not hashed")

	// ErrNotSequence 表示集合不支持两端操作
	ErrNotSequence = errors.New("collection is not a deque")

	// ErrNoStore 表示服务没有配置快照存储
	ErrNoStore = errors.New("no snapshot store configured")
)

// Kind 定义集合类型
type Kind string

const (
	SortedSet      Kind = "sorted-set"
	SortedMultiSet Kind = "sorted-multiset"
	HashSet        Kind = "hash-set"
	HashMultiSet   Kind = "hash-multiset"
	Deque          Kind = "deque"
	Vector         Kind = "vector"
	SortedVector   Kind = "sorted-vector"
)

// Kinds 返回所有支持的集合类型
func Kinds() []Kind {
	return []Kind{SortedSet, SortedMultiSet, HashSet, HashMultiSet, Deque, Vector, SortedVector}
}

// ParseKind 解析集合类型名称，支持简写
func ParseKind(name string) (Kind, error) {
	switch name {
	case "sorted-set", "set", "ss":
		return SortedSet, nil
	case "sorted-multiset", "multiset", "sms":
		return SortedMultiSet, nil
	case "hash-set", "hs":
		return HashSet, nil
	case "hash-multiset", "hms":
		return HashMultiSet, nil
	case "deque", "dq":
		return Deque, nil
	case "vector", "vec":
		return Vector, nil
	case "sorted-vector", "svec":
		return SortedVector, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

// Hashed 判断该类型是否基于哈希表
func (k Kind) Hashed() bool {
	return k == HashSet || k == HashMultiSet
}

// Options 表示创建集合时的选项
type Options struct {
	// 集合类型
	Kind Kind
	// 哈希集合的初始桶数量，双端队列的初始缓冲区大小
	Capacity int
	// 哈希集合的自动扩容阈值，0表示不自动扩容
	MaxFillRatio float64
}

// Info 包含集合的基本信息
type Info struct {
	ID   string
	Name string
	Kind Kind

	Entries int
	// 仅哈希集合有效
	Capacity  int
	FillRatio float64

	CreatedAt time.Time
	Stats     Stats
}

// Stats 集合的操作统计
type Stats struct {
	Inserted uint64
	Rejected uint64
	Removed  uint64
	Resized  uint64
}

// Service 定义集合服务接口
type Service interface {
	// CreateCollection 创建一个新集合
	CreateCollection(name string, opts Options) (Info, error)

	// Get 获取指定名称的集合，调用方不能在服务之外并发修改
	Get(name string) (collection.Collection[string], error)

	// Info 获取集合信息
	Info(name string) (Info, error)

	// List 按名称顺序列出所有集合
	List() []Info

	// Insert 插入元素，返回被接受的数量
	Insert(name string, items ...string) (int, error)

	// Remove 删除第一个等价元素
	Remove(name, item string) (bool, error)

	// RemoveAll 删除所有等价元素
	RemoveAll(name, item string) (int, error)

	// Contains 检查元素是否存在
	Contains(name, item string) (bool, error)

	// Occurrences 返回等价元素的数量
	Occurrences(name, item string) (int, error)

	// Items 按迭代顺序返回所有元素
	Items(name string) ([]string, error)

	// Pop 从双端队列的一端取出元素
	Pop(name string, back bool) (string, error)

	// Resize 修改哈希集合的桶数量
	Resize(name string, buckets int) error

	// Clear 清空集合
	Clear(name string) error

	// Delete 删除集合
	Delete(name string) error

	// Save 将集合写入快照存储
	Save(ctx context.Context, name string) error

	// Load 从快照存储恢复集合，同名集合已存在时返回 ErrCollectionExists
	Load(ctx context.Context, name string) (Info, error)

	// SaveAll 并发保存所有集合
	SaveAll(ctx context.Context) error

	// LoadAll 并发加载存储中所有尚未打开的快照，返回加载的名称
	LoadAll(ctx context.Context) ([]string, error)

	// Snapshots 列出快照存储中的所有快照
	Snapshots(ctx context.Context) ([]string, error)

	// Close 清空所有集合
	Close() error
}
