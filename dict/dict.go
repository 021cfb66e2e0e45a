// Package dict 提供键值映射：有序映射、哈希映射以及对应的多值和指针版本
//
// 所有映射都不做同步，多个 goroutine 同时访问时需要调用方加锁
package dict

// Map 所有映射类型的公共接口
type Map[K any, V any] interface {
	// Entries 返回条目数量
	Entries() int

	// IsEmpty 检查映射是否为空
	IsEmpty() bool

	// Insert 插入键值对
	// 唯一映射中已存在等价键时不修改并返回false，多值映射总是插入
	Insert(key K, value V) bool

	// Put 设置键对应的值，键不存在时插入
	// 已存在时保留映射中原有的键，只替换值，并返回被替换的值
	// 多值映射中替换第一个等价条目
	Put(key K, value V) (V, bool)

	// Contains 检查是否存在等价键
	Contains(key K) bool

	// Find 返回第一个等价键对应的值
	Find(key K) (V, bool)

	// FindKeyAndValue 返回映射中存储的键及其值
	FindKeyAndValue(key K) (K, V, bool)

	// FindAll 返回所有等价键对应的值，按插入顺序
	FindAll(key K) []V

	// OccurrencesOf 返回等价键的条目数量
	OccurrencesOf(key K) int

	// Remove 删除第一个等价条目
	Remove(key K) bool

	// RemoveAll 删除所有等价条目，返回删除数量
	RemoveAll(key K) int

	// Clear 删除所有条目
	Clear()

	// ForEach 遍历所有条目，f 返回false时停止
	ForEach(f func(key K, value V) bool)

	// Keys 返回所有键
	Keys() []K

	// Values 返回所有值，与 Keys 顺序一致
	Values() []V

	// Iterator 返回条目迭代器
	Iterator() Iterator[K, V]
}

// Iterator 映射迭代器，迭代期间修改映射的结果未定义
type Iterator[K any, V any] interface {
	Next() bool
	Key() K
	Value() V
	Reset()
}

// Hashed 哈希映射额外提供的桶管理接口
type Hashed interface {
	Capacity() int
	FillRatio() float64
	Resize(n int) error
}
