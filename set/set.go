package set

import (
	"github.com/fyerfyer/collkit/collection"
)

// Set 集合接口，唯一集合与多重集合共用
// 集合运算直接修改当前集合，按元素出现次数计算：
// 并集取较大次数，交集取较小次数，差集为次数之差（最小为0），对称差集为次数之差的绝对值
// 对唯一集合而言次数只有0和1，与普通集合运算一致
type Set[T any] interface {
	collection.Collection[T]

	// 集合运算
	Union(other collection.Collection[T])               // 并集
	Intersection(other collection.Collection[T])        // 交集
	Difference(other collection.Collection[T])          // 差集
	SymmetricDifference(other collection.Collection[T]) // 对称差集

	// 集合关系
	IsSubsetOf(other collection.Collection[T]) bool       // 判断是否为子集
	IsProperSubsetOf(other collection.Collection[T]) bool // 判断是否为真子集
	IsEquivalent(other collection.Collection[T]) bool     // 判断元素及次数是否完全相同

	// 迭代
	Iterator() collection.Iterator[T]
}

// Hashed 哈希集合额外提供的操作
type Hashed interface {
	Capacity() int      // 桶数量
	FillRatio() float64 // 装填因子
	Resize(n int) error // 重新哈希到 n 个桶
}
