package compare

import (
	"cmp"
)

// Comparator 比较函数，a<b 返回负数，a==b 返回0，a>b 返回正数
type Comparator[T any] func(a, b T) int

// Equal 相等判断函数
type Equal[T any] func(a, b T) bool

// Predicate 单参数谓词
type Predicate[T any] func(item T) bool

// Ordered 内置有序类型的默认比较函数，等价于 std::less
func Ordered[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// EqualOf 可比较类型的默认相等函数
func EqualOf[T comparable](a, b T) bool {
	return a == b
}

// Reverse 返回逆序比较函数
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// FromLess 将 less 函数转换为比较函数
func FromLess[T any](less func(a, b T) bool) Comparator[T] {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// EqualFromComparator 由比较函数派生等价关系
func EqualFromComparator[T any](c Comparator[T]) Equal[T] {
	return func(a, b T) bool {
		return c(a, b) == 0
	}
}

// EqualTo 绑定第二个参数，返回 "x 等于 value" 的谓词
func EqualTo[T any](eq Equal[T], value T) Predicate[T] {
	return func(item T) bool {
		return eq(item, value)
	}
}

// Bind 绑定比较函数的第二个参数，返回与 value 等价的谓词
func Bind[T any](c Comparator[T], value T) Predicate[T] {
	return func(item T) bool {
		return c(item, value) == 0
	}
}

// Not 取反谓词
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(item T) bool {
		return !p(item)
	}
}
