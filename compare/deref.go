package compare

// 以下适配器对指针所指向的值进行比较和哈希，而不是指针地址本身
// nil 指针排在最前，哈希为0，且只与 nil 相等

// Deref 将元素比较函数转换为指针比较函数
func Deref[T any](c Comparator[T]) Comparator[*T] {
	return func(a, b *T) int {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		case b == nil:
			return 1
		}
		return c(*a, *b)
	}
}

// DerefEqual 将元素相等函数转换为指针相等函数
func DerefEqual[T any](eq Equal[T]) Equal[*T] {
	return func(a, b *T) bool {
		if a == nil || b == nil {
			return a == b
		}
		return eq(*a, *b)
	}
}

// DerefHash 将元素哈希函数转换为指针哈希函数
func DerefHash[T any](h Hasher[T]) Hasher[*T] {
	return func(p *T) uint64 {
		if p == nil {
			return 0
		}
		return h(*p)
	}
}
