package set

import (
	"github.com/fyerfyer/collkit/collection"
)

// 以下函数只依赖 collection.Collection 接口，两个操作数的比较方式应当兼容

func union[T any](s, other collection.Collection[T]) {
	for _, item := range other.ToSlice() {
		// 逐个插入，直到当前次数达到 other 中的次数
		if s.OccurrencesOf(item) < other.OccurrencesOf(item) {
			s.Insert(item)
		}
	}
}

func intersection[T any](s, other collection.Collection[T]) {
	for _, item := range s.ToSlice() {
		if s.OccurrencesOf(item) > other.OccurrencesOf(item) {
			s.Remove(item)
		}
	}
}

func difference[T any](s, other collection.Collection[T]) {
	for _, item := range other.ToSlice() {
		s.Remove(item)
	}
}

func symmetricDifference[T any](s, other collection.Collection[T]) {
	// other 中的每次出现先抵消 s 中的一次出现，抵消不了的最后再加入
	var toAdd []T
	for _, item := range other.ToSlice() {
		if !s.Remove(item) {
			toAdd = append(toAdd, item)
		}
	}
	for _, item := range toAdd {
		s.Insert(item)
	}
}

func isSubset[T any](s, other collection.Collection[T]) bool {
	if s.Entries() > other.Entries() {
		return false
	}
	subset := true
	s.ForEach(func(item T) bool {
		if s.OccurrencesOf(item) > other.OccurrencesOf(item) {
			subset = false
		}
		return subset
	})
	return subset
}

func isProperSubset[T any](s, other collection.Collection[T]) bool {
	return s.Entries() < other.Entries() && isSubset(s, other)
}

func isEquivalent[T any](s, other collection.Collection[T]) bool {
	return s.Entries() == other.Entries() && isSubset(s, other)
}
