package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlgebra_UniqueSets(t *testing.T) {
	tests := []struct {
		name string
		op   func(s Set[int], other Set[int])
		want []int
	}{
		{"union", func(s, o Set[int]) { s.Union(o) }, []int{1, 2, 3, 5, 7, 8, 9}},
		{"intersection", func(s, o Set[int]) { s.Intersection(o) }, []int{3, 5}},
		{"difference", func(s, o Set[int]) { s.Difference(o) }, []int{1, 7, 9}},
		{"symmetric difference", func(s, o Set[int]) { s.SymmetricDifference(o) }, []int{1, 2, 7, 8, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/sorted", func(t *testing.T) {
			s := NewSorted(1, 7, 3, 9, 5)
			tt.op(s, NewSorted(2, 5, 8, 3))
			assert.Equal(t, tt.want, s.ToSlice())
		})
		t.Run(tt.name+"/hash", func(t *testing.T) {
			s := New(1, 7, 3, 9, 5)
			tt.op(s, New(2, 5, 8, 3))
			assert.ElementsMatch(t, tt.want, s.ToSlice())
		})
	}
}

func TestAlgebra_MultiSetCounts(t *testing.T) {
	// a: x*3 y*1, b: x*1 y*2 z*1
	newA := func() *SortedMultiSet[string] { return NewSortedMulti("x", "x", "x", "y") }
	newB := func() *HashMultiSet[string] { return NewMulti("x", "y", "y", "z") }

	s := newA()
	s.Union(newB())
	assert.Equal(t, []string{"x", "x", "x", "y", "y", "z"}, s.ToSlice())

	s = newA()
	s.Intersection(newB())
	assert.Equal(t, []string{"x", "y"}, s.ToSlice())

	s = newA()
	s.Difference(newB())
	assert.Equal(t, []string{"x", "x"}, s.ToSlice())

	s = newA()
	s.SymmetricDifference(newB())
	assert.Equal(t, []string{"x", "x", "y", "z"}, s.ToSlice())
}

func TestAlgebra_WithSelf(t *testing.T) {
	s := NewSorted(1, 2, 3)
	s.Union(s)
	assert.Equal(t, 3, s.Entries())

	s.Intersection(s)
	assert.Equal(t, 3, s.Entries())

	s.SymmetricDifference(s)
	assert.True(t, s.IsEmpty())

	m := NewSortedMulti(1, 1, 2)
	m.Difference(m)
	assert.True(t, m.IsEmpty())
}

func TestAlgebra_Relations(t *testing.T) {
	small := NewSorted(1, 2)
	big := New(1, 2, 3)

	assert.True(t, small.IsSubsetOf(big))
	assert.True(t, small.IsProperSubsetOf(big))
	assert.False(t, big.IsSubsetOf(small))
	assert.False(t, small.IsEquivalent(big))

	same := New(2, 1)
	assert.True(t, small.IsEquivalent(same))
	assert.True(t, small.IsSubsetOf(same))
	assert.False(t, small.IsProperSubsetOf(same))

	multi := NewSortedMulti(1, 1, 2)
	assert.False(t, multi.IsSubsetOf(NewSortedMulti(1, 2, 3)))
	assert.True(t, multi.IsSubsetOf(NewSortedMulti(1, 1, 2, 3)))
}
