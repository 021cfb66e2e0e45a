package deque

import (
	"errors"
	"testing"

	"github.com/fyerfyer/collkit/collection"
	"github.com/fyerfyer/collkit/compare"
	"github.com/google/go-cmp/cmp"
)

func TestDeque_BasicOperations(t *testing.T) {
	d := New[int](WithCapacity[int](4))

	// 两端插入
	d.Append(2)
	d.Append(3)
	d.Prepend(1)
	d.Prepend(0)

	if d.Entries() != 4 {
		t.Fatalf("Expected 4 entries, got %d", d.Entries())
	}

	if v, err := d.First(); err != nil || v != 0 {
		t.Fatalf("First() expected 0, got %v (err: %v)", v, err)
	}
	if v, err := d.Last(); err != nil || v != 3 {
		t.Fatalf("Last() expected 3, got %v (err: %v)", v, err)
	}

	// 缓冲区已满，继续插入触发扩容
	d.Prepend(-1)
	d.Append(4)
	if diff := cmp.Diff([]int{-1, 0, 1, 2, 3, 4}, d.ToSlice()); diff != "" {
		t.Fatalf("ToSlice mismatch (-want +got):\n%s", diff)
	}

	for want := -1; want <= 4; want++ {
		v, err := d.RemoveFirst()
		if err != nil {
			t.Fatalf("RemoveFirst() failed: %v", err)
		}
		if v != want {
			t.Fatalf("Expected %d, got %d", want, v)
		}
	}

	if !d.IsEmpty() {
		t.Fatal("Deque should be empty")
	}
}

func TestDeque_EmptyBoundsErrors(t *testing.T) {
	d := New[string]()

	checks := map[string]func() error{
		"First":       func() error { _, err := d.First(); return err },
		"Last":        func() error { _, err := d.Last(); return err },
		"RemoveFirst": func() error { _, err := d.RemoveFirst(); return err },
		"RemoveLast":  func() error { _, err := d.RemoveLast(); return err },
		"At":          func() error { _, err := d.At(0); return err },
		"Set":         func() error { return d.Set(0, "x") },
		"InsertAt":    func() error { return d.InsertAt(1, "x") },
	}

	for name, check := range checks {
		err := check()
		if !errors.Is(err, collection.ErrIndexOutOfRange) {
			t.Errorf("%s on empty deque: expected ErrIndexOutOfRange, got %v", name, err)
		}
		var bounds *collection.BoundsError
		if !errors.As(err, &bounds) || bounds.Size != 0 {
			t.Errorf("%s on empty deque: expected BoundsError with size 0, got %v", name, err)
		}
	}
}

func TestDeque_BoundsErrorCarriesIndex(t *testing.T) {
	d := From(1, 2, 3)

	_, err := d.At(7)
	var bounds *collection.BoundsError
	if !errors.As(err, &bounds) {
		t.Fatalf("Expected BoundsError, got %v", err)
	}
	if bounds.Index != 7 || bounds.Size != 3 {
		t.Fatalf("Expected index 7 size 3, got index %d size %d", bounds.Index, bounds.Size)
	}

	if _, err := d.RemoveAt(-1); !errors.Is(err, collection.ErrIndexOutOfRange) {
		t.Fatalf("RemoveAt(-1) expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestDeque_InsertAtAndRemoveAt(t *testing.T) {
	d := New[int](WithCapacity[int](2))
	for _, v := range []int{10, 20, 30, 40} {
		d.Append(v)
	}
	// 让 head 不在缓冲区开头
	d.Prepend(0)

	steps := []struct {
		index int
		value int
		want  []int
	}{
		{1, 5, []int{0, 5, 10, 20, 30, 40}},
		{5, 35, []int{0, 5, 10, 20, 30, 35, 40}},
		{7, 50, []int{0, 5, 10, 20, 30, 35, 40, 50}},
		{0, -5, []int{-5, 0, 5, 10, 20, 30, 35, 40, 50}},
	}
	for _, step := range steps {
		if err := d.InsertAt(step.index, step.value); err != nil {
			t.Fatalf("InsertAt(%d) failed: %v", step.index, err)
		}
		if diff := cmp.Diff(step.want, d.ToSlice()); diff != "" {
			t.Fatalf("after InsertAt(%d, %d) (-want +got):\n%s", step.index, step.value, diff)
		}
	}

	// 前半部分和后半部分各删除一个
	if v, _ := d.RemoveAt(2); v != 5 {
		t.Fatalf("RemoveAt(2) expected 5, got %d", v)
	}
	if v, _ := d.RemoveAt(6); v != 40 {
		t.Fatalf("RemoveAt(6) expected 40, got %d", v)
	}
	if diff := cmp.Diff([]int{-5, 0, 10, 20, 30, 35, 50}, d.ToSlice()); diff != "" {
		t.Fatalf("after RemoveAt (-want +got):\n%s", diff)
	}

	if v, _ := d.RemoveLast(); v != 50 {
		t.Fatalf("RemoveLast expected 50, got %d", v)
	}
}

func TestDeque_SearchAndRemove(t *testing.T) {
	d := From("a", "b", "a", "c", "a")

	if d.Index("c") != 3 {
		t.Fatalf("Index(c) expected 3, got %d", d.Index("c"))
	}
	if d.Index("z") != collection.NPOS {
		t.Fatalf("Index(z) expected NPOS, got %d", d.Index("z"))
	}
	if n := d.OccurrencesOf("a"); n != 3 {
		t.Fatalf("OccurrencesOf(a) expected 3, got %d", n)
	}

	if !d.Remove("a") {
		t.Fatal("Remove(a) should succeed")
	}
	if diff := cmp.Diff([]string{"b", "a", "c", "a"}, d.ToSlice()); diff != "" {
		t.Fatalf("after Remove (-want +got):\n%s", diff)
	}

	if n := d.RemoveAll("a"); n != 2 {
		t.Fatalf("RemoveAll(a) expected 2, got %d", n)
	}
	if diff := cmp.Diff([]string{"b", "c"}, d.ToSlice()); diff != "" {
		t.Fatalf("after RemoveAll (-want +got):\n%s", diff)
	}

	if err := d.Set(1, "d"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if v, _ := d.At(1); v != "d" {
		t.Fatalf("At(1) expected d, got %s", v)
	}
}

func TestDeque_SortAndIterate(t *testing.T) {
	d := New[int]()
	for _, v := range []int{5, 3, 9, 1} {
		d.Prepend(v)
	}
	d.Sort(compare.Ordered[int])

	var got []int
	it := d.Iterator()
	for it.Next() {
		got = append(got, it.Value())
	}
	if diff := cmp.Diff([]int{1, 3, 5, 9}, got); diff != "" {
		t.Fatalf("iteration after Sort (-want +got):\n%s", diff)
	}

	it.Reset()
	if !it.Next() || it.Value() != 1 {
		t.Fatal("Reset should restart iteration")
	}

	d.Sort(compare.Reverse(compare.Ordered[int]))
	count := 0
	d.ForEach(func(v int) bool {
		count++
		return v != 5
	})
	if count != 2 {
		t.Fatalf("ForEach should stop after 9 and 5, visited %d", count)
	}

	d.Clear()
	if !d.IsEmpty() || d.Contains(9) {
		t.Fatal("Clear should remove every element")
	}
}

type buffer struct {
	name      string
	destroyed int
}

func (b *buffer) Destroy() {
	b.destroyed++
}

func TestPtrDeque_ComparesPointees(t *testing.T) {
	byName := func(a, b buffer) bool { return a.name == b.name }
	d := NewPtrWith(byName)

	first := &buffer{name: "x"}
	d.Append(first)
	d.Append(&buffer{name: "y"})
	// 同一个指针出现两次
	d.Append(first)

	if n := d.OccurrencesOf(&buffer{name: "x"}); n != 2 {
		t.Fatalf("OccurrencesOf expected 2, got %d", n)
	}
	found, ok := d.Find(&buffer{name: "x"})
	if !ok || found != first {
		t.Fatal("Find should return the stored pointer")
	}
	if d.Contains(nil) {
		t.Fatal("nil should only match nil")
	}

	if err := d.ClearAndDestroy(); err != nil {
		t.Fatalf("ClearAndDestroy failed: %v", err)
	}
	if first.destroyed != 1 {
		t.Fatalf("aliased pointer should be destroyed once, got %d", first.destroyed)
	}
	if !d.IsEmpty() {
		t.Fatal("PtrDeque should be empty after ClearAndDestroy")
	}
}

func TestPtrDeque_Default(t *testing.T) {
	d := NewPtr[int]()
	one, two := 1, 2
	d.Append(&one)
	d.Prepend(&two)

	v := 1
	if d.Index(&v) != 1 {
		t.Fatalf("Index expected 1, got %d", d.Index(&v))
	}

	var _ collection.Collection[*int] = d
	var _ collection.Collection[int] = New[int]()
}
