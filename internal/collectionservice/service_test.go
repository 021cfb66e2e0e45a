package collectionservice

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fyerfyer/collkit/collection"
	"github.com/fyerfyer/collkit/internal/logging"
	"github.com/fyerfyer/collkit/persist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *InMemoryService {
	t.Helper()
	store, err := persist.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewInMemoryService(
		WithStore(store),
		WithCodec(persist.CodecSnappy),
		WithLogger(logging.NewNop()),
	)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"sorted-set", SortedSet},
		{"set", SortedSet},
		{"sms", SortedMultiSet},
		{"hash-set", HashSet},
		{"hms", HashMultiSet},
		{"dq", Deque},
		{"vec", Vector},
		{"sorted-vector", SortedVector},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseKind("bag")
	assert.ErrorIs(t, err, ErrUnknownKind)

	for _, k := range Kinds() {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
}

func TestService_CreateAndList(t *testing.T) {
	svc := newTestService(t)

	info, err := svc.CreateCollection("words", Options{Kind: HashSet, Capacity: 8})
	require.NoError(t, err)
	assert.NotEmpty(t, info.ID)
	assert.Equal(t, 8, info.Capacity)
	assert.Equal(t, 0, info.Entries)

	_, err = svc.CreateCollection("words", Options{Kind: SortedSet})
	assert.ErrorIs(t, err, ErrCollectionExists)

	_, err = svc.CreateCollection("bad", Options{Kind: "bag"})
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = svc.CreateCollection("", Options{Kind: Deque})
	assert.Error(t, err)

	_, err = svc.CreateCollection("alpha", Options{Kind: Deque})
	require.NoError(t, err)

	list := svc.List()
	require.Len(t, list, 2)
	assert.Equal(t, "alpha", list[0].Name)
	assert.Equal(t, "words", list[1].Name)
	assert.NotEqual(t, list[0].ID, list[1].ID)
}

func TestService_UniqueAndMulti(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateCollection("unique", Options{Kind: SortedSet})
	require.NoError(t, err)
	_, err = svc.CreateCollection("multi", Options{Kind: SortedMultiSet})
	require.NoError(t, err)

	n, err := svc.Insert("unique", "b", "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = svc.Insert("multi", "b", "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	items, err := svc.Items("unique")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, items)

	items, err = svc.Items("multi")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "b", "c"}, items)

	count, err := svc.Occurrences("multi", "b")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	removed, err := svc.RemoveAll("multi", "b")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	ok, err := svc.Contains("multi", "b")
	require.NoError(t, err)
	assert.False(t, ok)

	info, err := svc.Info("unique")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), info.Stats.Inserted)
	assert.Equal(t, uint64(1), info.Stats.Rejected)

	info, err = svc.Info("multi")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), info.Stats.Removed)
}

func TestService_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Insert("missing", "x")
	assert.ErrorIs(t, err, ErrCollectionNotFound)
	_, err = svc.Info("missing")
	assert.ErrorIs(t, err, ErrCollectionNotFound)
	_, err = svc.Get("missing")
	assert.ErrorIs(t, err, ErrCollectionNotFound)
	assert.ErrorIs(t, svc.Delete("missing"), ErrCollectionNotFound)
	assert.ErrorIs(t, svc.Clear("missing"), ErrCollectionNotFound)
}

func TestService_Resize(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateCollection("h", Options{Kind: HashMultiSet, Capacity: 2})
	require.NoError(t, err)
	_, err = svc.Insert("h", "a", "b", "c", "d")
	require.NoError(t, err)

	info, err := svc.Info("h")
	require.NoError(t, err)
	assert.InDelta(t, 2.0, info.FillRatio, 1e-9)

	require.NoError(t, svc.Resize("h", 8))
	info, err = svc.Info("h")
	require.NoError(t, err)
	assert.Equal(t, 8, info.Capacity)
	assert.InDelta(t, 0.5, info.FillRatio, 1e-9)
	assert.Equal(t, 4, info.Entries)
	assert.Equal(t, uint64(1), info.Stats.Resized)

	assert.ErrorIs(t, svc.Resize("h", 0), collection.ErrInvalidCapacity)

	_, err = svc.CreateCollection("s", Options{Kind: SortedSet})
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Resize("s", 8), ErrNotHashed)
}

func TestService_Pop(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateCollection("dq", Options{Kind: Deque})
	require.NoError(t, err)
	_, err = svc.Insert("dq", "a", "b", "c")
	require.NoError(t, err)

	item, err := svc.Pop("dq", false)
	require.NoError(t, err)
	assert.Equal(t, "a", item)

	item, err = svc.Pop("dq", true)
	require.NoError(t, err)
	assert.Equal(t, "c", item)

	_, err = svc.Pop("dq", true)
	require.NoError(t, err)

	_, err = svc.Pop("dq", false)
	assert.ErrorIs(t, err, collection.ErrIndexOutOfRange)
	assert.ErrorIs(t, err, collection.ErrEmptyCollection)

	_, err = svc.CreateCollection("v", Options{Kind: Vector})
	require.NoError(t, err)
	_, err = svc.Pop("v", false)
	assert.ErrorIs(t, err, ErrNotSequence)
}

func TestService_ClearAndDelete(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateCollection("v", Options{Kind: SortedVector})
	require.NoError(t, err)
	_, err = svc.Insert("v", "z", "a", "m")
	require.NoError(t, err)

	items, err := svc.Items("v")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "m", "z"}, items)

	require.NoError(t, svc.Clear("v"))
	info, err := svc.Info("v")
	require.NoError(t, err)
	assert.Equal(t, 0, info.Entries)
	assert.Equal(t, uint64(3), info.Stats.Removed)

	require.NoError(t, svc.Delete("v"))
	assert.Empty(t, svc.List())
}

func TestService_SaveAndLoad(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateCollection("tags", Options{Kind: HashMultiSet})
	require.NoError(t, err)
	_, err = svc.Insert("tags", "go", "go", "redis")
	require.NoError(t, err)

	require.NoError(t, svc.Save(ctx, "tags"))

	names, err := svc.Snapshots(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"tags"}, names)

	// 同名集合存在时不能加载
	_, err = svc.Load(ctx, "tags")
	assert.ErrorIs(t, err, ErrCollectionExists)

	require.NoError(t, svc.Delete("tags"))
	info, err := svc.Load(ctx, "tags")
	require.NoError(t, err)
	assert.Equal(t, HashMultiSet, info.Kind)
	assert.Equal(t, 3, info.Entries)

	count, err := svc.Occurrences("tags", "go")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = svc.Load(ctx, "absent")
	assert.ErrorIs(t, err, persist.ErrNotFound)
}

func TestService_LoadRestoresHashOptions(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateCollection("fixed", Options{Kind: HashSet, Capacity: 7})
	require.NoError(t, err)
	_, err = svc.Insert("fixed", "a", "b", "c")
	require.NoError(t, err)

	_, err = svc.CreateCollection("growing", Options{Kind: HashMultiSet, Capacity: 4, MaxFillRatio: 1.5})
	require.NoError(t, err)
	_, err = svc.Insert("growing", "x", "y", "z")
	require.NoError(t, err)

	for _, name := range []string{"fixed", "growing"} {
		require.NoError(t, svc.Save(ctx, name))
		require.NoError(t, svc.Delete(name))
	}

	info, err := svc.Load(ctx, "fixed")
	require.NoError(t, err)
	assert.Equal(t, 7, info.Capacity)
	assert.Equal(t, 3, info.Entries)

	info, err = svc.Load(ctx, "growing")
	require.NoError(t, err)
	assert.Equal(t, 4, info.Capacity)

	// 恢复的扩容阈值继续生效
	for i := 0; i < 20; i++ {
		_, err = svc.Insert("growing", fmt.Sprintf("item-%d", i))
		require.NoError(t, err)
	}
	info, err = svc.Info("growing")
	require.NoError(t, err)
	assert.Greater(t, info.Capacity, 4)
	assert.LessOrEqual(t, info.FillRatio, 1.5)
}

func TestService_NoStore(t *testing.T) {
	svc := NewInMemoryService()
	ctx := context.Background()

	_, err := svc.CreateCollection("x", Options{Kind: Vector})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Save(ctx, "x"), ErrNoStore)
	_, err = svc.Load(ctx, "x")
	assert.ErrorIs(t, err, ErrNoStore)
	_, err = svc.Snapshots(ctx)
	assert.ErrorIs(t, err, ErrNoStore)
	assert.NoError(t, svc.Close())
	assert.Empty(t, svc.List())
}

type closingStore struct {
	persist.Store
	closed bool
	err    error
}

func (s *closingStore) Close() error {
	s.closed = true
	return s.err
}

func TestService_CloseClosesStore(t *testing.T) {
	store := &closingStore{err: errors.New("boom")}
	svc := NewInMemoryService(WithStore(store))

	assert.EqualError(t, svc.Close(), "boom")
	assert.True(t, store.closed)
}

func TestFormat(t *testing.T) {
	info := Info{
		ID:        "id-1",
		Name:      "words",
		Kind:      HashSet,
		Entries:   3,
		Capacity:  4,
		FillRatio: 0.75,
		CreatedAt: time.Now().Add(-2 * time.Hour),
		Stats:     Stats{Inserted: 4, Rejected: 1},
	}

	out := FormatInfo(info)
	assert.Contains(t, out, "Collection: words\n")
	assert.Contains(t, out, "Buckets: 4 (fill ratio 0.75)\n")
	assert.Contains(t, out, "2 hours ago")

	stats := FormatStats(info)
	assert.Contains(t, stats, "Operations: 4 inserted, 0 removed\n")
	assert.Contains(t, stats, "Rejected: 1\n")
	assert.NotContains(t, stats, "Resized")

	info.Kind = Deque
	assert.NotContains(t, FormatInfo(info), "Buckets")
}

func TestItemsHelpers(t *testing.T) {
	assert.Nil(t, ParseItems(""))
	assert.Equal(t, []string{"a", "b", "c"}, ParseItems("a, b,,c "))
	assert.Equal(t, "a,b", FormatItems([]string{"a", "b"}))
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "5 minutes ago", formatTimeAgo(now.Add(-5*time.Minute-time.Second)))
	assert.Equal(t, "3 days ago", formatTimeAgo(now.Add(-73*time.Hour)))
}

func TestService_SaveAllAndLoadAll(t *testing.T) {
	store, err := persist.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	src := NewInMemoryService(WithStore(store), WithParallelism(2))
	for i, kind := range Kinds() {
		name := string(kind)
		_, err := src.CreateCollection(name, Options{Kind: kind})
		require.NoError(t, err)
		for j := 0; j <= i; j++ {
			_, err := src.Insert(name, "item")
			require.NoError(t, err)
		}
	}
	require.NoError(t, src.SaveAll(ctx))

	dst := NewInMemoryService(WithStore(store))
	_, err = dst.CreateCollection(string(Deque), Options{Kind: Vector})
	require.NoError(t, err)

	loaded, err := dst.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, len(Kinds())-1)
	assert.NotContains(t, loaded, string(Deque))

	// 已打开的集合不会被快照覆盖
	info, err := dst.Info(string(Deque))
	require.NoError(t, err)
	assert.Equal(t, Vector, info.Kind)

	info, err = dst.Info(string(SortedMultiSet))
	require.NoError(t, err)
	assert.Equal(t, 2, info.Entries)

	info, err = dst.Info(string(SortedVector))
	require.NoError(t, err)
	assert.Equal(t, 7, info.Entries)
}

func TestService_SaveAllEmpty(t *testing.T) {
	svc := newTestService(t)
	assert.NoError(t, svc.SaveAll(context.Background()))

	loaded, err := svc.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)

	assert.ErrorIs(t, NewInMemoryService().SaveAll(context.Background()), ErrNoStore)
}
