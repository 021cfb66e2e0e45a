package persist

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fyerfyer/collkit/set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X int    `json:"x"`
	Y int    `json:"y"`
	L string `json:"label"`
}

func TestSnapshot_RoundTrip(t *testing.T) {
	items := []point{{1, 2, "a"}, {3, 4, "b"}, {5, 6, strings.Repeat("c", 200)}}

	for _, codec := range []Codec{CodecNone, CodecZstd, CodecSnappy} {
		t.Run(string(codec), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Save(&buf, "points", "vector", items, codec))

			header, got, err := Restore[point](&buf)
			require.NoError(t, err)
			assert.Equal(t, Magic, header.Magic)
			assert.Equal(t, "points", header.Name)
			assert.Equal(t, "vector", header.Kind)
			assert.Equal(t, 3, header.Count)
			assert.Equal(t, codec, header.Codec)
			assert.Equal(t, items, got)
		})
	}
}

func TestSnapshot_Empty(t *testing.T) {
	data, err := Marshal[int]("empty", "deque", nil, CodecZstd)
	require.NoError(t, err)

	header, items, err := Unmarshal[int](data)
	require.NoError(t, err)
	assert.Equal(t, 0, header.Count)
	assert.Empty(t, items)
}

func TestSnapshot_Meta(t *testing.T) {
	data, err := Marshal("words", "hash-set", []string{"a"}, CodecSnappy,
		WithMeta("capacity", "7"), WithMeta("max-fill-ratio", "1.5"))
	require.NoError(t, err)

	header, _, err := Unmarshal[string](data)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"capacity": "7", "max-fill-ratio": "1.5"}, header.Meta)

	data, err = Marshal("words", "vector", []string{"a"}, CodecNone)
	require.NoError(t, err)
	header, _, err = Unmarshal[string](data)
	require.NoError(t, err)
	assert.Nil(t, header.Meta)
}

func TestSnapshot_ChecksumMismatch(t *testing.T) {
	data, err := Marshal("nums", "vector", []int{1, 2, 3}, CodecNone)
	require.NoError(t, err)

	// 修改负载的最后一个字节
	corrupt := bytes.Clone(data)
	corrupt[len(corrupt)-2] ^= 0xff

	_, _, err = Unmarshal[int](corrupt)
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestSnapshot_InvalidHeader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"no newline", `{"magic":"CKS1"}`, ErrInvalidSnapshot},
		{"not json", "garbage\n[]", ErrInvalidSnapshot},
		{"bad magic", `{"magic":"XXXX","version":1}` + "\n[]", ErrInvalidSnapshot},
		{"future version", `{"magic":"CKS1","version":9}` + "\n[]", ErrUnsupportedVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Restore[int](strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSnapshot_UnknownCodec(t *testing.T) {
	var buf bytes.Buffer
	err := Save(&buf, "x", "vector", []int{1}, Codec("lz4"))
	assert.ErrorIs(t, err, ErrUnknownCodec)

	_, err = ParseCodec("lz4")
	assert.ErrorIs(t, err, ErrUnknownCodec)

	codec, err := ParseCodec("")
	require.NoError(t, err)
	assert.Equal(t, CodecZstd, codec)
}

func TestSnapshot_CollectionBridge(t *testing.T) {
	src := set.NewSorted(5, 3, 1)

	var buf bytes.Buffer
	require.NoError(t, SaveCollection[int](&buf, "primes", "sorted-set", src, CodecZstd))

	dst := set.NewSorted(3)
	header, err := RestoreInto[int](&buf, dst)
	require.NoError(t, err)
	assert.Equal(t, "sorted-set", header.Kind)
	// 唯一集合拒绝已有的 3
	assert.Equal(t, []int{1, 3, 5}, dst.ToSlice())
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "b", []byte("two")))
	require.NoError(t, store.Put(ctx, "a", []byte("one")))
	require.NoError(t, store.Put(ctx, "a", []byte("uno")))

	data, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "uno", string(data))

	keys, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	require.NoError(t, store.Delete(ctx, "a"))
	_, err = store.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "a"), ErrNotFound)

	assert.ErrorIs(t, store.Put(ctx, "../escape", nil), ErrInvalidKey)
	assert.ErrorIs(t, store.Put(ctx, "", nil), ErrInvalidKey)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, store.Put(cancelled, "c", nil), context.Canceled)
}
