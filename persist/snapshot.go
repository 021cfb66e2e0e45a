// Package persist 提供集合快照的编码、解码和存储
//
// 快照格式：第一行是 JSON 头部，随后是按 Codec 压缩的 JSON 数组负载
// 头部记录负载的 xxhash64 校验和，读取时先校验再解压
package persist

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/fyerfyer/collkit/collection"
)

const (
	// Magic 快照头部的魔数
	Magic = "CKS1"

	// Version 当前快照格式版本
	Version = 1
)

// Header 快照头部
type Header struct {
	Magic   string `json:"magic"`
	Version int    `json:"version"`

	// Kind 集合类型，由调用方定义
	Kind string `json:"kind"`
	Name string `json:"name"`

	// Count 元素数量
	Count int `json:"count"`

	// Checksum 压缩后负载的 xxhash64
	Checksum uint64 `json:"checksum"`
	Codec    Codec  `json:"codec"`

	// Meta 调用方附加的集合属性，例如哈希集合的桶数量
	Meta map[string]string `json:"meta,omitempty"`
}

// SaveOption 写快照时修改头部的选项
type SaveOption func(*Header)

// WithMeta 在头部记录一项集合属性
func WithMeta(key, value string) SaveOption {
	return func(h *Header) {
		if h.Meta == nil {
			h.Meta = make(map[string]string)
		}
		h.Meta[key] = value
	}
}

// Save 将元素写成快照
func Save[T any](w io.Writer, name, kind string, items []T, codec Codec, opts ...SaveOption) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}

	c, err := getCompressor()
	if err != nil {
		return err
	}
	payload, err := c.compress(raw, codec)
	if err != nil {
		return err
	}

	header := Header{
		Magic:    Magic,
		Version:  Version,
		Kind:     kind,
		Name:     name,
		Count:    len(items),
		Checksum: xxhash.Sum64(payload),
		Codec:    codec,
	}
	for _, opt := range opts {
		opt(&header)
	}
	line, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to encode header: %w", err)
	}

	line = append(line, '\n')
	if _, err := w.Write(line); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// ReadHeader 只读取快照头部，返回的 reader 位于负载开头
func ReadHeader(r io.Reader) (Header, *bufio.Reader, error) {
	br := bufio.NewReader(r)
	line, err := br.ReadBytes('\n')
	if err != nil {
		return Header{}, nil, fmt.Errorf("%w: missing header: %v", ErrInvalidSnapshot, err)
	}

	var header Header
	if err := json.Unmarshal(line, &header); err != nil {
		return Header{}, nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if header.Magic != Magic {
		return Header{}, nil, fmt.Errorf("%w: bad magic %q", ErrInvalidSnapshot, header.Magic)
	}
	if header.Version != Version {
		return Header{}, nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, header.Version)
	}
	return header, br, nil
}

// Restore 读取快照，返回头部和元素
func Restore[T any](r io.Reader) (Header, []T, error) {
	header, br, err := ReadHeader(r)
	if err != nil {
		return Header{}, nil, err
	}

	payload, err := io.ReadAll(br)
	if err != nil {
		return Header{}, nil, err
	}
	if sum := xxhash.Sum64(payload); sum != header.Checksum {
		return Header{}, nil, fmt.Errorf("%w: expected %x, got %x", ErrChecksumMismatch, header.Checksum, sum)
	}

	c, err := getCompressor()
	if err != nil {
		return Header{}, nil, err
	}
	raw, err := c.decompress(payload, header.Codec)
	if err != nil {
		return Header{}, nil, err
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return Header{}, nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if len(items) != header.Count {
		return Header{}, nil, fmt.Errorf("%w: header count %d, payload count %d",
			ErrInvalidSnapshot, header.Count, len(items))
	}
	return header, items, nil
}

// SaveCollection 按集合的迭代顺序写出快照
func SaveCollection[T any](w io.Writer, name, kind string, c collection.Collection[T], codec Codec, opts ...SaveOption) error {
	return Save(w, name, kind, c.ToSlice(), codec, opts...)
}

// RestoreInto 读取快照并把元素插入集合，集合原有内容保留
// 唯一集合会拒绝重复元素，返回值是快照头部
func RestoreInto[T any](r io.Reader, c collection.Collection[T]) (Header, error) {
	header, items, err := Restore[T](r)
	if err != nil {
		return Header{}, err
	}
	for _, item := range items {
		c.Insert(item)
	}
	return header, nil
}

// Marshal 将元素编码为快照字节
func Marshal[T any](name, kind string, items []T, codec Codec, opts ...SaveOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := Save(&buf, name, kind, items, codec, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal 从快照字节解码元素
func Unmarshal[T any](data []byte) (Header, []T, error) {
	return Restore[T](bytes.NewReader(data))
}
