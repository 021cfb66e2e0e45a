package persist

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
)

// Codec 快照负载的压缩方式
type Codec string

const (
	CodecNone   Codec = "none"
	CodecZstd   Codec = "zstd"
	CodecSnappy Codec = "snappy"
)

// ParseCodec 解析压缩方式名称，空字符串视为 zstd
func ParseCodec(name string) (Codec, error) {
	switch Codec(name) {
	case "", CodecZstd:
		return CodecZstd, nil
	case CodecNone, CodecSnappy:
		return Codec(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
}

// compressor 复用 zstd 编解码器
type compressor struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder

	mu sync.Mutex
}

var (
	defaultCompressor     *compressor
	defaultCompressorErr  error
	defaultCompressorOnce sync.Once
)

func getCompressor() (*compressor, error) {
	defaultCompressorOnce.Do(func() {
		defaultCompressor, defaultCompressorErr = newCompressor()
	})
	return defaultCompressor, defaultCompressorErr
}

func newCompressor() (*compressor, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create ZSTD encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		encoder.Close()
		return nil, fmt.Errorf("failed to create ZSTD decoder: %w", err)
	}

	return &compressor{encoder: encoder, decoder: decoder}, nil
}

func (c *compressor) compress(data []byte, codec Codec) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch codec {
	case CodecNone:
		return data, nil
	case CodecZstd:
		return c.encoder.EncodeAll(data, nil), nil
	case CodecSnappy:
		return snappy.Encode(nil, data), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, codec)
	}
}

func (c *compressor) decompress(data []byte, codec Codec) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch codec {
	case CodecNone:
		return data, nil
	case CodecZstd:
		result, err := c.decoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCompressedData, err)
		}
		return result, nil
	case CodecSnappy:
		result, err := snappy.Decode(nil, data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCompressedData, err)
		}
		return result, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, codec)
	}
}
