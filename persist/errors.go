package persist

import "errors"

var (
	// ErrInvalidSnapshot 表示快照头部无法解析或魔数不匹配
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrUnsupportedVersion 表示快照版本不受支持
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")

	// ErrChecksumMismatch 表示快照数据校验失败
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")

	// ErrUnknownCodec 表示不支持的压缩方式
	ErrUnknownCodec = errors.New("unknown compression codec")

	// ErrInvalidCompressedData 表示压缩数据无法解压
	ErrInvalidCompressedData = errors.New("invalid compressed data")

	// ErrNotFound 表示存储中不存在指定的快照
	ErrNotFound = errors.New("snapshot not found")

	// ErrInvalidKey 表示快照键包含非法字符
	ErrInvalidKey = errors.New("invalid snapshot key")
)
