package collection

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange 表示索引越界
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidCapacity 表示指定的容量无效
	ErrInvalidCapacity = errors.New("invalid capacity")

	// ErrEmptyCollection 表示集合为空
	ErrEmptyCollection = errors.New("collection is empty")
)

// BoundsError 越界错误，记录越界的索引和集合当时的大小
type BoundsError struct {
	Index int
	Size  int
}

// NewBoundsError 创建越界错误
func NewBoundsError(index, size int) *BoundsError {
	return &BoundsError{Index: index, Size: size}
}

func (e *BoundsError) Error() string {
	if e.Size == 0 {
		return fmt.Sprintf("index %d out of range: collection is empty", e.Index)
	}
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Size)
}

// Is 使 errors.Is(err, ErrIndexOutOfRange) 成立，空集合上的越界同时匹配 ErrEmptyCollection
func (e *BoundsError) Is(target error) bool {
	return target == ErrIndexOutOfRange || (target == ErrEmptyCollection && e.Size == 0)
}

// CheckIndex 检查索引是否在 [0, size) 内
func CheckIndex(index, size int) error {
	if index < 0 || index >= size {
		return NewBoundsError(index, size)
	}
	return nil
}
