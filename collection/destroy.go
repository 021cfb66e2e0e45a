package collection

import (
	"errors"
	"io"
)

// Destroyer 由需要显式释放的元素实现
type Destroyer interface {
	Destroy()
}

// DestroyAll 释放指针集合中的所有元素，用于实现 ClearAndDestroy
// 元素实现了 Destroyer 时调用 Destroy，实现了 io.Closer 时调用 Close
// 同一次调用中重复出现的指针只释放一次，nil 指针被跳过
// 返回所有 Close 错误的合并结果
func DestroyAll[T any](items []*T) error {
	seen := make(map[*T]struct{}, len(items))
	var errs []error

	for _, item := range items {
		if item == nil {
			continue
		}
		if _, done := seen[item]; done {
			continue
		}
		seen[item] = struct{}{}

		switch v := any(item).(type) {
		case Destroyer:
			v.Destroy()
		case io.Closer:
			if err := v.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}
