package vector

import (
	"errors"
	"slices"

	"github.com/fyerfyer/collkit/collection"
)

// ErrTransactionDone 表示事务已经提交或回滚
var ErrTransactionDone = errors.New("transaction already committed or rolled back")

// Transaction 在 OrderedVector 的工作副本上批量修改，Commit 时一次性写回
// 提交前原向量不受影响
type Transaction[T any] struct {
	original    *OrderedVector[T]
	workingCopy []T
	done        bool
}

// Begin 开始一个新事务
func (v *OrderedVector[T]) Begin() *Transaction[T] {
	return &Transaction[T]{
		original:    v,
		workingCopy: slices.Clone(v.items),
	}
}

// At 返回工作副本中下标i处的元素
func (tx *Transaction[T]) At(i int) (T, error) {
	var zero T
	if tx.done {
		return zero, ErrTransactionDone
	}
	if err := collection.CheckIndex(i, len(tx.workingCopy)); err != nil {
		return zero, err
	}
	return tx.workingCopy[i], nil
}

// Set 在事务中替换下标i处的元素
func (tx *Transaction[T]) Set(i int, item T) error {
	if tx.done {
		return ErrTransactionDone
	}
	if err := collection.CheckIndex(i, len(tx.workingCopy)); err != nil {
		return err
	}
	tx.workingCopy[i] = item
	return nil
}

// Append 在事务中添加元素
func (tx *Transaction[T]) Append(items ...T) error {
	if tx.done {
		return ErrTransactionDone
	}
	tx.workingCopy = append(tx.workingCopy, items...)
	return nil
}

// RemoveAt 在事务中删除下标i处的元素
func (tx *Transaction[T]) RemoveAt(i int) error {
	if tx.done {
		return ErrTransactionDone
	}
	if err := collection.CheckIndex(i, len(tx.workingCopy)); err != nil {
		return err
	}
	tx.workingCopy = slices.Delete(tx.workingCopy, i, i+1)
	return nil
}

// Entries 返回工作副本的元素数量
func (tx *Transaction[T]) Entries() int {
	if tx.done {
		return 0
	}
	return len(tx.workingCopy)
}

// Commit 将工作副本写回原向量
func (tx *Transaction[T]) Commit() error {
	if tx.done {
		return ErrTransactionDone
	}
	tx.original.items = tx.workingCopy
	tx.workingCopy = nil
	tx.done = true
	return nil
}

// Rollback 丢弃所有修改
func (tx *Transaction[T]) Rollback() error {
	if tx.done {
		return ErrTransactionDone
	}
	tx.workingCopy = nil
	tx.done = true
	return nil
}

// Done 检查事务是否已结束
func (tx *Transaction[T]) Done() bool {
	return tx.done
}
