package compare

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Hasher 哈希函数
// 调用方需保证：相等的元素必须产生相同的哈希值
type Hasher[T any] func(item T) uint64

// StringHash 字符串哈希
func StringHash(s string) uint64 {
	return xxhash.Sum64String(s)
}

// BytesHash 字节切片哈希
func BytesHash(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// IntHash 整数哈希
func IntHash(v int) uint64 {
	return uint64Hash(uint64(v))
}

func uint64Hash(v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return xxhash.Sum64(buf[:])
}

// HashOf 可比较类型的通用哈希函数
// 常见基础类型直接编码后哈希；命名类型与复合类型按 reflect.Kind 逐字段写入同一个摘要，
// 因此 == 相等的值（包括 +0 与 -0）总是得到相同的哈希值
func HashOf[T comparable](item T) uint64 {
	switch v := any(item).(type) {
	case string:
		return xxhash.Sum64String(v)
	case int:
		return uint64Hash(uint64(v))
	case int8:
		return uint64Hash(uint64(v))
	case int16:
		return uint64Hash(uint64(v))
	case int32:
		return uint64Hash(uint64(v))
	case int64:
		return uint64Hash(uint64(v))
	case uint:
		return uint64Hash(uint64(v))
	case uint8:
		return uint64Hash(uint64(v))
	case uint16:
		return uint64Hash(uint64(v))
	case uint32:
		return uint64Hash(uint64(v))
	case uint64:
		return uint64Hash(v)
	case uintptr:
		return uint64Hash(uint64(v))
	case float32:
		return floatHash(float64(v))
	case float64:
		return floatHash(v)
	case bool:
		if v {
			return uint64Hash(1)
		}
		return uint64Hash(0)
	}

	d := xxhash.New()
	w := valueHasher{d: d}
	w.value(reflect.ValueOf(any(item)))
	return d.Sum64()
}

// valueHasher 将任意可比较的值按 Kind 写入摘要
type valueHasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

func (w *valueHasher) word(v uint64) {
	binary.LittleEndian.PutUint64(w.buf[:], v)
	_, _ = w.d.Write(w.buf[:])
}

func (w *valueHasher) float(f float64) {
	// -0 与 +0 相等
	if f == 0 {
		f = 0
	}
	w.word(math.Float64bits(f))
}

func (w *valueHasher) value(v reflect.Value) {
	switch v.Kind() {
	case reflect.Invalid:
		// 值为 nil 的接口
		w.word(0)
	case reflect.Bool:
		if v.Bool() {
			w.word(1)
		} else {
			w.word(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		w.word(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		w.word(v.Uint())
	case reflect.Float32, reflect.Float64:
		w.float(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		w.float(real(c))
		w.float(imag(c))
	case reflect.String:
		w.word(uint64(v.Len()))
		_, _ = w.d.WriteString(v.String())
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		w.word(uint64(v.Pointer()))
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			w.value(v.Index(i))
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			w.value(v.Field(i))
		}
	case reflect.Interface:
		if v.IsNil() {
			w.word(0)
			return
		}
		// 动态类型不同的接口值不相等，类型名参与哈希以减少冲突
		e := v.Elem()
		_, _ = w.d.WriteString(e.Type().String())
		w.value(e)
	default:
		// 切片、映射、函数不可比较，不会出现在 comparable 类型中
		_, _ = w.d.WriteString(v.Kind().String())
	}
}

func floatHash(f float64) uint64 {
	// -0 与 +0 相等，必须得到相同的哈希值
	if f == 0 {
		f = 0
	}
	return uint64Hash(math.Float64bits(f))
}
