package reflectx

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// HashCombiner folds a sequence of values into one 64-bit hash. The result
// depends on both the values and their order. It is stable across runs for
// scalars, strings, byte slices, Hash64 implementers and pointers to them;
// other values hash their %#v rendering, which includes the addresses of any
// pointers they hold.
//
//	h := reflectx.NewHashCombiner().Add(42).Add("foo").Sum64()
//
// A HashCombiner is not safe for concurrent use.
type HashCombiner struct {
	d   *xxhash.Digest
	buf [9]byte
}

// NewHashCombiner returns an empty combiner.
func NewHashCombiner() *HashCombiner {
	return &HashCombiner{d: xxhash.New()}
}

// value tags keep e.g. int 1 and uint 1 (or "" and nil) from colliding.
const (
	tagNil byte = iota
	tagBool
	tagInt
	tagUint
	tagFloat
	tagString
	tagBytes
	tagHash
	tagOther
)

// Add mixes v into the hash and returns the combiner for chaining.
// Values implementing Hash64() uint64 contribute that hash. A non-nil pointer
// contributes the value it points to, so &x and x hash alike. Values of other
// types contribute their fmt %#v rendering.
func (h *HashCombiner) Add(v any) *HashCombiner {
	switch x := v.(type) {
	case nil:
		h.tag(tagNil)
	case bool:
		var b uint64
		if x {
			b = 1
		}
		h.word(tagBool, b)
	case int:
		h.word(tagInt, uint64(x))
	case int8:
		h.word(tagInt, uint64(x))
	case int16:
		h.word(tagInt, uint64(x))
	case int32:
		h.word(tagInt, uint64(x))
	case int64:
		h.word(tagInt, uint64(x))
	case uint:
		h.word(tagUint, uint64(x))
	case uint8:
		h.word(tagUint, uint64(x))
	case uint16:
		h.word(tagUint, uint64(x))
	case uint32:
		h.word(tagUint, uint64(x))
	case uint64:
		h.word(tagUint, x)
	case float32:
		h.word(tagFloat, math.Float64bits(float64(x)))
	case float64:
		h.word(tagFloat, math.Float64bits(x))
	case string:
		h.word(tagString, uint64(len(x)))
		_, _ = h.d.WriteString(x)
	case []byte:
		h.word(tagBytes, uint64(len(x)))
		_, _ = h.d.Write(x)
	case interface{ Hash64() uint64 }:
		h.word(tagHash, x.Hash64())
	default:
		rv := reflect.ValueOf(v)
		if IsNilable(rv.Type()) && rv.IsNil() {
			h.tag(tagNil)
			break
		}
		if rv.Kind() == reflect.Pointer && rv.Elem().CanInterface() {
			return h.Add(rv.Elem().Interface())
		}
		s := fmt.Sprintf("%#v", v)
		h.word(tagOther, uint64(len(s)))
		_, _ = h.d.WriteString(s)
	}
	return h
}

// AddAll mixes each of vs in order.
func (h *HashCombiner) AddAll(vs ...any) *HashCombiner {
	for _, v := range vs {
		h.Add(v)
	}
	return h
}

// Sum64 returns the combined hash. Further Adds continue from the current
// state.
func (h *HashCombiner) Sum64() uint64 { return h.d.Sum64() }

// Reset clears the combiner.
func (h *HashCombiner) Reset() { h.d.Reset() }

func (h *HashCombiner) tag(t byte) {
	h.buf[0] = t
	_, _ = h.d.Write(h.buf[:1])
}

func (h *HashCombiner) word(t byte, w uint64) {
	h.buf[0] = t
	binary.LittleEndian.PutUint64(h.buf[1:], w)
	_, _ = h.d.Write(h.buf[:])
}
