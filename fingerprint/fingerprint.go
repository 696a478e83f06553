package fingerprint

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprinter is implemented by every entity that exposes an identity.
type Fingerprinter interface {
	Fingerprint() string
}

// type tags keep ("ab","c") and ("a","bc") and int/float collisions apart.
const (
	tagString byte = iota + 1
	tagBool
	tagInt
	tagFloat
	tagStrings
	tagInts
	tagFloats
	tagRows
	tagNested
	tagNil
)

// Of returns the fingerprint of kind and parts.
// It panics on an unsupported part type, which is a programmer error.
func Of(kind string, parts ...any) string {
	d := xxhash.New()
	e := encoder{d: d}
	e.str(kind)
	for _, p := range parts {
		e.part(p)
	}

	return fmt.Sprintf("%016x", d.Sum64())
}

type encoder struct {
	d   *xxhash.Digest
	buf [8]byte
}

func (e *encoder) tag(t byte) { _, _ = e.d.Write([]byte{t}) }

func (e *encoder) u64(v uint64) {
	binary.LittleEndian.PutUint64(e.buf[:], v)
	_, _ = e.d.Write(e.buf[:])
}

func (e *encoder) str(s string) {
	e.u64(uint64(len(s)))
	_, _ = e.d.WriteString(s)
}

func (e *encoder) part(p any) {
	switch v := p.(type) {
	case nil:
		e.tag(tagNil)
	case string:
		e.tag(tagString)
		e.str(v)
	case bool:
		e.tag(tagBool)
		if v {
			e.u64(1)
		} else {
			e.u64(0)
		}
	case int:
		e.tag(tagInt)
		e.u64(uint64(int64(v)))
	case float64:
		e.tag(tagFloat)
		e.u64(math.Float64bits(v))
	case []string:
		e.tag(tagStrings)
		e.u64(uint64(len(v)))
		for _, s := range v {
			e.str(s)
		}
	case []int:
		e.tag(tagInts)
		e.u64(uint64(len(v)))
		for _, x := range v {
			e.u64(uint64(int64(x)))
		}
	case []float64:
		e.tag(tagFloats)
		e.floats(v)
	case [][]float64:
		e.tag(tagRows)
		e.u64(uint64(len(v)))
		for _, row := range v {
			e.floats(row)
		}
	case Fingerprinter:
		e.tag(tagNested)
		e.str(v.Fingerprint())
	default:
		panic(fmt.Sprintf("fingerprint: unsupported part type %T", p))
	}
}

func (e *encoder) floats(v []float64) {
	e.u64(uint64(len(v)))
	for _, x := range v {
		e.u64(math.Float64bits(x))
	}
}
