package arena

import (
	"github.com/Workiva/go-datastructures/bitarray"
)

// visited is a seen set over node indices. Indices below the size given
// at creation live in a bit array; nodes appended later spill into a map.
type visited struct {
	bits  bitarray.BitArray
	spill map[int]struct{}
}

func newVisited(n int) *visited {
	return &visited{bits: bitarray.NewBitArray(uint64(n))}
}

// mark records idx and reports whether it was unseen.
func (v *visited) mark(idx int) bool {
	k := uint64(idx)
	if k < v.bits.Capacity() {
		if ok, err := v.bits.GetBit(k); err == nil {
			if ok {
				return false
			}
			if err := v.bits.SetBit(k); err == nil {
				return true
			}
		}
	}
	if v.spill == nil {
		v.spill = make(map[int]struct{})
	}
	if _, ok := v.spill[idx]; ok {
		return false
	}
	v.spill[idx] = struct{}{}

	return true
}
