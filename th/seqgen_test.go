package th

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeqGenPeriod(t *testing.T) {
	for _, sgt := range []int{SgRand, SgSeq, SgTwist} {
		g := NewSeqGen(sgt)
		g.SetPeriod(5)
		first := make([]uint64, 5)
		for i := range first {
			first[i] = g.Next()
		}
		if sgt == SgSeq {
			continue
		}
		for i := range first {
			assert.Equal(t, first[i], g.Next(), "generator %d index %d", sgt, i)
		}
	}
}

func TestHelpers(t *testing.T) {
	g := NewSeqGen(SgRand)
	assert.Len(t, Bytes(g, 13), 13)
	for i := 0; i < 1000; i++ {
		w := Width(g)
		assert.True(t, w >= 1 && w <= 64)
		assert.True(t, Intn(g, 7) < 7)
	}
	assert.Panics(t, func() { Intn(g, 0) })
}
