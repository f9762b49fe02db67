// Package th holds helpers shared by the module's tests.
package th

import "math/rand"

type SeqGen interface {
	Seed(value uint64)
	Next() uint64
	Reset()
	SetPeriod(period uint64)
	Period() uint64
}

const (
	SgRand = iota
	SgSeq
	SgTwist
)

func NewSeqGen(sgt int) SeqGen {
	switch sgt {
	case SgRand:
		return &randSG{}
	case SgSeq:
		return &seqSG{}
	case SgTwist:
		return &twistSG{}
	default:
		panic("invalid sequence generator type")
	}
}

// Bytes fills a fresh slice of n bytes from g.
func Bytes(g SeqGen, n int) []byte {
	b := make([]byte, n)
	var v uint64
	for i := range b {
		if i%8 == 0 {
			v = g.Next()
		}
		b[i] = byte(v)
		v >>= 8
	}
	return b
}

// Intn returns a value in [0, n) drawn from g.
func Intn(g SeqGen, n int) int {
	if n <= 0 {
		panic("invalid bound")
	}
	return int(g.Next() % uint64(n))
}

// Width returns a field width in [1, 64] drawn from g.
func Width(g SeqGen) int {
	return Intn(g, 64) + 1
}

type randSG struct {
	r         *rand.Rand
	period    uint64
	generated uint64
}

func (g *randSG) Next() uint64 {
	if g.period != 0 && g.period == g.generated {
		g.Reset()
	}
	if g.r == nil {
		g.r = rand.New(rand.NewSource(1))
	}
	g.generated++
	return g.r.Uint64()
}
func (g *randSG) Reset() {
	g.r = rand.New(rand.NewSource(1))
	g.generated = 0
}
func (g *randSG) Seed(value uint64) {
	g.r = rand.New(rand.NewSource(int64(value)))
}
func (g *randSG) SetPeriod(period uint64) {
	g.period = period
}
func (g *randSG) Period() uint64 {
	return g.period
}

type seqSG struct {
	cur    uint64
	period uint64
}

func (g *seqSG) Next() uint64 {
	g.cur++
	if g.period != 0 {
		return g.cur % g.period
	}
	return g.cur
}
func (g *seqSG) Reset() {
	g.cur = 0
}
func (g *seqSG) Seed(value uint64) {
	g.cur = value
}
func (g *seqSG) SetPeriod(period uint64) {
	g.period = period
}
func (g *seqSG) Period() uint64 {
	return g.period
}

// twistSG alternates between values near zero and near the top of the range,
// which keeps the sign bit of every width busy.
type twistSG struct {
	cur               uint64
	period, generated uint64
}

func (g *twistSG) Next() uint64 {
	if g.period != 0 && g.generated == g.period {
		g.Reset()
	}
	if (g.cur & 0x8000000000000000) == 0 {
		g.cur = ^g.cur - 1
	} else {
		g.cur = ^g.cur + 1
	}
	g.generated++
	return g.cur
}

func (g *twistSG) Reset() {
	g.cur = 0
	g.generated = 0
}
func (g *twistSG) Seed(value uint64) {
	g.cur = value
}
func (g *twistSG) SetPeriod(period uint64) {
	g.period = period
	g.generated = 0
}
func (g *twistSG) Period() uint64 {
	return g.period
}
