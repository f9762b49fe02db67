package th

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var sink []byte

func TestMemSince(t *testing.T) {
	prev := TotalAlloc()
	sink = make([]byte, 1<<20)
	require.NotEmpty(t, MemSince(prev))
	require.GreaterOrEqual(t, TotalAlloc()-prev, uint64(1<<20))
}
