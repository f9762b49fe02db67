package th

import (
	"runtime"

	"code.cloudfoundry.org/bytefmt"
)

func CurMemStats() *runtime.MemStats {
	ms := &runtime.MemStats{}
	runtime.ReadMemStats(ms)
	return ms
}

func TotalAlloc() uint64 {
	return CurMemStats().TotalAlloc
}

// MemSince formats the bytes allocated since prev, e.g. "1.5M".
func MemSince(prev uint64) string {
	return bytefmt.ByteSize(TotalAlloc() - prev)
}
