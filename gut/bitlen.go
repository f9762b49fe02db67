package gut

var smallBitLenTable = [16]int{
	0, 1, 2, 2, 3, 3, 3, 3,
	4, 4, 4, 4, 4, 4, 4, 4,
}

// BitLen returns the minimum number of bits required to represent x; 0 for x == 0.
func BitLen(x uint64) (n int) {
	if x >= 1<<32 {
		x >>= 32
		n += 32
	}
	if x >= 1<<16 {
		x >>= 16
		n += 16
	}
	if x >= 1<<8 {
		x >>= 8
		n += 8
	}
	if x >= 1<<4 {
		x >>= 4
		n += 4
	}
	return n + smallBitLenTable[x]
}

// MinWidth is BitLen clamped to at least one bit, the narrowest field able to hold x.
func MinWidth(x uint64) int {
	if x == 0 {
		return 1
	}
	return BitLen(x)
}
