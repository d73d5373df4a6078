package state

// PackU64LE appends the encoded number to dst and returns the new slice.
// Storage keys embed ids in little-endian order so they stay compact.
func PackU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}
