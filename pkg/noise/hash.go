package noise

// Lattice hash constants. Changing any of these changes every generated map.
const (
	primeX    = 374761393
	primeY    = 668265263
	avalanche = 1274126177
)

// Hash2D maps a lattice coordinate and a seed contribution to a uniform value
// in [0,1).
//
// All arithmetic is unsigned 32-bit with wrapping and the shifts are logical,
// so the full 32-bit range is reachable before scaling by 2^-32. The result is
// bit-identical across platforms. Maps are therefore not bit-compatible with
// generators that shift a signed int32; those only reach [0,0.5).
func Hash2D(x, y int, contribution uint32) float64 {
	n := uint32(x)*primeX + uint32(y)*primeY + contribution
	n = (n ^ n>>13) * avalanche
	n ^= n >> 16
	return float64(n) / (1 << 32)
}
