package gridkey

// MaxCoord is the largest representable coordinate on either axis.
const MaxCoord = 1<<16 - 1

// PointKey is a lattice point packed into one uint32: x high, y low.
// The natural uint32 order sorts points x-major, then y.
type PointKey uint32

// EdgeKey is an undirected unit edge packed into one uint64: the smaller
// PointKey occupies the high 32 bits, the larger the low 32 bits.
type EdgeKey uint64

// PackPoint combines two 16-bit coordinates into a single PointKey.
func PackPoint(x, y uint16) PointKey {
	return PointKey(uint32(x)<<16 | uint32(y))
}

// Unpack splits a PointKey back into its (x, y) coordinates.
func (k PointKey) Unpack() (x, y uint16) {
	return uint16(k >> 16), uint16(k)
}

// PackEdge combines two point keys into one canonical EdgeKey.
// The smaller key is always placed first, so PackEdge(a, b) == PackEdge(b, a).
func PackEdge(a, b PointKey) EdgeKey {
	if b < a {
		a, b = b, a
	}

	return EdgeKey(uint64(a)<<32 | uint64(b))
}

// Unpack splits an EdgeKey into its two point keys in canonical
// (smaller-first) order, regardless of the order given to PackEdge.
func (k EdgeKey) Unpack() (a, b PointKey) {
	return PointKey(k >> 32), PointKey(k)
}
