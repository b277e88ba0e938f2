package binary

// BitOrder selects which end of a byte lands at index 0 of decoded flags.
type BitOrder int

const (
	// MSBFirst places bit 7 at index 0. ID3v2 flag bytes are read this way.
	MSBFirst BitOrder = iota

	// LSBFirst places bit 0 at index 0.
	LSBFirst
)

// Flags holds the eight bits of one byte as booleans.
type Flags [8]bool

// DecodeFlags splits b into eight booleans in the requested order.
//
// Every byte is valid input:
//
//	DecodeFlags(5, MSBFirst) // [false false false false false true false true]
func DecodeFlags(b byte, order BitOrder) Flags {
	var f Flags
	for i := range 8 {
		set := b&(1<<i) != 0
		if order == MSBFirst {
			f[7-i] = set
		} else {
			f[i] = set
		}
	}
	return f
}

// Byte packs the flags back into a byte using the given order.
func (f Flags) Byte(order BitOrder) byte {
	var b byte
	for i := range 8 {
		idx := i
		if order == MSBFirst {
			idx = 7 - i
		}
		if f[idx] {
			b |= 1 << i
		}
	}
	return b
}

// Reverse returns the flags in the opposite order.
func (f Flags) Reverse() Flags {
	var r Flags
	for i := range f {
		r[7-i] = f[i]
	}
	return r
}
