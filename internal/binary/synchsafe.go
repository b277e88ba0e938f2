package binary

// MaxSynchsafe is the largest value a 4-byte synchsafe integer can hold.
const MaxSynchsafe = 1<<28 - 1

// DecodeSynchsafe decodes a synchsafe integer (7 bits per byte).
// ID3v2 sizes keep bit 7 of every byte clear so tag data can never
// look like an MPEG frame sync; that bit is ignored here.
func DecodeSynchsafe(b [4]byte) uint32 {
	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}

// EncodeSynchsafe is the inverse of DecodeSynchsafe for v <= MaxSynchsafe.
// Higher bits are discarded.
func EncodeSynchsafe(v uint32) [4]byte {
	return [4]byte{
		byte(v>>21) & 0x7F,
		byte(v>>14) & 0x7F,
		byte(v>>7) & 0x7F,
		byte(v) & 0x7F,
	}
}

// SynchsafeValue decodes a synchsafe integer already read as a big-endian uint32.
func SynchsafeValue(raw uint32) uint32 {
	return DecodeSynchsafe([4]byte{byte(raw >> 24), byte(raw >> 16), byte(raw >> 8), byte(raw)})
}
