package id3v2

import (
	"encoding/binary"

	binutil "github.com/simonhull/id3tags/internal/binary"
)

// frameBytes builds a frame with the size field encoded for major.
func frameBytes(major byte, id string, formatFlags byte, body []byte) []byte {
	out := make([]byte, 10, 10+len(body))
	copy(out, id)
	if major == 4 {
		s := binutil.EncodeSynchsafe(uint32(len(body)))
		copy(out[4:8], s[:])
	} else {
		binary.BigEndian.PutUint32(out[4:8], uint32(len(body)))
	}
	out[9] = formatFlags
	return append(out, body...)
}

// tagBytes wraps frames in a tag header, adds padding zero bytes, and sets
// the declared size to cover frames and padding.
func tagBytes(major, flags byte, padding int, frames ...[]byte) []byte {
	var body []byte
	for _, f := range frames {
		body = append(body, f...)
	}
	body = append(body, make([]byte, padding)...)

	size := binutil.EncodeSynchsafe(uint32(len(body)))
	out := []byte{'I', 'D', '3', major, 0, flags, size[0], size[1], size[2], size[3]}
	return append(out, body...)
}

// textBody builds a text frame body: encoding byte followed by raw text bytes.
func textBody(enc byte, text string) []byte {
	return append([]byte{enc}, text...)
}
