package types

import "fmt"

// Encoding is the text encoding byte that precedes ID3v2 text payloads.
type Encoding byte

const (
	EncodingISO88591 Encoding = 0 // ISO-8859-1
	EncodingUTF16    Encoding = 1 // UTF-16 with byte order mark
	EncodingUTF16BE  Encoding = 2 // UTF-16BE without byte order mark (ID3v2.4)
	EncodingUTF8     Encoding = 3 // UTF-8 (ID3v2.4)
)

// Valid reports whether e is one of the four defined encodings.
func (e Encoding) Valid() bool {
	return e <= EncodingUTF8
}

// TerminatorSize returns the width of the string terminator for e.
func (e Encoding) TerminatorSize() int {
	if e == EncodingUTF16 || e == EncodingUTF16BE {
		return 2
	}
	return 1
}

func (e Encoding) String() string {
	switch e {
	case EncodingISO88591:
		return "ISO-8859-1"
	case EncodingUTF16:
		return "UTF-16"
	case EncodingUTF16BE:
		return "UTF-16BE"
	case EncodingUTF8:
		return "UTF-8"
	default:
		return fmt.Sprintf("encoding(%d)", byte(e))
	}
}

// MarshalText lets encoders print the encoding name.
func (e Encoding) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}
