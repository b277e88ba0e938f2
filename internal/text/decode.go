// Package text decodes ID3 text payloads according to their encoding byte.
package text

import (
	"bytes"
	"encoding/binary"
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/simonhull/id3tags/internal/types"
)

var (
	errOddLength         = errors.New("odd number of bytes in UTF-16 text")
	errUnpairedSurrogate = errors.New("unpaired surrogate in UTF-16 text")
	errInvalidUTF8       = errors.New("invalid UTF-8 sequence")
)

var (
	latin1   = charmap.ISO8859_1
	utf16BOM = unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	utf16BE  = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
)

// Decode converts data to a UTF-8 string.
//
// ISO-8859-1 never fails. UTF-16 must start with a byte order mark unless
// data is empty, and both UTF-16 forms need an even length and properly
// paired surrogates. UTF-8 must be valid. Encodings outside 0-3 fail with
// UnsupportedEncodingError.
func Decode(data []byte, enc types.Encoding) (string, error) {
	switch enc {
	case types.EncodingISO88591:
		b, err := latin1.NewDecoder().Bytes(data)
		if err != nil {
			return "", &types.DecodeError{Encoding: enc, Err: err}
		}
		return string(b), nil

	case types.EncodingUTF16, types.EncodingUTF16BE:
		if len(data) == 0 {
			return "", nil
		}
		if len(data)%2 != 0 {
			return "", &types.DecodeError{Encoding: enc, Err: errOddLength}
		}
		codec := utf16BE
		if enc == types.EncodingUTF16 {
			codec = utf16BOM
		}
		// Decoders carry BOM state, so each call gets a fresh one.
		b, err := codec.NewDecoder().Bytes(data)
		if err != nil {
			return "", &types.DecodeError{Encoding: enc, Err: err}
		}
		// The decoder substitutes U+FFFD for broken pairs instead of failing
		if !pairedSurrogates(data, enc) {
			return "", &types.DecodeError{Encoding: enc, Err: errUnpairedSurrogate}
		}
		return string(b), nil

	case types.EncodingUTF8:
		if !utf8.Valid(data) {
			return "", &types.DecodeError{Encoding: enc, Err: errInvalidUTF8}
		}
		return string(data), nil

	default:
		return "", &types.UnsupportedEncodingError{Encoding: byte(enc)}
	}
}

// pairedSurrogates reports whether every surrogate code unit in data is
// part of a high/low pair. For EncodingUTF16 the leading BOM picks the
// byte order; data has already been checked to carry one.
func pairedSurrogates(data []byte, enc types.Encoding) bool {
	var order binary.ByteOrder = binary.BigEndian
	if enc == types.EncodingUTF16 {
		if data[0] == 0xFF && data[1] == 0xFE {
			order = binary.LittleEndian
		}
		data = data[2:]
	}

	for i := 0; i+1 < len(data); i += 2 {
		r := rune(order.Uint16(data[i:]))
		if !utf16.IsSurrogate(r) {
			continue
		}
		if i+3 >= len(data) {
			return false
		}
		low := rune(order.Uint16(data[i+2:]))
		if utf16.DecodeRune(r, low) == utf8.RuneError {
			return false
		}
		i += 2
	}
	return true
}

// DecodeList decodes a terminator-separated list of strings, as used by
// ID3v2.4 multi-value text frames. Trailing terminators are dropped, so
// "a\x00" and "a" both give ["a"].
func DecodeList(data []byte, enc types.Encoding) ([]string, error) {
	if !enc.Valid() {
		return nil, &types.UnsupportedEncodingError{Encoding: byte(enc)}
	}

	parts := Split(data, enc)
	for len(parts) > 0 && len(parts[len(parts)-1]) == 0 {
		parts = parts[:len(parts)-1]
	}

	values := make([]string, 0, len(parts))
	for _, p := range parts {
		s, err := Decode(p, enc)
		if err != nil {
			return nil, err
		}
		values = append(values, s)
	}
	return values, nil
}

// Cut slices data around the first terminator for enc. UTF-16 terminators
// are two NUL bytes on an even offset.
func Cut(data []byte, enc types.Encoding) (before, after []byte, found bool) {
	i := indexTerminator(data, enc)
	if i < 0 {
		return data, nil, false
	}
	return data[:i], data[i+enc.TerminatorSize():], true
}

// Split slices data at every terminator for enc.
func Split(data []byte, enc types.Encoding) [][]byte {
	var parts [][]byte
	for {
		before, after, found := Cut(data, enc)
		parts = append(parts, before)
		if !found {
			return parts
		}
		data = after
	}
}

func indexTerminator(data []byte, enc types.Encoding) int {
	if enc.TerminatorSize() == 1 {
		return bytes.IndexByte(data, 0)
	}
	for i := 0; i+1 < len(data); i += 2 {
		if data[i] == 0 && data[i+1] == 0 {
			return i
		}
	}
	return -1
}
