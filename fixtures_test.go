package id3tags_test

import (
	"os"
	"path/filepath"
	"testing"
)

// id3v2Tag builds an ID3v2.3 tag holding one ISO-8859-1 text frame per
// id/value pair, followed by padding bytes of zero.
func id3v2Tag(padding int, pairs ...string) []byte {
	var frames []byte
	for i := 0; i+1 < len(pairs); i += 2 {
		body := append([]byte{0}, pairs[i+1]...)
		size := len(body)
		frames = append(frames, pairs[i]...)
		frames = append(frames, byte(size>>24), byte(size>>16), byte(size>>8), byte(size), 0, 0)
		frames = append(frames, body...)
	}
	frames = append(frames, make([]byte, padding)...)

	n := len(frames)
	header := []byte{'I', 'D', '3', 3, 0, 0,
		byte(n>>21) & 0x7F, byte(n>>14) & 0x7F, byte(n>>7) & 0x7F, byte(n) & 0x7F}
	return append(header, frames...)
}

// id3v1Tag builds a 128-byte ID3v1.1 trailer.
func id3v1Tag(title, artist, year string, track byte) []byte {
	tag := make([]byte, 128)
	copy(tag, "TAG")
	copy(tag[3:33], title)
	copy(tag[33:63], artist)
	copy(tag[93:97], year)
	tag[126] = track
	tag[127] = 17 // Rock
	return tag
}

// audioFrames stands in for MPEG audio between the two tags.
func audioFrames(n int) []byte {
	data := make([]byte, n)
	for i := 0; i+1 < n; i += 2 {
		data[i], data[i+1] = 0xFF, 0xFB
	}
	return data
}

func join(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// writeTemp writes data to a file in a per-test directory.
func writeTemp(tb testing.TB, name string, data []byte) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatal(err)
	}
	return path
}
