package id3v2

import (
	"fmt"

	binutil "github.com/simonhull/id3tags/internal/binary"
	"github.com/simonhull/id3tags/internal/types"
)

// rawFrame is a frame header plus a view of its body inside the buffer.
type rawFrame struct {
	frame types.Frame
	body  []byte
	end   int64 // offset just past the frame
}

// Format flag positions after DecodeFlags(b, MSBFirst).
const (
	v3Compressed = 0 // %10000000
	v3Encrypted  = 1 // %01000000
	v3Grouped    = 2 // %00100000

	v4Grouped      = 1 // %01000000
	v4Compressed   = 4 // %00001000
	v4Encrypted    = 5 // %00000100
	v4Unsynced     = 6 // %00000010
	v4DataLenIndic = 7 // %00000001
)

// readFrame reads the frame starting at offset. tag must cover exactly the
// declared tag area so that no read can pass its end.
func readFrame(tag *binutil.SafeReader, major byte, offset int64) (rawFrame, error) {
	cr := binutil.NewChainReader(binutil.NewReader(tag, offset))
	idBytes := cr.Bytes(4, "frame id")
	size := binutil.ReadChained[uint32](cr, "frame size")
	status := binutil.ReadChained[uint8](cr, "frame status flags")
	format := binutil.ReadChained[uint8](cr, "frame format flags")
	if err := cr.Error(); err != nil {
		return rawFrame{}, &types.ParseError{
			Stage:  "frame",
			Offset: offset,
			Reason: "frame header overruns tag",
			Err:    err,
		}
	}

	id := string(idBytes)
	if !validFrameID(idBytes) {
		return rawFrame{}, &types.ParseError{
			Stage:  "frame",
			Offset: offset,
			Reason: fmt.Sprintf("invalid frame identifier %q", id),
		}
	}

	// ID3v2.4 frame sizes are synchsafe, ID3v2.3 sizes are plain integers
	if major == 4 {
		size = binutil.SynchsafeValue(size)
	}
	if size == 0 {
		return rawFrame{}, &types.ParseError{
			Stage:  "frame",
			Offset: offset,
			Reason: fmt.Sprintf("frame %s has zero size", id),
		}
	}

	body := cr.Bytes(int(size), "frame "+id+" body")
	if err := cr.Error(); err != nil {
		return rawFrame{}, &types.ParseError{
			Stage:  "frame",
			Offset: offset,
			Reason: fmt.Sprintf("frame %s size %d overruns tag", id, size),
			Err:    err,
		}
	}

	return rawFrame{
		frame: types.Frame{
			ID:          id,
			Category:    types.CategoryOf(id),
			Size:        size,
			Offset:      offset,
			StatusFlags: binutil.DecodeFlags(status, binutil.MSBFirst),
			FormatFlags: binutil.DecodeFlags(format, binutil.MSBFirst),
		},
		body: body,
		end:  cr.Offset(),
	}, nil
}

// unsupportedReason returns why a frame cannot be interpreted, or "".
func unsupportedReason(f types.Frame, major byte) string {
	if f.Category == types.CategoryUnknown {
		return "unknown frame identifier"
	}

	compressed, encrypted := f.FormatFlags[v3Compressed], f.FormatFlags[v3Encrypted]
	if major == 4 {
		compressed, encrypted = f.FormatFlags[v4Compressed], f.FormatFlags[v4Encrypted]
	}
	switch {
	case compressed:
		return "compressed frame"
	case encrypted:
		return "encrypted frame"
	case major == 4 && f.FormatFlags[v4Unsynced]:
		return "unsynchronised frame"
	}
	return ""
}

// stripFormatPrefix removes the group id and data length indicator bytes
// that precede the body when the corresponding format flags are set.
func stripFormatPrefix(f types.Frame, major byte, body []byte) ([]byte, error) {
	skip := 0
	if major == 4 {
		if f.FormatFlags[v4Grouped] {
			skip++
		}
		if f.FormatFlags[v4DataLenIndic] {
			skip += 4
		}
	} else if f.FormatFlags[v3Grouped] {
		skip++
	}

	if skip >= len(body) {
		return nil, &types.ParseError{
			Stage:  "frame",
			Offset: f.Offset,
			Reason: fmt.Sprintf("frame %s too short for its format flags", f.ID),
		}
	}
	return body[skip:], nil
}

func validFrameID(id []byte) bool {
	for _, c := range id {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
