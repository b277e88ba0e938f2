package id3v2

import (
	"fmt"

	binutil "github.com/simonhull/id3tags/internal/binary"
	"github.com/simonhull/id3tags/internal/types"
)

// parseHeader reads the 10-byte tag header at the start of the buffer.
func parseHeader(sr *binutil.SafeReader) (types.FrameHeader, error) {
	magic, err := sr.Slice(0, 3, "ID3v2 marker")
	if err != nil || string(magic) != "ID3" {
		return types.FrameHeader{}, &types.NotFoundError{Marker: "ID3"}
	}

	var buf [types.HeaderSize]byte
	if err := sr.ReadAt(buf[:], 0, "ID3v2 header"); err != nil {
		return types.FrameHeader{}, &types.ParseError{
			Stage:  "header",
			Reason: "truncated header",
			Err:    err,
		}
	}

	flags := binutil.DecodeFlags(buf[5], binutil.MSBFirst)
	header := types.FrameHeader{
		Major:    buf[3],
		Revision: buf[4],
		Flags: types.HeaderFlags{
			Unsynchronization: flags[0],
			ExtendedHeader:    flags[1],
			Experimental:      flags[2],
		},
		Size: binutil.DecodeSynchsafe([4]byte(buf[6:10])),
	}

	// Only ID3v2.3 and ID3v2.4 frame layouts are understood
	if header.Major != 3 && header.Major != 4 {
		return header, &types.UnsupportedVersionError{Major: header.Major, Revision: header.Revision}
	}
	// Bit 4 is undefined before ID3v2.4
	header.Flags.Footer = header.Major == 4 && flags[3]

	if header.TagEnd() > sr.Size() {
		return header, &types.ParseError{
			Stage:  "header",
			Offset: 6,
			Reason: fmt.Sprintf("declared tag size %d exceeds buffer of %d bytes", header.Size, sr.Size()),
		}
	}

	return header, nil
}

// skipExtendedHeader returns the offset of the first frame.
//
// ID3v2.3 stores a plain size that excludes its own four bytes; ID3v2.4
// stores a synchsafe size that includes them.
func skipExtendedHeader(tag *binutil.SafeReader, header types.FrameHeader) (int64, error) {
	offset := int64(types.HeaderSize)
	if !header.Flags.ExtendedHeader {
		return offset, nil
	}

	raw, err := binutil.Read[uint32](tag, offset, "extended header size")
	if err != nil {
		return 0, &types.ParseError{Stage: "extended header", Offset: offset, Reason: "truncated", Err: err}
	}

	var extent int64
	if header.Major == 4 {
		extent = int64(binutil.SynchsafeValue(raw))
		if extent < 6 {
			return 0, &types.ParseError{
				Stage:  "extended header",
				Offset: offset,
				Reason: fmt.Sprintf("size %d below minimum of 6", extent),
			}
		}
	} else {
		extent = 4 + int64(raw)
	}

	if offset+extent > tag.Size() {
		return 0, &types.ParseError{
			Stage:  "extended header",
			Offset: offset,
			Reason: fmt.Sprintf("size %d overruns tag", extent),
		}
	}

	return offset + extent, nil
}
