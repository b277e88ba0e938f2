// Package id3v2 reads ID3v2.3 and ID3v2.4 tags from the start of a buffer.
package id3v2

import (
	"fmt"

	binutil "github.com/simonhull/id3tags/internal/binary"
	"github.com/simonhull/id3tags/internal/registry"
	"github.com/simonhull/id3tags/internal/types"
)

// parser implements registry.TagParser
type parser struct{}

func (p *parser) Parse(data []byte, opts types.ParseOptions) (types.Tag, error) {
	tag, err := Parse(data, opts)
	if err != nil {
		return nil, err
	}
	return tag, nil
}

// Parse decodes the ID3v2 tag at the start of data.
//
// Frames are returned in stream order. Iteration stops at the end of the
// declared tag area or at the first padding byte. Frames the parser cannot
// interpret are skipped with a warning, or fail the parse when
// opts.FramePolicy is types.FailUnsupported. Decoded frames never alias data.
func Parse(data []byte, opts types.ParseOptions) (*types.FrameTag, error) {
	sr := binutil.NewSafeReader(data)

	header, err := parseHeader(sr)
	if err != nil {
		return nil, err
	}

	// Every frame read is bounded by the declared tag area
	area, err := sr.Sub(0, int(header.TagEnd()), "ID3v2 tag")
	if err != nil {
		return nil, &types.ParseError{Stage: "header", Reason: "tag area", Err: err}
	}

	offset, err := skipExtendedHeader(area, header)
	if err != nil {
		return nil, err
	}

	tag := &types.FrameTag{Header: header}
	tagEnd := header.TagEnd()

	for offset < tagEnd {
		first, err := area.Slice(offset, 1, "frame id")
		if err != nil {
			return nil, err
		}
		// Padding
		if first[0] == 0 {
			break
		}

		raw, err := readFrame(area, header.Major, offset)
		if err != nil {
			return nil, err
		}
		offset = raw.end

		frame := raw.frame
		if reason := unsupportedReason(frame, header.Major); reason != "" {
			if opts.FramePolicy == types.FailUnsupported {
				return nil, &types.UnsupportedFrameError{ID: frame.ID, Offset: frame.Offset, Reason: reason}
			}
			if !opts.IgnoreWarnings {
				tag.Warnings = append(tag.Warnings, types.Warning{
					Stage:   "frame",
					Offset:  frame.Offset,
					Message: fmt.Sprintf("skipped frame %s: %s", frame.ID, reason),
				})
			}
			continue
		}

		body, err := stripFormatPrefix(frame, header.Major, raw.body)
		if err != nil {
			return nil, err
		}
		if err := decodeBody(&frame, body); err != nil {
			return nil, fmt.Errorf("frame %s at offset %d: %w", frame.ID, frame.Offset, err)
		}

		tag.Frames = append(tag.Frames, frame)
	}

	return tag, nil
}

func init() {
	registry.Register(types.KindFrame, &parser{})
}
