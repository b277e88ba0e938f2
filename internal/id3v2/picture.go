package id3v2

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"

	"github.com/simonhull/id3tags/internal/text"
	"github.com/simonhull/id3tags/internal/types"
)

var (
	errAPICTooShort    = errors.New("APIC frame too short")
	errAPICNoMIMETerm  = errors.New("APIC MIME type not null-terminated")
	errAPICTruncated   = errors.New("APIC frame truncated after MIME type")
	errAPICNoImageData = errors.New("APIC frame has no image data")
)

// parseAPICFrame parses an APIC (Attached Picture) frame.
// Format:
//
//	[1 byte]              Text encoding
//	[null-terminated]     MIME type
//	[1 byte]              Picture type
//	[null-terminated]     Description
//	[remaining]           Picture data
func parseAPICFrame(data []byte) (types.Artwork, error) {
	if len(data) < 4 {
		return types.Artwork{}, apicError(errAPICTooShort)
	}

	encoding := types.Encoding(data[0])
	if !encoding.Valid() {
		return types.Artwork{}, &types.UnsupportedEncodingError{Encoding: data[0]}
	}
	pos := 1

	// MIME type is always ISO-8859-1
	mimeEnd := bytes.IndexByte(data[pos:], 0)
	if mimeEnd < 0 {
		return types.Artwork{}, apicError(errAPICNoMIMETerm)
	}
	mimeType := latin1(data[pos : pos+mimeEnd])
	pos += mimeEnd + 1

	// Legacy MIME type markers
	switch strings.ToUpper(mimeType) {
	case "JPG", "JPEG":
		mimeType = "image/jpeg"
	case "PNG":
		mimeType = "image/png"
	}

	if pos >= len(data) {
		return types.Artwork{}, apicError(errAPICTruncated)
	}

	pictureType := data[pos]
	pos++

	description := ""
	desc, rest, found := text.Cut(data[pos:], encoding)
	if found {
		d, err := text.Decode(desc, encoding)
		if err != nil {
			return types.Artwork{}, err
		}
		description = d
		pos = len(data) - len(rest)
	}
	// Without a terminator the rest is image data; some encoders skip it

	if pos >= len(data) {
		return types.Artwork{}, apicError(errAPICNoImageData)
	}

	imageData := bytes.Clone(data[pos:])

	// Magic bytes win over the declared type, except for "-->" links
	if mimeType != "-->" {
		if detected := sniffImageType(imageData); detected != "" {
			mimeType = detected
		}
	}

	width, height := imageDimensions(imageData, mimeType)

	return types.Artwork{
		Type:        types.ArtworkType(pictureType),
		MIMEType:    mimeType,
		Description: description,
		Data:        imageData,
		Width:       width,
		Height:      height,
	}, nil
}

func apicError(err error) error {
	return &types.ParseError{Stage: "frame", Reason: "APIC", Err: err}
}

// imageSignatures maps leading magic bytes to a MIME type.
var imageSignatures = []struct {
	magic string
	mime  string
}{
	{"\xFF\xD8\xFF", "image/jpeg"},
	{"\x89PNG\r\n\x1A\n", "image/png"},
	{"GIF87a", "image/gif"},
	{"GIF89a", "image/gif"},
	{"BM", "image/bmp"},
}

// sniffImageType returns the MIME type implied by the image's magic bytes,
// or "" when nothing matches.
func sniffImageType(data []byte) string {
	for _, sig := range imageSignatures {
		if bytes.HasPrefix(data, []byte(sig.magic)) {
			return sig.mime
		}
	}
	if len(data) >= 12 && string(data[:4]) == "RIFF" && string(data[8:12]) == "WEBP" {
		return "image/webp"
	}
	return ""
}

// imageDimensions reads width and height from the image header, or 0, 0
// when the format is not understood.
func imageDimensions(data []byte, mimeType string) (width, height int) {
	switch mimeType {
	case "image/jpeg":
		return jpegDimensions(data)
	case "image/png":
		return pngDimensions(data)
	}
	return 0, 0
}

// jpegDimensions walks the marker segments after SOI until the first
// start-of-frame segment. Segments are skipped by their declared length, so
// markers inside APPn payloads such as EXIF thumbnails are never read.
func jpegDimensions(data []byte) (width, height int) {
	if len(data) < 4 || data[0] != 0xFF || data[1] != 0xD8 {
		return 0, 0
	}

	pos := 2
	for pos+4 <= len(data) {
		if data[pos] != 0xFF {
			return 0, 0
		}
		marker := data[pos+1]
		switch {
		case marker == 0xFF: // fill byte
			pos++
			continue
		case marker == 0x01, marker >= 0xD0 && marker <= 0xD7: // no payload
			pos += 2
			continue
		case marker == 0xD9, marker == 0xDA: // EOI or scan data before any frame
			return 0, 0
		}

		length := int(binary.BigEndian.Uint16(data[pos+2:]))
		if length < 2 {
			return 0, 0
		}
		if isStartOfFrame(marker) {
			// [length 2][precision 1][height 2][width 2]
			if pos+9 > len(data) {
				return 0, 0
			}
			height = int(binary.BigEndian.Uint16(data[pos+5:]))
			width = int(binary.BigEndian.Uint16(data[pos+7:]))
			return width, height
		}
		pos += 2 + length
	}
	return 0, 0
}

// isStartOfFrame reports whether marker is one of SOF0-SOF15. C4, C8 and CC
// share the range but are DHT, JPG and DAC.
func isStartOfFrame(marker byte) bool {
	if marker < 0xC0 || marker > 0xCF {
		return false
	}
	return marker != 0xC4 && marker != 0xC8 && marker != 0xCC
}

// pngDimensions reads the IHDR chunk, which must directly follow the
// signature.
func pngDimensions(data []byte) (width, height int) {
	if len(data) < 24 || sniffImageType(data) != "image/png" || string(data[12:16]) != "IHDR" {
		return 0, 0
	}
	return int(binary.BigEndian.Uint32(data[16:])), int(binary.BigEndian.Uint32(data[20:]))
}
