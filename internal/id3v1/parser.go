// Package id3v1 reads the fixed 128-byte ID3v1 trailer.
package id3v1

import (
	"strconv"

	"github.com/simonhull/id3tags/internal/registry"
	"github.com/simonhull/id3tags/internal/text"
	"github.com/simonhull/id3tags/internal/types"
)

// Field layout relative to the start of the trailer.
const (
	titleOff   = 3
	artistOff  = 33
	albumOff   = 63
	yearOff    = 93
	commentOff = 97
	zeroByte   = 125
	trackByte  = 126
	genreByte  = 127

	fieldLen = 30
	yearLen  = 4
)

// parser implements registry.TagParser
type parser struct{}

func (p *parser) Parse(data []byte, _ types.ParseOptions) (types.Tag, error) {
	tag, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return tag, nil
}

// Parse decodes the ID3v1 tag in the last 128 bytes of data.
//
// String fields are returned untrimmed; see LegacyTag.Trimmed. When byte 125
// is zero and byte 126 is not, byte 126 is the ID3v1.1 track number and the
// comment is 28 bytes. Otherwise the comment spans all 30 bytes.
func Parse(data []byte) (*types.LegacyTag, error) {
	if len(data) < types.LegacySize {
		return nil, &types.NotFoundError{Marker: "TAG", Reason: "buffer shorter than 128 bytes"}
	}

	start := len(data) - types.LegacySize
	raw := data[start:]
	if string(raw[:3]) != "TAG" {
		return nil, &types.NotFoundError{Marker: "TAG"}
	}

	year, ok := parseYear(raw[yearOff : yearOff+yearLen])
	if !ok {
		return nil, &types.ParseError{
			Stage:  "legacy",
			Offset: int64(start + yearOff),
			Reason: "year is not a number: " + strconv.Quote(latin1(raw[yearOff:yearOff+yearLen])),
		}
	}

	tag := &types.LegacyTag{
		Title:  latin1(raw[titleOff : titleOff+fieldLen]),
		Artist: latin1(raw[artistOff : artistOff+fieldLen]),
		Album:  latin1(raw[albumOff : albumOff+fieldLen]),
		Year:   year,
		Genre:  raw[genreByte],
	}

	if raw[zeroByte] == 0 && raw[trackByte] != 0 {
		tag.Track = int(raw[trackByte])
		tag.Comment = latin1(raw[commentOff:zeroByte])
	} else {
		tag.Comment = latin1(raw[commentOff : commentOff+fieldLen])
	}

	return tag, nil
}

// parseYear accepts exactly four ASCII digits.
func parseYear(b []byte) (int, bool) {
	year := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		year = year*10 + int(c-'0')
	}
	return year, true
}

// latin1 decodes a fixed-width field. ISO-8859-1 maps every byte, so the
// error is impossible.
func latin1(b []byte) string {
	s, _ := text.Decode(b, types.EncodingISO88591)
	return s
}

// init registers the ID3v1 parser
func init() {
	registry.Register(types.KindLegacy, &parser{})
}
