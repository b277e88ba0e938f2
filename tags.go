package id3tags

import (
	"github.com/simonhull/id3tags/internal/types"
)

// Result is an alias to types.Result.
type Result = types.Result

// LegacyTag is an alias to types.LegacyTag.
type LegacyTag = types.LegacyTag

// FrameTag is an alias to types.FrameTag.
type FrameTag = types.FrameTag

// FrameHeader is an alias to types.FrameHeader.
type FrameHeader = types.FrameHeader

// HeaderFlags is an alias to types.HeaderFlags.
type HeaderFlags = types.HeaderFlags

// Frame is an alias to types.Frame.
type Frame = types.Frame

// FrameCategory is an alias to types.FrameCategory.
type FrameCategory = types.FrameCategory

// Re-export frame categories
const (
	CategoryUnknown  = types.CategoryUnknown
	CategoryText     = types.CategoryText
	CategoryUserText = types.CategoryUserText
	CategoryURL      = types.CategoryURL
	CategoryUserURL  = types.CategoryUserURL
	CategoryComment  = types.CategoryComment
	CategoryPicture  = types.CategoryPicture
	CategoryBinary   = types.CategoryBinary
)

// Encoding is an alias to types.Encoding.
type Encoding = types.Encoding

// Re-export text encodings
const (
	EncodingISO88591 = types.EncodingISO88591
	EncodingUTF16    = types.EncodingUTF16
	EncodingUTF16BE  = types.EncodingUTF16BE
	EncodingUTF8     = types.EncodingUTF8
)

// GenreName returns the ID3v1 genre name for code, or "" if unassigned.
func GenreName(code byte) string {
	return types.GenreName(code)
}
