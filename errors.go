package id3tags

import (
	"github.com/simonhull/id3tags/internal/types"
)

// NotFoundError is an alias to types.NotFoundError.
// Extract never returns it; an absent container is a nil Result field.
type NotFoundError = types.NotFoundError

// ParseError is an alias to types.ParseError.
type ParseError = types.ParseError

// UnsupportedEncodingError is an alias to types.UnsupportedEncodingError.
type UnsupportedEncodingError = types.UnsupportedEncodingError

// UnsupportedVersionError is an alias to types.UnsupportedVersionError.
type UnsupportedVersionError = types.UnsupportedVersionError

// UnsupportedFrameError is an alias to types.UnsupportedFrameError.
type UnsupportedFrameError = types.UnsupportedFrameError

// DecodeError is an alias to types.DecodeError.
type DecodeError = types.DecodeError

// IOError is an alias to types.IOError.
type IOError = types.IOError

// OutOfBoundsError is an alias to types.OutOfBoundsError.
type OutOfBoundsError = types.OutOfBoundsError

// Warning is an alias to types.Warning.
type Warning = types.Warning

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	return types.IsNotFound(err)
}

// ErrorKind names the failure category of err: "parse", "decode",
// "unsupported_encoding", "unsupported_version", "unsupported_frame",
// "io", "not_found", or "internal". It returns "" for a nil error.
func ErrorKind(err error) string {
	return types.Kind(err)
}
