package types

import (
	"errors"
	"fmt"
)

// OutOfBoundsError is returned when a read would leave the buffer or container.
type OutOfBoundsError struct {
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset >= e.Size || e.Offset < 0 {
		return fmt.Sprintf("offset %d out of bounds (size: %d) while reading %s",
			e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("read of %d bytes at offset %d would exceed size %d while reading %s",
		e.Length, e.Offset, e.Size, e.What)
}

// NotFoundError is returned when a tag container is absent from the buffer.
// The extraction facade turns it into an absent result.
type NotFoundError struct {
	Marker string // "TAG" or "ID3"
	Reason string
}

func (e *NotFoundError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s tag not found: %s", e.Marker, e.Reason)
	}
	return fmt.Sprintf("%s tag not found", e.Marker)
}

// ParseError is returned when a container was found but its structure is invalid.
type ParseError struct {
	Stage  string // "legacy", "header", "extended header", "frame"
	Reason string
	Err    error
	Offset int64
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse error in %s at offset %d: %s", e.Stage, e.Offset, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnsupportedEncodingError is returned for a text encoding byte outside 0-3.
type UnsupportedEncodingError struct {
	Encoding byte
}

func (e *UnsupportedEncodingError) Error() string {
	return fmt.Sprintf("unsupported text encoding: %d", e.Encoding)
}

// UnsupportedVersionError is returned for ID3v2 major versions other than 3 and 4.
type UnsupportedVersionError struct {
	Major    byte
	Revision byte
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported ID3v2 version: 2.%d.%d", e.Major, e.Revision)
}

// UnsupportedFrameError is returned in strict mode for frames the parser
// cannot interpret (unknown identifiers, compressed or encrypted bodies).
type UnsupportedFrameError struct {
	ID     string
	Reason string
	Offset int64
}

func (e *UnsupportedFrameError) Error() string {
	return fmt.Sprintf("unsupported frame %s at offset %d: %s", e.ID, e.Offset, e.Reason)
}

// DecodeError is returned when text bytes are invalid for their declared encoding.
type DecodeError struct {
	Err      error
	Encoding Encoding
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s text: %v", e.Encoding, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IOError is returned when the file holding the tag data cannot be read.
type IOError struct {
	Err  error
	Path string
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err (or anything it wraps) is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Kind names the failure category of err for callers that report it
// (the HTTP collaborator, the CLI). Unknown errors yield "internal".
func Kind(err error) string {
	var (
		nf  *NotFoundError
		pe  *ParseError
		ue  *UnsupportedEncodingError
		uv  *UnsupportedVersionError
		uf  *UnsupportedFrameError
		de  *DecodeError
		ioe *IOError
		oob *OutOfBoundsError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &nf):
		return "not_found"
	case errors.As(err, &ue):
		return "unsupported_encoding"
	case errors.As(err, &uv):
		return "unsupported_version"
	case errors.As(err, &uf):
		return "unsupported_frame"
	case errors.As(err, &de):
		return "decode"
	case errors.As(err, &pe), errors.As(err, &oob):
		return "parse"
	case errors.As(err, &ioe):
		return "io"
	default:
		return "internal"
	}
}

// Warning represents a non-fatal issue encountered during parsing.
//
// Frames that are skipped instead of failing the whole tag leave a Warning
// on the FrameTag.
type Warning struct {
	// Stage where the warning occurred
	Stage string `json:"stage" yaml:"stage"` // "frame", "header"

	// Warning message
	Message string `json:"message" yaml:"message"`

	// Buffer offset where the issue occurred (0 if not applicable)
	Offset int64 `json:"offset,omitempty" yaml:"offset,omitempty"`
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
