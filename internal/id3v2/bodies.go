package id3v2

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/simonhull/id3tags/internal/text"
	"github.com/simonhull/id3tags/internal/types"
)

// decodeBody fills the payload fields of f from body according to f.Category.
// Decoded values never alias body.
func decodeBody(f *types.Frame, body []byte) error {
	switch f.Category {
	case types.CategoryText:
		return decodeTextFrame(f, body)
	case types.CategoryUserText:
		return decodeUserTextFrame(f, body)
	case types.CategoryURL:
		f.Text = latin1(trimNUL(body))
		return nil
	case types.CategoryUserURL:
		return decodeUserURLFrame(f, body)
	case types.CategoryComment:
		return decodeCommentFrame(f, body)
	case types.CategoryPicture:
		art, err := parseAPICFrame(body)
		if err != nil {
			return err
		}
		f.Encoding = types.Encoding(body[0])
		f.Picture = &art
		return nil
	case types.CategoryBinary:
		f.Data = bytes.Clone(body)
		return nil
	default:
		return fmt.Errorf("no decoder for frame %s", f.ID)
	}
}

// decodeTextFrame parses standard text frames (TIT2, TPE1, TALB, etc.)
// Format: [encoding][text][0 text...]
func decodeTextFrame(f *types.Frame, body []byte) error {
	f.Encoding = types.Encoding(body[0])
	values, err := text.DecodeList(body[1:], f.Encoding)
	if err != nil {
		return err
	}
	f.Text = strings.Join(values, "\x00")
	return nil
}

// decodeUserTextFrame parses custom text frames (TXXX)
// Format: [encoding][description\0][value]
func decodeUserTextFrame(f *types.Frame, body []byte) error {
	f.Encoding = types.Encoding(body[0])
	if !f.Encoding.Valid() {
		return &types.UnsupportedEncodingError{Encoding: body[0]}
	}

	desc, rest, _ := text.Cut(body[1:], f.Encoding)
	description, err := text.Decode(desc, f.Encoding)
	if err != nil {
		return err
	}
	values, err := text.DecodeList(rest, f.Encoding)
	if err != nil {
		return err
	}

	f.Description = description
	f.Text = strings.Join(values, "\x00")
	return nil
}

// decodeUserURLFrame parses custom URL frames (WXXX)
// Format: [encoding][description\0][url, always ISO-8859-1]
func decodeUserURLFrame(f *types.Frame, body []byte) error {
	f.Encoding = types.Encoding(body[0])
	if !f.Encoding.Valid() {
		return &types.UnsupportedEncodingError{Encoding: body[0]}
	}

	desc, rest, _ := text.Cut(body[1:], f.Encoding)
	description, err := text.Decode(desc, f.Encoding)
	if err != nil {
		return err
	}

	f.Description = description
	f.Text = latin1(trimNUL(rest))
	return nil
}

// decodeCommentFrame parses comment frames (COMM) and unsynchronised lyrics (USLT)
// Format: [encoding][language(3)][short description\0][text]
func decodeCommentFrame(f *types.Frame, body []byte) error {
	if len(body) < 4 {
		return &types.ParseError{
			Stage:  "frame",
			Offset: f.Offset,
			Reason: fmt.Sprintf("%s frame too short: %d bytes", f.ID, len(body)),
		}
	}

	f.Encoding = types.Encoding(body[0])
	if !f.Encoding.Valid() {
		return &types.UnsupportedEncodingError{Encoding: body[0]}
	}
	f.Language = latin1(body[1:4])

	desc, rest, found := text.Cut(body[4:], f.Encoding)
	if !found {
		// No terminator: treat everything as the comment text
		desc, rest = nil, body[4:]
	}

	description, err := text.Decode(desc, f.Encoding)
	if err != nil {
		return err
	}
	values, err := text.DecodeList(rest, f.Encoding)
	if err != nil {
		return err
	}

	f.Description = description
	f.Text = strings.Join(values, "\x00")
	return nil
}

func trimNUL(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}

// latin1 decodes ISO-8859-1 bytes, which cannot fail.
func latin1(b []byte) string {
	s, _ := text.Decode(b, types.EncodingISO88591)
	return s
}
