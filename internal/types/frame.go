package types

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

// HeaderSize is the length of the ID3v2 tag header and of a v2.3/v2.4 frame header.
const HeaderSize = 10

// HeaderFlags are the named bits of the ID3v2 header flag byte.
type HeaderFlags struct {
	Unsynchronization bool `json:"unsynchronization" yaml:"unsynchronization"`
	ExtendedHeader    bool `json:"extended_header" yaml:"extended_header"`
	Experimental      bool `json:"experimental" yaml:"experimental"`
	Footer            bool `json:"footer" yaml:"footer"` // ID3v2.4 only
}

// FrameHeader is the 10-byte header that opens an ID3v2 tag.
type FrameHeader struct {
	Major    byte        `json:"major" yaml:"major"`
	Revision byte        `json:"revision" yaml:"revision"`
	Flags    HeaderFlags `json:"flags" yaml:"flags"`

	// Size excludes the 10-byte header itself.
	Size uint32 `json:"size" yaml:"size"`
}

// TagEnd returns the buffer offset just past the declared tag area.
func (h FrameHeader) TagEnd() int64 {
	return HeaderSize + int64(h.Size)
}

// FrameCategory classifies a frame by the layout of its body.
type FrameCategory int

const (
	CategoryUnknown FrameCategory = iota
	CategoryText
	CategoryUserText
	CategoryURL
	CategoryUserURL
	CategoryComment
	CategoryPicture
	CategoryBinary
)

func (c FrameCategory) String() string {
	switch c {
	case CategoryText:
		return "text"
	case CategoryUserText:
		return "user text"
	case CategoryURL:
		return "url"
	case CategoryUserURL:
		return "user url"
	case CategoryComment:
		return "comment"
	case CategoryPicture:
		return "picture"
	case CategoryBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// MarshalText lets encoders print the category name.
func (c FrameCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// binaryFrames are v2.3/v2.4 identifiers whose bodies are kept as raw bytes.
var binaryFrames = map[string]bool{
	"AENC": true, "ASPI": true, "CHAP": true, "COMR": true, "CTOC": true,
	"ENCR": true, "EQU2": true, "EQUA": true, "ETCO": true, "GEOB": true,
	"GRID": true, "IPLS": true, "LINK": true, "MCDI": true, "MLLT": true,
	"OWNE": true, "PCNT": true, "POPM": true, "POSS": true, "PRIV": true,
	"RBUF": true, "RVA2": true, "RVAD": true, "RVRB": true, "SEEK": true,
	"SIGN": true, "SYLT": true, "SYTC": true, "UFID": true, "USER": true,
}

// CategoryOf returns the body layout for a frame identifier.
func CategoryOf(id string) FrameCategory {
	switch {
	case len(id) != 4:
		return CategoryUnknown
	case id == "TXXX":
		return CategoryUserText
	case id == "WXXX":
		return CategoryUserURL
	case id == "COMM", id == "USLT":
		return CategoryComment
	case id == "APIC":
		return CategoryPicture
	case id[0] == 'T':
		return CategoryText
	case id[0] == 'W':
		return CategoryURL
	case binaryFrames[id]:
		return CategoryBinary
	default:
		return CategoryUnknown
	}
}

// Frame is one decoded ID3v2 frame.
//
// Which payload fields are set depends on Category:
//
//	text       Text (values joined by NUL, see Values)
//	user text  Description, Text
//	url        Text
//	user url   Description, Text
//	comment    Language, Description, Text
//	picture    Picture
//	binary     Data
type Frame struct {
	ID       string        `json:"id" yaml:"id"`
	Category FrameCategory `json:"category" yaml:"category"`
	Size     uint32        `json:"size" yaml:"size"`
	Offset   int64         `json:"offset" yaml:"offset"`

	StatusFlags [8]bool `json:"-" yaml:"-"`
	FormatFlags [8]bool `json:"-" yaml:"-"`

	Encoding    Encoding `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	Text        string   `json:"text,omitempty" yaml:"text,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Language    string   `json:"language,omitempty" yaml:"language,omitempty"`
	Picture     *Artwork `json:"picture,omitempty" yaml:"picture,omitempty"`
	Data        []byte   `json:"-" yaml:"-"`
}

// Values splits a multi-value text payload (ID3v2.4 separates values with NUL).
func (f Frame) Values() []string {
	if f.Text == "" {
		return nil
	}
	return strings.Split(f.Text, "\x00")
}

// FrameTag is a parsed ID3v2 tag: its header and frames in stream order.
type FrameTag struct {
	Header   FrameHeader `json:"header" yaml:"header"`
	Frames   []Frame     `json:"frames" yaml:"frames"`
	Warnings []Warning   `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Version returns the tag version as "2.major.revision".
func (t *FrameTag) Version() string {
	return "2." + strconv.Itoa(int(t.Header.Major)) + "." + strconv.Itoa(int(t.Header.Revision))
}

// Lookup returns every frame with the given identifier, in stream order.
func (t *FrameTag) Lookup(id string) []Frame {
	var out []Frame
	for _, f := range t.Frames {
		if f.ID == id {
			out = append(out, f)
		}
	}
	return out
}

// Text returns the first value of the first frame with the given identifier.
func (t *FrameTag) Text(id string) string {
	i := slices.IndexFunc(t.Frames, func(f Frame) bool { return f.ID == id })
	if i < 0 {
		return ""
	}
	if values := t.Frames[i].Values(); len(values) > 0 {
		return values[0]
	}
	return ""
}

// Texts returns an iterator over the text-bearing frames in stream order,
// yielding each identifier with its values.
//
//	for id, values := range tag.Texts() {
//		fmt.Printf("%s: %v\n", id, values)
//	}
func (t *FrameTag) Texts() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, f := range t.Frames {
			switch f.Category {
			case CategoryText, CategoryUserText, CategoryURL, CategoryUserURL, CategoryComment:
			default:
				continue
			}
			if !yield(f.ID, f.Values()) {
				return
			}
		}
	}
}
