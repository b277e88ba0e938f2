// Package render prints extraction results as styled text, YAML, or JSON.
package render

import (
	"fmt"
	"io"

	"github.com/simonhull/id3tags"
	"github.com/simonhull/id3tags/internal/config"
)

// Entry is the outcome of extracting one input.
type Entry struct {
	Path   string
	Result *id3tags.Result
	Err    error
}

// Renderer writes a batch of entries to w.
type Renderer interface {
	Render(w io.Writer, entries []Entry) error
}

// New returns the renderer for format. With trim set, legacy string fields
// are printed without their fixed-width padding.
func New(format string, trim bool) (Renderer, error) {
	switch format {
	case config.FormatText:
		return &textRenderer{trim: trim}, nil
	case config.FormatYAML:
		return &yamlRenderer{trim: trim}, nil
	case config.FormatJSON:
		return &jsonRenderer{trim: trim}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// document is the serialized form of an Entry.
type document struct {
	Path       string             `json:"path" yaml:"path"`
	Legacy     *id3tags.LegacyTag `json:"legacy,omitempty" yaml:"legacy,omitempty"`
	FrameBased *id3tags.FrameTag  `json:"frame_based,omitempty" yaml:"frame_based,omitempty"`
	Error      string             `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorKind  string             `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
}

func newDocument(e Entry, trim bool) document {
	doc := document{Path: e.Path}
	if e.Err != nil {
		doc.Error = e.Err.Error()
		doc.ErrorKind = id3tags.ErrorKind(e.Err)
		return doc
	}
	if e.Result == nil {
		return doc
	}

	doc.FrameBased = e.Result.FrameBased
	if legacy := e.Result.Legacy; legacy != nil {
		if trim {
			t := legacy.Trimmed()
			legacy = &t
		}
		doc.Legacy = legacy
	}
	return doc
}

func documents(entries []Entry, trim bool) []document {
	docs := make([]document, len(entries))
	for i, e := range entries {
		docs[i] = newDocument(e, trim)
	}
	return docs
}
