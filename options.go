package id3tags

import (
	"runtime"

	"github.com/simonhull/id3tags/internal/types"
)

// Option configures an extraction.
//
// Options use the functional options pattern:
//
//	res, err := id3tags.Extract(data,
//	    id3tags.WithStrictFrames(),
//	    id3tags.WithoutLegacy(),
//	)
type Option func(*extractOptions)

// extractOptions holds configuration for one extraction.
type extractOptions struct {
	strictFrames   bool // Fail on frames the parser cannot interpret
	ignoreWarnings bool // Drop skipped-frame warnings
	skipLegacy     bool
	skipFrameTag   bool
	concurrency    int // ExtractMany worker bound
}

// defaultOptions returns the default configuration.
func defaultOptions() *extractOptions {
	return &extractOptions{
		concurrency: runtime.NumCPU(),
	}
}

func newOptions(opts []Option) *extractOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// parseOptions converts the option set into what the tag parsers consume.
func (o *extractOptions) parseOptions() types.ParseOptions {
	po := types.ParseOptions{IgnoreWarnings: o.ignoreWarnings}
	if o.strictFrames {
		po.FramePolicy = types.FailUnsupported
	}
	return po
}

// enabled reports whether the parser for kind should run.
func (o *extractOptions) enabled(kind types.TagKind) bool {
	switch kind {
	case types.KindLegacy:
		return !o.skipLegacy
	case types.KindFrame:
		return !o.skipFrameTag
	default:
		return true
	}
}

// WithStrictFrames fails the extraction on frames the parser cannot
// interpret.
//
// By default, unknown frames and frames with compressed or encrypted
// bodies are stepped over using their declared size and reported in
// FrameTag.Warnings. With this option they fail with UnsupportedFrameError.
//
// Example:
//
//	res, err := id3tags.Extract(data, id3tags.WithStrictFrames())
//	var uf *id3tags.UnsupportedFrameError
//	if errors.As(err, &uf) {
//		log.Printf("cannot read frame %s", uf.ID)
//	}
func WithStrictFrames() Option {
	return func(o *extractOptions) {
		o.strictFrames = true
	}
}

// WithIgnoreWarnings drops warnings about skipped frames.
//
// FrameTag.Warnings will always be empty.
func WithIgnoreWarnings() Option {
	return func(o *extractOptions) {
		o.ignoreWarnings = true
	}
}

// WithoutLegacy skips the ID3v1 parser. Result.Legacy stays nil.
func WithoutLegacy() Option {
	return func(o *extractOptions) {
		o.skipLegacy = true
	}
}

// WithoutFrameTag skips the ID3v2 parser. Result.FrameBased stays nil.
func WithoutFrameTag() Option {
	return func(o *extractOptions) {
		o.skipFrameTag = true
	}
}

// WithConcurrency bounds the number of files ExtractMany reads at once.
//
// Values below 1 are ignored. Default is runtime.NumCPU().
func WithConcurrency(n int) Option {
	return func(o *extractOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}
