package types

// TagKind identifies one of the two tag containers.
type TagKind int

const (
	// KindLegacy is the ID3v1 trailer.
	KindLegacy TagKind = iota
	// KindFrame is the ID3v2 prefix.
	KindFrame
)

func (k TagKind) String() string {
	switch k {
	case KindLegacy:
		return "ID3v1"
	case KindFrame:
		return "ID3v2"
	default:
		return "unknown"
	}
}

// Tag is implemented by the result of each tag parser.
type Tag interface {
	Kind() TagKind
}

// Kind implements Tag.
func (*LegacyTag) Kind() TagKind { return KindLegacy }

// Kind implements Tag.
func (*FrameTag) Kind() TagKind { return KindFrame }

// Result holds the tags found in one buffer. Either field may be nil
// independently of the other.
type Result struct {
	Legacy     *LegacyTag `json:"legacy" yaml:"legacy"`
	FrameBased *FrameTag  `json:"frame_based" yaml:"frame_based"`
}

// Empty reports whether neither tag was found.
func (r *Result) Empty() bool {
	return r.Legacy == nil && r.FrameBased == nil
}

// FramePolicy decides what happens to frames the parser cannot interpret.
type FramePolicy int

const (
	// SkipUnsupported steps over the frame using its declared size and
	// records a Warning.
	SkipUnsupported FramePolicy = iota

	// FailUnsupported aborts the tag with an UnsupportedFrameError.
	FailUnsupported
)

// ParseOptions is the configuration handed to each tag parser.
type ParseOptions struct {
	FramePolicy    FramePolicy
	IgnoreWarnings bool
}
