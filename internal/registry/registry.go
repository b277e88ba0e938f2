// Package registry holds the tag parsers known to the extraction facade.
package registry

import (
	"slices"

	"github.com/simonhull/id3tags/internal/types"
)

// TagParser is the interface every tag container parser implements.
type TagParser interface {
	// Parse decodes the tag from data. A missing container is reported as
	// *types.NotFoundError; every other error means the container is present
	// but cannot be used.
	Parse(data []byte, opts types.ParseOptions) (types.Tag, error)
}

// parsers maps tag kinds to their parsers.
var parsers = make(map[types.TagKind]TagParser)

// Register registers a parser for a tag kind.
// This is called by parser packages during initialization (init functions).
func Register(kind types.TagKind, parser TagParser) {
	parsers[kind] = parser
}

// Get returns the parser for a given kind.
// Returns nil if no parser is registered for the kind.
func Get(kind types.TagKind) TagParser {
	return parsers[kind]
}

// Kinds returns the registered kinds in ascending order.
func Kinds() []types.TagKind {
	kinds := make([]types.TagKind, 0, len(parsers))
	for k := range parsers {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}
