package id3tags

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	_ "github.com/simonhull/id3tags/internal/id3v1" // Register ID3v1 parser
	_ "github.com/simonhull/id3tags/internal/id3v2" // Register ID3v2 parser
	"github.com/simonhull/id3tags/internal/registry"
	"github.com/simonhull/id3tags/internal/types"
)

// stages names each tag container in wrapped errors.
var stages = map[types.TagKind]string{
	types.KindLegacy: "legacy tag",
	types.KindFrame:  "frame tag",
}

// Extract reads both tag containers from data.
//
// A container that is absent leaves its Result field nil. Any other failure
// from either parser fails the whole extraction, so a malformed ID3v2 tag
// is an error even when a valid ID3v1 tag was found. The returned error
// wraps the parser's typed error; use errors.As to inspect it.
//
// data is only read, and the Result does not reference it.
//
// Example:
//
//	res, err := id3tags.Extract(data)
//	if err != nil {
//		return err
//	}
//	if res.Empty() {
//		fmt.Println("no tags")
//	}
func Extract(data []byte, opts ...Option) (*Result, error) {
	return extract(data, newOptions(opts))
}

func extract(data []byte, options *extractOptions) (*Result, error) {
	po := options.parseOptions()
	res := &Result{}

	for _, kind := range registry.Kinds() {
		if !options.enabled(kind) {
			continue
		}

		tag, err := registry.Get(kind).Parse(data, po)
		if err != nil {
			if types.IsNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("%s: %w", stages[kind], err)
		}

		switch t := tag.(type) {
		case *types.LegacyTag:
			res.Legacy = t
		case *types.FrameTag:
			res.FrameBased = t
		}
	}

	return res, nil
}

// ExtractFile reads the file at path and extracts its tags.
//
// Failures to read the file are returned as *IOError.
//
// Example:
//
//	res, err := id3tags.ExtractFile("song.mp3", id3tags.WithStrictFrames())
//	if err != nil {
//		return err
//	}
func ExtractFile(path string, opts ...Option) (*Result, error) {
	return extractFile(path, newOptions(opts))
}

func extractFile(path string, options *extractOptions) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}

	res, err := extract(data, options)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

// ExtractContext is ExtractFile with a cancellation check before the file
// is read.
//
//	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	defer cancel()
//
//	res, err := id3tags.ExtractContext(ctx, "song.mp3")
func ExtractContext(ctx context.Context, path string, opts ...Option) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ExtractFile(path, opts...)
}

// ExtractMany extracts tags from several files concurrently.
//
// At most WithConcurrency files (default runtime.NumCPU()) are read at
// once. Results are returned in the same order as paths. The first failure
// cancels the remaining work and is returned with a nil slice.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	results, err := id3tags.ExtractMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for i, res := range results {
//		fmt.Printf("%s: %s\n", paths[i], res.FrameBased.Text("TIT2"))
//	}
func ExtractMany(ctx context.Context, paths []string, opts ...Option) ([]*Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	options := newOptions(opts)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(options.concurrency)

	results := make([]*Result, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			// Check for cancellation
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			res, err := extractFile(path, options)
			if err != nil {
				return err
			}

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
