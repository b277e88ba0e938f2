// Package id3tags extracts ID3v1 and ID3v2 tags from MP3 data.
//
// Two tag containers can appear in one file: the fixed 128-byte ID3v1
// trailer at the end and the variable-length ID3v2 tag at the start. Extract
// runs a parser for each over the same buffer and reports whichever it finds.
//
// # Quick Start
//
//	res, err := id3tags.ExtractFile("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if res.FrameBased != nil {
//		fmt.Println(res.FrameBased.Text("TIT2"))
//	}
//	if res.Legacy != nil {
//		fmt.Println(res.Legacy.Trimmed().Title)
//	}
//
// # Absent and Broken Tags
//
// A missing container is not an error: the matching Result field stays nil.
// A container that is present but malformed fails the whole extraction,
// even when the other container parsed cleanly.
//
//	_, err := id3tags.Extract(data)
//	var pe *id3tags.ParseError
//	if errors.As(err, &pe) {
//		log.Printf("broken tag at offset %d: %s", pe.Offset, pe.Reason)
//	}
//
// # Frames
//
// ID3v2 frames are kept in stream order. Text frames may hold several
// values separated by NUL:
//
//	for id, values := range res.FrameBased.Texts() {
//		fmt.Printf("%s: %v\n", id, values)
//	}
//
// Frames the parser cannot interpret (unknown identifiers, compressed or
// encrypted bodies) are skipped and noted in FrameTag.Warnings. Pass
// WithStrictFrames to fail instead.
//
// # Batch Extraction
//
//	results, err := id3tags.ExtractMany(ctx, paths, id3tags.WithConcurrency(8))
//
// The parsers never log, never retain the input buffer, and hold no shared
// state, so Extract is safe for concurrent use.
package id3tags
