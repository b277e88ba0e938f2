package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/id3tags"
)

// newFramesCmd prints the frame layout of ID3v2 tags, for checking what the
// parser actually reads from a file.
func newFramesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frames FILE...",
		Short: "Dump the ID3v2 frame layout (offsets, sizes, flags)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			opts := append(cfg.ExtractOptions(), id3tags.WithoutLegacy())

			out := cmd.OutOrStdout()
			for _, path := range args {
				res, err := id3tags.ExtractContext(cmd.Context(), path, opts...)
				if err != nil {
					return err
				}
				dumpFrames(out, path, res.FrameBased)
			}
			return nil
		},
	}
}

func dumpFrames(w io.Writer, path string, tag *id3tags.FrameTag) {
	fmt.Fprintf(w, "%s\n", path)
	if tag == nil {
		fmt.Fprintln(w, "  no ID3v2 tag")
		return
	}

	h := tag.Header
	fmt.Fprintf(w, "  ID3v%s size=%d end=%d flags=%s\n", tag.Version(), h.Size, h.TagEnd(), headerFlags(h.Flags))
	for _, f := range tag.Frames {
		fmt.Fprintf(w, "  [%6d] %s size=%-6d status=%s format=%s %s\n",
			f.Offset, f.ID, f.Size, bits(f.StatusFlags), bits(f.FormatFlags), f.Category)
	}
	for _, warn := range tag.Warnings {
		fmt.Fprintf(w, "  ! %s\n", warn)
	}
}

func headerFlags(f id3tags.HeaderFlags) string {
	var set []string
	if f.Unsynchronization {
		set = append(set, "unsync")
	}
	if f.ExtendedHeader {
		set = append(set, "extended")
	}
	if f.Experimental {
		set = append(set, "experimental")
	}
	if f.Footer {
		set = append(set, "footer")
	}
	if len(set) == 0 {
		return "-"
	}
	return strings.Join(set, ",")
}

// bits prints decoded flags most significant bit first.
func bits(flags [8]bool) string {
	var b strings.Builder
	for _, set := range flags {
		if set {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
