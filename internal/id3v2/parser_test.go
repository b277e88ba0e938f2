package id3v2

import (
	"errors"
	"strings"
	"testing"

	"github.com/simonhull/id3tags/internal/registry"
	"github.com/simonhull/id3tags/internal/types"
)

func TestParse_SingleTextFrame(t *testing.T) {
	// 300-byte buffer: header, one UTF-8 frame, zero fill
	data := make([]byte, 300)
	copy(data, []byte{'I', 'D', '3', 3, 0, 0, 0, 0, 0, 20})
	copy(data[10:], []byte{'T', 'I', 'T', '2', 0, 0, 0, 6, 0, 0, 3, 'H', 'e', 'l', 'l', 'o'})

	tag, err := Parse(data, types.ParseOptions{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if tag.Header.Major != 3 || tag.Header.Revision != 0 || tag.Header.Size != 20 {
		t.Errorf("header = %+v", tag.Header)
	}
	if len(tag.Frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(tag.Frames))
	}

	f := tag.Frames[0]
	if f.ID != "TIT2" || f.Size != 6 || f.Offset != 10 {
		t.Errorf("frame = %s size %d offset %d", f.ID, f.Size, f.Offset)
	}
	if f.Encoding != types.EncodingUTF8 {
		t.Errorf("encoding = %v, want UTF-8", f.Encoding)
	}
	if f.Text != "Hello" {
		t.Errorf("text = %q, want %q", f.Text, "Hello")
	}
}

func TestParse_NotFound(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short", []byte("ID")},
		{"wrong marker", []byte("TAG\x03\x00\x00\x00\x00\x00\x00")},
		{"lowercase", []byte("id3\x03\x00\x00\x00\x00\x00\x00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data, types.ParseOptions{})
			var nf *types.NotFoundError
			if !errors.As(err, &nf) {
				t.Fatalf("expected NotFoundError, got %v", err)
			}
		})
	}
}

func TestParse_HeaderErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want any
	}{
		{"truncated header", []byte("ID3\x03\x00"), &types.ParseError{}},
		{"declared size past buffer", []byte{'I', 'D', '3', 3, 0, 0, 0, 0, 1, 0}, &types.ParseError{}},
		{"version 2.2", []byte{'I', 'D', '3', 2, 0, 0, 0, 0, 0, 0}, &types.UnsupportedVersionError{}},
		{"version 2.5", []byte{'I', 'D', '3', 5, 0, 0, 0, 0, 0, 0}, &types.UnsupportedVersionError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data, types.ParseOptions{})
			if err == nil {
				t.Fatal("expected error")
			}
			switch tt.want.(type) {
			case *types.ParseError:
				var pe *types.ParseError
				if !errors.As(err, &pe) {
					t.Errorf("expected ParseError, got %T: %v", err, err)
				}
			case *types.UnsupportedVersionError:
				var ue *types.UnsupportedVersionError
				if !errors.As(err, &ue) {
					t.Errorf("expected UnsupportedVersionError, got %T: %v", err, err)
				}
			}
		})
	}
}

func TestParse_HeaderFlags(t *testing.T) {
	tests := []struct {
		name  string
		major byte
		want  types.HeaderFlags
	}{
		{"v4 footer", 4, types.HeaderFlags{Unsynchronization: true, Experimental: true, Footer: true}},
		{"v3 ignores bit 4", 3, types.HeaderFlags{Unsynchronization: true, Experimental: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tagBytes(tt.major, 0xB0, 4) // unsynchronization, experimental, bit 4
			tag, err := Parse(data, types.ParseOptions{})
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if tag.Header.Flags != tt.want {
				t.Errorf("flags = %+v, want %+v", tag.Header.Flags, tt.want)
			}
			if len(tag.Frames) != 0 {
				t.Errorf("expected no frames, got %d", len(tag.Frames))
			}
		})
	}
}

func TestParse_FrameSizeByVersion(t *testing.T) {
	// A 200-byte body: 0x000000C8 plain, 0x00000148 synchsafe
	text := make([]byte, 199)
	for i := range text {
		text[i] = 'a'
	}
	body := append([]byte{0}, text...)

	for _, major := range []byte{3, 4} {
		data := tagBytes(major, 0, 0, frameBytes(major, "TALB", 0, body))
		tag, err := Parse(data, types.ParseOptions{})
		if err != nil {
			t.Fatalf("v2.%d: Parse failed: %v", major, err)
		}
		if len(tag.Frames) != 1 || tag.Frames[0].Size != 200 || tag.Frames[0].Text != string(text) {
			t.Errorf("v2.%d: unexpected frames %+v", major, tag.Frames)
		}
	}

	// Read as v2.4 the same size bytes give 72, leaving garbage at the next frame boundary
	data := tagBytes(3, 0, 0, frameBytes(3, "TALB", 0, body))
	data[3] = 4
	_, err := Parse(data, types.ParseOptions{})
	var pe *types.ParseError
	if !errors.As(err, &pe) {
		t.Errorf("expected ParseError reading plain size as synchsafe, got %v", err)
	}
}

func TestParse_FrameOrderAndPadding(t *testing.T) {
	data := tagBytes(4, 0, 32,
		frameBytes(4, "TIT2", 0, textBody(0, "Title")),
		frameBytes(4, "TPE1", 0, textBody(3, "Artist")),
		frameBytes(4, "TALB", 0, textBody(0, "Album")),
	)

	tag, err := Parse(data, types.ParseOptions{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []string{"TIT2", "TPE1", "TALB"}
	if len(tag.Frames) != len(want) {
		t.Fatalf("expected %d frames, got %d", len(want), len(tag.Frames))
	}
	var prev int64 = -1
	for i, f := range tag.Frames {
		if f.ID != want[i] {
			t.Errorf("frame %d = %s, want %s", i, f.ID, want[i])
		}
		if f.Offset <= prev {
			t.Errorf("frame %d offset %d not after %d", i, f.Offset, prev)
		}
		prev = f.Offset
	}
	if got := tag.Text("TPE1"); got != "Artist" {
		t.Errorf("Text(TPE1) = %q", got)
	}
}

func TestParse_StructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "frame overruns tag",
			data: func() []byte {
				d := tagBytes(3, 0, 0, frameBytes(3, "TIT2", 0, textBody(0, "Title")))
				d[17] = 50 // frame size low byte
				return d
			}(),
		},
		{
			name: "zero-size frame",
			data: tagBytes(3, 0, 4, []byte{'T', 'I', 'T', '2', 0, 0, 0, 0, 0, 0}),
		},
		{
			name: "invalid identifier",
			data: tagBytes(3, 0, 0, frameBytes(3, "tit2", 0, textBody(0, "x"))),
		},
		{
			name: "truncated frame header",
			data: tagBytes(3, 0, 0, []byte{'T', 'I', 'T', '2', 0}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data, types.ParseOptions{})
			var pe *types.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ParseError, got %v", err)
			}
		})
	}
}

func TestParse_FrameBoundedByDeclaredSize(t *testing.T) {
	// The frame fits the buffer but not the declared tag area
	frame := frameBytes(3, "TIT2", 0, textBody(0, "Title"))
	data := tagBytes(3, 0, 0, frame)
	size := len(frame) - 2
	data[9] = byte(size)
	data = append(data, 0, 0, 0, 0)

	_, err := Parse(data, types.ParseOptions{})
	var pe *types.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestParse_UnsupportedFrames(t *testing.T) {
	data := tagBytes(3, 0, 0,
		frameBytes(3, "TIT2", 0, textBody(0, "Title")),
		frameBytes(3, "XYZ1", 0, []byte{1, 2, 3}),
		frameBytes(3, "TPE1", 0x80, []byte{0, 0, 0, 9, 'x'}), // compressed
		frameBytes(3, "TALB", 0, textBody(0, "Album")),
	)

	t.Run("skip", func(t *testing.T) {
		tag, err := Parse(data, types.ParseOptions{})
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if len(tag.Frames) != 2 || tag.Frames[0].ID != "TIT2" || tag.Frames[1].ID != "TALB" {
			t.Errorf("unexpected frames: %+v", tag.Frames)
		}
		if len(tag.Warnings) != 2 {
			t.Errorf("expected 2 warnings, got %v", tag.Warnings)
		}
	})

	t.Run("skip without warnings", func(t *testing.T) {
		tag, err := Parse(data, types.ParseOptions{IgnoreWarnings: true})
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if len(tag.Frames) != 2 || len(tag.Warnings) != 0 {
			t.Errorf("frames %d warnings %v", len(tag.Frames), tag.Warnings)
		}
	})

	t.Run("fail", func(t *testing.T) {
		_, err := Parse(data, types.ParseOptions{FramePolicy: types.FailUnsupported})
		var uf *types.UnsupportedFrameError
		if !errors.As(err, &uf) {
			t.Fatalf("expected UnsupportedFrameError, got %v", err)
		}
		if uf.ID != "XYZ1" {
			t.Errorf("ID = %s, want XYZ1", uf.ID)
		}
	})
}

func TestParse_UnsynchronisedFrame(t *testing.T) {
	// FF 00 stuffing would corrupt the text if decoded as-is
	data := tagBytes(4, 0, 0,
		frameBytes(4, "TIT2", 0x02, []byte{0, 'a', 0xFF, 0x00, 0xE0}),
		frameBytes(4, "TALB", 0, textBody(0, "Album")),
	)

	t.Run("skip", func(t *testing.T) {
		tag, err := Parse(data, types.ParseOptions{})
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if len(tag.Frames) != 1 || tag.Frames[0].ID != "TALB" {
			t.Errorf("unexpected frames: %+v", tag.Frames)
		}
		if len(tag.Warnings) != 1 || !strings.Contains(tag.Warnings[0].Message, "unsynchronised") {
			t.Errorf("unexpected warnings: %v", tag.Warnings)
		}
	})

	t.Run("fail", func(t *testing.T) {
		_, err := Parse(data, types.ParseOptions{FramePolicy: types.FailUnsupported})
		var uf *types.UnsupportedFrameError
		if !errors.As(err, &uf) {
			t.Fatalf("expected UnsupportedFrameError, got %v", err)
		}
		if uf.ID != "TIT2" {
			t.Errorf("ID = %s, want TIT2", uf.ID)
		}
	})

	t.Run("v3 has no such bit", func(t *testing.T) {
		v3 := tagBytes(3, 0, 0, frameBytes(3, "TIT2", 0x02, textBody(0, "Title")))
		tag, err := Parse(v3, types.ParseOptions{FramePolicy: types.FailUnsupported})
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if got := tag.Text("TIT2"); got != "Title" {
			t.Errorf("TIT2 = %q, want Title", got)
		}
	})
}

func TestParse_ExtendedHeader(t *testing.T) {
	title := frameBytes(3, "TIT2", 0, textBody(0, "Title"))

	t.Run("v2.3", func(t *testing.T) {
		ext := []byte{0, 0, 0, 6, 0, 0, 0, 0, 0, 0}
		data := tagBytes(3, 0x40, 0, ext, title)
		tag, err := Parse(data, types.ParseOptions{})
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if !tag.Header.Flags.ExtendedHeader || tag.Text("TIT2") != "Title" {
			t.Errorf("unexpected tag: %+v", tag)
		}
	})

	t.Run("v2.4", func(t *testing.T) {
		ext := []byte{0, 0, 0, 6, 1, 0}
		data := tagBytes(4, 0x40, 0, ext, frameBytes(4, "TIT2", 0, textBody(0, "Title")))
		tag, err := Parse(data, types.ParseOptions{})
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if tag.Frames[0].Offset != 16 {
			t.Errorf("first frame offset = %d, want 16", tag.Frames[0].Offset)
		}
	})

	t.Run("v2.4 below minimum", func(t *testing.T) {
		data := tagBytes(4, 0x40, 8, []byte{0, 0, 0, 2})
		_, err := Parse(data, types.ParseOptions{})
		var pe *types.ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("expected ParseError, got %v", err)
		}
	})

	t.Run("overruns tag", func(t *testing.T) {
		data := tagBytes(3, 0x40, 0, []byte{0, 0, 0, 0x7F})
		_, err := Parse(data, types.ParseOptions{})
		var pe *types.ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("expected ParseError, got %v", err)
		}
	})
}

func TestParse_FormatPrefixes(t *testing.T) {
	t.Run("v2.4 grouping and data length", func(t *testing.T) {
		body := append([]byte{0x42, 0, 0, 0, 6}, textBody(0, "Title")...)
		data := tagBytes(4, 0, 0, frameBytes(4, "TIT2", 0x41, body))
		tag, err := Parse(data, types.ParseOptions{})
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if got := tag.Text("TIT2"); got != "Title" {
			t.Errorf("Text = %q, want Title", got)
		}
	})

	t.Run("v2.3 grouping", func(t *testing.T) {
		body := append([]byte{0x42}, textBody(0, "Title")...)
		data := tagBytes(3, 0, 0, frameBytes(3, "TIT2", 0x20, body))
		tag, err := Parse(data, types.ParseOptions{})
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if got := tag.Text("TIT2"); got != "Title" {
			t.Errorf("Text = %q, want Title", got)
		}
	})

	t.Run("prefix consumes body", func(t *testing.T) {
		data := tagBytes(4, 0, 0, frameBytes(4, "TIT2", 0x01, []byte{0, 0, 0, 1}))
		_, err := Parse(data, types.ParseOptions{})
		var pe *types.ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("expected ParseError, got %v", err)
		}
	})
}

func TestParse_BodyErrorsAreWrapped(t *testing.T) {
	tests := []struct {
		name   string
		body   []byte
		target any
	}{
		{"bad encoding", []byte{7, 'x'}, &types.UnsupportedEncodingError{}},
		{"invalid utf-8", []byte{3, 0xFF, 0xFE, 0xFD}, &types.DecodeError{}},
		{"utf-16 without bom", []byte{1, 0, 'a'}, &types.DecodeError{}},
		{"utf-16 lone high surrogate", []byte{1, 0xFF, 0xFE, 0x00, 0xD8, 'a', 0}, &types.DecodeError{}},
		{"utf-16be lone low surrogate", []byte{2, 0xDC, 0x00, 0, 'a'}, &types.DecodeError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tagBytes(3, 0, 0, frameBytes(3, "TIT2", 0, tt.body))
			_, err := Parse(data, types.ParseOptions{})
			if err == nil {
				t.Fatal("expected error")
			}
			switch tt.target.(type) {
			case *types.UnsupportedEncodingError:
				var ue *types.UnsupportedEncodingError
				if !errors.As(err, &ue) {
					t.Errorf("expected UnsupportedEncodingError, got %v", err)
				}
			case *types.DecodeError:
				var de *types.DecodeError
				if !errors.As(err, &de) {
					t.Errorf("expected DecodeError, got %v", err)
				}
			}
		})
	}
}

func TestParse_DoesNotAliasInput(t *testing.T) {
	data := tagBytes(3, 0, 0,
		frameBytes(3, "TIT2", 0, textBody(0, "Title")),
		frameBytes(3, "MCDI", 0, []byte{1, 2, 3, 4}),
	)

	tag, err := Parse(data, types.ParseOptions{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	for i := range data {
		data[i] = 0xEE
	}

	if tag.Text("TIT2") != "Title" {
		t.Errorf("title changed after input mutation: %q", tag.Text("TIT2"))
	}
	mcdi := tag.Lookup("MCDI")
	if len(mcdi) != 1 || string(mcdi[0].Data) != "\x01\x02\x03\x04" {
		t.Errorf("binary data changed after input mutation: %v", mcdi)
	}
}

func TestRegistryParser(t *testing.T) {
	p := registry.Get(types.KindFrame)
	if p == nil {
		t.Fatal("frame parser not registered")
	}

	tag, err := p.Parse(tagBytes(4, 0, 0, frameBytes(4, "TIT2", 0, textBody(0, "x"))), types.ParseOptions{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if tag.Kind() != types.KindFrame {
		t.Errorf("Kind = %v", tag.Kind())
	}

	tag, err = p.Parse([]byte("nope"), types.ParseOptions{})
	if err == nil || tag != nil {
		t.Errorf("expected nil tag and error, got %v, %v", tag, err)
	}
}
