package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/simonhull/id3tags"
)

var (
	pathStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC")).
			Width(14)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

type textRenderer struct {
	trim bool
}

// Render writes a human-readable block per entry.
func (r *textRenderer) Render(w io.Writer, entries []Entry) error {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		r.entry(&b, e)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (r *textRenderer) entry(b *strings.Builder, e Entry) {
	b.WriteString(pathStyle.Render(e.Path) + "\n")

	if e.Err != nil {
		line(b, "error", errorStyle.Render(fmt.Sprintf("%s (%s)", e.Err, id3tags.ErrorKind(e.Err))))
		return
	}
	if e.Result == nil || e.Result.Empty() {
		b.WriteString("  " + dimStyle.Render("no tags") + "\n")
		return
	}

	if tag := e.Result.FrameBased; tag != nil {
		frameTag(b, tag)
	}
	if tag := e.Result.Legacy; tag != nil {
		r.legacyTag(b, tag)
	}
}

func frameTag(b *strings.Builder, tag *id3tags.FrameTag) {
	b.WriteString("  " + sectionStyle.Render("ID3v"+tag.Version()) + dimStyle.Render(fmt.Sprintf(" (%d bytes)", tag.Header.Size)) + "\n")

	for _, f := range tag.Frames {
		line(b, f.ID, frameValue(f))
	}
	for _, w := range tag.Warnings {
		line(b, "warning", warningStyle.Render(w.String()))
	}
}

func frameValue(f id3tags.Frame) string {
	switch f.Category {
	case id3tags.CategoryPicture:
		return f.Picture.String()
	case id3tags.CategoryBinary:
		return dimStyle.Render(fmt.Sprintf("<%d bytes>", len(f.Data)))
	case id3tags.CategoryComment:
		return fmt.Sprintf("[%s] %s%s", f.Language, describe(f.Description), strings.Join(f.Values(), " / "))
	case id3tags.CategoryUserText, id3tags.CategoryUserURL:
		return describe(f.Description) + strings.Join(f.Values(), " / ")
	default:
		return strings.Join(f.Values(), " / ")
	}
}

func describe(desc string) string {
	if desc == "" {
		return ""
	}
	return desc + ": "
}

func (r *textRenderer) legacyTag(b *strings.Builder, tag *id3tags.LegacyTag) {
	t := *tag
	if r.trim {
		t = t.Trimmed()
	}
	version := "ID3v1"
	if t.HasTrack() {
		version = "ID3v1.1"
	}
	b.WriteString("  " + sectionStyle.Render(version) + "\n")

	line(b, "title", quote(t.Title, r.trim))
	line(b, "artist", quote(t.Artist, r.trim))
	line(b, "album", quote(t.Album, r.trim))
	line(b, "year", strconv.Itoa(t.Year))
	line(b, "comment", quote(t.Comment, r.trim))
	if t.HasTrack() {
		line(b, "track", strconv.Itoa(t.Track))
	}
	genre := strconv.Itoa(int(t.Genre))
	if name := t.GenreName(); name != "" {
		genre += " (" + name + ")"
	}
	line(b, "genre", genre)
}

// quote shows padding bytes when fields are printed untrimmed.
func quote(s string, trimmed bool) string {
	if trimmed {
		return s
	}
	return strconv.Quote(s)
}

func line(b *strings.Builder, key, value string) {
	b.WriteString("  " + keyStyle.Render(key) + " " + value + "\n")
}
