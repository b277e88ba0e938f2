package types

import "fmt"

// Artwork is an image embedded in an APIC frame.
type Artwork struct {
	// Type of artwork (front cover, back cover, artist photo, etc.)
	Type ArtworkType `json:"type" yaml:"type"`

	// MIME type of the image data
	MIMEType string `json:"mime_type" yaml:"mime_type"` // "image/jpeg", "image/png", "-->" for a link

	// Description of the artwork (optional)
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Image binary data, owned by the Artwork
	Data []byte `json:"-" yaml:"-"`

	// Dimensions (if they can be read from the image header, otherwise 0)
	Width  int `json:"width,omitempty" yaml:"width,omitempty"`
	Height int `json:"height,omitempty" yaml:"height,omitempty"`
}

// ArtworkType is the APIC picture type byte.
//
// See: https://id3.org/id3v2.4.0-frames (APIC frame)
type ArtworkType byte

const (
	ArtworkOther ArtworkType = iota
	ArtworkIcon
	ArtworkOtherIcon
	ArtworkFrontCover
	ArtworkBackCover
	ArtworkLeaflet
	ArtworkMedia
	ArtworkLeadArtist
	ArtworkArtist
	ArtworkConductor
	ArtworkBand
	ArtworkComposer
	ArtworkLyricist
	ArtworkRecordingLocation
	ArtworkDuringRecording
	ArtworkDuringPerformance
	ArtworkVideoCapture
	ArtworkBrightFish
	ArtworkIllustration
	ArtworkBandLogotype
	ArtworkPublisherLogotype
)

var artworkTypeNames = [...]string{
	"Other",
	"File icon",
	"Other file icon",
	"Front cover",
	"Back cover",
	"Leaflet page",
	"Media",
	"Lead artist",
	"Artist",
	"Conductor",
	"Band",
	"Composer",
	"Lyricist",
	"Recording location",
	"During recording",
	"During performance",
	"Video capture",
	"A bright colored fish",
	"Illustration",
	"Band logotype",
	"Publisher logotype",
}

func (t ArtworkType) String() string {
	if int(t) < len(artworkTypeNames) {
		return artworkTypeNames[t]
	}
	return fmt.Sprintf("ArtworkType(%d)", byte(t))
}

// MarshalText lets encoders print the picture type name.
func (t ArtworkType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// String returns a human-readable description of the artwork.
//
// Example output: "Front cover (1200x1200 JPEG, 245KB)"
func (a Artwork) String() string {
	dims := ""
	if a.Width > 0 && a.Height > 0 {
		dims = fmt.Sprintf("%dx%d ", a.Width, a.Height)
	}
	return fmt.Sprintf("%s (%s%s, %s)", a.Type, dims, mimeToFormat(a.MIMEType), formatSize(len(a.Data)))
}

// formatSize formats byte size in human-readable form.
func formatSize(bytes int) string {
	const (
		KB = 1024
		MB = 1024 * KB
	)

	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1fMB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%dKB", bytes/KB)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

// mimeToFormat converts MIME type to short format name.
func mimeToFormat(mime string) string {
	switch mime {
	case "image/jpeg", "image/jpg", "JPG":
		return "JPEG"
	case "image/png", "PNG":
		return "PNG"
	case "image/gif":
		return "GIF"
	case "image/bmp":
		return "BMP"
	case "image/webp":
		return "WebP"
	case "-->":
		return "link"
	default:
		return "Image"
	}
}
