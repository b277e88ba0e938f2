package types

import "strings"

// LegacySize is the fixed length of an ID3v1 tag.
const LegacySize = 128

// LegacyTag is the fixed-layout ID3v1 trailer found in the last 128 bytes of a file.
//
// String fields hold the full fixed-width field, padding included. Use
// Trimmed for display.
type LegacyTag struct {
	Title   string `json:"title" yaml:"title"`
	Artist  string `json:"artist" yaml:"artist"`
	Album   string `json:"album" yaml:"album"`
	Comment string `json:"comment" yaml:"comment"`
	Year    int    `json:"year" yaml:"year"`

	// Track is the ID3v1.1 track number, 0 when the tag carries none.
	Track int  `json:"track,omitempty" yaml:"track,omitempty"`
	Genre byte `json:"genre" yaml:"genre"`
}

// HasTrack reports whether the tag uses the ID3v1.1 track field.
func (t LegacyTag) HasTrack() bool {
	return t.Track != 0
}

// GenreName returns the name for the genre code, or "" for 255 and
// codes past the end of the table.
func (t LegacyTag) GenreName() string {
	return GenreName(t.Genre)
}

// Trimmed returns a copy with trailing NUL and space padding removed from
// every string field. Anything after the first NUL is padding as well.
func (t LegacyTag) Trimmed() LegacyTag {
	t.Title = trimPadding(t.Title)
	t.Artist = trimPadding(t.Artist)
	t.Album = trimPadding(t.Album)
	t.Comment = trimPadding(t.Comment)
	return t
}

func trimPadding(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return strings.TrimRight(s, " ")
}

// GenreName maps an ID3v1 genre code to its name, including the Winamp
// extensions. 255 means "no genre".
func GenreName(code byte) string {
	if int(code) >= len(genres) {
		return ""
	}
	return genres[code]
}

var genres = [...]string{
	"Blues", "Classic Rock", "Country", "Dance", "Disco", "Funk", "Grunge",
	"Hip-Hop", "Jazz", "Metal", "New Age", "Oldies", "Other", "Pop", "R&B",
	"Rap", "Reggae", "Rock", "Techno", "Industrial", "Alternative", "Ska",
	"Death Metal", "Pranks", "Soundtrack", "Euro-Techno", "Ambient",
	"Trip-Hop", "Vocal", "Jazz+Funk", "Fusion", "Trance", "Classical",
	"Instrumental", "Acid", "House", "Game", "Sound Clip", "Gospel",
	"Noise", "AlternRock", "Bass", "Soul", "Punk", "Space", "Meditative",
	"Instrumental Pop", "Instrumental Rock", "Ethnic", "Gothic",
	"Darkwave", "Techno-Industrial", "Electronic", "Pop-Folk",
	"Eurodance", "Dream", "Southern Rock", "Comedy", "Cult", "Gangsta",
	"Top 40", "Christian Rap", "Pop/Funk", "Jungle", "Native American",
	"Cabaret", "New Wave", "Psychedelic", "Rave", "Showtunes", "Trailer",
	"Lo-Fi", "Tribal", "Acid Punk", "Acid Jazz", "Polka", "Retro",
	"Musical", "Rock & Roll", "Hard Rock", "Folk", "Folk-Rock",
	"National Folk", "Swing", "Fast Fusion", "Bebob", "Latin", "Revival",
	"Celtic", "Bluegrass", "Avantgarde", "Gothic Rock", "Progressive Rock",
	"Psychedelic Rock", "Symphonic Rock", "Slow Rock", "Big Band",
	"Chorus", "Easy Listening", "Acoustic", "Humour", "Speech", "Chanson",
	"Opera", "Chamber Music", "Sonata", "Symphony", "Booty Bass", "Primus",
	"Porn Groove", "Satire", "Slow Jam", "Club", "Tango", "Samba",
	"Folklore", "Ballad", "Power Ballad", "Rhythmic Soul", "Freestyle",
	"Duet", "Punk Rock", "Drum Solo", "A capella", "Euro-House", "Dance Hall",
	"Goa", "Drum & Bass", "Club-House", "Hardcore", "Terror", "Indie",
	"Britpop", "Negerpunk", "Polsk Punk", "Beat", "Christian Gangsta Rap",
	"Heavy Metal", "Black Metal", "Crossover", "Contemporary Christian",
	"Christian Rock", "Merengue", "Salsa", "Thrash Metal", "Anime", "JPop",
	"Synthpop", "Abstract", "Art Rock", "Baroque", "Bhangra", "Big Beat",
	"Breakbeat", "Chillout", "Downtempo", "Dub", "EBM", "Eclectic",
	"Electro", "Electroclash", "Emo", "Experimental", "Garage", "Global",
	"IDM", "Illbient", "Industro-Goth", "Jam Band", "Krautrock", "Leftfield",
	"Lounge", "Math Rock", "New Romantic", "Nu-Breakz", "Post-Punk",
	"Post-Rock", "Psytrance", "Shoegaze", "Space Rock", "Trop Rock",
	"World Music", "Neoclassical", "Audiobook", "Audio Theatre",
	"Neue Deutsche Welle", "Podcast", "Indie Rock", "G-Funk", "Dubstep",
	"Garage Rock", "Psybient",
}
