package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abema/go-mp4"
	"github.com/bogem/id3v2"
	"github.com/dhowden/tag"
	"github.com/go-audio/wav"
	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
	"github.com/tcolgate/mp3"

	"github.com/handiism/musicorg/internal/model"
)

// ErrUnsupportedFormat is returned for files whose extension has no reader.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Extensions lists the audio extensions the Reader understands, in the
// order a library scan groups them.
var Extensions = []string{".mp3", ".flac", ".wav", ".m4a"}

// Tags is what embedded metadata says about a file. Every field is
// optional: empty strings mean the frame was missing, Duration 0 means the
// stream length could not be determined.
type Tags struct {
	Title        string
	Artist       string
	ArtistSource model.ArtistSource
	Album        string

	// Duration is the stream length in whole seconds.
	Duration int
}

// Reader extracts tags and duration from audio files.
//
// Supported formats:
//   - MP3: ID3v2 frames TIT2 (else TIT1, else TIT3), TPE1 (else TPE2), TALB
//   - FLAC: Vorbis comments TITLE, ARTIST (else ALBUMARTIST), ALBUM
//   - M4A: iTunes atoms for title, artist (else album artist), album
//   - WAV: RIFF INFO title, artist, product
//
// Example:
//
//	r := NewReader()
//	tags, err := r.ReadTags("/music/周杰伦 - 晴天.mp3")
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadTags reads the embedded metadata and duration of the file at path.
//
// A file that parses but carries no tags yields empty Tags and no error.
// Failing to compute the duration is not an error either. The format is
// chosen by the (case-insensitive) extension.
func (r *Reader) ReadTags(path string) (Tags, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return readMP3(path)
	case ".flac":
		return readFLAC(path)
	case ".m4a":
		return readM4A(path)
	case ".wav":
		return readWAV(path)
	default:
		return Tags{}, fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupportedFormat)
	}
}

func readMP3(path string) (Tags, error) {
	id3, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return Tags{}, fmt.Errorf("read ID3 tag: %w", err)
	}
	defer id3.Close()

	var tags Tags
	tags.Title = firstFrame(id3, "TIT2", "TIT1", "TIT3")
	if artist := firstArtist(frameText(id3, "TPE1")); artist != "" {
		tags.Artist = artist
		tags.ArtistSource = model.ArtistSourceTPE1
	} else if artist := firstArtist(frameText(id3, "TPE2")); artist != "" {
		tags.Artist = artist
		tags.ArtistSource = model.ArtistSourceTPE2
	}
	tags.Album = frameText(id3, "TALB")

	tags.Duration = mp3Duration(path)
	return tags, nil
}

func frameText(id3 *id3v2.Tag, id string) string {
	return strings.TrimSpace(strings.Trim(id3.GetTextFrame(id).Text, "\x00"))
}

func firstFrame(id3 *id3v2.Tag, ids ...string) string {
	for _, id := range ids {
		if text := frameText(id3, id); text != "" {
			return text
		}
	}
	return ""
}

// firstArtist keeps the part of a multi-artist value before the first '/'
// or ';'.
func firstArtist(artist string) string {
	if i := strings.IndexAny(artist, "/;"); i >= 0 {
		artist = artist[:i]
	}
	return strings.TrimSpace(artist)
}

// mp3Duration sums the duration of every MPEG frame. Decoding stops at the
// first error; whatever was summed so far is the result.
func mp3Duration(path string) int {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	var (
		total   time.Duration
		frame   mp3.Frame
		skipped int
	)
	d := mp3.NewDecoder(f)
	for {
		if err := d.Decode(&frame, &skipped); err != nil {
			break
		}
		total += frame.Duration()
	}
	return int(total / time.Second)
}

func readFLAC(path string) (Tags, error) {
	f, err := flac.ParseFile(path)
	if err != nil {
		return Tags{}, fmt.Errorf("parse FLAC: %w", err)
	}

	var tags Tags
	var albumArtist string
	for _, block := range f.Meta {
		if block.Type != flac.VorbisComment {
			continue
		}
		cmt, err := flacvorbis.ParseFromMetaDataBlock(*block)
		if err != nil {
			continue
		}
		for _, comment := range cmt.Comments {
			key, value, ok := strings.Cut(comment, "=")
			if !ok {
				continue
			}
			value = strings.TrimSpace(value)
			switch strings.ToUpper(key) {
			case "TITLE":
				setOnce(&tags.Title, value)
			case "ARTIST":
				setOnce(&tags.Artist, value)
			case "ALBUMARTIST", "ALBUM ARTIST":
				setOnce(&albumArtist, value)
			case "ALBUM":
				setOnce(&tags.Album, value)
			}
		}
	}
	applyArtist(&tags, tags.Artist, albumArtist)

	if info, err := f.GetStreamInfo(); err == nil && info.SampleRate > 0 {
		tags.Duration = int(info.SampleCount / int64(info.SampleRate))
	}
	return tags, nil
}

func readM4A(path string) (Tags, error) {
	f, err := os.Open(path)
	if err != nil {
		return Tags{}, err
	}
	defer f.Close()

	var tags Tags
	m, err := tag.ReadFrom(f)
	switch {
	case errors.Is(err, tag.ErrNoTagsFound):
	case err != nil:
		return Tags{}, fmt.Errorf("read M4A tags: %w", err)
	default:
		tags.Title = strings.TrimSpace(m.Title())
		tags.Album = strings.TrimSpace(m.Album())
		applyArtist(&tags, strings.TrimSpace(m.Artist()), strings.TrimSpace(m.AlbumArtist()))
	}

	if _, err := f.Seek(0, io.SeekStart); err == nil {
		if info, err := mp4.Probe(f); err == nil && info.Timescale > 0 {
			tags.Duration = int(info.Duration / uint64(info.Timescale))
		}
	}
	return tags, nil
}

func readWAV(path string) (Tags, error) {
	f, err := os.Open(path)
	if err != nil {
		return Tags{}, err
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return Tags{}, errors.New("not a valid WAV file")
	}

	var tags Tags
	d.ReadMetadata()
	if d.Err() == nil && d.Metadata != nil {
		tags.Title = strings.TrimSpace(d.Metadata.Title)
		tags.Album = strings.TrimSpace(d.Metadata.Product)
		applyArtist(&tags, strings.TrimSpace(d.Metadata.Artist), "")
	}

	if _, err := f.Seek(0, io.SeekStart); err == nil {
		if length, err := wav.NewDecoder(f).Duration(); err == nil {
			tags.Duration = int(length / time.Second)
		}
	}
	return tags, nil
}

// applyArtist sets the artist from the artist field, else from the album
// artist field, recording which one won. Multi-artist values keep their
// first name.
func applyArtist(tags *Tags, artist, albumArtist string) {
	artist, albumArtist = firstArtist(artist), firstArtist(albumArtist)
	switch {
	case artist != "":
		tags.Artist = artist
		tags.ArtistSource = model.ArtistSourceArtistTag
	case albumArtist != "":
		tags.Artist = albumArtist
		tags.ArtistSource = model.ArtistSourceAlbumArtistTag
	default:
		tags.Artist = ""
		tags.ArtistSource = ""
	}
}

func setOnce(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}
