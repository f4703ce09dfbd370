// Package audio reads metadata from audio files and writes playlists.
//
// # Tag Reading
//
// Use the Reader to extract title, artist, album and duration:
//
//	reader := audio.NewReader()
//	tags, err := reader.ReadTags("/music/晴天.mp3")
//	fmt.Println(tags.Artist, tags.ArtistSource) // "周杰伦" "TPE1_tag"
//
// Supported formats: MP3 (ID3v2), FLAC (Vorbis comments), M4A (iTunes
// atoms) and WAV (RIFF INFO). Other extensions return ErrUnsupportedFormat.
//
// # Playlist Generation
//
// The playlist.json manifest is rendered with CreateManifest:
//
//	data, err := audio.CreateManifest(lib)
//
// Extra playlists in other formats come from a PlaylistCreator:
//
//	creator := audio.NewPlaylistCreator(model.PlaylistFormatM3U, true) // extended M3U
//	content := creator.CreatePlaylist(lib)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
//   - WPL (Windows Media Player)
//   - ZPL (Zune Media Player)
package audio
