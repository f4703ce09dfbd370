package library

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Scan walks root recursively and returns the audio files whose extension
// is in exts (matched case-insensitively).
//
// Files are grouped by extension in the order of exts and sorted by path
// within each group. Directories listed in skip (typically the output
// directory when it lives inside root) are not entered.
func Scan(root string, exts []string, skip ...string) ([]string, error) {
	order := make(map[string]int, len(exts))
	for i, ext := range exts {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if _, dup := order[ext]; !dup {
			order[ext] = i
		}
	}

	skipped := make(map[string]struct{}, len(skip))
	for _, dir := range skip {
		if abs, err := filepath.Abs(dir); err == nil {
			skipped[abs] = struct{}{}
		}
	}

	groups := make([][]string, len(exts))
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			if abs, err := filepath.Abs(path); err == nil {
				if _, ok := skipped[abs]; ok {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if i, ok := order[strings.ToLower(filepath.Ext(path))]; ok {
			groups[i] = append(groups[i], path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var files []string
	for _, g := range groups {
		sort.Strings(g)
		files = append(files, g...)
	}
	return files, nil
}

// sidecarPath returns the path of the lyric file that accompanies an audio
// file: same directory and stem, .lrc extension.
func sidecarPath(audioPath string) string {
	return strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".lrc"
}
