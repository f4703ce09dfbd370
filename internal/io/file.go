// Package ioutils provides file system utilities for musicorg.
//
// This package contains functions for:
//   - File copying
//   - File writing
//   - Lossy text reading
//   - Directory creation
//   - Collision-free file naming
//
// Functions that accept a context.Context check it before doing any work;
// the file operations themselves are not interruptible.
package ioutils

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
)

// CopyFile copies a file from source to destination.
//
// The destination file is created with mode 0644 if it doesn't exist,
// or truncated if it does. The source file must exist and be readable.
//
// Returns an error if:
//   - ctx is already done
//   - Source file cannot be opened
//   - Destination file cannot be created
//   - Copy operation fails
//
// Example:
//
//	err := CopyFile(ctx, "/path/to/source.mp3", "/path/to/dest.mp3")
func CopyFile(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		destFile.Close()
		return err
	}
	return destFile.Close()
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
//
// Example:
//
//	err := WriteFile(ctx, "/music_repo/lyrics/Artist - Title.lrc", lrc)
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadTextLossy reads a text file as UTF-8, dropping invalid byte sequences.
//
// Sidecar lyric files come in arbitrary encodings; whatever is not valid
// UTF-8 is silently discarded.
func ReadTextLossy(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), ""), nil
}

// Exists reports whether path exists. Errors other than "not exist" count
// as existing so callers never overwrite something they cannot inspect.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := EnsureDir("/music_repo/audio")
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
