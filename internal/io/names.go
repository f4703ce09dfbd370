package ioutils

import (
	"fmt"
	"path/filepath"
	"sync"
)

// NameAllocator hands out file names inside one directory without ever
// reusing a name, whether it was claimed earlier in the run or already
// exists on disk. Duplicates get "_1", "_2", ... before the extension:
//
//	a := NewNameAllocator("/music_repo/audio")
//	a.Allocate("Artist - Title", ".mp3") // "Artist - Title.mp3"
//	a.Allocate("Artist - Title", ".mp3") // "Artist - Title_1.mp3"
//
// All methods are goroutine-safe.
type NameAllocator struct {
	dir string

	mu      sync.Mutex
	claimed map[string]struct{}
}

// NewNameAllocator creates an allocator for names in dir.
func NewNameAllocator(dir string) *NameAllocator {
	return &NameAllocator{
		dir:     dir,
		claimed: make(map[string]struct{}),
	}
}

// Allocate returns the first free name of base+ext, base_1+ext, base_2+ext,
// ... and claims it.
func (a *NameAllocator) Allocate(base, ext string) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	name := base + ext
	for counter := 1; a.taken(name); counter++ {
		name = fmt.Sprintf("%s_%d%s", base, counter, ext)
	}
	a.claimed[name] = struct{}{}
	return name
}

// Release gives back a name claimed by Allocate whose file was never kept.
func (a *NameAllocator) Release(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.claimed, name)
}

// Path returns the full path of name inside the allocator's directory.
func (a *NameAllocator) Path(name string) string {
	return filepath.Join(a.dir, name)
}

func (a *NameAllocator) taken(name string) bool {
	if _, ok := a.claimed[name]; ok {
		return true
	}
	return Exists(filepath.Join(a.dir, name))
}
