package source

import (
	"fmt"

	"fortio.org/safecast"
)

// FileSet stores the files of one translation unit in a compact arena.
type FileSet struct {
	files []File // index 0 reserved for NoFileID
	index map[string]FileID
}

// NewFileSet creates an empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 1, 16),
		index: make(map[string]FileID),
	}
}

// Add registers a file and returns its ID. Re-adding a path returns the
// existing ID; the first classification wins.
func (fs *FileSet) Add(path string, class Class) FileID {
	if id, ok := fs.index[path]; ok {
		return id
	}
	value, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("file set overflow: %w", err))
	}
	id := FileID(value)
	fs.files = append(fs.files, File{ID: id, Path: path, Class: class})
	fs.index[path] = id
	return id
}

// Get returns the file or nil for an invalid ID.
func (fs *FileSet) Get(id FileID) *File {
	if !id.IsValid() || int(id) >= len(fs.files) {
		return nil
	}
	return &fs.files[id]
}

// Lookup resolves a path to a previously added file.
func (fs *FileSet) Lookup(path string) (FileID, bool) {
	id, ok := fs.index[path]
	return id, ok
}

// Len reports the number of files excluding the sentinel.
func (fs *FileSet) Len() int { return len(fs.files) - 1 }

// ClassOf classifies a location by its expansion file. Locations that do not
// resolve to a known file are ClassUnknown.
func (fs *FileSet) ClassOf(loc Loc) Class {
	file := fs.Get(loc.ExpansionFile())
	if file == nil {
		return ClassUnknown
	}
	return file.Class
}

// PathOf returns the path of the location's expansion file, or "" if unknown.
func (fs *FileSet) PathOf(loc Loc) string {
	file := fs.Get(loc.ExpansionFile())
	if file == nil {
		return ""
	}
	return file.Path
}
