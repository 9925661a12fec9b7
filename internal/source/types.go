package source

type (
	// FileID uniquely identifies a file within a FileSet.
	FileID uint32
	// Class describes where a file sits relative to the translation unit.
	Class uint8
)

const NoFileID FileID = 0

func (id FileID) IsValid() bool { return id != NoFileID }

const (
	// ClassUnknown marks files the frontend could not classify.
	ClassUnknown Class = iota
	// ClassMain is the primary source file of the translation unit.
	ClassMain
	// ClassHeader is a user header pulled in by the main file.
	ClassHeader
	// ClassSystemHeader is a header from a system include directory.
	ClassSystemHeader
)

func (c Class) String() string {
	switch c {
	case ClassMain:
		return "main"
	case ClassHeader:
		return "header"
	case ClassSystemHeader:
		return "system-header"
	default:
		return "unknown"
	}
}

// File captures metadata for a single file of the translation unit.
// The driver never reads file contents; those belong to the frontend.
type File struct {
	ID    FileID
	Path  string
	Class Class
}
