package dataset

import (
	"context"
	"os"
)

// FileSource reads a local text file. Relative paths resolve against the
// process working directory.
type FileSource struct {
	Path string
}

// NewFileSource creates a file-backed source.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Name returns "file".
func (s *FileSource) Name() string {
	return "file"
}

// Lines reads the file fresh on every call.
func (s *FileSource) Lines(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable("read "+s.Path, err)
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, unavailable("read "+s.Path, err)
	}
	return SplitLines(data), nil
}
