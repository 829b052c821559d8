// Package note reads the document that is sent as a draft.
package note

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// ErrIsDirectory is returned when the path points to a directory.
var ErrIsDirectory = errors.New("note path is a directory")

// Note is the document to submit.
type Note struct {
	Title string // file name without its extension
	Body  string // full file content, untouched
}

// Reader reads notes from a filesystem.
type Reader struct {
	Fs afero.Fs
}

// NewReader returns a Reader on the operating system filesystem.
func NewReader() Reader {
	return Reader{Fs: afero.NewOsFs()}
}

// Read loads the note stored at path.
// The body holds the raw file bytes; content that is not valid UTF-8 is kept
// as is here and only replaced by U+FFFD once encoded as JSON for submission.
func (r Reader) Read(path string) (Note, error) {
	info, err := r.Fs.Stat(path)
	if err != nil {
		return Note{}, errors.Wrap(err, "failed to stat note")
	}

	if info.IsDir() {
		return Note{}, errors.Wrap(ErrIsDirectory, path)
	}

	content, err := afero.ReadFile(r.Fs, path)
	if err != nil {
		return Note{}, errors.Wrap(err, "failed to read note")
	}

	return Note{
		Title: Title(path),
		Body:  string(content),
	}, nil
}

// Title returns the base name of path without its final extension.
func Title(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}
