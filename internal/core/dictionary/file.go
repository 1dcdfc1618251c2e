package dictionary

import (
	"context"
	"io/fs"
	"os"

	"golang.org/x/text/encoding"
)

// File reads a newline-separated word list from disk, or from FS when set (embed.FS, fstest.MapFS).
// The bytes go through Decode, then Lines
type File struct {
	Path     string
	FS       fs.FS
	Fallback encoding.Encoding
}

// Words implements Source
func (f File) Words(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var (
		b   []byte
		err error
	)
	if f.FS != nil {
		b, err = fs.ReadFile(f.FS, f.Path)
	} else {
		b, err = os.ReadFile(f.Path)
	}
	if err != nil {
		return nil, err
	}
	text, err := Decode(b, f.Fallback)
	if err != nil {
		return nil, err
	}
	return Lines(text), nil
}

// Name implements Source
func (f File) Name() string { return "file:" + f.Path }
