package lines

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/fawaz-alesayi/advent-of-crab/internal/domain"
	"github.com/fawaz-alesayi/advent-of-crab/internal/ports"
)

// Loader reads newline-delimited input files from the local filesystem.
type Loader struct {
	readFile func(string) ([]byte, error)
}

type Option func(*Loader)

// WithReadFile swaps the file reader; useful for tests.
func WithReadFile(fn func(string) ([]byte, error)) Option {
	return func(l *Loader) {
		if fn != nil {
			l.readFile = fn
		}
	}
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{readFile: os.ReadFile}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.LineLoader = (*Loader)(nil)

// LoadLines reads the whole file and returns its lines in order.
func (l *Loader) LoadLines(path string) ([]string, error) {
	b, err := l.readFile(path)
	if err != nil {
		kind := domain.KindIO
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "lines.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}
	return Split(string(b)), nil
}

// Split breaks text into lines. A trailing newline does not produce an empty
// last line and "\r\n" endings are accepted.
func Split(text string) []string {
	if text == "" {
		return []string{}
	}

	out := strings.Split(text, "\n")
	if out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	for i, line := range out {
		out[i] = strings.TrimSuffix(line, "\r")
	}
	return out
}
