package hlayout

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ErrOutsideSandbox is returned by FileReader when a path resolves outside
// of its SandboxPath.
var ErrOutsideSandbox = errors.New("path is outside of the sandbox")

// TextReader loads the text of a layout or partial. Governed templates read
// their layout through a TextReader exactly once, when constructed.
type TextReader interface {
	ReadText(path string) (string, error)
}

// TextReaderFunc adapts an ordinary function to the TextReader interface.
type TextReaderFunc func(path string) (string, error)

// ReadText calls f(path).
func (f TextReaderFunc) ReadText(path string) (string, error) {
	return f(path)
}

// check for interface compliance
var (
	_ TextReader = FileReader{}
	_ TextReader = FSReader{}
	_ TextReader = TextReaderFunc(nil)
)

// FileReader reads text files from the local disk.
type FileReader struct {
	// SandboxPath adds a prefix to any relative path read and causes an error
	// if a path tries to traverse outside that prefix. Absolute paths must
	// already lie inside it.
	SandboxPath string
}

// ReadText reads the whole file at p.
func (r FileReader) ReadText(p string) (string, error) {
	resolved, err := r.resolve(p)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(resolved)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", p)
	}
	return string(b), nil
}

// resolve applies the sandbox, if any, to p.
func (r FileReader) resolve(p string) (string, error) {
	if r.SandboxPath == "" {
		return p, nil
	}
	sandbox, err := filepath.Abs(r.SandboxPath)
	if err != nil {
		return "", errors.Wrap(err, "sandbox")
	}
	resolved := p
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(sandbox, resolved)
	}
	resolved = filepath.Clean(resolved)

	rel, err := filepath.Rel(sandbox, resolved)
	if err != nil || rel == ".." ||
		strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Wrapf(ErrOutsideSandbox, "read %s", p)
	}
	return resolved, nil
}

// FSReader reads text from an fs.FS, such as an embed.FS of layouts.
type FSReader struct {
	FS fs.FS
}

// ReadText reads the whole file at p. Leading slashes are dropped since fs.FS
// paths are always unrooted.
func (r FSReader) ReadText(p string) (string, error) {
	if r.FS == nil {
		return "", errors.Errorf("read %s: no filesystem", p)
	}
	name := path.Clean(strings.TrimPrefix(p, "/"))
	b, err := fs.ReadFile(r.FS, name)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", p)
	}
	return string(b), nil
}
