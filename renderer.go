package hlayout

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/hashicorp/hlayout/events"
	"github.com/natefinch/atomic"
	"github.com/pkg/errors"
)

const (
	// defaultFilePerms are the permissions for rendered files that did not
	// exist before, when no permissions were given.
	defaultFilePerms = 0644
)

var (
	// errNoParentDir is returned when the parent directory is missing and
	// creating it was not requested.
	errNoParentDir = errors.New("parent directory is missing")

	// errMissingDest is returned when the destination is empty.
	errMissingDest = errors.New("missing destination")
)

// Renderer outputs composed contents.
// FileRenderer implements this to write to disk.
type Renderer interface {
	Render(contents []byte) (RenderResult, error)
}

// RenderResult is returned by a Renderer.
type RenderResult struct {
	// DidRender indicates the contents were written. False on error and when
	// the destination already holds the same contents.
	DidRender bool

	// WouldRender indicates the contents would have been written. True when
	// the destination already holds the same contents.
	WouldRender bool
}

// BackupFunc is called with the destination path before it is overwritten.
type BackupFunc func(path string)

// FileRendererInput is the input structure for NewFileRenderer.
type FileRendererInput struct {
	// CreateDestDirs causes missing directories on path to be created
	CreateDestDirs bool
	// Path is the full file path to write to
	Path string
	// Perms sets the mode of the file. Zero keeps the mode of an existing
	// file, or uses 0644 for a new one.
	Perms os.FileMode
	// Backup is called before an existing file is replaced
	Backup BackupFunc
	// EventHandler receives a RenderWritten event for each render
	EventHandler events.EventHandler
}

// FileRenderer writes composed pages to a file.
type FileRenderer struct {
	createDestDirs bool
	path           string
	perms          os.FileMode
	backup         BackupFunc
	event          events.EventHandler
}

// check for interface compliance
var _ Renderer = (*FileRenderer)(nil)

// NewFileRenderer returns a new FileRenderer.
func NewFileRenderer(i FileRendererInput) FileRenderer {
	backup := i.Backup
	if backup == nil {
		backup = func(string) {}
	}
	return FileRenderer{
		createDestDirs: i.CreateDestDirs,
		path:           i.Path,
		perms:          i.Perms,
		backup:         backup,
		event:          i.EventHandler,
	}
}

// Render atomically writes contents to disk unless the file already holds
// exactly those contents.
func (r FileRenderer) Render(contents []byte) (RenderResult, error) {
	existing, err := os.ReadFile(r.path)
	fileExists := !os.IsNotExist(err)
	if err != nil && fileExists {
		return RenderResult{}, errors.Wrap(err, "failed reading file")
	}

	if fileExists && bytes.Equal(existing, contents) {
		r.event.Emit(events.RenderWritten{Path: r.path, DidRender: false})
		return RenderResult{
			DidRender:   false,
			WouldRender: true,
		}, nil
	}

	if fileExists {
		r.backup(r.path)
	}

	if err := atomicWrite(r.path, contents, r.perms, r.createDestDirs); err != nil {
		return RenderResult{}, errors.Wrap(err, "failed writing file")
	}

	r.event.Emit(events.RenderWritten{Path: r.path, DidRender: true})
	return RenderResult{
		DidRender:   true,
		WouldRender: true,
	}, nil
}

// RenderComposed composes s and hands the result to r.
func RenderComposed(r Renderer, c Composer, s Segments) (RenderResult, error) {
	return r.Render([]byte(c(s)))
}

// Backup creates a [filename].bak copy, preserving the Mode.
// Provided for convenience to use as the BackupFunc.
func Backup(path string) {
	if path == "" {
		return
	}
	bak, old := path+".bak", path+".old.bak"
	os.Rename(bak, old) // ignore error
	if err := os.Link(path, bak); err == nil {
		os.Remove(old) // ignore error
	}
}

// atomicWrite writes contents to path through a temporary file that is
// renamed into place.
//
// A missing parent directory is created with 0755 when createDestDirs is set
// and is an error otherwise. With zero perms an existing file keeps its mode
// and ownership and a new file gets 0644.
func atomicWrite(
	path string, contents []byte, perms os.FileMode, createDestDirs bool,
) error {
	if path == "" {
		return errMissingDest
	}

	parent := filepath.Dir(path)
	if _, err := os.Stat(parent); os.IsNotExist(err) {
		if !createDestDirs {
			return errNoParentDir
		}
		if err := os.MkdirAll(parent, 0755); err != nil {
			return err
		}
	}

	currentInfo, err := os.Stat(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if err := atomic.WriteFile(path, bytes.NewReader(contents)); err != nil {
		return err
	}

	switch {
	case perms != 0:
	case currentInfo != nil:
		perms = currentInfo.Mode().Perm()
		if err := preserveFilePermissions(path, currentInfo); err != nil {
			return err
		}
	default:
		perms = defaultFilePerms
	}
	return os.Chmod(path, perms)
}
