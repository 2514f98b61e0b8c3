package static

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// fileSystem narrows open errors to not found or forbidden so that no
// other error, and no server path, reaches the client.
type fileSystem struct {
	fs http.FileSystem
}

func newFileSystem(root string) *fileSystem {
	return &fileSystem{
		fs: http.Dir(root),
	}
}

func (f *fileSystem) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)

	if err == nil {
		return file, nil
	}

	if errors.Is(err, fs.ErrPermission) {
		return nil, fiber.ErrForbidden
	}

	return nil, fs.ErrNotExist
}

func (f *fileSystem) isDir(name string) bool {
	file, err := f.Open(name)

	if err != nil {
		return false
	}

	defer file.Close()

	info, err := file.Stat()

	if err != nil {
		return false
	}

	return info.IsDir()
}
