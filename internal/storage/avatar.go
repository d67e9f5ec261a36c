package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrNotImage is returned when the uploaded content type is not an image.
var ErrNotImage = errors.New("uploaded file is not an image")

// AvatarStore keeps avatar files in a local directory. Saves are not atomic
// with the database row that references them; deletion is best-effort.
type AvatarStore struct {
	dir string
}

func NewAvatarStore(dir string) *AvatarStore {
	return &AvatarStore{dir: dir}
}

// Save writes the uploaded file under a timestamp-prefixed name and returns
// the stored filename.
func (s *AvatarStore) Save(filename, contentType string, data []byte) (string, error) {
	if !strings.HasPrefix(contentType, "image") {
		return "", ErrNotImage
	}

	name := time.Now().Format("20060102150405.000000") + "_" + filepath.Base(filename)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", err
	}
	return name, nil
}

// Remove deletes a stored avatar file. Callers treat failures as non-fatal.
func (s *AvatarStore) Remove(name string) error {
	return os.Remove(filepath.Join(s.dir, filepath.Base(name)))
}
