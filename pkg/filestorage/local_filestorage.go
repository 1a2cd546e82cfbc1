package filestorage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// FileStorageInterface - хранилище загруженных файлов (архив импортов).
type FileStorageInterface interface {
	// Save возвращает путь относительно корня хранилища.
	Save(file io.Reader, originalFileName string, prefix string) (string, error)
	FullPath(relPath string) string
	Delete(relPath string) error
}

type LocalFileStorage struct {
	basePath string
}

func NewLocalFileStorage(basePath string) (*LocalFileStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("не удалось создать директорию для хранения файлов: %w", err)
	}
	return &LocalFileStorage{basePath: basePath}, nil
}

// Save кладет файл в <prefix>/<yyyy>/<mm>/<dd>/<дата>-<uuid><ext>.
func (s *LocalFileStorage) Save(file io.Reader, originalFileName string, prefix string) (string, error) {
	now := time.Now()
	ext := filepath.Ext(originalFileName)
	name := fmt.Sprintf("%s-%s%s", now.Format("2006-01-02"), uuid.New().String(), ext)

	relDir := filepath.Join(prefix, now.Format("2006/01/02"))
	if err := os.MkdirAll(filepath.Join(s.basePath, relDir), 0o755); err != nil {
		return "", err
	}

	relPath := filepath.Join(relDir, name)
	fullPath := filepath.Join(s.basePath, relPath)
	dst, err := os.Create(fullPath)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		// недописанный файл в архиве не оставляем
		os.Remove(fullPath)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(fullPath)
		return "", err
	}
	return filepath.ToSlash(relPath), nil
}

func (s *LocalFileStorage) FullPath(relPath string) string {
	return filepath.Join(s.basePath, filepath.FromSlash(relPath))
}

func (s *LocalFileStorage) Delete(relPath string) error {
	if err := os.Remove(s.FullPath(relPath)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
