package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"rental-system/pkg/config"
)

// ValidateUpload проверяет размер, расширение и сигнатуру файла по правилу ruleName.
func ValidateUpload(fileHeader *multipart.FileHeader, file io.ReadSeeker, ruleName string, maxSizeMB int64) error {
	rule, ok := config.UploadRules[ruleName]
	if !ok {
		return fmt.Errorf("неизвестный вид загрузки: %s", ruleName)
	}

	if maxSizeMB > 0 && fileHeader.Size > maxSizeMB*1024*1024 {
		return fmt.Errorf("размер файла (%d KB) превышает лимит в %d MB", fileHeader.Size/1024, maxSizeMB)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !slices.Contains(rule.AllowedExtensions, ext) {
		return fmt.Errorf("недопустимое расширение файла: %q", ext)
	}

	buffer := make([]byte, 512)
	if _, err := file.Read(buffer); err != nil && err != io.EOF {
		return fmt.Errorf("не удалось прочитать файл для определения типа")
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("не удалось сбросить указатель файла")
	}

	// xlsx - это zip-архив
	mimeType := http.DetectContentType(buffer)
	if !slices.Contains(rule.AllowedMimeTypes, mimeType) {
		return fmt.Errorf("недопустимый тип файла: %s", mimeType)
	}
	return nil
}
