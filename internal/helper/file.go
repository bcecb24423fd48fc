package helper

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateUniqueFileName(originalName string) string {
	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = ".jpg"
	}

	ext = strings.ToLower(ext)

	uniqueName := fmt.Sprintf("%d-%s%s", time.Now().UTC().UnixNano(), uuid.New().String(), ext)

	return uniqueName
}

func DetectFileContentType(file multipart.File) (string, error) {
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}
	if n == 0 {
		return "", errors.New("empty file")
	}

	contentType := http.DetectContentType(buffer[:n])

	if _, err := file.Seek(0, 0); err != nil {
		return "", err
	}

	return contentType, nil
}

// BuildImageURL resolves an opaque media reference (the stored file name) to a
// public URL. References stay opaque in the Report record; only display code
// needs the URL.
func BuildImageURL(publicDomain string, storagePrefix string, fileName string) string {
	if fileName == "" {
		return ""
	}

	prefix := strings.Trim(storagePrefix, "/")
	domain := strings.TrimRight(publicDomain, "/")

	if prefix == "" {
		return fmt.Sprintf("%s/%s", domain, fileName)
	}
	return fmt.Sprintf("%s/%s/%s", domain, prefix, fileName)
}
