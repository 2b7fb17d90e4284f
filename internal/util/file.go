package util

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ValidateMimeType sniffs the first 512 bytes of the payload.
// allowedTypes holds MIME prefixes or full types, e.g. "image/".
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, 512)
	// ReadFull keeps filling across short reads; payloads under 512 bytes
	// surface as ErrUnexpectedEOF and are still sniffable.
	n, err := io.ReadFull(reader, buffer)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, errors.New("invalid file type: " + mimeType)
}

func IsImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}

// GenerateUploadFilename builds a collision-resistant object name from the
// upload timestamp, a random fragment and the original file extension.
func GenerateUploadFilename(prefix, originalName string) string {
	ext := filepath.Ext(originalName)
	name := time.Now().Format("20060102150405") + "_" + uuid.New().String()[:8] + ext
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}
