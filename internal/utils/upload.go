package utils

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrNoFile indicates the request carried no usable file part.
	ErrNoFile = errors.New("no file provided")
	// ErrExtensionNotAllowed indicates the file extension is outside the allowlist.
	ErrExtensionNotAllowed = errors.New("file extension not allowed")
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// AllowedExtension reports whether the filename carries an accepted image
// extension. The check is case-insensitive.
func AllowedExtension(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// SaveUploadedImage validates and stores an uploaded file under dir, naming
// it with a random token so client-supplied names are never trusted. It
// returns the generated filename (not a path). On rejection nothing is
// written and the caller must leave any existing image reference unchanged.
func SaveUploadedImage(file *multipart.FileHeader, dir string) (string, error) {
	if file == nil || file.Filename == "" {
		return "", ErrNoFile
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", ErrExtensionNotAllowed
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	filename := strings.ReplaceAll(uuid.New().String(), "-", "") + ext

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filename, nil
}
