package ports

import "io"

// StoragePort is the file storage abstraction used for business logo uploads.
type StoragePort interface {
	UploadFile(file io.Reader, path string, contentType string) (string, error)
	DeleteFile(path string) error
	GetFileURL(path string) string
}
