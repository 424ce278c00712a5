package service

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"

	"formcraft/internal/storage"
)

// UploadsPath is the URL prefix under which stored files are served
const UploadsPath = "/uploads/"

// imageExtensions maps the sniffable image types to the extension a stored
// file gets. The stored extension decides the served Content-Type.
var imageExtensions = map[string]string{
	"image/png":    ".png",
	"image/jpeg":   ".jpg",
	"image/gif":    ".gif",
	"image/webp":   ".webp",
	"image/bmp":    ".bmp",
	"image/x-icon": ".ico",
}

// UploadService stores uploaded images and hands out their URLs
type UploadService struct {
	store storage.BlobStore
	log   *slog.Logger
}

// NewUploadService creates a new upload service
func NewUploadService(store storage.BlobStore, log *slog.Logger) *UploadService {
	return &UploadService{
		store: store,
		log:   log.With("component", "upload_service"),
	}
}

// Save stores r under a fresh name and returns its public URL ("/uploads/<name>").
// Only image content is accepted.
func (s *UploadService) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	br := bufio.NewReaderSize(r, 512)
	head, err := br.Peek(512)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(head) == 0 {
		return "", ErrEmptyUpload
	}

	contentType := http.DetectContentType(head)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMedia, contentType)
	}

	key := uuid.New().String() + ext
	key, err = s.store.Put(key, br)
	if err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}

	s.log.InfoContext(ctx, "file uploaded", "key", key, "original", filename, "contentType", contentType)
	return UploadsPath + key, nil
}

// Open returns the stored file for a key taken from an upload URL
func (s *UploadService) Open(key string) (io.ReadCloser, error) {
	return s.store.Get(key)
}

// ContentTypeFor returns the image type served for a stored key, or
// false when the key does not carry a known image extension
func ContentTypeFor(key string) (string, bool) {
	ext := strings.ToLower(path.Ext(key))
	for contentType, e := range imageExtensions {
		if e == ext {
			return contentType, true
		}
	}
	return "", false
}
