// Package upload turns one uploaded image into a public URL. It never
// touches content rows; callers store the URL in whichever field they edit.
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const DefaultMaxSize = 5 << 20

var (
	ErrPayloadTooLarge      = errors.New("file exceeds the upload size limit")
	ErrUnsupportedMediaType = errors.New("only image files are accepted")
)

// UpstreamError wraps a storage backend failure. It is not retried.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string { return "image storage failed: " + e.Err.Error() }
func (e *UpstreamError) Unwrap() error { return e.Err }

// Object is one validated image handed to a Storage.
type Object struct {
	Folder      string
	Ext         string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Storage persists an object and returns its public URL.
type Storage interface {
	Put(ctx context.Context, obj Object) (string, error)
}

type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

type Result struct {
	URL          string `json:"url"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
}

type Service struct {
	storage       Storage
	maxSize       int64
	defaultFolder string
}

func NewService(storage Storage, maxSize int64, defaultFolder string) *Service {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if defaultFolder = SanitizeFolder(defaultFolder); defaultFolder == "" {
		defaultFolder = "images"
	}
	return &Service{storage: storage, maxSize: maxSize, defaultFolder: defaultFolder}
}

func (s *Service) MaxSize() int64 { return s.maxSize }

// Upload validates f and forwards it to storage under folder, or the default
// folder when folder is empty. Both the declared type and the sniffed bytes
// must be image/*.
func (s *Service) Upload(ctx context.Context, f File, folder string) (Result, error) {
	if f.Size > s.maxSize {
		return Result{}, ErrPayloadTooLarge
	}
	if !isImage(f.ContentType) {
		return Result{}, ErrUnsupportedMediaType
	}

	data, err := io.ReadAll(io.LimitReader(f.Body, s.maxSize+1))
	if err != nil {
		return Result{}, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.maxSize {
		return Result{}, ErrPayloadTooLarge
	}

	detected := mimetype.Detect(data)
	if !isImage(detected.String()) {
		return Result{}, ErrUnsupportedMediaType
	}

	if folder = SanitizeFolder(folder); folder == "" {
		folder = s.defaultFolder
	}

	url, err := s.storage.Put(ctx, Object{
		Folder:      folder,
		Ext:         detected.Extension(),
		ContentType: detected.String(),
		Size:        int64(len(data)),
		Body:        bytes.NewReader(data),
	})
	if err != nil {
		return Result{}, &UpstreamError{Err: err}
	}

	return Result{URL: url, OriginalName: path.Base(f.Name), Size: int64(len(data))}, nil
}

func isImage(contentType string) bool {
	mediaType, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(contentType)), ";")
	return strings.HasPrefix(mediaType, "image/")
}

var unsafeFolderChars = regexp.MustCompile(`[^a-z0-9_\-/]+`)

// SanitizeFolder lowercases the folder and keeps letters, digits, '_', '-'
// and '/' separators. Dot segments are dropped.
func SanitizeFolder(folder string) string {
	folder = unsafeFolderChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(folder)), "-")
	var parts []string
	for _, part := range strings.Split(folder, "/") {
		part = strings.Trim(part, "-")
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, "/")
}
