package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage writes images under dir; the server exposes dir at /uploads.
type LocalStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(dir, publicBaseURL string) *LocalStorage {
	return &LocalStorage{dir: dir, baseURL: strings.TrimRight(publicBaseURL, "/")}
}

func (l *LocalStorage) Put(ctx context.Context, obj Object) (string, error) {
	folderDir := filepath.Join(l.dir, filepath.FromSlash(obj.Folder))
	if err := os.MkdirAll(folderDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := uuid.New().String() + obj.Ext
	out, err := os.Create(filepath.Join(folderDir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, obj.Body); err != nil {
		os.Remove(out.Name())
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return l.baseURL + "/uploads/" + obj.Folder + "/" + filename, nil
}
