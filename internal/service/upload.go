package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// UploadService is the asset store: it accepts a file and returns a
// stable URL under the public uploads path.
type UploadService struct {
	dir     string
	baseURL string
	maxSize int64
	log     *logrus.Entry
}

func NewUploadService(dir, baseURL string, maxSizeMB int) (*UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	if maxSizeMB <= 0 {
		maxSizeMB = 20
	}
	return &UploadService{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		maxSize: int64(maxSizeMB) << 20,
		log:     logrus.WithField("component", "upload"),
	}, nil
}

// Dir is the filesystem directory served at the uploads URL.
func (s *UploadService) Dir() string { return s.dir }

// Store writes one uploaded file with a timestamped name, preserving
// the original extension, and returns its public URL.
func (s *UploadService) Store(file *multipart.FileHeader) (string, error) {
	if file.Size > s.maxSize {
		return "", fmt.Errorf("40001:file exceeds the %d MB limit", s.maxSize>>20)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFilename(file.Filename))
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write upload file: %w", err)
	}

	url := s.baseURL + "/" + name
	s.log.WithFields(logrus.Fields{"file": name, "size": file.Size}).Info("stored upload")
	return url, nil
}

// sanitizeFilename keeps the base name only and replaces anything that
// could escape the uploads directory or break a URL.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := b.String()
	if out == "" || out == "." {
		out = "file"
	}
	return out
}
