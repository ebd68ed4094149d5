package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UploadService stores uploaded photos under a public directory and hands
// back stable filenames.
type UploadService struct {
	Dir string
}

func NewUploadService(dir string) *UploadService {
	return &UploadService{Dir: dir}
}

func (s *UploadService) ensureDir() error {
	return os.MkdirAll(s.Dir, 0755)
}

// SaveFile writes one multipart file under a fresh name that keeps the
// original extension.
func (s *UploadService) SaveFile(fh *multipart.FileHeader) (string, error) {
	if err := s.ensureDir(); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := uuid.NewString() + ext
	dst := filepath.Join(s.Dir, name)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return name, nil
}

// DownloadByLink fetches an image from a URL into the uploads directory and
// returns the generated filename.
func (s *UploadService) DownloadByLink(link string) (string, error) {
	if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
		return "", fmt.Errorf("%w: link must be an http(s) url", ErrValidation)
	}

	if err := s.ensureDir(); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	resp, err := http.Get(link)
	if err != nil {
		return "", fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download image: unexpected status %s", resp.Status)
	}

	name := fmt.Sprintf("photo%d.jpg", time.Now().UnixNano())
	out, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return name, nil
}
