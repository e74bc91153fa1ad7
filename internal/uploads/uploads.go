package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrUnsupportedFileType = errors.New("unsupported file type")

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

// Service stores uploaded listing images on disk and hands back the public
// URL the stored file is served under.
type Service struct {
	dir     string
	baseURL string
	logger  *logrus.Logger
}

func NewService(dir, baseURL string, logger *logrus.Logger) (*Service, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Service{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}, nil
}

// Dir returns the directory uploads are written to, for static serving.
func (s *Service) Dir() string {
	return s.dir
}

// Save writes one uploaded file under a fresh unique name and returns its
// URL. The original filename only contributes its extension.
func (s *Service) Save(header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, ext)
	}

	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	s.logger.WithFields(logrus.Fields{
		"file": name,
		"size": header.Size,
	}).Info("Stored uploaded image")

	return s.baseURL + "/" + name, nil
}
