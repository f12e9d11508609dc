// Package upload validates and stores the files attached to a project.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var ErrInvalidFile = errors.New("invalid upload")

var (
	ImageExtensions = []string{"png", "jpg", "jpeg"}
	PDFExtensions   = []string{"pdf"}
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// Allowed reports whether the text after the last dot in filename, lowercased,
// is one of exts. Only the name is inspected, never the content.
func Allowed(filename string, exts []string) bool {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return false
	}
	ext := strings.ToLower(filename[i+1:])
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// SanitizeFilename reduces name to a flat ASCII filename safe to join onto an
// upload directory. It may return "".
func SanitizeFilename(name string) string {
	name = norm.NFKD.String(name)

	var b strings.Builder
	for _, r := range name {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}
	name = b.String()

	name = strings.NewReplacer("/", " ", `\`, " ").Replace(name)
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}

// Store writes uploads into two fixed directories. Files are keyed by their
// sanitized name; a later upload with the same name overwrites.
type Store struct {
	imageDir string
	pdfDir   string
}

func NewStore(imageDir, pdfDir string) *Store {
	return &Store{imageDir: imageDir, pdfDir: pdfDir}
}

// SaveProjectFiles checks both files before writing either of them and
// returns the on-disk paths.
func (s *Store) SaveProjectFiles(image, pdf *multipart.FileHeader) (imagePath, pdfPath string, err error) {
	imageName, err := validate(image, ImageExtensions)
	if err != nil {
		return "", "", err
	}
	pdfName, err := validate(pdf, PDFExtensions)
	if err != nil {
		return "", "", err
	}

	imagePath, err = save(image, s.imageDir, imageName)
	if err != nil {
		return "", "", fmt.Errorf("save image: %w", err)
	}
	pdfPath, err = save(pdf, s.pdfDir, pdfName)
	if err != nil {
		return "", "", fmt.Errorf("save pdf: %w", err)
	}
	return imagePath, pdfPath, nil
}

func validate(fh *multipart.FileHeader, exts []string) (string, error) {
	if fh == nil || fh.Filename == "" {
		return "", ErrInvalidFile
	}
	if !Allowed(fh.Filename, exts) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFile, fh.Filename)
	}
	name := SanitizeFilename(fh.Filename)
	if name == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidFile, fh.Filename)
	}
	return name, nil
}

func save(fh *multipart.FileHeader, dir, name string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return path, dst.Close()
}
