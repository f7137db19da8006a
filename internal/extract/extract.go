// Package extract turns stored material artifacts into plain text.
package extract

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sbilibin2017/studydesk/internal/models"
)

var (
	// ErrUnparseable is returned when an artifact is corrupt, not valid for
	// its declared type, or yields no text.
	ErrUnparseable = errors.New("material could not be parsed")
	// ErrUnsupported is returned for file types without an extractor.
	ErrUnsupported = errors.New("unsupported file type")
)

// Text returns the plain text of data interpreted as fileType.
func Text(data []byte, fileType string) (string, error) {
	var (
		text string
		err  error
	)

	switch fileType {
	case models.FileTypePDF:
		text, err = pdfText(data)
	case models.FileTypeTXT:
		text, err = plainText(data)
	case models.FileTypeDOCX:
		text, err = docxText(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupported, fileType)
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: no text content", ErrUnparseable)
	}
	return text, nil
}

func plainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: text is not valid UTF-8", ErrUnparseable)
	}
	return string(data), nil
}
