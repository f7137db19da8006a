package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PageCount returns the number of pages of a PDF document.
func PageCount(data []byte) (n int, err error) {
	defer recoverParse(&err)

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	return r.NumPage(), nil
}

// pdfText concatenates the text of every page, one page per line block.
func pdfText(data []byte) (text string, err error) {
	defer recoverParse(&err)

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnparseable, err)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrUnparseable, i, err)
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// recoverParse converts a panic inside the PDF reader into ErrUnparseable.
func recoverParse(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrUnparseable, r)
	}
}
