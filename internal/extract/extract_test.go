package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPDF renders a minimal PDF with one line of text per page.
func buildPDF(t *testing.T, pages ...string) []byte {
	t.Helper()

	var objects []string
	n := len(pages)
	fontID := 3 + 2*n

	kids := ""
	for i := range pages {
		kids += fmt.Sprintf("%d 0 R ", 3+2*i)
	}

	objects = append(objects,
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, n),
	)
	for i, text := range pages {
		stream := fmt.Sprintf("BT /F1 12 Tf 72 712 Td (%s) Tj ET", text)
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>", fontID, 4+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		)
	}
	objects = append(objects, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

func buildDOCX(t *testing.T, body string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` + body + `</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func TestPageCount(t *testing.T) {
	n, err := PageCount(buildPDF(t, "one", "two", "three"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = PageCount([]byte("not a pdf at all"))
	assert.ErrorIs(t, err, ErrUnparseable)
}

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		fileType string
		want     []string
		wantErr  error
	}{
		{
			name:     "txt",
			data:     []byte("Photosynthesis converts light."),
			fileType: "txt",
			want:     []string{"Photosynthesis converts light."},
		},
		{
			name:     "txt invalid utf8",
			data:     []byte{0xff, 0xfe, 0xfd},
			fileType: "txt",
			wantErr:  ErrUnparseable,
		},
		{
			name:     "txt blank",
			data:     []byte("  \n\t "),
			fileType: "txt",
			wantErr:  ErrUnparseable,
		},
		{
			name:     "pdf",
			data:     buildPDF(t, "Hello page one", "Hello page two"),
			fileType: "pdf",
			want:     []string{"Hello page one", "Hello page two"},
		},
		{
			name:     "pdf corrupt",
			data:     []byte("%PDF-1.4\ngarbage"),
			fileType: "pdf",
			wantErr:  ErrUnparseable,
		},
		{
			name:     "docx",
			data:     buildDOCX(t, `<w:p><w:r><w:t>Cells divide.</w:t></w:r></w:p><w:p><w:r><w:t xml:space="preserve">Mitosis </w:t></w:r><w:r><w:t>has phases.</w:t></w:r></w:p>`),
			fileType: "docx",
			want:     []string{"Cells divide.\n", "Mitosis has phases.\n"},
		},
		{
			name:     "docx not a zip",
			data:     []byte("plain"),
			fileType: "docx",
			wantErr:  ErrUnparseable,
		},
		{
			name:     "unknown type",
			data:     []byte("x"),
			fileType: "md",
			wantErr:  ErrUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Text(tt.data, tt.fileType)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestDocxMissingBody(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = Text(buf.Bytes(), "docx")
	assert.ErrorIs(t, err, ErrUnparseable)
}
