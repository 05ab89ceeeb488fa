// Package testpdf builds small PDF fixtures for tests.
package testpdf

import (
	"bytes"
	"io/ioutil"
	"os"
	"testing"

	pdf "github.com/unidoc/unidoc/pdf/model"
)

// New returns a PDF with the given number of blank letter-sized pages.
func New(t *testing.T, pages int) []byte {
	t.Helper()
	widths := make([]float64, pages)
	for i := range widths {
		widths[i] = 612
	}
	return NewSized(t, widths)
}

// NewSized returns a PDF with one blank page per entry, each page
// width taken from the entry. Distinct widths make page order
// observable after a merge. Pages are assembled directly with the
// model writer; each one carries an explicit MediaBox and an empty
// resource dictionary.
func NewSized(t *testing.T, widths []float64) []byte {
	t.Helper()
	writer := pdf.NewPdfWriter()
	for _, width := range widths {
		if err := writer.AddPage(blankPage(width)); err != nil {
			t.Fatalf("adding fixture page: %v", err)
		}
	}
	return write(t, &writer)
}

// NewEncrypted returns a PDF with blank pages encrypted under password.
func NewEncrypted(t *testing.T, pages int, password string) []byte {
	t.Helper()
	writer := pdf.NewPdfWriter()
	if err := writer.Encrypt([]byte(password), []byte(password), nil); err != nil {
		t.Fatalf("encrypting fixture: %v", err)
	}
	for i := 0; i < pages; i++ {
		if err := writer.AddPage(blankPage(612)); err != nil {
			t.Fatalf("adding fixture page: %v", err)
		}
	}
	return write(t, &writer)
}

// NumPages parses data and returns its page count.
func NumPages(t *testing.T, data []byte) int {
	t.Helper()
	reader, err := pdf.NewPdfReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	n, err := reader.GetNumPages()
	if err != nil {
		t.Fatalf("counting pages: %v", err)
	}
	return n
}

// PageWidths returns the MediaBox width of every page in order.
func PageWidths(t *testing.T, data []byte) []float64 {
	t.Helper()
	reader, err := pdf.NewPdfReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	n, err := reader.GetNumPages()
	if err != nil {
		t.Fatalf("counting pages: %v", err)
	}
	var widths []float64
	for i := 1; i <= n; i++ {
		page, err := reader.GetPage(i)
		if err != nil {
			t.Fatalf("page %d: %v", i, err)
		}
		if page.MediaBox == nil {
			t.Fatalf("page %d has no MediaBox", i)
		}
		widths = append(widths, page.MediaBox.Urx-page.MediaBox.Llx)
	}
	return widths
}

func blankPage(width float64) *pdf.PdfPage {
	page := pdf.NewPdfPage()
	page.MediaBox = &pdf.PdfRectangle{Llx: 0, Lly: 0, Urx: width, Ury: 792}
	page.Resources = pdf.NewPdfPageResources()
	return page
}

func write(t *testing.T, writer *pdf.PdfWriter) []byte {
	t.Helper()
	f, err := ioutil.TempFile("", "testpdf*.pdf")
	if err != nil {
		t.Fatal(err)
	}
	path := f.Name()
	defer os.Remove(path)
	err = writer.Write(f)
	f.Close()
	if err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}
