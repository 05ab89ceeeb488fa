// Package codec wraps the unidoc PDF library behind a small decode and
// assemble surface so the rest of the module never touches the library
// directly.
package codec

import (
	"fmt"
	"io"

	pdf "github.com/unidoc/unidoc/pdf/model"
)

// InitError reports that the underlying PDF codec is unusable.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("pdf codec unavailable: %v", e.Err)
}

// Init verifies the codec can assemble a document at all. Front ends
// call it once at startup so a broken codec surfaces as a typed error
// instead of failing mid-run.
func Init() error {
	w := NewWriter()
	if _, err := w.Bytes(); err != nil {
		return &InitError{Err: err}
	}
	return nil
}

// Document is a decoded, page-addressable PDF.
type Document struct {
	reader *pdf.PdfReader
}

// Open decodes a PDF from rs. The stream must be positioned at its
// start; Open does not seek on the caller's behalf.
func Open(rs io.ReadSeeker) (*Document, error) {
	reader, err := pdf.NewPdfReader(rs)
	if err != nil {
		return nil, err
	}
	return &Document{reader: reader}, nil
}

// Encrypted reports whether the document carries encryption.
func (d *Document) Encrypted() (bool, error) {
	return d.reader.IsEncrypted()
}

// Unlock attempts password and reports plain success or failure.
// The underlying decrypt call returns a success flag and an error;
// both a false flag and any error count as failure here, so callers
// only ever deal with a boolean.
func (d *Document) Unlock(password string) bool {
	ok, err := d.reader.Decrypt([]byte(password))
	if err != nil {
		return false
	}
	return ok
}

// NumPages returns the page count.
func (d *Document) NumPages() (int, error) {
	return d.reader.GetNumPages()
}

// Page returns the n-th page, 1-based.
func (d *Document) Page(n int) (*pdf.PdfPage, error) {
	return d.reader.GetPage(n)
}

// Pages returns every page in original order.
func (d *Document) Pages() ([]*pdf.PdfPage, error) {
	numPages, err := d.reader.GetNumPages()
	if err != nil {
		return nil, err
	}
	pages := make([]*pdf.PdfPage, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page, err := d.reader.GetPage(i)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// Writer accumulates pages and serializes them as one unencrypted PDF.
type Writer struct {
	writer pdf.PdfWriter
}

// NewWriter returns an empty output document.
func NewWriter() *Writer {
	return &Writer{writer: pdf.NewPdfWriter()}
}

// AddPage appends page to the output. A page may legally omit its
// resource dictionary (it is inheritable), but the underlying writer
// assumes one is present, so an empty one is filled in first.
func (w *Writer) AddPage(page *pdf.PdfPage) error {
	if page.Resources == nil {
		page.Resources = pdf.NewPdfPageResources()
	}
	return w.writer.AddPage(page)
}

// Bytes serializes the accumulated document.
func (w *Writer) Bytes() ([]byte, error) {
	var buf writeSeekBuffer
	if err := w.writer.Write(&buf); err != nil {
		return nil, err
	}
	return buf.bytes(), nil
}
