// Package compress re-serializes one PDF with flate-compressed content
// streams and stripped metadata.
package compress

import (
	"bytes"

	"github.com/unidoc/unidoc/pdf/core"
	pdf "github.com/unidoc/unidoc/pdf/model"

	"github.com/missdeer/mergepdf/pkg/codec"
	"github.com/missdeer/mergepdf/pkg/merge"
)

// Skip reasons surfaced to the user.
const (
	ReasonUnreadable  = "not a readable PDF"
	ReasonLocked      = "password required or incorrect"
	ReasonWriteFailed = "failed to write compressed PDF"
)

// Result describes one compression run. Buffer is nil iff Skipped is
// set. Pages reports how many pages were processed, even when the
// final write fails.
type Result struct {
	Name             string
	Buffer           *bytes.Buffer
	Pages            int
	Skipped          bool
	Reason           string
	MetadataStrategy string
}

// Run compresses a single document. Interactive prompting is never
// available here: an encrypted document that the default or per-source
// password cannot unlock is skipped.
func Run(src merge.Source, defaultPassword string) *Result {
	result := &Result{Name: src.Name}

	rs, err := merge.EnsureSeekable(src.Reader)
	if err != nil {
		return result.skip(ReasonUnreadable)
	}
	doc, err := codec.Open(rs)
	if err != nil {
		return result.skip(ReasonUnreadable)
	}

	encrypted, err := doc.Encrypted()
	if err != nil {
		return result.skip(ReasonUnreadable)
	}
	if encrypted {
		candidates := merge.PasswordCandidates(defaultPassword, src.Password)
		if !merge.ResolvePassword(doc, src.Name, candidates, nil) {
			return result.skip(ReasonLocked)
		}
	}

	pages, err := doc.Pages()
	if err != nil {
		return result.skip(ReasonUnreadable)
	}
	result.Pages = len(pages)

	for _, page := range pages {
		// A page whose rewrite fails is carried through unchanged.
		recompressPage(page)
	}
	result.MetadataStrategy = stripMetadata(pages)

	out := codec.NewWriter()
	for _, page := range pages {
		if err := out.AddPage(page); err != nil {
			return result.skip(ReasonWriteFailed)
		}
	}
	data, err := out.Bytes()
	if err != nil {
		return result.skip(ReasonWriteFailed)
	}

	result.Buffer = bytes.NewBuffer(data)
	return result
}

func (r *Result) skip(reason string) *Result {
	r.Buffer = nil
	r.Skipped = true
	r.Reason = reason
	return r
}

func recompressPage(page *pdf.PdfPage) error {
	content, err := page.GetAllContentStreams()
	if err != nil {
		return err
	}
	return page.SetContentStreams([]string{content}, core.NewFlateEncoder())
}
