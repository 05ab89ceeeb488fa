package merge

import (
	"bytes"
	"io"
	"io/ioutil"
)

// Source is one input to the merge pipeline: a name for diagnostics, a
// byte stream and an optional per-document password.
type Source struct {
	Name     string
	Reader   io.Reader
	Password string
}

// Result summarizes one merge invocation. Buffer is nil unless at least
// one document merged. When a document fails mid-append its earlier
// pages stay in the output; the document is still counted as skipped.
type Result struct {
	Buffer       *bytes.Buffer
	MergedCount  int
	SkippedCount int
	SkippedFiles []string
}

func (r *Result) skip(name string) {
	r.SkippedCount++
	r.SkippedFiles = append(r.SkippedFiles, name)
}

// EnsureSeekable returns a stream positioned at its start. A seekable
// reader is rewound in place; anything else is copied into memory once
// and a fresh wrapper is returned, leaving the original untouched.
func EnsureSeekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		if _, err := rs.Seek(0, io.SeekStart); err == nil {
			return rs, nil
		}
	}
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}
