package compress

import (
	"github.com/unidoc/unidoc/pdf/core"
	pdf "github.com/unidoc/unidoc/pdf/model"
)

// Names of the metadata-stripping strategies, in probe order.
const (
	MetadataRemoved = "removed"
	MetadataEmptied = "emptied"
	MetadataKept    = "none"
)

type metadataStrategy struct {
	name  string
	apply func(pages []*pdf.PdfPage) error
}

// metadataStrategies is probed in order until one succeeds; swappable
// so tests can fail individual legs.
var metadataStrategies = []metadataStrategy{
	{MetadataRemoved, removeMetadata},
	{MetadataEmptied, emptyMetadata},
	{MetadataKept, func([]*pdf.PdfPage) error { return nil }},
}

// stripMetadata applies the first working strategy and reports which
// one took effect.
func stripMetadata(pages []*pdf.PdfPage) string {
	for _, strategy := range metadataStrategies {
		if err := strategy.apply(pages); err == nil {
			return strategy.name
		}
	}
	return MetadataKept
}

func removeMetadata(pages []*pdf.PdfPage) error {
	for _, page := range pages {
		page.Metadata = nil
	}
	return nil
}

func emptyMetadata(pages []*pdf.PdfPage) error {
	for _, page := range pages {
		page.Metadata = &core.PdfObjectStream{Stream: []byte{}}
	}
	return nil
}
