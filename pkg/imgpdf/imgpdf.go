// Package imgpdf converts a batch of images into one multi-page PDF.
package imgpdf

import (
	"bytes"
	"image"
	"image/draw"
	"io"

	// Stdlib and x/image decoders for the upload formats we accept.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/missdeer/mergepdf/pkg/codec"
	"github.com/missdeer/mergepdf/pkg/merge"
)

// Source is one image input: a name for diagnostics and a byte stream.
type Source struct {
	Name   string
	Reader io.Reader
}

// Result summarizes one conversion. Buffer is nil unless at least one
// image made it into the output. When the final assembly fails, every
// decoded image is reclassified as skipped: assembly is all-or-nothing.
type Result struct {
	Buffer         *bytes.Buffer
	ProcessedCount int
	SkippedCount   int
	SkippedFiles   []string
}

// assemble is swappable so tests can simulate an assembly failure.
var assemble = codec.ImagesToPDF

// Convert decodes each source in order, normalizes its color mode and
// assembles all decoded images into one PDF. Per-image decode failures
// are recorded as skipped and do not stop the batch.
func Convert(sources []Source) *Result {
	result := &Result{}
	var images []image.Image
	var imageNames []string

	for _, src := range sources {
		rs, err := merge.EnsureSeekable(src.Reader)
		if err != nil {
			result.SkippedCount++
			result.SkippedFiles = append(result.SkippedFiles, src.Name)
			continue
		}
		img, _, err := image.Decode(rs)
		if err != nil {
			result.SkippedCount++
			result.SkippedFiles = append(result.SkippedFiles, src.Name)
			continue
		}
		images = append(images, normalize(img))
		imageNames = append(imageNames, src.Name)
	}

	if len(images) == 0 {
		return result
	}

	data, err := assemble(images)
	if err != nil {
		// Nothing usable came out; the decoded images count as skipped too.
		result.SkippedCount += len(images)
		result.SkippedFiles = append(result.SkippedFiles, imageNames...)
		return result
	}

	result.ProcessedCount = len(images)
	result.Buffer = bytes.NewBuffer(data)
	return result
}

// normalize forces a plain RGB representation: paletted, grayscale and
// alpha-carrying images are composited onto an opaque white canvas.
func normalize(img image.Image) image.Image {
	if _, ok := img.(*image.RGBA); ok {
		return img
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), image.White, image.ZP, draw.Src)
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Over)
	return rgba
}
