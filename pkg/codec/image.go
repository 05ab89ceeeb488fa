package codec

import (
	goimage "image"

	"github.com/unidoc/unidoc/pdf/creator"
)

const pageWidth = 612.0

// ImagesToPDF lays each image out on its own page, scaled to a letter
// page width with proportional height, and serializes the result.
func ImagesToPDF(images []goimage.Image) ([]byte, error) {
	c := creator.New()
	for _, goimg := range images {
		img, err := creator.NewImageFromGoImage(goimg)
		if err != nil {
			return nil, err
		}
		img.ScaleToWidth(pageWidth)
		height := pageWidth * img.Height() / img.Width()
		c.SetPageSize(creator.PageSize{pageWidth, height})
		c.NewPage()
		img.SetPos(0, 0)
		if err := c.Draw(img); err != nil {
			return nil, err
		}
	}

	var buf writeSeekBuffer
	if err := c.Write(&buf); err != nil {
		return nil, err
	}
	return buf.bytes(), nil
}
