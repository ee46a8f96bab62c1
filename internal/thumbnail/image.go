package thumbnail

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Make decodes data (PNG, JPEG, GIF, BMP or WebP), shrinks it to fit into
// maxWidth x maxHeight keeping the aspect ratio and encodes it as PNG.
// Images already inside the box keep their size.
func Make(data []byte, maxWidth, maxHeight uint) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedImage, err)
	}

	thumb := resize.Thumbnail(maxWidth, maxHeight, img, resize.Lanczos3)

	buffer := new(bytes.Buffer)
	if err := png.Encode(buffer, thumb); err != nil {
		return nil, fmt.Errorf("error encoding thumbnail: %w", err)
	}

	return buffer.Bytes(), nil
}
