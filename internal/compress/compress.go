// Package compress downscales and re-encodes raster images as JPEG before
// they are handed to object storage. Any decodable input format is accepted;
// the output is always JPEG.
package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/disintegration/imaging"
)

// DefaultMaxWidth is the widest an image is allowed to be after compression.
const DefaultMaxWidth = 1920

// ErrDecode is returned when the input cannot be decoded as an image.
var ErrDecode = errors.New("image decode failed")

// ErrEncode is returned when the decoded image cannot be re-encoded as JPEG.
var ErrEncode = errors.New("image encode failed")

// Result holds the compressed JPEG bytes and their pixel dimensions.
type Result struct {
	Data   []byte
	Width  int
	Height int
}

// Compress decodes r, scales the image down to at most maxWidth pixels wide
// (preserving aspect ratio; images already narrow enough keep their
// dimensions), and re-encodes it as JPEG at the given quality in (0,1].
func Compress(r io.Reader, quality float64, maxWidth int) (*Result, error) {
	if quality <= 0 || quality > 1 {
		return nil, fmt.Errorf("quality must be in (0,1], got %v", quality)
	}
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}

	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	width := img.Bounds().Dx()
	height := img.Bounds().Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: zero-dimension image", ErrEncode)
	}

	var buf bytes.Buffer
	q := int(math.Round(quality * 100))
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(q)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	return &Result{Data: buf.Bytes(), Width: width, Height: height}, nil
}
