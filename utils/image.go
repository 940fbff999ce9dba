package utils

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
)

// DecodeImage decodes JPEG, PNG and GIF images from an in-memory buffer
func DecodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// StripMetadata re-encodes an image as a plain JPEG. Encoding from the
// decoded pixel data drops every metadata segment of the original file.
func StripMetadata(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	out := &bytes.Buffer{}
	if err = jpeg.Encode(out, img, &jpeg.Options{Quality: 100}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Thumbnail scales an image down to the given width (keeping aspect ratio)
// and returns it JPEG-encoded. Images already narrower are re-encoded as-is.
func Thumbnail(data []byte, width uint) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if uint(img.Bounds().Dx()) > width {
		img = resize.Resize(width, 0, img, resize.Lanczos3)
	}
	out := &bytes.Buffer{}
	if err = jpeg.Encode(out, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// HSVHistogram counts pixels into 256 bins per HSV channel
type HSVHistogram struct {
	Hue        [256]int `json:"hue"`
	Saturation [256]int `json:"saturation"`
	Value      [256]int `json:"value"`
}

func HistogramHSV(img image.Image) HSVHistogram {
	hist := HSVHistogram{}
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			h, s, v := rgbToHSV(uint8(r>>8), uint8(g>>8), uint8(b>>8))
			hist.Hue[h]++
			hist.Saturation[s]++
			hist.Value[v]++
		}
	}
	return hist
}

// rgbToHSV converts to the byte-scaled HSV used by PIL-style histograms,
// with all three channels in 0..255.
func rgbToHSV(r, g, b uint8) (uint8, uint8, uint8) {
	maxC := r
	if g > maxC {
		maxC = g
	}
	if b > maxC {
		maxC = b
	}
	minC := r
	if g < minC {
		minC = g
	}
	if b < minC {
		minC = b
	}
	v := maxC
	delta := int(maxC) - int(minC)
	if maxC == 0 || delta == 0 {
		return 0, 0, v
	}
	s := uint8(255 * delta / int(maxC))
	var hue int
	switch maxC {
	case r:
		hue = (int(g) - int(b)) * 60 / delta
	case g:
		hue = 120 + (int(b)-int(r))*60/delta
	default:
		hue = 240 + (int(r)-int(g))*60/delta
	}
	if hue < 0 {
		hue += 360
	}
	return uint8(hue * 255 / 360), s, v
}
