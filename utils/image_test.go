package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/require"
)

func encodeJPEG(t *testing.T, img image.Image) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, jpeg.Encode(buf, img, nil))
	return buf.Bytes()
}

func TestStripMetadata(t *testing.T) {
	data := encodeJPEG(t, image.NewRGBA(image.Rect(0, 0, 10, 10)))
	stripped, err := StripMetadata(data)
	require.NoError(t, err)

	img, err := DecodeImage(stripped)
	require.NoError(t, err)
	require.Equal(t, 10, img.Bounds().Dx())
}

func TestStripMetadataNotAnImage(t *testing.T) {
	_, err := StripMetadata([]byte("nope"))
	require.Error(t, err)
}

func TestThumbnailDownscales(t *testing.T) {
	data := encodeJPEG(t, image.NewRGBA(image.Rect(0, 0, 800, 400)))
	thumb, err := Thumbnail(data, 200)
	require.NoError(t, err)

	img, err := DecodeImage(thumb)
	require.NoError(t, err)
	require.Equal(t, 200, img.Bounds().Dx())
	require.Equal(t, 100, img.Bounds().Dy())
}

func TestThumbnailKeepsSmallImages(t *testing.T) {
	data := encodeJPEG(t, image.NewRGBA(image.Rect(0, 0, 50, 50)))
	thumb, err := Thumbnail(data, 200)
	require.NoError(t, err)

	img, err := DecodeImage(thumb)
	require.NoError(t, err)
	require.Equal(t, 50, img.Bounds().Dx())
}

func TestHistogramHSV(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})                 // pure red
	img.Set(1, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255}) // white
	img.Set(0, 1, color.RGBA{A: 255})                         // black
	img.Set(1, 1, color.RGBA{A: 255})                         // black

	hist := HistogramHSV(img)

	total := 0
	for _, count := range hist.Value {
		total += count
	}
	require.Equal(t, 4, total)

	require.Equal(t, 2, hist.Value[0])   // two black pixels
	require.Equal(t, 2, hist.Value[255]) // red and white are full-value
	require.Equal(t, 1, hist.Saturation[255])
	require.Equal(t, 4, hist.Hue[0]) // red, black and white all land in hue bin 0
}
