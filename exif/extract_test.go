package exif

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"fusion/utils"

	"github.com/stretchr/testify/require"
)

// buildTIFF assembles a minimal little-endian TIFF block: IFD0 with a
// Model tag and an Exif sub-IFD holding ExposureTime, ISOSpeedRatings,
// FocalLength and a MakerNote.
func buildTIFF(model string, expNum, expDen uint32, iso uint16, focalNum, focalDen uint32) []byte {
	buf := &bytes.Buffer{}
	write := func(v interface{}) {
		_ = binary.Write(buf, binary.LittleEndian, v)
	}
	writeEntry := func(tag, typ uint16, count, value uint32) {
		write(tag)
		write(typ)
		write(count)
		write(value)
	}

	modelData := append([]byte(model), 0)
	modelOffset := uint32(38) // header(8) + count(2) + 2 entries(24) + next(4)
	exifIFD := modelOffset + uint32(len(modelData))
	expOffset := exifIFD + 2 + 4*12 + 4
	focalOffset := expOffset + 8

	buf.WriteString("II")
	write(uint16(0x2A))
	write(uint32(8))
	// IFD0
	write(uint16(2))
	writeEntry(0x0110, 2, uint32(len(modelData)), modelOffset) // Model, ASCII
	writeEntry(0x8769, 4, 1, exifIFD)                          // Exif IFD pointer
	write(uint32(0))
	buf.Write(modelData)
	// Exif sub-IFD
	write(uint16(4))
	writeEntry(0x829A, 5, 1, expOffset) // ExposureTime, RATIONAL
	write(uint16(0x8827))               // ISOSpeedRatings, SHORT, inline
	write(uint16(3))
	write(uint32(1))
	write(iso)
	write(uint16(0))
	writeEntry(0x920A, 5, 1, focalOffset) // FocalLength, RATIONAL
	writeEntry(0x927C, 7, 4, 0x44434241)  // MakerNote, UNDEFINED, "ABCD" inline
	write(uint32(0))
	write(expNum)
	write(expDen)
	write(focalNum)
	write(focalDen)
	return buf.Bytes()
}

// buildJPEG splices an Exif APP1 segment into a freshly encoded JPEG
func buildJPEG(t *testing.T, tiffData []byte) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	base := &bytes.Buffer{}
	require.NoError(t, jpeg.Encode(base, img, nil))

	payload := append([]byte("Exif\x00\x00"), tiffData...)
	out := &bytes.Buffer{}
	out.Write([]byte{0xFF, 0xD8}) // SOI
	out.Write([]byte{0xFF, 0xE1}) // APP1
	length := len(payload) + 2
	out.WriteByte(byte(length >> 8))
	out.WriteByte(byte(length))
	out.Write(payload)
	out.Write(base.Bytes()[2:])
	return out.Bytes()
}

func testJPEG(t *testing.T, model string) []byte {
	return buildJPEG(t, buildTIFF(model, 1, 250, 100, 50, 1))
}

func TestExtract(t *testing.T) {
	tags, err := Extract(testJPEG(t, "Canon EOS 80D"))
	require.NoError(t, err)
	require.Equal(t, "Canon EOS 80D", tags["Model"])
	require.Equal(t, "1/250", tags["ExposureTime"])
	require.Equal(t, "100", tags["ISOSpeedRatings"])
	require.Equal(t, "50/1", tags["FocalLength"])
}

func TestExtractExcludesBinaryTags(t *testing.T) {
	tags, err := Extract(testJPEG(t, "X100"))
	require.NoError(t, err)
	for name := range excludedTags {
		require.NotContains(t, tags, name)
	}
}

func TestExtractShortMakerNote(t *testing.T) {
	// The fixture's MakerNote is 4 bytes - shorter than any vendor header.
	// Extraction must survive it and still never emit the tag.
	var tags map[string]string
	var err error
	require.NotPanics(t, func() {
		tags, err = Extract(testJPEG(t, "Canon EOS 80D"))
	})
	require.NoError(t, err)
	require.NotContains(t, tags, "MakerNote")
	require.Equal(t, "Canon EOS 80D", tags["Model"])
}

func TestExtractBareTIFF(t *testing.T) {
	tags, err := Extract(buildTIFF("Canon EOS 80D", 1, 250, 100, 50, 1))
	require.NoError(t, err)
	require.Equal(t, "Canon EOS 80D", tags["Model"])
	require.Equal(t, "1/250", tags["ExposureTime"])
}

func TestExtractNoExifSegment(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))

	tags, err := Extract(buf.Bytes())
	require.NoError(t, err)
	require.Empty(t, tags)
}

func TestExtractNotAnImage(t *testing.T) {
	_, err := Extract([]byte("definitely not an image"))
	require.ErrorIs(t, err, ErrNotImage)
}

func TestExtractAfterStrip(t *testing.T) {
	stripped, err := utils.StripMetadata(testJPEG(t, "Canon EOS 80D"))
	require.NoError(t, err)

	tags, err := Extract(stripped)
	require.NoError(t, err)
	require.Empty(t, tags)
}
