// Package exif turns raw image bytes into tag tables and summary statistics.
package exif

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strconv"
	"strings"

	goexif "github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
	_ "golang.org/x/image/tiff" // register TIFF, the native EXIF container
)

// ErrNotImage is returned when the input bytes cannot be decoded as an image
var ErrNotImage = errors.New("not a decodable image")

// Bulky binary tags that carry no analytic value
var excludedTags = map[string]bool{
	"JPEGThumbnail": true,
	"TIFFThumbnail": true,
	"Filename":      true,
	"MakerNote":     true,
}

// Extract parses the embedded metadata of an image and returns a flat
// tag name -> string value mapping. An image without an EXIF segment
// (PNGs, re-encoded JPEGs) yields an empty mapping, not an error.
func Extract(data []byte) (map[string]string, error) {
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, ErrNotImage
	}
	return walkTags(data), nil
}

// walkTags collects every tag the EXIF parser can read. Malformed vendor
// blobs make goexif panic instead of returning an error; those images keep
// whatever tags were collected before the parser gave up.
func walkTags(data []byte) (tags map[string]string) {
	tags = map[string]string{}
	defer func() {
		_ = recover()
	}()
	x, err := goexif.Decode(bytes.NewReader(data))
	if err != nil {
		return tags
	}
	_ = x.Walk(&tagCollector{tags: tags})
	return tags
}

type tagCollector struct {
	tags map[string]string
}

func (tc *tagCollector) Walk(name goexif.FieldName, tag *tiff.Tag) error {
	if tag == nil || excludedTags[string(name)] {
		return nil
	}
	tc.tags[string(name)] = tagValue(tag)
	return nil
}

// tagValue renders one tag component-wise. Rationals keep their
// "numerator/denominator" form so downstream parsing sees the same
// representation cameras write.
func tagValue(tag *tiff.Tag) string {
	count := int(tag.Count)
	if count < 1 {
		return ""
	}
	parts := make([]string, 0, count)
	for i := 0; i < count; i++ {
		switch tag.Format() {
		case tiff.StringVal:
			s, err := tag.StringVal()
			if err != nil {
				return cleanTagString(tag.String())
			}
			return cleanTagString(s)
		case tiff.RatVal:
			num, den, err := tag.Rat2(i)
			if err != nil {
				return cleanTagString(tag.String())
			}
			parts = append(parts, strconv.FormatInt(num, 10)+"/"+strconv.FormatInt(den, 10))
		case tiff.IntVal:
			v, err := tag.Int64(i)
			if err != nil {
				return cleanTagString(tag.String())
			}
			parts = append(parts, strconv.FormatInt(v, 10))
		case tiff.FloatVal:
			v, err := tag.Float(i)
			if err != nil {
				return cleanTagString(tag.String())
			}
			parts = append(parts, strconv.FormatFloat(v, 'f', -1, 64))
		default:
			return cleanTagString(tag.String())
		}
	}
	return strings.Join(parts, ", ")
}

func cleanTagString(s string) string {
	s = strings.Trim(s, "\"")
	s = strings.TrimRight(s, "\x00")
	return strings.TrimSpace(s)
}
