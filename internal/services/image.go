package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"strings"

	// Decoders registered with image.Decode.
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/google/generative-ai-go/genai"
)

const dataURIPrefix = "data:"

// MaxImagePixels caps width*height of an uploaded image. Headers are checked
// before decoding so a small payload cannot claim a huge pixel buffer.
const MaxImagePixels = 178_956_970

// IsDataURI reports whether s looks like an inline data URI. Anything else
// in the image field is treated as if no image was sent.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, dataURIPrefix)
}

// DecodeDataURI turns a data:<mime>;base64,<payload> string into an RGB JPEG
// blob for the model. It returns a nil part and no error when s is not a
// data URI.
func DecodeDataURI(s string) (genai.Part, error) {
	if !IsDataURI(s) {
		return nil, nil
	}

	_, payload, found := strings.Cut(s, ",")
	if !found {
		return nil, fmt.Errorf("image data URI has no payload separator")
	}

	raw, err := base64.StdEncoding.DecodeString(stripNonBase64(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image base64: %w", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image header: %w", err)
	}
	if pixels := int64(cfg.Width) * int64(cfg.Height); pixels > MaxImagePixels {
		return nil, fmt.Errorf("image is %dx%d, above the %d pixel limit", cfg.Width, cfg.Height, MaxImagePixels)
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, toRGB(img), &jpeg.Options{Quality: jpeg.DefaultQuality}); err != nil {
		return nil, fmt.Errorf("failed to re-encode %s image: %w", format, err)
	}

	return genai.ImageData("jpeg", buf.Bytes()), nil
}

// stripNonBase64 drops characters outside the standard alphabet, so line
// breaks and stray whitespace in the payload are tolerated.
func stripNonBase64(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == '+', r == '/', r == '=':
			return r
		}
		return -1
	}, s)
}

// toRGB flattens img to opaque pixels. Alpha is discarded rather than
// composited, colors keep their straight (non-premultiplied) values.
func toRGB(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			dst.SetRGBA(x-b.Min.X, y-b.Min.Y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	return dst
}
