package qrstyle

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	_ "image/gif"
	_ "image/jpeg"
)

// Render rasterizes a derived StyleOptions into an image. The caller is
// expected to pass a fully-defaulted structure produced by Derive; color
// strings that are not parseable hex fall back to black on white.
func Render(opts StyleOptions) (image.Image, error) {
	q, err := qrcode.New(opts.Content, recoveryLevel(opts.Level))
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR symbol: %w", err)
	}

	q.BackgroundColor = parseHexColor(opts.BackgroundColor, color.RGBA{255, 255, 255, 255})
	q.ForegroundColor = parseHexColor(opts.DotStyle.Color, color.RGBA{0, 0, 0, 255})
	q.DisableBorder = !opts.IncludeMargin

	symbol := q.Image(opts.Size)
	if opts.LogoOverlay == nil {
		return symbol, nil
	}

	logo, err := decodeDataURL(opts.LogoOverlay.Image)
	if err != nil {
		return nil, fmt.Errorf("failed to decode logo: %w", err)
	}

	out := image.NewRGBA(symbol.Bounds())
	draw.Draw(out, out.Bounds(), symbol, symbol.Bounds().Min, draw.Src)

	w, h := opts.LogoOverlay.Width, opts.LogoOverlay.Height
	x := out.Bounds().Min.X + (out.Bounds().Dx()-w)/2
	y := out.Bounds().Min.Y + (out.Bounds().Dy()-h)/2
	box := image.Rect(x, y, x+w, y+h)

	if opts.LogoOverlay.Excavate {
		// blank the modules underneath instead of drawing through them
		draw.Draw(out, box, image.NewUniform(q.BackgroundColor), image.Point{}, draw.Src)
	}
	draw.Draw(out, box, scaleNearest(logo, w, h), image.Point{}, draw.Over)

	return out, nil
}

// RenderPNG renders the symbol and encodes it as PNG bytes.
func RenderPNG(opts StyleOptions) ([]byte, error) {
	img, err := Render(opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

func recoveryLevel(l Level) qrcode.RecoveryLevel {
	switch l {
	case LevelLow:
		return qrcode.Low
	case LevelMedium:
		return qrcode.Medium
	case LevelQuartile:
		return qrcode.High
	default:
		return qrcode.Highest
	}
}

// parseHexColor accepts #RGB and #RRGGBB; anything else yields def.
func parseHexColor(s string, def color.RGBA) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")

	hexByte := func(hi, lo byte) (byte, bool) {
		v := 0
		for _, c := range []byte{hi, lo} {
			switch {
			case c >= '0' && c <= '9':
				v = v*16 + int(c-'0')
			case c >= 'a' && c <= 'f':
				v = v*16 + int(c-'a'+10)
			case c >= 'A' && c <= 'F':
				v = v*16 + int(c-'A'+10)
			default:
				return 0, false
			}
		}
		return byte(v), true
	}

	switch len(s) {
	case 6:
		r, ok1 := hexByte(s[0], s[1])
		g, ok2 := hexByte(s[2], s[3])
		b, ok3 := hexByte(s[4], s[5])
		if ok1 && ok2 && ok3 {
			return color.RGBA{r, g, b, 255}
		}
	case 3:
		r, ok1 := hexByte(s[0], s[0])
		g, ok2 := hexByte(s[1], s[1])
		b, ok3 := hexByte(s[2], s[2])
		if ok1 && ok2 && ok3 {
			return color.RGBA{r, g, b, 255}
		}
	}
	return def
}

func decodeDataURL(s string) (image.Image, error) {
	comma := strings.Index(s, ",")
	if !strings.HasPrefix(s, "data:") || comma < 0 {
		return nil, fmt.Errorf("not a data URL")
	}
	raw, err := base64.StdEncoding.DecodeString(s[comma+1:])
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	return img, err
}

func scaleNearest(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	sb := src.Bounds()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx := sb.Min.X + x*sb.Dx()/w
			sy := sb.Min.Y + y*sb.Dy()/h
			dst.Set(x, y, src.At(sx, sy))
		}
	}
	return dst
}
