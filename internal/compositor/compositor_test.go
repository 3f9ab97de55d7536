package compositor

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"testing/fstest"
	"unicode/utf8"

	"github.com/zhubert/qrpack/internal/errors"
	"github.com/zhubert/qrpack/internal/state"
)

// small keeps renders fast while leaving room below the symbol for the
// page numbers.
var small = Options{Width: 1000, Height: 1400, QRSize: 800}

func pngBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func sameRGB(c color.Color, want color.RGBA) bool {
	r, g, b, _ := c.RGBA()
	return uint8(r>>8) == want.R && uint8(g>>8) == want.G && uint8(b>>8) == want.B
}

// countColor counts pixels in r that match want.
func countColor(img *image.RGBA, r image.Rectangle, want color.RGBA) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if sameRGB(img.At(x, y), want) {
				n++
			}
		}
	}
	return n
}

// belowSymbol is the strip between the symbol and the bottom edge.
func belowSymbol(o Options) image.Rectangle {
	pos := (o.Width - o.QRSize) / 2
	return image.Rect(0, pos+o.QRSize, o.Width, o.Height)
}

func TestRender_ConfigMode(t *testing.T) {
	c := New(NewAssets(nil), small)

	img, err := c.Render(context.Background(), Page{Text: "vless://config1", Index: 0, Total: 2, Mode: state.ModeConfig})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if got := img.Bounds().Size(); got != image.Pt(small.Width, small.Height) {
		t.Errorf("canvas size = %v, want %dx%d", got, small.Width, small.Height)
	}
	if !sameRGB(img.At(5, 5), ConfigFill) {
		t.Errorf("background pixel = %v, want %v", img.At(5, 5), ConfigFill)
	}

	pos := (small.Width - small.QRSize) / 2
	if !sameRGB(img.At(pos+1, pos+1), color.RGBA{0, 0, 0, 0xff}) {
		t.Errorf("finder pattern corner at (%d,%d) is not dark", pos+1, pos+1)
	}

	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	startX := (small.Width - (GlyphWidth*2 + SlashGap)) / 2
	strip := belowSymbol(small)
	left := image.Rect(startX, strip.Min.Y, startX+GlyphWidth, strip.Max.Y)
	right := left.Add(image.Pt(GlyphWidth+SlashGap, 0))

	if countColor(img, left, white) == 0 {
		t.Error("current page glyph not drawn")
	}
	if countColor(img, right, white) == 0 {
		t.Error("total pages glyph not drawn")
	}
}

func TestRender_URLModeSkipsNumbers(t *testing.T) {
	c := New(NewAssets(nil), small)

	img, err := c.Render(context.Background(), Page{Text: "https://example.com", Total: 1, Mode: state.ModeURL})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	strip := belowSymbol(small)
	want := strip.Dx() * strip.Dy()
	if got := countColor(img, strip, URLFill); got != want {
		t.Errorf("%d of %d pixels below the symbol are background; page numbers drawn in url mode", got, want)
	}
}

func TestRender_LoadsAssets(t *testing.T) {
	red := color.RGBA{0xff, 0, 0, 0xff}
	green := color.RGBA{0, 0xff, 0, 0xff}
	fsys := fstest.MapFS{
		BackgroundPath: {Data: pngBytes(t, 10, 12, red)},
		DigitPath(1):   {Data: pngBytes(t, GlyphWidth, GlyphHeight, green)},
		DigitPath(3):   {Data: pngBytes(t, GlyphWidth, GlyphHeight, green)},
	}
	c := New(NewAssets(fsys), small)

	img, err := c.Render(context.Background(), Page{Text: "ss://a", Index: 0, Total: 3, Mode: state.ModeConfig})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !sameRGB(img.At(5, 5), red) {
		t.Errorf("background pixel = %v, want red", img.At(5, 5))
	}

	strip := belowSymbol(small)
	startX := (small.Width - (GlyphWidth*2 + SlashGap)) / 2
	left := image.Rect(startX, strip.Min.Y, startX+GlyphWidth, strip.Max.Y-BottomMargin)
	if got, want := countColor(img, left, green), left.Dx()*left.Dy(); got != want {
		t.Errorf("glyph region has %d green pixels, want %d", got, want)
	}
}

func TestRender_OversizedChunk(t *testing.T) {
	c := New(NewAssets(nil), small)

	_, err := c.Render(context.Background(), Page{Text: "vless://" + strings.Repeat("x", 3000), Total: 1, Mode: state.ModeConfig})
	if !errors.Is(err, errors.KindEncode) {
		t.Errorf("Render() error = %v, want KindEncode", err)
	}
}

func TestRender_Cancelled(t *testing.T) {
	c := New(NewAssets(nil), small)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Render(ctx, Page{Text: "ss://a", Total: 1}); err != context.Canceled {
		t.Errorf("Render() error = %v, want context.Canceled", err)
	}
}

func TestOptions_Defaults(t *testing.T) {
	c := New(nil, Options{})
	w, h := c.Size()
	if w != DefaultWidth || h != DefaultHeight || c.opts.QRSize != DefaultQRSize {
		t.Errorf("defaults = %dx%d qr %d", w, h, c.opts.QRSize)
	}
}

func TestAssets_FallbackCached(t *testing.T) {
	a := NewAssets(fstest.MapFS{})
	first := a.Digit(7)
	if first.Bounds().Size() != image.Pt(GlyphWidth, GlyphHeight) {
		t.Errorf("fallback glyph size = %v", first.Bounds().Size())
	}
	if a.Digit(7) != first {
		t.Error("second lookup should hit the cache")
	}
}

func TestPreview(t *testing.T) {
	out, err := Preview("hello")
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}

	// Version 1 is 21 modules plus a 4 module quiet zone on each side.
	const modules = 29
	lines := strings.Split(out, "\n")
	if len(lines) != (modules+1)/2 {
		t.Errorf("Preview() has %d lines, want %d", len(lines), (modules+1)/2)
	}
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n != modules {
			t.Errorf("line %d has %d cells, want %d", i, n, modules)
		}
	}
	if !strings.ContainsRune(out, '█') {
		t.Error("Preview() should contain full blocks for the quiet zone")
	}
}

func TestPreview_TooLong(t *testing.T) {
	if _, err := Preview(strings.Repeat("x", 4000)); !errors.Is(err, errors.KindEncode) {
		t.Errorf("Preview() error = %v, want KindEncode", err)
	}
}
