// Package compositor draws one QR page: the mode's background, the page
// numbers in config mode and the encoded symbol on top.
package compositor

import (
	"context"
	"image"
	"log/slog"
	"time"

	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/draw"

	"github.com/zhubert/qrpack/internal/errors"
	"github.com/zhubert/qrpack/internal/logger"
	"github.com/zhubert/qrpack/internal/state"
)

// Canvas geometry in pixels.
const (
	DefaultWidth  = 3000
	DefaultHeight = 3600
	DefaultQRSize = 2600

	GlyphWidth   = 264
	GlyphHeight  = 512
	SlashGap     = 350
	BottomMargin = 96
)

// Page is one render request. Index is zero based.
type Page struct {
	Text  string
	Index int
	Total int
	Mode  state.Mode
}

// Options sets the canvas and symbol size. Zero values use the defaults.
type Options struct {
	Width  int
	Height int
	QRSize int
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.QRSize <= 0 {
		o.QRSize = DefaultQRSize
	}
	return o
}

// Compositor renders pages onto a fresh canvas per call, so concurrent
// renders never share a bitmap.
type Compositor struct {
	assets *Assets
	opts   Options
	log    *slog.Logger
}

func New(assets *Assets, opts Options) *Compositor {
	if assets == nil {
		assets = NewAssets(nil)
	}
	return &Compositor{
		assets: assets,
		opts:   opts.withDefaults(),
		log:    logger.ComponentLogger("Compositor"),
	}
}

// Size returns the canvas width and height.
func (c *Compositor) Size() (int, int) {
	return c.opts.Width, c.opts.Height
}

// Render draws p and returns the finished canvas.
func (c *Compositor) Render(ctx context.Context, p Page) (*image.RGBA, error) {
	start := time.Now()
	w, h := c.opts.Width, c.opts.Height
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))

	bg := c.assets.Background(p.Mode)
	if bg.Bounds().Size() == canvas.Bounds().Size() {
		draw.Draw(canvas, canvas.Bounds(), bg, bg.Bounds().Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(canvas, canvas.Bounds(), bg, bg.Bounds(), draw.Src, nil)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if p.Mode != state.ModeURL {
		c.drawPageNumbers(canvas, p.Index+1, p.Total)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q, err := qrcode.New(p.Text, qrcode.Highest)
	if err != nil {
		c.log.Error("encode failed", "page", p.Index+1, "length", len(p.Text), "error", err)
		return nil, errors.EncodeFailed(p.Index+1, err)
	}
	q.DisableBorder = true
	symbol := q.Image(c.opts.QRSize)

	pos := (w - c.opts.QRSize) / 2
	r := symbol.Bounds().Sub(symbol.Bounds().Min).Add(image.Pt(pos, pos))
	draw.Draw(canvas, r, symbol, symbol.Bounds().Min, draw.Src)

	c.log.Debug("page rendered", "page", p.Index+1, "total", p.Total, "mode", p.Mode,
		"version", q.VersionNumber, "elapsed", time.Since(start))
	return canvas, nil
}

// drawPageNumbers places the current and total glyphs side by side with
// SlashGap between them, centred horizontally, BottomMargin above the bottom.
func (c *Compositor) drawPageNumbers(canvas *image.RGBA, current, total int) {
	w, h := c.opts.Width, c.opts.Height
	totalWidth := GlyphWidth*2 + SlashGap
	startX := (w - totalWidth) / 2
	y := h - GlyphHeight - BottomMargin

	c.drawGlyph(canvas, c.assets.Digit(current), image.Pt(startX, y))
	c.drawGlyph(canvas, c.assets.Digit(total), image.Pt(startX+GlyphWidth+SlashGap, y))
}

// drawGlyph copies the top-left GlyphWidth x GlyphHeight region of glyph to at.
func (c *Compositor) drawGlyph(canvas *image.RGBA, glyph image.Image, at image.Point) {
	b := glyph.Bounds()
	sr := image.Rect(0, 0, GlyphWidth, GlyphHeight).Add(b.Min).Intersect(b)
	if sr.Empty() {
		return
	}
	dr := image.Rectangle{Min: at, Max: at.Add(image.Pt(GlyphWidth, GlyphHeight))}
	if sr.Size() == dr.Size() {
		draw.Draw(canvas, dr, glyph, sr.Min, draw.Over)
		return
	}
	draw.CatmullRom.Scale(canvas, dr, glyph, sr, draw.Over, nil)
}
