// Package export writes rendered pages to disk as PNG files or as a single
// ZIP archive.
package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/zhubert/qrpack/internal/compositor"
	"github.com/zhubert/qrpack/internal/errors"
	"github.com/zhubert/qrpack/internal/state"
)

// File names.
const (
	ZipName      = "qrcodes.zip"
	URLImageName = "url-qrcode.png"
)

// PageName returns the file name for the zero-based page index.
func PageName(index int) string {
	return fmt.Sprintf("qrcode-%d.png", index+1)
}

// ImageName returns the single-download file name for mode and page index.
func ImageName(mode state.Mode, index int) string {
	if mode == state.ModeURL {
		return URLImageName
	}
	return PageName(index)
}

// Renderer draws one page. *compositor.Compositor implements it.
type Renderer interface {
	Render(ctx context.Context, p compositor.Page) (*image.RGBA, error)
}

// Pages builds render requests for every chunk. chunks is copied.
func Pages(chunks []string, mode state.Mode) []compositor.Page {
	pages := make([]compositor.Page, len(chunks))
	for i, text := range chunks {
		pages[i] = compositor.Page{Text: text, Index: i, Total: len(chunks), Mode: mode}
	}
	return pages
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePNG encodes img into dir/name and returns the written path.
func WritePNG(dir, name string, img image.Image) (string, error) {
	path := filepath.Join(dir, name)

	data, err := EncodePNG(img)
	if err != nil {
		return "", errors.WriteFailed(path, err)
	}
	if err := writeFile(path, data); err != nil {
		return "", errors.WriteFailed(path, err)
	}
	return path, nil
}

// RenderPNG renders p and writes it into dir under its download name.
func RenderPNG(ctx context.Context, r Renderer, dir string, p compositor.Page) (string, error) {
	img, err := r.Render(ctx, p)
	if err != nil {
		return "", err
	}
	return WritePNG(dir, ImageName(p.Mode, p.Index), img)
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
