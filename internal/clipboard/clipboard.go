// Package clipboard reads pasted text from and writes rendered QR pages to
// the system clipboard.
package clipboard

import (
	"errors"
	"image"
	"sync"

	"golang.design/x/clipboard"

	qerrors "github.com/zhubert/qrpack/internal/errors"
	"github.com/zhubert/qrpack/internal/export"
	"github.com/zhubert/qrpack/internal/logger"
)

var (
	mu      sync.RWMutex
	backend Backend = &systemBackend{}
)

// SetBackend replaces the clipboard backend. Used by tests.
func SetBackend(b Backend) {
	mu.Lock()
	defer mu.Unlock()
	backend = b
}

// ResetBackend restores the system clipboard.
func ResetBackend() {
	SetBackend(&systemBackend{})
}

func current() Backend {
	mu.RLock()
	defer mu.RUnlock()
	return backend
}

// ReadText returns the clipboard text, or "" when it holds no text.
func ReadText() (string, error) {
	data, err := current().ReadText()
	if err != nil {
		logger.Warn("Clipboard: read failed: %v", err)
		return "", qerrors.ClipboardFailed("ReadText", err)
	}
	return string(data), nil
}

// WriteImage PNG-encodes img and places it on the clipboard.
func WriteImage(img image.Image) (*ImageData, error) {
	data, err := export.EncodePNG(img)
	if err != nil {
		return nil, qerrors.ClipboardFailed("WriteImage", err)
	}
	if err := current().WriteImage(data); err != nil {
		logger.Warn("Clipboard: write failed: %v", err)
		return nil, qerrors.ClipboardFailed("WriteImage", err)
	}

	b := img.Bounds()
	out := &ImageData{Data: data, Width: b.Dx(), Height: b.Dy()}
	logger.Debug("Clipboard: wrote %dx%d image (%d KB)", out.Width, out.Height, out.SizeKB())
	return out, nil
}

// systemBackend uses golang.design/x/clipboard, initialized on first use.
type systemBackend struct {
	once sync.Once
	err  error
}

func (s *systemBackend) init() error {
	s.once.Do(func() {
		if err := clipboard.Init(); err != nil {
			logger.Warn("Clipboard: failed to initialize: %v", err)
			s.err = err
			return
		}
		logger.Debug("Clipboard: initialized")
	})
	return s.err
}

func (s *systemBackend) ReadText() ([]byte, error) {
	if err := s.init(); err != nil {
		return nil, err
	}
	return clipboard.Read(clipboard.FmtText), nil
}

func (s *systemBackend) WriteImage(png []byte) error {
	if err := s.init(); err != nil {
		return err
	}
	if changed := clipboard.Write(clipboard.FmtImage, png); changed == nil {
		return errors.New("clipboard rejected image data")
	}
	return nil
}
