package clipboard

import "sync"

// Backend is the system clipboard. Swapped out in tests.
type Backend interface {
	ReadText() ([]byte, error)
	WriteImage(png []byte) error
}

// ImageData describes a PNG written to the clipboard.
type ImageData struct {
	Data   []byte // PNG encoded image data
	Width  int
	Height int
}

// SizeKB returns the image size in kilobytes
func (img *ImageData) SizeKB() int {
	return len(img.Data) / 1024
}

// MemoryBackend keeps clipboard contents in memory.
type MemoryBackend struct {
	mu    sync.Mutex
	Text  []byte
	Image []byte
	Err   error
}

func (m *MemoryBackend) ReadText() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Text, nil
}

func (m *MemoryBackend) WriteImage(png []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Image = append([]byte(nil), png...)
	return nil
}
