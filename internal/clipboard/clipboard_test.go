package clipboard

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	qerrors "github.com/zhubert/qrpack/internal/errors"
)

func TestReadText(t *testing.T) {
	tests := []struct {
		name    string
		backend *MemoryBackend
		want    string
		wantErr bool
	}{
		{"text", &MemoryBackend{Text: []byte("vless://a\nvmess://b")}, "vless://a\nvmess://b", false},
		{"empty", &MemoryBackend{}, "", false},
		{"unavailable", &MemoryBackend{Err: errors.New("no display")}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetBackend(tt.backend)
			defer ResetBackend()

			got, err := ReadText()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadText() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !qerrors.Is(err, qerrors.KindClipboard) {
				t.Errorf("error kind = %v, want KindClipboard", qerrors.GetKind(err))
			}
			if got != tt.want {
				t.Errorf("ReadText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteImage(t *testing.T) {
	mem := &MemoryBackend{}
	SetBackend(mem)
	defer ResetBackend()

	info, err := WriteImage(image.NewRGBA(image.Rect(0, 0, 30, 36)))
	if err != nil {
		t.Fatalf("WriteImage() error = %v", err)
	}
	if info.Width != 30 || info.Height != 36 {
		t.Errorf("size = %dx%d", info.Width, info.Height)
	}

	img, err := png.Decode(bytes.NewReader(mem.Image))
	if err != nil {
		t.Fatalf("clipboard does not hold a PNG: %v", err)
	}
	if img.Bounds().Dx() != 30 {
		t.Errorf("decoded width = %d", img.Bounds().Dx())
	}
}

func TestWriteImage_Failure(t *testing.T) {
	SetBackend(&MemoryBackend{Err: errors.New("denied")})
	defer ResetBackend()

	if _, err := WriteImage(image.NewRGBA(image.Rect(0, 0, 1, 1))); !qerrors.Is(err, qerrors.KindClipboard) {
		t.Errorf("WriteImage() error = %v, want KindClipboard", err)
	}
}
