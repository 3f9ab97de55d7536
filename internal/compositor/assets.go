package compositor

import (
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	_ "golang.org/x/image/webp"

	"github.com/zhubert/qrpack/internal/errors"
	"github.com/zhubert/qrpack/internal/logger"
	"github.com/zhubert/qrpack/internal/state"
)

// Asset paths, relative to the assets root.
const (
	BackgroundPath    = "images/background.png"
	URLBackgroundPath = "images/urlbackground.png"
	numbersDir        = "images/numbers"
)

// Fallback fills used when a background image is missing.
var (
	ConfigFill = color.RGBA{0x2d, 0x1b, 0x4e, 0xff}
	URLFill    = color.RGBA{0x0f, 0x3b, 0x4a, 0xff}
)

// DigitPath returns the glyph path for page number n.
func DigitPath(n int) string {
	return numbersDir + "/" + strconv.Itoa(n) + ".png"
}

// Assets loads and caches the background and digit images. Missing files
// are replaced by generated fallbacks so a render never fails on assets.
type Assets struct {
	fsys  fs.FS
	mu    sync.Mutex
	cache map[string]image.Image
	log   *slog.Logger
}

// NewAssets reads assets from fsys. A nil fsys uses fallbacks for everything.
func NewAssets(fsys fs.FS) *Assets {
	return &Assets{
		fsys:  fsys,
		cache: make(map[string]image.Image),
		log:   logger.ComponentLogger("Assets"),
	}
}

// OpenAssets reads assets from the directory dir.
func OpenAssets(dir string) *Assets {
	return NewAssets(os.DirFS(dir))
}

// Background returns the background image for mode.
func (a *Assets) Background(mode state.Mode) image.Image {
	path, fill := BackgroundPath, ConfigFill
	if mode == state.ModeURL {
		path, fill = URLBackgroundPath, URLFill
	}
	return a.get(path, func() image.Image { return solid(fill) })
}

// Digit returns the glyph image for page number n.
func (a *Assets) Digit(n int) image.Image {
	return a.get(DigitPath(n), func() image.Image { return digitGlyph(n) })
}

func (a *Assets) get(path string, fallback func() image.Image) image.Image {
	a.mu.Lock()
	defer a.mu.Unlock()

	if img, ok := a.cache[path]; ok {
		return img
	}

	img, err := a.decode(path)
	if err != nil {
		a.log.Warn("using fallback asset", "path", path, "error", err)
		img = fallback()
	}
	a.cache[path] = img
	return img
}

func (a *Assets) decode(path string) (image.Image, error) {
	if a.fsys == nil {
		return nil, errors.AssetLoadFailed(path, fs.ErrNotExist)
	}
	f, err := a.fsys.Open(path)
	if err != nil {
		return nil, errors.AssetLoadFailed(path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.AssetLoadFailed(path, err)
	}
	return img, nil
}

func solid(c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, c)
	return img
}

// digitGlyph draws n with the built-in 7x13 face and scales it up to a
// GlyphWidth x GlyphHeight image with a transparent background.
func digitGlyph(n int) image.Image {
	face := basicfont.Face7x13
	text := strconv.Itoa(n)

	small := image.NewRGBA(image.Rect(0, 0, face.Width*len(text), face.Height))
	d := &font.Drawer{
		Dst:  small,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(text)

	out := image.NewRGBA(image.Rect(0, 0, GlyphWidth, GlyphHeight))
	draw.NearestNeighbor.Scale(out, out.Bounds(), small, small.Bounds(), draw.Over, nil)
	return out
}
