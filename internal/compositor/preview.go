package compositor

import (
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/zhubert/qrpack/internal/errors"
)

// Preview renders text as a QR symbol made of half-block characters, two
// modules per terminal row, with the standard quiet zone kept. Light modules
// are drawn as blocks so the symbol scans on a dark terminal.
func Preview(text string) (string, error) {
	q, err := qrcode.New(text, qrcode.Highest)
	if err != nil {
		return "", errors.EncodeFailed(0, err)
	}
	return halfBlocks(q.Bitmap()), nil
}

func halfBlocks(bitmap [][]bool) string {
	lit := func(y, x int) bool {
		if y >= len(bitmap) || x >= len(bitmap[y]) {
			return false
		}
		return !bitmap[y][x]
	}

	width := 0
	if len(bitmap) > 0 {
		width = len(bitmap[0])
	}

	var b strings.Builder
	for y := 0; y < len(bitmap); y += 2 {
		for x := 0; x < width; x++ {
			top, bottom := lit(y, x), lit(y+1, x)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if y+2 < len(bitmap) {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
