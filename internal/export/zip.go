package export

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zip"

	"github.com/zhubert/qrpack/internal/errors"
	"github.com/zhubert/qrpack/internal/logger"
	"github.com/zhubert/qrpack/internal/state"
)

// WriteZip renders every chunk in order and writes each page to w as a
// qrcode-<n>.png entry. chunks is copied before the first render, so the
// caller may replace its own slice while the archive is being built.
// A failed page aborts the archive.
func WriteZip(ctx context.Context, w io.Writer, r Renderer, chunks []string, rep Reporter) error {
	if rep == nil {
		rep = NopReporter{}
	}
	pages := Pages(chunks, state.ModeConfig)
	log := logger.ComponentLogger("Export")

	zw := zip.NewWriter(w)
	rep.Start(len(pages))
	defer rep.Finish()

	for i, p := range pages {
		if err := ctx.Err(); err != nil {
			return err
		}

		img, err := r.Render(ctx, p)
		if err != nil {
			return errors.ArchiveFailed(ZipName, err)
		}
		data, err := EncodePNG(img)
		if err != nil {
			return errors.ArchiveFailed(ZipName, err)
		}

		name := PageName(p.Index)
		f, err := zw.CreateHeader(&zip.FileHeader{
			Name:     name,
			Method:   zip.Deflate,
			Modified: time.Now(),
		})
		if err != nil {
			return errors.ArchiveFailed(ZipName, err)
		}
		if _, err := f.Write(data); err != nil {
			return errors.ArchiveFailed(ZipName, err)
		}

		log.Debug("page archived", "entry", name, "bytes", len(data))
		rep.Update(i+1, name)
	}

	if err := zw.Close(); err != nil {
		return errors.ArchiveFailed(ZipName, err)
	}
	return nil
}

// SaveZip builds the archive in memory and writes it to dir/qrcodes.zip.
// Nothing is written when any page fails.
func SaveZip(ctx context.Context, dir string, r Renderer, chunks []string, rep Reporter) (string, error) {
	var buf bytes.Buffer
	if err := WriteZip(ctx, &buf, r, chunks, rep); err != nil {
		return "", err
	}

	path := filepath.Join(dir, ZipName)
	if err := writeFile(path, buf.Bytes()); err != nil {
		return "", errors.ArchiveFailed(ZipName, err)
	}
	return path, nil
}
