package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/zhubert/qrpack/internal/chunk"
	"github.com/zhubert/qrpack/internal/compositor"
	"github.com/zhubert/qrpack/internal/config"
	"github.com/zhubert/qrpack/internal/export"
	"github.com/zhubert/qrpack/internal/logger"
	"github.com/zhubert/qrpack/internal/sanitize"
	"github.com/zhubert/qrpack/internal/state"
)

// generateOptions holds the generate flags.
type generateOptions struct {
	URL    bool
	Zip    bool
	OutDir string
	Page   int // 1-based; 0 writes every page
}

var genOpts generateOptions

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Render QR codes without the TUI",
	Long: `Reads proxy configs (or a URL with --url) from a file, or from stdin when no
file is given, and writes the QR code images to the output directory.

Every page is written as qrcode-<n>.png unless --page selects one of them or
--zip bundles them into qrcodes.zip.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&genOpts.URL, "url", false, "Encode the input as a single URL")
	generateCmd.Flags().BoolVar(&genOpts.Zip, "zip", false, "Write every page into "+export.ZipName)
	generateCmd.Flags().StringVar(&genOpts.OutDir, "out", "", "Output directory (default from config)")
	generateCmd.Flags().IntVar(&genOpts.Page, "page", 0, "Write only this page (1-based)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Close()

	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	paths, err := generate(cmd.Context(), cfg, text, genOpts, export.NewReporter(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}

// readInput returns the sanitized contents of args[0], or of stdin when no
// file is named.
func readInput(stdin io.Reader, args []string) (string, error) {
	var data []byte
	var err error
	if len(args) > 0 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return sanitize.Clean(string(data)), nil
}

// newRenderer builds the page compositor described by cfg.
func newRenderer(cfg *config.Config) *compositor.Compositor {
	return compositor.New(compositor.OpenAssets(cfg.AssetsDir), compositor.Options{
		Width:  cfg.CanvasWidth,
		Height: cfg.CanvasHeight,
		QRSize: cfg.QRSize,
	})
}

// generate renders text into files and returns their paths.
func generate(ctx context.Context, cfg *config.Config, text string, opts generateOptions, rep export.Reporter) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if rep == nil {
		rep = export.NopReporter{}
	}
	dir := opts.OutDir
	if dir == "" {
		dir = cfg.OutputDir
	}
	r := newRenderer(cfg)

	if opts.URL {
		if opts.Zip {
			return nil, fmt.Errorf("--zip is only available for configs")
		}
		u, err := chunk.ParseURL(text)
		if err != nil {
			return nil, err
		}
		path, err := export.RenderPNG(ctx, r, dir, export.Pages([]string{u}, state.ModeURL)[0])
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	}

	chunks, err := chunk.Generate(text, cfg.MaxChunkLength)
	if err != nil {
		return nil, err
	}
	logger.Info("Generate: %d configs in %d pages", chunk.CountValidConfigs(text), len(chunks))

	if opts.Zip {
		path, err := export.SaveZip(ctx, dir, r, chunks, rep)
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	}

	pages := export.Pages(chunks, state.ModeConfig)
	if opts.Page != 0 {
		if opts.Page < 1 || opts.Page > len(pages) {
			return nil, fmt.Errorf("page %d out of range (1-%d)", opts.Page, len(pages))
		}
		pages = pages[opts.Page-1 : opts.Page]
	}

	paths := make([]string, 0, len(pages))
	rep.Start(len(pages))
	defer rep.Finish()
	for i, p := range pages {
		path, err := export.RenderPNG(ctx, r, dir, p)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
		rep.Update(i+1, export.PageName(p.Index))
	}
	return paths, nil
}
