package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/innovasmart/site/internal/platform/motion"
	"github.com/innovasmart/site/internal/services/web/content"
	"github.com/innovasmart/site/internal/services/web/platform/pagerender"
	webstatic "github.com/innovasmart/site/internal/services/web/static"
	"github.com/innovasmart/site/internal/services/web/templates"
	"github.com/rs/zerolog"
)

// IndexFile is the exported landing page document.
const IndexFile = "index.html"

const exportAssetDir = "static"

// ExportOptions configures a static export.
type ExportOptions struct {
	Site content.Site
	// RevealAll renders scroll reveals in their final state, for hosts that
	// serve the page without script.
	RevealAll bool
	Clock     motion.Clock
	Logger    zerolog.Logger
}

// Export writes the landing page and its assets under dir so the site can be
// served by any static file host.
func Export(ctx context.Context, dir string, opts ExportOptions) ([]string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("export directory is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	site := opts.Site
	if len(site.Tiers()) == 0 {
		site = content.Default()
	}

	assets := filepath.Join(dir, exportAssetDir)
	if err := os.MkdirAll(assets, 0o755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}

	var written []string
	write := func(rel string, data []byte) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(dir, rel)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", rel, err)
		}
		written = append(written, rel)
		opts.Logger.Debug().Str("file", path).Int("bytes", len(data)).Msg("exported")
		return nil
	}

	var page bytes.Buffer
	err := pagerender.Render(ctx, &page, pagerender.Page{
		Body:      templates.LandingPage(site, DocumentOptions(site, exportAssetDir+"/")),
		RevealAll: opts.RevealAll,
		Clock:     opts.Clock,
	})
	if err != nil {
		return nil, fmt.Errorf("render landing page: %w", err)
	}
	if err := write(IndexFile, page.Bytes()); err != nil {
		return nil, err
	}
	if err := write(filepath.Join(exportAssetDir, templates.MotionStylesheet), []byte(templates.GeneratedCSS())); err != nil {
		return nil, err
	}

	err = fs.WalkDir(webstatic.FS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(webstatic.FS, path)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", path, err)
		}
		return write(filepath.Join(exportAssetDir, filepath.FromSlash(path)), data)
	})
	if err != nil {
		return nil, err
	}
	return written, nil
}
