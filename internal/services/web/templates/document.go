package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/innovasmart/site/internal/platform/branding"
	"github.com/innovasmart/site/internal/platform/icons"
)

// DefaultAssetBase is where the HTTP server mounts static assets.
const DefaultAssetBase = "/static/"

// Asset file names referenced by the document head.
const (
	SiteStylesheet   = "site.css"
	MotionStylesheet = "motion.css"
	MotionScript     = "motion.js"
)

// DocumentOptions configures the outer HTML document.
type DocumentOptions struct {
	Title       string
	Description string
	// AssetBase prefixes asset URLs. Empty means DefaultAssetBase.
	AssetBase string
}

func (o DocumentOptions) asset(name string) string {
	base := strings.TrimSpace(o.AssetBase)
	if base == "" {
		base = DefaultAssetBase
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + name
}

func (o DocumentOptions) title() string {
	if t := strings.TrimSpace(o.Title); t != "" {
		return t
	}
	return branding.AppName
}

// Document renders the html shell around body.
func Document(opts DocumentOptions, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<!DOCTYPE html><html lang="es"><head><meta charset="utf-8">`)
		m.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.raw(`<meta name="theme-color"`)
		m.attr("content", branding.BaseColor)
		m.raw(`><title>`)
		m.text(opts.title())
		m.raw(`</title>`)
		if d := strings.TrimSpace(opts.Description); d != "" {
			m.raw(`<meta name="description"`)
			m.attr("content", d)
			m.raw(`>`)
		}
		for _, css := range []string{SiteStylesheet, MotionStylesheet} {
			m.raw(`<link rel="stylesheet"`)
			m.href(opts.asset(css))
			m.raw(`>`)
		}
		m.raw(`<script defer`)
		m.attr("src", opts.asset(MotionScript))
		m.raw(`></script>`)
		m.raw(`<noscript><style>`)
		m.raw(NoScriptCSS())
		m.raw(`</style></noscript>`)
		m.raw(`</head><body>`)
		m.component(icons.Sprite())
		m.component(body)
		m.raw(`</body></html>`)
		return m.done()
	})
}
