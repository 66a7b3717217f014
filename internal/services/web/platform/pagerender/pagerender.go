// Package pagerender centralizes page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/innovasmart/site/internal/platform/motion"
	"github.com/innovasmart/site/internal/services/web/platform/httpx"
)

// Page describes one full-document response.
type Page struct {
	StatusCode int
	Body       templ.Component
	// RevealAll renders viewport reveals in their final state instead of
	// leaving them for the browser to latch.
	RevealAll bool
	// Clock stamps the render timeline. Nil uses the system clock.
	Clock motion.Clock
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// Render writes page.Body to w under a timeline scoped to this render. The
// timeline is closed before Render returns.
func Render(ctx context.Context, w io.Writer, page Page) error {
	body := page.Body
	if body == nil {
		body = emptyComponent{}
	}
	var viewport motion.Viewport
	if !page.RevealAll {
		viewport = motion.NewIntersections()
	}
	tl := motion.NewTimeline(page.Clock, viewport)
	defer tl.Close()
	return body.Render(motion.WithTimeline(ctx, tl), w)
}

// WritePage renders page into a buffer and writes it with the page status.
// Render failures become a plain 500 so partial documents never reach the
// client.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	var buf bytes.Buffer
	if err := Render(httpx.RequestContext(r), &buf, page); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}
