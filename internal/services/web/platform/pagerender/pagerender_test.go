package pagerender

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/innovasmart/site/internal/platform/motion"
)

func textComponent(markup string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, markup)
		return err
	})
}

func TestWritePageRendersBodyWithStatus(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	err := WritePage(rr, req, Page{
		StatusCode: http.StatusAccepted,
		Body:       textComponent(`<main id="root">ok</main>`),
	})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusAccepted)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q, want %q", got, "text/html; charset=utf-8")
	}
	if !strings.Contains(rr.Body.String(), `id="root"`) {
		t.Fatalf("body missing marker: %q", rr.Body.String())
	}
}

func TestWritePageDefaultsStatusAndBody(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	if err := WritePage(rr, nil, Page{}); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("body = %q, want empty", rr.Body.String())
	}
}

func TestWritePageReturnsInternalErrorOnRenderFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	rr := httptest.NewRecorder()
	err := WritePage(rr, httptest.NewRequest(http.MethodGet, "/", nil), Page{
		Body: templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			_, _ = io.WriteString(w, "<partial")
			return boom
		}),
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WritePage() error = %v, want %v", err, boom)
	}
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rr.Body.String(), "<partial") {
		t.Fatalf("partial render leaked: %q", rr.Body.String())
	}
}

func TestWritePageNilWriterSafety(t *testing.T) {
	t.Parallel()

	if err := WritePage(nil, nil, Page{}); err != nil {
		t.Fatalf("WritePage(nil) error = %v", err)
	}
}

// attachCard attaches one viewport reveal and reports whether it rendered revealed.
func attachCard(revealed *bool, scoped **motion.Timeline) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, _ io.Writer) error {
		tl, ok := motion.TimelineFrom(ctx)
		if !ok {
			return errors.New("no timeline in render context")
		}
		*scoped = tl
		r, err := motion.NewReveal(motion.Spec{
			Initial:  motion.State{motion.Opacity: 0},
			Target:   motion.State{motion.Opacity: 1},
			Trigger:  motion.OnFirstViewportEntry,
			Duration: 1,
		})
		if err != nil {
			return err
		}
		if err := tl.Attach("card", r); err != nil {
			return err
		}
		*revealed = r.Revealed()
		return nil
	})
}

func TestRenderScopesTimelineToOneRender(t *testing.T) {
	t.Parallel()

	var revealed bool
	var tl *motion.Timeline
	if err := Render(context.Background(), &bytes.Buffer{}, Page{Body: attachCard(&revealed, &tl)}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if revealed {
		t.Fatalf("viewport reveal should wait for the browser")
	}
	if err := tl.Attach("late", nil); !errors.Is(err, motion.ErrTimelineClosed) {
		t.Fatalf("Attach after render = %v, want %v", err, motion.ErrTimelineClosed)
	}
}

func TestRenderRevealAllFailsOpen(t *testing.T) {
	t.Parallel()

	var revealed bool
	var tl *motion.Timeline
	if err := Render(context.Background(), &bytes.Buffer{}, Page{Body: attachCard(&revealed, &tl), RevealAll: true}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !revealed {
		t.Fatalf("reveal-all render should show the target state")
	}
}
