package templates

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/innovasmart/site/internal/platform/motion"
)

// attrElementID carries the timeline id of an animated element.
const attrElementID = "data-motion-id"

// Reveal wraps content in an element driven by anim. The element is attached
// to the timeline found in ctx; outside a page render it gets a private
// timeline observed by an intersection tracker, so viewport reveals stay
// inert until the browser reports entry.
//
// Only the latch is rendered: a viewport reveal that already entered or
// failed open carries the revealed class. Initial and target values live in
// the generated stylesheet.
func Reveal(anim motion.Named, class string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tl, ok := motion.TimelineFrom(ctx)
		if !ok {
			tl = motion.NewTimeline(nil, motion.NewIntersections())
			defer tl.Close()
			ctx = motion.WithTimeline(ctx, tl)
		}
		r, err := motion.NewReveal(anim.Spec)
		if err != nil {
			return fmt.Errorf("animation %q: %w", anim.Name, err)
		}
		id := nextElementID(tl, anim.Name)
		if err := tl.Attach(id, r); err != nil {
			return fmt.Errorf("attach %q: %w", id, err)
		}

		classes := strings.TrimSpace(class)
		if anim.Spec.Trigger == motion.OnFirstViewportEntry && r.Revealed() {
			classes = strings.TrimSpace(classes + " " + motion.RevealedClass)
		}

		m := newMarkup(ctx, w)
		m.raw("<div")
		if classes != "" {
			m.attr("class", classes)
		}
		m.attr(motion.AttrName, anim.Name)
		m.attr(motion.AttrTrigger, anim.Spec.Trigger.String())
		m.attr(attrElementID, id)
		m.raw(">")
		m.component(content)
		m.raw("</div>")
		return m.done()
	})
}

func nextElementID(tl *motion.Timeline, name string) string {
	for n := tl.Len() + 1; ; n++ {
		id := name + "-" + strconv.Itoa(n)
		if _, taken := tl.Reveal(id); !taken {
			return id
		}
	}
}
