package templates

import (
	"strings"
	"time"

	"github.com/innovasmart/site/internal/platform/layout"
	"github.com/innovasmart/site/internal/platform/motion"
)

// Named animations used by the page.
var (
	// HeroEntrance fades and lifts the hero content once on load.
	HeroEntrance = motion.Named{
		Name: "hero-entrance",
		Spec: motion.Spec{
			Initial:  motion.State{motion.Opacity: 0, motion.TranslateY: 40},
			Target:   motion.State{motion.Opacity: 1, motion.TranslateY: 0},
			Trigger:  motion.OnMount,
			Duration: time.Second,
			Easing:   motion.CubicBezier(0.22, 1, 0.36, 1),
		},
	}
	// GlowPulse breathes the halo behind the hero logo.
	GlowPulse = motion.Named{
		Name: "glow-pulse",
		Spec: motion.Spec{
			Initial:  motion.State{motion.Opacity: 0.4, motion.Scale: 1},
			Target:   motion.State{motion.Opacity: 0.6, motion.Scale: 1.05},
			Trigger:  motion.OnMount,
			Repeat:   motion.RepeatInfinite,
			Duration: 4 * time.Second,
			Easing:   motion.EaseInOut,
		},
	}
	// FloatBadge bobs the social badge.
	FloatBadge = motion.Named{
		Name: "float-badge",
		Spec: motion.Spec{
			Initial:  motion.State{motion.TranslateY: 0},
			Target:   motion.State{motion.TranslateY: -5},
			Trigger:  motion.OnMount,
			Repeat:   motion.RepeatInfinite,
			Duration: 3 * time.Second,
			Easing:   motion.EaseInOut,
		},
	}
	// CardReveal slides an offer card in the first time it is scrolled into view.
	CardReveal = motion.Named{
		Name: "card-reveal",
		Spec: motion.Spec{
			Initial:  motion.State{motion.Opacity: 0, motion.TranslateY: 20},
			Target:   motion.State{motion.Opacity: 1, motion.TranslateY: 0},
			Trigger:  motion.OnFirstViewportEntry,
			Duration: 600 * time.Millisecond,
			Easing:   motion.EaseOut,
		},
	}
)

// Animations returns every named animation in stylesheet order.
func Animations() []motion.Named {
	return []motion.Named{HeroEntrance, GlowPulse, FloatBadge, CardReveal}
}

const (
	catalogGridSelector  = ".catalog-grid"
	navLinksSelector     = ".nav-links"
	navCompactSelector   = ".nav-compact"
	heroActionsSelector  = ".hero-actions"
	footerColumnSelector = ".footer-inner"
)

// GeneratedCSS is the stylesheet derived from the animation specs and the
// layout breakpoint.
func GeneratedCSS() string {
	var b strings.Builder
	b.WriteString(motion.Stylesheet(Animations()...))
	b.WriteString(layout.GridCSS(catalogGridSelector))
	b.WriteString(layout.VisibilityCSS(navLinksSelector, navCompactSelector))
	b.WriteString(layout.StackCSS(heroActionsSelector))
	b.WriteString(layout.StackCSS(footerColumnSelector))
	return b.String()
}

// NoScriptCSS forces viewport reveals to their final state when scripting is
// disabled.
func NoScriptCSS() string {
	return motion.NoScriptStylesheet(Animations()...)
}
