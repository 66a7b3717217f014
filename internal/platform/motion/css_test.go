package motion

import (
	"strings"
	"testing"
	"time"
)

func TestDeclarationsCombinesTransforms(t *testing.T) {
	t.Parallel()

	got := Declarations(State{Scale: 1.05, Opacity: 0.4, TranslateY: -5})
	want := "opacity: 0.4; transform: translateY(-5px) scale(1.05);"
	if got != want {
		t.Fatalf("Declarations() = %q, want %q", got, want)
	}
	if got := Declarations(State{}); got != "" {
		t.Fatalf("Declarations(empty) = %q, want empty", got)
	}
}

func TestKeyframesLoopIsMirroredAndInfinite(t *testing.T) {
	t.Parallel()

	css := Keyframes("glow-pulse", glowSpec())
	for _, marker := range []string{
		"@keyframes glow-pulse {",
		"0% { opacity: 0.4; transform: scale(1); }",
		"50% { opacity: 0.6; transform: scale(1.05); }",
		"100% { opacity: 0.4; transform: scale(1); }",
		`[data-motion="glow-pulse"] { animation: glow-pulse 4s ease-in-out infinite; }`,
	} {
		if !strings.Contains(css, marker) {
			t.Fatalf("keyframes missing %q:\n%s", marker, css)
		}
	}
}

func TestKeyframesMountRevealRunsOnce(t *testing.T) {
	t.Parallel()

	spec := Spec{
		Initial:  State{Opacity: 0, TranslateY: 40},
		Target:   State{Opacity: 1, TranslateY: 0},
		Trigger:  OnMount,
		Duration: time.Second,
		Easing:   CubicBezier(0.22, 1, 0.36, 1),
	}
	css := Keyframes("hero-entrance", spec)
	if !strings.Contains(css, "animation: hero-entrance 1s cubic-bezier(0.22, 1, 0.36, 1) both;") {
		t.Fatalf("unexpected mount keyframes:\n%s", css)
	}
	if strings.Contains(css, "infinite") {
		t.Fatalf("one-shot reveal must not loop:\n%s", css)
	}
}

func TestKeyframesViewportRevealUsesLatchClass(t *testing.T) {
	t.Parallel()

	css := Keyframes("card-reveal", cardSpec())
	for _, marker := range []string{
		`[data-motion="card-reveal"] { opacity: 0; transform: translateY(20px); transition: opacity 600ms ease-out, transform 600ms ease-out; }`,
		`[data-motion="card-reveal"].is-revealed { opacity: 1; transform: translateY(0px); }`,
	} {
		if !strings.Contains(css, marker) {
			t.Fatalf("viewport css missing %q:\n%s", marker, css)
		}
	}
	if strings.Contains(css, "@keyframes") {
		t.Fatalf("viewport reveal should be a transition, got keyframes:\n%s", css)
	}
}

func TestStylesheetIncludesReducedMotion(t *testing.T) {
	t.Parallel()

	css := Stylesheet(Named{Name: "glow-pulse", Spec: glowSpec()}, Named{Name: "card-reveal", Spec: cardSpec()})
	if !strings.Contains(css, "prefers-reduced-motion") {
		t.Fatalf("stylesheet missing reduced-motion override:\n%s", css)
	}
	if strings.Index(css, "glow-pulse") > strings.Index(css, "card-reveal") {
		t.Fatalf("stylesheet should keep declaration order:\n%s", css)
	}
}

func TestNoScriptStylesheetOnlyTargetsViewportReveals(t *testing.T) {
	t.Parallel()

	css := NoScriptStylesheet(Named{Name: "glow-pulse", Spec: glowSpec()}, Named{Name: "card-reveal", Spec: cardSpec()})
	if strings.Contains(css, "glow-pulse") {
		t.Fatalf("looping animation must keep running without script:\n%s", css)
	}
	want := `[data-motion="card-reveal"] { opacity: 1 !important; transform: translateY(0px) !important; }`
	if !strings.Contains(css, want) {
		t.Fatalf("NoScriptStylesheet() = %q, want it to contain %q", css, want)
	}
}
