package icons

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestCatalogIconsHaveLucideMappings(t *testing.T) {
	for _, def := range Catalog() {
		name, ok := LucideName(def.ID)
		if !ok {
			t.Fatalf("catalog icon %s does not have a Lucide mapping", def.ID)
		}
		if !strings.Contains(LucideSprite(), `id="`+LucideSymbolID(name)+`"`) {
			t.Fatalf("sprite missing symbol for %s", name)
		}
		if strings.TrimSpace(def.Name) == "" {
			t.Fatalf("icon %s missing name", def.ID)
		}
	}
}

func TestCatalogMarkdownIncludesIconIDs(t *testing.T) {
	markdown := CatalogMarkdown()
	for _, def := range Catalog() {
		if !strings.Contains(markdown, string(def.ID)) {
			t.Fatalf("catalog markdown missing icon id %s", def.ID)
		}
	}
}

func TestLucideNameOrDefault(t *testing.T) {
	if got := LucideNameOrDefault(ID("missing")); got != "circle-check" {
		t.Fatalf("LucideNameOrDefault(missing) = %q, want %q", got, "circle-check")
	}
}

func TestGlyphReferencesSprite(t *testing.T) {
	var buf bytes.Buffer
	if err := Glyph(ArrowRight, "icon-sm").Render(context.Background(), &buf); err != nil {
		t.Fatalf("Glyph() error = %v", err)
	}
	want := `<svg class="icon-sm" aria-hidden="true"><use href="#lucide-arrow-right"></use></svg>`
	if buf.String() != want {
		t.Fatalf("Glyph() = %q, want %q", buf.String(), want)
	}
}

func TestLogoSVGAppliesColorAndSize(t *testing.T) {
	got := LogoSVG(MarkOptions{Color: "#FFD700", Size: 40, Class: "brand-mark"})
	for _, marker := range []string{
		`viewBox="0 0 100 120"`,
		`class="brand-mark"`,
		`width="40" height="48"`,
		`stroke="#FFD700"`,
		`fill="#FFD700"`,
		`aria-hidden="true"`,
	} {
		if !strings.Contains(got, marker) {
			t.Fatalf("LogoSVG() missing %q: %s", marker, got)
		}
	}
	if strings.Contains(got, "currentColor") {
		t.Fatalf("configured color should replace the default: %s", got)
	}
}

func TestLogoSVGIsPure(t *testing.T) {
	opts := MarkOptions{Color: "#FFD700", Label: "Innovasmart"}
	if LogoSVG(opts) != LogoSVG(opts) {
		t.Fatal("LogoSVG should be deterministic")
	}
	if !strings.Contains(LogoSVG(MarkOptions{}), `stroke="currentColor"`) {
		t.Fatal("expected default color")
	}
	if !strings.Contains(LogoSVG(opts), `role="img" aria-label="Innovasmart"`) {
		t.Fatal("expected labelled logo")
	}
}

func TestLogoSVGEscapesColor(t *testing.T) {
	got := LogoSVG(MarkOptions{Color: `red" onload="x`})
	if strings.Contains(got, `onload="x"`) {
		t.Fatalf("color attribute not escaped: %s", got)
	}
}

func TestSocialSVGLayers(t *testing.T) {
	var buf bytes.Buffer
	if err := Social(MarkOptions{Class: "social-mark"}).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Social() error = %v", err)
	}
	got := buf.String()
	for _, marker := range []string{`fill="#ff0050"`, `fill="#00f2ea"`, `fill="#fff"`, `class="social-mark"`} {
		if !strings.Contains(got, marker) {
			t.Fatalf("Social() missing %q: %s", marker, got)
		}
	}
}
