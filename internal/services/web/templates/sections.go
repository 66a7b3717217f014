package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/innovasmart/site/internal/platform/branding"
	"github.com/innovasmart/site/internal/platform/icons"
	"github.com/innovasmart/site/internal/services/web/content"
)

const heroBackgroundURL = "https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?auto=format&fit=crop&q=80&w=2070"

func wordmark(m *markup, class string) {
	m.raw(`<span`)
	m.attr("class", class)
	m.raw(`>`)
	m.text(branding.WordmarkLead)
	m.raw(`<span class="accent">`)
	m.text(branding.WordmarkAccent)
	m.raw(`</span></span>`)
}

// Nav renders the fixed top navigation bar.
func Nav(site content.Site) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		catalog := site.CatalogLink("Programas")
		m := newMarkup(ctx, w)
		m.raw(`<nav class="site-nav"><div class="site-nav-inner"><div class="brand">`)
		m.component(icons.Logo(icons.MarkOptions{Color: branding.AccentColor, Class: "brand-mark"}))
		wordmark(m, "wordmark")
		m.raw(`</div><div class="nav-links">`)
		m.raw(`<a class="btn-outline"`)
		m.href(catalog.Href)
		m.raw(`>`)
		m.text(catalog.Label)
		m.raw(`</a><a class="btn-accent"`)
		m.external(site.Contact.Href)
		m.raw(`>`)
		m.text(site.Contact.Label)
		m.raw(`</a></div><a class="nav-compact btn-accent"`)
		m.external(site.Contact.Href)
		m.raw(`>`)
		m.text(site.Contact.Label)
		m.raw(`</a></div></nav>`)
		return m.done()
	})
}

// Hero renders the landing section with the brand mark, headline and the
// two ambient loops.
func Hero(site content.Site) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		catalog := site.CatalogLink(site.Hero.Action)
		m := newMarkup(ctx, w)
		m.raw(`<section class="hero"><div class="hero-backdrop">`)
		m.raw(`<img class="hero-image" alt="Corporate background" referrerpolicy="no-referrer" loading="eager"`)
		m.attr("src", heroBackgroundURL)
		m.raw(`><div class="hero-shade"></div><div class="hero-rays"></div></div>`)
		m.raw(`<div class="hero-inner">`)
		m.component(Reveal(HeroEntrance, "hero-content", heroContent(site, catalog)))
		m.raw(`</div><div class="scroll-cue" aria-hidden="true"><div class="scroll-cue-bar"></div></div></section>`)
		return m.done()
	})
}

func heroContent(site content.Site, catalog content.Link) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<div class="hero-mark">`)
		m.component(Reveal(GlowPulse, "hero-glow", nil))
		m.component(icons.Logo(icons.MarkOptions{Color: branding.AccentColor, Class: "hero-logo"}))
		m.raw(`</div>`)
		hero := site.Hero
		m.raw(`<h1 class="hero-title">`)
		m.text(hero.Headline)
		m.raw(` <br><span class="accent">`)
		m.text(hero.Accent)
		m.raw(`</span>`)
		if hero.Closing != "" {
			m.text(" " + hero.Closing)
		}
		m.raw(`</h1><p class="hero-lead">`)
		m.text(hero.Lead)
		m.raw(`</p>`)
		m.raw(`<div class="hero-cta"><div class="hero-actions"><a class="btn-primary"`)
		m.href(catalog.Href)
		m.raw(`>`)
		m.text(catalog.Label)
		m.raw(` `)
		m.component(icons.Glyph(icons.ArrowRight, "glyph"))
		m.raw(`</a></div>`)
		m.component(Reveal(FloatBadge, "hero-badge-float", socialBadge(site.Social)))
		m.raw(`</div>`)
		return m.done()
	})
}

func socialBadge(social content.Link) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<a class="social-badge"`)
		m.external(social.Href)
		m.raw(`><span class="social-badge-ring" aria-hidden="true"><span class="social-badge-sweep"></span></span>`)
		m.raw(`<span class="social-badge-fill" aria-hidden="true"></span><span class="social-badge-body">`)
		m.component(icons.Social(icons.MarkOptions{Class: "social-glyph"}))
		m.raw(`<span class="social-badge-label">Seguinos en <span class="accent">`)
		m.text(social.Label)
		m.raw(`</span></span></span></a>`)
		return m.done()
	})
}

// OfferCard renders one catalog tier with its call to action.
func OfferCard(tier content.OfferTier) templ.Component {
	return Reveal(CardReveal, "offer-card-slot", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<article class="offer-card"><h3 class="offer-title">`)
		m.text(tier.Title)
		m.raw(`</h3><div class="offer-price"><span class="offer-currency">`)
		m.text(content.CurrencySymbol)
		m.raw(`</span><span class="offer-amount">`)
		m.text(content.FormatPrice(tier.Price))
		m.raw(`</span></div><ul class="offer-features">`)
		for _, feature := range tier.Features {
			m.raw(`<li>`)
			m.component(icons.Glyph(icons.Check, "glyph offer-check"))
			m.raw(`<span>`)
			m.text(feature)
			m.raw(`</span></li>`)
		}
		m.raw(`</ul><a class="offer-cta"`)
		m.external(tier.ActionLink)
		m.raw(`>`)
		m.text(tier.ButtonText)
		m.raw(`</a></article>`)
		return m.done()
	}))
}

// CatalogSection renders one OfferCard per tier, in the given order.
func CatalogSection(tiers []content.OfferTier) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<section class="catalog"`)
		m.attr("id", content.CatalogAnchor)
		m.raw(`><div class="catalog-inner"><header class="catalog-header">`)
		m.raw(`<h2 class="catalog-title">NUESTROS <span class="accent">PROGRAMAS</span></h2>`)
		m.raw(`<p class="catalog-lead">Elegí el nivel que mejor se adapte a tu etapa actual y empezá a importar como un profesional.</p>`)
		m.raw(`</header><div class="catalog-grid">`)
		for _, tier := range tiers {
			m.component(OfferCard(tier))
		}
		m.raw(`</div><div class="catalog-notes">`)
		m.raw(`<p class="catalog-note">La <span class="catalog-note-em">Asesoría Premium</span> requiere una entrevista previa de admisión para garantizar resultados.</p>`)
		m.raw(`<div class="payment-strip"><span class="payment-rule"></span><span>Aceptamos todos los medios de pago</span><span class="payment-rule"></span></div>`)
		m.raw(`</div></div></section>`)
		return m.done()
	})
}

// Footer renders the brand, social link, copyright and creator credit.
func Footer(site content.Site) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<footer class="site-footer"><div class="footer-inner"><div class="footer-brand"><div class="brand">`)
		m.component(icons.Logo(icons.MarkOptions{Color: branding.AccentColor, Class: "brand-mark brand-mark-sm"}))
		wordmark(m, "wordmark wordmark-sm")
		m.raw(`</div><a class="footer-social"`)
		m.external(site.Social.Href)
		m.attr("aria-label", site.Social.Label)
		m.raw(`>`)
		m.component(icons.Social(icons.MarkOptions{Class: "social-glyph-sm"}))
		m.raw(`</a></div><div class="footer-meta"><div class="footer-copyright">© `)
		m.text(strconv.Itoa(branding.CopyrightYear) + " " + site.Brand + ". Todos los derechos reservados.")
		m.raw(`</div><div class="footer-credit">Creado por <a class="footer-credit-link"`)
		m.external(site.Creator.Href)
		m.raw(`>`)
		m.text(site.Creator.Label)
		m.raw(`</a></div></div></div></footer>`)
		return m.done()
	})
}

// LandingPage composes the full page for site.
func LandingPage(site content.Site, opts DocumentOptions) templ.Component {
	return Document(opts, group(
		templ.Raw(`<div class="page">`),
		Nav(site),
		Hero(site),
		CatalogSection(site.Tiers()),
		Footer(site),
		templ.Raw(`</div>`),
	))
}
