// Package content owns the page's static configuration: the offer catalog,
// the contact points, and the outbound links built from them.
//
// The dataset is embedded at build time, parsed once, and validated before
// first use. Accessors hand out copies so callers cannot mutate it.
package content

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var siteYAML []byte

// CatalogAnchor is the in-page section id shared by the catalog, the hero
// call to action, and the navigation link.
const CatalogAnchor = "programas"

// OfferTier is one purchasable offering.
type OfferTier struct {
	Title      string   `validate:"required"`
	Price      int      `validate:"gt=0"`
	Features   []string `validate:"required,min=1,dive,required"`
	ActionLink string   `validate:"required,wa_link"`
	ButtonText string   `validate:"required"`
}

// Clone returns a copy that shares no memory with t.
func (t OfferTier) Clone() OfferTier {
	t.Features = append([]string(nil), t.Features...)
	return t
}

// Link is a navigation target.
type Link struct {
	Label    string `validate:"required"`
	Href     string `validate:"required,url"`
	External bool
}

// HeroCopy is the text of the landing section. The headline breaks after
// Headline and highlights Accent.
type HeroCopy struct {
	Headline string
	Accent   string
	Closing  string
	Lead     string
	// Action labels the call to action that jumps to the catalog.
	Action string
}

// Site is the full page configuration.
type Site struct {
	Brand   string
	Hero    HeroCopy
	Contact Link
	Social  Link
	Creator Link
	tiers   []OfferTier
}

// Tiers returns the catalog in display order.
func (s Site) Tiers() []OfferTier {
	out := make([]OfferTier, len(s.tiers))
	for i, t := range s.tiers {
		out[i] = t.Clone()
	}
	return out
}

// CatalogLink is the in-page anchor to the catalog section.
func (s Site) CatalogLink(label string) Link {
	return Link{Label: label, Href: "#" + CatalogAnchor}
}

type messagingFile struct {
	Label   string `yaml:"label" validate:"required"`
	Phone   string `yaml:"phone" validate:"required,numeric,min=8,max=15"`
	Message string `yaml:"message" validate:"required"`
}

type linkFile struct {
	Label string `yaml:"label" validate:"required"`
	Href  string `yaml:"href" validate:"required,url"`
}

type tierFile struct {
	Title    string   `yaml:"title" validate:"required"`
	Price    int      `yaml:"price" validate:"gt=0"`
	Button   string   `yaml:"button" validate:"required"`
	Message  string   `yaml:"message" validate:"required,fieldcontains=Title"`
	Features []string `yaml:"features" validate:"required,min=1,dive,required"`
}

type heroFile struct {
	Headline string `yaml:"headline" validate:"required"`
	Accent   string `yaml:"accent" validate:"required"`
	Closing  string `yaml:"closing"`
	Lead     string `yaml:"lead" validate:"required"`
	Action   string `yaml:"action" validate:"required"`
}

type siteFile struct {
	Brand   string        `yaml:"brand" validate:"required"`
	Hero    heroFile      `yaml:"hero"`
	Contact messagingFile `yaml:"contact"`
	Social  linkFile      `yaml:"social"`
	Creator messagingFile `yaml:"creator"`
	Tiers   []tierFile    `yaml:"tiers" validate:"required,min=1,dive"`
}

// Parse decodes and validates a site document.
func Parse(data []byte) (Site, error) {
	var raw siteFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Site{}, fmt.Errorf("decode site content: %w", err)
	}
	if err := validate(raw); err != nil {
		return Site{}, fmt.Errorf("validate site content: %w", err)
	}

	site := Site{
		Brand: strings.TrimSpace(raw.Brand),
		Hero: HeroCopy{
			Headline: strings.TrimSpace(raw.Hero.Headline),
			Accent:   strings.TrimSpace(raw.Hero.Accent),
			Closing:  strings.TrimSpace(raw.Hero.Closing),
			Lead:     strings.TrimSpace(raw.Hero.Lead),
			Action:   strings.TrimSpace(raw.Hero.Action),
		},
		Contact: Link{
			Label:    raw.Contact.Label,
			Href:     WhatsAppLink(raw.Contact.Phone, raw.Contact.Message),
			External: true,
		},
		Social: Link{
			Label:    raw.Social.Label,
			Href:     raw.Social.Href,
			External: true,
		},
		Creator: Link{
			Label:    raw.Creator.Label,
			Href:     WhatsAppLink(raw.Creator.Phone, raw.Creator.Message),
			External: true,
		},
		tiers: make([]OfferTier, 0, len(raw.Tiers)),
	}
	seen := make(map[string]struct{}, len(raw.Tiers))
	for _, t := range raw.Tiers {
		if _, ok := seen[t.Title]; ok {
			return Site{}, fmt.Errorf("validate site content: duplicate tier %q", t.Title)
		}
		seen[t.Title] = struct{}{}
		tier := OfferTier{
			Title:      t.Title,
			Price:      t.Price,
			Features:   append([]string(nil), t.Features...),
			ActionLink: WhatsAppLink(raw.Contact.Phone, t.Message),
			ButtonText: t.Button,
		}
		if err := validate(tier); err != nil {
			return Site{}, fmt.Errorf("validate tier %q: %w", t.Title, err)
		}
		site.tiers = append(site.tiers, tier)
	}
	for _, l := range []Link{site.Contact, site.Social, site.Creator} {
		if err := validate(l); err != nil {
			return Site{}, fmt.Errorf("validate link %q: %w", l.Label, err)
		}
	}
	return site, nil
}

// MustParse is Parse for embedded content; invalid content is a build defect.
func MustParse(data []byte) Site {
	site, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return site
}

var defaultSite = sync.OnceValue(func() Site {
	return MustParse(siteYAML)
})

// Default returns the embedded site configuration.
func Default() Site {
	return defaultSite()
}

// NewSite assembles a site from already-validated parts. It is intended for
// callers that need a custom tier order, such as previews and tests.
func NewSite(base Site, tiers []OfferTier) Site {
	base.tiers = make([]OfferTier, len(tiers))
	for i, t := range tiers {
		base.tiers[i] = t.Clone()
	}
	return base
}
