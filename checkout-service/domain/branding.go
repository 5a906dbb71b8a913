package domain

import "strings"

// Branding is the cosmetic identity a session is rendered with
type Branding struct {
	Site    string `json:"site" mapstructure:"site"`
	SiteURL string `json:"site_url" mapstructure:"site_url"`
	LogoURL string `json:"logo_url" mapstructure:"logo_url"`
}

// CartURL is where the header cart link points to
func (b *Branding) CartURL() string {
	return strings.TrimSuffix(b.SiteURL, "/") + "/cart/"
}

// BrandEntry maps the brand names found on line items to a branding
type BrandEntry struct {
	Branding `mapstructure:",squash"`
	Aliases  []string `mapstructure:"aliases"`
}

// BrandCatalog resolves line item brands to brandings
type BrandCatalog struct {
	byAlias  map[string]*Branding
	fallback *Branding
}

// NewBrandCatalog indexes entries by alias. Unknown brands resolve to the entry whose
// site equals defaultSite, when there is one.
func NewBrandCatalog(entries []BrandEntry, defaultSite string) BrandCatalog {
	catalog := BrandCatalog{byAlias: map[string]*Branding{}}
	for i := range entries {
		b := entries[i].Branding
		catalog.byAlias[strings.ToLower(b.Site)] = &b
		for _, alias := range entries[i].Aliases {
			catalog.byAlias[strings.ToLower(alias)] = &b
		}
		if b.Site == defaultSite {
			catalog.fallback = &b
		}
	}
	return catalog
}

// Resolve returns a copy of the branding for the brand name
func (c BrandCatalog) Resolve(brand string) *Branding {
	b, ok := c.byAlias[strings.ToLower(brand)]
	if !ok {
		b = c.fallback
	}
	if b == nil {
		return nil
	}
	res := *b
	return &res
}

// ResolveBranding picks the brand of the last physical item, falling back to the last
// digital item
func ResolveBranding(cart *Cart, catalog BrandCatalog) *Branding {
	if cart == nil {
		return nil
	}

	items := cart.LineItems.PhysicalItems
	if len(items) == 0 {
		items = cart.LineItems.DigitalItems
	}
	if len(items) == 0 {
		return nil
	}
	return catalog.Resolve(items[len(items)-1].Brand)
}
