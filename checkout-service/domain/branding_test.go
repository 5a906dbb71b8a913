package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftea/checkout-system/checkout-service/domain"
)

func TestBrandCatalog_Resolve(t *testing.T) {
	catalog := domain.NewBrandCatalog([]domain.BrandEntry{
		{
			Branding: domain.Branding{Site: "Acme", SiteURL: "https://acme.example.com/", LogoURL: "/acme.svg"},
			Aliases:  []string{"acme-outlet"},
		},
		{Branding: domain.Branding{Site: "Store", SiteURL: "https://store.example.com"}},
	}, "Store")

	acme := catalog.Resolve("ACME-Outlet")
	require.NotNil(t, acme)
	assert.Equal(t, "Acme", acme.Site)
	assert.Equal(t, "https://acme.example.com/cart/", acme.CartURL())

	acme.Site = "mutated"
	assert.Equal(t, "Acme", catalog.Resolve("acme").Site)

	fallback := catalog.Resolve("nobody")
	require.NotNil(t, fallback)
	assert.Equal(t, "Store", fallback.Site)

	assert.Nil(t, domain.NewBrandCatalog(nil, "").Resolve("acme"))
}

func TestResolveBranding(t *testing.T) {
	catalog := domain.NewBrandCatalog([]domain.BrandEntry{
		{Branding: domain.Branding{Site: "Acme"}},
		{Branding: domain.Branding{Site: "Books"}},
	}, "")

	tests := []struct {
		name string
		cart *domain.Cart
		want string
	}{
		{name: "no cart"},
		{name: "empty cart", cart: &domain.Cart{}},
		{name: "last physical item wins", cart: &domain.Cart{LineItems: domain.LineItems{
			PhysicalItems: []domain.LineItem{{Brand: "Books"}, {Brand: "Acme"}},
			DigitalItems:  []domain.LineItem{{Brand: "Books"}},
		}}, want: "Acme"},
		{name: "digital items when nothing physical", cart: &domain.Cart{LineItems: domain.LineItems{
			DigitalItems: []domain.LineItem{{Brand: "Books"}},
		}}, want: "Books"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ResolveBranding(tt.cart, catalog)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Site)
		})
	}
}
