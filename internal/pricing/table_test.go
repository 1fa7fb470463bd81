package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceOfKnownKeys(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		domain Domain
		key    string
		want   int
	}{
		{DomainWeb, "payment-gateway", 80},
		{DomainWeb, "admin-panel", 100},
		{DomainSeo, "on-page", 60},
		{DomainSeo, "white-hat", 90},
		{DomainMarketing, "ppc-campaigns", 300},
		{DomainSocialPlatform, "youtube", 80},
		{DomainContentType, "whitepapers", 100},
		{DomainContentType, "blog-posts", 25},
		{DomainContentLanguage, "english", 0},
		{DomainContentLanguage, "chinese", 25},
		{DomainAppFeature, "real-time-chat", 150},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, table.PriceOf(tt.key, tt.domain), "%s/%s", tt.domain, tt.key)
	}
}

func TestPriceOfUnknownKeysResolveToZero(t *testing.T) {
	table := DefaultTable()

	// Permissive by contract: a typo'd key silently prices to 0 rather than
	// erroring, which is why create flows should validate keys upstream.
	assert.Equal(t, 0, table.PriceOf("payment-gatewy", DomainWeb))
	assert.Equal(t, 0, table.PriceOf("payment-gateway", DomainAppFeature))
	assert.Equal(t, 0, table.PriceOf("", DomainSeo))
	assert.Equal(t, 0, table.PriceOf("anything", Domain("no-such-domain")))
}

func TestSchemaForKnownCategories(t *testing.T) {
	catalog := DefaultCatalog()

	web := catalog.SchemaFor("web-development")
	assert.Len(t, web.BaseOptions, 4)
	assert.Len(t, web.OptionGroups[DomainWeb], 5)
	assert.Empty(t, web.Multipliers)

	seo := catalog.SchemaFor("seo")
	assert.Empty(t, seo.BaseOptions)
	assert.Len(t, seo.OptionGroups[DomainSeo], 3)

	marketing := catalog.SchemaFor("digital-marketing")
	assert.Len(t, marketing.OptionGroups[DomainMarketing], 6)
	assert.Len(t, marketing.OptionGroups[DomainSocialPlatform], 6)

	content := catalog.SchemaFor("content-generation")
	assert.Len(t, content.OptionGroups[DomainContentType], 8)
	assert.Len(t, content.Multipliers, 5)

	app := catalog.SchemaFor("app-development")
	assert.Len(t, app.BaseOptions, 5)
	assert.Len(t, app.Multipliers, 4)
}

func TestSchemaForUnknownCategoryIsEmpty(t *testing.T) {
	catalog := DefaultCatalog()

	schema := catalog.SchemaFor("graphic-design")
	assert.Empty(t, schema.BaseOptions)
	assert.Empty(t, schema.OptionGroups)
	assert.Empty(t, schema.Multipliers)
}

func TestCatalogLookupDefaults(t *testing.T) {
	catalog := DefaultCatalog()

	assert.Equal(t, 250, catalog.TechPrice("fullstack"))
	assert.Equal(t, 0, catalog.TechPrice("cobol"))
	assert.Equal(t, 200, catalog.DurationPrice("12-months"))
	assert.Equal(t, 600, catalog.AppTypePrice("cross-platform"))
	assert.Equal(t, 0.8, catalog.VolumeMultiplier("26-50"))
	assert.Equal(t, 1.0, catalog.VolumeMultiplier("unknown"))
	assert.Equal(t, 3.0, catalog.ComplexityMultiplier("enterprise"))
	assert.Equal(t, 1.0, catalog.ComplexityMultiplier(""))
}
