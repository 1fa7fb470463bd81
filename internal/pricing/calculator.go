package pricing

import (
	"math"

	"hireflow/internal/models"
)

// Selections carries every category-specific choice a project request can
// make. Fields outside the project's category are ignored by the calculator.
type Selections struct {
	// Web development
	Tech        string   `json:"tech"`
	WebPages    int      `json:"web_pages"`
	WebFeatures []string `json:"web_features"`

	// SEO
	SeoTypes []string `json:"seo_types"`

	// Digital marketing
	MarketingServices []string `json:"marketing_services"`
	SocialPlatforms   []string `json:"social_platforms"`
	MarketingDuration string   `json:"marketing_duration"`
	MarketingBudget   float64  `json:"marketing_budget"`

	// Content generation
	ContentTypes     []string `json:"content_types"`
	ContentVolume    string   `json:"content_volume"`
	ContentLanguages []string `json:"content_languages"`

	// App development
	AppType       string   `json:"app_type"`
	AppFeatures   []string `json:"app_features"`
	AppComplexity string   `json:"app_complexity"`
}

// Calculator derives the authoritative project price from a category and its
// selections. It is pure: identical inputs always produce identical output.
type Calculator struct {
	table   *Table
	catalog *Catalog
}

// NewCalculator returns a calculator over the given table and catalog.
func NewCalculator(table *Table, catalog *Catalog) *Calculator {
	return &Calculator{table: table, catalog: catalog}
}

// Price computes the total for a category's selections. Unselected fields
// contribute 0; unknown categories price to 0.
func (c *Calculator) Price(category string, sel Selections) float64 {
	switch category {
	case models.CategoryWebDevelopment:
		total := float64(c.catalog.TechPrice(sel.Tech))
		total += float64(sel.WebPages * 10)
		for _, f := range sel.WebFeatures {
			total += float64(c.table.PriceOf(f, DomainWeb))
		}
		return total

	case models.CategorySeo:
		var total float64
		for _, t := range sel.SeoTypes {
			total += float64(c.table.PriceOf(t, DomainSeo))
		}
		return total

	case models.CategoryDigitalMarketing:
		var total float64
		for _, s := range sel.MarketingServices {
			total += float64(c.table.PriceOf(s, DomainMarketing))
		}
		for _, p := range sel.SocialPlatforms {
			total += float64(c.table.PriceOf(p, DomainSocialPlatform))
		}
		total += float64(c.catalog.DurationPrice(sel.MarketingDuration))
		if sel.MarketingBudget > 0 {
			total += math.Floor(sel.MarketingBudget * 0.15)
		}
		return total

	case models.CategoryContentGeneration:
		var subtotal float64
		for _, t := range sel.ContentTypes {
			subtotal += float64(c.table.PriceOf(t, DomainContentType))
		}
		// The volume multiplier scales the content-type subtotal only;
		// language add-ons are applied after.
		total := subtotal * c.catalog.VolumeMultiplier(sel.ContentVolume)
		for _, l := range sel.ContentLanguages {
			total += float64(c.table.PriceOf(l, DomainContentLanguage))
		}
		return total

	case models.CategoryAppDevelopment:
		base := float64(c.catalog.AppTypePrice(sel.AppType))
		for _, f := range sel.AppFeatures {
			base += float64(c.table.PriceOf(f, DomainAppFeature))
		}
		return base * c.catalog.ComplexityMultiplier(sel.AppComplexity)
	}

	return 0
}
