package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestCalculator() *Calculator {
	return NewCalculator(DefaultTable(), DefaultCatalog())
}

func TestWebDevelopmentPrice(t *testing.T) {
	calc := newTestCalculator()

	// fullstack 250 + 12 pages * 10 + payment-gateway 80 + admin-panel 100
	price := calc.Price("web-development", Selections{
		Tech:        "fullstack",
		WebPages:    12,
		WebFeatures: []string{"payment-gateway", "admin-panel"},
	})
	assert.Equal(t, 550.0, price)
}

func TestSeoPrice(t *testing.T) {
	calc := newTestCalculator()

	price := calc.Price("seo", Selections{
		SeoTypes: []string{"on-page", "off-page"},
	})
	assert.Equal(t, 130.0, price)
}

func TestDigitalMarketingBudgetFee(t *testing.T) {
	calc := newTestCalculator()

	// email-marketing 150 + facebook 50 + 3-months 50 + floor(1000*0.15)=150
	price := calc.Price("digital-marketing", Selections{
		MarketingServices: []string{"email-marketing"},
		SocialPlatforms:   []string{"facebook"},
		MarketingDuration: "3-months",
		MarketingBudget:   1000,
	})
	assert.Equal(t, 400.0, price)

	// Zero budget adds no management fee.
	noBudget := calc.Price("digital-marketing", Selections{
		MarketingServices: []string{"email-marketing"},
	})
	assert.Equal(t, 150.0, noBudget)
}

func TestContentGenerationMultiplierOrdering(t *testing.T) {
	calc := newTestCalculator()

	// (25 + 80) * 0.8 + 10 = 94: the volume multiplier applies to the
	// content-type subtotal only, never to language add-ons.
	price := calc.Price("content-generation", Selections{
		ContentTypes:     []string{"blog-posts", "case-studies"},
		ContentVolume:    "26-50",
		ContentLanguages: []string{"spanish"},
	})
	assert.Equal(t, 94.0, price)
}

func TestAppDevelopmentPrice(t *testing.T) {
	calc := newTestCalculator()

	// (600 + 60) * 2 = 1320
	price := calc.Price("app-development", Selections{
		AppType:       "cross-platform",
		AppFeatures:   []string{"push-notifications"},
		AppComplexity: "complex",
	})
	assert.Equal(t, 1320.0, price)
}

func TestPriceAbsentSelectionsContributeZero(t *testing.T) {
	calc := newTestCalculator()

	assert.Equal(t, 0.0, calc.Price("web-development", Selections{}))
	assert.Equal(t, 0.0, calc.Price("seo", Selections{}))
	assert.Equal(t, 0.0, calc.Price("digital-marketing", Selections{}))
	assert.Equal(t, 0.0, calc.Price("content-generation", Selections{}))
	assert.Equal(t, 0.0, calc.Price("app-development", Selections{}))
	assert.Equal(t, 0.0, calc.Price("unknown-category", Selections{Tech: "fullstack"}))
}

func TestPriceIsIdempotent(t *testing.T) {
	calc := newTestCalculator()

	sel := Selections{
		ContentTypes:     []string{"whitepapers", "website-copy"},
		ContentVolume:    "51-100",
		ContentLanguages: []string{"german", "arabic"},
	}

	first := calc.Price("content-generation", sel)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, calc.Price("content-generation", sel))
	}
}
