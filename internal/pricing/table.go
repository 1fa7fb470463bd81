// Package pricing implements the feature pricing table, the per-category
// option catalog, and the price calculator for project requests.
package pricing

// Domain is the named bucket that disambiguates same-named feature keys
// across categories.
type Domain string

const (
	DomainWeb             Domain = "web"
	DomainSeo             Domain = "seo"
	DomainMarketing       Domain = "digital-marketing"
	DomainSocialPlatform  Domain = "social-platform"
	DomainContentType     Domain = "content-type"
	DomainContentLanguage Domain = "content-language"
	DomainAppFeature      Domain = "app-feature"
)

// Table is an immutable (domain, feature key) -> price lookup. It is built
// once and injected wherever prices are stamped; callers never mutate it.
type Table struct {
	prices map[Domain]map[string]int
}

// PriceOf returns the price increment for the given feature key within a
// pricing domain. Unknown (domain, key) pairs resolve to 0, never an error.
func (t *Table) PriceOf(key string, domain Domain) int {
	return t.prices[domain][key]
}

// DefaultTable returns the standard feature pricing table.
func DefaultTable() *Table {
	return &Table{prices: map[Domain]map[string]int{
		DomainWeb: {
			"payment-gateway":   80,
			"social-login":      50,
			"live-chat":         40,
			"responsive-design": 30,
			"admin-panel":       100,
		},
		DomainSeo: {
			"on-page":   60,
			"off-page":  70,
			"white-hat": 90,
		},
		DomainMarketing: {
			"social-media-management": 200,
			"ppc-campaigns":           300,
			"email-marketing":         150,
			"influencer-marketing":    250,
			"affiliate-marketing":     180,
			"conversion-optimization": 220,
		},
		DomainSocialPlatform: {
			"facebook":  50,
			"instagram": 50,
			"twitter":   40,
			"linkedin":  60,
			"youtube":   80,
			"tiktok":    70,
		},
		DomainContentType: {
			"blog-posts":           25,
			"product-descriptions": 15,
			"social-media-content": 20,
			"email-newsletters":    30,
			"website-copy":         40,
			"press-releases":       50,
			"whitepapers":          100,
			"case-studies":         80,
		},
		DomainContentLanguage: {
			"english": 0,
			"spanish": 10,
			"french":  15,
			"german":  15,
			"arabic":  20,
			"chinese": 25,
		},
		DomainAppFeature: {
			"user-authentication":   80,
			"push-notifications":    60,
			"in-app-purchases":      120,
			"social-sharing":        40,
			"offline-functionality": 100,
			"real-time-chat":        150,
			"geolocation":           90,
			"camera-integration":    70,
			"file-upload":           50,
			"analytics":             60,
		},
	}}
}
