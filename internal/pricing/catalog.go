package pricing

import "hireflow/internal/models"

// Option is a selectable item carrying a flat price contribution.
type Option struct {
	Key   string `json:"key"`
	Label string `json:"label,omitempty"`
	Price int    `json:"price"`
}

// Multiplier is a single-select field whose choice scales a subtotal
// instead of adding to it.
type Multiplier struct {
	Key    string  `json:"key"`
	Label  string  `json:"label,omitempty"`
	Factor float64 `json:"factor"`
}

// Schema describes the extra fields of one project category: flat-priced
// base contributors, multi-select option groups keyed by pricing domain,
// and multiplier-bearing single-selects.
type Schema struct {
	BaseOptions  []Option            `json:"base_options,omitempty"`
	OptionGroups map[Domain][]Option `json:"option_groups,omitempty"`
	Multipliers  []Multiplier        `json:"multipliers,omitempty"`
}

// Catalog is the declarative registry of category schemas.
type Catalog struct {
	techOptions      []Option
	durationOptions  []Option
	appTypes         []Option
	volumeOptions    []Multiplier
	complexityLevels []Multiplier
	table            *Table
}

// DefaultCatalog returns the registry used by both the calculator and the
// admin/category forms.
func DefaultCatalog() *Catalog {
	return &Catalog{
		techOptions: []Option{
			{Key: "wordpress", Label: "WordPress", Price: 100},
			{Key: "frontend", Label: "Frontend Only (HTML/CSS/JS/React)", Price: 150},
			{Key: "backend", Label: "Backend Only (MERN/MEAN)", Price: 180},
			{Key: "fullstack", Label: "Full Stack", Price: 250},
		},
		durationOptions: []Option{
			{Key: "1-month", Label: "1 Month", Price: 0},
			{Key: "3-months", Label: "3 Months", Price: 50},
			{Key: "6-months", Label: "6 Months", Price: 120},
			{Key: "12-months", Label: "12 Months", Price: 200},
		},
		appTypes: []Option{
			{Key: "native-ios", Label: "Native iOS App", Price: 500},
			{Key: "native-android", Label: "Native Android App", Price: 450},
			{Key: "cross-platform", Label: "Cross-Platform (React Native/Flutter)", Price: 600},
			{Key: "web-app", Label: "Progressive Web App (PWA)", Price: 350},
			{Key: "hybrid", Label: "Hybrid App (Cordova/Ionic)", Price: 400},
		},
		volumeOptions: []Multiplier{
			{Key: "1-10", Label: "1-10 pieces", Factor: 1},
			{Key: "11-25", Label: "11-25 pieces", Factor: 0.9},
			{Key: "26-50", Label: "26-50 pieces", Factor: 0.8},
			{Key: "51-100", Label: "51-100 pieces", Factor: 0.7},
			{Key: "100+", Label: "100+ pieces", Factor: 0.6},
		},
		complexityLevels: []Multiplier{
			{Key: "simple", Label: "Simple (Basic functionality)", Factor: 1},
			{Key: "medium", Label: "Medium (Moderate features)", Factor: 1.5},
			{Key: "complex", Label: "Complex (Advanced features)", Factor: 2},
			{Key: "enterprise", Label: "Enterprise (Full-scale solution)", Factor: 3},
		},
		table: DefaultTable(),
	}
}

// SchemaFor returns the declarative schema for a category. Unknown
// categories yield an empty schema so no category-specific pricing applies.
func (c *Catalog) SchemaFor(category string) Schema {
	switch category {
	case models.CategoryWebDevelopment:
		return Schema{
			BaseOptions: c.techOptions,
			OptionGroups: map[Domain][]Option{
				DomainWeb: c.tableOptions(DomainWeb),
			},
		}
	case models.CategorySeo:
		return Schema{
			OptionGroups: map[Domain][]Option{
				DomainSeo: c.tableOptions(DomainSeo),
			},
		}
	case models.CategoryDigitalMarketing:
		return Schema{
			BaseOptions: c.durationOptions,
			OptionGroups: map[Domain][]Option{
				DomainMarketing:      c.tableOptions(DomainMarketing),
				DomainSocialPlatform: c.tableOptions(DomainSocialPlatform),
			},
		}
	case models.CategoryContentGeneration:
		return Schema{
			OptionGroups: map[Domain][]Option{
				DomainContentType:     c.tableOptions(DomainContentType),
				DomainContentLanguage: c.tableOptions(DomainContentLanguage),
			},
			Multipliers: c.volumeOptions,
		}
	case models.CategoryAppDevelopment:
		return Schema{
			BaseOptions: c.appTypes,
			OptionGroups: map[Domain][]Option{
				DomainAppFeature: c.tableOptions(DomainAppFeature),
			},
			Multipliers: c.complexityLevels,
		}
	}
	return Schema{}
}

func (c *Catalog) tableOptions(domain Domain) []Option {
	keys := c.table.prices[domain]
	opts := make([]Option, 0, len(keys))
	for key, price := range keys {
		opts = append(opts, Option{Key: key, Price: price})
	}
	return opts
}

// TechPrice returns the flat price for a web technology stack, 0 if unknown.
func (c *Catalog) TechPrice(key string) int {
	return optionPrice(c.techOptions, key)
}

// DurationPrice returns the flat price for a marketing duration, 0 if unknown.
func (c *Catalog) DurationPrice(key string) int {
	return optionPrice(c.durationOptions, key)
}

// AppTypePrice returns the base price for an app type, 0 if unknown.
func (c *Catalog) AppTypePrice(key string) int {
	return optionPrice(c.appTypes, key)
}

// VolumeMultiplier returns the content volume factor, 1 if unknown.
func (c *Catalog) VolumeMultiplier(key string) float64 {
	return multiplierFactor(c.volumeOptions, key)
}

// ComplexityMultiplier returns the app complexity factor, 1 if unknown.
func (c *Catalog) ComplexityMultiplier(key string) float64 {
	return multiplierFactor(c.complexityLevels, key)
}

func optionPrice(opts []Option, key string) int {
	for _, o := range opts {
		if o.Key == key {
			return o.Price
		}
	}
	return 0
}

func multiplierFactor(ms []Multiplier, key string) float64 {
	for _, m := range ms {
		if m.Key == key {
			return m.Factor
		}
	}
	return 1
}
