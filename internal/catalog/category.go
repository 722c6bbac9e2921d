package catalog

// Category identifiers as they appear in the definitions.
const (
	CategoryStock    = "stock"
	CategoryIndex    = "index"
	CategoryFund     = "fund"
	CategoryETF      = "etf"
	CategoryFutures  = "futures"
	CategoryOptions  = "options"
	CategoryBond     = "bond"
	CategoryForex    = "forex"
	CategoryHKStock  = "hk_stock"
	CategoryUSStock  = "us_stock"
	CategoryMacro    = "macro"
	CategoryIndustry = "industry"
	CategorySpot     = "spot"
	CategoryWealth   = "wealth"
	CategoryCorpus   = "corpus"
	CategoryNews     = "news"
	CategoryOther    = "other"
)

var displayOrder = []string{
	CategoryStock,
	CategoryIndex,
	CategoryFund,
	CategoryETF,
	CategoryFutures,
	CategoryOptions,
	CategoryBond,
	CategoryForex,
	CategoryHKStock,
	CategoryUSStock,
	CategoryMacro,
	CategoryIndustry,
	CategorySpot,
	CategoryWealth,
	CategoryCorpus,
	CategoryNews,
	CategoryOther,
}

var categoryTitles = map[string]string{
	CategoryStock:    "A-share stocks",
	CategoryIndex:    "Indices",
	CategoryFund:     "Public funds",
	CategoryETF:      "ETFs",
	CategoryFutures:  "Futures",
	CategoryOptions:  "Options",
	CategoryBond:     "Bonds",
	CategoryForex:    "Foreign exchange",
	CategoryHKStock:  "Hong Kong stocks",
	CategoryUSStock:  "US stocks",
	CategoryMacro:    "Macro economy",
	CategoryIndustry: "Industry data",
	CategorySpot:     "Spot commodities",
	CategoryWealth:   "Wealth management",
	CategoryCorpus:   "Text corpus",
	CategoryNews:     "News",
	CategoryOther:    "Other",
}

// CategoryTitle returns a human readable title for a category, or the
// identifier itself when none is known.
func CategoryTitle(category string) string {
	if title, ok := categoryTitles[category]; ok {
		return title
	}
	return category
}
