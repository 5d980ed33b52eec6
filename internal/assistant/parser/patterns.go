// internal/assistant/parser/patterns.go
package parser

import "regexp"

// Price phrasings are tried most-specific first; the bare dollar amount is
// the last resort. The first pattern that matches anywhere in the query wins.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`under\s*\$(\d+\.?\d*)`),
	regexp.MustCompile(`less than\s*\$(\d+\.?\d*)`),
	regexp.MustCompile(`cheaper than\s*\$(\d+\.?\d*)`),
	regexp.MustCompile(`\$(\d+\.?\d*)\s*or less`),
	regexp.MustCompile(`\$(\d+\.?\d*)`),
}

// Weekday phrasings come before explicit month/day phrasings.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`by\s*(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`),
	regexp.MustCompile(`before\s*(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`),
	regexp.MustCompile(`deliver(?:ed|y)?\s*by\s*(\w+\s*\d+)`),
	regexp.MustCompile(`arrive\s*by\s*(\w+\s*\d+)`),
}

var comparisonPatterns = []*regexp.Regexp{
	regexp.MustCompile(`better deals?`),
	regexp.MustCompile(`compare`),
	regexp.MustCompile(`cheaper`),
	regexp.MustCompile(`best price`),
	regexp.MustCompile(`lowest price`),
	regexp.MustCompile(`price difference`),
	regexp.MustCompile(`price comparison`),
}

var returnPatterns = []*regexp.Regexp{
	regexp.MustCompile(`return policy`),
	regexp.MustCompile(`can i return`),
	regexp.MustCompile(`returns?`),
	regexp.MustCompile(`refund`),
	regexp.MustCompile(`exchange`),
}

var sizePatterns = []*regexp.Regexp{
	regexp.MustCompile(`size\s+(\w+)`),
	regexp.MustCompile(`in\s+(\w+)\s+size`),
	regexp.MustCompile(`size:\s*(\w+)`),
}

// colorVocabulary is a closed set; iteration order decides ties.
var colorVocabulary = []string{"white", "black", "blue", "red", "green", "yellow", "floral"}

// Whole-word patterns aligned with colorVocabulary, so "blueberry" never
// yields "blue".
var colorWordPatterns = buildColorWordPatterns()

func buildColorWordPatterns() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(colorVocabulary))
	for i, color := range colorVocabulary {
		out[i] = regexp.MustCompile(`\b` + color + `\b`)
	}
	return out
}

// Store tokens are matched case-sensitively against the raw query.
var storePattern = regexp.MustCompile(`(?:at|from|in|store)\s+(Store[ABC])`)

// Keyword is case-insensitive, the captured token keeps its original case.
var discountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)discount code ['"]([\w\d]+)['"]`),
	regexp.MustCompile(`(?i)code ['"]([\w\d]+)['"]`),
	regexp.MustCompile(`(?i)coupon ['"]([\w\d]+)['"]`),
}

var quotedSpanPattern = regexp.MustCompile(`['"](.*?)['"]`)

// Verb-anchored noun-phrase templates, tried in order. The capture runs up
// to the first boundary token.
var productIndicatorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:looking for|find|need|want)\s+(?:a|an)?\s*([\w\s]+?)(?:under|\$|in size|with size|color|from|at|\?|$)`),
	regexp.MustCompile(`(?:find|get|show)\s+(?:me\s+)?(?:a|an)?\s*([\w\s]+?)(?:under|\$|in size|with size|color|from|at|\?|$)`),
	regexp.MustCompile(`(?:a|an)?\s*((?:\w+\s+)?(?:skirt|dress|jacket|shoes|sneakers|top))\s+(?:under|\$|in size|with size|color|from|at|\?|$)`),
}

var fillerWordPattern = regexp.MustCompile(`\b(a|an|the|some)\b`)

// Closed list of product-type nouns used as the last product-name tier.
var productTypes = []string{"skirt", "dress", "jacket", "sneakers", "shoes"}

var productTypeAdjPatterns = buildProductTypeAdjPatterns()

func buildProductTypeAdjPatterns() map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, len(productTypes))
	for _, pt := range productTypes {
		out[pt] = regexp.MustCompile(`(\w+)\s+` + pt)
	}
	return out
}
