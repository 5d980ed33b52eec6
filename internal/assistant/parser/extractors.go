// internal/assistant/parser/extractors.go
package parser

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Each extractor is a pure function over the raw query string returning
// nil when the field is absent. Extractors never depend on each other.

func extractPrice(query string) *float64 {
	for _, p := range pricePatterns {
		m := p.FindStringSubmatch(query)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return &v
	}
	return nil
}

// extractProductName resolves the product name through three tiers:
// quoted text (unless the text before the quote mentions "code", which
// marks a discount code), verb-anchored phrase templates, then a closed
// list of product-type nouns with an optional preceding adjective.
func extractProductName(query string) *string {
	if loc := quotedSpanPattern.FindStringSubmatchIndex(query); loc != nil {
		prefix := strings.ToLower(query[:loc[0]])
		if !strings.Contains(prefix, "code") {
			name := query[loc[2]:loc[3]]
			return &name
		}
	}

	lower := strings.ToLower(query)

	for _, p := range productIndicatorPatterns {
		m := p.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		name = strings.TrimSpace(fillerWordPattern.ReplaceAllString(name, ""))
		if name != "" {
			return &name
		}
	}

	for _, pt := range productTypes {
		if !strings.Contains(lower, pt) {
			continue
		}
		if m := productTypeAdjPatterns[pt].FindStringSubmatch(lower); m != nil {
			name := m[1] + " " + pt
			return &name
		}
		name := pt
		return &name
	}

	return nil
}

func extractSize(query string) *string {
	lower := strings.ToLower(query)
	for _, p := range sizePatterns {
		if m := p.FindStringSubmatch(lower); m != nil {
			size := strings.ToUpper(m[1])
			return &size
		}
	}
	return nil
}

func extractColor(query string) *string {
	lower := strings.ToLower(query)
	for i, color := range colorVocabulary {
		if colorWordPatterns[i].MatchString(lower) {
			c := color
			return &c
		}
	}
	return nil
}

func extractStore(query string) *string {
	if m := storePattern.FindStringSubmatch(query); m != nil {
		store := m[1]
		return &store
	}
	return nil
}

func extractDiscountCode(query string) *string {
	for _, p := range discountPatterns {
		if m := p.FindStringSubmatch(query); m != nil {
			code := m[1]
			return &code
		}
	}
	return nil
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// extractDeliveryDate resolves weekday phrases to the next future
// occurrence of that weekday relative to now. When today already is the
// target weekday the date advances a full week, never resolving to today.
// Explicit "Month Day" phrases become a date in now's year. A phrase that
// fails to parse is treated the same as no date mentioned.
func extractDeliveryDate(query string, now time.Time) *time.Time {
	lower := strings.ToLower(query)
	for _, p := range datePatterns {
		m := p.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		target := m[1]

		if wd, ok := weekdays[target]; ok {
			daysUntil := (int(wd) - int(now.Weekday()) + 7) % 7
			if daysUntil == 0 {
				daysUntil = 7
			}
			d := now.AddDate(0, 0, daysUntil)
			return &d
		}

		if d, ok := parseMonthDay(target, now); ok {
			return &d
		}
	}
	return nil
}

func parseMonthDay(s string, now time.Time) (time.Time, bool) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return time.Time{}, false
	}
	parsed, err := time.Parse("January 2", capitalize(fields[0])+" "+fields[1])
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(now.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, now.Location()), true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
