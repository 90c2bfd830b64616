package core

import "github.com/shopspring/decimal"

var one = decimal.NewFromInt(1)

// discountFor maps a priority to its saving rate. Unknown labels behave
// like low priority, matching the default applied by PriorityFor.
func discountFor(p Priority) (decimal.Decimal, int) {
	switch p {
	case PriorityHigh:
		return decimal.NewFromFloat(0.5), 50
	case PriorityMedium:
		return decimal.NewFromFloat(0.3), 30
	default:
		return decimal.NewFromFloat(0.1), 10
	}
}

// Recommend suggests a reduced spend per category: a high-priority
// category is asked to cut 50%, medium 30%, low 10%. The result keeps
// the order of the spend slice.
func Recommend(spend SpendByCategory, prefs Preferences) []Recommendation {
	recs := make([]Recommendation, 0, len(spend))
	for _, cs := range spend {
		rate, percent := discountFor(prefs.PriorityFor(cs.Category))
		recs = append(recs, Recommendation{
			Category:        cs.Category,
			Suggested:       cs.Total.Mul(one.Sub(rate)),
			DiscountPercent: percent,
		})
	}
	return recs
}
