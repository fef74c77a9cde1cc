// Package pricing computes the weekly price for a booking. The same
// function backs the live preview, the confirmation step and any
// server-side rendering of a price, so the amounts always agree.
package pricing

import (
	"math"
	"strconv"
	"strings"

	"scoopo-app/booking-service/internal/models"
)

// Base price per visit for each plan tier.
const (
	EssentialBase = 10.0
	CarePlusBase  = 15.0
	UltimateBase  = 20.0

	extraCatFee = 5.0
)

// Discount badges shown next to higher frequencies.
const (
	BadgeFivePercent = "5% OFF"
	BadgeTenPercent  = "10% OFF"
)

// Result is a computed weekly total, or a quote marker when the frequency
// is custom and pricing is done manually.
type Result struct {
	Custom bool
	Total  float64
	Badge  string
}

// Compute maps (plan tier, cat count, visit frequency) to a weekly price.
// Pure and deterministic: same inputs always produce the same output.
func Compute(plan string, numCats int, freq models.Frequency) Result {
	if freq.Custom {
		return Result{Custom: true}
	}

	subtotal := BasePrice(plan) + float64(maxInt(1, numCats)-1)*extraCatFee
	total := subtotal * DiscountRate(freq.Visits) * float64(freq.Visits)

	return Result{
		Total: math.Round(total*100) / 100,
		Badge: Badge(freq.Visits),
	}
}

// BasePrice resolves a plan label to its per-visit base price. Labels are
// free-form in practice ("Care Plus (5% OFF)", "优享版", ...), so this
// matches on the tier name in either display language and falls back to
// the Essential tier.
func BasePrice(plan string) float64 {
	switch {
	case strings.Contains(plan, "Care Plus") || strings.Contains(plan, "优享版"):
		return CarePlusBase
	case strings.Contains(plan, "Ultimate") || strings.Contains(plan, "尊享版"):
		return UltimateBase
	default:
		return EssentialBase
	}
}

// DiscountRate returns the multiplier for a weekly visit count: full price
// up to 3 visits, 5% off for 4-5, 10% off for 6 and up.
func DiscountRate(visits int) float64 {
	switch {
	case visits >= 6:
		return 0.90
	case visits >= 4:
		return 0.95
	default:
		return 1.0
	}
}

// Badge returns the discount label for a visit count, or "" at full price.
func Badge(visits int) string {
	switch {
	case visits >= 6:
		return BadgeTenPercent
	case visits >= 4:
		return BadgeFivePercent
	default:
		return ""
	}
}

// Display renders the result for the given language: "$76" for computed
// totals, or the quote label for custom frequencies.
func (r Result) Display(lang models.Language) string {
	if r.Custom {
		return QuoteLabel(lang)
	}
	return "$" + FormatAmount(r.Total)
}

// QuoteLabel is the non-numeric marker shown instead of a price when the
// frequency is custom.
func QuoteLabel(lang models.Language) string {
	if lang == models.LangChinese {
		return "联系定制"
	}
	return "Quote (Contact Us)"
}

// FormatAmount rounds to at most two decimal places and strips trailing
// zeroes: 10.00 -> "10", 10.50 -> "10.5".
func FormatAmount(v float64) string {
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
