package compliance

import (
	"cmp"
	"math"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

//nolint:gochecknoglobals
var (
	// "US:CA:Overnight:16.00 USD": country, region (may be empty), service class, amount and currency.
	shippingRatePattern = regexp.MustCompile(`^[A-Z]{2}:[^:]*:[^:]+:\d+(\.\d{1,2})? [A-Z]{3}$`)

	// "10x20x5 cm", "10.5 x 4 x 2 in".
	dimensionsPattern = regexp.MustCompile(`(?i)^\d+(\.\d+)?\s*x\s*\d+(\.\d+)?\s*x\s*\d+(\.\d+)?\s*(mm|cm|m|in|ft)$`)

	// "19", "19.99". No sign, exponent or hex form.
	decimalPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)

	// "within 30 days", "a 14-day window".
	returnWindowPattern = regexp.MustCompile(`(?i)(\d+)[\s-]*days?\b`)
)

func nonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

func runeLenBetween(s string, lower, upper int) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(s))

	return n >= lower && n <= upper
}

func isAbsoluteURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func isEmail(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}

	addr, err := mail.ParseAddress(raw)

	return err == nil && addr.Address == raw
}

// parseDecimal parses a price-like decimal string.
func parseDecimal(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if !decimalPattern.MatchString(raw) {
		return 0, false
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}

	return value, true
}

func decimalInRange(raw string, lower, upper float64) bool {
	value, ok := parseDecimal(raw)

	return ok && value >= lower && value <= upper
}

func isNonNegativeInt(raw string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(raw))

	return err == nil && n >= 0
}

func isDate(raw string) bool {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if _, err := time.Parse(layout, raw); err == nil {
			return true
		}
	}

	return false
}

func oneOf(value string, allowed ...string) bool {
	value = strings.TrimSpace(value)
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return true
		}
	}

	return false
}

// isValidGTIN checks GTIN-8/12/13/14 length and the GS1 mod-10 check digit.
func isValidGTIN(raw string) bool {
	raw = strings.TrimSpace(raw)
	switch len(raw) {
	case 8, 12, 13, 14:
	default:
		return false
	}

	sum := 0
	for i := len(raw) - 2; i >= 0; i-- {
		c := raw[i]
		if c < '0' || c > '9' {
			return false
		}
		digit := int(c - '0')
		// Weights alternate 3,1,3,... starting from the digit next to the check digit.
		if (len(raw)-2-i)%2 == 0 {
			digit *= 3
		}
		sum += digit
	}

	last := raw[len(raw)-1]
	if last < '0' || last > '9' {
		return false
	}

	return (10-sum%10)%10 == int(last-'0')
}

func isShippingRate(raw string) bool {
	return shippingRatePattern.MatchString(strings.TrimSpace(raw))
}

// returnWindowDays extracts the first "N days" figure from a refund policy body.
func returnWindowDays(body string) (int, bool) {
	match := returnWindowPattern.FindStringSubmatch(body)
	if match == nil {
		return 0, false
	}

	days, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}

	return days, true
}

func formatDecimal(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func sortByCategory[E any](items []E, category func(E) Category) {
	slices.SortStableFunc(items, func(a, b E) int {
		return cmp.Compare(categoryOrder[category(a)], categoryOrder[category(b)])
	})
}
