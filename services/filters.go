package services

import (
	"strconv"
	"strings"
)

// Filter labels offered by the public listing pages. Matching happens
// in-process after the database filters have been applied, against the same
// fixed label set the frontend renders in its dropdowns.
const (
	filterAll = "All"

	PriceUnder1000  = "Under $1000"
	Price1000To1500 = "$1000-$1500"
	PriceOver1500   = "$1500+"

	Duration1To5   = "1-5 Days"
	Duration6To10  = "6-10 Days"
	Duration11Plus = "11+ Days"
)

// MatchesPriceRange reports whether a price falls in the named bucket.
// "All" or an empty label matches everything; an unknown label matches
// nothing.
func MatchesPriceRange(price int, label string) bool {
	switch label {
	case "", filterAll:
		return true
	case PriceUnder1000:
		return price < 1000
	case Price1000To1500:
		return price >= 1000 && price <= 1500
	case PriceOver1500:
		return price > 1500
	}
	return false
}

// MatchesDurationRange buckets a duration label like "7 Days" by its leading
// number. Durations that don't start with a number never match a specific
// bucket.
func MatchesDurationRange(duration, label string) bool {
	if label == "" || label == filterAll {
		return true
	}

	days, ok := leadingInt(duration)
	if !ok {
		return false
	}

	switch label {
	case Duration1To5:
		return days <= 5
	case Duration6To10:
		return days >= 6 && days <= 10
	case Duration11Plus:
		return days >= 11
	}
	return false
}

// HasTag reports whether tag appears in tags (exact match). An empty or
// "All" tag matches everything.
func HasTag(tags []string, tag string) bool {
	if tag == "" || tag == filterAll {
		return true
	}
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
