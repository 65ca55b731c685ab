package services

import "testing"

func TestMatchesPriceRange(t *testing.T) {
	cases := []struct {
		price int
		label string
		want  bool
	}{
		{500, "", true},
		{500, "All", true},
		{999, PriceUnder1000, true},
		{1000, PriceUnder1000, false},
		{1000, Price1000To1500, true},
		{1500, Price1000To1500, true},
		{1501, Price1000To1500, false},
		{1500, PriceOver1500, false},
		{1501, PriceOver1500, true},
		{500, "Under $9000", false}, // unknown label matches nothing
	}

	for _, c := range cases {
		if got := MatchesPriceRange(c.price, c.label); got != c.want {
			t.Errorf("MatchesPriceRange(%d, %q) = %v, want %v", c.price, c.label, got, c.want)
		}
	}
}

func TestMatchesDurationRange(t *testing.T) {
	cases := []struct {
		duration string
		label    string
		want     bool
	}{
		{"5 Days", "", true},
		{"5 Days", "All", true},
		{"5 Days", Duration1To5, true},
		{"6 Days", Duration1To5, false},
		{"6 Days", Duration6To10, true},
		{"10 Days", Duration6To10, true},
		{"11 Days", Duration6To10, false},
		{"11 Days", Duration11Plus, true},
		{"14 Days", Duration11Plus, true},
		{"Half day", Duration1To5, false}, // no leading number never matches a bucket
		{"Half day", "All", true},
	}

	for _, c := range cases {
		if got := MatchesDurationRange(c.duration, c.label); got != c.want {
			t.Errorf("MatchesDurationRange(%q, %q) = %v, want %v", c.duration, c.label, got, c.want)
		}
	}
}

func TestHasTag(t *testing.T) {
	tags := []string{"wildlife", "safari", "family"}

	if !HasTag(tags, "") {
		t.Error("empty tag should match everything")
	}
	if !HasTag(tags, "All") {
		t.Error("All should match everything")
	}
	if !HasTag(tags, "safari") {
		t.Error("expected safari to match")
	}
	if HasTag(tags, "beach") {
		t.Error("beach should not match")
	}
	if HasTag(nil, "beach") {
		t.Error("no tags should not match a specific tag")
	}
}
