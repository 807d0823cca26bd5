package cinelist

import (
	"regexp"
	"strconv"
	"strings"
)

// Text normalization helpers shared by the field extraction cascades.
// They are pure functions over raw strings pulled from markup: each
// returns nil (or empty) when the input carries no parseable value.

var (
	nonDigitRe   = regexp.MustCompile(`[^\d]`)
	floatTokenRe = regexp.MustCompile(`[-+]?\d*\.?\d+`)
	hoursRe      = regexp.MustCompile(`(\d+)\s*h`)
	minutesRe    = regexp.MustCompile(`(\d+)\s*min`)
	bareNumberRe = regexp.MustCompile(`\b(\d{2,3})\b`)
	yearRe       = regexp.MustCompile(`(19\d{2}|20\d{2}|21\d{2})`)
	agePlusRe    = regexp.MustCompile(`(\d{1,3}\+)`)
	certRe       = regexp.MustCompile(`(?i)\b(PG-?\d{1,2}|G|PG|R|NC-17|TV-?MA|TV-?14)\b`)
)

// ParseInt strips every non-digit character and parses what remains.
// Returns nil if no digits are present.
func ParseInt(text string) *int {
	s := nonDigitRe.ReplaceAllString(text, "")
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// ParseFloat normalizes a comma decimal separator to a dot and parses the
// first numeric token. Returns nil if no numeric token is present.
func ParseFloat(text string) *float64 {
	s := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	m := floatTokenRe.FindString(s)
	if m == "" {
		return nil
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil
	}
	return &f
}

// ParseRuntime converts a runtime string to total minutes. It reads an
// hours component ("2h") and a minutes component ("22min") independently;
// when neither is present a bare 2-3 digit number is taken as minutes.
// A computed total of zero means unresolved and returns nil.
//
// Examples: "2h 22min" -> 142, "142 min" -> 142, "142" -> 142,
// "1h 30m" -> 60 (hours only; "30m" does not match the minutes pattern).
func ParseRuntime(text string) *int {
	if text == "" {
		return nil
	}

	hours := 0
	minutes := 0

	mh := hoursRe.FindStringSubmatch(text)
	if mh != nil {
		hours, _ = strconv.Atoi(mh[1])
	}

	mm := minutesRe.FindStringSubmatch(text)
	if mm != nil {
		minutes, _ = strconv.Atoi(mm[1])
	} else if mh == nil {
		if mn := bareNumberRe.FindStringSubmatch(text); mn != nil {
			n, _ := strconv.Atoi(mn[1])
			return &n
		}
	}

	total := hours*60 + minutes
	if total == 0 {
		return nil
	}
	return &total
}

// ParseYear returns the first 4-digit token in the plausible 1900-2199
// range, or nil.
func ParseYear(text string) *int {
	m := yearRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	y, _ := strconv.Atoi(m[1])
	return &y
}

// ParseAge returns an age classification token: a digit-plus-plus
// threshold like "16+" when present, otherwise a known certification code
// normalized to uppercase. Returns empty string if neither is found.
func ParseAge(text string) string {
	if m := agePlusRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := certRe.FindStringSubmatch(text); m != nil {
		return strings.ToUpper(m[1])
	}
	return ""
}
