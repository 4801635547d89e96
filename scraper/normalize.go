package scraper

import (
	"regexp"
	"strings"
)

// titleSeparator joins the "location • category • Title" prefix the site
// renders into the title element of the newer layout.
const titleSeparator = " • "

var (
	trailingDigits = regexp.MustCompile(`/(\d+)$`)
	spaceRuns      = regexp.MustCompile(`[ \t]+`)
	newlineRuns    = regexp.MustCompile(`\n+`)
)

// normalizePrice strips the currency glyph, the "VB" (negotiable) marker
// and thousands separators from a raw price string.
func normalizePrice(raw string) string {
	s := strings.ReplaceAll(raw, "€", "")
	s = strings.ReplaceAll(s, "VB", "")
	s = strings.ReplaceAll(s, ".", "")
	return strings.TrimSpace(s)
}

// normalizeTitle keeps only the segment after the last " • " separator;
// titles without the separator are returned trimmed.
func normalizeTitle(raw string) string {
	if strings.Contains(raw, titleSeparator) {
		parts := strings.Split(raw, titleSeparator)
		return strings.TrimSpace(parts[len(parts)-1])
	}
	return strings.TrimSpace(raw)
}

// normalizeDescription collapses runs of spaces/tabs to one space and runs
// of newlines to one newline.
func normalizeDescription(raw string) string {
	s := spaceRuns.ReplaceAllString(raw, " ")
	s = newlineRuns.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// adIDFromURL extracts the trailing numeric path segment of an ad URL.
// Returns "" when the URL does not end in digits.
func adIDFromURL(url string) string {
	if m := trailingDigits.FindStringSubmatch(strings.TrimRight(url, "/")); m != nil {
		return m[1]
	}
	return ""
}
