package toc

import (
	"regexp"
	"strings"
)

// sortPrefixPattern matches the numeric prefixes people put in front of
// filenames to force an order, e.g. "01-", "3. " or "12.".
var sortPrefixPattern = regexp.MustCompile(`^(\d+\. *|\d+-)`)

// Normalize converts a raw filename segment into a display title.
//
// A single leading sort prefix is removed, then a trailing ".md" marker,
// and finally every hyphen becomes a space. Case and punctuation are left
// alone. Input that matches none of the rules is returned unchanged.
func Normalize(segment string) string {
	title := sortPrefixPattern.ReplaceAllString(segment, "")
	title = strings.TrimSuffix(title, DefaultExtension)
	return strings.ReplaceAll(title, "-", " ")
}
