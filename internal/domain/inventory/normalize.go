package inventory

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// Parenthetical size/package annotations, ASCII or fullwidth, e.g.
// "Kiri奶油奶酪(2kg)" and "量杯1000ml（2个）" both reduce to the bare name.
var parenthetical = regexp.MustCompile(`[(（][^)）]*[)）]`)

var foldCaser = cases.Fold()

// NormalizeName pools batches of the same underlying material: parenthetical
// annotations stripped, surrounding space trimmed, case-folded.
func NormalizeName(name string) string {
	return foldCaser.String(DisplayName(name))
}

// DisplayName strips parenthetical annotations without case folding; used as
// the presentation name of an aggregated material.
func DisplayName(name string) string {
	return strings.TrimSpace(parenthetical.ReplaceAllString(name, ""))
}
