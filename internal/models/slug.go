package models

import (
	"regexp"
	"strings"
)

var (
	slugStrip   = regexp.MustCompile(`[^\w\s\v\x{FEFF}\p{Z}-]`)
	slugSpaces  = regexp.MustCompile(`[\s\v\x{FEFF}\p{Z}_]+`)
	slugHyphens = regexp.MustCompile(`-+`)
)

// Slug derives the URL-safe identifier of an event from its title.
// The result only contains [a-z0-9-] and never starts, ends or repeats a hyphen.
func Slug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStrip.ReplaceAllString(s, "")
	// underscores are word characters but not URL-friendly, treat them as spaces
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
