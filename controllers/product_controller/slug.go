package product_controller

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)
	slugTrimDashes   = regexp.MustCompile(`(^-|-$)+`)
)

// Slugify builds a URL-safe slug from a product title: lowercase, runs of
// non-alphanumerics collapsed to single dashes, leading/trailing dashes
// stripped. "Linen Shirt (2025)" → "linen-shirt-2025".
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	slug = slugTrimDashes.ReplaceAllString(slug, "")
	return slug
}
