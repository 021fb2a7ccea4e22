package domain

import "regexp"

var (
	barePlaceholder    = regexp.MustCompile(`%%styled-jsx-placeholder-(\d+)%%`)
	guardedPlaceholder = regexp.MustCompile(`/\*%%styled-jsx-placeholder-(\d+)%%\*/`)
)

// EncodePlaceholders wraps every interpolation placeholder in a CSS comment so that
// syntax-aware transforms leave it alone.
func EncodePlaceholders(css string) string {
	return barePlaceholder.ReplaceAllString(css, "/*%%styled-jsx-placeholder-${1}%%*/")
}

// DecodePlaceholders reverses EncodePlaceholders.
func DecodePlaceholders(css string) string {
	return guardedPlaceholder.ReplaceAllString(css, "%%styled-jsx-placeholder-${1}%%")
}
