package utils

import "strings"

// AssetIDFromURL derives a media host asset id from a stored asset URL: the
// final path segment up to its first dot. The media host deletion API matches
// on exactly this value, so the derivation must not change.
func AssetIDFromURL(assetURL string) string {
	if assetURL == "" {
		return ""
	}
	if i := strings.IndexAny(assetURL, "?#"); i >= 0 {
		assetURL = assetURL[:i]
	}
	segments := strings.Split(assetURL, "/")
	last := segments[len(segments)-1]
	return strings.Split(last, ".")[0]
}
