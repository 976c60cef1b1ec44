package markdown

import "strings"

// AdPlaceholder is the marker the frontend swaps for a real ad unit.
const AdPlaceholder = `<div class="ad-placeholder"></div>`

// InsertAdPlaceholder splits rendered HTML on end-of-paragraph
// boundaries and, when there are more than two parts, inserts one ad
// placeholder at the midpoint boundary. Operates on rendered HTML,
// not markdown: its unit is "list of paragraph boundaries".
func InsertAdPlaceholder(html string) string {
	parts := strings.Split(html, "</p>")
	if len(parts) <= 2 {
		return html
	}

	mid := len(parts) / 2
	withAd := make([]string, 0, len(parts)+1)
	withAd = append(withAd, parts[:mid]...)
	withAd = append(withAd, "</p>"+AdPlaceholder)
	withAd = append(withAd, parts[mid:]...)

	return strings.Join(withAd, "</p>")
}
