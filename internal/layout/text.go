package layout

// EllipsisMarker is appended to text truncated to fit its column.
const EllipsisMarker = "..."

// Ellipsize returns text unchanged when it fits width, otherwise the longest
// rune prefix that fits together with EllipsisMarker. If not even the marker
// fits, the empty string is returned. measure reports the rendered width of
// a string.
func Ellipsize(text string, width float64, measure func(string) float64) string {
	if measure(text) <= width {
		return text
	}
	if measure(EllipsisMarker) > width {
		return ""
	}

	runes := []rune(text)
	lo, hi := 0, len(runes)
	// Widths grow monotonically with prefix length, so binary search the cut.
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if measure(string(runes[:mid])+EllipsisMarker) <= width {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return string(runes[:lo]) + EllipsisMarker
}
