package caption

import "strings"

// Measure reports the rendered width and height of a block of text under a
// particular font. Multi-line input measures the whole block: width is the
// widest line, height covers every line.
type Measure func(s string) (width, height int)

// truncationMarker is appended to the last kept word when wrapped text runs
// out of vertical room.
const truncationMarker = "..."

// Wrap greedily fits text into a maxWidth x maxHeight box under measure.
//
// Words are appended to the current line; when the measured width overflows,
// the last word moves to a fresh line. If that fresh line pushes the block
// past maxHeight, wrapping is at capacity: the fresh line is dropped, the
// marker is appended to the previous line, and that line is shortened word
// by word (re-appending the marker) until it fits or a single word remains.
// Remaining input is discarded at that point.
//
// A lone marked word wider than maxWidth is left overflowing rather than
// hard-broken mid-word.
//
// Empty input returns the empty string.
func Wrap(text string, measure Measure, maxWidth, maxHeight int) string {
	lines := [][]string{{}}

	for _, word := range strings.Fields(text) {
		last := len(lines) - 1
		lines[last] = append(lines[last], word)

		w, _ := measure(compose(lines))
		if w <= maxWidth {
			continue
		}

		// Width overflow: move the word onto a fresh line.
		moved := lines[last][len(lines[last])-1]
		lines[last] = lines[last][:len(lines[last])-1]
		lines = append(lines, []string{moved})

		_, h := measure(compose(lines))
		if h <= maxHeight {
			continue
		}

		// Height overflow: at capacity. Drop the fresh line and truncate
		// the previous one until it fits.
		lines = lines[:len(lines)-1]
		last = len(lines) - 1
		if len(lines[last]) == 0 {
			// Not even one line fits the box.
			break
		}
		lines[last][len(lines[last])-1] += truncationMarker
		for {
			w, _ := measure(compose(lines))
			if w <= maxWidth || len(lines[last]) == 1 {
				break
			}
			lines[last] = lines[last][:len(lines[last])-1]
			lines[last][len(lines[last])-1] += truncationMarker
		}
		break
	}

	return compose(lines)
}

// compose joins lines into the measurable block, skipping empty lines (a
// line empties when its only word moves to the next line).
func compose(lines [][]string) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		parts = append(parts, strings.Join(line, " "))
	}
	return strings.Join(parts, "\n")
}
