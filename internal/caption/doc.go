// Package caption wraps and draws text over the day's image.
//
// The two pieces:
//
//   - Wrap, a greedy word-wrap that fits text into a pixel box under an
//     arbitrary Measure function, truncating with "..." when the box runs
//     out of vertical room.
//   - Renderer, which loads fonts (configured files first, embedded Go
//     fonts as the fallback; font failures degrade, never abort), sizes
//     them as fractions of the image width, and draws the title and the
//     wrapped explanation at image-relative offsets.
package caption
