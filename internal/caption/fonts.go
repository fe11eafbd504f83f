package caption

import (
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// loadFace opens the first parsable font file from paths at the given size.
// When none load, the embedded builtin TTF is used, and if even that fails
// to parse, the fixed-size basicfont. Font trouble degrades the caption but
// never aborts a render.
func loadFace(paths []string, builtin []byte, size float64) font.Face {
	if size < 1 {
		size = 1
	}

	opts := &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		parsed, err := opentype.Parse(data)
		if err != nil {
			continue
		}
		face, err := opentype.NewFace(parsed, opts)
		if err != nil {
			continue
		}
		return face
	}

	parsed, err := opentype.Parse(builtin)
	if err != nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(parsed, opts)
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// blockMeasure adapts a font face into a Measure for Wrap: width is the
// widest line's advance, height is the face line height times line count.
func blockMeasure(face font.Face) Measure {
	return func(s string) (int, int) {
		if s == "" {
			return 0, 0
		}
		lines := strings.Split(s, "\n")
		lineHeight := face.Metrics().Height.Ceil()

		width := 0
		for _, line := range lines {
			if adv := font.MeasureString(face, line).Ceil(); adv > width {
				width = adv
			}
		}
		return width, lineHeight * len(lines)
	}
}
