package caption

import (
	"image"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/math/fixed"
)

// Config holds the font files and sizing factors for caption rendering.
type Config struct {
	// TitleFontPaths and DescriptionFontPaths are tried in order; the
	// embedded Go fonts serve as the final fallback.
	TitleFontPaths       []string
	DescriptionFontPaths []string

	// Font sizes are these factors times the image width.
	TitleScale       float64
	DescriptionScale float64
}

// Renderer composites a title and a wrapped explanation onto an image.
//
// Placement and sizing are all relative to the source image: the title
// lands at (2%, 5%), the explanation block at (5%, 11%), and the
// explanation wraps into a box 25% of the width by 70% of the height.
type Renderer struct {
	cfg *Config
}

// NewRenderer creates a Renderer with the given configuration.
func NewRenderer(cfg *Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Render draws the caption over src and returns the composited image.
// The source is never modified.
func (r *Renderer) Render(src image.Image, title, explanation string) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)

	width := bounds.Dx()
	height := bounds.Dy()

	titleFace := loadFace(r.cfg.TitleFontPaths, gobold.TTF,
		float64(int(float64(width)*r.cfg.TitleScale)))
	descFace := loadFace(r.cfg.DescriptionFontPaths, goitalic.TTF,
		float64(int(float64(width)*r.cfg.DescriptionScale)))

	wrapped := Wrap(explanation, blockMeasure(descFace),
		int(float64(width)*0.25), int(float64(height)*0.70))

	drawBlock(dst, titleFace, title,
		int(float64(width)*0.02), int(float64(height)*0.05))
	drawBlock(dst, descFace, wrapped,
		int(float64(width)*0.05), int(float64(height)*0.11))

	return dst
}

// drawBlock draws multi-line text top-left anchored at (x, y) in the
// default foreground (white).
func drawBlock(dst draw.Image, face font.Face, text string, x, y int) {
	if text == "" {
		return
	}

	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
	}
	for i, line := range strings.Split(text, "\n") {
		drawer.Dot = fixed.P(x, y+ascent+i*lineHeight)
		drawer.DrawString(line)
	}
}
