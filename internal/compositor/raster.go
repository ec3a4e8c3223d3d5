package compositor

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"github.com/nguyentantai21042004/quiz-reel/internal/models"
)

const lineSpacing = 1.2

// overlay is a rasterized text layer ready to be placed on the frame.
// X and Y are ffmpeg overlay expressions.
type overlay struct {
	layer models.Layer
	path  string
	x     string
	y     string
}

type rasterizer struct {
	fonts *fontSet
}

func newRasterizer(fonts *fontSet) *rasterizer {
	return &rasterizer{fonts: fonts}
}

// render draws the layer text onto a tight transparent PNG at path.
func (r *rasterizer) render(l models.Layer, path string) (overlay, error) {
	p := l.Payload
	face := r.fonts.face(p.Font, p.FontSize)

	measure := gg.NewContext(1, 1)
	measure.SetFontFace(face)

	var lines []string
	if p.MaxWidth > 0 {
		lines = measure.WordWrap(p.Text, float64(p.MaxWidth))
	} else {
		lines = strings.Split(p.Text, "\n")
	}
	if len(lines) == 0 {
		lines = []string{""}
	}

	blockWidth := 0.0
	for _, line := range lines {
		w, _ := measure.MeasureString(line)
		blockWidth = math.Max(blockWidth, w)
	}
	fontHeight := measure.FontHeight()
	lineHeight := fontHeight * lineSpacing

	pad := math.Ceil(p.StrokeWidth) + 2
	width := int(math.Ceil(blockWidth + 2*pad))
	height := int(math.Ceil(fontHeight + float64(len(lines)-1)*lineHeight + fontHeight*0.3 + 2*pad))

	dc := gg.NewContext(width, height)
	dc.SetFontFace(face)

	ax, originX := 0.0, pad
	if p.Align == models.AlignCenter {
		ax, originX = 0.5, float64(width)/2
	}

	for i, line := range lines {
		baseline := pad + fontHeight + float64(i)*lineHeight
		if p.StrokeWidth > 0 {
			dc.SetColor(toColor(p.StrokeColor))
			drawStroke(dc, line, originX, baseline, ax, p.StrokeWidth)
		}
		dc.SetColor(toColor(p.Color))
		dc.DrawStringAnchored(line, originX, baseline, ax, 0)
	}

	if err := dc.SavePNG(path); err != nil {
		return overlay{}, fmt.Errorf("save overlay %s: %w", path, err)
	}

	ov := overlay{
		layer: l,
		path:  path,
		x:     strconv.Itoa(p.Position.X - int(pad)),
		y:     strconv.Itoa(p.Position.Y - int(pad)),
	}
	if p.Position.CenterX {
		ov.x = "(W-w)/2"
	}
	if p.Position.CenterY {
		ov.y = "(H-h)/2"
	}
	return ov, nil
}

// drawStroke approximates an outline by drawing the text at every integer
// offset within the stroke radius.
func drawStroke(dc *gg.Context, s string, x, y, ax, width float64) {
	r := int(math.Ceil(width))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if float64(dx*dx+dy*dy) > width*width {
				continue
			}
			dc.DrawStringAnchored(s, x+float64(dx), y+float64(dy), ax, 0)
		}
	}
}

func toColor(c models.RGB) color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
