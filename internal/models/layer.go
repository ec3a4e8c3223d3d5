package models

import (
	"fmt"
	"strconv"
	"strings"
)

// LayerKind identifies what a timeline layer shows.
type LayerKind string

const (
	LayerBackground        LayerKind = "background"
	LayerCaption           LayerKind = "caption"
	LayerWordHighlight     LayerKind = "word-highlight"
	LayerQuestionStatement LayerKind = "question-statement"
	LayerQuestionOptions   LayerKind = "question-options"
	LayerCountdownDigit    LayerKind = "countdown-digit"
	LayerAnswerReveal      LayerKind = "answer-reveal"
)

type FontWeight string

const (
	FontRegular FontWeight = "regular"
	FontBold    FontWeight = "bold"
)

type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

var (
	White      = RGB{255, 255, 255}
	Black      = RGB{0, 0, 0}
	Yellow     = RGB{255, 255, 0}
	Red        = RGB{255, 0, 0}
	LightGreen = RGB{144, 238, 144}
)

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Position anchors the top edge of a text block in frame pixels.
// CenterX and CenterY override X and Y with frame-centered placement.
type Position struct {
	X       int  `json:"x"`
	Y       int  `json:"y"`
	CenterX bool `json:"center_x,omitempty"`
	CenterY bool `json:"center_y,omitempty"`
}

// Payload is everything the compositor needs to draw a layer.
type Payload struct {
	Text        string     `json:"text,omitempty"`
	Font        FontWeight `json:"font,omitempty"`
	FontSize    float64    `json:"font_size,omitempty"`
	Color       RGB        `json:"color"`
	StrokeColor RGB        `json:"stroke_color"`
	StrokeWidth float64    `json:"stroke_width,omitempty"`
	Fill        bool       `json:"fill,omitempty"`
	Position    Position   `json:"position"`
	Align       Align      `json:"align,omitempty"`
	MaxWidth    int        `json:"max_width,omitempty"`
	FadeIn      Seconds    `json:"fade_in,omitempty"`
}

// Layer is a single timed visual element. Later layers stack on top of earlier ones.
type Layer struct {
	Start   Seconds   `json:"start"`
	End     Seconds   `json:"end"`
	Kind    LayerKind `json:"kind"`
	Payload Payload   `json:"payload"`
}

func (l Layer) Duration() Seconds {
	return l.End - l.Start
}

// Template is a named color scheme selected by a small integer id.
type Template struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Background RGB    `json:"background"`
}
