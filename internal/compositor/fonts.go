package compositor

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/nguyentantai21042004/quiz-reel/internal/models"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type faceKey struct {
	weight models.FontWeight
	size   float64
}

// fontSet caches sized faces per weight. Without a TTF it falls back to the
// fixed 7x13 bitmap face, which ignores the requested size.
type fontSet struct {
	regular *truetype.Font
	bold    *truetype.Font
	faces   map[faceKey]font.Face
}

func newFontSet(regularPath, boldPath string) (*fontSet, error) {
	fs := &fontSet{faces: make(map[faceKey]font.Face)}

	if regularPath != "" {
		f, err := parseFont(regularPath)
		if err != nil {
			return nil, err
		}
		fs.regular = f
	}
	if boldPath != "" {
		f, err := parseFont(boldPath)
		if err != nil {
			return nil, err
		}
		fs.bold = f
	}
	return fs, nil
}

func parseFont(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font file: %w", err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse TTF %s: %w", path, err)
	}
	return f, nil
}

func (fs *fontSet) face(weight models.FontWeight, size float64) font.Face {
	key := faceKey{weight: weight, size: size}
	if f, ok := fs.faces[key]; ok {
		return f
	}

	ttf := fs.regular
	if weight == models.FontBold && fs.bold != nil {
		ttf = fs.bold
	}

	var f font.Face = basicfont.Face7x13
	if ttf != nil {
		f = truetype.NewFace(ttf, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
	}
	fs.faces[key] = f
	return f
}

func (fs *fontSet) hasTTF() bool {
	return fs.regular != nil || fs.bold != nil
}
