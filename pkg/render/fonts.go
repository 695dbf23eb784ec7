package render

import (
	"log/slog"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gouthamve/specimen/pkg/layout"
)

var (
	defaultRegular = mustParse(goregular.TTF)
	defaultBold    = mustParse(gobold.TTF)
)

func mustParse(ttf []byte) *truetype.Font {
	f, err := truetype.Parse(ttf)
	if err != nil {
		panic(err)
	}
	return f
}

// Fonts resolves font faces by weight and size. Named font files are tried
// first; when one cannot be loaded the embedded Go fonts are used instead.
type Fonts struct {
	Regular string
	Bold    string

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

type faceKey struct {
	weight layout.Weight
	size   float64
}

// DefaultFonts looks for Arial in the working directory.
func DefaultFonts() *Fonts {
	return &Fonts{Regular: "arial.ttf", Bold: "arialbd.ttf"}
}

// Face returns the face for weight at size points. It never fails.
func (f *Fonts) Face(weight layout.Weight, size float64) font.Face {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := faceKey{weight, size}
	if face, ok := f.faces[key]; ok {
		return face
	}
	if f.faces == nil {
		f.faces = map[faceKey]font.Face{}
	}

	face := f.resolve(weight, size)
	f.faces[key] = face
	return face
}

func (f *Fonts) resolve(weight layout.Weight, size float64) font.Face {
	path, fallback := f.Regular, defaultRegular
	if weight == layout.Bold {
		path, fallback = f.Bold, defaultBold
	}

	if path != "" {
		face, err := gg.LoadFontFace(path, size)
		if err == nil {
			return face
		}
		slog.Debug("font unavailable, using default", "path", path, "error", err)
	}

	return truetype.NewFace(fallback, &truetype.Options{Size: size})
}
