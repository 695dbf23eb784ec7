// Package render draws layout instructions onto a raster canvas and encodes
// the result as PNG.
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/gouthamve/specimen/pkg/layout"
)

type Renderer struct {
	fonts *Fonts
}

// NewRenderer returns a Renderer resolving text faces through fonts. A nil
// fonts uses DefaultFonts.
func NewRenderer(fonts *Fonts) *Renderer {
	if fonts == nil {
		fonts = DefaultFonts()
	}
	return &Renderer{fonts: fonts}
}

// Render draws instructions in order on a width x height canvas filled
// with bg.
func (r *Renderer) Render(width, height int, bg color.Color, instructions []layout.Instruction) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()

	for i, ins := range instructions {
		switch ins := ins.(type) {
		case layout.Text:
			r.drawText(dc, ins)
		case layout.Line:
			dc.SetColor(ins.Color)
			dc.SetLineWidth(ins.Width)
			dc.DrawLine(ins.From.X, ins.From.Y, ins.To.X, ins.To.Y)
			dc.Stroke()
		case layout.Rect:
			drawRect(dc, ins)
		default:
			return nil, fmt.Errorf("instruction %d: unsupported type %T", i, ins)
		}
	}

	return dc.Image(), nil
}

// RenderDocument renders doc on its own canvas.
func (r *Renderer) RenderDocument(doc layout.Document) (image.Image, error) {
	return r.Render(doc.Width, doc.Height, doc.Background, doc.Instructions)
}

func (r *Renderer) drawText(dc *gg.Context, t layout.Text) {
	dc.SetFontFace(r.fonts.Face(t.Weight, t.Size))
	dc.SetColor(t.Color)

	ax, ay := t.Anchor.Offsets()
	if t.Rotate == 0 {
		dc.DrawStringAnchored(t.Content, t.At.X, t.At.Y, ax, ay)
		return
	}

	dc.Push()
	dc.RotateAbout(gg.Radians(t.Rotate), t.At.X, t.At.Y)
	dc.DrawStringAnchored(t.Content, t.At.X, t.At.Y, ax, ay)
	dc.Pop()
}

func drawRect(dc *gg.Context, rect layout.Rect) {
	dc.DrawRectangle(rect.Min.X, rect.Min.Y, rect.Max.X-rect.Min.X, rect.Max.Y-rect.Min.Y)

	switch {
	case rect.Fill != nil && rect.Outline != nil:
		dc.SetColor(rect.Fill)
		dc.FillPreserve()
	case rect.Fill != nil:
		dc.SetColor(rect.Fill)
		dc.Fill()
		return
	case rect.Outline == nil:
		dc.ClearPath()
		return
	}

	dc.SetColor(rect.Outline)
	dc.SetLineWidth(rect.OutlineWidth)
	dc.Stroke()
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

// SavePNG writes img to path, replacing any existing file.
func SavePNG(img image.Image, path string) error {
	return imaging.Save(img, path)
}
