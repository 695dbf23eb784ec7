// Package layout turns a record into an ordered list of drawing
// instructions for one of the fixed document templates.
package layout

import (
	"fmt"
	"image/color"
	"time"

	"github.com/gouthamve/specimen/pkg/models"
	"github.com/gouthamve/specimen/pkg/randomizer"
)

// Point is a canvas position in pixels.
type Point struct {
	X, Y float64
}

// Anchor describes how a text position relates to the rendered glyph box.
type Anchor int

const (
	TopLeft Anchor = iota
	Center
)

// Offsets returns the fraction of the text width and height that the anchor
// point sits at, measured from the left edge and the baseline.
func (a Anchor) Offsets() (ax, ay float64) {
	if a == Center {
		return 0.5, 0.5
	}
	return 0, 1
}

type Weight int

const (
	Regular Weight = iota
	Bold
)

// Instruction is one of Text, Line or Rect.
type Instruction interface {
	// Top is the vertical origin of the instruction. Instructions of a
	// document are emitted with non-decreasing Top values.
	Top() float64

	instruction()
}

type Text struct {
	At      Point
	Content string
	Color   color.Color
	Size    float64
	Weight  Weight
	Anchor  Anchor
	// Rotate is in degrees, clockwise about At.
	Rotate float64
}

type Line struct {
	From, To Point
	Color    color.Color
	Width    float64
}

// Rect is an axis-aligned rectangle. Fill and Outline may each be nil.
type Rect struct {
	Min, Max     Point
	Fill         color.Color
	Outline      color.Color
	OutlineWidth float64
}

func (t Text) Top() float64 { return t.At.Y }
func (l Line) Top() float64 { return min(l.From.Y, l.To.Y) }
func (r Rect) Top() float64 { return r.Min.Y }

func (Text) instruction() {}
func (Line) instruction() {}
func (Rect) instruction() {}

// Document is a laid out page ready to be rendered.
type Document struct {
	Kind         models.DocumentKind
	Width        int
	Height       int
	Background   color.Color
	Instructions []Instruction
}

// Build lays out rec using the template for kind. Filler values come from
// src and dates are derived from now.
func Build(rec models.Record, kind models.DocumentKind, src randomizer.Source, now time.Time) (Document, error) {
	switch kind {
	case models.Transcript:
		return transcript(rec, src, now), nil
	case models.StudentID:
		return studentID(rec, src, now), nil
	}
	return Document{}, fmt.Errorf("unknown document kind %v", kind)
}

// Size returns the fixed canvas size of kind.
func Size(kind models.DocumentKind) (width, height int) {
	switch kind {
	case models.Transcript:
		return transcriptWidth, transcriptHeight
	case models.StudentID:
		return studentIDWidth, studentIDHeight
	}
	return 0, 0
}

var (
	black     = color.RGBA{0, 0, 0, 0xff}
	white     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	watermark = color.NRGBA{200, 30, 30, 70}

	statusGreen = color.RGBA{0, 100, 0, 0xff}
)

func gray(v uint8) color.RGBA {
	return color.RGBA{v, v, v, 0xff}
}

// page accumulates instructions for a single document.
type page struct {
	out []Instruction
}

func (p *page) text(at Point, s string, c color.Color, size float64, w Weight, a Anchor) {
	p.out = append(p.out, Text{At: at, Content: s, Color: c, Size: size, Weight: w, Anchor: a})
}

func (p *page) line(from, to Point, c color.Color, width float64) {
	p.out = append(p.out, Line{From: from, To: to, Color: c, Width: width})
}

func (p *page) fill(minPt, maxPt Point, c color.Color) {
	p.out = append(p.out, Rect{Min: minPt, Max: maxPt, Fill: c})
}

// specimen stamps the diagonal marking that identifies every generated page
// as a sample rather than an issued record.
func (p *page) specimen(at Point, size float64) {
	p.out = append(p.out, Text{
		At:      at,
		Content: "SPECIMEN",
		Color:   watermark,
		Size:    size,
		Weight:  Bold,
		Anchor:  Center,
		Rotate:  -25,
	})
}
