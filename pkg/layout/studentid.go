package layout

import (
	"fmt"
	"strings"
	"time"

	"github.com/gouthamve/specimen/pkg/models"
	"github.com/gouthamve/specimen/pkg/randomizer"
)

const (
	studentIDWidth  = 650
	studentIDHeight = 400

	// BarcodeBars is the number of bar slots in the card's barcode strip.
	BarcodeBars = 40

	barcodeTop    = 330
	barcodeBottom = 370
)

func studentID(rec models.Record, src randomizer.Source, now time.Time) Document {
	w := float64(studentIDWidth)
	bg := src.Background()
	p := &page{}

	// Header bar
	p.fill(Point{0, 0}, Point{w, 80}, src.HeaderTint())
	p.text(Point{w / 2, 40}, strings.ToUpper(rec.School), white, 26, Regular, Center)

	// Photo placeholder
	p.out = append(p.out, Rect{
		Min:          Point{30, 100},
		Max:          Point{160, 280},
		Fill:         gray(220),
		Outline:      gray(100),
		OutlineWidth: 2,
	})

	x := 190.0
	y := 110.0
	p.text(Point{x, y}, rec.FullName(), black, 20, Bold, TopLeft)
	y += 40
	p.text(Point{x, y}, "Student ID:", gray(100), 14, Regular, TopLeft)
	p.text(Point{x + 80, y}, fmt.Sprint(src.StudentID()), black, 18, Regular, TopLeft)
	y += 30
	p.text(Point{x, y}, "Role:", gray(100), 14, Regular, TopLeft)
	p.text(Point{x + 80, y}, "Student", black, 18, Regular, TopLeft)

	// The caption sits inside the photo box, between the role and validity rows.
	p.text(Point{95, 190}, "PHOTO", gray(150), 18, Regular, Center)

	y += 30
	p.text(Point{x, y}, "Valid Thru:", gray(100), 14, Regular, TopLeft)
	p.text(Point{x + 80, y}, fmt.Sprintf("05/%d", now.Year()+1), black, 18, Regular, TopLeft)

	p.specimen(Point{w / 2, 250}, 72)

	// Barcode strip
	p.fill(Point{0, 320}, Point{w, 380}, white)
	for i := 0; i < BarcodeBars; i++ {
		if !src.BarPresent() {
			continue
		}
		bx := float64(50 + i*14)
		p.fill(Point{bx, barcodeTop}, Point{bx + 8, barcodeBottom}, black)
	}

	return Document{
		Kind:         models.StudentID,
		Width:        studentIDWidth,
		Height:       studentIDHeight,
		Background:   bg,
		Instructions: p.out,
	}
}

// BarCount returns the number of barcode bars drawn in doc.
func BarCount(doc Document) int {
	n := 0
	for _, ins := range doc.Instructions {
		r, ok := ins.(Rect)
		if ok && r.Min.Y == barcodeTop && r.Max.Y == barcodeBottom {
			n++
		}
	}
	return n
}
