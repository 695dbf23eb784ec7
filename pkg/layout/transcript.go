package layout

import (
	"fmt"
	"strings"
	"time"

	"github.com/gouthamve/specimen/pkg/models"
	"github.com/gouthamve/specimen/pkg/randomizer"
)

const (
	transcriptWidth  = 850
	transcriptHeight = 1100

	margin = 50

	// Footer is printed at the bottom of every transcript.
	Footer = "Specimen generated for layout testing. Not an official academic record."
)

type course struct {
	Code, Title, Credits, Grade string
}

var courses = []course{
	{"CS 101", "Intro to Computer Science", "4.0", "A"},
	{"MATH 201", "Calculus I", "3.0", "A-"},
	{"ENG 102", "Academic Writing", "3.0", "B+"},
	{"PHYS 150", "Physics for Engineers", "4.0", "A"},
	{"HIST 110", "World History", "3.0", "A"},
}

// x offsets of the course table columns
var columns = [4]float64{50, 200, 600, 700}

func transcript(rec models.Record, src randomizer.Source, now time.Time) Document {
	w, h := float64(transcriptWidth), float64(transcriptHeight)
	right := w - 300
	p := &page{}

	// Header
	p.text(Point{w / 2, 50}, strings.ToUpper(rec.School), black, 32, Regular, Center)
	p.text(Point{w / 2, 90}, "SAMPLE ACADEMIC TRANSCRIPT", gray(50), 24, Regular, Center)
	p.line(Point{margin, 110}, Point{w - margin, 110}, black, 2)

	// Student info
	y := 150.0
	p.text(Point{margin, y}, "Student Name: "+rec.FullName(), black, 16, Bold, TopLeft)
	p.text(Point{right, y}, fmt.Sprintf("Student ID: %d", src.StudentID()), black, 16, Regular, TopLeft)
	y += 30
	p.text(Point{margin, y}, "Date of Birth: "+rec.DateOfBirth, black, 16, Regular, TopLeft)
	p.text(Point{right, y}, "Date Issued: "+now.Format(time.DateOnly), black, 16, Regular, TopLeft)
	y += 40

	// Status banner
	p.fill(Point{margin, y}, Point{w - margin, y + 40}, gray(240))
	p.text(Point{w / 2, y + 20}, "CURRENT STATUS: ENROLLED (SPRING 2026)", statusGreen, 16, Bold, Center)
	y += 70

	// Course table
	for i, heading := range []string{"Course Code", "Course Title", "Credits", "Grade"} {
		p.text(Point{columns[i], y}, heading, black, 16, Bold, TopLeft)
	}
	y += 20
	p.line(Point{margin, y}, Point{w - margin, y}, black, 1)
	y += 20

	for _, c := range courses {
		for i, cell := range []string{c.Code, c.Title, c.Credits, c.Grade} {
			p.text(Point{columns[i], y}, cell, black, 16, Regular, TopLeft)
		}
		y += 30
	}

	y += 20
	p.line(Point{margin, y}, Point{w - margin, y}, black, 1)
	y += 30

	// Summary
	p.text(Point{margin, y}, "Cumulative GPA: 3.85", black, 16, Bold, TopLeft)
	p.text(Point{right, y}, "Academic Standing: Good", black, 16, Bold, TopLeft)

	p.specimen(Point{w / 2, y + 20 + (h-y)/4}, 120)

	p.text(Point{w / 2, h - 50}, Footer, gray(100), 16, Regular, Center)

	return Document{
		Kind:         models.Transcript,
		Width:        transcriptWidth,
		Height:       transcriptHeight,
		Background:   white,
		Instructions: p.out,
	}
}
