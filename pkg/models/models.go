package models

import "fmt"

// Record holds the fields printed on a generated document.
type Record struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	School      string `json:"school"`
	DateOfBirth string `json:"date_of_birth"`
}

// FullName joins the first and last name with a single space.
func (r Record) FullName() string {
	return r.FirstName + " " + r.LastName
}

// DocumentKind selects the fixed template used to lay out a document.
type DocumentKind int

const (
	Transcript DocumentKind = iota
	StudentID
)

func (k DocumentKind) String() string {
	switch k {
	case Transcript:
		return "transcript"
	case StudentID:
		return "student_id"
	}
	return fmt.Sprintf("DocumentKind(%d)", int(k))
}

// Kinds lists every document kind in generation order.
var Kinds = []DocumentKind{Transcript, StudentID}
