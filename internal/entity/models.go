package entity

import (
	"encoding/json"
	"time"
)

// Exam is a stored exam record. Rows are owned by the ingestion
// pipeline; this service only reads them.
type Exam struct {
	ID          int64
	CourseCode  string
	ExamDate    time.Time
	ExamName    string
	PDFURL      string
	CreatedAt   time.Time
	HasSolution bool
}

// Solution is the answer key belonging to an exam. An exam has zero or
// more solution rows, but only the first one is ever used.
type Solution struct {
	ID           int64
	ExamID       int64
	SolutionName string
	PDFURL       string
	CreatedAt    time.Time
}

// CourseStat holds pass-rate statistics for one exam sitting of a course.
type CourseStat struct {
	CourseCode    string
	ExamDate      time.Time
	CourseNameSwe *string
	CourseNameEng *string
	PassRate      *float64
	Statistics    json.RawMessage
}
