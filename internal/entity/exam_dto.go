package entity

import "encoding/json"

// ErrorResponse is the JSON error envelope returned by the API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Path    string `json:"path,omitempty"`
}

// ExamSummaryDTO is one exam row in a course listing.
type ExamSummaryDTO struct {
	ID          int64           `json:"id"`
	ExamDate    string          `json:"exam_date"`
	ExamName    string          `json:"exam_name"`
	PDFURL      string          `json:"pdf_url"`
	HasSolution bool            `json:"has_solution"`
	PassRate    *float64        `json:"pass_rate"`
	Statistics  json.RawMessage `json:"statistics,omitempty"`
}

// CourseExamsDTO is the response for GET /exams/{courseCode}.
type CourseExamsDTO struct {
	CourseCode    string           `json:"course_code"`
	CourseNameSwe *string          `json:"course_name_swe"`
	CourseNameEng *string          `json:"course_name_eng"`
	Exams         []ExamSummaryDTO `json:"exams"`
}

// SolutionDTO is a solution row nested under an exam.
type SolutionDTO struct {
	ID           int64  `json:"id"`
	ExamID       int64  `json:"exam_id"`
	SolutionName string `json:"solution_name"`
	PDFURL       string `json:"pdf_url"`
}

// ExamWithSolutionsDTO is the response for GET /exams/exam/{examId}.
type ExamWithSolutionsDTO struct {
	ID         int64         `json:"id"`
	CourseCode string        `json:"course_code"`
	ExamDate   string        `json:"exam_date"`
	ExamName   string        `json:"exam_name"`
	PDFURL     string        `json:"pdf_url"`
	Solutions  []SolutionDTO `json:"solutions"`
}
