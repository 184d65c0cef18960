package entity

// CourseExamEntry pairs an exam with the statistics row for its sitting,
// when one exists.
type CourseExamEntry struct {
	Exam *Exam
	Stat *CourseStat
}

// CourseExams is the resolved listing for one course code.
type CourseExams struct {
	CourseCode    string
	CourseNameSwe *string
	CourseNameEng *string
	Entries       []CourseExamEntry
}

// ExamWithSolutions is an exam together with all its solution rows.
type ExamWithSolutions struct {
	Exam      *Exam
	Solutions []*Solution
}
