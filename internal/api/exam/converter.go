package exam

import "github.com/liutentor/tentor-backend/internal/entity"

const dateLayout = "2006-01-02"

func toCourseExamsDTO(ce *entity.CourseExams) *entity.CourseExamsDTO {
	dto := &entity.CourseExamsDTO{
		CourseCode:    ce.CourseCode,
		CourseNameSwe: ce.CourseNameSwe,
		CourseNameEng: ce.CourseNameEng,
		Exams:         make([]entity.ExamSummaryDTO, 0, len(ce.Entries)),
	}

	for _, entry := range ce.Entries {
		summary := entity.ExamSummaryDTO{
			ID:          entry.Exam.ID,
			ExamDate:    entry.Exam.ExamDate.Format(dateLayout),
			ExamName:    entry.Exam.ExamName,
			PDFURL:      entry.Exam.PDFURL,
			HasSolution: entry.Exam.HasSolution,
		}
		if entry.Stat != nil {
			summary.PassRate = entry.Stat.PassRate
			summary.Statistics = entry.Stat.Statistics
		}
		dto.Exams = append(dto.Exams, summary)
	}

	return dto
}

func toExamWithSolutionsDTO(ews *entity.ExamWithSolutions) *entity.ExamWithSolutionsDTO {
	dto := &entity.ExamWithSolutionsDTO{
		ID:         ews.Exam.ID,
		CourseCode: ews.Exam.CourseCode,
		ExamDate:   ews.Exam.ExamDate.Format(dateLayout),
		ExamName:   ews.Exam.ExamName,
		PDFURL:     ews.Exam.PDFURL,
		Solutions:  make([]entity.SolutionDTO, 0, len(ews.Solutions)),
	}

	for _, sol := range ews.Solutions {
		dto.Solutions = append(dto.Solutions, entity.SolutionDTO{
			ID:           sol.ID,
			ExamID:       sol.ExamID,
			SolutionName: sol.SolutionName,
			PDFURL:       sol.PDFURL,
		})
	}

	return dto
}
