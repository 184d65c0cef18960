package validator

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/liutentor/tentor-backend/internal/entity"
)

var (
	courseCodePattern = regexp.MustCompile(`^[A-Za-z0-9]{1,6}$`)
	examIDPattern     = regexp.MustCompile(`^\d+$`)
)

// ValidateCourseCode checks the course code path parameter.
func (v *Validator) ValidateCourseCode(code string) error {
	if code == "" {
		return fmt.Errorf("%w: courseCode", entity.ErrMissingField)
	}
	if !courseCodePattern.MatchString(code) {
		return fmt.Errorf("%w: course code %q", entity.ErrInvalidFormat, code)
	}
	return nil
}

// ParseExamID checks the exam id path parameter and converts it.
func (v *Validator) ParseExamID(raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: examId", entity.ErrMissingField)
	}
	if !examIDPattern.MatchString(raw) {
		return 0, fmt.Errorf("%w: exam id must be a number, got %q", entity.ErrInvalidFormat, raw)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: exam id %q out of range", entity.ErrInvalidParameter, raw)
	}
	return id, nil
}
