package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidCourseSyntax = errors.New("invalid course")

const (
	departmentWidth = 4
	numberWidth     = 4
	courseIDWidth   = departmentWidth + 1 + numberWidth
)

// CourseID is a course as typed by a user e.i. CSCI-1200
type CourseID struct {
	Department string
	Number     string
}

func (c CourseID) String() string {
	return c.Department + "-" + c.Number
}

// ParseCourseID only checks the shape DEPT-NNNN, it does not know if the
// course exists
func ParseCourseID(token string) (CourseID, error) {
	token = strings.ToUpper(strings.TrimSpace(token))
	if len(token) != courseIDWidth || token[departmentWidth] != '-' {
		return CourseID{}, fmt.Errorf("%w `%s` expected the format DEPT-XXXX", ErrInvalidCourseSyntax, token)
	}
	department, number := token[:departmentWidth], token[departmentWidth+1:]
	for _, r := range department {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return CourseID{}, fmt.Errorf("%w department `%s` must be letters or digits", ErrInvalidCourseSyntax, department)
		}
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return CourseID{}, fmt.Errorf("%w course number `%s` must be digits", ErrInvalidCourseSyntax, number)
		}
	}
	return CourseID{Department: department, Number: number}, nil
}
