package catalog

import (
	"errors"
	"testing"
)

func TestParseCourseID(t *testing.T) {
	cases := map[string]CourseID{
		"CSCI-1200":     {Department: "CSCI", Number: "1200"},
		"csci-1200":     {Department: "CSCI", Number: "1200"},
		"  math-1010\n": {Department: "MATH", Number: "1010"},
	}
	for token, want := range cases {
		got, err := ParseCourseID(token)
		if err != nil {
			t.Errorf("ParseCourseID(%q) error %v", token, err)
			continue
		}
		if got != want {
			t.Errorf("ParseCourseID(%q) = %v, want %v", token, got, want)
		}
		if got.String() != want.Department+"-"+want.Number {
			t.Errorf("String() = %s", got.String())
		}
	}
}

func TestParseCourseIDInvalid(t *testing.T) {
	tokens := []string{
		"CSCI1200",
		"CSCI-120",
		"CSCI-12000",
		"CSC-12000",
		"CSCI_1200",
		"CSCI-12A0",
		"CS!I-1200",
		"-1",
		"",
	}
	for _, token := range tokens {
		if _, err := ParseCourseID(token); !errors.Is(err, ErrInvalidCourseSyntax) {
			t.Errorf("ParseCourseID(%q) error = %v, want ErrInvalidCourseSyntax", token, err)
		}
	}
}
