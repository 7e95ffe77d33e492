package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
)

var (
	ErrMalformedDocument = errors.New("malformed courses document")
	ErrUnknownDepartment = errors.New("unknown department")
	ErrUnknownCourse     = errors.New("unknown course")
)

type Section struct {
	Label     string `json:"sec"`
	CRN       int    `json:"crn"`
	Remaining int    `json:"rem"`
	Capacity  int    `json:"cap,omitempty"`
	Enrolled  int    `json:"act,omitempty"`
	Title     string `json:"title,omitempty"`
}

func (s Section) HasOpenSeats() bool {
	return s.Remaining > 0
}

// json types for the quacs courses document

// quacs writes crse as a number but older semesters have it quoted
type courseNumber string

func (c *courseNumber) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("null")) {
		return errors.New("course number is null")
	}
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*c = courseNumber(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return err
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return fmt.Errorf("course number %s is not an integer", n)
	}
	*c = courseNumber(n.String())
	return nil
}

type documentCourse struct {
	Number   *courseNumber `json:"crse"`
	Sections []Section     `json:"sections"`
}

type documentDepartment struct {
	Code    *string           `json:"code"`
	Courses *[]documentCourse `json:"courses"`
}

// Index is the courses of a single term keyed by department code then
// course number. Sections keep the order of the document.
type Index struct {
	departments map[string]map[string][]Section
}

// Build indexes a whole courses document. Nothing is returned unless every
// department could be read. A course repeated within a department replaces the
// earlier one.
func Build(raw []byte) (*Index, error) {
	var departments []documentDepartment
	if err := json.Unmarshal(raw, &departments); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	if departments == nil {
		return nil, fmt.Errorf("%w top level is not a list of departments", ErrMalformedDocument)
	}

	index := &Index{departments: make(map[string]map[string][]Section, len(departments))}
	for i, department := range departments {
		if department.Code == nil || *department.Code == "" {
			return nil, fmt.Errorf("%w department %d has no code", ErrMalformedDocument, i)
		}
		if department.Courses == nil {
			return nil, fmt.Errorf("%w department %s has no course list", ErrMalformedDocument, *department.Code)
		}
		courses := make(map[string][]Section, len(*department.Courses))
		for j, course := range *department.Courses {
			if course.Number == nil {
				return nil, fmt.Errorf("%w course %d of %s has no number", ErrMalformedDocument, j, *department.Code)
			}
			sections := course.Sections
			if sections == nil {
				sections = []Section{}
			}
			courses[string(*course.Number)] = sections
		}
		index.departments[*department.Code] = courses
	}
	return index, nil
}

// Sections returns every section of a course, open or not
func (i *Index) Sections(department, course string) ([]Section, error) {
	courses, ok := i.departments[department]
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrUnknownDepartment, department)
	}
	sections, ok := courses[course]
	if !ok {
		return nil, fmt.Errorf("%w %s-%s", ErrUnknownCourse, department, course)
	}
	return sections, nil
}

func (i *Index) Lookup(id CourseID) error {
	_, err := i.Sections(id.Department, id.Number)
	return err
}

func (i *Index) Departments() []string {
	codes := make([]string, 0, len(i.departments))
	for code := range i.departments {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func (i *Index) Courses(department string) ([]string, error) {
	courses, ok := i.departments[department]
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrUnknownDepartment, department)
	}
	numbers := make([]string, 0, len(courses))
	for number := range courses {
		numbers = append(numbers, number)
	}
	sort.Strings(numbers)
	return numbers, nil
}

func (i *Index) Len() int {
	return len(i.departments)
}
