package session

import "github.com/Pjt727/classwatch/collection/catalog"

// Selection is the courses a user confirmed grouped by department. Departments
// keep the order they were first confirmed in and a course confirmed twice is
// listed twice.
type Selection struct {
	departments []string
	courses     map[string][]string
}

func NewSelection() *Selection {
	return &Selection{courses: make(map[string][]string)}
}

func (s *Selection) Add(id catalog.CourseID) {
	if _, ok := s.courses[id.Department]; !ok {
		s.departments = append(s.departments, id.Department)
	}
	s.courses[id.Department] = append(s.courses[id.Department], id.Number)
}

func (s *Selection) Departments() []string {
	return append([]string(nil), s.departments...)
}

func (s *Selection) Courses(department string) []string {
	return append([]string(nil), s.courses[department]...)
}

func (s *Selection) Len() int {
	count := 0
	for _, numbers := range s.courses {
		count += len(numbers)
	}
	return count
}
