package session

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/Pjt727/classwatch/collection/catalog"
)

var (
	headerColor = color.New(color.Bold)
	openColor   = color.New(color.FgGreen)
	fullColor   = color.New(color.FgRed)
)

// Report writes the open sections of every selected course
func Report(w io.Writer, index *catalog.Index, selection *Selection) error {
	for _, department := range selection.Departments() {
		if _, err := headerColor.Fprintf(w, "\n%s Department courses:\n", department); err != nil {
			return err
		}
		for _, number := range selection.Courses(department) {
			available, err := catalog.AvailableSections(index, department, number)
			if err != nil {
				return err
			}
			if err := reportCourse(w, catalog.CourseID{Department: department, Number: number}, available); err != nil {
				return err
			}
		}
	}
	return nil
}

func reportCourse(w io.Writer, id catalog.CourseID, available []catalog.Section) error {
	if len(available) == 0 {
		_, err := fullColor.Fprintf(w, "\tNo sections available for %s\n", id)
		return err
	}
	for _, section := range available {
		_, err := openColor.Fprintf(
			w,
			"\tSection: %s | CRN: %d | %d spots remaining\n",
			section.Label,
			section.CRN,
			section.Remaining,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// used by callers that print a summary line outside of a session
func FormatCount(selection *Selection) string {
	return fmt.Sprintf("%d course(s) in %d department(s)", selection.Len(), len(selection.Departments()))
}
