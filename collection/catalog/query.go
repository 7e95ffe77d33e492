package catalog

// AvailableSections returns the sections of a course with at least one seat
// left, in document order. A full course gives an empty slice, not an error.
func AvailableSections(index *Index, department, course string) ([]Section, error) {
	sections, err := index.Sections(department, course)
	if err != nil {
		return nil, err
	}
	available := []Section{}
	for _, section := range sections {
		if section.HasOpenSeats() {
			available = append(available, section)
		}
	}
	return available, nil
}
