// Package filter derives the visible subset of the class catalog.
package filter

import (
	"strings"

	"github.com/inovacc/fitbook/internal/model"
)

// VisibleClasses returns the records that pass the level, instructor and
// search predicates, in catalog order. A nil level or instructor matches
// everything, as does an empty search. The result is never nil.
func VisibleClasses(records []model.ClassRecord, level *model.Level, instructor *string, search string) []model.ClassRecord {
	needle := strings.ToLower(search)
	out := make([]model.ClassRecord, 0, len(records))

	for _, r := range records {
		if level != nil && r.Level != *level {
			continue
		}

		if instructor != nil && r.Instructor != *instructor {
			continue
		}

		if needle != "" && !strings.Contains(strings.ToLower(r.SearchText()), needle) {
			continue
		}

		out = append(out, r)
	}

	return out
}

// Selection is the filter state owned by the classes screen.
type Selection struct {
	Level      *model.Level
	Instructor *string
	Search     string
}

// ToggleLevel selects l, or unsets the level filter when l is already selected.
func (s Selection) ToggleLevel(l model.Level) Selection {
	if s.Level != nil && *s.Level == l {
		s.Level = nil

		return s
	}

	s.Level = &l

	return s
}

// WithInstructor sets the instructor filter. Empty clears it.
func (s Selection) WithInstructor(name string) Selection {
	if name == "" {
		s.Instructor = nil

		return s
	}

	s.Instructor = &name

	return s
}

func (s Selection) WithSearch(text string) Selection {
	s.Search = text

	return s
}

// Clear resets all three filters together.
func (s Selection) Clear() Selection {
	return Selection{}
}

// Active reports whether any filter is set.
func (s Selection) Active() bool {
	return s.Level != nil || s.Instructor != nil || s.Search != ""
}

func (s Selection) Apply(records []model.ClassRecord) []model.ClassRecord {
	return VisibleClasses(records, s.Level, s.Instructor, s.Search)
}

// InstructorLabel is the text shown on the instructor picker button.
func (s Selection) InstructorLabel() string {
	if s.Instructor == nil {
		return "All instructors"
	}

	return *s.Instructor
}
