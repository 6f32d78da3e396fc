package model

import (
	"errors"
	"fmt"
	"strings"
)

// Level is the difficulty of a class.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// ErrInvalidLevel is returned by ParseLevel for names outside the enumeration.
var ErrInvalidLevel = errors.New("invalid level")

// Levels returns every level in display order.
func Levels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// ParseLevel matches s against the level names, ignoring case.
func ParseLevel(s string) (Level, error) {
	for _, l := range Levels() {
		if strings.EqualFold(strings.TrimSpace(s), string(l)) {
			return l, nil
		}
	}

	return "", fmt.Errorf("%w: %q (want one of Beginner, Intermediate, Advanced)", ErrInvalidLevel, s)
}

func (l Level) String() string {
	return string(l)
}

type ClassRecord struct {
	// ID is unique within the catalog
	ID string `json:"id"`

	// Name is the class display name
	Name string `json:"name"`

	// Level is the class difficulty
	Level Level `json:"level"`

	// Instructor is the instructor display name
	Instructor string `json:"instructor"`

	// Center is the studio where the class takes place
	Center string `json:"center"`

	// Booked reports whether the current user holds a booking
	Booked bool `json:"booked"`
}

// SearchText is the haystack used by free-text search.
func (c ClassRecord) SearchText() string {
	return c.Name + " " + c.Instructor + " " + c.Center
}

// Initial returns the first letter of the class name, used as an avatar.
func (c ClassRecord) Initial() string {
	for _, r := range c.Name {
		return string(r)
	}

	return "?"
}
