// Package catalog holds the static class catalog and simulates fetching it.
package catalog

import (
	"context"
	"time"

	"github.com/inovacc/fitbook/internal/model"
)

// DefaultLoadDelay is the simulated latency of the catalog fetch.
const DefaultLoadDelay = 700 * time.Millisecond

var classes = []model.ClassRecord{
	{ID: "c1", Name: "Yoga Basics", Level: model.LevelBeginner, Instructor: "Asha", Center: "Green Studio"},
	{ID: "c2", Name: "Power Yoga", Level: model.LevelAdvanced, Instructor: "Rohit", Center: "Fit Center"},
	{ID: "c3", Name: "Pilates Core", Level: model.LevelIntermediate, Instructor: "Maya", Center: "Core Club"},
	{ID: "c4", Name: "Evening Flow", Level: model.LevelBeginner, Instructor: "Rohit", Center: "Green Studio"},
	{ID: "c5", Name: "HIIT Blast", Level: model.LevelAdvanced, Instructor: "Sahil", Center: "Fit Center"},
}

// Default returns a fresh copy of the sample catalog.
func Default() []model.ClassRecord {
	out := make([]model.ClassRecord, len(classes))
	copy(out, classes)

	return out
}

// Catalog serves the read-only class list.
type Catalog struct {
	records   []model.ClassRecord
	loadDelay time.Duration
}

// New creates a catalog over records. A negative delay is treated as zero.
func New(records []model.ClassRecord, loadDelay time.Duration) *Catalog {
	if loadDelay < 0 {
		loadDelay = 0
	}

	cp := make([]model.ClassRecord, len(records))
	copy(cp, records)

	return &Catalog{records: cp, loadDelay: loadDelay}
}

// Load waits for the simulated fetch and returns a copy of every record.
func (c *Catalog) Load(ctx context.Context) ([]model.ClassRecord, error) {
	if c.loadDelay > 0 {
		timer := time.NewTimer(c.loadDelay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	out := make([]model.ClassRecord, len(c.records))
	copy(out, c.records)

	return out, nil
}

// Instructors lists unique instructors in the order they first appear.
func Instructors(records []model.ClassRecord) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0, len(records))

	for _, r := range records {
		if _, ok := seen[r.Instructor]; ok {
			continue
		}

		seen[r.Instructor] = struct{}{}
		out = append(out, r.Instructor)
	}

	return out
}

// Find returns the record with id.
func Find(records []model.ClassRecord, id string) (model.ClassRecord, bool) {
	for _, r := range records {
		if r.ID == id {
			return r, true
		}
	}

	return model.ClassRecord{}, false
}
