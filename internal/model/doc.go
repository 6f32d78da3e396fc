// Package model defines the data structures used throughout fitbook.
//
// # ClassRecord
//
// The [ClassRecord] struct represents one bookable fitness class:
//
//	type ClassRecord struct {
//	    ID         string // Opaque unique identifier
//	    Name       string // Display name
//	    Level      Level  // Beginner, Intermediate or Advanced
//	    Instructor string // Instructor display name
//	    Center     string // Studio display name
//	    Booked     bool   // The only mutable field
//	}
//
// Catalog records are reference data. Only copies held by the booking
// state machine ever have Booked flipped.
//
// # Config
//
// The [Config] struct holds application configuration loaded from
// config.ini and FITBOOK_* environment variables.
package model
