package repository

import "time"

// ProblemFilter carries the optional admin listing filters. Empty fields
// impose no constraint; provided fields are ANDed. Location is a
// case-insensitive substring match, the rest are exact.
type ProblemFilter struct {
	Department string
	Location   string
	Status     string
	Urgency    string
}

// FilterOptions are the distinct values currently present in the problem
// collection, for building filter dropdowns.
type FilterOptions struct {
	Locations   []string `json:"locations"`
	Departments []string `json:"departments"`
}

// DevelopmentPatch updates only the fields that are set.
type DevelopmentPatch struct {
	DevelopmentName *string
	Description     *string
	StartDate       *time.Time
	CompletionDate  *time.Time
	Status          *string
	ImageURL        *string
}
