package models

import "time"

const (
	DevPlanned           = "Planned"
	DevUnderConstruction = "Under Construction"
	DevCompleted         = "Completed"
)

func ValidDevelopmentStatus(s string) bool {
	return s == DevPlanned || s == DevUnderConstruction || s == DevCompleted
}

type Development struct {
	ID              string     `json:"id"`
	DevelopmentName string     `json:"developmentName"`
	Description     string     `json:"description"`
	StartDate       time.Time  `json:"startDate"`
	CompletionDate  *time.Time `json:"completionDate,omitempty"`
	Status          string     `json:"status"`
	ImageURL        string     `json:"imageUrl,omitempty"`
}
