package models

import "time"

const (
	StatusNew      = "New"
	StatusPending  = "Pending"
	StatusResolved = "Resolved"
)

const (
	UrgencyLow    = "Low"
	UrgencyMedium = "Medium"
	UrgencyHigh   = "High"
)

func ValidStatus(s string) bool {
	return s == StatusNew || s == StatusPending || s == StatusResolved
}

func ValidUrgency(u string) bool {
	return u == UrgencyLow || u == UrgencyMedium || u == UrgencyHigh
}

type Problem struct {
	ID          string    `json:"id"`
	ProblemName string    `json:"problemName"`
	Department  string    `json:"department"`
	Location    string    `json:"location"`
	Urgency     string    `json:"urgency"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	SubmittedBy string    `json:"submittedBy"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`

	// Joined from accounts for the admin listing.
	OwnerName  string `json:"ownerName,omitempty"`
	OwnerEmail string `json:"ownerEmail,omitempty"`
	OwnerRegNo string `json:"ownerRegNo,omitempty"`
}
