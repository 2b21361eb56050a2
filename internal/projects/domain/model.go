package domain

import "time"

// Project is a single time-tracking entry with its derived billing figures.
// DurationMinutes and TotalValue are computed once at creation and stored
// alongside the inputs that produced them.
type Project struct {
	ID              string    `json:"id"`
	ProjectName     string    `json:"project_name"`
	TaskOwner       string    `json:"task_owner"`
	ProjectType     string    `json:"project_type"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	HourlyRate      float64   `json:"hourly_rate"`
	CreatedAt       time.Time `json:"created_at"`
	DurationMinutes float64   `json:"duration_minutes"`
	TotalValue      float64   `json:"total_value"`
}

// CreateProjectRequest is the caller-supplied part of a Project.
type CreateProjectRequest struct {
	ProjectName string    `json:"project_name"`
	TaskOwner   string    `json:"task_owner"`
	ProjectType string    `json:"project_type"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	HourlyRate  float64   `json:"hourly_rate"`
}

// NewProject is a validated, fully derived record ready for the store.
// Timestamps are already serialized for the storage boundary.
type NewProject struct {
	ProjectName     string
	TaskOwner       string
	ProjectType     string
	StartTime       string
	EndTime         string
	HourlyRate      float64
	DurationMinutes float64
	TotalValue      float64
}

// Ordering describes how a listing is sorted.
type Ordering struct {
	Column     string
	Descending bool
}

// SQL renders the ordering as an ORDER BY expression.
func (o Ordering) SQL() string {
	if o.Descending {
		return o.Column + " DESC"
	}
	return o.Column + " ASC"
}

// ListOrdering is the retrieval contract for listings: newest first.
// Ties are left to the store.
func ListOrdering() Ordering {
	return Ordering{Column: "created_at", Descending: true}
}
