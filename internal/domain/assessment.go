package domain

import "time"

// AssessmentStatus represents the lifecycle state of an assessment.
type AssessmentStatus string

// Assessment statuses.
const (
	AssessmentStatusScheduled  AssessmentStatus = "scheduled"
	AssessmentStatusInProgress AssessmentStatus = "in-progress"
	AssessmentStatusBlocked    AssessmentStatus = "blocked"
	AssessmentStatusComplete   AssessmentStatus = "complete"
)

// IsValid checks if the assessment status is valid.
func (s AssessmentStatus) IsValid() bool {
	switch s {
	case AssessmentStatusScheduled, AssessmentStatusInProgress,
		AssessmentStatusBlocked, AssessmentStatusComplete:
		return true
	}
	return false
}

// AssessmentPriority represents the urgency of an assessment.
type AssessmentPriority string

// Assessment priorities.
const (
	AssessmentPriorityLow      AssessmentPriority = "low"
	AssessmentPriorityMedium   AssessmentPriority = "medium"
	AssessmentPriorityHigh     AssessmentPriority = "high"
	AssessmentPriorityCritical AssessmentPriority = "critical"
)

// IsValid checks if the assessment priority is valid.
func (p AssessmentPriority) IsValid() bool {
	switch p {
	case AssessmentPriorityLow, AssessmentPriorityMedium,
		AssessmentPriorityHigh, AssessmentPriorityCritical:
		return true
	}
	return false
}

// Assessment represents a single assessment record.
// JSON field names match the dashboard wire format (camelCase).
type Assessment struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Status    AssessmentStatus   `json:"status"`
	Owner     string             `json:"owner"`
	CreatedAt time.Time          `json:"createdAt"`
	Priority  AssessmentPriority `json:"priority"`
}
