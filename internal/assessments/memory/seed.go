package memory

import (
	"time"

	"github.com/bissquit/assessment-garden/internal/domain"
)

// seedAssessments returns a fresh copy of the fixture collection loaded
// at process start.
func seedAssessments() []domain.Assessment {
	return []domain.Assessment{
		{
			ID:        "asm-001",
			Name:      "Quarterly Risk Review",
			Status:    domain.AssessmentStatusInProgress,
			Owner:     "Alex Rivers",
			CreatedAt: time.Date(2025, 12, 15, 10, 30, 0, 0, time.UTC),
			Priority:  domain.AssessmentPriorityHigh,
		},
		{
			ID:        "asm-002",
			Name:      "Vendor Security Check",
			Status:    domain.AssessmentStatusBlocked,
			Owner:     "Priya Shah",
			CreatedAt: time.Date(2025, 12, 20, 14, 15, 0, 0, time.UTC),
			Priority:  domain.AssessmentPriorityCritical,
		},
		{
			ID:        "asm-003",
			Name:      "Application Pen Test",
			Status:    domain.AssessmentStatusScheduled,
			Owner:     "Jordan Lee",
			CreatedAt: time.Date(2025, 12, 22, 9, 0, 0, 0, time.UTC),
			Priority:  domain.AssessmentPriorityMedium,
		},
		{
			ID:        "asm-004",
			Name:      "Network Infrastructure Audit",
			Status:    domain.AssessmentStatusComplete,
			Owner:     "Alex Rivers",
			CreatedAt: time.Date(2025, 11, 10, 8, 0, 0, 0, time.UTC),
			Priority:  domain.AssessmentPriorityHigh,
		},
		{
			ID:        "asm-005",
			Name:      "Data Privacy Impact Assessment",
			Status:    domain.AssessmentStatusInProgress,
			Owner:     "Morgan Chen",
			CreatedAt: time.Date(2025, 12, 18, 11, 20, 0, 0, time.UTC),
			Priority:  domain.AssessmentPriorityHigh,
		},
		{
			ID:        "asm-006",
			Name:      "Cloud Security Posture Review",
			Status:    domain.AssessmentStatusScheduled,
			Owner:     "Jordan Lee",
			CreatedAt: time.Date(2025, 12, 23, 13, 45, 0, 0, time.UTC),
			Priority:  domain.AssessmentPriorityMedium,
		},
		{
			ID:        "asm-007",
			Name:      "Third-Party Risk Assessment",
			Status:    domain.AssessmentStatusInProgress,
			Owner:     "Priya Shah",
			CreatedAt: time.Date(2025, 12, 16, 10, 0, 0, 0, time.UTC),
			Priority:  domain.AssessmentPriorityCritical,
		},
		{
			ID:        "asm-008",
			Name:      "API Security Testing",
			Status:    domain.AssessmentStatusComplete,
			Owner:     "Morgan Chen",
			CreatedAt: time.Date(2025, 11, 25, 15, 30, 0, 0, time.UTC),
			Priority:  domain.AssessmentPriorityMedium,
		},
		{
			ID:        "asm-009",
			Name:      "SOC 2 Compliance Audit",
			Status:    domain.AssessmentStatusScheduled,
			Owner:     "Alex Rivers",
			CreatedAt: time.Date(2025, 12, 28, 9, 0, 0, 0, time.UTC),
			Priority:  domain.AssessmentPriorityCritical,
		},
		{
			ID:        "asm-010",
			Name:      "Mobile App Security Review",
			Status:    domain.AssessmentStatusBlocked,
			Owner:     "Jordan Lee",
			CreatedAt: time.Date(2025, 12, 19, 16, 0, 0, 0, time.UTC),
			Priority:  domain.AssessmentPriorityLow,
		},
		{
			ID:        "asm-011",
			Name:      "Incident Response Drill",
			Status:    domain.AssessmentStatusComplete,
			Owner:     "Priya Shah",
			CreatedAt: time.Date(2025, 11, 30, 10, 0, 0, 0, time.UTC),
			Priority:  domain.AssessmentPriorityHigh,
		},
		{
			ID:        "asm-012",
			Name:      "Phishing Simulation Campaign",
			Status:    domain.AssessmentStatusInProgress,
			Owner:     "Morgan Chen",
			CreatedAt: time.Date(2025, 12, 21, 14, 0, 0, 0, time.UTC),
			Priority:  domain.AssessmentPriorityLow,
		},
	}
}
