package memory

import "github.com/bissquit/assessment-garden/internal/domain"

// seedUsers returns a fresh copy of the fixture collection loaded at
// process start.
func seedUsers() []domain.User {
	return []domain.User{
		{ID: "u-100", Name: "Alex Rivers", Role: domain.UserRoleAdmin, Email: "alex.rivers@example.com", Status: domain.UserStatusActive},
		{ID: "u-101", Name: "Priya Shah", Role: domain.UserRoleReviewer, Email: "priya.shah@example.com", Status: domain.UserStatusActive},
		{ID: "u-102", Name: "Jordan Lee", Role: domain.UserRoleContributor, Email: "jordan.lee@example.com", Status: domain.UserStatusActive},
		{ID: "u-103", Name: "Morgan Chen", Role: domain.UserRoleContributor, Email: "morgan.chen@example.com", Status: domain.UserStatusActive},
		{ID: "u-104", Name: "Sam Taylor", Role: domain.UserRoleReviewer, Email: "sam.taylor@example.com", Status: domain.UserStatusInactive},
		{ID: "u-105", Name: "Casey Brooks", Role: domain.UserRoleAdmin, Email: "casey.brooks@example.com", Status: domain.UserStatusActive},
		{ID: "u-106", Name: "Riley Parker", Role: domain.UserRoleContributor, Email: "riley.parker@example.com", Status: domain.UserStatusActive},
		{ID: "u-107", Name: "Jamie Martinez", Role: domain.UserRoleReviewer, Email: "jamie.martinez@example.com", Status: domain.UserStatusInactive},
		{ID: "u-108", Name: "Taylor Anderson", Role: domain.UserRoleContributor, Email: "taylor.anderson@example.com", Status: domain.UserStatusActive},
		{ID: "u-109", Name: "Drew Wilson", Role: domain.UserRoleAdmin, Email: "drew.wilson@example.com", Status: domain.UserStatusActive},
	}
}
