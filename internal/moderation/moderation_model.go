// moderation/model.go
package moderation

import "time"

// UserFilters narrows the admin user listing. Empty or "all" values leave the
// corresponding dimension unfiltered.
type UserFilters struct {
	Status string
	Role   string
	Search string
}

// UserView is the admin-facing slice of a user row.
type UserView struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Rating       float64   `json:"rating"`
	TotalRatings int       `json:"totalRatings"`
	Flags        int       `json:"flags"`
	Status       string    `json:"status"`
	JoinDate     time.Time `json:"joinDate"`
	LastActivity time.Time `json:"lastActivity"`
}

// FlagView is a flag report joined with the names of the people and the
// activity involved.
type FlagView struct {
	ID               uint       `json:"id"`
	ReporterID       uint       `json:"reporter_id"`
	ReportedID       uint       `json:"reported_id"`
	GroupID          uint       `json:"group_id"`
	Type             string     `json:"type"`
	Reason           string     `json:"reason"`
	Details          string     `json:"details"`
	Severity         string     `json:"severity"`
	Status           string     `json:"status"`
	ReviewedBy       string     `json:"reviewed_by"`
	ReviewedAt       *time.Time `json:"reviewed_at"`
	ActionTaken      string     `json:"action_taken"`
	CreatedAt        time.Time  `json:"created_at"`
	ReporterName     string     `json:"reporter_name"`
	ReportedName     string     `json:"reported_name"`
	ReportedUsername string     `json:"reported_username"`
	ActivityName     string     `json:"activity_name"`
}

// --- DTOs ---

type DismissFlagRequest struct {
	Reason string `json:"reason"`
}

type SuspendRequest struct {
	Action string `json:"action"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active suspended"`
}
