// reputation/model.go
package reputation

import (
	"time"

	"gorm.io/gorm"
)

const (
	FlagHarassment       = "harassment"
	FlagBadSportsmanship = "bad_sportsmanship"
	FlagCheating         = "cheating"
	FlagNoShow           = "no_show"
	FlagInappropriate    = "inappropriate_behavior"
	FlagOther            = "other"

	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"

	FlagStatusPending     = "pending"
	FlagStatusReviewed    = "reviewed"
	FlagStatusDismissed   = "dismissed"
	FlagStatusActionTaken = "action_taken"
)

// UserRating is one user's rating of another, scoped to an activity. The
// composite unique index gives submissions insert-or-replace semantics: a
// second rating for the same key overwrites the value, it never accumulates.
type UserRating struct {
	gorm.Model
	RatedUserID uint `json:"rated_user_id" gorm:"uniqueIndex:idx_rating_key;not null"`
	RaterUserID uint `json:"rater_user_id" gorm:"uniqueIndex:idx_rating_key;not null"`
	GroupID     uint `json:"group_id" gorm:"uniqueIndex:idx_rating_key;not null"`
	Rating      int  `json:"rating" gorm:"not null"`
}

// FlagReport is an abuse/conduct complaint filed by one user against another,
// scoped to an activity. Status starts at "pending" and only moves forward
// via moderation actions.
type FlagReport struct {
	gorm.Model
	ReporterID  uint       `json:"reporter_id" gorm:"index;not null"`
	ReportedID  uint       `json:"reported_id" gorm:"index;not null"`
	GroupID     uint       `json:"group_id" gorm:"index"`
	Type        string     `json:"type" gorm:"not null"`
	Reason      string     `json:"reason"`
	Details     string     `json:"details"`
	Severity    string     `json:"severity" gorm:"default:'medium'"`
	Status      string     `json:"status" gorm:"default:'pending';index"`
	ReviewedBy  string     `json:"reviewed_by"`
	ReviewedAt  *time.Time `json:"reviewed_at"`
	ActionTaken string     `json:"action_taken"`
}

// --- DTOs ---

type RateUserRequest struct {
	Rating  int  `json:"rating" binding:"required"`
	GroupID uint `json:"group_id" binding:"required"`
}

type FlagUserRequest struct {
	Type     string `json:"type" binding:"required,oneof=harassment bad_sportsmanship cheating no_show inappropriate_behavior other"`
	Reason   string `json:"reason" binding:"required"`
	Details  string `json:"details"`
	GroupID  uint   `json:"group_id" binding:"required"`
	Severity string `json:"severity" binding:"omitempty,oneof=low medium high"`
}
