// group/model.go
package group

import (
	"gorm.io/gorm"
)

const (
	RoleOrganizer = "organizer"
	RoleMember    = "member"

	StatusUpcoming  = "upcoming"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"

	PrivacyPublic  = "PUBLIC"
	PrivacyFriends = "FRIENDS"
	PrivacyInvite  = "INVITE"
	PrivacyPrivate = "PRIVATE"
)

// skillLevelNames maps a skill-level key to its display label used in the
// generated activity title. Unknown keys pass through unchanged.
var skillLevelNames = map[string]string{
	"newbie":  "Newbie Friendly",
	"weekend": "Weekend Warrior",
	"serious": "Serious Player",
	"elite":   "Elite Level",
}

// Group is a scheduled sports activity. The organizer is always also a member
// with role "organizer", created in the same transaction as the group itself.
type Group struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Details     string `json:"details"`
	SportID     uint   `json:"sport_id" gorm:"index;not null"`
	OrganizerID uint   `json:"organizer_id" gorm:"index;not null"`
	City        string `json:"city" gorm:"index"`
	Location    string `json:"location"`
	DateTime    string `json:"date_time"` // "YYYY-MM-DD HH:MM", date and time concatenated
	Privacy     string `json:"privacy" gorm:"default:'PUBLIC'"`
	MaxMembers  int    `json:"max_members" gorm:"not null"`
	Status      string `json:"status" gorm:"default:'upcoming';index"`
}

// GroupMember links a user to a group. The composite unique index makes a
// duplicate join a constraint violation rather than a silent second row.
type GroupMember struct {
	gorm.Model
	GroupID uint   `json:"group_id" gorm:"uniqueIndex:idx_group_member;not null"`
	UserID  uint   `json:"user_id" gorm:"uniqueIndex:idx_group_member;not null"`
	Role    string `json:"role" gorm:"default:'member'"`
}

// --- DTOs ---

type CreateGroupRequest struct {
	SportID     uint   `json:"sport_id" binding:"required"`
	Date        string `json:"date" binding:"required" example:"2025-09-14"`
	Time        string `json:"time" binding:"required" example:"18:30"`
	SkillLevel  string `json:"skill_level" binding:"required" example:"weekend"`
	Location    string `json:"location" binding:"required" example:"Stockholm"`
	Privacy     string `json:"privacy" binding:"omitempty,oneof=PUBLIC FRIENDS INVITE PRIVATE"`
	Description string `json:"description"`
	MaxMembers  int    `json:"max_members" binding:"omitempty,gte=2"`
}

// MemberInfo is a group member annotated with the user's reputation fields.
type MemberInfo struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Username     string  `json:"username"`
	Rating       float64 `json:"rating"`
	TotalRatings int     `json:"totalRatings"`
	Flags        int     `json:"flags"`
	Role         string  `json:"role"`
}

// GroupResponse is a group joined with its sport, organizer and member list.
type GroupResponse struct {
	ID            uint         `json:"id"`
	Title         string       `json:"title"`
	Details       string       `json:"details"`
	SportID       uint         `json:"sport_id"`
	OrganizerID   uint         `json:"organizer_id"`
	City          string       `json:"city"`
	Location      string       `json:"location"`
	DateTime      string       `json:"date_time"`
	Privacy       string       `json:"privacy"`
	MaxMembers    int          `json:"max_members"`
	Status        string       `json:"status"`
	SportName     string       `json:"sport_name"`
	SportIcon     string       `json:"sport_icon"`
	OrganizerName string       `json:"organizer_name"`
	MemberCount   int          `json:"memberCount"`
	Members       []MemberInfo `json:"members" gorm:"-"` // filled in by membersOf, not scanned
}

// ListFilters narrows the upcoming-groups listing. Empty or "all" values
// leave the corresponding dimension unfiltered.
type ListFilters struct {
	SportID string
	City    string
	Privacy string
	Search  string
}
