package user

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"

	StatusActive    = "active"
	StatusSuspended = "suspended"
	StatusPending   = "pending"
)

// User is a Pulse account. Rating, TotalRatings and Flags are denormalized
// aggregates maintained transactionally by the reputation layer; Rating is
// meaningful only when TotalRatings > 0.
type User struct {
	gorm.Model
	Name         string    `json:"name" gorm:"not null"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         string    `json:"role" gorm:"default:'user';index"`
	Rating       float64   `json:"rating" gorm:"default:0"`
	TotalRatings int       `json:"totalRatings" gorm:"default:0"`
	Flags        int       `json:"flags" gorm:"default:0"`
	Status       string    `json:"status" gorm:"default:'active';index"`
	JoinDate     time.Time `json:"joinDate"`
	LastActivity time.Time `json:"lastActivity"`
}
