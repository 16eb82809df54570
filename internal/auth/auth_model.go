package auth

import (
	"github.com/pulse-social/pulse/internal/user"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"emma_anderson2"` // Username or email
	Password string `json:"password" binding:"required" example:"password123"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Emma Anderson"`
	Username string `json:"username" binding:"required,min=3,max=30" example:"emma_anderson2"`
	Email    string `json:"email" binding:"required,email" example:"emma.anderson@example.com"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"password123"`
}

// UserSummary is the slice of an account returned alongside a token.
type UserSummary struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	Rating       float64 `json:"rating"`
	TotalRatings int     `json:"totalRatings"`
	Flags        int     `json:"flags"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

func FilterUserRecord(u *user.User) UserSummary {
	return UserSummary{
		ID:           u.ID,
		Name:         u.Name,
		Username:     u.Username,
		Email:        u.Email,
		Role:         u.Role,
		Rating:       u.Rating,
		TotalRatings: u.TotalRatings,
		Flags:        u.Flags,
	}
}
