// sport/model.go
package sport

import (
	"gorm.io/gorm"
)

// Sport represents a type of sport/game. GroupCount mirrors the number of
// groups referencing the sport; it is incremented in the same transaction
// that creates a group and can be rebuilt with RecountGroupCounts.
type Sport struct {
	gorm.Model
	Name       string `json:"name" gorm:"uniqueIndex;not null"`
	Icon       string `json:"icon"`
	Slug       string `json:"slug" gorm:"index"`
	IsActive   bool   `json:"isActive" gorm:"default:true"`
	GroupCount int    `json:"groupCount" gorm:"default:0"`
}

type CreateSportRequest struct {
	Name string `json:"name" binding:"required" example:"Football"`
	Icon string `json:"icon" binding:"required" example:"⚽"`
	Slug string `json:"slug" example:"football"`
}
