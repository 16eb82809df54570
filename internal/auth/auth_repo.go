package auth

import (
	"time"

	"github.com/pulse-social/pulse/internal/user"
	"gorm.io/gorm"
)

type AuthRepository interface {
	CreateUser(u *user.User) error
	GetUserByIdentifier(identifier string) (*user.User, error)
	GetUserByUsernameOrEmail(username, email string) (*user.User, error)
	TouchLastActivity(userID uint) error
}

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

// GetUserByIdentifier looks a user up by username or email, whichever matches.
func (r *authRepository) GetUserByIdentifier(identifier string) (*user.User, error) {
	var u user.User
	if err := r.db.Where("username = ? OR email = ?", identifier, identifier).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) GetUserByUsernameOrEmail(username, email string) (*user.User, error) {
	var u user.User
	if err := r.db.Where("username = ? OR email = ?", username, email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) TouchLastActivity(userID uint) error {
	return r.db.Model(&user.User{}).Where("id = ?", userID).
		Update("last_activity", time.Now()).Error
}
