package sport

import (
	"errors"

	"gorm.io/gorm"
)

type SportRepository interface {
	CreateSport(sport *Sport) error
	GetSportByID(id uint) (*Sport, error)
	GetAllSports() ([]Sport, error)
	FindSportByName(name string) (*Sport, error)
	RecountGroupCounts() error
}

type sportRepository struct {
	db *gorm.DB
}

// NewSportRepository creates a new instance of SportRepository.
func NewSportRepository(db *gorm.DB) SportRepository {
	return &sportRepository{db: db}
}

func (r *sportRepository) CreateSport(sport *Sport) error {
	return r.db.Create(sport).Error
}

func (r *sportRepository) GetSportByID(id uint) (*Sport, error) {
	var sport Sport
	err := r.db.First(&sport, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Not found is not an "error" for the caller
		}
		return nil, err
	}
	return &sport, nil
}

func (r *sportRepository) GetAllSports() ([]Sport, error) {
	var sports []Sport
	if err := r.db.Order("name ASC").Find(&sports).Error; err != nil {
		return nil, err
	}
	return sports, nil
}

func (r *sportRepository) FindSportByName(name string) (*Sport, error) {
	var sport Sport
	err := r.db.Where("name = ?", name).First(&sport).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sport, nil
}

// RecountGroupCounts rebuilds the denormalized group_count column from the
// groups table. Reconciliation hook for operators; the normal write path keeps
// the counter in step transactionally.
func (r *sportRepository) RecountGroupCounts() error {
	return r.db.Exec(`
		UPDATE sports
		SET group_count = (
			SELECT COUNT(*) FROM groups
			WHERE groups.sport_id = sports.id AND groups.deleted_at IS NULL
		)
		WHERE sports.deleted_at IS NULL
	`).Error
}
