package reputation

import (
	"errors"

	"github.com/pulse-social/pulse/internal/user"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrSelfRating   = errors.New("cannot rate yourself")
	ErrSelfReport   = errors.New("cannot report yourself")
)

type ReputationRepository interface {
	SaveRating(rating *UserRating) error
	GetRating(ratedID, raterID, groupID uint) (*UserRating, error)
	CreateFlag(flag *FlagReport) error
}

type reputationRepository struct {
	db *gorm.DB
}

func NewReputationRepository(db *gorm.DB) ReputationRepository {
	return &reputationRepository{db: db}
}

// SaveRating upserts the rating keyed by (rated, rater, group) and recomputes
// the rated user's aggregate rating and total count from the stored rows, all
// in one transaction. The aggregate always tracks the facts.
func (r *reputationRepository) SaveRating(rating *UserRating) error {
	if rating.RatedUserID == rating.RaterUserID {
		return ErrSelfRating
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&user.User{}).Where("id = ?", rating.RatedUserID).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return ErrUserNotFound
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "rated_user_id"}, {Name: "rater_user_id"}, {Name: "group_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
		}).Create(rating).Error; err != nil {
			return err
		}

		var agg struct {
			Avg   float64
			Total int64
		}
		if err := tx.Model(&UserRating{}).
			Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS total").
			Where("rated_user_id = ?", rating.RatedUserID).
			Scan(&agg).Error; err != nil {
			return err
		}

		return tx.Model(&user.User{}).
			Where("id = ?", rating.RatedUserID).
			Updates(map[string]interface{}{
				"rating":        agg.Avg,
				"total_ratings": agg.Total,
			}).Error
	})
}

func (r *reputationRepository) GetRating(ratedID, raterID, groupID uint) (*UserRating, error) {
	var rating UserRating
	err := r.db.Where("rated_user_id = ? AND rater_user_id = ? AND group_id = ?",
		ratedID, raterID, groupID).First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

// CreateFlag inserts the report with status "pending" and increments the
// reported user's flags counter in the same transaction.
func (r *reputationRepository) CreateFlag(flag *FlagReport) error {
	if flag.ReporterID == flag.ReportedID {
		return ErrSelfReport
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&user.User{}).Where("id = ?", flag.ReportedID).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return ErrUserNotFound
		}

		if err := tx.Create(flag).Error; err != nil {
			return err
		}

		return tx.Model(&user.User{}).
			Where("id = ?", flag.ReportedID).
			UpdateColumn("flags", gorm.Expr("flags + 1")).Error
	})
}
