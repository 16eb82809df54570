package moderation

import (
	"errors"
	"strings"
	"time"

	"github.com/pulse-social/pulse/internal/reputation"
	"github.com/pulse-social/pulse/internal/user"
	"gorm.io/gorm"
)

var (
	ErrFlagNotFound = errors.New("flag not found")
	ErrFlagResolved = errors.New("flag already resolved")
	ErrUserNotFound = errors.New("user not found")
)

type ModerationRepository interface {
	ListUsers(filters UserFilters) ([]UserView, error)
	ListFlags(status string) ([]FlagView, error)
	DismissFlag(flagID uint, reviewer, reason string) error
	SuspendAndResolve(flagID uint, reviewer, action string) error
	SetUserStatus(userID uint, status string) error
}

type moderationRepository struct {
	db *gorm.DB
}

func NewModerationRepository(db *gorm.DB) ModerationRepository {
	return &moderationRepository{db: db}
}

func (r *moderationRepository) ListUsers(filters UserFilters) ([]UserView, error) {
	query := r.db.Model(&user.User{}).
		Select(`id, name, username, email, role, rating, total_ratings,
			flags, status, join_date, last_activity`)

	if filters.Status != "" && filters.Status != "all" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Role != "" && filters.Role != "all" {
		query = query.Where("role = ?", filters.Role)
	}
	if filters.Search != "" {
		term := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(username) LIKE ? OR LOWER(email) LIKE ?",
			term, term, term,
		)
	}

	var users []UserView
	if err := query.Order("name ASC").Scan(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *moderationRepository) ListFlags(status string) ([]FlagView, error) {
	query := r.db.Model(&reputation.FlagReport{}).
		Select(`flag_reports.id, flag_reports.reporter_id, flag_reports.reported_id,
			flag_reports.group_id, flag_reports.type, flag_reports.reason,
			flag_reports.details, flag_reports.severity, flag_reports.status,
			flag_reports.reviewed_by, flag_reports.reviewed_at,
			flag_reports.action_taken, flag_reports.created_at,
			reporter.name AS reporter_name,
			reported.name AS reported_name,
			reported.username AS reported_username,
			groups.title AS activity_name`).
		Joins("LEFT JOIN users AS reporter ON reporter.id = flag_reports.reporter_id").
		Joins("LEFT JOIN users AS reported ON reported.id = flag_reports.reported_id").
		Joins("LEFT JOIN groups ON groups.id = flag_reports.group_id")

	if status != "" && status != "all" {
		query = query.Where("flag_reports.status = ?", status)
	}

	var flags []FlagView
	if err := query.Order("flag_reports.created_at DESC").Scan(&flags).Error; err != nil {
		return nil, err
	}
	return flags, nil
}

// DismissFlag moves a pending flag to "dismissed" and stamps the reviewer.
// Resolved flags stay resolved; the status machine only moves forward.
func (r *moderationRepository) DismissFlag(flagID uint, reviewer, reason string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var flag reputation.FlagReport
		if err := tx.First(&flag, flagID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFlagNotFound
			}
			return err
		}
		if flag.Status != reputation.FlagStatusPending {
			return ErrFlagResolved
		}

		now := time.Now()
		return tx.Model(&flag).Updates(map[string]interface{}{
			"status":       reputation.FlagStatusDismissed,
			"reviewed_by":  reviewer,
			"reviewed_at":  now,
			"action_taken": reason,
		}).Error
	})
}

// SuspendAndResolve takes punitive action on a pending flag: the flag becomes
// "action_taken", the reported user is suspended, and every other pending flag
// against that same user is resolved as "action_taken" in the same pass. One
// suspension settles the whole backlog for that user.
func (r *moderationRepository) SuspendAndResolve(flagID uint, reviewer, action string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var flag reputation.FlagReport
		if err := tx.First(&flag, flagID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFlagNotFound
			}
			return err
		}
		if flag.Status != reputation.FlagStatusPending {
			return ErrFlagResolved
		}

		now := time.Now()
		if action == "" {
			action = "User suspended"
		}

		if err := tx.Model(&flag).Updates(map[string]interface{}{
			"status":       reputation.FlagStatusActionTaken,
			"reviewed_by":  reviewer,
			"reviewed_at":  now,
			"action_taken": action,
		}).Error; err != nil {
			return err
		}

		if err := tx.Model(&user.User{}).
			Where("id = ?", flag.ReportedID).
			Update("status", user.StatusSuspended).Error; err != nil {
			return err
		}

		return tx.Model(&reputation.FlagReport{}).
			Where("reported_id = ? AND status = ? AND id <> ?",
				flag.ReportedID, reputation.FlagStatusPending, flag.ID).
			Updates(map[string]interface{}{
				"status":       reputation.FlagStatusActionTaken,
				"reviewed_by":  reviewer,
				"reviewed_at":  now,
				"action_taken": action,
			}).Error
	})
}

// SetUserStatus is the admin active/suspended toggle.
func (r *moderationRepository) SetUserStatus(userID uint, status string) error {
	result := r.db.Model(&user.User{}).Where("id = ?", userID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
