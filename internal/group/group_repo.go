package group

import (
	"errors"
	"strings"
	"time"

	"github.com/pulse-social/pulse/internal/sport"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrGroupNotFound = errors.New("group not found")
	ErrAlreadyMember = errors.New("already a member")
	ErrGroupFull     = errors.New("group is full")
)

type GroupRepository interface {
	CreateWithOrganizer(g *Group) error
	GetGroupByID(id uint) (*Group, error)
	GetGroupResponse(id uint) (*GroupResponse, error)
	ListUpcoming(filters ListFilters) ([]GroupResponse, error)
	Join(groupID, userID uint) error
	MemberCount(groupID uint) (int64, error)
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

// CreateWithOrganizer inserts the group, the organizer's membership row and the
// sport's group_count increment in one transaction. The three writes appear
// together or not at all.
func (r *groupRepository) CreateWithOrganizer(g *Group) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(g).Error; err != nil {
			return err
		}

		organizer := GroupMember{
			GroupID: g.ID,
			UserID:  g.OrganizerID,
			Role:    RoleOrganizer,
		}
		if err := tx.Create(&organizer).Error; err != nil {
			return err
		}

		return tx.Model(&sport.Sport{}).
			Where("id = ?", g.SportID).
			UpdateColumn("group_count", gorm.Expr("group_count + 1")).Error
	})
}

func (r *groupRepository) GetGroupByID(id uint) (*Group, error) {
	var g Group
	err := r.db.First(&g, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

const joinedGroupColumns = `
	groups.id, groups.title, groups.details, groups.sport_id, groups.organizer_id,
	groups.city, groups.location, groups.date_time, groups.privacy,
	groups.max_members, groups.status,
	sports.name AS sport_name, sports.icon AS sport_icon,
	users.name AS organizer_name`

// GetGroupResponse returns the group joined with sport, organizer and member
// details, or (nil, nil) when the ID does not exist.
func (r *groupRepository) GetGroupResponse(id uint) (*GroupResponse, error) {
	var resp GroupResponse
	result := r.db.Model(&Group{}).
		Select(joinedGroupColumns).
		Joins("LEFT JOIN sports ON sports.id = groups.sport_id").
		Joins("LEFT JOIN users ON users.id = groups.organizer_id").
		Where("groups.id = ?", id).
		Limit(1).
		Scan(&resp)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	members, err := r.membersOf(id)
	if err != nil {
		return nil, err
	}
	resp.Members = members
	resp.MemberCount = len(members)
	return &resp, nil
}

// ListUpcoming returns upcoming groups matching the filters, ordered by
// schedule ascending, each with its resolved member list.
func (r *groupRepository) ListUpcoming(filters ListFilters) ([]GroupResponse, error) {
	query := r.db.Model(&Group{}).
		Select(joinedGroupColumns).
		Joins("LEFT JOIN sports ON sports.id = groups.sport_id").
		Joins("LEFT JOIN users ON users.id = groups.organizer_id").
		Where("groups.status = ?", StatusUpcoming)

	if filters.SportID != "" && filters.SportID != "all" {
		query = query.Where("groups.sport_id = ?", filters.SportID)
	}
	if filters.City != "" && filters.City != "all" {
		query = query.Where("groups.city = ?", filters.City)
	}
	if filters.Privacy != "" && filters.Privacy != "all" {
		query = query.Where("groups.privacy = ?", filters.Privacy)
	}
	if filters.Search != "" {
		term := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where(
			"LOWER(groups.title) LIKE ? OR LOWER(groups.details) LIKE ? OR LOWER(sports.name) LIKE ?",
			term, term, term,
		)
	}

	var groups []GroupResponse
	if err := query.Order("groups.date_time ASC").Scan(&groups).Error; err != nil {
		return nil, err
	}

	for i := range groups {
		members, err := r.membersOf(groups[i].ID)
		if err != nil {
			return nil, err
		}
		groups[i].Members = members
		groups[i].MemberCount = len(members)
	}
	return groups, nil
}

// Join adds the user as a member. The membership check and the
// capacity-guarded insert run inside one transaction so that concurrent joins
// near the capacity boundary cannot both squeeze in.
func (r *groupRepository) Join(groupID, userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Lock the group row so concurrent joins serialize on postgres;
		// the sqlite driver drops the locking clause and relies on its
		// single-writer model instead.
		var g Group
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&g, groupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGroupNotFound
			}
			return err
		}

		var existing int64
		if err := tx.Model(&GroupMember{}).
			Where("group_id = ? AND user_id = ?", groupID, userID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyMember
		}

		// Conditional insert: the capacity check and the write are one
		// statement, atomic on both sqlite and postgres.
		now := time.Now()
		result := tx.Exec(`
			INSERT INTO group_members (created_at, updated_at, group_id, user_id, role)
			SELECT ?, ?, ?, ?, ?
			WHERE (SELECT COUNT(*) FROM group_members
			       WHERE group_id = ? AND deleted_at IS NULL) < ?`,
			now, now, groupID, userID, RoleMember, groupID, g.MaxMembers,
		)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrGroupFull
		}
		return nil
	})
}

func (r *groupRepository) MemberCount(groupID uint) (int64, error) {
	var count int64
	err := r.db.Model(&GroupMember{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

// membersOf resolves a group's member list with reputation fields, organizer
// first then members by name.
func (r *groupRepository) membersOf(groupID uint) ([]MemberInfo, error) {
	var members []MemberInfo
	err := r.db.Table("group_members").
		Select(`users.id, users.name, users.username, users.rating,
			users.total_ratings, users.flags, group_members.role`).
		Joins("JOIN users ON users.id = group_members.user_id").
		Where("group_members.group_id = ? AND group_members.deleted_at IS NULL", groupID).
		Order("group_members.role DESC, users.name ASC").
		Scan(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}
