package group

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pulse-social/pulse/config"
	mw "github.com/pulse-social/pulse/internal/middleware"
	"github.com/pulse-social/pulse/internal/sport"
	"github.com/pulse-social/pulse/pkg/responses"
)

const defaultMaxMembers = 10

// GroupController handles activity-related HTTP requests
type GroupController struct {
	repo      GroupRepository
	sportRepo sport.SportRepository
	appConfig *config.Config
}

// NewGroupController creates a new group controller
func NewGroupController(repo GroupRepository, sportRepo sport.SportRepository, appConfig *config.Config) *GroupController {
	return &GroupController{
		repo:      repo,
		sportRepo: sportRepo,
		appConfig: appConfig,
	}
}

// CreateGroup godoc
// @Summary Create a new activity
// @Description Creates an activity with the authenticated user as organizer. The title is derived from the sport and skill level.
// @Tags Groups
// @Accept json
// @Produce json
// @Param group body CreateGroupRequest true "Activity data"
// @Success 201 {object} responses.SuccessResponse{data=GroupResponse} "Activity created"
// @Failure 400 {object} responses.ErrorResponse "Missing required fields or invalid sport"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /groups [post]
func (gc *GroupController) CreateGroup(c *gin.Context) {
	organizerID, err := mw.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Missing required fields")
		return
	}

	s, err := gc.sportRepo.GetSportByID(req.SportID)
	if err != nil {
		log.Printf("CreateGroup: sport lookup failed: %v", err)
		responses.InternalServerError(c, "")
		return
	}
	if s == nil {
		responses.BadRequest(c, "Invalid sport selected")
		return
	}

	skillLabel := req.SkillLevel
	if name, ok := skillLevelNames[req.SkillLevel]; ok {
		skillLabel = name
	}

	privacy := req.Privacy
	if privacy == "" {
		privacy = PrivacyPublic
	}
	maxMembers := req.MaxMembers
	if maxMembers == 0 {
		maxMembers = defaultMaxMembers
	}

	g := Group{
		Title:       s.Name + " - " + skillLabel,
		Details:     req.Description,
		SportID:     req.SportID,
		OrganizerID: organizerID,
		City:        req.Location,
		Location:    req.Location,
		DateTime:    req.Date + " " + req.Time,
		Privacy:     privacy,
		MaxMembers:  maxMembers,
		Status:      StatusUpcoming,
	}

	if err := gc.repo.CreateWithOrganizer(&g); err != nil {
		log.Printf("CreateGroup: %v", err)
		responses.InternalServerError(c, "")
		return
	}

	created, err := gc.repo.GetGroupResponse(g.ID)
	if err != nil || created == nil {
		log.Printf("CreateGroup: reload failed: %v", err)
		responses.InternalServerError(c, "")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Activity created successfully", created)
}

// ListGroups godoc
// @Summary List upcoming activities
// @Description Lists upcoming activities with optional sport/city/privacy filters and free-text search, ordered by schedule.
// @Tags Groups
// @Produce json
// @Param sport query string false "Sport ID or 'all'"
// @Param city query string false "City or 'all'"
// @Param privacy query string false "Privacy or 'all'"
// @Param search query string false "Substring match over title, details and sport name"
// @Success 200 {object} responses.SuccessResponse{data=[]GroupResponse} "Upcoming activities"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /groups [get]
func (gc *GroupController) ListGroups(c *gin.Context) {
	filters := ListFilters{
		SportID: c.Query("sport"),
		City:    c.Query("city"),
		Privacy: c.Query("privacy"),
		Search:  c.Query("search"),
	}

	groups, err := gc.repo.ListUpcoming(filters)
	if err != nil {
		log.Printf("ListGroups: %v", err)
		responses.InternalServerError(c, "")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Activities retrieved successfully", groups)
}

// GetGroupByID godoc
// @Summary Get a single activity
// @Description Retrieves an activity joined with its sport, organizer and member list.
// @Tags Groups
// @Produce json
// @Param id path uint true "Group ID"
// @Success 200 {object} responses.SuccessResponse{data=GroupResponse} "Activity details"
// @Failure 400 {object} responses.ErrorResponse "Invalid group ID"
// @Failure 404 {object} responses.ErrorResponse "Group not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /groups/{id} [get]
func (gc *GroupController) GetGroupByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid group ID")
		return
	}

	g, err := gc.repo.GetGroupResponse(uint(id))
	if err != nil {
		log.Printf("GetGroupByID: %v", err)
		responses.InternalServerError(c, "")
		return
	}
	if g == nil {
		responses.SendError(c, http.StatusNotFound, "Group not found")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Activity retrieved successfully", g)
}

// JoinGroup godoc
// @Summary Join an activity
// @Description Adds the authenticated user as a member, enforcing capacity inside a single transaction.
// @Tags Groups
// @Produce json
// @Param id path uint true "Group ID"
// @Success 200 {object} responses.SuccessResponse "Joined"
// @Failure 400 {object} responses.ErrorResponse "Already a member or group is full"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 404 {object} responses.ErrorResponse "Group not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /groups/{id}/join [post]
func (gc *GroupController) JoinGroup(c *gin.Context) {
	userID, err := mw.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid group ID")
		return
	}

	switch err := gc.repo.Join(uint(id), userID); {
	case err == nil:
		responses.SendSuccess(c, http.StatusOK, "Successfully joined group", nil)
	case errors.Is(err, ErrGroupNotFound):
		responses.SendError(c, http.StatusNotFound, "Group not found")
	case errors.Is(err, ErrAlreadyMember):
		responses.BadRequest(c, "Already a member")
	case errors.Is(err, ErrGroupFull):
		responses.BadRequest(c, "Group is full")
	default:
		log.Printf("JoinGroup: %v", err)
		responses.InternalServerError(c, "")
	}
}
