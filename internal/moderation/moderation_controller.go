package moderation

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pulse-social/pulse/config"
	mw "github.com/pulse-social/pulse/internal/middleware"
	"github.com/pulse-social/pulse/pkg/responses"
)

// ModerationController handles the admin read models and moderation actions.
type ModerationController struct {
	repo      ModerationRepository
	appConfig *config.Config
}

func NewModerationController(repo ModerationRepository, appConfig *config.Config) *ModerationController {
	return &ModerationController{
		repo:      repo,
		appConfig: appConfig,
	}
}

// ListUsers godoc
// @Summary List users (admin)
// @Description Lists users with optional status/role filters and name/username/email search.
// @Tags Admin
// @Produce json
// @Param status query string false "Status or 'all'"
// @Param role query string false "Role or 'all'"
// @Param search query string false "Substring match over name, username and email"
// @Success 200 {object} responses.SuccessResponse{data=[]UserView} "Filtered user list"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 403 {object} responses.ErrorResponse "Admin access required"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/users [get]
func (mc *ModerationController) ListUsers(c *gin.Context) {
	filters := UserFilters{
		Status: c.Query("status"),
		Role:   c.Query("role"),
		Search: c.Query("search"),
	}

	users, err := mc.repo.ListUsers(filters)
	if err != nil {
		log.Printf("ListUsers: %v", err)
		responses.InternalServerError(c, "")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Users retrieved successfully", users)
}

// ListFlags godoc
// @Summary List flag reports (admin)
// @Description Lists flag reports with resolved reporter/reported/activity names, newest first.
// @Tags Admin
// @Produce json
// @Param status query string false "Status or 'all'"
// @Success 200 {object} responses.SuccessResponse{data=[]FlagView} "Filtered flag list"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 403 {object} responses.ErrorResponse "Admin access required"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/flags [get]
func (mc *ModerationController) ListFlags(c *gin.Context) {
	flags, err := mc.repo.ListFlags(c.Query("status"))
	if err != nil {
		log.Printf("ListFlags: %v", err)
		responses.InternalServerError(c, "")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Flags retrieved successfully", flags)
}

// DismissFlag godoc
// @Summary Dismiss a flag report (admin)
// @Description Moves a pending flag to "dismissed" and stamps the reviewing admin.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path uint true "Flag ID"
// @Param body body DismissFlagRequest false "Optional dismissal reason"
// @Success 200 {object} responses.SuccessResponse "Flag dismissed"
// @Failure 400 {object} responses.ErrorResponse "Flag already resolved"
// @Failure 404 {object} responses.ErrorResponse "Flag not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/flags/{id}/dismiss [put]
func (mc *ModerationController) DismissFlag(c *gin.Context) {
	flagID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid flag ID")
		return
	}

	reviewer, err := mw.GetUsernameFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	var req DismissFlagRequest
	_ = c.ShouldBindJSON(&req) // body is optional

	switch err := mc.repo.DismissFlag(uint(flagID), reviewer, req.Reason); {
	case err == nil:
		responses.SendSuccess(c, http.StatusOK, "Flag dismissed", nil)
	case errors.Is(err, ErrFlagNotFound):
		responses.SendError(c, http.StatusNotFound, "Flag not found")
	case errors.Is(err, ErrFlagResolved):
		responses.BadRequest(c, "Flag already resolved")
	default:
		log.Printf("DismissFlag: %v", err)
		responses.InternalServerError(c, "")
	}
}

// SuspendUser godoc
// @Summary Suspend the reported user (admin)
// @Description Resolves a pending flag with action taken, suspends the reported user, and resolves that user's other pending flags in the same transaction.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path uint true "Flag ID"
// @Param body body SuspendRequest false "Optional action description"
// @Success 200 {object} responses.SuccessResponse "User suspended"
// @Failure 400 {object} responses.ErrorResponse "Flag already resolved"
// @Failure 404 {object} responses.ErrorResponse "Flag not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/flags/{id}/suspend [put]
func (mc *ModerationController) SuspendUser(c *gin.Context) {
	flagID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid flag ID")
		return
	}

	reviewer, err := mw.GetUsernameFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	var req SuspendRequest
	_ = c.ShouldBindJSON(&req) // body is optional

	switch err := mc.repo.SuspendAndResolve(uint(flagID), reviewer, req.Action); {
	case err == nil:
		responses.SendSuccess(c, http.StatusOK, "User suspended", nil)
	case errors.Is(err, ErrFlagNotFound):
		responses.SendError(c, http.StatusNotFound, "Flag not found")
	case errors.Is(err, ErrFlagResolved):
		responses.BadRequest(c, "Flag already resolved")
	default:
		log.Printf("SuspendUser: %v", err)
		responses.InternalServerError(c, "")
	}
}

// UpdateUserStatus godoc
// @Summary Toggle a user's status (admin)
// @Description Sets a user's account status to active or suspended.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path uint true "User ID"
// @Param body body UpdateUserStatusRequest true "New status"
// @Success 200 {object} responses.SuccessResponse "Status updated"
// @Failure 400 {object} responses.ErrorResponse "Invalid status"
// @Failure 404 {object} responses.ErrorResponse "User not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/users/{id}/status [put]
func (mc *ModerationController) UpdateUserStatus(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}

	var req UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	switch err := mc.repo.SetUserStatus(uint(userID), req.Status); {
	case err == nil:
		responses.SendSuccess(c, http.StatusOK, "Status updated", nil)
	case errors.Is(err, ErrUserNotFound):
		responses.SendError(c, http.StatusNotFound, "User not found")
	default:
		log.Printf("UpdateUserStatus: %v", err)
		responses.InternalServerError(c, "")
	}
}
