package reputation

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

// ReputationController handles rating and flag submissions.
type ReputationController struct {
	repo      ReputationRepository
	appConfig *config.Config
}

func NewReputationController(repo ReputationRepository, appConfig *config.Config) *ReputationController {
	return &ReputationController{
		repo:      repo,
		appConfig: appConfig,
	}
}

// RateUser godoc
// @Summary Rate a user
// @Description Records a 1-5 rating of a user for a specific activity. Re-submitting for the same activity replaces the previous value.
// @Tags Reputation
// @Accept json
// @Produce json
// @Param id path uint true "Rated user ID"
// @Param rating body RateUserRequest true "Rating"
// @Success 200 {object} responses.SuccessResponse "Rating submitted"
// @Failure 400 {object} responses.ErrorResponse "Rating out of range or self-rating"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 404 {object} responses.ErrorResponse "User not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /users/{id}/rate [post]
func (rc *ReputationController) RateUser(c *gin.Context) {
	raterID, err := mw.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	ratedID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}

	var req RateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		responses.BadRequest(c, "Rating must be between 1 and 5")
		return
	}

	rating := UserRating{
		RatedUserID: uint(ratedID),
		RaterUserID: raterID,
		GroupID:     req.GroupID,
		Rating:      req.Rating,
	}

	switch err := rc.repo.SaveRating(&rating); {
	case err == nil:
		responses.SendSuccess(c, http.StatusOK, "Rating submitted successfully", nil)
	case errors.Is(err, ErrSelfRating):
		responses.BadRequest(c, "You cannot rate yourself")
	case errors.Is(err, ErrUserNotFound):
		responses.SendError(c, http.StatusNotFound, "User not found")
	default:
		log.Printf("RateUser: %v", err)
		responses.InternalServerError(c, "")
	}
}

// FlagUser godoc
// @Summary Report a user
// @Description Files a conduct report against a user for a specific activity. The report starts in status "pending".
// @Tags Reputation
// @Accept json
// @Produce json
// @Param id path uint true "Reported user ID"
// @Param flag body FlagUserRequest true "Report"
// @Success 200 {object} responses.SuccessResponse "Report submitted"
// @Failure 400 {object} responses.ErrorResponse "Invalid input or self-report"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 404 {object} responses.ErrorResponse "User not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /users/{id}/flag [post]
func (rc *ReputationController) FlagUser(c *gin.Context) {
	reporterID, err := mw.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	reportedID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}

	var req FlagUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	severity := req.Severity
	if severity == "" {
		severity = SeverityMedium
	}

	flag := FlagReport{
		ReporterID: reporterID,
		ReportedID: uint(reportedID),
		GroupID:    req.GroupID,
		Type:       req.Type,
		Reason:     req.Reason,
		Details:    req.Details,
		Severity:   severity,
		Status:     FlagStatusPending,
	}

	switch err := rc.repo.CreateFlag(&flag); {
	case err == nil:
		responses.SendSuccess(c, http.StatusOK, "Report submitted successfully", nil)
	case errors.Is(err, ErrSelfReport):
		responses.BadRequest(c, "You cannot report yourself")
	case errors.Is(err, ErrUserNotFound):
		responses.SendError(c, http.StatusNotFound, "User not found")
	default:
		log.Printf("FlagUser: %v", err)
		responses.InternalServerError(c, "")
	}
}
