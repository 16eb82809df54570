package sport

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pulse-social/pulse/config"
	"github.com/pulse-social/pulse/pkg/responses"
)

// SportController handles sport-related HTTP requests
type SportController struct {
	repo      SportRepository
	appConfig *config.Config
}

// NewSportController creates a new sport controller
func NewSportController(repo SportRepository, appConfig *config.Config) *SportController {
	return &SportController{
		repo:      repo,
		appConfig: appConfig,
	}
}

// GetAllSports godoc
// @Summary Get all sports
// @Description Retrieves every sport ordered by name.
// @Tags Sports
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Sport} "List of sports"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /sports [get]
func (sc *SportController) GetAllSports(c *gin.Context) {
	sports, err := sc.repo.GetAllSports()
	if err != nil {
		log.Printf("GetAllSports: %v", err)
		responses.InternalServerError(c, "")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Sports retrieved successfully", sports)
}

// CreateSport godoc
// @Summary Create a new sport
// @Description Creates a sport. The slug is derived from the name when absent.
// @Tags Sports
// @Accept json
// @Produce json
// @Param sport body CreateSportRequest true "Sport data"
// @Success 201 {object} responses.SuccessResponse{data=Sport} "Sport created"
// @Failure 400 {object} responses.ErrorResponse "Invalid input or duplicate name"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 403 {object} responses.ErrorResponse "Admin access required"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /sports [post]
func (sc *SportController) CreateSport(c *gin.Context) {
	var req CreateSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	existing, err := sc.repo.FindSportByName(req.Name)
	if err != nil {
		log.Printf("CreateSport: name lookup failed: %v", err)
		responses.InternalServerError(c, "")
		return
	}
	if existing != nil {
		responses.BadRequest(c, "Sport already exists")
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = strings.ReplaceAll(strings.ToLower(req.Name), " ", "-")
	}

	sport := Sport{
		Name:     req.Name,
		Icon:     req.Icon,
		Slug:     slug,
		IsActive: true,
	}
	if err := sc.repo.CreateSport(&sport); err != nil {
		log.Printf("CreateSport: %v", err)
		responses.InternalServerError(c, "")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Sport created successfully", sport)
}

// RecountGroupCounts godoc
// @Summary Rebuild sport group counters
// @Description Recomputes every sport's group_count from the groups table. Reconciliation hook; the normal write path keeps the counter in step.
// @Tags Sports
// @Produce json
// @Success 200 {object} responses.SuccessResponse "Counters rebuilt"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 403 {object} responses.ErrorResponse "Admin access required"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /sports/recount [post]
func (sc *SportController) RecountGroupCounts(c *gin.Context) {
	if err := sc.repo.RecountGroupCounts(); err != nil {
		log.Printf("RecountGroupCounts: %v", err)
		responses.InternalServerError(c, "")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Group counts rebuilt successfully", nil)
}
