package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pulse-social/pulse/config"
	"github.com/pulse-social/pulse/internal/user"
	"github.com/pulse-social/pulse/pkg/token"
	"github.com/pulse-social/pulse/pkg/utils"
	"github.com/pulse-social/pulse/pkg/validator"
	"gorm.io/gorm"
)

type AuthController struct {
	repo   AuthRepository
	config *config.Config
}

func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{
		repo:   repo,
		config: cfg,
	}
}

// @Summary      Register a new user
// @Description  Create a new account with name, username, email and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body  RegisterRequest  true  "User registration details"
// @Success      201   {object} map[string]string "User created successfully"
// @Failure      400   {object} map[string]string "Validation error or duplicate username/email"
// @Failure      500   {object} map[string]string "Internal server error"
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": validator.ParseError(err)})
		return
	}

	email := strings.ToLower(req.Email)

	if _, err := ac.repo.GetUserByUsernameOrEmail(req.Username, email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already exists"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Register: user lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("Register: password hashing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	now := time.Now()
	newUser := &user.User{
		Name:         req.Name,
		Username:     req.Username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         user.RoleUser,
		Status:       user.StatusActive,
		JoinDate:     now,
		LastActivity: now,
	}

	if err := ac.repo.CreateUser(newUser); err != nil {
		log.Printf("Register: user creation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}

// @Summary      Log in
// @Description  Exchange credentials for a bearer token. The identifier matches either username or email.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200  {object} AuthResponse "Token and user summary"
// @Failure      401  {object} map[string]string "Invalid credentials"
// @Failure      403  {object} map[string]string "Account suspended"
// @Failure      500  {object} map[string]string "Internal server error"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": validator.ParseError(err)})
		return
	}

	u, err := ac.repo.GetUserByIdentifier(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		log.Printf("Login: user lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !utils.CheckPassword(u.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	// Suspended and pending accounts hold valid credentials but may not log in.
	if u.Status != user.StatusActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "Account suspended"})
		return
	}

	accessToken, err := token.GenerateJWT(u.ID, u.Username, u.Role, ac.config.JWT.Secret, ac.config.JWT.ExpiryHours)
	if err != nil {
		log.Printf("Login: token generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := ac.repo.TouchLastActivity(u.ID); err != nil {
		// Not fatal for the login itself.
		log.Printf("Login: failed to update last_activity for user %d: %v", u.ID, err)
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token: accessToken,
		User:  FilterUserRecord(u),
	})
}
