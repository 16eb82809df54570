package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pulse-social/pulse/config"
	"github.com/pulse-social/pulse/internal/user"
	"github.com/pulse-social/pulse/pkg/token"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&user.User{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	appConfig := &config.Config{}
	appConfig.JWT.Secret = "test-secret"
	appConfig.JWT.ExpiryHours = 24

	router := gin.New()
	api := router.Group("/api/v2")
	RegisterAuthRoutes(api, db, appConfig)
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v2/auth/register", RegisterRequest{
		Name:     "Emma Svensson",
		Username: "emma",
		Email:    "Emma@Example.com",
		Password: "sekrit123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 on register, got %d: %s", w.Code, w.Body.String())
	}

	// Login by username.
	w = doJSON(t, router, http.MethodPost, "/api/v2/auth/login", LoginRequest{
		Username: "emma",
		Password: "sekrit123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on login, got %d: %s", w.Code, w.Body.String())
	}

	var resp AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token in the login response")
	}
	if resp.User.Username != "emma" || resp.User.Role != user.RoleUser {
		t.Errorf("unexpected user summary: %+v", resp.User)
	}

	claims, err := token.ValidateJWT(resp.Token, "test-secret")
	if err != nil {
		t.Fatalf("issued token did not validate: %v", err)
	}
	if claims.Username != "emma" || claims.Role != user.RoleUser {
		t.Errorf("unexpected token claims: %+v", claims)
	}

	// Email was normalized to lowercase at registration; login by email works.
	w = doJSON(t, router, http.MethodPost, "/api/v2/auth/login", LoginRequest{
		Username: "emma@example.com",
		Password: "sekrit123",
	})
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 on login by email, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRegisterDuplicate(t *testing.T) {
	router, _ := newTestRouter(t)

	req := RegisterRequest{
		Name:     "Emma Svensson",
		Username: "emma",
		Email:    "emma@example.com",
		Password: "sekrit123",
	}
	if w := doJSON(t, router, http.MethodPost, "/api/v2/auth/register", req); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 on first register, got %d", w.Code)
	}

	w := doJSON(t, router, http.MethodPost, "/api/v2/auth/register", req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on duplicate register, got %d", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if body["error"] != "Username or email already exists" {
		t.Errorf("unexpected error message: %v", body["error"])
	}

	// Same email under a different username is still a duplicate.
	req.Username = "emma2"
	if w := doJSON(t, router, http.MethodPost, "/api/v2/auth/register", req); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 on duplicate email, got %d", w.Code)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	router, _ := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/v2/auth/register", RegisterRequest{
		Name:     "Emma Svensson",
		Username: "emma",
		Email:    "emma@example.com",
		Password: "sekrit123",
	})

	w := doJSON(t, router, http.MethodPost, "/api/v2/auth/login", LoginRequest{
		Username: "emma",
		Password: "wrong-password",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 on wrong password, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/api/v2/auth/login", LoginRequest{
		Username: "nobody",
		Password: "sekrit123",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 on unknown user, got %d", w.Code)
	}
}

// Correct credentials against a suspended account are recognized but refused.
func TestLoginSuspendedAccount(t *testing.T) {
	router, db := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/v2/auth/register", RegisterRequest{
		Name:     "Emma Svensson",
		Username: "emma",
		Email:    "emma@example.com",
		Password: "sekrit123",
	})
	if err := db.Model(&user.User{}).
		Where("username = ?", "emma").
		Update("status", user.StatusSuspended).Error; err != nil {
		t.Fatalf("failed to suspend user: %v", err)
	}

	w := doJSON(t, router, http.MethodPost, "/api/v2/auth/login", LoginRequest{
		Username: "emma",
		Password: "sekrit123",
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for suspended account, got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if body["error"] != "Account suspended" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}
