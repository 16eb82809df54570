package rmiddleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pulse-social/pulse/internal/middleware"
)

func adminGated(role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if role != "" {
		r.Use(func(c *gin.Context) {
			c.Set(middleware.AuthRoleKey, role)
		})
	}
	r.Use(AdminMiddleware())
	r.GET("/protected", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAdminMiddleware(t *testing.T) {
	cases := []struct {
		name string
		role string
		want int
	}{
		{"admin passes", "admin", http.StatusOK},
		{"case-insensitive role", "Admin", http.StatusOK},
		{"user refused", "user", http.StatusForbidden},
		{"no identity", "", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			adminGated(tc.role).ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Errorf("expected %d, got %d", tc.want, w.Code)
			}
			if tc.want == http.StatusForbidden &&
				!strings.Contains(w.Body.String(), "Admin access required") {
				t.Errorf("expected admin refusal message, got %s", w.Body.String())
			}
		})
	}
}
