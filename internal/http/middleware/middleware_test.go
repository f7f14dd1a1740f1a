package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"busbooking/internal/services"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if id := w.Header().Get("X-Request-ID"); id == "" || id != w.Body.String() {
		t.Fatalf("expected generated id to be echoed, header=%q body=%q", id, w.Body.String())
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	r.ServeHTTP(w, req)
	if w.Body.String() != "abc-123" {
		t.Fatalf("expected incoming id to be kept, got %q", w.Body.String())
	}
}

func TestAuthRequired(t *testing.T) {
	secret := []byte("mw-secret")
	r := gin.New()
	r.GET("/admin", AuthRequired(secret), RequireRoles("admin"), func(c *gin.Context) {
		p, _ := GetPrincipal(c)
		c.JSON(http.StatusOK, p)
	})

	cases := []struct {
		name   string
		role   string
		header string
		want   int
	}{
		{name: "missing header", want: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", want: http.StatusUnauthorized},
		{name: "wrong role", role: "clerk", want: http.StatusForbidden},
		{name: "admin", role: "admin", want: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			switch {
			case tc.header != "":
				req.Header.Set("Authorization", tc.header)
			case tc.role != "":
				tok, err := services.IssueToken(secret, 7, tc.role, time.Hour)
				if err != nil {
					t.Fatalf("IssueToken: %v", err)
				}
				req.Header.Set("Authorization", "Bearer "+tok)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d (%s)", tc.want, w.Code, w.Body.String())
			}
		})
	}
}
