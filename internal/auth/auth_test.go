package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/thinkwise-edu/thinkwise/internal/exercise"
)

func testUser(role exercise.Role) *exercise.User {
	return &exercise.User{ID: uuid.New(), Email: "kim@example.com", Role: role}
}

func TestIssueParse(t *testing.T) {
	iss, err := NewIssuer("s3cret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	u := testUser(exercise.RoleTeacher)

	tok, err := iss.Issue(u)
	if err != nil {
		t.Fatal(err)
	}
	claims, err := iss.Parse(tok)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != u.ID || claims.Role != exercise.RoleTeacher || claims.Email != u.Email {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParse_Rejects(t *testing.T) {
	iss, _ := NewIssuer("s3cret", time.Hour)
	other, _ := NewIssuer("other", time.Hour)
	expired, _ := NewIssuer("s3cret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	u := testUser(exercise.RoleStudent)
	wrongKey, _ := other.Issue(u)
	old, _ := expired.Issue(u)
	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: u.ID}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := map[string]string{
		"garbage":   "not.a.token",
		"wrong key": wrongKey,
		"expired":   old,
		"alg none":  none,
	}
	for name, tok := range tests {
		if _, err := iss.Parse(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("%s: err = %v, want ErrInvalidToken", name, err)
		}
	}
}

func TestNewIssuer_EmptySecret(t *testing.T) {
	if _, err := NewIssuer("", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	iss, _ := NewIssuer("s3cret", time.Hour)

	r := gin.New()
	r.GET("/me", Middleware(iss), func(c *gin.Context) {
		c.String(http.StatusOK, FromContext(c).Email)
	})
	r.GET("/admin", Middleware(iss), RequireStaff(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	student, _ := iss.Issue(testUser(exercise.RoleStudent))
	admin, _ := iss.Issue(testUser(exercise.RoleAdmin))

	tests := []struct {
		path, token string
		want        int
	}{
		{"/me", "", http.StatusUnauthorized},
		{"/me", "bogus", http.StatusUnauthorized},
		{"/me", student, http.StatusOK},
		{"/admin", student, http.StatusForbidden},
		{"/admin", admin, http.StatusNoContent},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		if tt.token != "" {
			req.Header.Set("Authorization", "Bearer "+tt.token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tt.want {
			t.Errorf("%s with %q: status = %d, want %d", tt.path, tt.token, w.Code, tt.want)
		}
	}
}
