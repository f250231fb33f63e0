package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"library_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	jwt.Init("test-secret", 5, 1)
	r := gin.New()
	r.Use(Secure(true))
	r.GET("/me", JWTAuth(), func(c *gin.Context) {
		id, role, ok := Principal(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role, "ok": ok})
	})
	r.GET("/admin", JWTAuth(), AdminOnly(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	r := newEngine()

	w := do(r, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"code":1006`)

	w = do(r, "/me", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	refresh, _, err := jwt.GenerateRefreshToken(1, jwt.RoleUser)
	require.NoError(t, err)
	w = do(r, "/me", refresh)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	access, err := jwt.GenerateAccessToken(42, jwt.RoleUser)
	require.NoError(t, err)
	w = do(r, "/me", access)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":42,"role":"user","ok":true}`, w.Body.String())
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestAdminOnly(t *testing.T) {
	r := newEngine()

	user, _ := jwt.GenerateAccessToken(1, jwt.RoleUser)
	w := do(r, "/admin", user)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"code":1007`)

	admin, _ := jwt.GenerateAccessToken(1, jwt.RoleAdmin)
	w = do(r, "/admin", admin)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
