package serverutils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func newAuthApp(auth *Auth) *fiber.App {
	app := fiber.New()
	app.Get("/me", auth.JwtMiddleware, func(ctx *fiber.Ctx) error {
		user, _ := CurrentUserFrom(ctx)
		return ctx.JSON(user)
	})
	app.Get("/admin", auth.JwtMiddleware, auth.AdminMiddleware, func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func do(t *testing.T, app *fiber.App, path, token string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body := map[string]interface{}{}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body
}

func TestJwtMiddleware(t *testing.T) {
	auth := NewAuth(testSecret, []string{"Boss@Spi.edu"})
	app := newAuthApp(auth)
	exp := time.Now().Add(time.Hour).Unix()

	t.Run("missing token", func(t *testing.T) {
		status, body := do(t, app, "/me", "")
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, false, body["success"])
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := sign(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"user_id": "u1", "exp": exp})
		status, _ := do(t, app, "/me", token)
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run("expired", func(t *testing.T) {
		token := sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"user_id": "u1", "exp": time.Now().Add(-time.Minute).Unix()})
		status, _ := do(t, app, "/me", token)
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run("other algorithm rejected", func(t *testing.T) {
		token := sign(t, jwt.SigningMethodHS512, []byte(testSecret), jwt.MapClaims{"user_id": "u1", "exp": exp})
		status, _ := do(t, app, "/me", token)
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run("no subject", func(t *testing.T) {
		token := sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"email": "a@b.c", "exp": exp})
		status, _ := do(t, app, "/me", token)
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run("sub claim fallback", func(t *testing.T) {
		token := sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
			"sub": "u2", "email": "Student@Spi.edu", "email_verified": true, "exp": exp,
		})
		status, body := do(t, app, "/me", token)
		require.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "u2", body["uid"])
		assert.Equal(t, "student@spi.edu", body["email"])
		assert.Equal(t, true, body["emailVerified"])
		assert.Equal(t, false, body["isAdmin"])
	})
}

func TestAdminMiddleware(t *testing.T) {
	auth := NewAuth(testSecret, []string{"boss@spi.edu"})
	app := newAuthApp(auth)
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name   string
		claims jwt.MapClaims
		want   int
	}{
		{"plain user", jwt.MapClaims{"user_id": "u1", "email": "x@spi.edu", "exp": exp}, fiber.StatusForbidden},
		{"is_admin claim", jwt.MapClaims{"user_id": "u1", "is_admin": true, "exp": exp}, fiber.StatusNoContent},
		{"role claim", jwt.MapClaims{"user_id": "u1", "role": "admin", "exp": exp}, fiber.StatusNoContent},
		{"listed email", jwt.MapClaims{"user_id": "u1", "email": "BOSS@spi.edu", "exp": exp}, fiber.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := sign(t, jwt.SigningMethodHS256, []byte(testSecret), tt.claims)
			status, _ := do(t, app, "/admin", token)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestJwtMiddleware_NoSecretRejectsEverything(t *testing.T) {
	app := newAuthApp(NewAuth("", nil))
	token := sign(t, jwt.SigningMethodHS256, []byte("anything"), jwt.MapClaims{"user_id": "u1"})
	status, _ := do(t, app, "/me", token)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
