package serverutils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const currentUserKey = "current_user"

// CurrentUser is the identity carried by a verified bearer token.
type CurrentUser struct {
	UID           string `json:"uid"`
	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"emailVerified"`
	IsAdmin       bool   `json:"isAdmin"`
}

// Auth verifies HS256 bearer tokens. Admin rights come from the token's
// is_admin/role claims or from the configured admin email list.
type Auth struct {
	secret      []byte
	adminEmails map[string]struct{}
}

func NewAuth(secret string, adminEmails []string) *Auth {
	emails := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			emails[e] = struct{}{}
		}
	}
	return &Auth{secret: []byte(secret), adminEmails: emails}
}

func (a *Auth) JwtMiddleware(ctx *fiber.Ctx) error {
	user, status, msg := a.authenticate(ctx.Get("Authorization"))
	if user == nil {
		return ctx.Status(status).JSON(ErrorResponse(status, msg))
	}

	ctx.Locals(currentUserKey, user)
	ctx.Locals("user_id", user.UID)
	return ctx.Next()
}

// AdminMiddleware must run after JwtMiddleware.
func (a *Auth) AdminMiddleware(ctx *fiber.Ctx) error {
	user, ok := CurrentUserFrom(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Missing token"))
	}
	if !user.IsAdmin {
		return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(fiber.StatusForbidden, "Admin access required"))
	}
	return ctx.Next()
}

func CurrentUserFrom(ctx *fiber.Ctx) (*CurrentUser, bool) {
	user, ok := ctx.Locals(currentUserKey).(*CurrentUser)
	return user, ok && user != nil
}

func (a *Auth) authenticate(header string) (*CurrentUser, int, string) {
	if len(header) < 7 || !strings.EqualFold(header[:7], "Bearer ") {
		return nil, fiber.StatusUnauthorized, "Missing token"
	}
	if len(a.secret) == 0 {
		return nil, fiber.StatusUnauthorized, "Authentication is not configured"
	}

	token, err := jwt.Parse(strings.TrimSpace(header[7:]), func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, fiber.StatusUnauthorized, "Invalid token"
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fiber.StatusUnauthorized, "Invalid claims"
	}

	user := &CurrentUser{
		UID:   claimString(claims, "user_id"),
		Email: strings.ToLower(claimString(claims, "email")),
	}
	if user.UID == "" {
		user.UID = claimString(claims, "sub")
	}
	if user.UID == "" {
		return nil, fiber.StatusUnauthorized, "Invalid claims"
	}
	user.EmailVerified, _ = claims["email_verified"].(bool)

	isAdmin, _ := claims["is_admin"].(bool)
	if role := claimString(claims, "role"); role == "admin" {
		isAdmin = true
	}
	if _, listed := a.adminEmails[user.Email]; listed && user.Email != "" {
		isAdmin = true
	}
	user.IsAdmin = isAdmin

	return user, 0, ""
}

func claimString(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return strings.TrimSpace(v)
}
