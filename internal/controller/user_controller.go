package controller

import (
	"spi-eshop-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Me(ctx *fiber.Ctx) error
}

type userController struct {
	auth *serverutils.Auth
}

func NewUserController(auth *serverutils.Auth) IUserController {
	return &userController{auth: auth}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	r.Get("/me", c.auth.JwtMiddleware, c.Me)
}

func (c *userController) Me(ctx *fiber.Ctx) error {
	user, ok := serverutils.CurrentUserFrom(ctx)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get current user", user))
}
